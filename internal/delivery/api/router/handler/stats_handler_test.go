package handler

import (
	"net/http"
	"testing"

	"bazaar/internal/domain/entity"
	mockUsecase "bazaar/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStatsHandler_BaseInfo(t *testing.T) {
	statsUC := mockUsecase.NewMockStatsUsecase(t)
	h := NewStatsHandler(StatsHandlerParams{StatsUC: statsUC})
	stats := &entity.PlatformStats{ReviewCount: 2, AverageRating: 4.5, BusinessProfileCount: 2, OfferCount: 1}
	statsUC.EXPECT().BaseInfo(mock.Anything).Return(stats, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/api/base-info/", "", nil)

	require.NoError(t, h.BaseInfo(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got entity.PlatformStats
	decodeData(t, rec, &got)
	assert.Equal(t, *stats, got)
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(http.MethodGet, "/health", "", nil)

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
