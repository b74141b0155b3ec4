package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bazaar/config"
	"bazaar/internal/delivery/api/middleware"
	"bazaar/internal/delivery/api/router"
	"bazaar/internal/delivery/api/router/handler"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
	"bazaar/internal/infra/metrics"
	mockSvc "bazaar/internal/mocks/service"
	mockUsecase "bazaar/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixtures struct {
	echo    *echo.Echo
	tokens  *mockSvc.MockTokenService
	orderUC *mockUsecase.MockOrderUsecase
	statsUC *mockUsecase.MockStatsUsecase
}

func newTestEcho(t *testing.T) serverFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.Defaults()
	cfg.Metrics.Enabled = true

	m, err := metrics.New()
	require.NoError(t, err)

	fx := serverFixtures{
		tokens:  mockSvc.NewMockTokenService(t),
		orderUC: mockUsecase.NewMockOrderUsecase(t),
		statsUC: mockUsecase.NewMockStatsUsecase(t),
	}
	fx.echo = NewEcho(ServerParams{
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			AccountHandler: handler.NewAccountHandler(handler.AccountHandlerParams{AccountUC: mockUsecase.NewMockAccountUsecase(t), Logger: logger}),
			ProfileHandler: handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: mockUsecase.NewMockProfileUsecase(t), Logger: logger}),
			OfferHandler:   handler.NewOfferHandler(handler.OfferHandlerParams{OfferUC: mockUsecase.NewMockOfferUsecase(t), Logger: logger}),
			OrderHandler:   handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: fx.orderUC, Logger: logger}),
			ReviewHandler:  handler.NewReviewHandler(handler.ReviewHandlerParams{ReviewUC: mockUsecase.NewMockReviewUsecase(t), Logger: logger}),
			StatsHandler:   handler.NewStatsHandler(handler.StatsHandlerParams{StatsUC: fx.statsUC}),
			MediaHandler:   handler.NewMediaHandler(handler.MediaHandlerParams{Storage: mockSvc.NewMockMediaStorage(t), Logger: logger}),
			AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{TokenService: fx.tokens, Logger: logger}),
			Metrics:        m,
			Config:         cfg,
		},
	})

	return fx
}

func (fx serverFixtures) do(method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_PublicRoutes(t *testing.T) {
	fx := newTestEcho(t)
	businessID := uuid.New()
	fx.statsUC.EXPECT().BaseInfo(mock.Anything).Return(&entity.PlatformStats{}, nil).Once()
	fx.orderUC.EXPECT().CountCompleted(mock.Anything, businessID).Return(int64(1), nil).Once()

	assert.Equal(t, http.StatusOK, fx.do(http.MethodGet, "/health", "", "").Code)
	assert.Equal(t, http.StatusOK, fx.do(http.MethodGet, "/api/base-info/", "", "").Code)
	assert.Equal(t, http.StatusOK, fx.do(http.MethodGet, "/api/completed-order-count/"+businessID.String()+"/", "", "").Code)

	rec := fx.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "bazaar_http_requests_total")
}

func TestServer_ProtectedRoutes(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		fx := newTestEcho(t)

		rec := fx.do(http.MethodGet, "/api/orders/", "", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
	})

	t.Run("rejected token", func(t *testing.T) {
		fx := newTestEcho(t)
		fx.tokens.EXPECT().ValidateToken("forged").Return(nil, errors.New("signature is invalid")).Once()

		rec := fx.do(http.MethodPost, "/api/orders/", "forged", `{"offer_detail_id":"`+uuid.NewString()+`"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token reaches the handler", func(t *testing.T) {
		fx := newTestEcho(t)
		claims := &service.Claims{UserID: uuid.New(), Role: entity.RoleCustomer}
		fx.tokens.EXPECT().ValidateToken("good").Return(claims, nil).Once()
		fx.orderUC.EXPECT().ListOrders(mock.Anything, claims.Caller()).Return([]*entity.Order{}, nil).Once()

		rec := fx.do(http.MethodGet, "/api/orders/", "good", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	})
}
