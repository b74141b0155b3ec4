package handler

import (
	"net/http"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	mockUsecase "bazaar/internal/mocks/usecase"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestReviewHandler(t *testing.T) (*ReviewHandler, *mockUsecase.MockReviewUsecase) {
	reviewUC := mockUsecase.NewMockReviewUsecase(t)

	return NewReviewHandler(ReviewHandlerParams{ReviewUC: reviewUC, Logger: discardLogger()}), reviewUC
}

func TestReviewHandler_CreateReview(t *testing.T) {
	h, reviewUC := newTestReviewHandler(t)
	caller := customerCaller()
	businessID := uuid.New()
	review := &entity.Review{ID: uuid.New(), BusinessUserID: businessID, ReviewerID: caller.UserID, Rating: 4, Description: "Great"}
	reviewUC.EXPECT().CreateReview(mock.Anything, *caller, &usecase.CreateReviewInput{
		BusinessUserID: &businessID,
		Rating:         4,
		Description:    "Great",
	}).Return(review, nil).Once()

	body := `{"business_user":"` + businessID.String() + `","rating":4,"description":"Great"}`
	c, rec := newTestContext(http.MethodPost, "/api/reviews/", body, caller)

	require.NoError(t, h.CreateReview(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var got reviewResponse
	decodeData(t, rec, &got)
	assert.Equal(t, review.ID, got.ID)
	assert.Equal(t, businessID, got.BusinessUser)
	assert.Equal(t, caller.UserID, got.Reviewer)
	assert.Equal(t, 4, got.Rating)
}

func TestReviewHandler_CreateReview_Duplicate(t *testing.T) {
	h, reviewUC := newTestReviewHandler(t)
	caller := customerCaller()
	reviewUC.EXPECT().CreateReview(mock.Anything, *caller, mock.Anything).Return(nil, domainerrors.ErrReviewAlreadyExists).Once()

	c, rec := newTestContext(http.MethodPost, "/api/reviews/", `{"business_user":"`+uuid.NewString()+`","rating":5}`, caller)

	require.NoError(t, h.CreateReview(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestReviewHandler_ListReviews(t *testing.T) {
	t.Run("filters", func(t *testing.T) {
		h, reviewUC := newTestReviewHandler(t)
		businessID := uuid.New()
		reviewUC.EXPECT().ListReviews(mock.Anything, &usecase.ListReviewsInput{
			BusinessUserID: &businessID,
			Ordering:       "-rating",
		}).Return([]*entity.Review{{ID: uuid.New(), Rating: 5}, {ID: uuid.New(), Rating: 3}}, nil).Once()

		c, rec := newTestContext(http.MethodGet, "/api/reviews/?business_user_id="+businessID.String()+"&ordering=-rating", "", customerCaller())

		require.NoError(t, h.ListReviews(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got []reviewResponse
		decodeData(t, rec, &got)
		require.Len(t, got, 2)
		assert.Equal(t, 5, got[0].Rating)
	})

	t.Run("bad reviewer id", func(t *testing.T) {
		h, _ := newTestReviewHandler(t)
		c, rec := newTestContext(http.MethodGet, "/api/reviews/?reviewer_id=42", "", customerCaller())

		require.NoError(t, h.ListReviews(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode(t, rec).Error.Details, "reviewer_id")
	})
}

func TestReviewHandler_UpdateReview(t *testing.T) {
	h, reviewUC := newTestReviewHandler(t)
	caller := customerCaller()
	reviewID := uuid.New()
	rating := 2
	reviewUC.EXPECT().UpdateReview(mock.Anything, *caller, reviewID, &usecase.UpdateReviewInput{Rating: &rating}).
		Return(&entity.Review{ID: reviewID, ReviewerID: caller.UserID, Rating: 2}, nil).
		Once()

	c, rec := newTestContext(http.MethodPatch, "/api/reviews/"+reviewID.String()+"/", `{"rating":2}`, caller)
	withParam(c, "id", reviewID.String())

	require.NoError(t, h.UpdateReview(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReviewHandler_DeleteReview(t *testing.T) {
	h, reviewUC := newTestReviewHandler(t)
	caller := customerCaller()
	reviewID := uuid.New()
	reviewUC.EXPECT().DeleteReview(mock.Anything, *caller, reviewID).Return(nil).Once()

	c, rec := newTestContext(http.MethodDelete, "/api/reviews/"+reviewID.String()+"/", "", caller)
	withParam(c, "id", reviewID.String())

	require.NoError(t, h.DeleteReview(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
