package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewServiceFixtures struct {
	service    usecase.ReviewUsecase
	txManager  *mockRepo.MockTransactionManager
	reviewRepo *mockRepo.MockReviewRepository
	userRepo   *mockRepo.MockUserRepository
	metrics    *mockSvc.MockMetricsRecorder
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	fx := reviewServiceFixtures{
		txManager:  mockRepo.NewMockTransactionManager(t),
		reviewRepo: mockRepo.NewMockReviewRepository(t),
		userRepo:   mockRepo.NewMockUserRepository(t),
		metrics:    mockSvc.NewMockMetricsRecorder(t),
	}
	fx.service = NewReviewService(ReviewServiceParams{
		TxManager:  fx.txManager,
		ReviewRepo: fx.reviewRepo,
		Metrics:    fx.metrics,
		Logger:     discardLogger(),
	})

	return fx
}

func businessAccount(id uuid.UUID) *entity.User {
	return &entity.User{ID: id, Username: "studio", Profile: &entity.Profile{UserID: id, Role: entity.RoleBusiness}}
}

func TestReviewService_CreateReview_Success(t *testing.T) {
	fx := createTestReviewService(t)
	caller := customer()
	businessID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().UserRepo().Return(fx.userRepo)
		factory.EXPECT().ReviewRepo().Return(fx.reviewRepo)
		fx.userRepo.EXPECT().FindByID(mock.Anything, businessID).Return(businessAccount(businessID), nil).Once()
		fx.reviewRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(review *entity.Review) bool {
			return review.BusinessUserID == businessID && review.ReviewerID == caller.UserID && review.Rating == 4
		})).Return(nil).Once()
	})
	fx.metrics.EXPECT().ReviewWritten(4).Return().Once()

	review, err := fx.service.CreateReview(context.Background(), caller, &usecase.CreateReviewInput{
		BusinessUserID: &businessID,
		Rating:         4,
		Description:    "Fast and friendly",
	})

	require.NoError(t, err)
	assert.Equal(t, "Fast and friendly", review.Description)
}

func TestReviewService_CreateReview_BusinessForbidden(t *testing.T) {
	fx := createTestReviewService(t)
	businessID := uuid.New()

	_, err := fx.service.CreateReview(context.Background(), business(), &usecase.CreateReviewInput{
		BusinessUserID: &businessID,
		Rating:         5,
	})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestReviewService_CreateReview_InvalidPayload(t *testing.T) {
	caller := customer()

	tests := []struct {
		name      string
		input     usecase.CreateReviewInput
		wantField string
		wantMsg   string
	}{
		{name: "missing business", input: usecase.CreateReviewInput{Rating: 3}, wantField: "business_user", wantMsg: "This field is required."},
		{name: "self review", input: usecase.CreateReviewInput{BusinessUserID: &caller.UserID, Rating: 3}, wantField: "business_user", wantMsg: "You cannot review yourself."},
		{name: "rating too low", input: usecase.CreateReviewInput{BusinessUserID: new(uuid.UUID), Rating: 0}, wantField: "rating", wantMsg: ratingMessage},
		{name: "rating too high", input: usecase.CreateReviewInput{BusinessUserID: new(uuid.UUID), Rating: 6}, wantField: "rating", wantMsg: ratingMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestReviewService(t)

			_, err := fx.service.CreateReview(context.Background(), caller, &tt.input)

			assert.Contains(t, fieldErrors(t, err)[tt.wantField], tt.wantMsg)
		})
	}
}

func TestReviewService_CreateReview_TargetChecks(t *testing.T) {
	customerID := uuid.New()

	tests := []struct {
		name    string
		target  *entity.User
		findErr error
		wantMsg string
	}{
		{name: "unknown account", findErr: repository.ErrUserNotFound, wantMsg: "Invalid pk - object does not exist."},
		{
			name:    "customer account",
			target:  &entity.User{ID: customerID, Profile: &entity.Profile{UserID: customerID, Role: entity.RoleCustomer}},
			wantMsg: "Only business accounts can be reviewed.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestReviewService(t)

			expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
				factory.EXPECT().UserRepo().Return(fx.userRepo)
				fx.userRepo.EXPECT().FindByID(mock.Anything, customerID).Return(tt.target, tt.findErr).Once()
			})

			_, err := fx.service.CreateReview(context.Background(), customer(), &usecase.CreateReviewInput{
				BusinessUserID: &customerID,
				Rating:         2,
			})

			assert.Equal(t, []string{tt.wantMsg}, fieldErrors(t, err)["business_user"])
		})
	}
}

func TestReviewService_CreateReview_Duplicate(t *testing.T) {
	fx := createTestReviewService(t)
	businessID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().UserRepo().Return(fx.userRepo)
		factory.EXPECT().ReviewRepo().Return(fx.reviewRepo)
		fx.userRepo.EXPECT().FindByID(mock.Anything, businessID).Return(businessAccount(businessID), nil).Once()
		fx.reviewRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Review")).Return(repository.ErrReviewAlreadyExists).Once()
	})

	_, err := fx.service.CreateReview(context.Background(), customer(), &usecase.CreateReviewInput{
		BusinessUserID: &businessID,
		Rating:         5,
	})

	assert.ErrorIs(t, err, domainerrors.ErrReviewAlreadyExists)
}

func TestReviewService_UpdateReview(t *testing.T) {
	reviewerID := uuid.New()
	rating := 2
	description := "Changed my mind"

	t.Run("reviewer edits", func(t *testing.T) {
		fx := createTestReviewService(t)
		review := &entity.Review{ID: uuid.New(), BusinessUserID: uuid.New(), ReviewerID: reviewerID, Rating: 5}

		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			factory.EXPECT().ReviewRepo().Return(fx.reviewRepo)
			fx.reviewRepo.EXPECT().FindByID(mock.Anything, review.ID).Return(review, nil).Twice()
			fx.reviewRepo.EXPECT().Update(mock.Anything, review).Return(nil).Once()
		})

		updated, err := fx.service.UpdateReview(context.Background(),
			entity.Caller{UserID: reviewerID, Role: entity.RoleCustomer},
			review.ID,
			&usecase.UpdateReviewInput{Rating: &rating, Description: &description},
		)

		require.NoError(t, err)
		assert.Equal(t, 2, updated.Rating)
		assert.Equal(t, description, updated.Description)
	})

	t.Run("other customer forbidden", func(t *testing.T) {
		fx := createTestReviewService(t)
		review := &entity.Review{ID: uuid.New(), ReviewerID: reviewerID, Rating: 5}

		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			factory.EXPECT().ReviewRepo().Return(fx.reviewRepo)
			fx.reviewRepo.EXPECT().FindByID(mock.Anything, review.ID).Return(review, nil).Once()
		})

		_, err := fx.service.UpdateReview(context.Background(), customer(), review.ID, &usecase.UpdateReviewInput{Rating: &rating})

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("missing review", func(t *testing.T) {
		fx := createTestReviewService(t)
		reviewID := uuid.New()

		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			factory.EXPECT().ReviewRepo().Return(fx.reviewRepo)
			fx.reviewRepo.EXPECT().FindByID(mock.Anything, reviewID).Return(nil, repository.ErrReviewNotFound).Once()
		})

		_, err := fx.service.UpdateReview(context.Background(), customer(), reviewID, &usecase.UpdateReviewInput{Rating: &rating})

		assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
	})
}

func TestReviewService_DeleteReview_StaffAllowed(t *testing.T) {
	fx := createTestReviewService(t)
	review := &entity.Review{ID: uuid.New(), ReviewerID: uuid.New(), Rating: 1}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().ReviewRepo().Return(fx.reviewRepo)
		fx.reviewRepo.EXPECT().FindByID(mock.Anything, review.ID).Return(review, nil).Once()
		fx.reviewRepo.EXPECT().Delete(mock.Anything, review.ID).Return(nil).Once()
	})

	err := fx.service.DeleteReview(context.Background(), entity.Caller{UserID: uuid.New(), Role: entity.RoleCustomer, IsStaff: true}, review.ID)

	assert.NoError(t, err)
}

func TestReviewService_ListReviews(t *testing.T) {
	fx := createTestReviewService(t)
	businessID := uuid.New()
	reviews := []*entity.Review{{ID: uuid.New(), BusinessUserID: businessID, Rating: 4}}
	fx.reviewRepo.EXPECT().List(mock.Anything, repository.ReviewFilter{
		BusinessUserID: &businessID,
		Ordering:       repository.ReviewOrdering("-rating"),
	}).Return(reviews, nil).Once()

	got, err := fx.service.ListReviews(context.Background(), &usecase.ListReviewsInput{BusinessUserID: &businessID, Ordering: "-rating"})

	require.NoError(t, err)
	assert.Equal(t, reviews, got)

	_, err = fx.service.ListReviews(context.Background(), &usecase.ListReviewsInput{Ordering: "price"})
	assert.Contains(t, fieldErrors(t, err), "ordering")
}
