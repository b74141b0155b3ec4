package usecase

import (
	"context"
	"io"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, caller entity.Caller, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	UploadAvatar(ctx context.Context, caller entity.Caller, userID uuid.UUID, upload *UploadInput) (*entity.User, error)
	ListProfiles(ctx context.Context, role entity.Role) ([]*entity.User, error)
}

// UpdateProfileInput holds the editable account and profile fields. Nil
// fields are left untouched.
type UpdateProfileInput struct {
	FirstName    *string
	LastName     *string
	Email        *string
	Location     *string
	Tel          *string
	Description  *string
	WorkingHours *string
}

// UploadInput is a file received from a client.
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}
