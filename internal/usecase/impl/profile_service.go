package impl

import (
	"context"
	"log/slog"
	"strings"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const avatarFolder = "profiles"

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	storage       service.MediaStorage
	maxUploadSize int64
	logger        *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Storage   service.MediaStorage
	Config    *config.Config
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	var maxUploadSize int64
	if params.Config != nil {
		maxUploadSize = params.Config.Media.MaxUploadSize
	}

	return &profileService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		storage:       params.Storage,
		maxUploadSize: maxUploadSize,
		logger:        params.Logger,
	}
}

// GetProfile retrieves an account with its profile.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	srv.logger.Debug("Getting user profile", "userID", userID)

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, translateRepoError(err, "failed to get profile")
	}

	return user, nil
}

// UpdateProfile edits the caller's own account and profile fields. The role never changes.
func (srv *profileService) UpdateProfile(
	ctx context.Context,
	caller entity.Caller,
	userID uuid.UUID,
	input *usecase.UpdateProfileInput,
) (*entity.User, error) {
	if !caller.Is(userID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "profiles can only be edited by their owner")
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Find the user
		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return translateRepoError(err, "failed to find user")
		}

		// 2. Apply the changed fields
		applyProfileInput(user, input)
		if input.Email != nil {
			other, err := userRepo.FindByEmail(ctx, user.Email)
			switch {
			case err == nil && other.ID != user.ID:
				return domainerrors.NewFieldError("email", "This email is already in use.")
			case err != nil && !errors.Is(err, repository.ErrUserNotFound):
				return errors.Wrap(err, "failed to check email")
			}
		}

		// 3. Save and reload
		if err := userRepo.Update(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUserAlreadyExists) {
				return domainerrors.NewFieldError("email", "This email is already in use.")
			}

			return translateRepoError(err, "failed to update profile")
		}
		updated, err = userRepo.FindByID(ctx, userID)

		return translateRepoError(err, "failed to reload profile")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	loggerFrom(ctx, srv.logger).Info("Profile updated", "userID", userID)

	return updated, nil
}

func applyProfileInput(user *entity.User, input *usecase.UpdateProfileInput) {
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if user.Profile == nil {
		user.Profile = &entity.Profile{UserID: user.ID}
	}
	if input.Location != nil {
		user.Profile.Location = *input.Location
	}
	if input.Tel != nil {
		user.Profile.Tel = *input.Tel
	}
	if input.Description != nil {
		user.Profile.Description = *input.Description
	}
	if input.WorkingHours != nil {
		user.Profile.WorkingHours = *input.WorkingHours
	}
}

// UploadAvatar stores a new profile picture for the caller.
func (srv *profileService) UploadAvatar(
	ctx context.Context,
	caller entity.Caller,
	userID uuid.UUID,
	upload *usecase.UploadInput,
) (*entity.User, error) {
	if !caller.Is(userID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "profiles can only be edited by their owner")
	}
	if err := validateImageUpload("file", upload, srv.maxUploadSize); err != nil {
		return nil, err
	}

	reference, err := srv.storage.Save(ctx, avatarFolder, upload.Filename, upload.ContentType, upload.Content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store avatar")
	}

	var (
		updated  *entity.User
		previous string
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return translateRepoError(err, "failed to find user")
		}
		if user.Profile == nil {
			user.Profile = &entity.Profile{UserID: user.ID}
		}
		previous = user.Profile.File
		user.Profile.File = reference

		if err := userRepo.Update(ctx, user); err != nil {
			return translateRepoError(err, "failed to save avatar")
		}
		updated, err = userRepo.FindByID(ctx, userID)

		return translateRepoError(err, "failed to reload profile")
	})
	if err != nil {
		discardMedia(ctx, srv.storage, loggerFrom(ctx, srv.logger), reference)

		return nil, errors.Wrap(err, "failed to upload avatar")
	}

	discardMedia(ctx, srv.storage, loggerFrom(ctx, srv.logger), previous)
	loggerFrom(ctx, srv.logger).Info("Avatar replaced", "userID", userID, "reference", reference)

	return updated, nil
}

// ListProfiles returns every account holding the role.
func (srv *profileService) ListProfiles(ctx context.Context, role entity.Role) ([]*entity.User, error) {
	if !role.IsValid() {
		return nil, domainerrors.NewFieldError("type", "Choose either customer or business.")
	}

	users, err := srv.userRepo.ListByRole(ctx, role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	return users, nil
}
