package impl

import (
	"context"
	"log/slog"
	"strings"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const invalidCredentialsMessage = "Invalid username or password."

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	hasher         service.PasswordHasher
	passwordPolicy service.PasswordPolicy
	tokenService   service.TokenService
	logger         *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	Hasher         service.PasswordHasher
	PasswordPolicy service.PasswordPolicy
	TokenService   service.TokenService
	Logger         *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		hasher:         params.Hasher,
		passwordPolicy: params.PasswordPolicy,
		tokenService:   params.TokenService,
		logger:         params.Logger,
	}
}

// Register opens an account with its profile and returns a token for it.
func (srv *accountService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	log := loggerFrom(ctx, srv.logger)
	log.Info("Starting registration", "username", input.Username, "role", input.Role)

	// 1. Validate the payload
	username := strings.TrimSpace(input.Username)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if err := srv.validateRegistration(username, email, input); err != nil {
		return nil, err
	}

	// 2. Hash the password outside the transaction
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Profile:      &entity.Profile{Role: input.Role},
	}

	// 3. Check uniqueness and create account and profile together
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		errs := domainerrors.FieldErrors{}
		if taken, err := exists(userRepo.FindByUsername(ctx, username)); err != nil {
			return err
		} else if taken {
			errs.Add("username", "A user with that username already exists.")
		}
		if taken, err := exists(userRepo.FindByEmail(ctx, email)); err != nil {
			return err
		} else if taken {
			errs.Add("email", "This email is already in use.")
		}
		if err := errs.AsError(); err != nil {
			return err
		}

		if err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUserAlreadyExists) {
				return errors.Wrap(domainerrors.ErrConflict, "username or email taken concurrently")
			}

			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register")
	}

	// 4. Issue the token
	token, err := srv.tokenService.GenerateToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	log.Info("Registration completed", "userID", user.ID, "role", input.Role)

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

func (srv *accountService) validateRegistration(username, email string, input usecase.RegisterInput) error {
	errs := domainerrors.FieldErrors{}

	if username == "" {
		errs.Add("username", "This field may not be blank.")
	}
	if email == "" {
		errs.Add("email", "This field may not be blank.")
	}
	if input.Password == "" {
		errs.Add("password", "This field may not be blank.")
	} else {
		for _, problem := range srv.passwordPolicy.Validate(input.Password) {
			errs.Add("password", problem)
		}
	}
	if input.Password != input.RepeatedPassword {
		errs.Add("repeated_password", "Passwords do not match.")
	}
	if !input.Role.IsValid() {
		errs.Add("type", "Choose either customer or business.")
	}

	return errs.AsError()
}

// exists turns a user lookup into a presence flag.
func exists(_ *entity.User, err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if errors.Is(err, repository.ErrUserNotFound) {
		return false, nil
	}

	return false, errors.Wrap(err, "failed to check account uniqueness")
}

// Login verifies the credentials and returns a token for the account.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, strings.TrimSpace(input.Username))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.NewFieldError("non_field_errors", invalidCredentialsMessage)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		loggerFrom(ctx, srv.logger).Warn("Login rejected", "userID", user.ID)

		return nil, domainerrors.NewFieldError("non_field_errors", invalidCredentialsMessage)
	}

	token, err := srv.tokenService.GenerateToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	loggerFrom(ctx, srv.logger).Info("Login succeeded", "userID", user.ID)

	return &usecase.AuthOutput{Token: token, User: user}, nil
}
