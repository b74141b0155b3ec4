// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when no account matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when the username or email is taken.
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository persists accounts together with their profile.
type UserRepository interface {
	// FindByID retrieves an account and its profile.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves an account by its login name.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves an account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new account and its profile.
	Create(ctx context.Context, user *entity.User) error

	// Update saves account fields and profile fields. The profile role is never changed.
	Update(ctx context.Context, user *entity.User) error

	// ListByRole returns every account whose profile holds the role, oldest first.
	ListByRole(ctx context.Context, role entity.Role) ([]*entity.User, error)

	// CountByRole counts profiles holding the role.
	CountByRole(ctx context.Context, role entity.Role) (int64, error)
}
