// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account in the marketplace. Every account owns exactly one Profile.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the account.
	Username     string    // Unique login name.
	Email        string    // Unique contact email.
	FirstName    string
	LastName     string
	PasswordHash string
	IsStaff      bool     // Staff may moderate orders and reviews they do not own.
	Profile      *Profile // Created together with the account.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile holds the marketplace role and the public contact data of an account.
type Profile struct {
	UserID       uuid.UUID
	Role         Role
	File         string // Avatar reference returned by the media storage.
	Location     string
	Tel          string
	Description  string
	WorkingHours string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Role returns the profile role, or an empty Role when the profile is not loaded.
func (u *User) Role() Role {
	if u.Profile == nil {
		return ""
	}

	return u.Profile.Role
}

// Caller builds the authorization view of this account.
func (u *User) Caller() Caller {
	return Caller{
		UserID:  u.ID,
		Role:    u.Role(),
		IsStaff: u.IsStaff,
	}
}
