package service

import (
	"time"

	"bazaar/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens. Role and staff
// flag are embedded so a request can be authorized without a profile lookup.
type Claims struct {
	UserID  uuid.UUID   `json:"uid"`
	Role    entity.Role `json:"role"`
	IsStaff bool        `json:"staff,omitempty"`
	jwt.RegisteredClaims
}

// Caller converts the claims into the authorization view of the account.
func (c *Claims) Caller() entity.Caller {
	return entity.Caller{
		UserID:  c.UserID,
		Role:    c.Role,
		IsStaff: c.IsStaff,
	}
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token for the account.
	GenerateToken(user *entity.User) (string, error)

	// ValidateToken parses and verifies a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenDuration returns the configured lifetime of access tokens.
	TokenDuration() time.Duration
}
