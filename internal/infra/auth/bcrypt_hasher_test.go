package auth

import (
	"testing"

	"bazaar/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	cfg := config.Defaults()
	cfg.Auth.BcryptCost = bcrypt.MinCost
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)
	assert.NotEqual(t, "StrongPass123!", hash)

	assert.True(t, hasher.Check("StrongPass123!", hash))
	assert.False(t, hasher.Check("wrong", hash))

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	cfg := config.Defaults()
	cfg.Auth.BcryptCost = 99

	hasher := NewBcryptHasher(cfg).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}

func TestPasswordPolicy_Validate(t *testing.T) {
	cfg := config.Defaults()
	cfg.PasswordStrength = config.PasswordStrengthConfig{
		MinLength:        8,
		MaxLength:        20,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
	}
	policy := NewPasswordPolicy(cfg)

	assert.Empty(t, policy.Validate("Str0ng!pass"))
	assert.Len(t, policy.Validate("short"), 4)
	assert.Len(t, policy.Validate("alllowercase"), 3)
	assert.Len(t, policy.Validate("Aa1!aaaaaaaaaaaaaaaaaaaaa"), 1)
}
