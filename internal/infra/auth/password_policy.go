package auth

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"bazaar/config"
	"bazaar/internal/domain/service"
)

type passwordPolicy struct {
	rules config.PasswordStrengthConfig
}

// NewPasswordPolicy builds the registration password rules from config.
func NewPasswordPolicy(cfg *config.Config) service.PasswordPolicy {
	return &passwordPolicy{rules: cfg.PasswordStrength}
}

// Validate returns one message per rule the password breaks.
func (p *passwordPolicy) Validate(password string) []string {
	var problems []string

	length := utf8.RuneCountInString(password)
	if p.rules.MinLength > 0 && length < p.rules.MinLength {
		problems = append(problems, fmt.Sprintf("Ensure this field has at least %d characters.", p.rules.MinLength))
	}
	if p.rules.MaxLength > 0 && length > p.rules.MaxLength {
		problems = append(problems, fmt.Sprintf("Ensure this field has no more than %d characters.", p.rules.MaxLength))
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if p.rules.RequireUppercase && !hasUpper {
		problems = append(problems, "The password must contain an uppercase letter.")
	}
	if p.rules.RequireLowercase && !hasLower {
		problems = append(problems, "The password must contain a lowercase letter.")
	}
	if p.rules.RequireNumbers && !hasNumber {
		problems = append(problems, "The password must contain a digit.")
	}
	if p.rules.RequireSpecial && !hasSpecial {
		problems = append(problems, "The password must contain a special character.")
	}

	return problems
}
