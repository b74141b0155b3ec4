package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a customer's rating of a business. A reviewer rates a given
// business at most once.
type Review struct {
	ID             uuid.UUID
	BusinessUserID uuid.UUID
	ReviewerID     uuid.UUID
	Rating         int
	Description    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ValidRating reports whether rating is within the accepted scale.
func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}
