package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewModel mirrors the 'reviews' table. A reviewer rates a business once.
type ReviewModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	BusinessUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_business_reviewer"`
	ReviewerID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_business_reviewer"`
	Rating         int       `gorm:"not null;check:chk_reviews_rating,rating BETWEEN 1 AND 5"`
	Description    string    `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// BeforeCreate assigns a time-ordered ID when none is set.
func (m *ReviewModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
