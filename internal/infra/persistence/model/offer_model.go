package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OfferModel mirrors the 'offers' table.
type OfferModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title           string          `gorm:"type:varchar(255);not null"`
	Image           string          `gorm:"type:varchar(255)"`
	Description     string          `gorm:"type:text"`
	MinPrice        decimal.Decimal `gorm:"type:numeric(10,2);not null;index"`
	MinDeliveryTime int             `gorm:"not null;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time `gorm:"index"`

	Details []OfferDetailModel `gorm:"foreignKey:OfferID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "offers"
}

// BeforeCreate assigns a time-ordered ID when none is set.
func (m *OfferModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// OfferDetailModel mirrors the 'offer_details' table. One row per (offer, offer_type).
type OfferDetailModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OfferID            uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_offer_details_offer_type"`
	OfferType          string          `gorm:"type:varchar(20);not null;uniqueIndex:idx_offer_details_offer_type"`
	Title              string          `gorm:"type:varchar(255);not null"`
	Revisions          int             `gorm:"not null"`
	DeliveryTimeInDays int             `gorm:"not null"`
	Price              decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Features           []string        `gorm:"type:jsonb;serializer:json;not null"`
}

// TableName explicitly sets the table name for GORM.
func (OfferDetailModel) TableName() string {
	return "offer_details"
}

// BeforeCreate assigns a time-ordered ID when none is set.
func (m *OfferDetailModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
