package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderModel mirrors the 'orders' table. Tier columns are copied from
// offer_details when the order is placed and carry no foreign key to it.
type OrderModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerUserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	BusinessUserID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_orders_business_status"`
	Title              string          `gorm:"type:varchar(255);not null"`
	Revisions          int             `gorm:"not null"`
	DeliveryTimeInDays int             `gorm:"not null"`
	Price              decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Features           []string        `gorm:"type:jsonb;serializer:json;not null"`
	OfferType          string          `gorm:"type:varchar(20);not null"`
	Status             string          `gorm:"type:varchar(20);not null;index:idx_orders_business_status"`
	CreatedAt          time.Time       `gorm:"index"`
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// BeforeCreate assigns a time-ordered ID when none is set.
func (m *OrderModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
