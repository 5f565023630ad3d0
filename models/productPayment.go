package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductPayment is either a self-contained sale (Amount set, EntityType empty)
// or a pointer into one of the product entity tables (Amount unset, resolved
// through EntityType + EntityId).
type ProductPayment struct {
	ID          int                 `gorm:"primary_key" json:"id"`
	ClientId    int                 `gorm:"index;not null" json:"client_id"`
	ProductName string              `gorm:"size:100;index;not null" json:"product_name"`
	Amount      decimal.NullDecimal `gorm:"type:decimal(20,4)" json:"amount"`
	EntityType  string              `gorm:"size:50;index" json:"entity_type"`
	EntityId    int                 `json:"entity_id"`
	PaymentDate *time.Time          `gorm:"type:date;index" json:"payment_date"`
	CreatedAt   time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time           `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p ProductPayment) IsDirectSale() bool {
	return p.Amount.Valid && p.EntityType == ""
}

func (p ProductPayment) IsCoreProduct() bool {
	return p.ProductName == CoreProductName
}
