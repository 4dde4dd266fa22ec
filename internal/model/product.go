package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog record. Seq is the company-scoped sequential id
// (1, 2, 3, ...). Name, price and image are fixed at creation; only stock
// and the cumulative sold counter mutate, and only through a committed
// purchase.
type Product struct {
	BaseModel
	CompanyID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_products_company_seq" json:"company_id"`
	Company   Company   `json:"company,omitempty" validate:"-"`
	Seq       uint64    `gorm:"not null;uniqueIndex:idx_products_company_seq" json:"seq"`

	Name     string          `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Price    decimal.Decimal `gorm:"type:varchar(78);not null" json:"price" validate:"amount"`
	ImageURL string          `gorm:"type:text" json:"image_url"`
	Stock    int64           `gorm:"not null;default:0" json:"stock" validate:"gte=0"`
	Sold     int64           `gorm:"not null;default:0" json:"sold"`
	IsActive bool            `gorm:"default:true" json:"is_active"`
}
