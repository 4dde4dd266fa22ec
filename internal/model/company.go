package model

import "github.com/shopspring/decimal"

// Company is one tenant of the platform. Exactly one record may exist per
// owner account; companies are deactivated, never deleted.
//
// ProductSeq and InvoiceSeq are the per-company monotonic counters backing
// sequential product ids and invoice numbers. They are advanced only while
// the company row is locked inside a committing transaction, so the
// sequences stay contiguous with no gaps.
type Company struct {
	BaseModel
	OwnerID  string `gorm:"type:varchar(255);uniqueIndex;not null" json:"owner_id" validate:"required"`
	Name     string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	ProductSeq uint64 `gorm:"not null;default:0" json:"product_seq"`
	InvoiceSeq uint64 `gorm:"not null;default:0" json:"invoice_seq"`

	// Sum of net amounts received from completed purchases (minor units).
	TotalRevenue decimal.Decimal `gorm:"type:varchar(78);not null;default:0" json:"total_revenue"`
}
