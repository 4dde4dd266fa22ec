package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice is an append-only record of one completed purchase. Number is the
// company-scoped sequential invoice number (1, 2, 3, ...); the BaseModel
// UUID doubles as the global identifier. Paid is always true at creation
// because payment is synchronous with invoicing; the record is never
// mutated afterwards.
type Invoice struct {
	BaseModel
	CompanyID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_invoices_company_number" json:"company_id"`
	Company   Company   `json:"company,omitempty" validate:"-"`
	Number    uint64    `gorm:"not null;uniqueIndex:idx_invoices_company_number" json:"number"`

	ClientID string          `gorm:"type:varchar(255);not null" json:"client_id"`
	Date     time.Time       `gorm:"not null" json:"date"`
	Total    decimal.Decimal `gorm:"type:varchar(78);not null" json:"total"`
	Paid     bool            `gorm:"not null;default:true" json:"paid"`

	Items []InvoiceItem `json:"items"`
}

// InvoiceItem is one line of an invoice. LineTotal is exactly
// UnitPrice * Quantity, captured at purchase time.
type InvoiceItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	InvoiceID uuid.UUID       `gorm:"type:uuid;not null;index" json:"invoice_id"`
	ProductID uint64          `gorm:"not null" json:"product_id"` // company-scoped product seq
	Quantity  int64           `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:varchar(78);not null" json:"unit_price"`
	LineTotal decimal.Decimal `gorm:"type:varchar(78);not null" json:"line_total"`
}
