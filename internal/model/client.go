package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Client is the relationship between one company and one client account.
// The same client account may hold independent records under different
// companies. The cumulative statistics only ever grow, and only as a side
// effect of a committed purchase.
type Client struct {
	BaseModel
	CompanyID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_clients_company_client" json:"company_id"`
	Company   Company   `json:"company,omitempty" validate:"-"`
	ClientID  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_clients_company_client" json:"client_id" validate:"required"`

	// Cumulative gross amount of completed purchases (minor units).
	TotalPurchases decimal.Decimal `gorm:"type:varchar(78);not null;default:0" json:"total_purchases"`
	// Cumulative spend matches TotalPurchases while the client pays the
	// gross amount exactly; kept as its own column so the two can diverge
	// if a surcharge model is ever introduced.
	TotalSpent   decimal.Decimal `gorm:"type:varchar(78);not null;default:0" json:"total_spent"`
	InvoiceCount int64           `gorm:"not null;default:0" json:"invoice_count"`
	IsActive     bool            `gorm:"default:true" json:"is_active"`
}
