package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TokenAccount holds one account's balance of the platform token, in minor
// units. The total supply is minted once to the treasury account at boot;
// transfers only move balance between accounts, so the sum over all rows is
// constant.
type TokenAccount struct {
	Holder    string          `gorm:"type:varchar(255);primaryKey" json:"holder"`
	Balance   decimal.Decimal `gorm:"type:varchar(78);not null;default:0" json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TokenAllowance is the amount Spender may pull from Owner's balance via
// TransferFrom. Approve overwrites it; each TransferFrom consumes from it.
type TokenAllowance struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Owner     string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_allowances_owner_spender" json:"owner"`
	Spender   string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_allowances_owner_spender" json:"spender"`
	Amount    decimal.Decimal `gorm:"type:varchar(78);not null;default:0" json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
