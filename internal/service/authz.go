package service

import (
	"sync"

	"go-commerce-ledger/internal/model"

	"github.com/shopspring/decimal"
)

// Caller identifies the authenticated account behind a request, as resolved
// by the auth middleware.
type Caller struct {
	AccountID string
	Role      string
}

func (c Caller) IsAdmin() bool {
	return c.Role == model.RolePlatformAdmin
}

// CanActFor is the business-rule authorization check: a mutating request is
// honored only when the caller is the platform administrator or the owner
// of the company being acted upon.
func CanActFor(caller Caller, companyOwner string) bool {
	return caller.IsAdmin() || caller.AccountID == companyOwner
}

// writerGate is the transport-level authorization pattern shared by the
// mutable registries: after the administrator designates a writer (normally
// the purchase orchestrator), mutating entry points accept calls only from
// that writer.
type writerGate struct {
	mu     sync.RWMutex
	writer string
}

func (g *writerGate) set(caller Caller, writer string) error {
	if !caller.IsAdmin() {
		return ErrForbidden
	}
	g.mu.Lock()
	g.writer = writer
	g.mu.Unlock()
	return nil
}

func (g *writerGate) check(writer string) error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.writer == "" || writer != g.writer {
		return ErrUnauthorized
	}
	return nil
}

// validAmount accepts non-negative integral minor-unit amounts.
func validAmount(amount decimal.Decimal) bool {
	return !amount.IsNegative() && amount.IsInteger()
}
