package service

import "errors"

// Error taxonomy of the registry/ledger core. Every error is terminal for
// the operation that raised it: no retry, no partial commit.
var (
	// ErrAlreadyRegistered rejects a duplicate company owner or a duplicate
	// company/client relationship.
	ErrAlreadyRegistered = errors.New("already registered")

	// ErrNotFound covers every lookup miss, including inactive records that
	// must not be acted upon.
	ErrNotFound = errors.New("record not found")

	// ErrCompanyNotActive rejects catalog writes against an unknown or
	// deactivated company.
	ErrCompanyNotActive = errors.New("company is not registered or not active")

	// ErrUnauthorized is the transport-level gate: a writer-only registry
	// entry point was called by anything other than the authorized writer.
	ErrUnauthorized = errors.New("caller is not the authorized writer")

	// ErrForbidden is the business-rule gate: the caller is neither the
	// platform administrator nor the owner of the company acted upon.
	ErrForbidden = errors.New("caller may not act for this company")

	ErrInsufficientStock     = errors.New("insufficient stock")
	ErrInsufficientBalance   = errors.New("insufficient token balance")
	ErrInsufficientAllowance = errors.New("insufficient token allowance")

	// ErrInsufficientTokenBalance is the purchase-level failure when the
	// client's balance or allowance cannot cover the gross total.
	ErrInsufficientTokenBalance = errors.New("insufficient token balance or allowance for purchase")

	// ErrInvalidAmount rejects negative or fractional minor-unit amounts.
	// Amounts are arbitrary-precision decimals, so overflow cannot occur;
	// malformed input is the only arithmetic failure left.
	ErrInvalidAmount = errors.New("amount must be a non-negative integer of minor units")

	// ErrInvalidPurchase rejects empty or mismatched product/quantity lists
	// before any validation against state.
	ErrInvalidPurchase = errors.New("product ids and quantities must be non-empty and of equal length")
)
