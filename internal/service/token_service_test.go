package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitSupply_MintsOnceToTreasury(t *testing.T) {
	core := newTestCore(t)
	supply := decimal.NewFromInt(1_000_000)

	require.NoError(t, core.tokens.InitSupply(TreasuryAccount, supply))

	balance, err := core.tokens.BalanceOf(TreasuryAccount)
	require.NoError(t, err)
	requireAmount(t, supply, balance)

	// Repeated boots never issue additional tokens
	require.NoError(t, core.tokens.InitSupply(TreasuryAccount, supply))
	total, err := core.tokens.TotalSupply()
	require.NoError(t, err)
	requireAmount(t, supply, total)
}

func TestTransfer_MovesBalanceAndConservesSupply(t *testing.T) {
	core := newTestCore(t)
	supply := decimal.NewFromInt(1000)
	require.NoError(t, core.tokens.InitSupply(TreasuryAccount, supply))

	require.NoError(t, core.tokens.Transfer(TreasuryAccount, "alice", decimal.NewFromInt(400)))

	treasury, _ := core.tokens.BalanceOf(TreasuryAccount)
	alice, _ := core.tokens.BalanceOf("alice")
	requireAmount(t, decimal.NewFromInt(600), treasury)
	requireAmount(t, decimal.NewFromInt(400), alice)

	total, err := core.tokens.TotalSupply()
	require.NoError(t, err)
	requireAmount(t, supply, total)
}

func TestTransfer_InsufficientBalance(t *testing.T) {
	core := newTestCore(t)
	require.NoError(t, core.tokens.InitSupply(TreasuryAccount, decimal.NewFromInt(100)))
	require.NoError(t, core.tokens.Transfer(TreasuryAccount, "alice", decimal.NewFromInt(50)))

	err := core.tokens.Transfer("alice", "bob", decimal.NewFromInt(51))
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	alice, _ := core.tokens.BalanceOf("alice")
	bob, _ := core.tokens.BalanceOf("bob")
	requireAmount(t, decimal.NewFromInt(50), alice)
	requireAmount(t, decimal.Zero, bob)
}

func TestTransfer_RejectsInvalidAmounts(t *testing.T) {
	core := newTestCore(t)
	require.NoError(t, core.tokens.InitSupply(TreasuryAccount, decimal.NewFromInt(100)))

	err := core.tokens.Transfer(TreasuryAccount, "alice", decimal.NewFromInt(-5))
	assert.ErrorIs(t, err, ErrInvalidAmount)

	err = core.tokens.Transfer(TreasuryAccount, "alice", decimal.RequireFromString("1.5"))
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestApproveAndTransferFrom(t *testing.T) {
	core := newTestCore(t)
	require.NoError(t, core.tokens.InitSupply(TreasuryAccount, decimal.NewFromInt(1000)))
	require.NoError(t, core.tokens.Transfer(TreasuryAccount, "alice", decimal.NewFromInt(500)))
	require.NoError(t, core.tokens.Approve("alice", "spender", decimal.NewFromInt(300)))

	allowance, err := core.tokens.Allowance("alice", "spender")
	require.NoError(t, err)
	requireAmount(t, decimal.NewFromInt(300), allowance)

	require.NoError(t, core.tokens.TransferFrom("spender", "alice", "bob", decimal.NewFromInt(200)))

	allowance, _ = core.tokens.Allowance("alice", "spender")
	requireAmount(t, decimal.NewFromInt(100), allowance)
	bob, _ := core.tokens.BalanceOf("bob")
	requireAmount(t, decimal.NewFromInt(200), bob)

	// Remaining allowance no longer covers this pull
	err = core.tokens.TransferFrom("spender", "alice", "bob", decimal.NewFromInt(200))
	assert.ErrorIs(t, err, ErrInsufficientAllowance)
}

func TestTransferFrom_WithoutApproval(t *testing.T) {
	core := newTestCore(t)
	require.NoError(t, core.tokens.InitSupply(TreasuryAccount, decimal.NewFromInt(1000)))
	require.NoError(t, core.tokens.Transfer(TreasuryAccount, "alice", decimal.NewFromInt(500)))

	err := core.tokens.TransferFrom("spender", "alice", "bob", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ErrInsufficientAllowance)
}

func TestTransferFrom_AllowanceDoesNotCreateBalance(t *testing.T) {
	core := newTestCore(t)
	require.NoError(t, core.tokens.InitSupply(TreasuryAccount, decimal.NewFromInt(1000)))
	require.NoError(t, core.tokens.Transfer(TreasuryAccount, "alice", decimal.NewFromInt(10)))
	// Allowance above the actual balance
	require.NoError(t, core.tokens.Approve("alice", "spender", decimal.NewFromInt(100)))

	err := core.tokens.TransferFrom("spender", "alice", "bob", decimal.NewFromInt(50))
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	// The failed pull consumed no allowance
	allowance, _ := core.tokens.Allowance("alice", "spender")
	requireAmount(t, decimal.NewFromInt(100), allowance)
}
