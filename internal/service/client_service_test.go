package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterClient(t *testing.T) {
	core := newTestCore(t)
	_, err := core.companies.Register(adminCaller, "acme-owner", "ACME")
	require.NoError(t, err)

	client, err := core.clients.Register(merchantCaller("acme-owner"), "acme-owner", "carol")
	require.NoError(t, err)
	assert.True(t, client.IsActive)
	requireAmount(t, decimal.Zero, client.TotalPurchases)
	assert.Equal(t, int64(0), client.InvoiceCount)

	_, err = core.clients.Register(merchantCaller("acme-owner"), "acme-owner", "carol")
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestRegisterClient_ScopedPerCompany(t *testing.T) {
	core := newTestCore(t)
	_, err := core.companies.Register(adminCaller, "acme-owner", "ACME")
	require.NoError(t, err)
	_, err = core.companies.Register(adminCaller, "globex-owner", "Globex")
	require.NoError(t, err)

	// The same client account gets independent records per company
	_, err = core.clients.Register(adminCaller, "acme-owner", "carol")
	require.NoError(t, err)
	_, err = core.clients.Register(adminCaller, "globex-owner", "carol")
	require.NoError(t, err)

	_, err = core.clients.Get("acme-owner", "carol")
	require.NoError(t, err)
	_, err = core.clients.Get("globex-owner", "carol")
	require.NoError(t, err)
}

func TestRegisterClient_UnknownCompany(t *testing.T) {
	core := newTestCore(t)
	_, err := core.clients.Register(adminCaller, "unknown-owner", "carol")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordPurchase_WriterGate(t *testing.T) {
	core := newTestCore(t)
	_, err := core.companies.Register(adminCaller, "acme-owner", "ACME")
	require.NoError(t, err)
	_, err = core.clients.Register(adminCaller, "acme-owner", "carol")
	require.NoError(t, err)

	company, err := core.companies.Get("acme-owner")
	require.NoError(t, err)

	err = core.clients.RecordPurchaseTx(core.db, "someone-else", company.ID, "carol", decimal.NewFromInt(10))
	assert.ErrorIs(t, err, ErrUnauthorized)

	require.NoError(t, core.clients.RecordPurchaseTx(core.db, OrchestratorWriter, company.ID, "carol", decimal.NewFromInt(10)))

	client, err := core.clients.Get("acme-owner", "carol")
	require.NoError(t, err)
	requireAmount(t, decimal.NewFromInt(10), client.TotalPurchases)
	requireAmount(t, decimal.NewFromInt(10), client.TotalSpent)
	assert.Equal(t, int64(1), client.InvoiceCount)
}
