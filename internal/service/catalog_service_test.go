package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct_SequentialIDsPerCompany(t *testing.T) {
	core := newTestCore(t)
	_, err := core.companies.Register(adminCaller, "acme-owner", "ACME")
	require.NoError(t, err)
	_, err = core.companies.Register(adminCaller, "globex-owner", "Globex")
	require.NoError(t, err)

	price := decimal.NewFromInt(100)

	// Interleave creation across companies; each sequence stays 1..N
	id, err := core.catalog.CreateProduct(merchantCaller("acme-owner"), "acme-owner", "Widget", price, "", 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)

	id, err = core.catalog.CreateProduct(merchantCaller("globex-owner"), "globex-owner", "Gizmo", price, "", 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)

	id, err = core.catalog.CreateProduct(merchantCaller("acme-owner"), "acme-owner", "Sprocket", price, "", 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), id)

	id, err = core.catalog.CreateProduct(merchantCaller("globex-owner"), "globex-owner", "Gadget", price, "", 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), id)

	products, err := core.catalog.ListProducts("acme-owner")
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, uint64(1), products[0].Seq)
	assert.Equal(t, uint64(2), products[1].Seq)
}

func TestCreateProduct_CompanyNotActive(t *testing.T) {
	core := newTestCore(t)

	_, err := core.catalog.CreateProduct(adminCaller, "unknown-owner", "Widget", decimal.NewFromInt(1), "", 1)
	assert.ErrorIs(t, err, ErrCompanyNotActive)

	_, err = core.companies.Register(adminCaller, "acme-owner", "ACME")
	require.NoError(t, err)
	_, err = core.companies.Deactivate(adminCaller, "acme-owner")
	require.NoError(t, err)

	_, err = core.catalog.CreateProduct(adminCaller, "acme-owner", "Widget", decimal.NewFromInt(1), "", 1)
	assert.ErrorIs(t, err, ErrCompanyNotActive)
}

func TestCreateProduct_ForbiddenForOtherMerchant(t *testing.T) {
	core := newTestCore(t)
	_, err := core.companies.Register(adminCaller, "acme-owner", "ACME")
	require.NoError(t, err)

	_, err = core.catalog.CreateProduct(merchantCaller("globex-owner"), "acme-owner", "Widget", decimal.NewFromInt(1), "", 1)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreateProduct_RejectsMalformedPrice(t *testing.T) {
	core := newTestCore(t)
	_, err := core.companies.Register(adminCaller, "acme-owner", "ACME")
	require.NoError(t, err)

	_, err = core.catalog.CreateProduct(adminCaller, "acme-owner", "Widget", decimal.NewFromInt(-1), "", 1)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = core.catalog.CreateProduct(adminCaller, "acme-owner", "Widget", decimal.RequireFromString("9.99"), "", 1)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestDecrementStock_WriterGate(t *testing.T) {
	core := newTestCore(t)
	_, err := core.companies.Register(adminCaller, "acme-owner", "ACME")
	require.NoError(t, err)
	_, err = core.catalog.CreateProduct(adminCaller, "acme-owner", "Widget", decimal.NewFromInt(5), "", 10)
	require.NoError(t, err)

	company, err := core.companies.Get("acme-owner")
	require.NoError(t, err)

	err = core.catalog.DecrementStockTx(core.db, "someone-else", company.ID, 1, 1)
	assert.ErrorIs(t, err, ErrUnauthorized)

	require.NoError(t, core.catalog.DecrementStockTx(core.db, OrchestratorWriter, company.ID, 1, 4))
	product, err := core.catalog.GetProduct("acme-owner", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(6), product.Stock)
	assert.Equal(t, int64(4), product.Sold)
}

func TestDecrementStock_InsufficientStock(t *testing.T) {
	core := newTestCore(t)
	_, err := core.companies.Register(adminCaller, "acme-owner", "ACME")
	require.NoError(t, err)
	_, err = core.catalog.CreateProduct(adminCaller, "acme-owner", "Widget", decimal.NewFromInt(5), "", 3)
	require.NoError(t, err)

	company, err := core.companies.Get("acme-owner")
	require.NoError(t, err)

	err = core.catalog.DecrementStockTx(core.db, OrchestratorWriter, company.ID, 1, 4)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	product, err := core.catalog.GetProduct("acme-owner", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), product.Stock)
}

func TestSetAuthorizedWriter_AdminOnly(t *testing.T) {
	core := newTestCore(t)
	err := core.catalog.SetAuthorizedWriter(merchantCaller("acme-owner"), "rogue-writer")
	assert.ErrorIs(t, err, ErrForbidden)
}
