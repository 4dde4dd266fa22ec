package service

import (
	"fmt"
	"strings"
	"testing"

	"go-commerce-ledger/internal/model"
	"go-commerce-ledger/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var adminCaller = Caller{AccountID: "platform-admin", Role: model.RolePlatformAdmin}

func merchantCaller(owner string) Caller {
	return Caller{AccountID: owner, Role: model.RoleMerchant}
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// One shared in-memory database per test; the pool keeps it alive.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.Company{}, &model.Product{}, &model.Client{},
		&model.Invoice{}, &model.InvoiceItem{},
		&model.TokenAccount{}, &model.TokenAllowance{},
	)
	require.NoError(t, err)
	return db
}

// testCore wires the full registry/ledger stack over one test database,
// with the purchase orchestrator authorized as the registries' writer.
type testCore struct {
	db        *gorm.DB
	tokens    TokenService
	companies CompanyService
	catalog   CatalogService
	clients   ClientService
	invoices  InvoiceService
	purchases PurchaseService
}

func newTestCore(t *testing.T) *testCore {
	t.Helper()
	db := newTestDB(t)

	companyRepo := repository.NewCompanyRepo(db)
	productRepo := repository.NewProductRepo(db)
	clientRepo := repository.NewClientRepo(db)
	invoiceRepo := repository.NewInvoiceRepo(db)
	tokenRepo := repository.NewTokenRepo(db)

	core := &testCore{
		db:        db,
		tokens:    NewTokenService(tokenRepo, db),
		companies: NewCompanyService(companyRepo, db, nil),
		catalog:   NewCatalogService(companyRepo, productRepo, db, nil),
		clients:   NewClientService(companyRepo, clientRepo, nil),
		invoices:  NewInvoiceService(companyRepo, invoiceRepo),
	}
	core.purchases = NewPurchaseService(
		companyRepo, productRepo, clientRepo, invoiceRepo,
		core.catalog, core.clients, core.invoices, core.tokens,
		db, nil,
	)

	require.NoError(t, core.catalog.SetAuthorizedWriter(adminCaller, OrchestratorWriter))
	require.NoError(t, core.clients.SetAuthorizedWriter(adminCaller, OrchestratorWriter))
	require.NoError(t, core.invoices.SetAuthorizedWriter(adminCaller, OrchestratorWriter))
	return core
}

func requireAmount(t *testing.T, expected, actual decimal.Decimal) {
	t.Helper()
	require.True(t, expected.Equal(actual), "expected %s, got %s", expected, actual)
}
