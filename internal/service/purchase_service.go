package service

import (
	"errors"

	"go-commerce-ledger/internal/model"
	"go-commerce-ledger/internal/repository"
	"go-commerce-ledger/internal/ws"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrchestratorWriter is the writer identity the purchase orchestrator
// presents to the registries and the identity clients grant purchase
// allowances to.
const OrchestratorWriter = "purchase-orchestrator"

// TreasuryAccount receives the platform fee and holds the unminted supply.
const TreasuryAccount = "treasury"

var feeDivisor = decimal.NewFromInt(100)

// PlatformStats aggregates counts across the whole platform.
type PlatformStats struct {
	Companies int64 `json:"companies"`
	Products  int64 `json:"products"`
	Invoices  int64 `json:"invoices"`
	Clients   int64 `json:"clients"`
}

// CompanyStats aggregates one company's registries. Revenue is the sum of
// net amounts the company has received from completed purchases.
type CompanyStats struct {
	Products int64           `json:"products"`
	Invoices int64           `json:"invoices"`
	Clients  int64           `json:"clients"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// PurchaseService is the purchase orchestrator: the only writer permitted
// to mutate the product catalog, the client registry and the invoice
// ledger. A purchase validates in full, then runs as one database
// transaction that locks the company row (which owns the invoice counter),
// every referenced product, the client relationship and the three balance
// rows; any failure rolls every effect back.
type PurchaseService interface {
	ProcessPurchase(caller Caller, companyOwner, clientID string, productIDs []uint64, quantities []int64) (uint64, error)
	PlatformStats() (*PlatformStats, error)
	CompanyStats(companyOwner string) (*CompanyStats, error)
}

type purchaseService struct {
	companyRepo repository.CompanyRepository
	productRepo repository.ProductRepository
	clientRepo  repository.ClientRepository
	invoiceRepo repository.InvoiceRepository
	catalog     CatalogService
	clients     ClientService
	invoices    InvoiceService
	tokens      TokenService
	db          *gorm.DB
	wsHub       *ws.Hub
	writerID    string
	treasury    string
}

func NewPurchaseService(
	companyRepo repository.CompanyRepository,
	productRepo repository.ProductRepository,
	clientRepo repository.ClientRepository,
	invoiceRepo repository.InvoiceRepository,
	catalog CatalogService,
	clients ClientService,
	invoices InvoiceService,
	tokens TokenService,
	db *gorm.DB,
	hub *ws.Hub,
) PurchaseService {
	return &purchaseService{
		companyRepo: companyRepo,
		productRepo: productRepo,
		clientRepo:  clientRepo,
		invoiceRepo: invoiceRepo,
		catalog:     catalog,
		clients:     clients,
		invoices:    invoices,
		tokens:      tokens,
		db:          db,
		wsHub:       hub,
		writerID:    OrchestratorWriter,
		treasury:    TreasuryAccount,
	}
}

// SplitFee computes the platform fee (1%, truncated toward zero, so the
// fractional remainder stays with the company) and the net amount.
func SplitFee(gross decimal.Decimal) (fee, net decimal.Decimal) {
	fee = gross.Div(feeDivisor).Floor()
	net = gross.Sub(fee)
	return fee, net
}

func (s *purchaseService) ProcessPurchase(caller Caller, companyOwner, clientID string, productIDs []uint64, quantities []int64) (uint64, error) {
	if len(productIDs) == 0 || len(productIDs) != len(quantities) {
		return 0, ErrInvalidPurchase
	}
	if !CanActFor(caller, companyOwner) {
		return 0, ErrForbidden
	}

	var (
		invoiceNumber uint64
		gross         decimal.Decimal
		fee           decimal.Decimal
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		company, err := s.companyRepo.FindByOwnerForUpdate(tx, companyOwner)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if !company.IsActive {
			return ErrCompanyNotActive
		}

		// The relationship must exist and be active; an inactive or
		// missing one reads as absent.
		client, err := s.clientRepo.FindByCompanyAndClientForUpdate(tx, company.ID, clientID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if !client.IsActive {
			return ErrNotFound
		}

		// Build line items against locked product rows and accumulate the
		// gross total before any mutation.
		items := make([]model.InvoiceItem, 0, len(productIDs))
		gross = decimal.Zero
		for i, productID := range productIDs {
			quantity := quantities[i]
			if quantity <= 0 {
				return ErrInvalidPurchase
			}
			product, err := s.productRepo.FindByCompanyAndSeqForUpdate(tx, company.ID, productID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			if err != nil {
				return err
			}
			if !product.IsActive {
				return ErrNotFound
			}
			if quantity > product.Stock {
				return ErrInsufficientStock
			}
			lineTotal := product.Price.Mul(decimal.NewFromInt(quantity))
			items = append(items, model.InvoiceItem{
				ProductID: product.Seq,
				Quantity:  quantity,
				UnitPrice: product.Price,
				LineTotal: lineTotal,
			})
			gross = gross.Add(lineTotal)
		}

		var net decimal.Decimal
		fee, net = SplitFee(gross)

		// The client must have granted the orchestrator an allowance
		// covering the gross total and must hold the balance to match.
		allowance, err := s.tokens.AllowanceTx(tx, clientID, s.writerID)
		if err != nil {
			return err
		}
		balance, err := s.tokens.BalanceOfTx(tx, clientID)
		if err != nil {
			return err
		}
		if allowance.LessThan(gross) || balance.LessThan(gross) {
			return ErrInsufficientTokenBalance
		}

		// The two pulls sum exactly to the gross total: net to the
		// company, fee to the treasury.
		if err := s.tokens.TransferFromTx(tx, s.writerID, clientID, companyOwner, net); err != nil {
			return err
		}
		if err := s.tokens.TransferFromTx(tx, s.writerID, clientID, s.treasury, fee); err != nil {
			return err
		}

		for _, item := range items {
			if err := s.catalog.DecrementStockTx(tx, s.writerID, company.ID, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		if err := s.clients.RecordPurchaseTx(tx, s.writerID, company.ID, clientID, gross); err != nil {
			return err
		}

		invoiceNumber, err = s.invoices.CreateTx(tx, s.writerID, company, clientID, items)
		if err != nil {
			return err
		}

		company.TotalRevenue = company.TotalRevenue.Add(net)
		return s.companyRepo.Save(tx, company)
	})
	if err != nil {
		return 0, err
	}

	go s.wsHub.Publish(ws.EventPurchaseCompleted, map[string]interface{}{
		"company":        companyOwner,
		"client":         clientID,
		"invoice_number": invoiceNumber,
		"gross_amount":   gross,
		"platform_fee":   fee,
	})

	return invoiceNumber, nil
}

func (s *purchaseService) PlatformStats() (*PlatformStats, error) {
	companies, err := s.companyRepo.Count()
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.Count()
	if err != nil {
		return nil, err
	}
	invoices, err := s.invoiceRepo.Count()
	if err != nil {
		return nil, err
	}
	clients, err := s.clientRepo.Count()
	if err != nil {
		return nil, err
	}
	return &PlatformStats{
		Companies: companies,
		Products:  products,
		Invoices:  invoices,
		Clients:   clients,
	}, nil
}

func (s *purchaseService) CompanyStats(companyOwner string) (*CompanyStats, error) {
	company, err := s.companyRepo.FindByOwner(companyOwner)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.CountByCompany(company.ID)
	if err != nil {
		return nil, err
	}
	invoices, err := s.invoiceRepo.CountByCompany(company.ID)
	if err != nil {
		return nil, err
	}
	clients, err := s.clientRepo.CountByCompany(company.ID)
	if err != nil {
		return nil, err
	}
	return &CompanyStats{
		Products: products,
		Invoices: invoices,
		Clients:  clients,
		Revenue:  company.TotalRevenue,
	}, nil
}
