package service

import (
	"errors"
	"time"

	"go-commerce-ledger/internal/model"
	"go-commerce-ledger/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvoiceService is the append-only invoice ledger. Numbers are sequential
// per company, assigned from the company's InvoiceSeq counter inside the
// purchase transaction; paid is always true because payment is synchronous
// with invoicing, and records are never mutated afterwards.
type InvoiceService interface {
	SetAuthorizedWriter(caller Caller, writer string) error
	// CreateTx writes the invoice against the locked company row passed in
	// by the orchestrator and advances company.InvoiceSeq on that struct;
	// the orchestrator persists the company row once at commit.
	CreateTx(tx *gorm.DB, writer string, company *model.Company, clientID string, items []model.InvoiceItem) (uint64, error)
	Get(companyOwner string, number uint64) (*model.Invoice, error)
	Count() (int64, error)
}

type invoiceService struct {
	companyRepo repository.CompanyRepository
	invoiceRepo repository.InvoiceRepository
	gate        writerGate
}

func NewInvoiceService(companyRepo repository.CompanyRepository, invoiceRepo repository.InvoiceRepository) InvoiceService {
	return &invoiceService{companyRepo: companyRepo, invoiceRepo: invoiceRepo}
}

func (s *invoiceService) SetAuthorizedWriter(caller Caller, writer string) error {
	return s.gate.set(caller, writer)
}

func (s *invoiceService) CreateTx(tx *gorm.DB, writer string, company *model.Company, clientID string, items []model.InvoiceItem) (uint64, error) {
	if err := s.gate.check(writer); err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, ErrInvalidPurchase
	}

	total := decimal.Zero
	for _, item := range items {
		// line total is exactly unit price times quantity, no rounding
		if !item.LineTotal.Equal(item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity))) {
			return 0, ErrInvalidAmount
		}
		total = total.Add(item.LineTotal)
	}

	company.InvoiceSeq++
	invoice := &model.Invoice{
		CompanyID: company.ID,
		Number:    company.InvoiceSeq,
		ClientID:  clientID,
		Date:      time.Now(),
		Total:     total,
		Paid:      true,
		Items:     items,
	}
	if err := s.invoiceRepo.Create(tx, invoice); err != nil {
		return 0, err
	}
	return invoice.Number, nil
}

func (s *invoiceService) Get(companyOwner string, number uint64) (*model.Invoice, error) {
	company, err := s.companyRepo.FindByOwner(companyOwner)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	invoice, err := s.invoiceRepo.FindByCompanyAndNumber(company.ID, number)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) Count() (int64, error) {
	return s.invoiceRepo.Count()
}
