package service

import (
	"errors"

	"go-commerce-ledger/internal/model"
	"go-commerce-ledger/internal/repository"
	"go-commerce-ledger/internal/ws"
	"go-commerce-ledger/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CatalogService is the product catalog. Product ids are sequential per
// company, assigned from the company's ProductSeq counter while the company
// row is locked, so ids stay contiguous starting at 1. Price, name and
// image are fixed at creation; stock and the sold counter mutate only via
// the writer-gated DecrementStockTx inside a purchase transaction.
type CatalogService interface {
	CreateProduct(caller Caller, companyOwner, name string, price decimal.Decimal, imageURL string, stock int64) (uint64, error)
	GetProduct(companyOwner string, seq uint64) (*model.Product, error)
	ListProducts(companyOwner string) ([]model.Product, error)
	SetAuthorizedWriter(caller Caller, writer string) error
	DecrementStockTx(tx *gorm.DB, writer string, companyID uuid.UUID, seq uint64, quantity int64) error
}

type catalogService struct {
	companyRepo repository.CompanyRepository
	productRepo repository.ProductRepository
	db          *gorm.DB
	wsHub       *ws.Hub
	gate        writerGate
}

func NewCatalogService(companyRepo repository.CompanyRepository, productRepo repository.ProductRepository, db *gorm.DB, hub *ws.Hub) CatalogService {
	return &catalogService{
		companyRepo: companyRepo,
		productRepo: productRepo,
		db:          db,
		wsHub:       hub,
	}
}

func (s *catalogService) SetAuthorizedWriter(caller Caller, writer string) error {
	return s.gate.set(caller, writer)
}

func (s *catalogService) CreateProduct(caller Caller, companyOwner, name string, price decimal.Decimal, imageURL string, stock int64) (uint64, error) {
	if !CanActFor(caller, companyOwner) {
		return 0, ErrForbidden
	}
	if !validAmount(price) {
		return 0, ErrInvalidAmount
	}

	product := &model.Product{
		Name:     name,
		Price:    price,
		ImageURL: imageURL,
		Stock:    stock,
		IsActive: true,
	}
	if errs := validator.ValidateStruct(product); len(errs) > 0 {
		return 0, validator.FirstError(errs)
	}

	var seq uint64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		company, err := s.companyRepo.FindByOwnerForUpdate(tx, companyOwner)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCompanyNotActive
		}
		if err != nil {
			return err
		}
		if !company.IsActive {
			return ErrCompanyNotActive
		}

		company.ProductSeq++
		product.CompanyID = company.ID
		product.Seq = company.ProductSeq
		if err := s.productRepo.Create(tx, product); err != nil {
			return err
		}
		if err := s.companyRepo.Save(tx, company); err != nil {
			return err
		}
		seq = product.Seq
		return nil
	})
	if err != nil {
		return 0, err
	}

	go s.wsHub.Publish(ws.EventProductCreated, map[string]interface{}{
		"company":    companyOwner,
		"product_id": seq,
		"name":       product.Name,
		"price":      product.Price,
		"stock":      product.Stock,
	})

	return seq, nil
}

func (s *catalogService) GetProduct(companyOwner string, seq uint64) (*model.Product, error) {
	company, err := s.companyRepo.FindByOwner(companyOwner)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	product, err := s.productRepo.FindByCompanyAndSeq(company.ID, seq)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *catalogService) ListProducts(companyOwner string) ([]model.Product, error) {
	company, err := s.companyRepo.FindByOwner(companyOwner)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.productRepo.FindAllByCompany(company.ID)
}

// DecrementStockTx reduces stock and grows the cumulative sold counter by
// the purchased quantity. Writer-gated; runs only inside the purchase
// transaction against the already locked product row.
func (s *catalogService) DecrementStockTx(tx *gorm.DB, writer string, companyID uuid.UUID, seq uint64, quantity int64) error {
	if err := s.gate.check(writer); err != nil {
		return err
	}
	if quantity <= 0 {
		return ErrInvalidPurchase
	}
	product, err := s.productRepo.FindByCompanyAndSeqForUpdate(tx, companyID, seq)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if quantity > product.Stock {
		return ErrInsufficientStock
	}
	return s.productRepo.UpdateStock(tx, product.ID, product.Stock-quantity, product.Sold+quantity)
}
