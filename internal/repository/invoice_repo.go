package repository

import (
	"go-commerce-ledger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceRepository interface {
	// Create writes the invoice and its items inside the purchase
	// transaction; invoices are never updated or deleted afterwards.
	Create(tx *gorm.DB, invoice *model.Invoice) error
	FindByCompanyAndNumber(companyID uuid.UUID, number uint64) (*model.Invoice, error)
	CountByCompany(companyID uuid.UUID) (int64, error)
	Count() (int64, error)
}

type invoiceRepo struct {
	db *gorm.DB
}

func NewInvoiceRepo(db *gorm.DB) InvoiceRepository {
	return &invoiceRepo{db}
}

func (r *invoiceRepo) Create(tx *gorm.DB, invoice *model.Invoice) error {
	return tx.Create(invoice).Error
}

func (r *invoiceRepo) FindByCompanyAndNumber(companyID uuid.UUID, number uint64) (*model.Invoice, error) {
	var invoice model.Invoice
	err := r.db.Preload("Items").First(&invoice, "company_id = ? AND number = ?", companyID, number).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepo) CountByCompany(companyID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Invoice{}).Where("company_id = ?", companyID).Count(&count).Error
	return count, err
}

func (r *invoiceRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Invoice{}).Count(&count).Error
	return count, err
}
