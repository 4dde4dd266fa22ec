package repository

import (
	"go-commerce-ledger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(tx *gorm.DB, product *model.Product) error
	FindByCompanyAndSeq(companyID uuid.UUID, seq uint64) (*model.Product, error)
	FindByCompanyAndSeqForUpdate(tx *gorm.DB, companyID uuid.UUID, seq uint64) (*model.Product, error)
	FindAllByCompany(companyID uuid.UUID) ([]model.Product, error)
	// UpdateStock runs inside the purchase transaction against the locked row.
	UpdateStock(tx *gorm.DB, id uuid.UUID, newStock, newSold int64) error
	CountByCompany(companyID uuid.UUID) (int64, error)
	Count() (int64, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(tx *gorm.DB, product *model.Product) error {
	return tx.Create(product).Error
}

func (r *productRepo) FindByCompanyAndSeq(companyID uuid.UUID, seq uint64) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "company_id = ? AND seq = ?", companyID, seq).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindByCompanyAndSeqForUpdate(tx *gorm.DB, companyID uuid.UUID, seq uint64) (*model.Product, error) {
	var product model.Product
	err := forUpdate(tx).First(&product, "company_id = ? AND seq = ?", companyID, seq).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindAllByCompany(companyID uuid.UUID) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("company_id = ?", companyID).Order("seq ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) UpdateStock(tx *gorm.DB, id uuid.UUID, newStock, newSold int64) error {
	return tx.Model(&model.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"stock": newStock,
			"sold":  newSold,
		}).Error
}

func (r *productRepo) CountByCompany(companyID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Where("company_id = ?", companyID).Count(&count).Error
	return count, err
}

func (r *productRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Count(&count).Error
	return count, err
}
