package repository

import (
	"go-commerce-ledger/internal/model"

	"gorm.io/gorm"
)

type CompanyRepository interface {
	Create(company *model.Company) error
	FindByOwner(owner string) (*model.Company, error)
	// FindByOwnerForUpdate loads and locks the company row; it must run
	// inside a transaction. The lock also guards the ProductSeq/InvoiceSeq
	// counters against concurrent assignment.
	FindByOwnerForUpdate(tx *gorm.DB, owner string) (*model.Company, error)
	Save(tx *gorm.DB, company *model.Company) error
	Count() (int64, error)
}

type companyRepo struct {
	db *gorm.DB
}

func NewCompanyRepo(db *gorm.DB) CompanyRepository {
	return &companyRepo{db}
}

func (r *companyRepo) Create(company *model.Company) error {
	return r.db.Create(company).Error
}

func (r *companyRepo) FindByOwner(owner string) (*model.Company, error) {
	var company model.Company
	if err := r.db.First(&company, "owner_id = ?", owner).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepo) FindByOwnerForUpdate(tx *gorm.DB, owner string) (*model.Company, error) {
	var company model.Company
	if err := forUpdate(tx).First(&company, "owner_id = ?", owner).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepo) Save(tx *gorm.DB, company *model.Company) error {
	return tx.Save(company).Error
}

func (r *companyRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Company{}).Count(&count).Error
	return count, err
}
