package repository

import (
	"go-commerce-ledger/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientRepository interface {
	Create(client *model.Client) error
	FindByCompanyAndClient(companyID uuid.UUID, clientID string) (*model.Client, error)
	FindByCompanyAndClientForUpdate(tx *gorm.DB, companyID uuid.UUID, clientID string) (*model.Client, error)
	Save(tx *gorm.DB, client *model.Client) error
	CountByCompany(companyID uuid.UUID) (int64, error)
	Count() (int64, error)
}

type clientRepo struct {
	db *gorm.DB
}

func NewClientRepo(db *gorm.DB) ClientRepository {
	return &clientRepo{db}
}

func (r *clientRepo) Create(client *model.Client) error {
	return r.db.Create(client).Error
}

func (r *clientRepo) FindByCompanyAndClient(companyID uuid.UUID, clientID string) (*model.Client, error) {
	var client model.Client
	err := r.db.First(&client, "company_id = ? AND client_id = ?", companyID, clientID).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepo) FindByCompanyAndClientForUpdate(tx *gorm.DB, companyID uuid.UUID, clientID string) (*model.Client, error) {
	var client model.Client
	err := forUpdate(tx).First(&client, "company_id = ? AND client_id = ?", companyID, clientID).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepo) Save(tx *gorm.DB, client *model.Client) error {
	return tx.Save(client).Error
}

func (r *clientRepo) CountByCompany(companyID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Client{}).Where("company_id = ?", companyID).Count(&count).Error
	return count, err
}

func (r *clientRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Client{}).Count(&count).Error
	return count, err
}
