package service

import (
	"errors"

	"go-commerce-ledger/internal/model"
	"go-commerce-ledger/internal/repository"
	"go-commerce-ledger/internal/ws"
	"go-commerce-ledger/pkg/validator"

	"gorm.io/gorm"
)

// CompanyService is the company registry: one record per owner account,
// registered once and only ever deactivated.
type CompanyService interface {
	Register(caller Caller, owner, name string) (*model.Company, error)
	Get(owner string) (*model.Company, error)
	Count() (int64, error)
	Deactivate(caller Caller, owner string) (*model.Company, error)
}

type companyService struct {
	companyRepo repository.CompanyRepository
	db          *gorm.DB
	wsHub       *ws.Hub
}

func NewCompanyService(companyRepo repository.CompanyRepository, db *gorm.DB, hub *ws.Hub) CompanyService {
	return &companyService{companyRepo: companyRepo, db: db, wsHub: hub}
}

func (s *companyService) Register(caller Caller, owner, name string) (*model.Company, error) {
	if !CanActFor(caller, owner) {
		return nil, ErrForbidden
	}

	company := &model.Company{OwnerID: owner, Name: name, IsActive: true}
	if errs := validator.ValidateStruct(company); len(errs) > 0 {
		return nil, validator.FirstError(errs)
	}

	// Re-registration is always rejected, it never updates the record.
	_, err := s.companyRepo.FindByOwner(owner)
	if err == nil {
		return nil, ErrAlreadyRegistered
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.companyRepo.Create(company); err != nil {
		return nil, err
	}

	go s.wsHub.Publish(ws.EventCompanyRegistered, map[string]interface{}{
		"owner": company.OwnerID,
		"name":  company.Name,
	})

	return company, nil
}

func (s *companyService) Get(owner string) (*model.Company, error) {
	company, err := s.companyRepo.FindByOwner(owner)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return company, nil
}

func (s *companyService) Count() (int64, error) {
	return s.companyRepo.Count()
}

// Deactivate flips the active flag; the record itself is never removed.
func (s *companyService) Deactivate(caller Caller, owner string) (*model.Company, error) {
	if !caller.IsAdmin() {
		return nil, ErrForbidden
	}
	company, err := s.Get(owner)
	if err != nil {
		return nil, err
	}
	company.IsActive = false
	if err := s.companyRepo.Save(s.db, company); err != nil {
		return nil, err
	}
	return company, nil
}
