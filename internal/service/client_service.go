package service

import (
	"errors"

	"go-commerce-ledger/internal/model"
	"go-commerce-ledger/internal/repository"
	"go-commerce-ledger/internal/ws"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ClientService is the client registry: one relationship record per
// (company, client account) pair, carrying cumulative purchase statistics
// that only a committed purchase may advance.
type ClientService interface {
	Register(caller Caller, companyOwner, clientID string) (*model.Client, error)
	Get(companyOwner, clientID string) (*model.Client, error)
	SetAuthorizedWriter(caller Caller, writer string) error
	RecordPurchaseTx(tx *gorm.DB, writer string, companyID uuid.UUID, clientID string, amount decimal.Decimal) error
}

type clientService struct {
	companyRepo repository.CompanyRepository
	clientRepo  repository.ClientRepository
	wsHub       *ws.Hub
	gate        writerGate
}

func NewClientService(companyRepo repository.CompanyRepository, clientRepo repository.ClientRepository, hub *ws.Hub) ClientService {
	return &clientService{
		companyRepo: companyRepo,
		clientRepo:  clientRepo,
		wsHub:       hub,
	}
}

func (s *clientService) SetAuthorizedWriter(caller Caller, writer string) error {
	return s.gate.set(caller, writer)
}

func (s *clientService) Register(caller Caller, companyOwner, clientID string) (*model.Client, error) {
	if !CanActFor(caller, companyOwner) {
		return nil, ErrForbidden
	}
	if clientID == "" {
		return nil, errors.New("client id is required")
	}

	company, err := s.companyRepo.FindByOwner(companyOwner)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if _, err := s.clientRepo.FindByCompanyAndClient(company.ID, clientID); err == nil {
		return nil, ErrAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	client := &model.Client{
		CompanyID:      company.ID,
		ClientID:       clientID,
		TotalPurchases: decimal.Zero,
		TotalSpent:     decimal.Zero,
		IsActive:       true,
	}
	if err := s.clientRepo.Create(client); err != nil {
		return nil, err
	}

	go s.wsHub.Publish(ws.EventClientRegistered, map[string]interface{}{
		"company": companyOwner,
		"client":  clientID,
	})

	return client, nil
}

func (s *clientService) Get(companyOwner, clientID string) (*model.Client, error) {
	company, err := s.companyRepo.FindByOwner(companyOwner)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	client, err := s.clientRepo.FindByCompanyAndClient(company.ID, clientID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return client, nil
}

// RecordPurchaseTx adds the gross amount to both cumulative statistics and
// bumps the invoice count. Writer-gated; runs only inside the purchase
// transaction, so a rollback also rolls the statistics back.
func (s *clientService) RecordPurchaseTx(tx *gorm.DB, writer string, companyID uuid.UUID, clientID string, amount decimal.Decimal) error {
	if err := s.gate.check(writer); err != nil {
		return err
	}
	if !validAmount(amount) {
		return ErrInvalidAmount
	}
	client, err := s.clientRepo.FindByCompanyAndClientForUpdate(tx, companyID, clientID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	client.TotalPurchases = client.TotalPurchases.Add(amount)
	client.TotalSpent = client.TotalSpent.Add(amount)
	client.InvoiceCount++
	return s.clientRepo.Save(tx, client)
}
