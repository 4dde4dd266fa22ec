package repository

import (
	"errors"

	"go-commerce-ledger/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TokenRepository interface {
	FindAccount(holder string) (*model.TokenAccount, error)
	// FindAccountForUpdate locks the holder's balance row for the duration
	// of the surrounding transaction, creating a zero-balance row first if
	// the holder has never held tokens.
	FindAccountForUpdate(tx *gorm.DB, holder string) (*model.TokenAccount, error)
	SaveAccount(tx *gorm.DB, account *model.TokenAccount) error
	FindAllowance(owner, spender string) (*model.TokenAllowance, error)
	FindAllowanceForUpdate(tx *gorm.DB, owner, spender string) (*model.TokenAllowance, error)
	SaveAllowance(tx *gorm.DB, allowance *model.TokenAllowance) error
	ListAccounts() ([]model.TokenAccount, error)
}

type tokenRepo struct {
	db *gorm.DB
}

func NewTokenRepo(db *gorm.DB) TokenRepository {
	return &tokenRepo{db}
}

func (r *tokenRepo) FindAccount(holder string) (*model.TokenAccount, error) {
	var account model.TokenAccount
	if err := r.db.First(&account, "holder = ?", holder).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *tokenRepo) FindAccountForUpdate(tx *gorm.DB, holder string) (*model.TokenAccount, error) {
	var account model.TokenAccount
	err := forUpdate(tx).First(&account, "holder = ?", holder).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		account = model.TokenAccount{Holder: holder, Balance: decimal.Zero}
		if err := tx.Create(&account).Error; err != nil {
			return nil, err
		}
		err = forUpdate(tx).First(&account, "holder = ?", holder).Error
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *tokenRepo) SaveAccount(tx *gorm.DB, account *model.TokenAccount) error {
	return tx.Save(account).Error
}

func (r *tokenRepo) FindAllowance(owner, spender string) (*model.TokenAllowance, error) {
	var allowance model.TokenAllowance
	err := r.db.First(&allowance, "owner = ? AND spender = ?", owner, spender).Error
	if err != nil {
		return nil, err
	}
	return &allowance, nil
}

func (r *tokenRepo) FindAllowanceForUpdate(tx *gorm.DB, owner, spender string) (*model.TokenAllowance, error) {
	var allowance model.TokenAllowance
	err := forUpdate(tx).First(&allowance, "owner = ? AND spender = ?", owner, spender).Error
	if err != nil {
		return nil, err
	}
	return &allowance, nil
}

func (r *tokenRepo) SaveAllowance(tx *gorm.DB, allowance *model.TokenAllowance) error {
	return tx.Save(allowance).Error
}

func (r *tokenRepo) ListAccounts() ([]model.TokenAccount, error) {
	var accounts []model.TokenAccount
	err := r.db.Order("holder ASC").Find(&accounts).Error
	return accounts, err
}
