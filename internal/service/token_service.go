package service

import (
	"errors"

	"go-commerce-ledger/internal/model"
	"go-commerce-ledger/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TokenService is the balance ledger: a fixed-supply fungible token with
// direct transfer and an approve/pull-transfer pattern. The supply is
// minted once to the treasury; every later operation only moves balance
// between accounts, so the sum over all accounts never changes.
//
// The *Tx variants run against a caller-supplied transaction so the
// purchase orchestrator can make ledger moves abortable within its own
// transaction boundary.
type TokenService interface {
	InitSupply(treasury string, supply decimal.Decimal) error
	BalanceOf(holder string) (decimal.Decimal, error)
	Allowance(owner, spender string) (decimal.Decimal, error)
	TotalSupply() (decimal.Decimal, error)
	Transfer(from, to string, amount decimal.Decimal) error
	Approve(owner, spender string, amount decimal.Decimal) error
	TransferFrom(spender, from, to string, amount decimal.Decimal) error

	BalanceOfTx(tx *gorm.DB, holder string) (decimal.Decimal, error)
	AllowanceTx(tx *gorm.DB, owner, spender string) (decimal.Decimal, error)
	TransferFromTx(tx *gorm.DB, spender, from, to string, amount decimal.Decimal) error
}

type tokenService struct {
	tokenRepo repository.TokenRepository
	db        *gorm.DB
}

func NewTokenService(tokenRepo repository.TokenRepository, db *gorm.DB) TokenService {
	return &tokenService{tokenRepo: tokenRepo, db: db}
}

// InitSupply mints the full fixed supply to the treasury account. It is a
// no-op when the treasury account already exists, so repeated boots never
// issue additional tokens.
func (s *tokenService) InitSupply(treasury string, supply decimal.Decimal) error {
	if treasury == "" || !validAmount(supply) {
		return ErrInvalidAmount
	}
	_, err := s.tokenRepo.FindAccount(treasury)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&model.TokenAccount{Holder: treasury, Balance: supply}).Error
	})
}

func (s *tokenService) BalanceOf(holder string) (decimal.Decimal, error) {
	return s.BalanceOfTx(s.db, holder)
}

func (s *tokenService) BalanceOfTx(tx *gorm.DB, holder string) (decimal.Decimal, error) {
	var account model.TokenAccount
	err := tx.First(&account, "holder = ?", holder).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance, nil
}

func (s *tokenService) Allowance(owner, spender string) (decimal.Decimal, error) {
	return s.AllowanceTx(s.db, owner, spender)
}

func (s *tokenService) AllowanceTx(tx *gorm.DB, owner, spender string) (decimal.Decimal, error) {
	var allowance model.TokenAllowance
	err := tx.First(&allowance, "owner = ? AND spender = ?", owner, spender).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}
	return allowance.Amount, nil
}

func (s *tokenService) TotalSupply() (decimal.Decimal, error) {
	accounts, err := s.tokenRepo.ListAccounts()
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, account := range accounts {
		total = total.Add(account.Balance)
	}
	return total, nil
}

func (s *tokenService) Transfer(from, to string, amount decimal.Decimal) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.transfer(tx, from, to, amount)
	})
}

func (s *tokenService) Approve(owner, spender string, amount decimal.Decimal) error {
	if owner == "" || spender == "" || !validAmount(amount) {
		return ErrInvalidAmount
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		allowance, err := s.tokenRepo.FindAllowanceForUpdate(tx, owner, spender)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&model.TokenAllowance{Owner: owner, Spender: spender, Amount: amount}).Error
		}
		if err != nil {
			return err
		}
		allowance.Amount = amount
		return s.tokenRepo.SaveAllowance(tx, allowance)
	})
}

func (s *tokenService) TransferFrom(spender, from, to string, amount decimal.Decimal) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.TransferFromTx(tx, spender, from, to, amount)
	})
}

// TransferFromTx consumes the spender's allowance on the from account, then
// moves the balance. Both the allowance decrement and the balance move
// commit or abort with the surrounding transaction.
func (s *tokenService) TransferFromTx(tx *gorm.DB, spender, from, to string, amount decimal.Decimal) error {
	if !validAmount(amount) {
		return ErrInvalidAmount
	}
	allowance, err := s.tokenRepo.FindAllowanceForUpdate(tx, from, spender)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if amount.IsZero() {
			return nil
		}
		return ErrInsufficientAllowance
	}
	if err != nil {
		return err
	}
	if allowance.Amount.LessThan(amount) {
		return ErrInsufficientAllowance
	}
	allowance.Amount = allowance.Amount.Sub(amount)
	if err := s.tokenRepo.SaveAllowance(tx, allowance); err != nil {
		return err
	}
	return s.transfer(tx, from, to, amount)
}

// transfer moves amount between two locked accounts. Accounts are locked in
// holder order so concurrent opposing transfers cannot deadlock.
func (s *tokenService) transfer(tx *gorm.DB, from, to string, amount decimal.Decimal) error {
	if from == "" || to == "" || !validAmount(amount) {
		return ErrInvalidAmount
	}
	if from == to {
		balance, err := s.BalanceOfTx(tx, from)
		if err != nil {
			return err
		}
		if balance.LessThan(amount) {
			return ErrInsufficientBalance
		}
		return nil
	}

	first, second := from, to
	if second < first {
		first, second = second, first
	}
	firstAcc, err := s.tokenRepo.FindAccountForUpdate(tx, first)
	if err != nil {
		return err
	}
	secondAcc, err := s.tokenRepo.FindAccountForUpdate(tx, second)
	if err != nil {
		return err
	}
	fromAcc, toAcc := firstAcc, secondAcc
	if fromAcc.Holder != from {
		fromAcc, toAcc = secondAcc, firstAcc
	}

	if fromAcc.Balance.LessThan(amount) {
		return ErrInsufficientBalance
	}
	fromAcc.Balance = fromAcc.Balance.Sub(amount)
	toAcc.Balance = toAcc.Balance.Add(amount)
	if err := s.tokenRepo.SaveAccount(tx, fromAcc); err != nil {
		return err
	}
	return s.tokenRepo.SaveAccount(tx, toAcc)
}
