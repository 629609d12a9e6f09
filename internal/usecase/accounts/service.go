package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/simaogato/ledger-backend/internal/domain"
	"github.com/simaogato/ledger-backend/internal/usecase/validation"
)

// AccountsService handles account creation, lookup and fund transfers
type AccountsService struct {
	AccountRepo domain.AccountRepository
	Validator   *validation.TransferValidator
	Notifier    domain.Notifier
}

// NewAccountsService creates a new AccountsService instance
func NewAccountsService(accountRepo domain.AccountRepository, validator *validation.TransferValidator, notifier domain.Notifier) *AccountsService {
	return &AccountsService{
		AccountRepo: accountRepo,
		Validator:   validator,
		Notifier:    notifier,
	}
}

// CreateAccount validates and stores a new account
func (s *AccountsService) CreateAccount(ctx context.Context, account *domain.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}

	return s.AccountRepo.Create(ctx, account)
}

// GetAccount returns a snapshot of the account
func (s *AccountsService) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.AccountRepo.GetByID(ctx, accountID)
}

// TransferAmount moves amount from one account to another
// Logic:
//  1. Validate the amount
//  2. Fetch both account snapshots
//  3. Run the validator chain: amount, from account, to account, balance
//  4. Commit through AccountRepo.Transfer, which re-checks under lock
//  5. Notify both account holders (after the store has released its locks)
//
// Nothing is mutated and nobody is notified if any step before 4 fails.
func (s *AccountsService) TransferAmount(ctx context.Context, fromID, toID string, amount decimal.Decimal) (*domain.Transfer, error) {
	// 1. Validate amount
	if err := s.Validator.ValidateAmount(amount); err != nil {
		return nil, err
	}

	// 2. Fetch account snapshots
	fromAccount, err := s.lookup(ctx, fromID)
	if err != nil {
		return nil, err
	}
	toAccount, err := s.lookup(ctx, toID)
	if err != nil {
		return nil, err
	}

	// 3. Validate accounts and balance
	if err := s.Validator.Validate(fromAccount, toAccount, amount); err != nil {
		return nil, err
	}

	// 4. Commit
	fromAfter, toAfter, err := s.AccountRepo.Transfer(ctx, fromID, toID, amount)
	if err != nil {
		return nil, err
	}

	// 5. Notify
	s.Notifier.NotifyAboutTransfer(ctx, fromAfter, fmt.Sprintf("%s amount transferred to account %s", amount.String(), toID))
	s.Notifier.NotifyAboutTransfer(ctx, toAfter, fmt.Sprintf("%s amount transferred from account %s", amount.String(), fromID))

	return domain.NewTransfer(fromAfter, toAfter, amount), nil
}

// lookup turns a not-found result into a nil snapshot so that the validator
// decides how a missing account is reported
func (s *AccountsService) lookup(ctx context.Context, id string) (*domain.Account, error) {
	account, err := s.AccountRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrAccountNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return account, nil
}
