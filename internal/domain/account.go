package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents a ledger account in the domain layer
// The balance is an arbitrary-precision decimal and is never negative once committed
type Account struct {
	ID      string
	Balance decimal.Decimal
}

// NewAccount creates a new Account with the given ID and opening balance
func NewAccount(id string, balance decimal.Decimal) *Account {
	return &Account{
		ID:      id,
		Balance: balance,
	}
}

// Validate ensures the account adheres to domain rules
// Returns an error if validation fails
func (a *Account) Validate() error {
	if a.ID == "" {
		return ErrEmptyAccountID
	}

	// A zero opening balance is fine, only negative balances are rejected
	if a.Balance.IsNegative() {
		return ErrNegativeBalance
	}

	return nil
}
