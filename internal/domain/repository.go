package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// AccountRepository defines the interface for the account store
// Implementations own the accounts exclusively and only ever hand out copies
type AccountRepository interface {
	// Create inserts a new account
	// Returns a *DuplicateAccountIDError if the ID is already taken
	Create(ctx context.Context, account *Account) error

	// GetByID retrieves a snapshot of the account
	// Returns ErrAccountNotFound if no account has that ID
	GetByID(ctx context.Context, id string) (*Account, error)

	// Transfer atomically debits fromID and credits toID by amount
	// Existence and sufficient funds are re-checked while both accounts are locked
	// Returns the post-commit snapshots of both accounts
	Transfer(ctx context.Context, fromID, toID string, amount decimal.Decimal) (from *Account, to *Account, err error)
}

// Notifier defines the interface for telling account holders about transfers
// Delivery failures are the notifier's own concern and are never reported back
type Notifier interface {
	NotifyAboutTransfer(ctx context.Context, account *Account, message string)
}
