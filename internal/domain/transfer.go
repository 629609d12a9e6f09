package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transfer is the receipt of a committed transfer between two accounts
// It is handed back to callers only, the ledger does not keep a history
type Transfer struct {
	ID            uuid.UUID
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
	Date          time.Time

	// Balances right after the transfer was committed
	FromBalance decimal.Decimal
	ToBalance   decimal.Decimal
}

// NewTransfer builds a receipt from the post-commit snapshots of both accounts
func NewTransfer(from, to *Account, amount decimal.Decimal) *Transfer {
	return &Transfer{
		ID:            uuid.New(),
		FromAccountID: from.ID,
		ToAccountID:   to.ID,
		Amount:        amount,
		Date:          time.Now(),
		FromBalance:   from.Balance,
		ToBalance:     to.Balance,
	}
}
