package validation

import (
	"github.com/shopspring/decimal"
	"github.com/simaogato/ledger-backend/internal/domain"
)

// TransferValidator runs the pre-mutation checks of a transfer
// It is stateless and only looks at snapshots that were already fetched
type TransferValidator struct{}

// NewTransferValidator creates a new TransferValidator instance
func NewTransferValidator() *TransferValidator {
	return &TransferValidator{}
}

// ValidateAmount fails with ErrInvalidAmount unless amount is strictly positive
func (v *TransferValidator) ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidAmount
	}
	return nil
}

// ValidateAccount fails with ErrAccountNotFound if the account was not resolved
func (v *TransferValidator) ValidateAccount(account *domain.Account) error {
	if account == nil {
		return domain.ErrAccountNotFound
	}
	return nil
}

// ValidateSufficientBalance fails with ErrInsufficientFunds if debiting amount
// would take the account below zero
func (v *TransferValidator) ValidateSufficientBalance(from *domain.Account, amount decimal.Decimal) error {
	if from.Balance.Sub(amount).IsNegative() {
		return domain.ErrInsufficientFunds
	}
	return nil
}

// Validate runs the full chain in order: amount, from account, to account, balance
// The first failing check wins
func (v *TransferValidator) Validate(from, to *domain.Account, amount decimal.Decimal) error {
	if err := v.ValidateAmount(amount); err != nil {
		return err
	}
	if err := v.ValidateAccount(from); err != nil {
		return err
	}
	if err := v.ValidateAccount(to); err != nil {
		return err
	}
	return v.ValidateSufficientBalance(from, amount)
}
