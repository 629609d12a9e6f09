package domain

import (
	"errors"
	"fmt"
)

// Transfer errors. The messages are part of the public contract and are
// returned verbatim to API clients.
var (
	ErrInvalidAmount     = errors.New("Transfer Amount should be greater than 0.")
	ErrAccountNotFound   = errors.New("Account does not exist.")
	ErrInsufficientFunds = errors.New("Low Balance in From Account.")
)

// Account creation errors
var (
	ErrDuplicateAccountID = errors.New("account id already exists")
	ErrEmptyAccountID     = errors.New("account id cannot be empty")
	ErrNegativeBalance    = errors.New("initial balance cannot be negative")
)

// DuplicateAccountIDError is returned when an account is created with an ID
// that is already taken. It matches ErrDuplicateAccountID with errors.Is.
type DuplicateAccountIDError struct {
	ID string
}

func (e *DuplicateAccountIDError) Error() string {
	return fmt.Sprintf("Account id %s already exists!", e.ID)
}

// Is reports whether target is ErrDuplicateAccountID
func (e *DuplicateAccountIDError) Is(target error) bool {
	return target == ErrDuplicateAccountID
}
