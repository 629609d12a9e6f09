package http

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CreateAccountRequest is the JSON body of POST /v1/accounts
type CreateAccountRequest struct {
	AccountID string           `json:"accountId" validate:"required"`
	Balance   *decimal.Decimal `json:"balance" validate:"required"`
}

// TransferRequest carries the form fields of PUT /v1/accounts/transfer
type TransferRequest struct {
	AccountFromID string `form:"accountFromId" validate:"required"`
	AccountToID   string `form:"accountToId" validate:"required"`
	Amount        string `form:"amount" validate:"required"`
}

type AccountResponse struct {
	AccountID string      `json:"accountId"`
	Balance   json.Number `json:"balance"`
}

type TransferResponse struct {
	TransferID         string      `json:"transferId"`
	AccountFromID      string      `json:"accountFromId"`
	AccountToID        string      `json:"accountToId"`
	Amount             json.Number `json:"amount"`
	AccountFromBalance json.Number `json:"accountFromBalance"`
	AccountToBalance   json.Number `json:"accountToBalance"`
	CreatedAt          time.Time   `json:"createdAt"`
}

type TotalResponse struct {
	Total json.Number `json:"total"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}
