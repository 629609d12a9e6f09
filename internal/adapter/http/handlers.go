package http

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/shopspring/decimal"

	"github.com/simaogato/ledger-backend/internal/domain"
	"github.com/simaogato/ledger-backend/internal/usecase/accounts"
)

// LedgerReader exposes ledger-wide reads that are not part of the accounts use case
type LedgerReader interface {
	Total(ctx context.Context) (decimal.Decimal, error)
}

// Handler serves the REST API on top of the accounts use case
type Handler struct {
	AccountsService *accounts.AccountsService
	Ledger          LedgerReader

	validate *validator.Validate
}

// NewHandler creates a new Handler instance
func NewHandler(accountsService *accounts.AccountsService, ledger LedgerReader) *Handler {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their wire names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			if name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]; name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	return &Handler{
		AccountsService: accountsService,
		Ledger:          ledger,
		validate:        validate,
	}
}

// CreateAccount handles POST /v1/accounts
func (h *Handler) CreateAccount(c fiber.Ctx) error {
	var req CreateAccountRequest
	if err := c.Bind().Body(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, errors.New("malformed request body"))
	}
	if err := h.validateStruct(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, err)
	}

	account := domain.NewAccount(req.AccountID, *req.Balance)
	if err := h.AccountsService.CreateAccount(requestContext(c), account); err != nil {
		return writeError(c, statusFor(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(toAccountResponse(account))
}

// GetAccount handles GET /v1/accounts/:id
func (h *Handler) GetAccount(c fiber.Ctx) error {
	account, err := h.AccountsService.GetAccount(requestContext(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return writeError(c, fiber.StatusNotFound, err)
		}
		return writeError(c, statusFor(err), err)
	}

	return c.JSON(toAccountResponse(account))
}

// TransferAmount handles PUT /v1/accounts/transfer
// Fields are read from the query string, an urlencoded body or a multipart body.
func (h *Handler) TransferAmount(c fiber.Ctx) error {
	req := TransferRequest{
		AccountFromID: c.FormValue("accountFromId"),
		AccountToID:   c.FormValue("accountToId"),
		Amount:        c.FormValue("amount"),
	}
	if err := h.validateStruct(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, err)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, fmt.Errorf("invalid amount format: %w", err))
	}

	transfer, err := h.AccountsService.TransferAmount(requestContext(c), req.AccountFromID, req.AccountToID, amount)
	if err != nil {
		return writeError(c, statusFor(err), err)
	}

	return c.JSON(TransferResponse{
		TransferID:         transfer.ID.String(),
		AccountFromID:      transfer.FromAccountID,
		AccountToID:        transfer.ToAccountID,
		Amount:             number(transfer.Amount),
		AccountFromBalance: number(transfer.FromBalance),
		AccountToBalance:   number(transfer.ToBalance),
		CreatedAt:          transfer.Date,
	})
}

// LedgerTotal handles GET /v1/ledger/total
func (h *Handler) LedgerTotal(c fiber.Ctx) error {
	total, err := h.Ledger.Total(requestContext(c))
	if err != nil {
		return writeError(c, statusFor(err), err)
	}

	return c.JSON(TotalResponse{Total: number(total)})
}

// Health handles GET /health
func (h *Handler) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *Handler) validateStruct(v interface{}) error {
	err := h.validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s must be %s", fe.Field(), fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

func toAccountResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID: account.ID,
		Balance:   number(account.Balance),
	}
}

// requestContext returns the per-request context handed to the use cases
// fiber.Ctx is itself a context.Context bound to the underlying request
func requestContext(c fiber.Ctx) context.Context {
	return c
}
