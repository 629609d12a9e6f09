package seeder

import (
	"context"
	"errors"
	"fmt"

	"github.com/simaogato/ledger-backend/internal/domain"
)

// AccountSeeder creates the bootstrap accounts configured for the ledger
type AccountSeeder struct {
	repo domain.AccountRepository
}

// NewAccountSeeder creates a new AccountSeeder instance
func NewAccountSeeder(repo domain.AccountRepository) *AccountSeeder {
	return &AccountSeeder{
		repo: repo,
	}
}

// Seed ensures every given account exists
// Accounts that already exist are left untouched, whatever their balance
// Returns the number of accounts that were created
func (s *AccountSeeder) Seed(ctx context.Context, accounts []*domain.Account) (int, error) {
	created := 0

	for _, account := range accounts {
		// Validate before touching the store
		if err := account.Validate(); err != nil {
			return created, fmt.Errorf("invalid seed account %q: %w", account.ID, err)
		}

		_, err := s.repo.GetByID(ctx, account.ID)
		if err == nil {
			// Account exists, no action needed
			continue
		}
		if !errors.Is(err, domain.ErrAccountNotFound) {
			return created, err
		}

		if err := s.repo.Create(ctx, account); err != nil {
			// Lost a race with a concurrent creator, which is fine for seeding
			if errors.Is(err, domain.ErrDuplicateAccountID) {
				continue
			}
			return created, err
		}
		created++
	}

	return created, nil
}
