package memory

import (
	"context"
	"sort"

	"github.com/sasha-s/go-deadlock"
	"github.com/shopspring/decimal"
	"github.com/simaogato/ledger-backend/internal/domain"
)

// accountEntry is the store-owned record of one account
// balance and removed are guarded by mu
type accountEntry struct {
	mu      deadlock.RWMutex
	id      string
	balance decimal.Decimal
	removed bool
}

func (e *accountEntry) snapshot() *domain.Account {
	return domain.NewAccount(e.id, e.balance)
}

// AccountRepository is an in-memory implementation of domain.AccountRepository
//
// Locking:
//   - mu guards the id -> entry map only and is never held while waiting on an entry lock
//   - each entry has its own lock; a transfer takes both entry locks in ascending id order
//     regardless of which side is debited, so two transfers over the same pair cannot deadlock
type AccountRepository struct {
	mu       deadlock.RWMutex
	accounts map[string]*accountEntry
}

var _ domain.AccountRepository = (*AccountRepository)(nil)

// NewAccountRepository creates an empty in-memory account store
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[string]*accountEntry),
	}
}

// Create inserts a copy of the account
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.ID]; exists {
		return &domain.DuplicateAccountIDError{ID: account.ID}
	}

	r.accounts[account.ID] = &accountEntry{
		id:      account.ID,
		balance: account.Balance,
	}

	return nil
}

// GetByID returns a snapshot of the latest committed state of the account
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entry, ok := r.lookup(id)
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	entry.mu.RLock()
	defer entry.mu.RUnlock()

	if entry.removed {
		return nil, domain.ErrAccountNotFound
	}

	return entry.snapshot(), nil
}

// Transfer moves amount from fromID to toID atomically
func (r *AccountRepository) Transfer(ctx context.Context, fromID, toID string, amount decimal.Decimal) (*domain.Account, *domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, domain.ErrInvalidAmount
	}

	from, ok := r.lookup(fromID)
	if !ok {
		return nil, nil, domain.ErrAccountNotFound
	}
	to, ok := r.lookup(toID)
	if !ok {
		return nil, nil, domain.ErrAccountNotFound
	}

	unlock := lockPair(from, to)
	defer unlock()

	// Re-check under the locks: the validator's view may be stale by now
	if from.removed || to.removed {
		return nil, nil, domain.ErrAccountNotFound
	}
	if from.balance.LessThan(amount) {
		return nil, nil, domain.ErrInsufficientFunds
	}

	from.balance = from.balance.Sub(amount)
	to.balance = to.balance.Add(amount)

	return from.snapshot(), to.snapshot(), nil
}

// Total returns the sum of all balances as of a single point in time
// The map stays read-locked while every entry is read-locked in ascending id
// order, the same order transfers use, so no transfer commits mid-sum.
func (r *AccountRepository) Total(ctx context.Context) (decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Zero, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*accountEntry, 0, len(r.accounts))
	for _, entry := range r.accounts {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].id < entries[j].id
	})

	for _, entry := range entries {
		entry.mu.RLock()
	}
	defer func() {
		for i := len(entries) - 1; i >= 0; i-- {
			entries[i].mu.RUnlock()
		}
	}()

	total := decimal.Zero
	for _, entry := range entries {
		if !entry.removed {
			total = total.Add(entry.balance)
		}
	}

	return total, nil
}

// Count returns the number of accounts in the store
func (r *AccountRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts)
}

// Clear removes every account. Meant for resetting state between tests;
// entries still referenced by an in-flight transfer are flagged as removed
// so the transfer fails with ErrAccountNotFound instead of committing.
func (r *AccountRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, entry := range r.accounts {
		entry.mu.Lock()
		entry.removed = true
		entry.mu.Unlock()
	}

	r.accounts = make(map[string]*accountEntry)
}

func (r *AccountRepository) lookup(id string) (*accountEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.accounts[id]
	return entry, ok
}

// lockPair write-locks both entries in ascending id order and returns the unlock func
// A self-transfer locks its single entry once.
func lockPair(a, b *accountEntry) func() {
	if a == b {
		a.mu.Lock()
		return a.mu.Unlock
	}

	first, second := a, b
	if second.id < first.id {
		first, second = second, first
	}

	first.mu.Lock()
	second.mu.Lock()

	return func() {
		second.mu.Unlock()
		first.mu.Unlock()
	}
}
