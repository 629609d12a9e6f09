package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/ledger-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, repo *AccountRepository, id string, balance int64) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), domain.NewAccount(id, decimal.NewFromInt(balance))))
}

func balanceOf(t *testing.T, repo *AccountRepository, id string) decimal.Decimal {
	t.Helper()
	account, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	return account.Balance
}

func TestAccountRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	account := domain.NewAccount("Id-123", decimal.NewFromInt(1000))
	require.NoError(t, repo.Create(ctx, account))

	got, err := repo.GetByID(ctx, "Id-123")
	require.NoError(t, err)
	assert.Equal(t, "Id-123", got.ID)
	assert.True(t, got.Balance.Equal(decimal.NewFromInt(1000)))

	// Mutating the caller's value or the returned snapshot must not leak into the store
	account.Balance = decimal.NewFromInt(1)
	got.Balance = decimal.NewFromInt(2)
	assert.True(t, balanceOf(t, repo, "Id-123").Equal(decimal.NewFromInt(1000)))
}

func TestAccountRepository_GetByID_NotFound(t *testing.T) {
	repo := NewAccountRepository()

	got, err := repo.GetByID(context.Background(), "missing")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestAccountRepository_Create_Duplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()
	seed(t, repo, "Id-123", 1000)

	err := repo.Create(ctx, domain.NewAccount("Id-123", decimal.NewFromInt(5)))

	assert.ErrorIs(t, err, domain.ErrDuplicateAccountID)
	assert.Equal(t, "Account id Id-123 already exists!", err.Error())
	assert.True(t, balanceOf(t, repo, "Id-123").Equal(decimal.NewFromInt(1000)), "existing balance must be unchanged")
}

func TestAccountRepository_Create_ConcurrentDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	const workers = 50
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- repo.Create(ctx, domain.NewAccount("Id-123", decimal.NewFromInt(int64(i))))
		}(i)
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrDuplicateAccountID)
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, repo.Count())
}

func TestAccountRepository_Transfer(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()
	seed(t, repo, "Id-123", 1000)
	seed(t, repo, "Id-456", 1000)

	from, to, err := repo.Transfer(ctx, "Id-123", "Id-456", decimal.NewFromInt(200))
	require.NoError(t, err)

	assert.True(t, from.Balance.Equal(decimal.NewFromInt(800)))
	assert.True(t, to.Balance.Equal(decimal.NewFromInt(1200)))
	assert.True(t, balanceOf(t, repo, "Id-123").Equal(decimal.NewFromInt(800)))
	assert.True(t, balanceOf(t, repo, "Id-456").Equal(decimal.NewFromInt(1200)))
}

func TestAccountRepository_Transfer_Failures(t *testing.T) {
	tests := []struct {
		name    string
		fromID  string
		toID    string
		amount  decimal.Decimal
		wantErr error
	}{
		{name: "Unknown from account", fromID: "Id-1231", toID: "Id-456", amount: decimal.NewFromInt(200), wantErr: domain.ErrAccountNotFound},
		{name: "Unknown to account", fromID: "Id-123", toID: "Id-4567", amount: decimal.NewFromInt(200), wantErr: domain.ErrAccountNotFound},
		{name: "Insufficient funds", fromID: "Id-123", toID: "Id-456", amount: decimal.NewFromInt(1200), wantErr: domain.ErrInsufficientFunds},
		{name: "Zero amount", fromID: "Id-123", toID: "Id-456", amount: decimal.Zero, wantErr: domain.ErrInvalidAmount},
		{name: "Negative amount", fromID: "Id-123", toID: "Id-456", amount: decimal.NewFromInt(-200), wantErr: domain.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewAccountRepository()
			seed(t, repo, "Id-123", 1000)
			seed(t, repo, "Id-456", 1000)

			from, to, err := repo.Transfer(context.Background(), tt.fromID, tt.toID, tt.amount)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, from)
			assert.Nil(t, to)
			assert.True(t, balanceOf(t, repo, "Id-123").Equal(decimal.NewFromInt(1000)))
			assert.True(t, balanceOf(t, repo, "Id-456").Equal(decimal.NewFromInt(1000)))
		})
	}
}

func TestAccountRepository_Transfer_EntireBalance(t *testing.T) {
	repo := NewAccountRepository()
	seed(t, repo, "Id-123", 1000)
	seed(t, repo, "Id-456", 0)

	_, _, err := repo.Transfer(context.Background(), "Id-123", "Id-456", decimal.NewFromInt(1000))
	require.NoError(t, err)

	assert.True(t, balanceOf(t, repo, "Id-123").IsZero())
	assert.True(t, balanceOf(t, repo, "Id-456").Equal(decimal.NewFromInt(1000)))
}

func TestAccountRepository_Transfer_SelfTransferIsNoOp(t *testing.T) {
	repo := NewAccountRepository()
	seed(t, repo, "Id-123", 1000)

	done := make(chan struct{})
	go func() {
		defer close(done)
		from, to, err := repo.Transfer(context.Background(), "Id-123", "Id-123", decimal.NewFromInt(200))
		assert.NoError(t, err)
		assert.True(t, from.Balance.Equal(decimal.NewFromInt(1000)))
		assert.True(t, to.Balance.Equal(decimal.NewFromInt(1000)))
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("self-transfer hung")
	}

	assert.True(t, balanceOf(t, repo, "Id-123").Equal(decimal.NewFromInt(1000)))
}

func TestAccountRepository_Transfer_SelfTransferStillChecksFunds(t *testing.T) {
	repo := NewAccountRepository()
	seed(t, repo, "Id-123", 100)

	_, _, err := repo.Transfer(context.Background(), "Id-123", "Id-123", decimal.NewFromInt(200))
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestAccountRepository_Transfer_FractionalAmounts(t *testing.T) {
	repo := NewAccountRepository()
	require.NoError(t, repo.Create(context.Background(), domain.NewAccount("a", decimal.RequireFromString("0.3"))))
	seed(t, repo, "b", 0)

	_, _, err := repo.Transfer(context.Background(), "a", "b", decimal.RequireFromString("0.1"))
	require.NoError(t, err)
	_, _, err = repo.Transfer(context.Background(), "a", "b", decimal.RequireFromString("0.2"))
	require.NoError(t, err)

	assert.True(t, balanceOf(t, repo, "a").IsZero(), "no rounding drift expected")
	assert.True(t, balanceOf(t, repo, "b").Equal(decimal.RequireFromString("0.3")))
}

func TestAccountRepository_CancelledContext(t *testing.T) {
	repo := NewAccountRepository()
	seed(t, repo, "Id-123", 1000)
	seed(t, repo, "Id-456", 1000)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := repo.Transfer(ctx, "Id-123", "Id-456", decimal.NewFromInt(200))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = repo.GetByID(ctx, "Id-123")
	assert.ErrorIs(t, err, context.Canceled)

	err = repo.Create(ctx, domain.NewAccount("Id-789", decimal.Zero))
	assert.ErrorIs(t, err, context.Canceled)

	assert.True(t, balanceOf(t, repo, "Id-123").Equal(decimal.NewFromInt(1000)))
}

func TestAccountRepository_Clear(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()
	seed(t, repo, "Id-123", 1000)
	seed(t, repo, "Id-456", 1000)

	repo.Clear()

	assert.Equal(t, 0, repo.Count())
	_, err := repo.GetByID(ctx, "Id-123")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	_, _, err = repo.Transfer(ctx, "Id-123", "Id-456", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	// IDs are free again after a reset
	seed(t, repo, "Id-123", 5)
	assert.True(t, balanceOf(t, repo, "Id-123").Equal(decimal.NewFromInt(5)))
}

func TestAccountRepository_Transfer_RemovedEntryIsRejected(t *testing.T) {
	repo := NewAccountRepository()
	seed(t, repo, "Id-123", 1000)
	seed(t, repo, "Id-456", 1000)

	// Simulate a reset that lands between lookup and locking
	from, _ := repo.lookup("Id-123")
	to, _ := repo.lookup("Id-456")
	repo.Clear()
	repo.accounts["Id-123"] = from
	repo.accounts["Id-456"] = to

	_, _, err := repo.Transfer(context.Background(), "Id-123", "Id-456", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.True(t, from.balance.Equal(decimal.NewFromInt(1000)))
}

func TestAccountRepository_Total(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	total, err := repo.Total(ctx)
	require.NoError(t, err)
	assert.True(t, total.IsZero())

	seed(t, repo, "Id-123", 1000)
	seed(t, repo, "Id-456", 250)

	total, err = repo.Total(ctx)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(1250)))
}

// Total must never observe a transfer half-applied
func TestAccountRepository_Total_ConsistentDuringTransfers(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	const accounts = 8
	ids := make([]string, accounts)
	for i := range ids {
		ids[i] = fmt.Sprintf("acc-%d", i)
		seed(t, repo, ids[i], 100)
	}
	want := decimal.NewFromInt(accounts * 100)

	stop := make(chan struct{})
	var wg sync.WaitGroup
	for w := 0; w < accounts; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; ; i++ {
				select {
				case <-stop:
					return
				default:
				}
				from := ids[(w+i)%accounts]
				to := ids[(w+i+1+i%3)%accounts]
				_, _, err := repo.Transfer(ctx, from, to, decimal.NewFromInt(int64(1+i%5)))
				if err != nil && !errors.Is(err, domain.ErrInsufficientFunds) {
					t.Errorf("%s->%s: %v", from, to, err)
					return
				}
			}
		}(w)
	}

	for i := 0; i < 2000; i++ {
		total, err := repo.Total(ctx)
		require.NoError(t, err)
		if !total.Equal(want) {
			close(stop)
			wg.Wait()
			t.Fatalf("read %d: total %s, want %s", i, total, want)
		}
	}

	close(stop)
	wg.Wait()
}

// N concurrent transfers of a from X (holding N*a) to Y must drain X exactly
func TestAccountRepository_ConcurrentTransfers_NoLostUpdates(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	const n = 200
	amount := decimal.NewFromInt(5)
	seed(t, repo, "X", n*5)
	seed(t, repo, "Y", 100)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, _, err := repo.Transfer(ctx, "X", "Y", amount); err != nil {
				t.Errorf("X->Y: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.True(t, balanceOf(t, repo, "X").IsZero())
	assert.True(t, balanceOf(t, repo, "Y").Equal(decimal.NewFromInt(100+n*5)))

	// The account is now empty, one more debit must fail
	_, _, err := repo.Transfer(ctx, "X", "Y", amount)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

// Opposite-direction transfers over the same pair must all complete
func TestAccountRepository_ConcurrentTransfers_NoDeadlock(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()
	seed(t, repo, "A", 1000)
	seed(t, repo, "B", 1000)

	const n = 200
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, _, err := repo.Transfer(ctx, "A", "B", decimal.NewFromInt(1)); err != nil {
				t.Errorf("A->B: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if _, _, err := repo.Transfer(ctx, "B", "A", decimal.NewFromInt(1)); err != nil {
				t.Errorf("B->A: %v", err)
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(20 * time.Second):
		t.Fatal("concurrent opposite transfers did not complete")
	}

	assert.True(t, balanceOf(t, repo, "A").Equal(decimal.NewFromInt(1000)))
	assert.True(t, balanceOf(t, repo, "B").Equal(decimal.NewFromInt(1000)))
}

// Random transfers over a ring of accounts conserve the total and never go negative
func TestAccountRepository_ConcurrentTransfers_Conservation(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	const accounts = 6
	ids := make([]string, accounts)
	for i := range ids {
		ids[i] = fmt.Sprintf("acc-%d", i)
		seed(t, repo, ids[i], 50)
	}
	initial, err := repo.Total(ctx)
	require.NoError(t, err)

	const workers = 24
	const perWorker = 40
	var wg sync.WaitGroup
	stop := make(chan struct{})
	negative := make(chan string, 1)

	// Reader checking non-negativity while transfers run
	go func() {
		for {
			select {
			case <-stop:
				return
			default:
			}
			for _, id := range ids {
				account, err := repo.GetByID(ctx, id)
				if err == nil && account.Balance.IsNegative() {
					select {
					case negative <- id:
					default:
					}
				}
			}
		}
	}()

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				from := ids[(w+i)%accounts]
				to := ids[(w+2*i+1)%accounts]
				_, _, err := repo.Transfer(ctx, from, to, decimal.NewFromInt(int64(1+(w+i)%7)))
				if err != nil && !errors.Is(err, domain.ErrInsufficientFunds) {
					t.Errorf("%s->%s: %v", from, to, err)
				}
			}
		}(w)
	}
	wg.Wait()
	close(stop)

	select {
	case id := <-negative:
		t.Fatalf("observed negative balance on %s", id)
	default:
	}

	final, err := repo.Total(ctx)
	require.NoError(t, err)
	assert.True(t, initial.Equal(final), "total changed from %s to %s", initial, final)
}
