package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moneywise/internal/domain"
	"moneywise/internal/ledger"
)

func TestMemoryStoreUpdateCommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	s := New(time.Now())
	require.NoError(t, store.Create(ctx, s))

	got, err := store.Update(ctx, s.ID, func(s *domain.Session) error {
		b, err := ledger.MoveToSavings(s.Wallet.Balance, s.Savings.Balance, 250)
		if err != nil {
			return err
		}
		s.Wallet.Balance, s.Savings.Balance = b.Wallet, b.Savings
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1000), got.Wallet.Balance)
	assert.Equal(t, int64(1000), got.Savings.Balance)

	stored, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), stored.Wallet.Balance)
}

func TestMemoryStoreUpdateLeavesStateOnFailure(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	s := New(time.Now())
	require.NoError(t, store.Create(ctx, s))

	_, err := store.Update(ctx, s.ID, func(s *domain.Session) error {
		s.Wallet.Balance = 0
		s.RecordPayment(domain.PaymentRecord{Amount: 1})
		return ledger.ErrInsufficientBalance
	})
	assert.ErrorIs(t, err, ledger.ErrInsufficientBalance)

	stored, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, SeedWallet, stored.Wallet.Balance)
	assert.Empty(t, stored.Payments)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	s := New(time.Now())
	require.NoError(t, store.Create(ctx, s))

	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	got.Wallet.Balance = 1
	got.Goals[0].Name = "changed"

	again, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, SeedWallet, again.Wallet.Balance)
	assert.Equal(t, "New Bicycle", again.Goals[0].Name)
}

func TestMemoryStoreNotFound(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.Update(ctx, "missing", func(*domain.Session) error { return nil })
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "missing"), ErrNotFound)
}

func TestMemoryStoreSerializesUpdates(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	s := New(time.Now())
	require.NoError(t, store.Create(ctx, s))

	// 20 concurrent payments of 100 against 1250: exactly 12 may succeed
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Update(ctx, s.ID, func(s *domain.Session) error {
				res, err := ledger.Pay(s.Wallet.Balance, 100, domain.MethodQR, "", time.Now())
				if err != nil {
					return err
				}
				s.Wallet.Balance = res.NewBalance
				s.RecordPayment(res.Record)
				return nil
			})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			} else if !errors.Is(err, ledger.ErrInsufficientBalance) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	stored, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, succeeded)
	assert.Equal(t, int64(50), stored.Wallet.Balance)
	assert.Len(t, stored.Payments, 12)
}

func TestMemoryStoreUpdateBumpsVersion(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	s := New(time.Now())
	require.NoError(t, store.Create(ctx, s))

	got, err := store.Update(ctx, s.ID, func(*domain.Session) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Version)

	_, err = store.Update(ctx, s.ID, func(*domain.Session) error { return ledger.ErrInvalidAmount })
	assert.ErrorIs(t, err, ledger.ErrInvalidAmount)
	stored, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.Version, "failed updates do not bump the version")
}

func TestMemoryStoreSweep(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	now := time.Now()

	old := New(now.Add(-2 * time.Hour))
	fresh := New(now)
	require.NoError(t, store.Create(ctx, old))
	require.NoError(t, store.Create(ctx, fresh))

	removed, err := store.Sweep(ctx, now.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = store.Get(ctx, old.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.Get(ctx, fresh.ID)
	assert.NoError(t, err)
}
