package db

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"moneywise/internal/domain"
	"moneywise/internal/ledger"
	"moneywise/internal/session"
)

// newTestStore runs the store against a file-backed SQLite database. The
// sqlite dialect drops FOR UPDATE; a single connection serializes transactions
// instead.
func newTestStore(t *testing.T) *SessionStore {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "sessions.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(gdb))
	return NewSessionStore(gdb)
}

func TestNotFoundMapsRecordNotFound(t *testing.T) {
	assert.ErrorIs(t, notFound(gorm.ErrRecordNotFound), session.ErrNotFound)
	assert.ErrorIs(t, notFound(fmt.Errorf("first: %w", gorm.ErrRecordNotFound)), session.ErrNotFound)

	other := errors.New("connection refused")
	err := notFound(other)
	assert.ErrorIs(t, err, other)
	assert.NotErrorIs(t, err, session.ErrNotFound)
}

func TestSessionStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	s := session.New(time.Now().UTC())
	require.NoError(t, store.Create(ctx, s))

	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, session.SeedWallet, got.Wallet.Balance)
	assert.Equal(t, session.SeedSavings, got.Savings.Balance)
	assert.Len(t, got.Goals, 3)
	assert.Len(t, got.Activity, 7)
	assert.Len(t, got.Chat, 1)
	assert.Equal(t, s.Activity[0].Description, got.Activity[0].Description)
	assert.Equal(t, int64(0), got.Version)
}

func TestSessionStoreUpdateCommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	s := session.New(time.Now().UTC())
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
	assert.Equal(t, int64(1), got.Version)

	stored, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), stored.Wallet.Balance)
	assert.Equal(t, int64(1000), stored.Savings.Balance)
	assert.Equal(t, int64(1), stored.Version)
}

func TestSessionStoreUpdateRollsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	s := session.New(time.Now().UTC())
	require.NoError(t, store.Create(ctx, s))

	_, err := store.Update(ctx, s.ID, func(s *domain.Session) error {
		s.Wallet.Balance = 0
		s.Goals = nil
		return ledger.ErrInsufficientBalance
	})
	assert.ErrorIs(t, err, ledger.ErrInsufficientBalance)

	stored, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, session.SeedWallet, stored.Wallet.Balance)
	assert.Len(t, stored.Goals, 3)
	assert.Equal(t, int64(0), stored.Version)
}

func TestSessionStoreNotFound(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, session.ErrNotFound)
	_, err = store.Update(ctx, "missing", func(*domain.Session) error { return nil })
	assert.ErrorIs(t, err, session.ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "missing"), session.ErrNotFound)
}

func TestSessionStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	s := session.New(time.Now().UTC())
	require.NoError(t, store.Create(ctx, s))

	require.NoError(t, store.Delete(ctx, s.ID))
	_, err := store.Get(ctx, s.ID)
	assert.ErrorIs(t, err, session.ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, s.ID), session.ErrNotFound)
}

func TestSessionStoreSerializesPayments(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	s := session.New(time.Now().UTC())
	require.NoError(t, store.Create(ctx, s))

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
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
			} else {
				assert.ErrorIs(t, err, ledger.ErrInsufficientBalance)
			}
		}()
	}
	wg.Wait()

	stored, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, succeeded)
	assert.Equal(t, int64(50), stored.Wallet.Balance)
	assert.Len(t, stored.Payments, 12)
	assert.Equal(t, int64(12), stored.Version)
}

func TestSessionStoreSweep(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	now := time.Now().UTC()

	old := session.New(now.Add(-2 * time.Hour))
	fresh := session.New(now)
	require.NoError(t, store.Create(ctx, old))
	require.NoError(t, store.Create(ctx, fresh))

	removed, err := store.Sweep(ctx, now.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = store.Get(ctx, old.ID)
	assert.ErrorIs(t, err, session.ErrNotFound)
	_, err = store.Get(ctx, fresh.ID)
	assert.NoError(t, err)
}
