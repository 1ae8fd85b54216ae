package db

import (
	"context" // Request scoped queries
	"errors"  // gorm.ErrRecordNotFound comparison
	"fmt"     // Error wrapping
	"time"    // Sweep cutoff

	"moneywise/internal/domain"  // Session model
	"moneywise/internal/session" // Store contract

	"gorm.io/gorm"        // GORM ORM library
	"gorm.io/gorm/clause" // Row locking
)

// SessionStore keeps sessions in MySQL so several server instances can share
// them. Rows are deleted when the session ends; nothing outlives a session.
type SessionStore struct {
	db *gorm.DB
}

var _ session.Store = (*SessionStore)(nil)

// NewSessionStore wraps an open GORM connection
func NewSessionStore(db *gorm.DB) *SessionStore {
	return &SessionStore{db: db}
}

func (s *SessionStore) Create(ctx context.Context, sess *domain.Session) error {
	if err := s.db.WithContext(ctx).Create(sess).Error; err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	var sess domain.Session
	if err := s.db.WithContext(ctx).First(&sess, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &sess, nil
}

// Update locks the row for the duration of fn so concurrent commits to the
// same session apply one after another.
func (s *SessionStore) Update(ctx context.Context, id string, fn func(*domain.Session) error) (*domain.Session, error) {
	var committed *domain.Session
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sess domain.Session
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&sess, "id = ?", id).Error; err != nil {
			return notFound(err)
		}
		if err := fn(&sess); err != nil {
			return err // Return error to rollback
		}
		sess.Version++ // Readers key their cache entries on it
		if err := tx.Save(&sess).Error; err != nil {
			return fmt.Errorf("save session: %w", err)
		}
		committed = &sess
		return nil // Commit transaction
	})
	if err != nil {
		return nil, err
	}
	return committed, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&domain.Session{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete session: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return session.ErrNotFound
	}
	return nil
}

func (s *SessionStore) Sweep(ctx context.Context, cutoff time.Time) (int, error) {
	res := s.db.WithContext(ctx).Where("updated_at < ?", cutoff).Delete(&domain.Session{})
	if res.Error != nil {
		return 0, fmt.Errorf("sweep sessions: %w", res.Error)
	}
	return int(res.RowsAffected), nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return session.ErrNotFound
	}
	return fmt.Errorf("load session: %w", err)
}
