package db

import (
	"context"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// InTx runs fn against a repository bound to a single transaction.
// A repository that already wraps a transaction joins it instead of nesting.
func (r *Repository) InTx(ctx context.Context, fn func(*Repository) error) error {
	if _, ok := r.db.(*pg.Tx); ok {
		return fn(r)
	}

	return r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		return fn(New(tx))
	})
}

// NewID returns a time-ordered identifier for new rows.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}
