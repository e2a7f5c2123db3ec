package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"eventsapi/internal/domain"

	"github.com/lib/pq"
)

// DBTX is the subset of *sql.DB and *sql.Tx the repositories use.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type store struct {
	db *sql.DB
	q  DBTX
}

// NewStore returns a domain.Store whose repositories run on db until WithinTx binds them to a transaction.
func NewStore(db *sql.DB) domain.Store {
	return &store{db: db, q: db}
}

func (s *store) Events() domain.EventRepository       { return NewEventRepository(s.q) }
func (s *store) Locations() domain.LocationRepository { return NewLocationRepository(s.q) }
func (s *store) Questions() domain.QuestionRepository { return NewQuestionRepository(s.q) }

func (s *store) WithinTx(ctx context.Context, fn func(tx domain.Store) error) error {
	if _, ok := s.q.(*sql.Tx); ok {
		// already inside a transaction; join it
		return fn(s)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(&store{db: s.db, q: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Postgres SQLSTATE codes mapped to domain errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgStringTooLong       = "22001"
)

func hasPQCode(err error, code string) bool {
	var perr *pq.Error
	return errors.As(err, &perr) && string(perr.Code) == code
}

// mapTooLong turns a value wider than its column into ErrInvalidInput.
func mapTooLong(err error) error {
	var perr *pq.Error
	if errors.As(err, &perr) && string(perr.Code) == pgStringTooLong {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, perr.Message)
	}
	return err
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	return &nt.Time
}

func int64Ptr(ni sql.NullInt64) *int64 {
	if !ni.Valid {
		return nil
	}
	return &ni.Int64
}
