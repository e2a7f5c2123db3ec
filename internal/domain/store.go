package domain

import "context"

// Store groups the repositories that share one database handle.
// WithinTx runs fn against a Store bound to a single transaction; fn's error rolls it back.
type Store interface {
	Events() EventRepository
	Locations() LocationRepository
	Questions() QuestionRepository
	WithinTx(ctx context.Context, fn func(tx Store) error) error
}
