package database

import "context"

// Transactor runs fn atomically. The context handed to fn carries the
// transaction so repositories built on the same DB participate in it.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
