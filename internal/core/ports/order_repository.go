// Package ports defines the interfaces the application core needs from its
// collaborators: the order store, the cache, and the unit of work. These
// contracts decouple the use cases from infrastructure and make both sides
// independently testable.
package ports

import (
	"context"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// All write-side access to orders and their items goes through it.
type OrderRepository interface {
	// Add persists a new order aggregate together with its line items as
	// one logical unit. The order must be valid and not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id with its items eagerly attached.
	// With includeRemoved false, soft-deleted orders are invisible and
	// resolve to errs.ObjectNotFoundError; with includeRemoved true the
	// lookup also sees soft-deleted rows, which lets callers distinguish
	// "never existed" from "already delivered and removed".
	Get(ctx context.Context, id kernel.UUID, includeRemoved bool) (*order.Order, error)

	// UpdateStatus persists a status change conditioned on the expected
	// prior status of a visible row (optimistic concurrency). When the
	// precondition no longer holds it returns errs.ConflictError.
	UpdateStatus(ctx context.Context, id kernel.UUID, from, to order.Status) error

	// SoftDelete marks a visible order as delivered and removed in one
	// conditioned update, keeping the row in storage. Returns
	// errs.ConflictError when the precondition no longer holds.
	SoftDelete(ctx context.Context, id kernel.UUID, from order.Status) error

	// PurgeDelivered permanently removes soft-deleted delivered orders
	// whose last update is older than the cutoff, items included.
	// Returns the number of orders removed; removing nothing is not an
	// error.
	PurgeDelivered(ctx context.Context, olderThan time.Time) (int64, error)
}
