package order

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions. This ensures all
// orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order represents a client's purchase request. It is the aggregate root that
// owns the order's line items and its lifecycle state.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty client name
//   - Must own at least one valid line item
//   - Status transitions follow the Status state machine (forward only)
//   - A removed order (removedAt set) is invisible to active queries and
//     accepts no further transitions
//
// The struct uses private fields so invariants can only be established
// through the factory functions.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// clientName identifies the client who placed the order
	clientName string

	// status is the current state in the order lifecycle
	status Status

	// items are the order's line items, owned exclusively by this order
	items []Item

	// removedAt marks soft deletion; nil means the order is visible
	removedAt *time.Time

	// updatedAt is the time of the last mutation; the cleanup sweep keys
	// its retention cutoff off this value
	updatedAt time.Time

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a new Order in the Initiated status with the given line
// items. All invariants are checked; in particular the item collection must
// not be empty, and every item must be a validated Item.
func NewOrder(id kernel.UUID, clientName string, items []Item) (*Order, error) {
	order := &Order{
		status:        Initiated,
		updatedAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setClientName(clientName),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence, including its status,
// soft-deletion mark and last-update time. The same field validations apply
// as in NewOrder, plus the status must be a valid lifecycle value.
func RestoreOrder(
	id kernel.UUID,
	clientName string,
	items []Item,
	status Status,
	removedAt *time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		removedAt:     removedAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setClientName(clientName),
		order.setItems(items),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. Call it when reconstructing orders from external input.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientName returns the name of the client who placed the order.
func (o *Order) ClientName() string {
	return o.clientName
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// RemovedAt returns the soft-deletion timestamp, or nil while the order is
// visible.
func (o *Order) RemovedAt() *time.Time {
	return o.removedAt
}

// IsRemoved reports whether the order has been soft-deleted. A removed order
// has already been delivered and accepts no further transitions.
func (o *Order) IsRemoved() bool {
	return o.removedAt != nil
}

// UpdatedAt returns the time of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientName(clientName string) error {
	if clientName == "" {
		return errs.NewValueIsRequiredError("clientName")
	}
	o.clientName = clientName
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
