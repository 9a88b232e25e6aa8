package commands

import (
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to register a new order with its
// line items. The client name must be non-empty and the item collection must
// contain at least one validated item.
type CreateOrderCommand struct {
	clientName string
	items      []order.Item

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Returns an error when the client name is blank, the item collection is
// empty, or any item was not built through order.NewItem.
func NewCreateOrderCommand(clientName string, items []order.Item) (CreateOrderCommand, error) {
	if clientName == "" {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("clientName")
	}
	if len(items) == 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return CreateOrderCommand{}, err
		}
	}

	return CreateOrderCommand{
		clientName: clientName,
		items:      items,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// ClientName returns the name of the client placing the order.
func (c CreateOrderCommand) ClientName() string {
	return c.clientName
}

// Items returns the line items to create the order with.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}
