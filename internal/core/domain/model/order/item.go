package order

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the NewItem factory function.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a single line within an order: what is being bought, how many, and
// at what unit price. Items are value objects owned exclusively by their
// Order; they carry no identity of their own in the domain.
//
// Invariants:
//   - description must not be empty
//   - quantity must be non-negative
//   - unitPrice must be non-negative
type Item struct {
	description string
	quantity    int
	unitPrice   float64

	isConstructed bool
}

// NewItem creates a validated order line.
func NewItem(description string, quantity int, unitPrice float64) (Item, error) {
	item := Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setDescription(description),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created via NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// Description returns the line's free-text description.
func (i Item) Description() string {
	return i.description
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single unit.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

func (i *Item) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	i.description = description
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%g is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}
