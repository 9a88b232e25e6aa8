// Package orderrepo implements order persistence over GORM. It maps the
// order aggregate to the orders and order_items tables and keeps the
// soft-deletion predicate (deleted_at IS NULL) explicit in every query.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database representation of an order aggregate.
// DeletedAt is a plain nullable column, not gorm.DeletedAt: visibility is an
// explicit query predicate rather than implicit ORM behavior.
type OrderDTO struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ClientName string         `gorm:"not null"`
	Status     string         `gorm:"type:varchar(16);not null;index"`
	Items      []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time
	UpdatedAt  time.Time  `gorm:"index"`
	DeletedAt  *time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is the database representation of a single order line.
// Rows reference their owning order and are removed with it on purge.
type OrderItemDTO struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Description string    `gorm:"not null"`
	Quantity    int       `gorm:"not null"`
	UnitPrice   float64   `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:     aggregate.ID().Bytes(),
			Description: item.Description(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		ClientName: aggregate.ClientName(),
		Status:     aggregate.Status().String(),
		Items:      items,
		UpdatedAt:  aggregate.UpdatedAt(),
		DeletedAt:  aggregate.RemovedAt(),
	}
}

// toDomain reconstructs an order aggregate from its database representation.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.Description, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, dto.ClientName, items, status, dto.DeletedAt, dto.UpdatedAt)
}
