package queries

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves all in-flight orders from the
// database, reading through the cache. A cache hit skips the database
// entirely; a miss populates the cache under the listing key so subsequent
// calls within the TTL are served from memory. Mutating handlers remove the
// listing key, so a follow-up read always observes its own writes.
//
// Example:
//
//	handler := NewGetActiveOrdersQueryHandler(db, cache)
//	query := NewGetActiveOrdersQuery()
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d active orders\n", len(orders))
type GetActiveOrdersQueryHandler struct {
	db    *gorm.DB
	cache ports.Cache
}

// NewGetActiveOrdersQueryHandler creates a handler for active order listings.
func NewGetActiveOrdersQueryHandler(db *gorm.DB, cache ports.Cache) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db, cache: cache}
}

// Handle returns every order that has not reached the delivered status and
// has not been removed, sorted by creation time. Results come from the cache
// when a fresh listing is present.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if cached, ok := h.cache.Get(ports.ActiveOrdersCacheKey); ok {
		if orders, ok := cached.([]OrderResponse); ok {
			return orders, nil
		}
	}

	orders, err := h.queryActiveOrders(ctx)
	if err != nil {
		return nil, err
	}

	h.cache.Set(ports.ActiveOrdersCacheKey, orders)

	return orders, nil
}

func (h GetActiveOrdersQueryHandler) queryActiveOrders(ctx context.Context) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)
	index := make(map[uuid.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_name,
			status,
			created_at,
			updated_at
		FROM orders
		WHERE status <> ? AND deleted_at IS NULL
		ORDER BY created_at, id
	`, order.Delivered.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp OrderResponse
		var id uuid.UUID
		var status string

		err = rows.Scan(
			&id,
			&resp.ClientName,
			&status,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		orderStatus, statusErr := order.StatusFromString(status)
		if statusErr != nil {
			return nil, statusErr
		}
		resp.Status = orderStatus

		resp.Items = make([]OrderItemResponse, 0)
		index[id] = len(orders)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	itemRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			oi.order_id,
			oi.description,
			oi.quantity,
			oi.unit_price
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.status <> ? AND o.deleted_at IS NULL
		ORDER BY oi.id
	`, order.Delivered.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID uuid.UUID
		var item OrderItemResponse

		err = itemRows.Scan(
			&orderID,
			&item.Description,
			&item.Quantity,
			&item.UnitPrice,
		)
		if err != nil {
			return nil, err
		}

		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}

	if err = itemRows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
