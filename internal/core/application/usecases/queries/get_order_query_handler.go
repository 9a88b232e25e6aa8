package queries

import (
	"context"
	"database/sql"
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order from the database, reading
// through the cache under the per-order key. Removed orders are invisible
// here and surface as ObjectNotFoundError, same as orders that never existed.
type GetOrderQueryHandler struct {
	db    *gorm.DB
	cache ports.Cache
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
func NewGetOrderQueryHandler(db *gorm.DB, cache ports.Cache) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, cache: cache}
}

// Handle returns the requested order with its items. A cache hit under the
// per-order key skips the database; a miss populates the cache.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	key := ports.OrderCacheKey(query.OrderID())
	if cached, ok := h.cache.Get(key); ok {
		if resp, ok := cached.(OrderResponse); ok {
			return resp, nil
		}
	}

	resp, err := h.queryOrder(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	h.cache.Set(key, resp)

	return resp, nil
}

func (h GetOrderQueryHandler) queryOrder(ctx context.Context, orderID kernel.UUID) (OrderResponse, error) {
	var resp OrderResponse
	var id uuid.UUID
	var status string

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_name,
			status,
			created_at,
			updated_at
		FROM orders
		WHERE id = ? AND deleted_at IS NULL
	`, orderID.Bytes()).Row()

	err := row.Scan(
		&id,
		&resp.ClientName,
		&status,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundError("order", orderID.String())
		}
		return OrderResponse{}, err
	}

	respID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = respID

	orderStatus, err := order.StatusFromString(status)
	if err != nil {
		return OrderResponse{}, err
	}
	resp.Status = orderStatus

	resp.Items = make([]OrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			description,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse

		err = rows.Scan(
			&item.Description,
			&item.Quantity,
			&item.UnitPrice,
		)
		if err != nil {
			return OrderResponse{}, err
		}

		resp.Items = append(resp.Items, item)
	}

	if err = rows.Err(); err != nil {
		return OrderResponse{}, err
	}

	return resp, nil
}
