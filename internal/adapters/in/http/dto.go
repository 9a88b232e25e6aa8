package http

import (
	"time"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"
)

// ErrorResponse is the error payload returned by every failing endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ItemPayload carries a single line item in requests and responses.
type ItemPayload struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	ClientName string        `json:"clientName"`
	Items      []ItemPayload `json:"items"`
}

// OrderPayload represents an order with its items in responses.
type OrderPayload struct {
	ID         string        `json:"id"`
	ClientName string        `json:"clientName"`
	Status     string        `json:"status"`
	Items      []ItemPayload `json:"items"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

// AdvanceOrderPayload reports a completed lifecycle transition.
type AdvanceOrderPayload struct {
	ID             string    `json:"id"`
	PreviousStatus string    `json:"previousStatus"`
	NewStatus      string    `json:"newStatus"`
	Timestamp      time.Time `json:"timestamp"`
}

func itemPayloads(items []queries.OrderItemResponse) []ItemPayload {
	payloads := make([]ItemPayload, len(items))
	for i, item := range items {
		payloads[i] = ItemPayload{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}

	return payloads
}

func orderPayload(resp queries.OrderResponse) OrderPayload {
	return OrderPayload{
		ID:         resp.ID.String(),
		ClientName: resp.ClientName,
		Status:     resp.Status.String(),
		Items:      itemPayloads(resp.Items),
		CreatedAt:  resp.CreatedAt,
		UpdatedAt:  resp.UpdatedAt,
	}
}

func createdOrderPayload(aggregate *order.Order) OrderPayload {
	items := make([]ItemPayload, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemPayload{
			Description: item.Description(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
		})
	}

	return OrderPayload{
		ID:         aggregate.ID().String(),
		ClientName: aggregate.ClientName(),
		Status:     aggregate.Status().String(),
		Items:      items,
		CreatedAt:  aggregate.UpdatedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
	}
}
