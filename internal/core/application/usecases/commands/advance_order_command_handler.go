package commands

import (
	"context"
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// AdvanceOrderResult describes a completed lifecycle transition.
type AdvanceOrderResult struct {
	OrderID        kernel.UUID
	PreviousStatus order.Status
	NewStatus      order.Status
	OccurredAt     time.Time
}

// AdvanceOrderCommandHandler owns the lifecycle transition rules. It loads
// the order including soft-deleted rows so "never existed" (not found) stays
// distinct from "already delivered and removed" (invalid state), persists
// the transition with a conditioned write, and invalidates both the
// per-order and the listing cache entries before returning.
//
// Reaching "delivered" soft-deletes the order instead of merely updating the
// status; the daily sweep purges it after the retention window.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	cache      ports.Cache
}

// NewAdvanceOrderCommandHandler creates a handler for lifecycle transitions.
func NewAdvanceOrderCommandHandler(uowFactory OrderUoWFactory, cache ports.Cache) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle advances the order one lifecycle step and reports the transition.
// A lost race against a concurrent advance on the same order surfaces as
// InvalidStateError, the same as finding the order already past the
// requested transition.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (AdvanceOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return AdvanceOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AdvanceOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	aggregate, err := repo.Get(ctx, cmd.OrderID(), true)
	if err != nil {
		return AdvanceOrderResult{}, err
	}

	if aggregate.IsRemoved() {
		return AdvanceOrderResult{}, errs.NewInvalidStateErrorWithCause(
			aggregate.Status().String(),
			errors.New("order is already delivered and removed"),
		)
	}

	current := aggregate.Status()
	next, ok := current.Next()
	if !ok {
		return AdvanceOrderResult{}, errs.NewInvalidStateError(current.String())
	}

	if next == order.Delivered {
		err = repo.SoftDelete(ctx, cmd.OrderID(), current)
	} else {
		err = repo.UpdateStatus(ctx, cmd.OrderID(), current, next)
	}
	if err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return AdvanceOrderResult{}, errs.NewInvalidStateErrorWithCause(current.String(), err)
		}
		return AdvanceOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AdvanceOrderResult{}, err
	}

	h.cache.Remove(ports.OrderCacheKey(cmd.OrderID()))
	h.cache.Remove(ports.ActiveOrdersCacheKey)

	return AdvanceOrderResult{
		OrderID:        cmd.OrderID(),
		PreviousStatus: current,
		NewStatus:      next,
		OccurredAt:     time.Now().UTC(),
	}, nil
}
