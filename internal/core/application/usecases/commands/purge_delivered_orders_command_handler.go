package commands

import (
	"context"
	"time"
)

// PurgeDeliveredOrdersCommandHandler permanently removes delivered orders
// past their retention window. Purged rows were already soft-deleted and so
// invisible to both cached views; no cache invalidation is needed.
type PurgeDeliveredOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPurgeDeliveredOrdersCommandHandler creates a handler for the cleanup
// sweep.
func NewPurgeDeliveredOrdersCommandHandler(uowFactory OrderUoWFactory) PurgeDeliveredOrdersCommandHandler {
	return PurgeDeliveredOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle purges delivered orders older than the retention cutoff and
// returns the number removed. Running it again immediately removes nothing
// and returns zero.
func (h *PurgeDeliveredOrdersCommandHandler) Handle(ctx context.Context, cmd PurgeDeliveredOrdersCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-cmd.Retention())
	removed, err := uow.OrderRepository().PurgeDelivered(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
