package commands

import (
	"errors"
	"fmt"
	"time"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrPurgeDeliveredOrdersCommandIsNotConstructed = errors.New(
		"PurgeDeliveredOrdersCommand must be created via NewPurgeDeliveredOrdersCommand constructor",
	)
)

// PurgeDeliveredOrdersCommand represents a request to permanently remove
// delivered, soft-deleted orders whose last update is older than the
// retention window.
type PurgeDeliveredOrdersCommand struct {
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewPurgeDeliveredOrdersCommand creates a purge command with the given
// retention window. The retention must be positive.
func NewPurgeDeliveredOrdersCommand(retention time.Duration) (PurgeDeliveredOrdersCommand, error) {
	if retention <= 0 {
		return PurgeDeliveredOrdersCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"retention",
			fmt.Errorf("%s is not positive", retention),
		)
	}

	return PurgeDeliveredOrdersCommand{
		retention: retention,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeDeliveredOrdersCommand) Validate() error {
	return c.guard.Validate(ErrPurgeDeliveredOrdersCommandIsNotConstructed)
}

// Retention returns how long delivered orders are kept after their last
// update before being purged.
func (c PurgeDeliveredOrdersCommand) Retention() time.Duration {
	return c.retention
}
