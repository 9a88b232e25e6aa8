package orderrepo

import (
	"context"
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its items to the database in one create.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its items eagerly loaded. Soft-deleted
// rows are visible only when includeRemoved is true.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID, includeRemoved bool) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Preload("Items")
	if !includeRemoved {
		query = query.Where("deleted_at IS NULL")
	}

	var dto OrderDTO
	if err := query.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatus persists a status change conditioned on the expected prior
// status of a visible row. When no row matches, either a concurrent writer
// changed the status first or the row is gone; both surface as ConflictError.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, id kernel.UUID, from, to order.Status) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ? AND deleted_at IS NULL", id.Bytes(), from.String()).
		Update("status", to.String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("order", id.String())
	}

	return nil
}

// SoftDelete marks a visible order as delivered and removed in one
// conditioned update. The row stays in storage for the cleanup sweep.
func (r *GormOrderRepository) SoftDelete(ctx context.Context, id kernel.UUID, from order.Status) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := from.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ? AND deleted_at IS NULL", id.Bytes(), from.String()).
		Updates(map[string]any{
			"status":     order.Delivered.String(),
			"deleted_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("order", id.String())
	}

	return nil
}

// PurgeDelivered permanently removes soft-deleted delivered orders whose
// last update is older than the cutoff, together with their items.
// Returns the number of orders removed.
func (r *GormOrderRepository) PurgeDelivered(ctx context.Context, olderThan time.Time) (int64, error) {
	db := r.db.WithContext(ctx)

	var ids []uuid.UUID
	err := db.Model(&OrderDTO{}).
		Where("status = ? AND deleted_at IS NOT NULL AND updated_at < ?", order.Delivered.String(), olderThan).
		Pluck("id", &ids).Error
	if err != nil {
		return 0, err
	}

	if len(ids) == 0 {
		return 0, nil
	}

	if err = db.Where("order_id IN ?", ids).Delete(&OrderItemDTO{}).Error; err != nil {
		return 0, err
	}

	result := db.Where("id IN ?", ids).Delete(&OrderDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
