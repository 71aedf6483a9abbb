package fulfillmentrepo

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormFulfillmentRepository implements FulfillmentRepository using GORM.
type GormFulfillmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormFulfillmentRepository creates a new GORM fulfillment repository.
func NewGormFulfillmentRepository(db *gorm.DB, tracker aggregateTracker) *GormFulfillmentRepository {
	return &GormFulfillmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new fulfillment and its tracking events to the database.
func (r *GormFulfillmentRepository) Add(ctx context.Context, aggregate *fulfillment.Fulfillment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	aggregate.ConfirmPersisted()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing fulfillment under optimistic concurrency.
// The write only lands when the stored row still carries the exact version the
// aggregate was loaded with; a concurrent writer that already committed moved
// the stored version past it, which is reported as a version error.
func (r *GormFulfillmentRepository) Update(ctx context.Context, aggregate *fulfillment.Fulfillment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	events := dto.TrackingEvents
	dto.TrackingEvents = nil

	result := r.db.WithContext(ctx).
		Model(&FulfillmentDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.PersistedVersion()).
		Select("*").Omit("id", "TrackingEvents").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidError("fulfillment version", gorm.ErrRecordNotFound)
	}

	// The ledger is append-only in the domain; rewriting the child rows inside
	// the transaction keeps the persisted sequence identical to the snapshot.
	if err := r.db.WithContext(ctx).
		Where("fulfillment_id = ?", dto.ID).
		Delete(&TrackingEventDTO{}).Error; err != nil {
		return err
	}
	if len(events) > 0 {
		if err := r.db.WithContext(ctx).Create(&events).Error; err != nil {
			return err
		}
	}

	aggregate.ConfirmPersisted()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a fulfillment by ID, including its tracking ledger.
func (r *GormFulfillmentRepository) Get(ctx context.Context, id kernel.UUID) (*fulfillment.Fulfillment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto FulfillmentDTO
	if err := r.db.WithContext(ctx).
		Preload("TrackingEvents", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("fulfillment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the fulfillment created for the given order.
func (r *GormFulfillmentRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*fulfillment.Fulfillment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto FulfillmentDTO
	if err := r.db.WithContext(ctx).
		Preload("TrackingEvents", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("fulfillment by order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllLate retrieves all undelivered fulfillments whose delivery estimate
// has passed.
func (r *GormFulfillmentRepository) GetAllLate(ctx context.Context) ([]*fulfillment.Fulfillment, error) {
	var dtos []FulfillmentDTO
	if err := r.db.WithContext(ctx).
		Preload("TrackingEvents", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("status NOT IN ?", completedStatuses()).
		Where("estimated_delivery_at IS NOT NULL AND estimated_delivery_at < ?", time.Now().UTC()).
		Order("estimated_delivery_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []FulfillmentDTO) ([]*fulfillment.Fulfillment, error) {
	fulfillments := make([]*fulfillment.Fulfillment, 0, len(dtos))
	for _, dto := range dtos {
		f, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		fulfillments = append(fulfillments, f)
	}

	return fulfillments, nil
}

func completedStatuses() []int {
	return []int{
		int(fulfillment.Delivered),
		int(fulfillment.Returned),
		int(fulfillment.Cancelled),
	}
}
