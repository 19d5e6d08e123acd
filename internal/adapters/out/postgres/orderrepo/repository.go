package orderrepo

import (
	"context"
	"errors"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var tracer = otel.Tracer("pizzeria/orderrepo")

// ErrOrderIsAlreadyStored is returned by Add for an aggregate that already has an id.
var ErrOrderIsAlreadyStored = errors.New("order is already stored")

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id order.ID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order row, then its toppings under the generated id, and
// finally assigns that id to the aggregate. Run it inside a unit of work so a
// failed topping insert does not leave a bare order behind.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (err error) {
	ctx, span := tracer.Start(ctx, "GormOrderRepository.Add")
	defer func() { endSpan(span, err) }()

	if err = aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.IsStored() {
		return ErrOrderIsAlreadyStored
	}

	db := r.db.WithContext(ctx)
	dto := fromDomain(aggregate)
	if err = db.Omit(clause.Associations).Create(&dto).Error; err != nil {
		return err
	}

	if toppings := toppingsFromDomain(dto.ID, aggregate); len(toppings) > 0 {
		if err = db.Create(&toppings).Error; err != nil {
			return err
		}
	}

	if err = aggregate.AssignID(order.ID(dto.ID)); err != nil {
		return err
	}

	span.SetAttributes(attribute.Int64("order.id", dto.ID))
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the order status. Pizza type and toppings never change.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) (err error) {
	ctx, span := tracer.Start(ctx, "GormOrderRepository.Update",
		trace.WithAttributes(attribute.Int64("order.id", int64(aggregate.ID()))))
	defer func() { endSpan(span, err) }()

	if err = aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", int64(aggregate.ID())).
		Update("status", aggregate.Status().String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by id.
func (r *GormOrderRepository) Get(ctx context.Context, id order.ID) (*order.Order, error) {
	ctx, span := tracer.Start(ctx, "GormOrderRepository.Get",
		trace.WithAttributes(attribute.Int64("order.id", int64(id))))
	o, err := r.get(ctx, r.db.WithContext(ctx), id)
	endSpan(span, err)
	return o, err
}

// GetForUpdate retrieves an order by id and locks its row.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id order.ID) (*order.Order, error) {
	ctx, span := tracer.Start(ctx, "GormOrderRepository.GetForUpdate",
		trace.WithAttributes(attribute.Int64("order.id", int64(id))))
	db := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"})
	o, err := r.get(ctx, db, id)
	endSpan(span, err)
	return o, err
}

// GetFirstPending retrieves the oldest pending order.
//
// Example:
//
//	next, err := repo.GetFirstPending(ctx)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//		// the kitchen is idle
//	}
func (r *GormOrderRepository) GetFirstPending(ctx context.Context) (*order.Order, error) {
	ctx, span := tracer.Start(ctx, "GormOrderRepository.GetFirstPending")
	o, err := r.firstPending(ctx, r.db.WithContext(ctx))
	endSpan(span, err)
	return o, err
}

// LockFirstPending retrieves the oldest pending order that no other transaction
// holds, with SELECT ... FOR UPDATE SKIP LOCKED. Outside a transaction the lock
// is released as soon as the statement ends.
func (r *GormOrderRepository) LockFirstPending(ctx context.Context) (*order.Order, error) {
	ctx, span := tracer.Start(ctx, "GormOrderRepository.LockFirstPending")
	db := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"})
	o, err := r.firstPending(ctx, db)
	endSpan(span, err)
	return o, err
}

func (r *GormOrderRepository) get(ctx context.Context, db *gorm.DB, id order.ID) (*order.Order, error) {
	var dto OrderDTO
	if err := db.Where("id = ?", int64(id)).Take(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return r.withToppings(ctx, dto)
}

func (r *GormOrderRepository) firstPending(ctx context.Context, db *gorm.DB) (*order.Order, error) {
	var dto OrderDTO
	err := db.Where("status = ?", order.Pending.String()).
		Order("id").
		Limit(1).
		Take(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", "first pending")
		}
		return nil, err
	}

	return r.withToppings(ctx, dto)
}

// withToppings loads the topping rows in a separate statement so that row
// locks taken on orders never spread to order_toppings.
func (r *GormOrderRepository) withToppings(ctx context.Context, dto OrderDTO) (*order.Order, error) {
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Order("topping").
		Find(&dto.Toppings).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

func endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
