package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/atolyetakip/workshop/internal/workorder/domain"
)

var tracer = otel.Tracer("workorder-repository")

// GormWorkOrderRepositoryWithTracing wraps GormWorkOrderRepository with tracing
type GormWorkOrderRepositoryWithTracing struct {
	inner *GormWorkOrderRepository
}

// NewGormWorkOrderRepositoryWithTracing creates a new repository with tracing
func NewGormWorkOrderRepositoryWithTracing(db *gorm.DB) *GormWorkOrderRepositoryWithTracing {
	return &GormWorkOrderRepositoryWithTracing{
		inner: NewGormWorkOrderRepository(db),
	}
}

func (r *GormWorkOrderRepositoryWithTracing) AutoMigrate() error {
	return r.inner.AutoMigrate()
}

func (r *GormWorkOrderRepositoryWithTracing) Create(ctx context.Context, workOrder *domain.WorkOrder, plate string) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("vehicle.plate", plate),
		),
	)
	defer span.End()

	err := r.inner.Create(ctx, workOrder, plate)
	if err != nil {
		recordError(span, err)
		return err
	}

	span.SetAttributes(attribute.Int64("work_order.id", int64(workOrder.ID)))
	return nil
}

func (r *GormWorkOrderRepositoryWithTracing) FindByID(ctx context.Context, id uint) (*domain.WorkOrder, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.Int64("work_order.id", int64(id)),
		),
	)
	defer span.End()

	workOrder, err := r.inner.FindByID(ctx, id)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.String("work_order.status", string(workOrder.Status)))
	return workOrder, nil
}

func (r *GormWorkOrderRepositoryWithTracing) FindAll(ctx context.Context, limit, offset int) ([]domain.WorkOrder, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAll",
		trace.WithAttributes(
			attribute.Int("query.limit", limit),
			attribute.Int("query.offset", offset),
		),
	)
	defer span.End()

	workOrders, err := r.inner.FindAll(ctx, limit, offset)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(workOrders)))
	return workOrders, nil
}

func (r *GormWorkOrderRepositoryWithTracing) CountByStatus(ctx context.Context) (map[domain.Status]int64, error) {
	ctx, span := tracer.Start(ctx, "repository.CountByStatus")
	defer span.End()

	counts, err := r.inner.CountByStatus(ctx)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	return counts, nil
}

func (r *GormWorkOrderRepositoryWithTracing) Transition(ctx context.Context, id uint, apply func(*domain.WorkOrder) error) (*domain.WorkOrder, error) {
	ctx, span := tracer.Start(ctx, "repository.Transition",
		trace.WithAttributes(
			attribute.Int64("work_order.id", int64(id)),
		),
	)
	defer span.End()

	workOrder, err := r.inner.Transition(ctx, id, apply)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.String("work_order.status", string(workOrder.Status)))
	return workOrder, nil
}

func (r *GormWorkOrderRepositoryWithTracing) AddPart(ctx context.Context, workOrderID, itemID uint, quantity int, requestID string) (*domain.WorkOrderPart, int, error) {
	ctx, span := tracer.Start(ctx, "repository.AddPart",
		trace.WithAttributes(
			attribute.Int64("work_order.id", int64(workOrderID)),
			attribute.Int64("inventory_item.id", int64(itemID)),
			attribute.Int("part.quantity", quantity),
		),
	)
	defer span.End()

	part, remaining, err := r.inner.AddPart(ctx, workOrderID, itemID, quantity, requestID)
	if err != nil {
		recordError(span, err)
		return nil, 0, err
	}

	span.SetAttributes(
		attribute.Int64("part.id", int64(part.ID)),
		attribute.Int("inventory_item.remaining", remaining),
	)
	return part, remaining, nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
