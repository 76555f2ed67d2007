package command

import (
	"context"
	"time"

	"github.com/atolyetakip/workshop/internal/workorder/domain"
	"github.com/atolyetakip/workshop/kafka"
	"github.com/atolyetakip/workshop/pkg/apperr"
	"github.com/atolyetakip/workshop/pkg/logger"
)

// CompleteWorkOrderCommand represents the command to complete a work order
type CompleteWorkOrderCommand struct {
	ID uint
}

// CompleteWorkOrderHandler handles complete work order command
type CompleteWorkOrderHandler struct {
	repo      domain.WorkOrderRepository
	publisher *kafka.Publisher
	now       func() time.Time
}

// NewCompleteWorkOrderHandler creates a new complete work order handler
func NewCompleteWorkOrderHandler(repo domain.WorkOrderRepository, publisher *kafka.Publisher) *CompleteWorkOrderHandler {
	return &CompleteWorkOrderHandler{repo: repo, publisher: publisher, now: time.Now}
}

// Handle executes the complete work order command. An open labor session
// is flushed inside the transition so no time is lost.
func (h *CompleteWorkOrderHandler) Handle(ctx context.Context, cmd CompleteWorkOrderCommand) (*domain.WorkOrder, error) {
	if cmd.ID == 0 {
		return nil, apperr.Newf(apperr.InvalidInput, "invalid work order id")
	}

	now := h.now()
	workOrder, err := h.repo.Transition(ctx, cmd.ID, func(workOrder *domain.WorkOrder) error {
		return workOrder.Complete(now)
	})
	if err != nil {
		return nil, err
	}

	// The event rides after the commit; a broker failure must not undo a
	// completed order.
	if err := h.publisher.PublishWorkOrderCompleted(ctx, kafka.WorkOrderCompletedEvent{
		WorkOrderID:       workOrder.ID,
		VehicleID:         workOrder.VehicleID,
		TotalLaborSeconds: workOrder.TotalLaborSeconds,
		CompletedAt:       *workOrder.CompletedAt,
	}); err != nil {
		logger.Warn(ctx).Err(err).Uint("work_order_id", workOrder.ID).Msg("Failed to publish completion event")
	}

	return workOrder, nil
}
