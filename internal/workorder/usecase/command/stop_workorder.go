package command

import (
	"context"
	"time"

	"github.com/atolyetakip/workshop/internal/workorder/domain"
	"github.com/atolyetakip/workshop/pkg/apperr"
)

// StopWorkOrderCommand represents the command to stop labor on a work order
type StopWorkOrderCommand struct {
	ID uint
}

// StopWorkOrderHandler handles stop work order command
type StopWorkOrderHandler struct {
	repo domain.WorkOrderRepository
	now  func() time.Time
}

// NewStopWorkOrderHandler creates a new stop work order handler
func NewStopWorkOrderHandler(repo domain.WorkOrderRepository) *StopWorkOrderHandler {
	return &StopWorkOrderHandler{repo: repo, now: time.Now}
}

// Handle executes the stop work order command
func (h *StopWorkOrderHandler) Handle(ctx context.Context, cmd StopWorkOrderCommand) (*domain.WorkOrder, error) {
	if cmd.ID == 0 {
		return nil, apperr.Newf(apperr.InvalidInput, "invalid work order id")
	}

	now := h.now()
	return h.repo.Transition(ctx, cmd.ID, func(workOrder *domain.WorkOrder) error {
		return workOrder.Stop(now)
	})
}
