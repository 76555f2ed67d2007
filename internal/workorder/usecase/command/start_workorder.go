package command

import (
	"context"
	"time"

	"github.com/atolyetakip/workshop/internal/workorder/domain"
	"github.com/atolyetakip/workshop/pkg/apperr"
)

// StartWorkOrderCommand represents the command to start labor on a work order
type StartWorkOrderCommand struct {
	ID uint
}

// StartWorkOrderHandler handles start work order command
type StartWorkOrderHandler struct {
	repo domain.WorkOrderRepository
	now  func() time.Time
}

// NewStartWorkOrderHandler creates a new start work order handler
func NewStartWorkOrderHandler(repo domain.WorkOrderRepository) *StartWorkOrderHandler {
	return &StartWorkOrderHandler{repo: repo, now: time.Now}
}

// Handle executes the start work order command
func (h *StartWorkOrderHandler) Handle(ctx context.Context, cmd StartWorkOrderCommand) (*domain.WorkOrder, error) {
	if cmd.ID == 0 {
		return nil, apperr.Newf(apperr.InvalidInput, "invalid work order id")
	}

	now := h.now()
	return h.repo.Transition(ctx, cmd.ID, func(workOrder *domain.WorkOrder) error {
		return workOrder.Start(now)
	})
}
