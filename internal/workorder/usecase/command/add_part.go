package command

import (
	"context"

	"github.com/atolyetakip/workshop/internal/workorder/domain"
	"github.com/atolyetakip/workshop/kafka"
	"github.com/atolyetakip/workshop/pkg/apperr"
	"github.com/atolyetakip/workshop/pkg/logger"
)

// AddPartCommand represents the command to consume a part against a work
// order. RequestID is the caller-supplied idempotency token: retries of
// an ambiguous failure with the same RequestID debit stock exactly once.
type AddPartCommand struct {
	WorkOrderID     uint
	InventoryItemID uint
	Quantity        int
	RequestID       string
}

// AddPartHandler coordinates the inventory debit with the consumption record
type AddPartHandler struct {
	repo      domain.WorkOrderRepository
	publisher *kafka.Publisher
}

// NewAddPartHandler creates a new add part handler
func NewAddPartHandler(repo domain.WorkOrderRepository, publisher *kafka.Publisher) *AddPartHandler {
	return &AddPartHandler{repo: repo, publisher: publisher}
}

// Handle executes the add part command
func (h *AddPartHandler) Handle(ctx context.Context, cmd AddPartCommand) (*domain.WorkOrderPart, error) {
	if cmd.WorkOrderID == 0 {
		return nil, apperr.Newf(apperr.InvalidInput, "invalid work order id")
	}
	if cmd.InventoryItemID == 0 {
		return nil, apperr.Newf(apperr.InvalidInput, "invalid inventory item id")
	}
	if cmd.Quantity <= 0 {
		return nil, apperr.Newf(apperr.InvalidInput, "quantity must be positive")
	}

	part, remaining, err := h.repo.AddPart(ctx, cmd.WorkOrderID, cmd.InventoryItemID, cmd.Quantity, cmd.RequestID)
	if err != nil {
		return nil, err
	}

	if err := h.publisher.PublishPartConsumed(ctx, kafka.PartConsumedEvent{
		WorkOrderID:       part.WorkOrderID,
		InventoryItemID:   part.InventoryItemID,
		Quantity:          part.Quantity,
		RemainingQuantity: remaining,
	}); err != nil {
		logger.Warn(ctx).Err(err).Uint("work_order_id", part.WorkOrderID).Msg("Failed to publish part consumption event")
	}

	return part, nil
}
