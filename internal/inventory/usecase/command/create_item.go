package command

import (
	"context"
	"strings"

	"github.com/atolyetakip/workshop/internal/inventory/domain"
	"github.com/atolyetakip/workshop/pkg/apperr"
)

// CreateItemCommand represents the command to create an inventory item
type CreateItemCommand struct {
	Name          string
	SKU           string
	Quantity      int
	CriticalLevel int
}

// CreateItemHandler handles create item command
type CreateItemHandler struct {
	repo domain.ItemRepository
}

// NewCreateItemHandler creates a new create item handler
func NewCreateItemHandler(repo domain.ItemRepository) *CreateItemHandler {
	return &CreateItemHandler{repo: repo}
}

// Handle executes the create item command
func (h *CreateItemHandler) Handle(ctx context.Context, cmd CreateItemCommand) (*domain.Item, error) {
	name := strings.TrimSpace(cmd.Name)
	sku := strings.TrimSpace(cmd.SKU)

	if name == "" {
		return nil, apperr.Newf(apperr.InvalidInput, "name is required")
	}
	if sku == "" {
		return nil, apperr.Newf(apperr.InvalidInput, "sku is required")
	}
	if cmd.Quantity < 0 {
		return nil, apperr.Newf(apperr.InvalidInput, "quantity cannot be negative")
	}
	if cmd.CriticalLevel < 0 {
		return nil, apperr.Newf(apperr.InvalidInput, "critical level cannot be negative")
	}

	item := &domain.Item{
		Name:          name,
		SKU:           sku,
		Quantity:      cmd.Quantity,
		CriticalLevel: cmd.CriticalLevel,
	}

	if err := h.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}
