package command

import (
	"context"
	"strings"

	"github.com/atolyetakip/workshop/internal/inventory/domain"
	"github.com/atolyetakip/workshop/pkg/apperr"
)

// AdjustStockCommand represents a signed stock movement for an item,
// identified by SKU the way goods arrive from suppliers.
type AdjustStockCommand struct {
	SKU            string
	QuantityChange int
}

// AdjustStockHandler handles stock movement command
type AdjustStockHandler struct {
	repo domain.ItemRepository
}

// NewAdjustStockHandler creates a new adjust stock handler
func NewAdjustStockHandler(repo domain.ItemRepository) *AdjustStockHandler {
	return &AdjustStockHandler{repo: repo}
}

// Handle executes the stock movement command
func (h *AdjustStockHandler) Handle(ctx context.Context, cmd AdjustStockCommand) (*domain.Item, error) {
	sku := strings.TrimSpace(cmd.SKU)
	if sku == "" {
		return nil, apperr.Newf(apperr.InvalidInput, "sku is required")
	}
	if cmd.QuantityChange == 0 {
		return nil, apperr.Newf(apperr.InvalidInput, "quantity_change must be non-zero")
	}

	return h.repo.AdjustBySKU(ctx, sku, cmd.QuantityChange)
}
