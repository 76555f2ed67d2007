package query

import (
	"context"

	"github.com/atolyetakip/workshop/internal/inventory/domain"
)

// LowStockHandler lists items at or below their critical level for the
// dashboard. The threshold is advisory and never gates consumption.
type LowStockHandler struct {
	repo domain.ItemRepository
}

// NewLowStockHandler creates a new low stock handler
func NewLowStockHandler(repo domain.ItemRepository) *LowStockHandler {
	return &LowStockHandler{repo: repo}
}

// Handle executes the low stock query
func (h *LowStockHandler) Handle(ctx context.Context) ([]domain.Item, error) {
	return h.repo.FindLowStock(ctx)
}
