package query

import (
	"context"

	"github.com/atolyetakip/workshop/internal/inventory/domain"
	"github.com/atolyetakip/workshop/pkg/apperr"
)

// GetItemQuery represents the query to get an inventory item by ID
type GetItemQuery struct {
	ID uint
}

// GetItemHandler handles get item query
type GetItemHandler struct {
	repo domain.ItemRepository
}

// NewGetItemHandler creates a new get item handler
func NewGetItemHandler(repo domain.ItemRepository) *GetItemHandler {
	return &GetItemHandler{repo: repo}
}

// Handle executes the get item query
func (h *GetItemHandler) Handle(ctx context.Context, query GetItemQuery) (*domain.Item, error) {
	if query.ID == 0 {
		return nil, apperr.Newf(apperr.InvalidInput, "invalid item id")
	}
	return h.repo.FindByID(ctx, query.ID)
}
