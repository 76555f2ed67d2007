package query

import (
	"context"

	"github.com/atolyetakip/workshop/internal/inventory/domain"
)

// ListItemsQuery represents the query to list inventory items
type ListItemsQuery struct {
	Limit  int
	Offset int
}

// ListItemsHandler handles list items query
type ListItemsHandler struct {
	repo domain.ItemRepository
}

// NewListItemsHandler creates a new list items handler
func NewListItemsHandler(repo domain.ItemRepository) *ListItemsHandler {
	return &ListItemsHandler{repo: repo}
}

// Handle executes the list items query
func (h *ListItemsHandler) Handle(ctx context.Context, query ListItemsQuery) ([]domain.Item, error) {
	limit := query.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	offset := query.Offset
	if offset < 0 {
		offset = 0
	}
	return h.repo.FindAll(ctx, limit, offset)
}
