package query

import (
	"context"
	"time"

	"github.com/atolyetakip/workshop/internal/workorder/domain"
)

// ListWorkOrdersQuery represents the query to list work orders
type ListWorkOrdersQuery struct {
	Limit  int
	Offset int
}

// ListWorkOrdersHandler handles list work orders query
type ListWorkOrdersHandler struct {
	repo domain.WorkOrderRepository
	now  func() time.Time
}

// NewListWorkOrdersHandler creates a new list work orders handler
func NewListWorkOrdersHandler(repo domain.WorkOrderRepository) *ListWorkOrdersHandler {
	return &ListWorkOrdersHandler{repo: repo, now: time.Now}
}

// Handle executes the list work orders query
func (h *ListWorkOrdersHandler) Handle(ctx context.Context, query ListWorkOrdersQuery) ([]WorkOrderView, error) {
	limit := query.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	offset := query.Offset
	if offset < 0 {
		offset = 0
	}

	workOrders, err := h.repo.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	now := h.now()
	views := make([]WorkOrderView, 0, len(workOrders))
	for _, workOrder := range workOrders {
		views = append(views, NewWorkOrderView(workOrder, now))
	}
	return views, nil
}
