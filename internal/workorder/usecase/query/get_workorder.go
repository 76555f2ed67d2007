package query

import (
	"context"
	"time"

	"github.com/atolyetakip/workshop/internal/workorder/domain"
	"github.com/atolyetakip/workshop/pkg/apperr"
)

// WorkOrderView is the read projection the presentation layer renders.
// ElapsedSeconds is computed server-side from stored timestamps; clients
// only interpolate between polls and resynchronize on every response.
type WorkOrderView struct {
	domain.WorkOrder
	ElapsedSeconds int64 `json:"elapsed_seconds"`
}

// NewWorkOrderView builds the projection at the given instant.
func NewWorkOrderView(workOrder domain.WorkOrder, now time.Time) WorkOrderView {
	return WorkOrderView{
		WorkOrder:      workOrder,
		ElapsedSeconds: workOrder.ElapsedSeconds(now),
	}
}

// GetWorkOrderQuery represents the query to get a work order by ID
type GetWorkOrderQuery struct {
	ID uint
}

// GetWorkOrderHandler handles get work order query. This single-entity
// read is the authoritative path; the list projection is a convenience.
type GetWorkOrderHandler struct {
	repo domain.WorkOrderRepository
	now  func() time.Time
}

// NewGetWorkOrderHandler creates a new get work order handler
func NewGetWorkOrderHandler(repo domain.WorkOrderRepository) *GetWorkOrderHandler {
	return &GetWorkOrderHandler{repo: repo, now: time.Now}
}

// Handle executes the get work order query
func (h *GetWorkOrderHandler) Handle(ctx context.Context, query GetWorkOrderQuery) (*WorkOrderView, error) {
	if query.ID == 0 {
		return nil, apperr.Newf(apperr.InvalidInput, "invalid work order id")
	}

	workOrder, err := h.repo.FindByID(ctx, query.ID)
	if err != nil {
		return nil, err
	}

	view := NewWorkOrderView(*workOrder, h.now())
	return &view, nil
}
