package query

import (
	"context"

	"github.com/atolyetakip/workshop/internal/workorder/domain"
)

// Stats summarizes work orders by status for the dashboard
type Stats struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	Completed  int64 `json:"completed"`
}

// GetStatsHandler handles the stats query
type GetStatsHandler struct {
	repo domain.WorkOrderRepository
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(repo domain.WorkOrderRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle executes the stats query
func (h *GetStatsHandler) Handle(ctx context.Context) (*Stats, error) {
	counts, err := h.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		Pending:    counts[domain.StatusPending],
		InProgress: counts[domain.StatusInProgress],
		Completed:  counts[domain.StatusCompleted],
	}
	stats.Total = stats.Pending + stats.InProgress + stats.Completed
	return stats, nil
}
