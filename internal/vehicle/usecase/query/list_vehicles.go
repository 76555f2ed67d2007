package query

import (
	"context"

	"github.com/atolyetakip/workshop/internal/vehicle/domain"
)

// ListVehiclesQuery represents the query to list vehicles
type ListVehiclesQuery struct {
	Limit  int
	Offset int
}

// ListVehiclesHandler handles list vehicles query
type ListVehiclesHandler struct {
	repo domain.VehicleRepository
}

// NewListVehiclesHandler creates a new list vehicles handler
func NewListVehiclesHandler(repo domain.VehicleRepository) *ListVehiclesHandler {
	return &ListVehiclesHandler{repo: repo}
}

// Handle executes the list vehicles query
func (h *ListVehiclesHandler) Handle(ctx context.Context, query ListVehiclesQuery) ([]domain.Vehicle, error) {
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
