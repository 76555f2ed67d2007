package query

import (
	"context"

	"github.com/atolyetakip/workshop/internal/vehicle/domain"
	"github.com/atolyetakip/workshop/pkg/apperr"
)

// GetVehicleQuery represents the query to get a vehicle by ID
type GetVehicleQuery struct {
	ID uint
}

// GetVehicleHandler handles get vehicle query
type GetVehicleHandler struct {
	repo domain.VehicleRepository
}

// NewGetVehicleHandler creates a new get vehicle handler
func NewGetVehicleHandler(repo domain.VehicleRepository) *GetVehicleHandler {
	return &GetVehicleHandler{repo: repo}
}

// Handle executes the get vehicle query
func (h *GetVehicleHandler) Handle(ctx context.Context, query GetVehicleQuery) (*domain.Vehicle, error) {
	if query.ID == 0 {
		return nil, apperr.Newf(apperr.InvalidInput, "invalid vehicle id")
	}
	return h.repo.FindByID(ctx, query.ID)
}
