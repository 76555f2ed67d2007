package query

import (
	"context"

	"github.com/atolyetakip/workshop/internal/vehicle/domain"
)

// GetByPlateQuery represents the query to get a vehicle by plate
type GetByPlateQuery struct {
	Plate string
}

// GetByPlateHandler handles get vehicle by plate query
type GetByPlateHandler struct {
	repo domain.VehicleRepository
}

// NewGetByPlateHandler creates a new get by plate handler
func NewGetByPlateHandler(repo domain.VehicleRepository) *GetByPlateHandler {
	return &GetByPlateHandler{repo: repo}
}

// Handle executes the get by plate query. The plate is normalized the
// same way registration normalizes it, so lookups match regardless of
// casing or spacing in the request.
func (h *GetByPlateHandler) Handle(ctx context.Context, query GetByPlateQuery) (*domain.Vehicle, error) {
	plate, err := domain.NormalizePlate(query.Plate)
	if err != nil {
		return nil, err
	}
	return h.repo.FindByPlate(ctx, plate)
}
