package command

import (
	"context"
	"strings"

	"github.com/atolyetakip/workshop/internal/vehicle/domain"
	"github.com/atolyetakip/workshop/pkg/apperr"
)

// RegisterVehicleCommand represents the command to register a vehicle at reception
type RegisterVehicleCommand struct {
	Plate string
	Brand string
	Model string
}

// RegisterVehicleHandler handles vehicle registration
type RegisterVehicleHandler struct {
	repo domain.VehicleRepository
}

// NewRegisterVehicleHandler creates a new register vehicle handler
func NewRegisterVehicleHandler(repo domain.VehicleRepository) *RegisterVehicleHandler {
	return &RegisterVehicleHandler{repo: repo}
}

// Handle executes the register vehicle command
func (h *RegisterVehicleHandler) Handle(ctx context.Context, cmd RegisterVehicleCommand) (*domain.Vehicle, error) {
	plate, err := domain.NormalizePlate(cmd.Plate)
	if err != nil {
		return nil, err
	}

	brand := strings.TrimSpace(cmd.Brand)
	model := strings.TrimSpace(cmd.Model)
	if brand == "" || model == "" {
		return nil, apperr.Newf(apperr.InvalidInput, "brand and model are required")
	}

	vehicle := &domain.Vehicle{
		Plate:  plate,
		Brand:  brand,
		Model:  model,
		Status: domain.StatusActive,
	}

	if err := h.repo.Create(ctx, vehicle); err != nil {
		return nil, err
	}

	return vehicle, nil
}
