package command

import (
	"context"
	"strings"

	vehicledomain "github.com/atolyetakip/workshop/internal/vehicle/domain"
	"github.com/atolyetakip/workshop/internal/workorder/domain"
	"github.com/atolyetakip/workshop/pkg/apperr"
)

// CreateWorkOrderCommand represents the command to open a work order.
// The vehicle is identified by plate, as reception hands jobs over.
type CreateWorkOrderCommand struct {
	VehiclePlate string
	Description  string
	TechnicianID *uint
}

// CreateWorkOrderHandler handles create work order command
type CreateWorkOrderHandler struct {
	repo domain.WorkOrderRepository
}

// NewCreateWorkOrderHandler creates a new create work order handler
func NewCreateWorkOrderHandler(repo domain.WorkOrderRepository) *CreateWorkOrderHandler {
	return &CreateWorkOrderHandler{repo: repo}
}

// Handle executes the create work order command
func (h *CreateWorkOrderHandler) Handle(ctx context.Context, cmd CreateWorkOrderCommand) (*domain.WorkOrder, error) {
	plate, err := vehicledomain.NormalizePlate(cmd.VehiclePlate)
	if err != nil {
		return nil, err
	}

	description := strings.TrimSpace(cmd.Description)
	if description == "" {
		return nil, apperr.Newf(apperr.InvalidInput, "description is required")
	}

	workOrder := &domain.WorkOrder{
		Description:  description,
		TechnicianID: cmd.TechnicianID,
		Status:       domain.StatusPending,
	}

	if err := h.repo.Create(ctx, workOrder, plate); err != nil {
		return nil, err
	}

	return workOrder, nil
}
