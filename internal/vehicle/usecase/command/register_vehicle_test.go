package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atolyetakip/workshop/internal/vehicle/domain"
	"github.com/atolyetakip/workshop/pkg/apperr"
)

type fakeVehicleRepo struct {
	domain.VehicleRepository
	byPlate map[string]*domain.Vehicle
	nextID  uint
}

func (f *fakeVehicleRepo) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	if _, ok := f.byPlate[vehicle.Plate]; ok {
		return apperr.Newf(apperr.Duplicate, "plate %s already registered", vehicle.Plate)
	}
	f.nextID++
	vehicle.ID = f.nextID
	f.byPlate[vehicle.Plate] = vehicle
	return nil
}

func TestRegisterVehicle(t *testing.T) {
	repo := &fakeVehicleRepo{byPlate: make(map[string]*domain.Vehicle)}
	handler := NewRegisterVehicleHandler(repo)

	vehicle, err := handler.Handle(context.Background(), RegisterVehicleCommand{
		Plate: " 34 abc 123 ",
		Brand: "Renault",
		Model: "Clio",
	})
	require.NoError(t, err)
	assert.Equal(t, "34ABC123", vehicle.Plate)
	assert.Equal(t, domain.StatusActive, vehicle.Status)
	assert.NotZero(t, vehicle.ID)
}

func TestRegisterVehicleValidation(t *testing.T) {
	repo := &fakeVehicleRepo{byPlate: make(map[string]*domain.Vehicle)}
	handler := NewRegisterVehicleHandler(repo)

	_, err := handler.Handle(context.Background(), RegisterVehicleCommand{
		Plate: "nope",
		Brand: "Renault",
		Model: "Clio",
	})
	assert.Equal(t, apperr.InvalidInput, apperr.KindOf(err))

	_, err = handler.Handle(context.Background(), RegisterVehicleCommand{
		Plate: "34ABC123",
		Brand: "  ",
		Model: "Clio",
	})
	assert.Equal(t, apperr.InvalidInput, apperr.KindOf(err))
}

func TestRegisterVehicleDuplicatePlate(t *testing.T) {
	repo := &fakeVehicleRepo{byPlate: make(map[string]*domain.Vehicle)}
	handler := NewRegisterVehicleHandler(repo)

	_, err := handler.Handle(context.Background(), RegisterVehicleCommand{
		Plate: "34ABC123",
		Brand: "Renault",
		Model: "Clio",
	})
	require.NoError(t, err)

	_, err = handler.Handle(context.Background(), RegisterVehicleCommand{
		Plate: "34 ABC 123",
		Brand: "Renault",
		Model: "Clio",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.Duplicate, apperr.KindOf(err))
}
