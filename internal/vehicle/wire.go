//go:build wireinject
// +build wireinject

package vehicle

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/atolyetakip/workshop/internal/vehicle/delivery/http"
	"github.com/atolyetakip/workshop/internal/vehicle/domain"
	"github.com/atolyetakip/workshop/internal/vehicle/repository"
	"github.com/atolyetakip/workshop/internal/vehicle/usecase/command"
	"github.com/atolyetakip/workshop/internal/vehicle/usecase/query"
)

// ProvideVehicleRepository provides the vehicle repository
func ProvideVehicleRepository(db *gorm.DB) domain.VehicleRepository {
	return repository.NewGormVehicleRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideVehicleRepository,
)

var UsecaseSet = wire.NewSet(
	command.NewRegisterVehicleHandler,
	query.NewGetVehicleHandler,
	query.NewGetByPlateHandler,
	query.NewListVehiclesHandler,
)

// InitializeHTTPHandler initializes the vehicle HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.VehicleHandler, error) {
	wire.Build(
		RepositorySet,
		UsecaseSet,
		http.NewVehicleHandler,
	)
	return nil, nil
}
