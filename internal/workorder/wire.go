//go:build wireinject
// +build wireinject

package workorder

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/atolyetakip/workshop/internal/workorder/delivery/http"
	"github.com/atolyetakip/workshop/internal/workorder/domain"
	"github.com/atolyetakip/workshop/internal/workorder/repository"
	"github.com/atolyetakip/workshop/internal/workorder/usecase/command"
	"github.com/atolyetakip/workshop/internal/workorder/usecase/query"
	"github.com/atolyetakip/workshop/kafka"
)

// ProvideWorkOrderRepository provides the work order repository with tracing
func ProvideWorkOrderRepository(db *gorm.DB) domain.WorkOrderRepository {
	return repository.NewGormWorkOrderRepositoryWithTracing(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideWorkOrderRepository,
)

var UsecaseSet = wire.NewSet(
	command.NewCreateWorkOrderHandler,
	command.NewStartWorkOrderHandler,
	command.NewStopWorkOrderHandler,
	command.NewCompleteWorkOrderHandler,
	command.NewAddPartHandler,
	query.NewGetWorkOrderHandler,
	query.NewListWorkOrdersHandler,
	query.NewGetStatsHandler,
)

// InitializeHTTPHandler initializes the work order HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, publisher *kafka.Publisher) (*http.WorkOrderHandler, error) {
	wire.Build(
		RepositorySet,
		UsecaseSet,
		http.NewWorkOrderHandler,
	)
	return nil, nil
}
