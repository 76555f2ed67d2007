//go:build wireinject
// +build wireinject

package inventory

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/atolyetakip/workshop/internal/inventory/delivery/http"
	"github.com/atolyetakip/workshop/internal/inventory/domain"
	"github.com/atolyetakip/workshop/internal/inventory/repository"
	"github.com/atolyetakip/workshop/internal/inventory/usecase/command"
	"github.com/atolyetakip/workshop/internal/inventory/usecase/query"
)

// ProvideItemRepository provides the inventory repository
func ProvideItemRepository(db *gorm.DB) domain.ItemRepository {
	return repository.NewGormItemRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideItemRepository,
)

var UsecaseSet = wire.NewSet(
	command.NewCreateItemHandler,
	command.NewAdjustStockHandler,
	query.NewGetItemHandler,
	query.NewListItemsHandler,
	query.NewLowStockHandler,
)

// InitializeHTTPHandler initializes the inventory HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.InventoryHandler, error) {
	wire.Build(
		RepositorySet,
		UsecaseSet,
		http.NewInventoryHandler,
	)
	return nil, nil
}
