//go:build wireinject
// +build wireinject

package product

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/supply-agent/internal/product/delivery/http"
	"github.com/tair/supply-agent/internal/product/domain"
	"github.com/tair/supply-agent/internal/product/repository"
	"github.com/tair/supply-agent/internal/product/usecase/command"
	"github.com/tair/supply-agent/internal/product/usecase/query"
)

// ProvideProductRepository provides the catalog repository with tracing
func ProvideProductRepository(db *gorm.DB) domain.ProductRepository {
	return repository.NewGormProductRepositoryWithTracing(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideProductRepository,
)

var CommandHandlerSet = wire.NewSet(
	command.NewCreateProductHandler,
	command.NewReceiveStockHandler,
	command.NewSetProductionRateHandler,
)

var QueryHandlerSet = wire.NewSet(
	query.NewGetProductHandler,
	query.NewGetProductBySKUHandler,
	query.NewListProductsHandler,
	query.NewGetCatalogStatsHandler,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.ProductHandler, error) {
	wire.Build(
		RepositorySet,
		CommandHandlerSet,
		QueryHandlerSet,
		http.NewProductHandlerWithDI,
	)
	return nil, nil
}
