//go:build wireinject
// +build wireinject

package request

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/supply-agent/internal/extract"
	"github.com/tair/supply-agent/internal/request/delivery/http"
	"github.com/tair/supply-agent/internal/request/domain"
	"github.com/tair/supply-agent/internal/request/repository"
	"github.com/tair/supply-agent/internal/request/usecase/command"
	"github.com/tair/supply-agent/internal/request/usecase/query"
)

// ProvideRequestRepository provides the request repository
func ProvideRequestRepository(db *gorm.DB) domain.RequestRepository {
	return repository.NewGormRequestRepository(db)
}

// ProvideScenarioRepository provides the scenario repository with tracing
func ProvideScenarioRepository(db *gorm.DB) domain.ScenarioRepository {
	return repository.NewGormScenarioRepositoryWithTracing(db)
}

// ProvideExtractor provides the email field extractor
func ProvideExtractor() extract.Extractor {
	return extract.NewRegexExtractor()
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideRequestRepository,
	ProvideScenarioRepository,
)

var CommandHandlerSet = wire.NewSet(
	command.NewSimulateSupplyRequestHandler,
	command.NewResimulateRequestHandler,
)

var QueryHandlerSet = wire.NewSet(
	query.NewGetRequestHandler,
	query.NewListRequestsHandler,
	query.NewListScenariosHandler,
	query.NewGetScenarioHandler,
	query.NewGetScenarioStatsHandler,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies.
// The product reader comes from the caller so the cache layer can sit in
// front of the catalog.
func InitializeHTTPHandler(db *gorm.DB, products domain.ProductReader) (*http.RequestHandler, error) {
	wire.Build(
		RepositorySet,
		CommandHandlerSet,
		QueryHandlerSet,
		ProvideExtractor,
		http.NewRequestHandlerWithDI,
	)
	return nil, nil
}
