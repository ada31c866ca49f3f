package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tair/supply-agent/internal/request/domain"
)

var tracer = otel.Tracer("request-repository")

// GormScenarioRepositoryWithTracing wraps GormScenarioRepository with tracing
type GormScenarioRepositoryWithTracing struct {
	*GormScenarioRepository
}

// NewGormScenarioRepositoryWithTracing creates a new repository with tracing
func NewGormScenarioRepositoryWithTracing(db *gorm.DB) *GormScenarioRepositoryWithTracing {
	return &GormScenarioRepositoryWithTracing{
		GormScenarioRepository: NewGormScenarioRepository(db),
	}
}

// RecordOutcomeWithContext traces the transactional request+scenario write
func (r *GormScenarioRepositoryWithTracing) RecordOutcomeWithContext(ctx context.Context, request *domain.Request, scenario *domain.Scenario) error {
	_, span := tracer.Start(ctx, "repository.RecordOutcome",
		trace.WithAttributes(
			attribute.String("request.sku", request.SKU),
			attribute.Int("request.requested_qty", request.RequestedQty),
			attribute.String("scenario.classification", scenario.Classification),
			attribute.Int("scenario.shortfall", scenario.Shortfall),
		),
	)
	defer span.End()

	err := r.GormScenarioRepository.RecordOutcome(request, scenario)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(
		attribute.Int("request.id", int(request.ID)),
		attribute.String("scenario.id", scenario.ScenarioID),
	)
	return nil
}

// AppendScenarioWithContext traces re-simulation appends
func (r *GormScenarioRepositoryWithTracing) AppendScenarioWithContext(ctx context.Context, scenario *domain.Scenario) error {
	_, span := tracer.Start(ctx, "repository.AppendScenario",
		trace.WithAttributes(
			attribute.Int("request.id", int(scenario.RequestID)),
			attribute.String("scenario.classification", scenario.Classification),
		),
	)
	defer span.End()

	err := r.GormScenarioRepository.AppendScenario(scenario)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.String("scenario.id", scenario.ScenarioID))
	return nil
}

// FindAllWithContext traces dashboard feed reads
func (r *GormScenarioRepositoryWithTracing) FindAllWithContext(ctx context.Context, limit, offset int) ([]domain.Scenario, error) {
	_, span := tracer.Start(ctx, "repository.FindAllScenarios",
		trace.WithAttributes(
			attribute.Int("query.limit", limit),
			attribute.Int("query.offset", offset),
		),
	)
	defer span.End()

	scenarios, err := r.GormScenarioRepository.FindAll(limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(scenarios)))
	return scenarios, nil
}
