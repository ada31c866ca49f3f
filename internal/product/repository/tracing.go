package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tair/supply-agent/internal/product/domain"
)

var tracer = otel.Tracer("product-repository")

// GormProductRepositoryWithTracing wraps GormProductRepository with tracing
type GormProductRepositoryWithTracing struct {
	*GormProductRepository
}

// NewGormProductRepositoryWithTracing creates a new repository with tracing
func NewGormProductRepositoryWithTracing(db *gorm.DB) *GormProductRepositoryWithTracing {
	return &GormProductRepositoryWithTracing{
		GormProductRepository: NewGormProductRepository(db),
	}
}

// FindBySKUWithContext traces the catalog read the simulator depends on
func (r *GormProductRepositoryWithTracing) FindBySKUWithContext(ctx context.Context, sku string) (*domain.Product, error) {
	_, span := tracer.Start(ctx, "repository.FindBySKU",
		trace.WithAttributes(
			attribute.String("product.sku", sku),
		),
	)
	defer span.End()

	product, err := r.GormProductRepository.FindBySKU(sku)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("product.on_hand", product.OnHand),
		attribute.Float64("product.production_rate", product.ProductionRate),
	)
	return product, nil
}

// CreateWithContext traces catalog inserts
func (r *GormProductRepositoryWithTracing) CreateWithContext(ctx context.Context, product *domain.Product) error {
	_, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("product.sku", product.SKU),
			attribute.Int("product.on_hand", product.OnHand),
		),
	)
	defer span.End()

	err := r.GormProductRepository.Create(product)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("product.id", int(product.ID)))
	return nil
}

// UpdateOnHandWithContext traces stock adjustments
func (r *GormProductRepositoryWithTracing) UpdateOnHandWithContext(ctx context.Context, id uint, onHand int) error {
	_, span := tracer.Start(ctx, "repository.UpdateOnHand",
		trace.WithAttributes(
			attribute.Int("product.id", int(id)),
			attribute.Int("product.on_hand", onHand),
		),
	)
	defer span.End()

	err := r.GormProductRepository.UpdateOnHand(id, onHand)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
