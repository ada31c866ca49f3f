package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tair/supply-agent/internal/product/domain"
)

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Product{})
}

func (r *GormProductRepository) Create(product *domain.Product) error {
	return r.db.Create(product).Error
}

func (r *GormProductRepository) FindByID(id uint) (*domain.Product, error) {
	var product domain.Product
	err := r.db.First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindBySKU(sku string) (*domain.Product, error) {
	var product domain.Product
	err := r.db.Where("sku = ?", sku).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindAll(limit, offset int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Limit(limit).Offset(offset).Order("sku").Find(&products).Error
	return products, err
}

func (r *GormProductRepository) Update(product *domain.Product) error {
	return r.db.Save(product).Error
}

func (r *GormProductRepository) UpdateOnHand(id uint, onHand int) error {
	res := r.db.Model(&domain.Product{}).
		Where("id = ?", id).
		Update("on_hand", onHand)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *GormProductRepository) UpdateProductionRate(id uint, rate float64) error {
	res := r.db.Model(&domain.Product{}).
		Where("id = ?", id).
		Update("production_rate", rate)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *GormProductRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Product{}).Count(&count).Error
	return count, err
}

func (r *GormProductRepository) Stats() (*domain.CatalogStats, error) {
	var stats domain.CatalogStats
	err := r.db.Model(&domain.Product{}).
		Select("count(*) as total_products, coalesce(sum(on_hand), 0) as total_on_hand_cases, coalesce(sum(production_rate), 0) as total_daily_rate").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
