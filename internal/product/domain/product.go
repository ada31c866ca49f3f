package domain

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrProductNotFound is returned when no product matches the lookup
var ErrProductNotFound = errors.New("product not found")

// Product represents one SKU in the catalog together with the inventory
// figures the feasibility simulator reads: current on-hand cases and the
// production rate in cases per day. Both are mutated only through catalog
// operations, never by a simulation run.
type Product struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	SKU            string         `json:"sku" gorm:"not null;uniqueIndex"`
	Name           string         `json:"name" gorm:"not null"`
	Description    string         `json:"description"`
	OnHand         int            `json:"on_hand" gorm:"not null;default:0"`
	ProductionRate float64        `json:"production_rate" gorm:"not null;default:0"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// CatalogStats aggregates the catalog for the dashboard header
type CatalogStats struct {
	TotalProducts    int64   `json:"total_products"`
	TotalOnHandCases int64   `json:"total_on_hand_cases"`
	TotalDailyRate   float64 `json:"total_daily_rate"`
}

// ProductRepository defines the contract for catalog data access
type ProductRepository interface {
	Create(product *Product) error
	FindByID(id uint) (*Product, error)
	FindBySKU(sku string) (*Product, error)
	FindAll(limit, offset int) ([]Product, error)
	Update(product *Product) error
	UpdateOnHand(id uint, onHand int) error
	UpdateProductionRate(id uint, rate float64) error
	Count() (int64, error)
	Stats() (*CatalogStats, error)
}
