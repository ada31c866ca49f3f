package domain

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a product or request cannot be located
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned when request fields fail validation
	ErrInvalidInput = errors.New("invalid input")
)

// Request represents one inbound DC supply request after upstream extraction.
// A request is created once per inbound email and never mutated; repeated
// simulations append Scenario rows against it.
type Request struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	SKU          string     `json:"sku" gorm:"not null;index"`
	RequestedQty int        `json:"requested_qty" gorm:"not null"`
	DueDate      time.Time  `json:"due_date" gorm:"not null"`
	Requester    string     `json:"requester" gorm:"not null"` // DC name
	CreatedAt    time.Time  `json:"created_at"`
	Scenarios    []Scenario `json:"scenarios,omitempty" gorm:"foreignKey:RequestID"`
}

// TableName specifies the table name
func (Request) TableName() string {
	return "requests"
}

// Scenario is one feasibility-simulation outcome for a Request. Rows are
// append-only: a re-simulation writes a new row, history is never overwritten.
type Scenario struct {
	ID                      uint       `json:"id" gorm:"primaryKey"`
	ScenarioID              string     `json:"scenario_id" gorm:"not null;uniqueIndex"`
	RequestID               uint       `json:"request_id" gorm:"not null;index"`
	AvailableFromStock      int        `json:"available_from_stock" gorm:"not null"`
	AvailableFromProduction int        `json:"available_from_production" gorm:"not null"`
	TotalSatisfiable        int        `json:"total_satisfiable" gorm:"not null"`
	Shortfall               int        `json:"shortfall" gorm:"not null"`
	Classification          string     `json:"classification" gorm:"not null;index"`
	EstimatedResolutionDate *time.Time `json:"estimated_resolution_date"`
	ReplyText               string     `json:"reply_text" gorm:"type:text"`
	CreatedAt               time.Time  `json:"created_at"`
}

// TableName specifies the table name
func (Scenario) TableName() string {
	return "scenarios"
}

// Feasibility classifications
const (
	ClassificationFull    = "full"
	ClassificationPartial = "partial"
	ClassificationNone    = "none"
)

// RequestRepository defines the contract for request data access
type RequestRepository interface {
	FindByID(id uint) (*Request, error)
	FindByIDWithScenarios(id uint) (*Request, error)
	FindAll(limit, offset int) ([]Request, error)
}

// ScenarioRepository defines the contract for recording and reading
// simulation outcomes. RecordOutcome persists the request (when new) and the
// scenario in one transaction so a failure leaves no partial rows behind.
type ScenarioRepository interface {
	RecordOutcome(request *Request, scenario *Scenario) error
	AppendScenario(scenario *Scenario) error
	FindByScenarioID(scenarioID string) (*Scenario, error)
	FindByRequestID(requestID uint) ([]Scenario, error)
	FindAll(limit, offset int) ([]Scenario, error)
	CountByClassification() (map[string]int64, error)
	SumOpenShortfall() (int64, error)
}

// ProductSnapshot is the read-only view of a product the simulator consumes
type ProductSnapshot struct {
	SKU            string  `json:"sku"`
	Name           string  `json:"name"`
	OnHand         int     `json:"on_hand"`
	ProductionRate float64 `json:"production_rate"` // cases per day
}

// ProductReader provides product snapshots by SKU. Implementations map a
// missing SKU to ErrNotFound.
type ProductReader interface {
	SnapshotBySKU(ctx context.Context, sku string) (*ProductSnapshot, error)
}
