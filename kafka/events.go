package kafka

import "time"

// ScenarioSimulatedEvent represents a completed feasibility simulation
type ScenarioSimulatedEvent struct {
	EventID          string     `json:"event_id"`
	EventType        string     `json:"event_type"`
	ScenarioID       string     `json:"scenario_id"`
	RequestID        uint       `json:"request_id"`
	SKU              string     `json:"sku"`
	Requester        string     `json:"requester"`
	RequestedQty     int        `json:"requested_qty"`
	TotalSatisfiable int        `json:"total_satisfiable"`
	Shortfall        int        `json:"shortfall"`
	Classification   string     `json:"classification"`
	ResolutionDate   *time.Time `json:"estimated_resolution_date,omitempty"`
	Timestamp        time.Time  `json:"timestamp"`
}

// Event types
const (
	EventTypeScenarioSimulated = "scenario.simulated"
)

// Kafka topics
const (
	TopicScenarioSimulated = "scenario-simulated"
)
