package domain

import (
	"math"
	"time"
)

// SimulationInput carries everything the feasibility check needs: the request
// figures and a point-in-time product snapshot. Now is the reference date for
// the production window.
type SimulationInput struct {
	RequestedQty   int
	DueDate        time.Time
	OnHand         int
	ProductionRate float64
	Now            time.Time
}

// SimulationResult is the outcome of one feasibility check before persistence
type SimulationResult struct {
	AvailableFromStock      int
	AvailableFromProduction int
	TotalSatisfiable        int
	Shortfall               int
	Classification          string
	EstimatedResolutionDate *time.Time
}

// Simulate computes how much of the requested quantity can be delivered by
// the due date against on-hand stock plus production capacity inside the
// window, and when the remainder would be available.
//
// Invariants: TotalSatisfiable = min(requested, on_hand + producible) and
// Shortfall = requested - TotalSatisfiable >= 0. A due date in the past
// clamps the production window to zero, so only stock counts. Callers reject
// non-positive quantities before calling; the function itself is total over
// valid inputs.
func Simulate(in SimulationInput) SimulationResult {
	availableFromStock := min(in.RequestedQty, in.OnHand)
	remainingAfterStock := in.RequestedQty - availableFromStock

	window := daysBetween(in.Now, in.DueDate)
	if window < 0 {
		window = 0
	}

	// Whole cases only; partial cases do not ship.
	producible := int(in.ProductionRate * float64(window))
	availableFromProduction := min(remainingAfterStock, producible)

	totalSatisfiable := availableFromStock + availableFromProduction
	shortfall := in.RequestedQty - totalSatisfiable

	result := SimulationResult{
		AvailableFromStock:      availableFromStock,
		AvailableFromProduction: availableFromProduction,
		TotalSatisfiable:        totalSatisfiable,
		Shortfall:               shortfall,
	}

	switch {
	case shortfall == 0:
		result.Classification = ClassificationFull
	case totalSatisfiable > 0:
		result.Classification = ClassificationPartial
	default:
		result.Classification = ClassificationNone
	}

	// The shortfall resolves once enough post-due-date production has run.
	// With a zero rate there is no resolution date to promise.
	if shortfall > 0 && in.ProductionRate > 0 {
		extraDays := int(math.Ceil(float64(shortfall) / in.ProductionRate))
		resolution := in.DueDate.AddDate(0, 0, extraDays)
		result.EstimatedResolutionDate = &resolution
	}

	return result
}

// daysBetween counts whole calendar days from a to b, ignoring time of day
func daysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
