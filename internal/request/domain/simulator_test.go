package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSimulate_FullFromStockAndProduction(t *testing.T) {
	now := date(2026, time.March, 2)
	result := Simulate(SimulationInput{
		RequestedQty:   8000,
		DueDate:        date(2026, time.March, 5), // 3 days out
		OnHand:         5000,
		ProductionRate: 1000,
		Now:            now,
	})

	assert.Equal(t, 5000, result.AvailableFromStock)
	assert.Equal(t, 3000, result.AvailableFromProduction)
	assert.Equal(t, 8000, result.TotalSatisfiable)
	assert.Equal(t, 0, result.Shortfall)
	assert.Equal(t, ClassificationFull, result.Classification)
	assert.Nil(t, result.EstimatedResolutionDate)
}

func TestSimulate_PartialWithResolutionDate(t *testing.T) {
	now := date(2026, time.March, 2)
	due := date(2026, time.March, 4) // 2 days out
	result := Simulate(SimulationInput{
		RequestedQty:   12000,
		DueDate:        due,
		OnHand:         4000,
		ProductionRate: 500,
		Now:            now,
	})

	assert.Equal(t, 4000, result.AvailableFromStock)
	assert.Equal(t, 1000, result.AvailableFromProduction)
	assert.Equal(t, 5000, result.TotalSatisfiable)
	assert.Equal(t, 7000, result.Shortfall)
	assert.Equal(t, ClassificationPartial, result.Classification)

	// 7000 short at 500/day resolves 14 days after the due date
	require.NotNil(t, result.EstimatedResolutionDate)
	assert.Equal(t, due.AddDate(0, 0, 14), *result.EstimatedResolutionDate)
}

func TestSimulate_NoStockNoRate(t *testing.T) {
	result := Simulate(SimulationInput{
		RequestedQty:   100,
		DueDate:        date(2026, time.March, 10),
		OnHand:         0,
		ProductionRate: 0,
		Now:            date(2026, time.March, 2),
	})

	assert.Equal(t, 0, result.TotalSatisfiable)
	assert.Equal(t, 100, result.Shortfall)
	assert.Equal(t, ClassificationNone, result.Classification)
	assert.Nil(t, result.EstimatedResolutionDate, "zero rate has no resolution date")
}

func TestSimulate_PastDueDateCountsOnlyStock(t *testing.T) {
	result := Simulate(SimulationInput{
		RequestedQty:   100,
		DueDate:        date(2026, time.February, 20),
		OnHand:         60,
		ProductionRate: 1000,
		Now:            date(2026, time.March, 2),
	})

	assert.Equal(t, 60, result.AvailableFromStock)
	assert.Equal(t, 0, result.AvailableFromProduction)
	assert.Equal(t, 60, result.TotalSatisfiable)
	assert.Equal(t, 40, result.Shortfall)
	assert.Equal(t, ClassificationPartial, result.Classification)
}

func TestSimulate_DueTodayHasZeroWindow(t *testing.T) {
	today := date(2026, time.March, 2)
	result := Simulate(SimulationInput{
		RequestedQty:   500,
		DueDate:        today,
		OnHand:         200,
		ProductionRate: 10000,
		Now:            today,
	})

	assert.Equal(t, 0, result.AvailableFromProduction)
	assert.Equal(t, 200, result.TotalSatisfiable)
}

func TestSimulate_StockCoversRequestRegardlessOfWindow(t *testing.T) {
	for _, daysOut := range []int{0, 1, 30, 365} {
		result := Simulate(SimulationInput{
			RequestedQty:   100,
			DueDate:        date(2026, time.March, 2).AddDate(0, 0, daysOut),
			OnHand:         100,
			ProductionRate: 5,
			Now:            date(2026, time.March, 2),
		})
		assert.Equal(t, ClassificationFull, result.Classification)
		assert.Equal(t, 100, result.AvailableFromStock)
		assert.Equal(t, 0, result.AvailableFromProduction)
	}
}

func TestSimulate_FractionalProductionFloorsToWholeCases(t *testing.T) {
	result := Simulate(SimulationInput{
		RequestedQty:   10,
		DueDate:        date(2026, time.March, 5), // 3 days out
		OnHand:         0,
		ProductionRate: 2.5,
		Now:            date(2026, time.March, 2),
	})

	// 2.5 * 3 = 7.5 cases producible, only 7 whole cases ship
	assert.Equal(t, 7, result.AvailableFromProduction)
	assert.Equal(t, 3, result.Shortfall)
}

func TestSimulate_Invariants(t *testing.T) {
	now := date(2026, time.March, 2)
	cases := []SimulationInput{
		{RequestedQty: 1, OnHand: 0, ProductionRate: 0, DueDate: now},
		{RequestedQty: 500, OnHand: 20, ProductionRate: 3, DueDate: now.AddDate(0, 0, 7)},
		{RequestedQty: 10000, OnHand: 9999, ProductionRate: 0.5, DueDate: now.AddDate(0, 0, 1)},
		{RequestedQty: 7, OnHand: 100, ProductionRate: 100, DueDate: now.AddDate(0, 0, -5)},
	}

	for _, in := range cases {
		in.Now = now
		result := Simulate(in)

		assert.GreaterOrEqual(t, result.TotalSatisfiable, 0)
		assert.LessOrEqual(t, result.TotalSatisfiable, in.RequestedQty)
		assert.Equal(t, in.RequestedQty-result.TotalSatisfiable, result.Shortfall)
		assert.GreaterOrEqual(t, result.Shortfall, 0)
		assert.Equal(t, result.AvailableFromStock+result.AvailableFromProduction, result.TotalSatisfiable)
	}
}

func TestSimulate_Deterministic(t *testing.T) {
	in := SimulationInput{
		RequestedQty:   12000,
		DueDate:        date(2026, time.March, 4),
		OnHand:         4000,
		ProductionRate: 500,
		Now:            date(2026, time.March, 2),
	}

	first := Simulate(in)
	second := Simulate(in)
	assert.Equal(t, first, second)
}
