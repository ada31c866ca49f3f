package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/supply-agent/internal/request/domain"
)

type stubScenarioRepo struct {
	scenarios []domain.Scenario
	counts    map[string]int64
}

func (s *stubScenarioRepo) RecordOutcome(*domain.Request, *domain.Scenario) error { return nil }
func (s *stubScenarioRepo) AppendScenario(*domain.Scenario) error                 { return nil }

func (s *stubScenarioRepo) FindByScenarioID(id string) (*domain.Scenario, error) {
	return nil, domain.ErrNotFound
}

func (s *stubScenarioRepo) FindByRequestID(requestID uint) ([]domain.Scenario, error) {
	var out []domain.Scenario
	for _, sc := range s.scenarios {
		if sc.RequestID == requestID {
			out = append(out, sc)
		}
	}
	return out, nil
}

func (s *stubScenarioRepo) FindAll(limit, offset int) ([]domain.Scenario, error) {
	if offset >= len(s.scenarios) {
		return nil, nil
	}
	end := offset + limit
	if end > len(s.scenarios) {
		end = len(s.scenarios)
	}
	return s.scenarios[offset:end], nil
}

func (s *stubScenarioRepo) CountByClassification() (map[string]int64, error) {
	return s.counts, nil
}

func (s *stubScenarioRepo) SumOpenShortfall() (int64, error) {
	latest := map[uint]domain.Scenario{}
	for _, sc := range s.scenarios {
		latest[sc.RequestID] = sc
	}
	var total int64
	for _, sc := range latest {
		if sc.Shortfall > 0 {
			total += int64(sc.Shortfall)
		}
	}
	return total, nil
}

type stubRequestRepo struct {
	requests map[uint]*domain.Request
}

func (s *stubRequestRepo) FindByID(id uint) (*domain.Request, error) {
	r, ok := s.requests[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return r, nil
}

func (s *stubRequestRepo) FindByIDWithScenarios(id uint) (*domain.Request, error) {
	return s.FindByID(id)
}

func (s *stubRequestRepo) FindAll(limit, offset int) ([]domain.Request, error) {
	var out []domain.Request
	for _, r := range s.requests {
		out = append(out, *r)
	}
	return out, nil
}

func TestGetScenarioStats(t *testing.T) {
	h := NewGetScenarioStatsHandler(&stubScenarioRepo{
		counts: map[string]int64{
			domain.ClassificationFull:    3,
			domain.ClassificationPartial: 2,
			domain.ClassificationNone:    1,
		},
		scenarios: []domain.Scenario{
			{ScenarioID: "SCN-aaa", RequestID: 1, Classification: domain.ClassificationPartial, Shortfall: 7000},
			{ScenarioID: "SCN-bbb", RequestID: 2, Classification: domain.ClassificationFull, Shortfall: 0},
			{ScenarioID: "SCN-ccc", RequestID: 3, Classification: domain.ClassificationNone, Shortfall: 500},
		},
	})

	stats, err := h.Handle()
	require.NoError(t, err)
	assert.Equal(t, int64(6), stats.Total)
	assert.Equal(t, int64(3), stats.Full)
	assert.Equal(t, int64(2), stats.Partial)
	assert.Equal(t, int64(1), stats.None)
	assert.Equal(t, int64(7500), stats.OpenShortfall)
}

func TestGetScenarioStats_ResimulationClearsShortfall(t *testing.T) {
	// request 1 was partial, then a later run satisfied it in full; only the
	// latest scenario counts toward the open shortfall
	h := NewGetScenarioStatsHandler(&stubScenarioRepo{
		counts: map[string]int64{
			domain.ClassificationFull:    1,
			domain.ClassificationPartial: 1,
		},
		scenarios: []domain.Scenario{
			{ScenarioID: "SCN-aaa", RequestID: 1, Classification: domain.ClassificationPartial, Shortfall: 7000},
			{ScenarioID: "SCN-bbb", RequestID: 1, Classification: domain.ClassificationFull, Shortfall: 0},
		},
	})

	stats, err := h.Handle()
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.OpenShortfall)
}

func TestGetScenarioStats_Empty(t *testing.T) {
	h := NewGetScenarioStatsHandler(&stubScenarioRepo{counts: map[string]int64{}})

	stats, err := h.Handle()
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Total)
}

func TestListScenarios_FilterByRequest(t *testing.T) {
	repo := &stubScenarioRepo{scenarios: []domain.Scenario{
		{ScenarioID: "SCN-aaa", RequestID: 1, Classification: domain.ClassificationFull},
		{ScenarioID: "SCN-bbb", RequestID: 2, Classification: domain.ClassificationNone},
		{ScenarioID: "SCN-ccc", RequestID: 1, Classification: domain.ClassificationPartial},
	}}
	h := NewListScenariosHandler(repo)

	scenarios, err := h.Handle(ListScenariosQuery{RequestID: 1})
	require.NoError(t, err)
	require.Len(t, scenarios, 2)
	for _, s := range scenarios {
		assert.Equal(t, uint(1), s.RequestID)
	}
}

func TestListScenarios_LimitDefaults(t *testing.T) {
	var scenarios []domain.Scenario
	for i := 0; i < 25; i++ {
		scenarios = append(scenarios, domain.Scenario{RequestID: uint(i + 1)})
	}
	h := NewListScenariosHandler(&stubScenarioRepo{scenarios: scenarios})

	got, err := h.Handle(ListScenariosQuery{})
	require.NoError(t, err)
	assert.Len(t, got, 10)

	got, err = h.Handle(ListScenariosQuery{Limit: 500})
	require.NoError(t, err)
	assert.Len(t, got, 25)
}

func TestGetRequest(t *testing.T) {
	due := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)
	h := NewGetRequestHandler(&stubRequestRepo{requests: map[uint]*domain.Request{
		5: {ID: 5, SKU: "COLA_330ML_CASE24", RequestedQty: 12000, DueDate: due, Requester: "Rotterdam DC"},
	}})

	request, err := h.Handle(GetRequestQuery{RequestID: 5})
	require.NoError(t, err)
	assert.Equal(t, "COLA_330ML_CASE24", request.SKU)

	_, err = h.Handle(GetRequestQuery{RequestID: 99})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = h.Handle(GetRequestQuery{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
