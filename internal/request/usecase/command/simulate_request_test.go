package command

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/supply-agent/internal/request/domain"
)

type fakeProductReader struct {
	snapshots map[string]*domain.ProductSnapshot
}

func (f *fakeProductReader) SnapshotBySKU(_ context.Context, sku string) (*domain.ProductSnapshot, error) {
	s, ok := f.snapshots[sku]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

type fakeScenarioRepo struct {
	requests  []*domain.Request
	scenarios []*domain.Scenario
	failWrite error
	nextID    uint
}

func (f *fakeScenarioRepo) RecordOutcome(request *domain.Request, scenario *domain.Scenario) error {
	if f.failWrite != nil {
		return f.failWrite
	}
	f.nextID++
	request.ID = f.nextID
	scenario.RequestID = request.ID
	f.requests = append(f.requests, request)
	f.scenarios = append(f.scenarios, scenario)
	return nil
}

func (f *fakeScenarioRepo) AppendScenario(scenario *domain.Scenario) error {
	if f.failWrite != nil {
		return f.failWrite
	}
	f.scenarios = append(f.scenarios, scenario)
	return nil
}

func (f *fakeScenarioRepo) FindByScenarioID(id string) (*domain.Scenario, error) {
	for _, s := range f.scenarios {
		if s.ScenarioID == id {
			return s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeScenarioRepo) FindByRequestID(requestID uint) ([]domain.Scenario, error) {
	var out []domain.Scenario
	for _, s := range f.scenarios {
		if s.RequestID == requestID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeScenarioRepo) FindAll(limit, offset int) ([]domain.Scenario, error) {
	var out []domain.Scenario
	for _, s := range f.scenarios {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeScenarioRepo) CountByClassification() (map[string]int64, error) {
	counts := map[string]int64{}
	for _, s := range f.scenarios {
		counts[s.Classification]++
	}
	return counts, nil
}

func (f *fakeScenarioRepo) SumOpenShortfall() (int64, error) {
	latest := map[uint]*domain.Scenario{}
	for _, s := range f.scenarios {
		latest[s.RequestID] = s
	}
	var total int64
	for _, s := range latest {
		if s.Shortfall > 0 {
			total += int64(s.Shortfall)
		}
	}
	return total, nil
}

type fakeRequestRepo struct {
	requests map[uint]*domain.Request
}

func (f *fakeRequestRepo) FindByID(id uint) (*domain.Request, error) {
	r, ok := f.requests[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return r, nil
}

func (f *fakeRequestRepo) FindByIDWithScenarios(id uint) (*domain.Request, error) {
	return f.FindByID(id)
}

func (f *fakeRequestRepo) FindAll(limit, offset int) ([]domain.Request, error) {
	var out []domain.Request
	for _, r := range f.requests {
		out = append(out, *r)
	}
	return out, nil
}

func fixedClock() time.Time {
	return time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
}

func testProducts() *fakeProductReader {
	return &fakeProductReader{snapshots: map[string]*domain.ProductSnapshot{
		"COLA_330ML_CASE24": {
			SKU:            "COLA_330ML_CASE24",
			Name:           "Cola 330ml 24-pack",
			OnHand:         4000,
			ProductionRate: 500,
		},
	}}
}

func TestSimulateSupplyRequest_Partial(t *testing.T) {
	repo := &fakeScenarioRepo{}
	h := NewSimulateSupplyRequestHandler(repo, testProducts()).WithClock(fixedClock)

	outcome, err := h.Handle(context.Background(), SimulateSupplyRequestCommand{
		SKU:       "COLA_330ML_CASE24",
		Quantity:  12000,
		DueDate:   "2026-03-04",
		Requester: "Rotterdam DC",
	})
	require.NoError(t, err)

	assert.Equal(t, 4000, outcome.AvailableFromStock)
	assert.Equal(t, 1000, outcome.AvailableFromProduction)
	assert.Equal(t, 5000, outcome.TotalSatisfiable)
	assert.Equal(t, 7000, outcome.Shortfall)
	assert.Equal(t, domain.ClassificationPartial, outcome.Classification)
	require.NotNil(t, outcome.EstimatedResolutionDate)
	assert.Equal(t, "2026-03-18", outcome.EstimatedResolutionDate.Format("2006-01-02"))
	assert.Contains(t, outcome.ReplyText, "We can confirm 5000 cases")
	assert.Contains(t, outcome.ScenarioID, "SCN-")

	// one request row, one scenario row
	require.Len(t, repo.requests, 1)
	require.Len(t, repo.scenarios, 1)
	assert.Equal(t, repo.requests[0].ID, repo.scenarios[0].RequestID)
}

func TestSimulateSupplyRequest_InvalidInput(t *testing.T) {
	cases := []struct {
		name string
		cmd  SimulateSupplyRequestCommand
	}{
		{"zero quantity", SimulateSupplyRequestCommand{SKU: "COLA_330ML_CASE24", Quantity: 0, DueDate: "2026-03-04", Requester: "Rotterdam DC"}},
		{"negative quantity", SimulateSupplyRequestCommand{SKU: "COLA_330ML_CASE24", Quantity: -5, DueDate: "2026-03-04", Requester: "Rotterdam DC"}},
		{"blank sku", SimulateSupplyRequestCommand{SKU: " ", Quantity: 10, DueDate: "2026-03-04", Requester: "Rotterdam DC"}},
		{"blank requester", SimulateSupplyRequestCommand{SKU: "COLA_330ML_CASE24", Quantity: 10, DueDate: "2026-03-04", Requester: ""}},
		{"malformed date", SimulateSupplyRequestCommand{SKU: "COLA_330ML_CASE24", Quantity: 10, DueDate: "next tuesday", Requester: "Rotterdam DC"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeScenarioRepo{}
			h := NewSimulateSupplyRequestHandler(repo, testProducts()).WithClock(fixedClock)

			_, err := h.Handle(context.Background(), tc.cmd)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Empty(t, repo.requests, "no request persisted on invalid input")
			assert.Empty(t, repo.scenarios, "no scenario persisted on invalid input")
		})
	}
}

func TestSimulateSupplyRequest_UnknownSKU(t *testing.T) {
	repo := &fakeScenarioRepo{}
	h := NewSimulateSupplyRequestHandler(repo, testProducts()).WithClock(fixedClock)

	_, err := h.Handle(context.Background(), SimulateSupplyRequestCommand{
		SKU:       "NO_SUCH_SKU",
		Quantity:  10,
		DueDate:   "2026-03-04",
		Requester: "Rotterdam DC",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, repo.scenarios)
}

func TestSimulateSupplyRequest_WriteFailureSurfacesError(t *testing.T) {
	repo := &fakeScenarioRepo{failWrite: assert.AnError}
	h := NewSimulateSupplyRequestHandler(repo, testProducts()).WithClock(fixedClock)

	_, err := h.Handle(context.Background(), SimulateSupplyRequestCommand{
		SKU:       "COLA_330ML_CASE24",
		Quantity:  10,
		DueDate:   "2026-03-04",
		Requester: "Rotterdam DC",
	})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSimulateSupplyRequest_IdempotentValues(t *testing.T) {
	repo := &fakeScenarioRepo{}
	h := NewSimulateSupplyRequestHandler(repo, testProducts()).WithClock(fixedClock)

	cmd := SimulateSupplyRequestCommand{
		SKU:       "COLA_330ML_CASE24",
		Quantity:  12000,
		DueDate:   "2026-03-04",
		Requester: "Rotterdam DC",
	}

	first, err := h.Handle(context.Background(), cmd)
	require.NoError(t, err)
	second, err := h.Handle(context.Background(), cmd)
	require.NoError(t, err)

	// same figures, fresh identifiers
	assert.Equal(t, first.TotalSatisfiable, second.TotalSatisfiable)
	assert.Equal(t, first.Shortfall, second.Shortfall)
	assert.Equal(t, first.Classification, second.Classification)
	assert.Equal(t, first.ReplyText, second.ReplyText)
	assert.NotEqual(t, first.ScenarioID, second.ScenarioID)
}

func TestResimulateRequest_AppendsScenario(t *testing.T) {
	products := testProducts()
	scenarioRepo := &fakeScenarioRepo{}
	requestRepo := &fakeRequestRepo{requests: map[uint]*domain.Request{
		7: {
			ID:           7,
			SKU:          "COLA_330ML_CASE24",
			RequestedQty: 12000,
			DueDate:      time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC),
			Requester:    "Rotterdam DC",
		},
	}}

	h := NewResimulateRequestHandler(requestRepo, scenarioRepo, products).WithClock(fixedClock)

	outcome, err := h.Handle(context.Background(), ResimulateRequestCommand{RequestID: 7})
	require.NoError(t, err)
	assert.Equal(t, uint(7), outcome.RequestID)
	assert.Equal(t, 5000, outcome.TotalSatisfiable)
	require.Len(t, scenarioRepo.scenarios, 1)
	assert.Equal(t, uint(7), scenarioRepo.scenarios[0].RequestID)

	// stock arrived since the first run; the new scenario reflects it
	products.snapshots["COLA_330ML_CASE24"].OnHand = 12000
	outcome, err = h.Handle(context.Background(), ResimulateRequestCommand{RequestID: 7})
	require.NoError(t, err)
	assert.Equal(t, domain.ClassificationFull, outcome.Classification)
	assert.Len(t, scenarioRepo.scenarios, 2)
}

func TestResimulateRequest_UnknownRequest(t *testing.T) {
	h := NewResimulateRequestHandler(&fakeRequestRepo{requests: map[uint]*domain.Request{}}, &fakeScenarioRepo{}, testProducts())

	_, err := h.Handle(context.Background(), ResimulateRequestCommand{RequestID: 42})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
