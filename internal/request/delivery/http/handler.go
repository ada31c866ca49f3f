package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/supply-agent/internal/extract"
	"github.com/tair/supply-agent/internal/request/domain"
	"github.com/tair/supply-agent/internal/request/usecase/command"
	"github.com/tair/supply-agent/internal/request/usecase/query"
	"github.com/tair/supply-agent/kafka"
	"github.com/tair/supply-agent/pkg/logger"
)

// RequestHandler handles HTTP requests for supply requests and their
// simulation outcomes using CQRS pattern
type RequestHandler struct {
	// Command handlers
	simulateHandler   *command.SimulateSupplyRequestHandler
	resimulateHandler *command.ResimulateRequestHandler

	// Query handlers
	getHandler      *query.GetRequestHandler
	listHandler     *query.ListRequestsHandler
	feedHandler     *query.ListScenariosHandler
	scenarioHandler *query.GetScenarioHandler
	statsHandler    *query.GetScenarioStatsHandler

	extractor extract.Extractor
	publisher *kafka.Publisher
	limiter   *RateLimiter

	requestCounter  *prometheus.CounterVec
	requestLatency  *prometheus.HistogramVec
	simulationTotal *prometheus.CounterVec
}

// NewRequestHandlerWithDI creates a new request handler using dependency injection
func NewRequestHandlerWithDI(
	simulateHandler *command.SimulateSupplyRequestHandler,
	resimulateHandler *command.ResimulateRequestHandler,
	getHandler *query.GetRequestHandler,
	listHandler *query.ListRequestsHandler,
	feedHandler *query.ListScenariosHandler,
	scenarioHandler *query.GetScenarioHandler,
	statsHandler *query.GetScenarioStatsHandler,
	extractor extract.Extractor,
) *RequestHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "supply_agent_request_requests_total",
			Help: "Total number of requests to the supply request endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "supply_agent_request_duration_seconds",
			Help:    "Duration of supply request endpoint calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	simulationTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "supply_agent_simulations_total",
			Help: "Total number of feasibility simulations by classification",
		},
		[]string{"classification"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(simulationTotal)

	return &RequestHandler{
		simulateHandler:   simulateHandler,
		resimulateHandler: resimulateHandler,
		getHandler:        getHandler,
		listHandler:       listHandler,
		feedHandler:       feedHandler,
		scenarioHandler:   scenarioHandler,
		statsHandler:      statsHandler,
		extractor:         extractor,
		requestCounter:    requestCounter,
		requestLatency:    requestLatency,
		simulationTotal:   simulationTotal,
	}
}

// WithPublisher attaches the Kafka publisher. Without one, simulations still
// run; the event is just not emitted.
func (h *RequestHandler) WithPublisher(publisher *kafka.Publisher) *RequestHandler {
	h.publisher = publisher
	return h
}

// WithRateLimiter attaches the per-caller limit on the simulate endpoints
func (h *RequestHandler) WithRateLimiter(limiter *RateLimiter) *RequestHandler {
	h.limiter = limiter
	return h
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *RequestHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// rateLimited applies the rate limiter when one is configured
func (h *RequestHandler) rateLimited(next http.HandlerFunc) http.HandlerFunc {
	if h.limiter == nil {
		return next
	}
	return h.limiter.Middleware(next)
}

// RegisterRoutes registers all supply request routes
func (h *RequestHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/requests", h.metricsMiddleware("/api/requests", h.rateLimited(h.SimulateRequest))).Methods("POST")
	router.HandleFunc("/api/requests/parse", h.metricsMiddleware("/api/requests/parse", h.ParseEmail)).Methods("POST")
	router.HandleFunc("/api/requests/{id}/simulate", h.metricsMiddleware("/api/requests/{id}/simulate", h.rateLimited(h.ResimulateRequest))).Methods("POST")
	router.HandleFunc("/api/requests", h.metricsMiddleware("/api/requests", h.ListRequests)).Methods("GET")
	router.HandleFunc("/api/requests/{id}", h.metricsMiddleware("/api/requests/{id}", h.GetRequest)).Methods("GET")
	router.HandleFunc("/api/scenarios", h.metricsMiddleware("/api/scenarios", h.ListScenarios)).Methods("GET")
	router.HandleFunc("/api/scenarios/stats", h.metricsMiddleware("/api/scenarios/stats", h.GetStats)).Methods("GET")
	router.HandleFunc("/api/scenarios/{scenarioID}", h.metricsMiddleware("/api/scenarios/{scenarioID}", h.GetScenario)).Methods("GET")
}

// SimulateRequest handles POST /api/requests
func (h *RequestHandler) SimulateRequest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SKU       string `json:"sku"`
		Quantity  int    `json:"qty_requested"`
		DueDate   string `json:"requested_date"`
		Requester string `json:"dc_name"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	outcome, err := h.simulateHandler.Handle(r.Context(), command.SimulateSupplyRequestCommand{
		SKU:       req.SKU,
		Quantity:  req.Quantity,
		DueDate:   req.DueDate,
		Requester: req.Requester,
	})
	if err != nil {
		h.respondCommandError(w, err, req.SKU)
		return
	}

	h.simulationTotal.WithLabelValues(outcome.Classification).Inc()
	h.publishOutcome(r, outcome)

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Simulation completed",
		Data:    outcome,
	})
}

// ResimulateRequest handles POST /api/requests/{id}/simulate
func (h *RequestHandler) ResimulateRequest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request ID",
		})
		return
	}

	outcome, err := h.resimulateHandler.Handle(r.Context(), command.ResimulateRequestCommand{RequestID: uint(id)})
	if err != nil {
		h.respondCommandError(w, err, "")
		return
	}

	h.simulationTotal.WithLabelValues(outcome.Classification).Inc()
	h.publishOutcome(r, outcome)

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Simulation completed",
		Data:    outcome,
	})
}

// ParseEmail handles POST /api/requests/parse
func (h *RequestHandler) ParseEmail(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RawEmail string `json:"raw_email"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RawEmail == "" {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "raw_email is required",
		})
		return
	}

	fields := h.extractor.Extract(req.RawEmail)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    fields,
	})
}

// GetRequest handles GET /api/requests/{id}
func (h *RequestHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request ID",
		})
		return
	}

	request, err := h.getHandler.Handle(query.GetRequestQuery{RequestID: uint(id)})
	if err != nil {
		h.respondCommandError(w, err, "")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    request,
	})
}

// ListRequests handles GET /api/requests
func (h *RequestHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	requests, err := h.listHandler.Handle(query.ListRequestsQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list requests")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list requests",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    requests,
	})
}

// ListScenarios handles GET /api/scenarios
func (h *RequestHandler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	requestID, _ := strconv.ParseUint(r.URL.Query().Get("request_id"), 10, 32)

	scenarios, err := h.feedHandler.Handle(query.ListScenariosQuery{
		Limit:     limit,
		Offset:    offset,
		RequestID: uint(requestID),
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list scenarios")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list scenarios",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    scenarios,
	})
}

// GetScenario handles GET /api/scenarios/{scenarioID}
func (h *RequestHandler) GetScenario(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	scenario, err := h.scenarioHandler.Handle(query.GetScenarioQuery{ScenarioID: vars["scenarioID"]})
	if err != nil {
		h.respondCommandError(w, err, "")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    scenario,
	})
}

// GetStats handles GET /api/scenarios/stats
func (h *RequestHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsHandler.Handle()
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to get scenario stats")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to get scenario stats",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    stats,
	})
}

// publishOutcome emits the scenario event. Publishing is best effort: a
// broker outage must not fail a simulation that is already persisted.
func (h *RequestHandler) publishOutcome(r *http.Request, outcome *command.SimulationOutcome) {
	if h.publisher == nil {
		return
	}

	event := kafka.ScenarioSimulatedEvent{
		ScenarioID:       outcome.ScenarioID,
		RequestID:        outcome.RequestID,
		SKU:              outcome.SKU,
		Requester:        outcome.Requester,
		RequestedQty:     outcome.RequestedQty,
		TotalSatisfiable: outcome.TotalSatisfiable,
		Shortfall:        outcome.Shortfall,
		Classification:   outcome.Classification,
		ResolutionDate:   outcome.EstimatedResolutionDate,
	}

	if err := h.publisher.PublishScenarioSimulated(r.Context(), event); err != nil {
		logger.Logger.Error().
			Err(err).
			Str("scenario_id", outcome.ScenarioID).
			Msg("Failed to publish scenario event")
	}
}

func (h *RequestHandler) respondCommandError(w http.ResponseWriter, err error, sku string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
	case errors.Is(err, domain.ErrNotFound):
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   err.Error(),
		})
	default:
		logger.Logger.Error().Err(err).Str("sku", sku).Msg("Simulation failed")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Internal server error",
		})
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
