package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/supply-agent/internal/product/domain"
	"github.com/tair/supply-agent/internal/product/usecase/command"
	"github.com/tair/supply-agent/internal/product/usecase/query"
	"github.com/tair/supply-agent/pkg/logger"
)

// ProductHandler handles HTTP requests for the product catalog using CQRS pattern
type ProductHandler struct {
	// Command handlers
	createHandler  *command.CreateProductHandler
	receiveHandler *command.ReceiveStockHandler
	rateHandler    *command.SetProductionRateHandler

	// Query handlers
	getHandler    *query.GetProductHandler
	getSKUHandler *query.GetProductBySKUHandler
	listHandler   *query.ListProductsHandler
	statsHandler  *query.GetCatalogStatsHandler

	repo           domain.ProductRepository
	invalidator    SnapshotInvalidator
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	totalProducts  prometheus.Gauge
}

// SnapshotInvalidator evicts a cached product snapshot after a catalog
// mutation, so simulations see fresh figures before the cache TTL expires
type SnapshotInvalidator interface {
	Invalidate(ctx context.Context, sku string)
}

// WithSnapshotInvalidator attaches the cache eviction hook
func (h *ProductHandler) WithSnapshotInvalidator(inv SnapshotInvalidator) *ProductHandler {
	h.invalidator = inv
	return h
}

// NewProductHandlerWithDI creates a new product handler using dependency injection
func NewProductHandlerWithDI(
	createHandler *command.CreateProductHandler,
	receiveHandler *command.ReceiveStockHandler,
	rateHandler *command.SetProductionRateHandler,
	getHandler *query.GetProductHandler,
	getSKUHandler *query.GetProductBySKUHandler,
	listHandler *query.ListProductsHandler,
	statsHandler *query.GetCatalogStatsHandler,
	repo domain.ProductRepository,
) *ProductHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "supply_agent_catalog_requests_total",
			Help: "Total number of requests to the catalog endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "supply_agent_catalog_request_duration_seconds",
			Help:    "Duration of catalog requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	totalProducts := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "supply_agent_catalog_total_products",
			Help: "Total number of products in the catalog",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(totalProducts)

	return &ProductHandler{
		createHandler:  createHandler,
		receiveHandler: receiveHandler,
		rateHandler:    rateHandler,
		getHandler:     getHandler,
		getSKUHandler:  getSKUHandler,
		listHandler:    listHandler,
		statsHandler:   statsHandler,
		repo:           repo,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		totalProducts:  totalProducts,
	}
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
func (h *ProductHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers all catalog routes
func (h *ProductHandler) RegisterRoutes(router *mux.Router) {
	// Public routes (no auth required)
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products/stats", h.metricsMiddleware("/api/products/stats", h.GetCatalogStats)).Methods("GET")
	router.HandleFunc("/api/products/sku/{sku}", h.metricsMiddleware("/api/products/sku/{sku}", h.GetProductBySKU)).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.GetProduct)).Methods("GET")

	// Admin routes (admin role required)
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", AdminMiddleware(h.CreateProduct))).Methods("POST")
	router.HandleFunc("/api/products/{id}/stock", h.metricsMiddleware("/api/products/{id}/stock", AdminMiddleware(h.ReceiveStock))).Methods("PATCH")
	router.HandleFunc("/api/products/{id}/rate", h.metricsMiddleware("/api/products/{id}/rate", AdminMiddleware(h.SetProductionRate))).Methods("PATCH")
}

// CreateProduct handles POST /api/products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SKU            string  `json:"sku"`
		Name           string  `json:"name"`
		Description    string  `json:"description"`
		OnHand         int     `json:"on_hand"`
		ProductionRate float64 `json:"production_rate"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.CreateProductCommand{
		SKU:            req.SKU,
		Name:           req.Name,
		Description:    req.Description,
		OnHand:         req.OnHand,
		ProductionRate: req.ProductionRate,
	}

	product, err := h.createHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Str("sku", req.SKU).Msg("Failed to create product")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.updateProductsMetric()

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// GetProduct handles GET /api/products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	product, err := h.getHandler.Handle(query.GetProductQuery{ID: uint(id)})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Product not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    product,
	})
}

// GetProductBySKU handles GET /api/products/sku/{sku}
func (h *ProductHandler) GetProductBySKU(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	product, err := h.getSKUHandler.Handle(query.GetProductBySKUQuery{SKU: vars["sku"]})
	if err != nil {
		status := http.StatusNotFound
		if !errors.Is(err, domain.ErrProductNotFound) {
			status = http.StatusInternalServerError
		}
		respondJSON(w, status, Response{
			Success: false,
			Error:   "Product not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    product,
	})
}

// ListProducts handles GET /api/products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	products, err := h.listHandler.Handle(query.ListProductsQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list products")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list products",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    products,
	})
}

// GetCatalogStats handles GET /api/products/stats
func (h *ProductHandler) GetCatalogStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsHandler.Handle()
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to get catalog stats")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to get catalog stats",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    stats,
	})
}

// ReceiveStock handles PATCH /api/products/{id}/stock
func (h *ProductHandler) ReceiveStock(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	var req struct {
		OnHand int `json:"on_hand"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if err := h.receiveHandler.Handle(command.ReceiveStockCommand{ProductID: uint(id), OnHand: req.OnHand}); err != nil {
		logger.Logger.Error().Err(err).Uint64("product_id", id).Msg("Failed to update on-hand quantity")
		status := http.StatusBadRequest
		if errors.Is(err, domain.ErrProductNotFound) {
			status = http.StatusNotFound
		}
		respondJSON(w, status, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.invalidateSnapshot(r.Context(), uint(id))

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "On-hand quantity updated successfully",
	})
}

// SetProductionRate handles PATCH /api/products/{id}/rate
func (h *ProductHandler) SetProductionRate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	var req struct {
		ProductionRate float64 `json:"production_rate"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if err := h.rateHandler.Handle(command.SetProductionRateCommand{ProductID: uint(id), ProductionRate: req.ProductionRate}); err != nil {
		logger.Logger.Error().Err(err).Uint64("product_id", id).Msg("Failed to update production rate")
		status := http.StatusBadRequest
		if errors.Is(err, domain.ErrProductNotFound) {
			status = http.StatusNotFound
		}
		respondJSON(w, status, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.invalidateSnapshot(r.Context(), uint(id))

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Production rate updated successfully",
	})
}

// invalidateSnapshot evicts the product's cached snapshot after a mutation.
// Mutations address products by ID, the cache keys by SKU, so the row is
// looked up once more here.
func (h *ProductHandler) invalidateSnapshot(ctx context.Context, id uint) {
	if h.invalidator == nil {
		return
	}

	product, err := h.repo.FindByID(id)
	if err != nil {
		logger.Logger.Warn().Err(err).Uint("product_id", id).Msg("Failed to look up product for cache invalidation")
		return
	}

	h.invalidator.Invalidate(ctx, product.SKU)
}

func (h *ProductHandler) updateProductsMetric() {
	if count, err := h.repo.Count(); err == nil {
		h.totalProducts.Set(float64(count))
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
