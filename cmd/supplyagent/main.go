package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/tair/supply-agent/docs"
	"github.com/tair/supply-agent/internal/cache"
	"github.com/tair/supply-agent/internal/config"
	"github.com/tair/supply-agent/internal/product"
	productdomain "github.com/tair/supply-agent/internal/product/domain"
	"github.com/tair/supply-agent/internal/request"
	requesthttp "github.com/tair/supply-agent/internal/request/delivery/http"
	requestdomain "github.com/tair/supply-agent/internal/request/domain"
	"github.com/tair/supply-agent/kafka"
	"github.com/tair/supply-agent/pkg/database"
	"github.com/tair/supply-agent/pkg/logger"
	"github.com/tair/supply-agent/pkg/tracing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("supply-agent", true)
		logger.Logger.Fatal().Err(err).Msg("Invalid configuration")
	}

	// Initialize logger
	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Msg("Starting supply agent service")

	// Initialize tracer
	tp, err := tracing.InitTracer(cfg.ServiceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Connect to database
	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Run migrations
	if err := db.AutoMigrate(&productdomain.Product{}, &requestdomain.Request{}, &requestdomain.Scenario{}); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Redis backs the product snapshot cache and the simulate rate limiter.
	// The service runs without it, just slower and unprotected.
	redisClient := connectRedis(cfg)
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Kafka publisher for scenario events
	var publisher *kafka.Publisher
	if cfg.KafkaEnabled {
		publisher, err = kafka.NewPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Kafka unavailable, scenario events disabled")
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	// Catalog context
	productCache := cache.NewProductCache(redisClient, product.ProvideProductRepository(db), cfg.ProductCacheTTL)

	productHandler, err := product.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize product handler")
	}
	productHandler.WithSnapshotInvalidator(productCache)

	// Request context, reading the catalog through the cache
	requestHandler, err := request.InitializeHTTPHandler(db, productCache)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize request handler")
	}
	requestHandler.
		WithPublisher(publisher).
		WithRateLimiter(requesthttp.NewRateLimiter(redisClient, cfg.SimulateRateLimit, cfg.SimulateRateWindow))

	// Setup router
	router := mux.NewRouter()
	productHandler.RegisterRoutes(router)
	requestHandler.RegisterRoutes(router)

	// Health check endpoint
	router.HandleFunc("/health", healthHandler(sqlDB)).Methods("GET")

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	requesthttp.RegisterSwaggerDocs(router, httpSwagger.WrapHandler)

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: c.Handler(requesthttp.TracingMiddleware("supply-agent-http", router)),
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Str("swagger_endpoint", "/swagger/index.html").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server forced to shutdown")
	}
}

func connectRedis(cfg *config.AppConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Logger.Warn().
			Err(err).
			Str("addr", cfg.RedisAddr).
			Msg("Redis unavailable, cache and rate limiting disabled")
		client.Close()
		return nil
	}

	logger.Logger.Info().Str("addr", cfg.RedisAddr).Msg("Redis connected")
	return client
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		w.Header().Set("Content-Type", "application/json")

		if err := db.PingContext(ctx); err != nil {
			logger.Logger.Error().Err(err).Msg("Health check failed")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"unhealthy","error":"database unreachable"}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	}
}
