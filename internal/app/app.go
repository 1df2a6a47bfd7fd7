package app

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mfalcao/payagent/config"
	"github.com/mfalcao/payagent/internal/api"
	"github.com/mfalcao/payagent/internal/engine"
	"github.com/mfalcao/payagent/internal/marketdata"
	"github.com/mfalcao/payagent/internal/payment"
	"github.com/mfalcao/payagent/internal/service"
	"github.com/mfalcao/payagent/internal/storage"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Initializes the decision audit repository.
//   - Builds the market-data and payment-gateway clients.
//   - Assembles the decision core (evaluator, simulator, dispatcher).
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (e.g., DB connection).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Connect to PostgreSQL
	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	// Decision audit repository; bootstrap the table on a fresh database
	if err := storage.EnsureSchema(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to ensure schema: %w", err)
	}
	repo := storage.NewDecisionsRepository(db)

	// Outbound collaborators
	market := marketdata.NewClient(cfg.Market.BaseURL, cfg.Market.MAWindowDays)
	gateway := payment.NewGateway(cfg.Payment.BaseURL, cfg.Payment.APIKey)

	// Decision core
	evaluator := engine.NewConditionEvaluator(market)
	// One simulator serves all requests; math/rand.Rand alone is not safe
	// for concurrent use, so the source is wrapped in a LockedSampler.
	simulator := engine.NewNegotiationSimulator(
		engine.NegotiationParams{
			BaseProbability: cfg.Negotiation.BaseProbability,
			RoundDecay:      cfg.Negotiation.RoundDecay,
		},
		engine.NewLockedSampler(rand.New(rand.NewSource(time.Now().UnixNano()))),
	)
	dispatcher := engine.NewDispatcher(gateway)

	// Service layer (orchestration + auditing)
	svc := service.NewAgentService(evaluator, simulator, dispatcher, repo)

	// HTTP handler layer
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(db.Ping)
	healthHandler.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}
