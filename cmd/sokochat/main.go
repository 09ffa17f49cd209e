// Sokochat server — provides the HTTP API, ingests WhatsApp webhooks,
// runs the conversation agent, and manages the scheduled-send workers.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/qdrant/go-client/qdrant"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"

	"github.com/sokochat/sokochat/pkg/agent"
	"github.com/sokochat/sokochat/pkg/api"
	"github.com/sokochat/sokochat/pkg/campaign"
	"github.com/sokochat/sokochat/pkg/checkout"
	"github.com/sokochat/sokochat/pkg/config"
	"github.com/sokochat/sokochat/pkg/crypto"
	"github.com/sokochat/sokochat/pkg/database"
	"github.com/sokochat/sokochat/pkg/dispatch"
	"github.com/sokochat/sokochat/pkg/grounding"
	"github.com/sokochat/sokochat/pkg/harmonizer"
	"github.com/sokochat/sokochat/pkg/llm"
	"github.com/sokochat/sokochat/pkg/outbox"
	"github.com/sokochat/sokochat/pkg/payments"
	"github.com/sokochat/sokochat/pkg/refcontext"
	"github.com/sokochat/sokochat/pkg/scheduler"
	"github.com/sokochat/sokochat/pkg/services"
	"github.com/sokochat/sokochat/pkg/telephony"
	"github.com/sokochat/sokochat/pkg/version"
)

// providerTimeout bounds each outbound call to the telephony provider and
// the payment gateway.
const providerTimeout = 15 * time.Second

// outboxPollInterval is the fallback poll for the outbox drainer; normal
// delivery rides on pg_notify.
const outboxPollInterval = 30 * time.Second

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

// buildVectorSearcher wires the optional qdrant semantic index. Failures are
// logged and the retriever falls back to database matching.
func buildVectorSearcher(cfg *config.Config) agent.VectorSearcher {
	if cfg.Agent == nil || cfg.Agent.Retrieval == nil || !cfg.Agent.Retrieval.VectorEnabled {
		return nil
	}

	addr := getEnv("QDRANT_ADDR", "localhost:6334")
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		slog.Error("Invalid QDRANT_ADDR, continuing without semantic search",
			"addr", addr, "error", err)
		return nil
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		slog.Error("Invalid QDRANT_ADDR port, continuing without semantic search",
			"addr", addr, "error", err)
		return nil
	}

	qdrantClient, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: os.Getenv("QDRANT_API_KEY"),
		GrpcOptions: []grpc.DialOption{
			grpc.WithUserAgent(version.Full()),
		},
	})
	if err != nil {
		slog.Error("Failed to create qdrant client, continuing without semantic search",
			"addr", addr, "error", err)
		return nil
	}

	embedder, err := llm.NewOpenAIEmbedder(os.Getenv("EMBEDDING_MODEL"))
	if err != nil {
		slog.Error("Failed to create embedder, continuing without semantic search",
			"error", err)
		return nil
	}

	collection := getEnv("QDRANT_COLLECTION", "sokochat")
	slog.Info("Semantic search enabled", "addr", addr, "collection", collection)
	return agent.NewQdrantSearcher(qdrantClient, collection, embedder)
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting sokochat",
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database (runs pending migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		if errors.Is(err, database.ErrMigrationFailed) {
			os.Exit(2)
		}
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Connect to Redis (burst buffers, rate limits, scope cache, locks)
	rdb := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		pingCancel()
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	pingCancel()
	defer func() { _ = rdb.Close() }()
	slog.Info("Connected to Redis")

	// 4. One-time startup claim release for sends orphaned by a crash
	if err := scheduler.ReleaseStartupClaims(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to release startup claims", "error", err)
		// Non-fatal — continue
	}

	// 5. Credential codec and domain services
	codec, err := crypto.NewCodecFromEnv()
	if err != nil {
		slog.Error("Failed to initialize credential codec", "error", err)
		os.Exit(1)
	}

	authService, err := services.NewAuthServiceFromEnv(dbClient.Client)
	if err != nil {
		slog.Error("Failed to initialize auth service", "error", err)
		os.Exit(1)
	}

	auditService := services.NewAuditService(dbClient.Client)
	tenantService := services.NewTenantService(dbClient.Client, cfg, auditService)
	scopeService := services.NewScopeService(dbClient.Client, rdb)
	customerService := services.NewCustomerService(dbClient.Client, auditService)
	conversationService := services.NewConversationService(dbClient.Client, auditService)
	settingsService := services.NewSettingsService(dbClient.Client, codec, auditService)
	templateService := services.NewTemplateService(dbClient.Client)
	appointmentService := services.NewAppointmentService(dbClient.Client, auditService)
	withdrawalService := services.NewWithdrawalService(dbClient.Client, auditService)
	catalogService := services.NewCatalogService(dbClient.Client, auditService)

	publisher := outbox.NewPublisher(dbClient.DB())
	orderService := services.NewOrderService(dbClient.Client, publisher, auditService)
	slog.Info("Services initialized")

	// 6. Outbound pipeline: telephony sender, dispatcher, message service
	twilioSender := telephony.NewTwilioSender(providerTimeout)
	dispatcher := dispatch.NewDispatcher(dbClient.Client, cfg,
		dispatch.NewRedisRateLimitStore(rdb), twilioSender, settingsService)
	messageService := services.NewMessageService(dbClient.Client, dispatcher,
		customerService, conversationService)
	campaignEngine := campaign.NewEngine(dbClient.Client, cfg, dispatcher)

	// 7. Payments and checkout
	paymentInitiator := payments.NewHTTPInitiator(providerTimeout, cfg.System.PaymentGatewayURL)
	checkoutMachine := checkout.NewMachine(dbClient.Client, paymentInitiator, dispatcher)

	// 8. LLM failover stack
	providers, err := llm.BuildProviders(cfg.LLMProviderRegistry)
	if err != nil {
		slog.Error("Failed to build LLM providers", "error", err)
		os.Exit(1)
	}
	healthTracker := llm.NewHealthTracker(llm.NewRedisHealthStore(rdb), cfg.Failover)
	llmManager := llm.NewManager(providers, healthTracker, cfg.Failover, cfg.LLMProviderRegistry)
	llmRouter := llm.NewRouter(cfg)
	slog.Info("LLM providers initialized", "count", len(providers))

	// 9. Conversation agent
	refManager := refcontext.NewManager(dbClient.Client, cfg.Agent.ReferenceTTL)
	orchestrator := agent.NewOrchestrator(dbClient.Client, cfg, agent.Deps{
		Locker:     agent.NewRedisLocker(rdb),
		Retriever:  agent.NewRetriever(dbClient.Client, cfg.Agent.Retrieval, buildVectorSearcher(cfg)),
		References: refManager,
		Validator:  grounding.NewValidator(cfg.Agent),
		Router:     llmRouter,
		Completer:  llmManager,
		Checkout:   checkoutMachine,
		Dispatcher: dispatcher,
		Payments:   settingsService,
		Campaigns:  campaignEngine,
	})

	// 10. Background machinery: harmonizer, outbox drainer, workers, cron
	harm := harmonizer.New(harmonizer.NewRedisStore(rdb), cfg.Harmonizer, orchestrator)
	harm.Start(ctx)

	drainer := outbox.NewDrainer(dbClient.Client, dbConfig.DSN(),
		outbox.NewNotificationHandler(dispatcher), outboxPollInterval)
	drainer.Start(ctx)

	workerPool := scheduler.NewWorkerPool(podID, dbClient.Client, cfg.Queue, dispatcher)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	cronJobs := scheduler.NewCronJobs(dbClient.Client, cfg, dispatcher, checkoutMachine, refManager)
	cronJobs.SetCampaignRunner(campaignEngine)
	if err := cronJobs.Start(); err != nil {
		slog.Error("Failed to start cron jobs", "error", err)
		os.Exit(1)
	}

	// 11. HTTP server
	httpServer := api.NewServer(cfg, dbClient, api.Deps{
		Auth:          authService,
		Tenants:       tenantService,
		Scopes:        scopeService,
		Audit:         auditService,
		Customers:     customerService,
		Conversations: conversationService,
		Messages:      messageService,
		Templates:     templateService,
		Appointments:  appointmentService,
		Withdrawals:   withdrawalService,
		Orders:        orderService,
		Settings:      settingsService,
		Catalog:       catalogService,
		Campaigns:     campaignEngine,
		Harmonizer:    harm,
		Checkout:      checkoutMachine,
		WorkerPool:    workerPool,
		Prober: &api.ProviderProber{
			Telephony: twilioSender,
			Payments:  paymentInitiator,
		},
	})

	// 12. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Sokochat started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 13. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 14. Graceful shutdown. Cron and the harmonizer stop first so no new
	// sends enter the queue while the workers finish claimed batches.
	cronJobs.Stop()
	harm.Stop()
	drainer.Stop()

	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — claimed sends will be released at next startup")
	}

	// Stop HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
