// Casemine server — listens on the chat transport, runs the mining
// pipeline through the job queue, and serves the web viewer API.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/casemine/casemine/pkg/admin"
	"github.com/casemine/casemine/pkg/answer"
	"github.com/casemine/casemine/pkg/api"
	"github.com/casemine/casemine/pkg/config"
	"github.com/casemine/casemine/pkg/database"
	"github.com/casemine/casemine/pkg/extract"
	"github.com/casemine/casemine/pkg/history"
	"github.com/casemine/casemine/pkg/index"
	"github.com/casemine/casemine/pkg/ingest"
	"github.com/casemine/casemine/pkg/llm"
	"github.com/casemine/casemine/pkg/queue"
	"github.com/casemine/casemine/pkg/reaction"
	"github.com/casemine/casemine/pkg/reconcile"
	"github.com/casemine/casemine/pkg/services"
	"github.com/casemine/casemine/pkg/transport"
	"github.com/casemine/casemine/pkg/version"
)

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

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	podID := resolvePodID()
	slog.Info("Starting casemine",
		"version", version.Full(),
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Vector index
	idx, err := index.NewProvider(cfg.Index)
	if err != nil {
		slog.Error("Failed to open vector index", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := idx.Close(); err != nil {
			slog.Error("Error closing vector index", "error", err)
		}
	}()

	// 4. LLM gateway and embedder
	gateway, err := llm.NewClient(cfg.LLM)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "error", err)
		os.Exit(1)
	}
	embedder := llm.NewHTTPEmbedder(cfg.Embedding)

	// 5. Chat transport
	botToken := os.Getenv(cfg.Transport.TokenEnv)
	appToken := os.Getenv(cfg.Transport.AppTokenEnv)
	sender, err := transport.NewSlackTransport(botToken, appToken, cfg.Transport)
	if err != nil {
		slog.Error("Failed to initialize transport", "error", err)
		os.Exit(1)
	}

	// 6. Domain services and pipeline handlers
	messageService := services.NewMessageService(dbClient.Client)
	caseService := services.NewCaseService(dbClient.Client)
	adminService := services.NewAdminService(dbClient.Client)
	jobService := services.NewJobService(dbClient.Client, cfg.Queue.MaxAttempts)
	locker := database.NewGroupLocker(dbClient.DB())
	slog.Info("Services initialized")

	ingestor := ingest.NewIngestor(messageService, jobService, gateway, cfg)
	extractor := extract.NewExtractor(messageService, caseService, gateway, embedder, idx, locker, cfg)
	engine := answer.NewEngine(messageService, caseService, adminService, gateway, embedder, idx, sender, locker, cfg)
	reactions := reaction.NewHandler(messageService, caseService, embedder, idx, cfg)
	adminFlow := admin.NewFlow(adminService, messageService, caseService, jobService, idx, sender, cfg)
	importer := history.NewImporter(adminService, caseService, gateway, embedder, idx, sender, cfg)

	// 7. Worker pool
	router := queue.NewRouter(extractor, engine, importer)
	workerPool := queue.NewWorkerPool(podID, jobService, cfg.Queue, router)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 8. Reconciler
	reconciler := reconcile.NewService(cfg.Retention, cfg.Pipeline,
		caseService, adminService, jobService, embedder, idx)
	reconciler.Start(ctx)

	// 9. HTTP API
	httpServer := api.NewServer(caseService, adminService, workerPool, importer, idx, cfg)
	if err := httpServer.Start(); err != nil {
		slog.Error("Failed to start API server", "error", err)
		os.Exit(1)
	}

	// 10. Transport event loop
	eventCtx, eventCancel := context.WithCancel(ctx)
	defer eventCancel()
	events, err := sender.Listen(eventCtx)
	if err != nil {
		slog.Error("Failed to start transport listener", "error", err)
		os.Exit(1)
	}
	go dispatchEvents(eventCtx, events, ingestor, reactions, adminFlow)

	slog.Info("Casemine started", "pod_id", podID, "workers", cfg.Queue.WorkerCount)

	// 11. Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigCh
	slog.Info("Shutdown signal received", "signal", sig)

	// 12. Graceful shutdown: stop intake first, then drain workers.
	eventCancel()
	reconciler.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — in-flight jobs will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Stop(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// dispatchEvents fans transport events out to their handlers. Handler
// errors are logged, never fatal: the durable work happens in queue
// jobs, the event loop only feeds them.
func dispatchEvents(
	ctx context.Context,
	events <-chan transport.Event,
	ingestor *ingest.Ingestor,
	reactions *reaction.Handler,
	adminFlow *admin.Flow,
) {
	for ev := range events {
		switch {
		case ev.Message != nil:
			if err := ingestor.Ingest(ctx, *ev.Message); err != nil {
				slog.Error("Message ingest failed", "group_id", ev.Message.GroupID, "error", err)
			}
		case ev.Reaction != nil:
			if err := reactions.HandleReaction(ctx, *ev.Reaction); err != nil {
				slog.Error("Reaction handling failed", "group_id", ev.Reaction.GroupID, "error", err)
			}
		case ev.Direct != nil:
			if err := adminFlow.HandleDirectMessage(ctx, *ev.Direct); err != nil {
				slog.Error("Admin DM handling failed", "admin_id", ev.Direct.AdminID, "error", err)
			}
		case ev.ContactRemoved != nil:
			if err := adminFlow.HandleContactRemoved(ctx, ev.ContactRemoved.AdminID); err != nil {
				slog.Error("Contact removal cleanup failed", "admin_id", ev.ContactRemoved.AdminID, "error", err)
			}
		}
	}
	slog.Info("Transport event stream closed")
}
