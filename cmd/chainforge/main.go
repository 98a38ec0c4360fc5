// ChainForge engine server: HTTP API, workflow worker pool, and the
// Redis-Streams event fan-out.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/chainforge-ai/chainforge/pkg/api"
	"github.com/chainforge-ai/chainforge/pkg/audit"
	"github.com/chainforge-ai/chainforge/pkg/cleanup"
	"github.com/chainforge-ai/chainforge/pkg/config"
	"github.com/chainforge-ai/chainforge/pkg/coordinator"
	"github.com/chainforge-ai/chainforge/pkg/database"
	"github.com/chainforge-ai/chainforge/pkg/deploy"
	"github.com/chainforge-ai/chainforge/pkg/events"
	"github.com/chainforge-ai/chainforge/pkg/llm"
	"github.com/chainforge-ai/chainforge/pkg/orchestrator"
	"github.com/chainforge-ai/chainforge/pkg/rag"
	"github.com/chainforge-ai/chainforge/pkg/registry"
	"github.com/chainforge-ai/chainforge/pkg/services"
	"github.com/chainforge-ai/chainforge/pkg/solc"
	"github.com/chainforge-ai/chainforge/pkg/stages"
	"github.com/chainforge-ai/chainforge/pkg/version"
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
	configPath := flag.String("config",
		getEnv("CONFIG_FILE", ""),
		"Path to chainforge.yaml (empty for built-in defaults)")
	flag.Parse()

	podID := resolvePodID()
	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(*configPath)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("Starting ChainForge", "version", version.Full(), "pod_id", podID, "port", cfg.Server.Port)

	// 2. Database (migrations and vector indexes run inside NewClient)
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

	// 3. Event bus over Redis Streams
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password(),
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := rdb.Close(); err != nil {
			slog.Error("Error closing redis client", "error", err)
		}
	}()

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		pingCancel()
		slog.Error("Failed to reach redis", "addr", cfg.Redis.Addr, "error", err)
		os.Exit(1)
	}
	pingCancel()
	bus := events.NewBus(rdb, events.DefaultConfig())
	slog.Info("Connected to redis", "addr", cfg.Redis.Addr)

	// 4. Domain services
	workflowService := services.NewWorkflowService(dbClient.Client)
	contractService := services.NewContractService(dbClient.Client)
	auditService := services.NewAuditService(dbClient.Client)
	deploymentService := services.NewDeploymentService(dbClient.Client)
	templateService := services.NewTemplateService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)

	// 5. Event persistence and WebSocket fan-out. The persister runs in one
	// shared consumer group; the relay runs in a per-pod group so every
	// replica serves its own WebSocket clients.
	connManager := events.NewConnectionManager(eventService, 10*time.Second)
	consumerCtx, consumerCancel := context.WithCancel(ctx)
	defer consumerCancel()
	var consumerWG sync.WaitGroup

	persister := events.NewPersister(bus, eventService, podID)
	if err := persister.Start(consumerCtx, &consumerWG); err != nil {
		slog.Error("Failed to start event persister", "error", err)
		os.Exit(1)
	}
	relay := events.NewStreamRelay(bus, connManager, podID)
	if err := relay.Start(consumerCtx, &consumerWG); err != nil {
		slog.Error("Failed to start event relay", "error", err)
		os.Exit(1)
	}
	slog.Info("Event consumers started")

	// 6. Event log retention
	var retention *cleanup.Service
	if cfg.Retention.Enabled {
		retention = cleanup.NewService(cfg.Retention, eventService)
		retention.Start(ctx)
		defer retention.Stop()
	}

	// 7. Network registry
	reg := registry.New()
	if cfg.NetworksFile != "" {
		if err := reg.LoadFile(cfg.NetworksFile); err != nil {
			slog.Error("Failed to load network catalog", "path", cfg.NetworksFile, "error", err)
			os.Exit(1)
		}
	}

	// 8. LLM generation provider
	var provider llm.Provider
	switch cfg.LLM.Provider {
	case "gemini":
		provider, err = llm.NewGeminiProvider(ctx, cfg.LLM.Gemini.APIKey(), cfg.LLM.Gemini.Model)
	case "openai":
		provider, err = llm.NewOpenAIProvider(cfg.LLM.OpenAI.APIKey(), cfg.LLM.OpenAI.Model)
	}
	if err != nil {
		slog.Error("Failed to initialize LLM provider", "provider", cfg.LLM.Provider, "error", err)
		os.Exit(1)
	}
	generator := llm.NewRetrier(provider, cfg.LLM.Timeout, cfg.LLM.MaxInflight)
	slog.Info("LLM provider initialized", "provider", generator.Name())

	// 9. RAG retrieval. Embeddings always come from OpenAI; without a key
	// the generator runs template-free.
	var retriever stages.TemplateRetriever
	if key := cfg.LLM.OpenAI.APIKey(); key != "" {
		embedder, err := llm.NewOpenAIProvider(key, cfg.LLM.OpenAI.Model)
		if err != nil {
			slog.Error("Failed to initialize embedding provider", "error", err)
			os.Exit(1)
		}
		retriever = rag.NewRetriever(embedder, templateService)
	} else {
		slog.Warn("No OpenAI API key configured; template retrieval disabled")
	}

	// 10. Compilation and audit tooling
	compiler := solc.New(solc.Config{
		BinDir:        cfg.Solc.BinDir,
		DefaultBinary: cfg.Solc.DefaultBinary,
		Timeout:       cfg.Solc.Timeout,
	})

	var tools []audit.Tool
	if cfg.Audit.SlitherPath != "" {
		tools = append(tools, audit.NewSlither(cfg.Audit.SlitherPath))
	}
	if cfg.Audit.MythrilPath != "" {
		tools = append(tools, audit.NewMythril(cfg.Audit.MythrilPath))
	}
	if cfg.Audit.EchidnaPath != "" {
		tools = append(tools, audit.NewEchidna(cfg.Audit.EchidnaPath))
	}
	auditRunner := audit.NewRunner(tools...)

	// 11. Deployment. The signing key is resolved once and held in memory.
	privateKey := cfg.Deploy.PrivateKey()
	if privateKey == "" {
		slog.Error("Deployer private key is not set", "env", cfg.Deploy.PrivateKeyEnv)
		os.Exit(1)
	}
	deployerProvider := deploy.NewProvider(deploy.NewClientCache(reg), reg, privateKey, cfg.Deploy.MaxInflight)
	defer deployerProvider.Close()

	var eigenda *deploy.EigenDAClient
	if cfg.Deploy.EigenDAEndpoint != "" {
		eigenda = deploy.NewEigenDAClient(cfg.Deploy.EigenDAEndpoint, cfg.Deploy.EigenDATimeout)
	}

	// 12. Pipeline stages, orchestrator, coordinator
	pipelineStages := coordinator.Stages{
		Generation:  stages.NewGenerationStage(generator, retriever, reg),
		Compilation: stages.NewCompilationStage(compiler, contractService),
		Audit:       stages.NewAuditStage(auditRunner, auditService, cfg.Audit.Strict),
		Testing:     stages.NewTestingStage(stages.ArtifactChecker{}, cfg.Testing.Strict),
		Deployment:  stages.NewDeploymentStage(deployerProvider, reg, eigenda, deploymentService),
	}
	orch := orchestrator.New(workflowService, bus)
	coord := coordinator.New(reg, workflowService, orch, pipelineStages, bus)

	// 13. Worker pool (startup orphan scan runs inside Start)
	pool := coordinator.NewPool(podID, workflowService, coord, coordinator.PoolConfig{
		WorkerCount:        cfg.Workers.WorkerCount,
		MaxConcurrent:      cfg.Workers.MaxConcurrent,
		PollInterval:       cfg.Workers.PollInterval,
		PollIntervalJitter: cfg.Workers.PollIntervalJitter,
		WorkflowTimeout:    cfg.Workers.WorkflowTimeout,
		HeartbeatInterval:  cfg.Workers.HeartbeatInterval,
		OrphanThreshold:    cfg.Workers.OrphanThreshold,
		OrphanScanInterval: cfg.Workers.OrphanScanInterval,
	})
	coord.SetCanceller(pool)
	if err := pool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 14. HTTP server
	server := api.NewServer(coord, workflowService, contractService, deploymentService, reg, connManager, api.Options{
		Pool: pool,
		DBHealth: func(ctx context.Context) (any, error) {
			status, err := database.Health(ctx, dbClient.DB())
			return status, err
		},
		AllowedWSOrigins: cfg.Server.AllowedWSOrigins,
	})
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: server.Routes(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("ChainForge started", "pod_id", podID, "workers", cfg.Workers.WorkerCount)

	// 15. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 16. Graceful shutdown: drain workers first so in-flight workflows
	// publish their terminal events, then stop the consumers, then HTTP.
	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 30*time.Second)
	defer shutdownCancel()

	poolDone := make(chan struct{})
	go func() {
		pool.Stop()
		close(poolDone)
	}()
	select {
	case <-poolDone:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Worker pool shutdown timeout exceeded; unfinished workflows will be orphan-recovered")
	}

	consumerCancel()
	consumersDone := make(chan struct{})
	go func() {
		consumerWG.Wait()
		close(consumersDone)
	}()
	select {
	case <-consumersDone:
		slog.Info("Event consumers stopped")
	case <-shutdownCtx.Done():
		slog.Warn("Event consumer shutdown timeout exceeded")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
