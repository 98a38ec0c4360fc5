// Package api exposes the engine over HTTP: workflow creation and lookup,
// batch deployment, the network catalog, health, and the WebSocket event
// stream. Handlers stay thin; validation and orchestration live in the
// coordinator and services.
package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chainforge-ai/chainforge/ent"
	"github.com/chainforge-ai/chainforge/pkg/coordinator"
	"github.com/chainforge-ai/chainforge/pkg/deploy"
	"github.com/chainforge-ai/chainforge/pkg/events"
	"github.com/chainforge-ai/chainforge/pkg/models"
	"github.com/chainforge-ai/chainforge/pkg/registry"
)

// Coordinator is the write surface the API delegates to. Implemented by
// coordinator.Coordinator.
type Coordinator interface {
	Create(ctx context.Context, req models.CreateWorkflowRequest) (*models.CreateWorkflowResponse, error)
	Cancel(ctx context.Context, id string) (string, error)
	DeployBatch(ctx context.Context, req models.BatchDeployRequest) (*deploy.BatchResult, []string, error)
}

// WorkflowReader reads workflow rows. Implemented by services.WorkflowService.
type WorkflowReader interface {
	Get(ctx context.Context, id string) (*ent.Workflow, error)
}

// ContractReader lists a workflow's contracts. Implemented by
// services.ContractService.
type ContractReader interface {
	ListByWorkflow(ctx context.Context, workflowID string) ([]*ent.Contract, error)
}

// DeploymentReader lists a workflow's deployments. Implemented by
// services.DeploymentService.
type DeploymentReader interface {
	ListByWorkflow(ctx context.Context, workflowID string) ([]*ent.Deployment, error)
}

// HealthReporter reports worker pool health. Implemented by
// coordinator.Pool; nil when this process runs no workers.
type HealthReporter interface {
	Health() *coordinator.PoolHealth
}

// Server holds the handler dependencies.
type Server struct {
	coordinator Coordinator
	workflows   WorkflowReader
	contracts   ContractReader
	deployments DeploymentReader
	registry    *registry.Registry
	connManager *events.ConnectionManager

	health           HealthReporter
	dbHealth         func(ctx context.Context) (any, error)
	allowedWSOrigins []string
}

// Options carries the optional server dependencies.
type Options struct {
	// Pool reports worker pool health on /health/detailed.
	Pool HealthReporter

	// DBHealth checks database connectivity for /health/detailed.
	DBHealth func(ctx context.Context) (any, error)

	// AllowedWSOrigins are extra WebSocket origin patterns beyond
	// same-origin.
	AllowedWSOrigins []string
}

// NewServer creates the API server. connManager may be nil; the WebSocket
// endpoint then returns 503.
func NewServer(coord Coordinator, workflows WorkflowReader, contracts ContractReader, deployments DeploymentReader, reg *registry.Registry, connManager *events.ConnectionManager, opts Options) *Server {
	return &Server{
		coordinator:      coord,
		workflows:        workflows,
		contracts:        contracts,
		deployments:      deployments,
		registry:         reg,
		connManager:      connManager,
		health:           opts.Pool,
		dbHealth:         opts.DBHealth,
		allowedWSOrigins: opts.AllowedWSOrigins,
	}
}

// Routes builds the gin engine with all endpoints registered.
func (s *Server) Routes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.GET("/health", s.healthHandler)
	router.GET("/health/detailed", s.detailedHealthHandler)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/workflows/generate", s.createWorkflow)
		v1.GET("/workflows/:id", s.getWorkflow)
		v1.GET("/workflows/:id/contracts", s.listContracts)
		v1.GET("/workflows/:id/deployments", s.listDeployments)
		v1.POST("/workflows/:id/cancel", s.cancelWorkflow)

		v1.POST("/deployments/batch", s.batchDeploy)

		v1.GET("/networks", s.listNetworks)
		v1.GET("/networks/:network/features", s.networkFeatures)
	}

	router.GET("/ws/workflow/:id", s.workflowStream)

	return router
}

// requestLogger logs one line per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		slog.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}
