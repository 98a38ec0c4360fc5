package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainforge-ai/chainforge/ent"
	"github.com/chainforge-ai/chainforge/ent/workflow"
	"github.com/chainforge-ai/chainforge/pkg/coordinator"
	"github.com/chainforge-ai/chainforge/pkg/deploy"
	"github.com/chainforge-ai/chainforge/pkg/models"
	"github.com/chainforge-ai/chainforge/pkg/registry"
	"github.com/chainforge-ai/chainforge/pkg/services"
)

// The pool is wired into Options.Pool at startup; keep the signatures in step.
var _ HealthReporter = (*coordinator.Pool)(nil)

type fakePool struct {
	health *coordinator.PoolHealth
}

func (f *fakePool) Health() *coordinator.PoolHealth { return f.health }

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeCoordinator struct {
	createResp *models.CreateWorkflowResponse
	createErr  error

	cancelStatus string
	cancelErr    error

	batchResult   *deploy.BatchResult
	batchWarnings []string
	batchErr      error
}

func (f *fakeCoordinator) Create(_ context.Context, _ models.CreateWorkflowRequest) (*models.CreateWorkflowResponse, error) {
	return f.createResp, f.createErr
}

func (f *fakeCoordinator) Cancel(_ context.Context, _ string) (string, error) {
	return f.cancelStatus, f.cancelErr
}

func (f *fakeCoordinator) DeployBatch(_ context.Context, _ models.BatchDeployRequest) (*deploy.BatchResult, []string, error) {
	return f.batchResult, f.batchWarnings, f.batchErr
}

type fakeWorkflows struct {
	rows map[string]*ent.Workflow
}

func (f *fakeWorkflows) Get(_ context.Context, id string) (*ent.Workflow, error) {
	if wf, ok := f.rows[id]; ok {
		return wf, nil
	}
	return nil, services.ErrNotFound
}

type fakeContracts struct {
	rows []*ent.Contract
}

func (f *fakeContracts) ListByWorkflow(_ context.Context, _ string) ([]*ent.Contract, error) {
	return f.rows, nil
}

type fakeDeployments struct {
	rows []*ent.Deployment
}

func (f *fakeDeployments) ListByWorkflow(_ context.Context, _ string) ([]*ent.Deployment, error) {
	return f.rows, nil
}

func newTestServer(coord *fakeCoordinator, workflows *fakeWorkflows) *Server {
	if workflows == nil {
		workflows = &fakeWorkflows{rows: map[string]*ent.Workflow{}}
	}
	return NewServer(coord, workflows, &fakeContracts{}, &fakeDeployments{}, registry.New(), nil, Options{})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateWorkflowEndpoint(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		coord := &fakeCoordinator{createResp: &models.CreateWorkflowResponse{
			WorkflowID: "wf-1",
			Status:     "created",
		}}
		router := newTestServer(coord, nil).Routes()

		rec := doJSON(t, router, http.MethodPost, "/api/v1/workflows/generate", models.CreateWorkflowRequest{
			NLPInput: "An ERC20 token with a capped supply",
			Network:  "hyperion_testnet",
		})

		assert.Equal(t, http.StatusAccepted, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "wf-1", body["workflow_id"])
		assert.Equal(t, "created", body["status"])
	})

	t.Run("validation error becomes 400", func(t *testing.T) {
		coord := &fakeCoordinator{createErr: services.NewValidationError("network", "unknown network sepolia")}
		router := newTestServer(coord, nil).Routes()

		rec := doJSON(t, router, http.MethodPost, "/api/v1/workflows/generate", models.CreateWorkflowRequest{
			NLPInput: "An ERC20 token with a capped supply",
			Network:  "sepolia",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeBody(t, rec)["error"], "unknown network")
	})

	t.Run("malformed body", func(t *testing.T) {
		router := newTestServer(&fakeCoordinator{}, nil).Routes()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/workflows/generate", bytes.NewBufferString("{not json"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetWorkflowEndpoint(t *testing.T) {
	now := time.Now()
	workflows := &fakeWorkflows{rows: map[string]*ent.Workflow{
		"wf-1": {
			ID:             "wf-1",
			Status:         workflow.StatusCompiling,
			Progress:       20,
			Network:        "hyperion_testnet",
			ContractType:   "Token",
			MetisvmEnabled: true,
			AuditLevel:     "standard",
			CreatedAt:      now,
		},
	}}
	router := newTestServer(&fakeCoordinator{}, workflows).Routes()

	t.Run("found", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/workflows/wf-1", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, "wf-1", body["workflow_id"])
		assert.Equal(t, "compiling", body["status"])
		assert.Equal(t, float64(20), body["progress"])
		features := body["features"].(map[string]any)
		assert.Equal(t, true, features["metisvm"])
	})

	t.Run("not found", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/workflows/missing", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCancelWorkflowEndpoint(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		coord := &fakeCoordinator{cancelStatus: "generating"}
		router := newTestServer(coord, nil).Routes()

		rec := doJSON(t, router, http.MethodPost, "/api/v1/workflows/wf-1/cancel", nil)
		assert.Equal(t, http.StatusAccepted, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "generating", body["status"])
		assert.Equal(t, true, body["cancel_requested"])
	})

	t.Run("terminal workflow conflicts", func(t *testing.T) {
		coord := &fakeCoordinator{cancelErr: services.ErrTerminal}
		router := newTestServer(coord, nil).Routes()

		rec := doJSON(t, router, http.MethodPost, "/api/v1/workflows/wf-1/cancel", nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestBatchDeployEndpoint(t *testing.T) {
	request := models.BatchDeployRequest{
		Network: "hyperion_testnet",
		UsePEF:  true,
		Contracts: []models.BatchContractInput{
			{ContractName: "Token", Bytecode: "0x60"},
		},
	}

	t.Run("all confirmed", func(t *testing.T) {
		coord := &fakeCoordinator{batchResult: &deploy.BatchResult{SuccessCount: 1}}
		router := newTestServer(coord, nil).Routes()

		rec := doJSON(t, router, http.MethodPost, "/api/v1/deployments/batch", request)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("partial failure reports multi-status", func(t *testing.T) {
		coord := &fakeCoordinator{
			batchResult:   &deploy.BatchResult{SuccessCount: 1, FailedCount: 1},
			batchWarnings: []string{"PEF is not available on Mantle; batch deployments run sequentially"},
		}
		router := newTestServer(coord, nil).Routes()

		rec := doJSON(t, router, http.MethodPost, "/api/v1/deployments/batch", request)
		assert.Equal(t, http.StatusMultiStatus, rec.Code)
		body := decodeBody(t, rec)
		assert.Len(t, body["warnings"], 1)
	})
}

func TestNetworkEndpoints(t *testing.T) {
	router := newTestServer(&fakeCoordinator{}, nil).Routes()

	t.Run("catalog lists built-in networks", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/networks", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		networks := body["networks"].([]any)
		require.Len(t, networks, 4)
	})

	t.Run("feature detail with fallbacks", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/networks/mantle_testnet/features", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, float64(5003), body["chain_id"])
		features := body["features"].(map[string]any)
		assert.Equal(t, false, features["PEF"])
		fallbacks := body["fallbacks"].(map[string]any)
		assert.Contains(t, fallbacks["MetisVM"], "Mantle")
	})

	t.Run("unknown network", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/networks/sepolia/features", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHealthEndpoints(t *testing.T) {
	t.Run("liveness", func(t *testing.T) {
		router := newTestServer(&fakeCoordinator{}, nil).Routes()
		rec := doJSON(t, router, http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("detailed includes worker pool state", func(t *testing.T) {
		server := NewServer(&fakeCoordinator{}, &fakeWorkflows{rows: map[string]*ent.Workflow{}},
			&fakeContracts{}, &fakeDeployments{}, registry.New(), nil, Options{
				Pool: &fakePool{health: &coordinator.PoolHealth{
					IsHealthy:    true,
					PodID:        "pod-a",
					TotalWorkers: 3,
				}},
			})
		rec := doJSON(t, server.Routes(), http.MethodGet, "/health/detailed", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, "healthy", body["status"])
		pool := body["worker_pool"].(map[string]any)
		assert.Equal(t, true, pool["is_healthy"])
		assert.Equal(t, "pod-a", pool["pod_id"])
		assert.Equal(t, float64(3), pool["total_workers"])
	})

	t.Run("detailed degrades on unhealthy pool", func(t *testing.T) {
		server := NewServer(&fakeCoordinator{}, &fakeWorkflows{rows: map[string]*ent.Workflow{}},
			&fakeContracts{}, &fakeDeployments{}, registry.New(), nil, Options{
				Pool: &fakePool{health: &coordinator.PoolHealth{
					IsHealthy: false,
					DBError:   "queue depth query failed: connection refused",
				}},
			})
		rec := doJSON(t, server.Routes(), http.MethodGet, "/health/detailed", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "degraded", decodeBody(t, rec)["status"])
	})

	t.Run("detailed reports database failure", func(t *testing.T) {
		server := NewServer(&fakeCoordinator{}, &fakeWorkflows{rows: map[string]*ent.Workflow{}},
			&fakeContracts{}, &fakeDeployments{}, registry.New(), nil, Options{
				DBHealth: func(context.Context) (any, error) {
					return map[string]string{"status": "unhealthy"}, assert.AnError
				},
			})
		rec := doJSON(t, server.Routes(), http.MethodGet, "/health/detailed", nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "unhealthy", decodeBody(t, rec)["status"])
	})
}
