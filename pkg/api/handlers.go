package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chainforge-ai/chainforge/pkg/models"
	"github.com/chainforge-ai/chainforge/pkg/registry"
)

// createWorkflow handles POST /api/v1/workflows/generate.
func (s *Server) createWorkflow(c *gin.Context) {
	var req models.CreateWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	resp, err := s.coordinator.Create(c.Request.Context(), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, resp)
}

// getWorkflow handles GET /api/v1/workflows/:id.
func (s *Server) getWorkflow(c *gin.Context) {
	wf, err := s.workflows.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workflowResponse(wf))
}

// listContracts handles GET /api/v1/workflows/:id/contracts.
func (s *Server) listContracts(c *gin.Context) {
	id := c.Param("id")
	if _, err := s.workflows.Get(c.Request.Context(), id); err != nil {
		abortWithServiceError(c, err)
		return
	}

	rows, err := s.contracts.ListByWorkflow(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"workflow_id": id, "contracts": contractResponses(rows)})
}

// listDeployments handles GET /api/v1/workflows/:id/deployments.
func (s *Server) listDeployments(c *gin.Context) {
	id := c.Param("id")
	if _, err := s.workflows.Get(c.Request.Context(), id); err != nil {
		abortWithServiceError(c, err)
		return
	}

	rows, err := s.deployments.ListByWorkflow(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"workflow_id": id, "deployments": deploymentResponses(rows)})
}

// cancelWorkflow handles POST /api/v1/workflows/:id/cancel.
func (s *Server) cancelWorkflow(c *gin.Context) {
	id := c.Param("id")
	status, err := s.coordinator.Cancel(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{
		"workflow_id":      id,
		"status":           status,
		"cancel_requested": true,
	})
}

// batchDeploy handles POST /api/v1/deployments/batch.
func (s *Server) batchDeploy(c *gin.Context) {
	var req models.BatchDeployRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	result, warnings, err := s.coordinator.DeployBatch(c.Request.Context(), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	status := http.StatusOK
	if result.FailedCount > 0 {
		// Partial failure still returns the per-contract outcomes.
		status = http.StatusMultiStatus
	}
	c.JSON(status, gin.H{"result": result, "warnings": warnings})
}

// listNetworks handles GET /api/v1/networks.
func (s *Server) listNetworks(c *gin.Context) {
	ids := s.registry.Networks()
	networks := make([]NetworkResponse, 0, len(ids))
	for _, id := range ids {
		cfg, _ := s.registry.Network(id)
		networks = append(networks, NetworkResponse{
			Network:     id,
			ChainID:     cfg.ChainID,
			RPCEndpoint: cfg.RPCEndpoint,
			Explorer:    cfg.Explorer,
			Features:    featureMap(s.registry.Features(id)),
		})
	}
	c.JSON(http.StatusOK, gin.H{"networks": networks})
}

// networkFeatures handles GET /api/v1/networks/:network/features.
func (s *Server) networkFeatures(c *gin.Context) {
	id := c.Param("network")
	cfg, ok := s.registry.Network(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown network " + id})
		return
	}

	fallbacks := make(map[string]string)
	for _, f := range registry.AllFeatures {
		if !s.registry.Supports(id, f) {
			fallbacks[string(f)] = s.registry.Fallback(id, f)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"network":   id,
		"chain_id":  cfg.ChainID,
		"features":  featureMap(s.registry.Features(id)),
		"fallbacks": fallbacks,
	})
}

func featureMap(in map[registry.Feature]bool) map[string]bool {
	out := make(map[string]bool, len(in))
	for f, v := range in {
		out[string(f)] = v
	}
	return out
}
