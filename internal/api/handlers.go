package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cyberrisk/domain/core"
	"cyberrisk/internal"
	"cyberrisk/internal/config"
	apperrors "cyberrisk/internal/errors"
	"cyberrisk/internal/optimizer"
	"cyberrisk/internal/probability"
	"cyberrisk/internal/worker"
	"cyberrisk/ports"
)

// Handler wires the numerical engines and the run lifecycle to HTTP.
type Handler struct {
	runner *worker.Runner
	repo   ports.RunRepository
	cfg    *config.Config
	log    *internal.Logger
}

// NewHandler creates a new API handler
func NewHandler(runner *worker.Runner, repo ports.RunRepository, cfg *config.Config, log *internal.Logger) *Handler {
	return &Handler{runner: runner, repo: repo, cfg: cfg, log: log}
}

// Router builds the gin engine with all API routes mounted.
func (h *Handler) Router() *gin.Engine {
	gin.SetMode(h.cfg.Server.GinMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", h.Health)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/simulate", h.StartSimulation)
		v1.GET("/results/:id", h.GetResults)
		v1.GET("/simulations", h.ListSimulations)
		v1.DELETE("/results/:id", h.DeleteSimulation)
		v1.POST("/analyze", h.AnalyzeJointProbabilities)
		v1.POST("/optimize", h.OptimizeControls)
	}
	return r
}

// Health reports service liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// StartSimulation validates and schedules a Monte Carlo run, returning
// its run ID immediately.
func (h *Handler) StartSimulation(c *gin.Context) {
	var req SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.Iterations > h.cfg.Simulation.MaxIterations {
		c.JSON(http.StatusBadRequest, gin.H{"error": "iterations exceed the configured maximum"})
		return
	}

	runID, err := h.runner.Submit(c.Request.Context(), req.ToDomain(), req.ScenarioName)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"run_id": runID.String(),
		"status": "pending",
	})
}

// GetResults returns one run with its results when available.
func (h *Handler) GetResults(c *gin.Context) {
	runID, err := core.ParseRunID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid run ID"})
		return
	}

	rn, err := h.repo.GetByID(c.Request.Context(), runID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, rn)
}

// ListSimulations returns every stored run, newest first.
func (h *Handler) ListSimulations(c *gin.Context) {
	runs, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"simulations": runs, "count": len(runs)})
}

// DeleteSimulation removes a stored run.
func (h *Handler) DeleteSimulation(c *gin.Context) {
	runID, err := core.ParseRunID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid run ID"})
		return
	}
	if err := h.repo.Delete(c.Request.Context(), runID); err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": runID.String()})
}

// AnalyzeJointProbabilities runs the screening analysis synchronously.
func (h *Handler) AnalyzeJointProbabilities(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	total, table, probs, err := req.ToDomain()
	if err != nil {
		h.renderError(c, err)
		return
	}

	result, err := probability.Analyze(total, table, probs)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// OptimizeControls runs regression + LP synchronously and attaches
// deployment recommendations.
func (h *Handler) OptimizeControls(c *gin.Context) {
	var req OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	in, err := req.ToDomain()
	if err != nil {
		h.renderError(c, err)
		return
	}

	result, err := optimizer.Optimize(in)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":          result,
		"recommendations": optimizer.Recommendations(in.CurrentControls, result.AdditionalControls, req.Names()),
	})
}

// renderError maps domain errors onto HTTP statuses: caller mistakes
// are 400, solvable-model failures are 422, the rest are 500.
func (h *Handler) renderError(c *gin.Context, err error) {
	code := apperrors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case apperrors.CodeParameterError, apperrors.CodeDegenerateInput:
		status = http.StatusBadRequest
	case apperrors.CodeRegressionError, apperrors.CodeOptimizationError:
		status = http.StatusUnprocessableEntity
	case apperrors.CodeNotFound:
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		h.log.Error("request failed: %v", err)
	}
	c.JSON(status, gin.H{"error": err.Error(), "code": code})
}
