// Package run models the lifecycle of an asynchronous simulation run:
// submitted parameters, status transitions, and the stored results.
package run

import (
	"cyberrisk/domain/core"
	"cyberrisk/domain/risk"
)

// Status is the lifecycle state of a run.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Results bundles the fixed 8-field ALE tuple with the supplementary
// percentile summary of the simulated total-impact sample.
type Results struct {
	risk.ALEResult
	Percentiles map[string]float64 `json:"percentiles,omitempty"`
	Currency    string             `json:"currency"`
}

// Run is one simulation run owned by the orchestration layer.
type Run struct {
	ID           core.RunID             `json:"run_id"`
	ScenarioName string                 `json:"scenario_name,omitempty"`
	Status       Status                 `json:"status"`
	Request      risk.SimulationRequest `json:"request"`
	Fingerprint  core.Hash              `json:"fingerprint"`
	Results      *Results               `json:"results,omitempty"`
	ErrorMessage string                 `json:"error_message,omitempty"`
	CreatedAt    core.Timestamp         `json:"created_at"`
	StartedAt    *core.Timestamp        `json:"started_at,omitempty"`
	CompletedAt  *core.Timestamp        `json:"completed_at,omitempty"`
}

// New builds a pending run for a validated request.
func New(req risk.SimulationRequest, scenarioName string) *Run {
	return &Run{
		ID:           core.NewRunID(),
		ScenarioName: scenarioName,
		Status:       StatusPending,
		Request:      req,
		Fingerprint:  req.Fingerprint(),
		CreatedAt:    core.Now(),
	}
}

// Terminal reports whether the run has finished, successfully or not.
func (r *Run) Terminal() bool {
	return r.Status == StatusCompleted || r.Status == StatusFailed
}
