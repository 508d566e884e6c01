// Package worker executes simulation runs in the background. Each run
// owns its own request, sampler, and result object, so runs proceed
// with no coordination beyond the pool's concurrency bound.
package worker

import (
	"context"

	"golang.org/x/sync/errgroup"

	"cyberrisk/domain/core"
	"cyberrisk/domain/run"
	"cyberrisk/domain/risk"
	"cyberrisk/internal"
	"cyberrisk/internal/simulation"
	"cyberrisk/ports"
)

// Runner accepts simulation requests and drives them through the
// pending/running/completed/failed lifecycle.
type Runner struct {
	repo     ports.RunRepository
	log      *internal.Logger
	currency string
	group    errgroup.Group
}

// NewRunner creates a runner over the given repository. maxConcurrent
// bounds how many simulations execute at once.
func NewRunner(repo ports.RunRepository, log *internal.Logger, maxConcurrent int, currency string) *Runner {
	r := &Runner{repo: repo, log: log, currency: currency}
	r.group.SetLimit(maxConcurrent)
	return r
}

// Submit validates the request, stores a pending run, and schedules it
// for execution. Validation failures are returned synchronously and
// never stored; nothing samples before validation passes.
func (r *Runner) Submit(ctx context.Context, req risk.SimulationRequest, scenarioName string) (core.RunID, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	rn := run.New(req, scenarioName)
	if err := r.repo.Create(ctx, rn); err != nil {
		return "", err
	}
	r.log.Info("simulation %s submitted (%d iterations)", rn.ID, req.Iterations)

	r.group.Go(func() error {
		r.execute(rn)
		return nil
	})
	return rn.ID, nil
}

// Wait blocks until every scheduled run has finished.
func (r *Runner) Wait() {
	_ = r.group.Wait()
}

func (r *Runner) execute(rn *run.Run) {
	// Run updates are best-effort against a background context: the
	// submitting request is long gone by the time a run completes.
	ctx := context.Background()

	started := core.Now()
	rn.Status = run.StatusRunning
	rn.StartedAt = &started
	if err := r.repo.Update(ctx, rn); err != nil {
		r.log.Error("simulation %s: failed to mark running: %v", rn.ID, err)
	}

	outcome, err := simulation.Run(rn.Request)
	completed := core.Now()
	rn.CompletedAt = &completed

	if err != nil {
		rn.Status = run.StatusFailed
		rn.ErrorMessage = err.Error()
		r.log.Error("simulation %s failed: %v", rn.ID, err)
	} else {
		percentiles, perr := simulation.PercentileSummary(outcome.TotalImpacts, nil)
		if perr != nil {
			r.log.Warn("simulation %s: percentile summary unavailable: %v", rn.ID, perr)
		}
		rn.Status = run.StatusCompleted
		rn.Results = &run.Results{
			ALEResult:   outcome.Result,
			Percentiles: percentiles,
			Currency:    r.currency,
		}
		r.log.Info("simulation %s completed: ALE %.2f", rn.ID, outcome.Result.ALE)
	}

	if err := r.repo.Update(ctx, rn); err != nil {
		r.log.Error("simulation %s: failed to store outcome: %v", rn.ID, err)
	}
}
