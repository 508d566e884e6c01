// Package memory provides the in-process run store used when no
// database is configured.
package memory

import (
	"context"
	"sort"
	"sync"

	"cyberrisk/domain/core"
	"cyberrisk/domain/run"
	"cyberrisk/ports"
)

// runRepository is a mutex-guarded map of runs.
type runRepository struct {
	mu   sync.RWMutex
	runs map[core.RunID]*run.Run
}

// NewRunRepository creates an empty in-memory run repository.
func NewRunRepository() ports.RunRepository {
	return &runRepository{runs: make(map[core.RunID]*run.Run)}
}

func (r *runRepository) Create(ctx context.Context, rn *run.Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *rn
	r.runs[rn.ID] = &stored
	return nil
}

func (r *runRepository) Update(ctx context.Context, rn *run.Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.runs[rn.ID]; !ok {
		return core.NewNotFoundError("simulation run", rn.ID.String())
	}
	stored := *rn
	r.runs[rn.ID] = &stored
	return nil
}

func (r *runRepository) GetByID(ctx context.Context, id core.RunID) (*run.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rn, ok := r.runs[id]
	if !ok {
		return nil, core.NewNotFoundError("simulation run", id.String())
	}
	found := *rn
	return &found, nil
}

func (r *runRepository) List(ctx context.Context) ([]*run.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	runs := make([]*run.Run, 0, len(r.runs))
	for _, rn := range r.runs {
		found := *rn
		runs = append(runs, &found)
	}
	// Newest first; UUID v7 run IDs are time-ordered.
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].ID > runs[j].ID
	})
	return runs, nil
}

func (r *runRepository) Delete(ctx context.Context, id core.RunID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.runs[id]; !ok {
		return core.NewNotFoundError("simulation run", id.String())
	}
	delete(r.runs, id)
	return nil
}
