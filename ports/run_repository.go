package ports

import (
	"context"

	"cyberrisk/domain/core"
	"cyberrisk/domain/run"
)

// RunRepository persists simulation runs through their lifecycle.
// Implementations must be safe for concurrent use: the worker updates
// runs while API handlers read them.
type RunRepository interface {
	Create(ctx context.Context, r *run.Run) error
	Update(ctx context.Context, r *run.Run) error
	GetByID(ctx context.Context, id core.RunID) (*run.Run, error)
	List(ctx context.Context) ([]*run.Run, error)
	Delete(ctx context.Context, id core.RunID) error
}
