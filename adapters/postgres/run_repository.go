// Package postgres persists simulation runs in PostgreSQL. Request
// and result payloads are stored as JSONB alongside the lifecycle
// columns the API lists and filters on.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"cyberrisk/domain/core"
	"cyberrisk/domain/run"
	apperrors "cyberrisk/internal/errors"
	"cyberrisk/ports"
)

// Schema is the DDL for the runs table; applied by the operator or a
// migration step, not by this adapter.
const Schema = `
CREATE TABLE IF NOT EXISTS simulation_runs (
	id            TEXT PRIMARY KEY,
	scenario_name TEXT NOT NULL DEFAULT '',
	status        TEXT NOT NULL,
	fingerprint   TEXT NOT NULL,
	request       JSONB NOT NULL,
	results       JSONB,
	error_message TEXT NOT NULL DEFAULT '',
	created_at    TIMESTAMPTZ NOT NULL,
	started_at    TIMESTAMPTZ,
	completed_at  TIMESTAMPTZ
);`

// runRepository implements ports.RunRepository over sqlx.
type runRepository struct {
	db *sqlx.DB
}

// NewRunRepository creates a new PostgreSQL-backed run repository.
func NewRunRepository(db *sqlx.DB) ports.RunRepository {
	return &runRepository{db: db}
}

type runRow struct {
	ID           string       `db:"id"`
	ScenarioName string       `db:"scenario_name"`
	Status       string       `db:"status"`
	Fingerprint  string       `db:"fingerprint"`
	Request      []byte       `db:"request"`
	Results      []byte       `db:"results"`
	ErrorMessage string       `db:"error_message"`
	CreatedAt    time.Time    `db:"created_at"`
	StartedAt    sql.NullTime `db:"started_at"`
	CompletedAt  sql.NullTime `db:"completed_at"`
}

func (r *runRepository) Create(ctx context.Context, rn *run.Run) error {
	row, err := toRow(rn)
	if err != nil {
		return err
	}

	query := `INSERT INTO simulation_runs (
		id, scenario_name, status, fingerprint, request, results,
		error_message, created_at, started_at, completed_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err = r.db.ExecContext(ctx, query,
		row.ID, row.ScenarioName, row.Status, row.Fingerprint, row.Request, row.Results,
		row.ErrorMessage, row.CreatedAt, row.StartedAt, row.CompletedAt,
	)
	if err != nil {
		return apperrors.DatabaseError("failed to create run", err)
	}
	return nil
}

func (r *runRepository) Update(ctx context.Context, rn *run.Run) error {
	row, err := toRow(rn)
	if err != nil {
		return err
	}

	query := `UPDATE simulation_runs SET
		scenario_name = $2, status = $3, fingerprint = $4, request = $5,
		results = $6, error_message = $7, started_at = $8, completed_at = $9
	WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query,
		row.ID, row.ScenarioName, row.Status, row.Fingerprint, row.Request,
		row.Results, row.ErrorMessage, row.StartedAt, row.CompletedAt,
	)
	if err != nil {
		return apperrors.DatabaseError("failed to update run", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return apperrors.DatabaseError("failed to update run", err)
	}
	if affected == 0 {
		return core.NewNotFoundError("simulation run", rn.ID.String())
	}
	return nil
}

func (r *runRepository) GetByID(ctx context.Context, id core.RunID) (*run.Run, error) {
	query := `SELECT id, scenario_name, status, fingerprint, request, results,
		error_message, created_at, started_at, completed_at
	FROM simulation_runs WHERE id = $1`

	var row runRow
	if err := r.db.GetContext(ctx, &row, query, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.NewNotFoundError("simulation run", id.String())
		}
		return nil, apperrors.DatabaseError("failed to get run", err)
	}
	return fromRow(&row)
}

func (r *runRepository) List(ctx context.Context) ([]*run.Run, error) {
	query := `SELECT id, scenario_name, status, fingerprint, request, results,
		error_message, created_at, started_at, completed_at
	FROM simulation_runs ORDER BY created_at DESC`

	var rows []runRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, apperrors.DatabaseError("failed to list runs", err)
	}

	runs := make([]*run.Run, 0, len(rows))
	for i := range rows {
		rn, err := fromRow(&rows[i])
		if err != nil {
			return nil, err
		}
		runs = append(runs, rn)
	}
	return runs, nil
}

func (r *runRepository) Delete(ctx context.Context, id core.RunID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM simulation_runs WHERE id = $1`, id.String())
	if err != nil {
		return apperrors.DatabaseError("failed to delete run", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return apperrors.DatabaseError("failed to delete run", err)
	}
	if affected == 0 {
		return core.NewNotFoundError("simulation run", id.String())
	}
	return nil
}

func toRow(rn *run.Run) (*runRow, error) {
	request, err := json.Marshal(rn.Request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	var results []byte
	if rn.Results != nil {
		results, err = json.Marshal(rn.Results)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal results: %w", err)
		}
	}

	row := &runRow{
		ID:           rn.ID.String(),
		ScenarioName: rn.ScenarioName,
		Status:       string(rn.Status),
		Fingerprint:  rn.Fingerprint.String(),
		Request:      request,
		Results:      results,
		ErrorMessage: rn.ErrorMessage,
		CreatedAt:    rn.CreatedAt.Time(),
	}
	if rn.StartedAt != nil {
		row.StartedAt = sql.NullTime{Time: rn.StartedAt.Time(), Valid: true}
	}
	if rn.CompletedAt != nil {
		row.CompletedAt = sql.NullTime{Time: rn.CompletedAt.Time(), Valid: true}
	}
	return row, nil
}

func fromRow(row *runRow) (*run.Run, error) {
	rn := &run.Run{
		ID:           core.RunID(row.ID),
		ScenarioName: row.ScenarioName,
		Status:       run.Status(row.Status),
		Fingerprint:  core.Hash(row.Fingerprint),
		ErrorMessage: row.ErrorMessage,
		CreatedAt:    core.NewTimestamp(row.CreatedAt),
	}
	if err := json.Unmarshal(row.Request, &rn.Request); err != nil {
		return nil, fmt.Errorf("failed to unmarshal request: %w", err)
	}
	if len(row.Results) > 0 {
		rn.Results = &run.Results{}
		if err := json.Unmarshal(row.Results, rn.Results); err != nil {
			return nil, fmt.Errorf("failed to unmarshal results: %w", err)
		}
	}
	if row.StartedAt.Valid {
		ts := core.NewTimestamp(row.StartedAt.Time)
		rn.StartedAt = &ts
	}
	if row.CompletedAt.Valid {
		ts := core.NewTimestamp(row.CompletedAt.Time)
		rn.CompletedAt = &ts
	}
	return rn, nil
}
