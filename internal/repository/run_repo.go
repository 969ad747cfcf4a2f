package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"controlling_microwave/internal/models"

	"github.com/google/uuid"
)

type RunSQLite struct {
	db *sql.DB
}

func NewRunSQLite(db *sql.DB) *RunSQLite { return &RunSQLite{db: db} }

const (
	defaultRunLimit = 50
	maxRunLimit     = 500

	insertRunSQL = `
		INSERT INTO conformance_runs (id, implementation, suite, result, steps, assertions, explored, failure, started_at, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	selectRunSQL = `SELECT id, implementation, suite, result, steps, assertions, explored, failure, started_at, duration_ms FROM conformance_runs`
)

// Append stores one run. A missing RunID or StartedAt is filled in.
func (r *RunSQLite) Append(ctx context.Context, run models.ConformanceRun) error {
	if run.RunID == "" {
		run.RunID = uuid.NewString()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}

	var failure *string
	if run.Failure != "" {
		failure = &run.Failure
	}

	_, err := r.db.ExecContext(ctx, insertRunSQL,
		run.RunID,
		run.Implementation,
		run.Suite,
		run.Result,
		run.Steps,
		run.Assertions,
		run.Explored,
		failure,
		run.StartedAt.UTC(),
		run.DurationMs,
	)
	if err != nil {
		return fmt.Errorf("insert conformance run %s: %w", run.RunID, err)
	}
	return nil
}

// List returns the newest runs first, optionally for one implementation.
// limit <= 0 selects the default; it is capped at maxRunLimit.
func (r *RunSQLite) List(ctx context.Context, implementation string, limit int) ([]models.ConformanceRun, error) {
	switch {
	case limit <= 0:
		limit = defaultRunLimit
	case limit > maxRunLimit:
		limit = maxRunLimit
	}

	q := selectRunSQL
	var args []any
	if impl := strings.TrimSpace(implementation); impl != "" {
		q += " WHERE implementation = ?"
		args = append(args, impl)
	}
	q += " ORDER BY started_at DESC LIMIT ?"
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query conformance runs: %w", err)
	}
	defer rows.Close()

	var out []models.ConformanceRun
	for rows.Next() {
		var run models.ConformanceRun
		var failure sql.NullString
		if err := rows.Scan(
			&run.RunID,
			&run.Implementation,
			&run.Suite,
			&run.Result,
			&run.Steps,
			&run.Assertions,
			&run.Explored,
			&failure,
			&run.StartedAt,
			&run.DurationMs,
		); err != nil {
			return nil, fmt.Errorf("scan conformance run: %w", err)
		}
		run.Failure = failure.String
		run.StartedAt = run.StartedAt.UTC()
		out = append(out, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conformance runs: %w", err)
	}
	return out, nil
}
