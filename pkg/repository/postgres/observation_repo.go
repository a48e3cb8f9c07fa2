package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"careerpath/pkg/career"
)

// ObservationRepository stores the labeled training dataset: one row per
// (role, skill) observation. It backs career profile aggregation and is
// populated by the seed command.
type ObservationRepository struct {
	pool *pgxpool.Pool
}

func NewObservationRepository(pool *pgxpool.Pool) (*ObservationRepository, error) {
	r := &ObservationRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ObservationRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS skill_observations (
			id BIGSERIAL PRIMARY KEY,
			role TEXT NOT NULL,
			skill_name TEXT NOT NULL,
			level INT NOT NULL CHECK (level BETWEEN 0 AND 6)
		);
		CREATE INDEX IF NOT EXISTS idx_skill_observations_role ON skill_observations (role);
	`)
	return err
}

// ReplaceAll wipes the dataset and bulk-loads the new one via COPY.
func (r *ObservationRepository) ReplaceAll(ctx context.Context, observations []career.Observation) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM skill_observations`); err != nil {
		return err
	}
	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"skill_observations"},
		[]string{"role", "skill_name", "level"},
		pgx.CopyFromSlice(len(observations), func(i int) ([]any, error) {
			o := observations[i]
			return []any{o.Role, o.Skill, o.Level}, nil
		}),
	)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *ObservationRepository) ListAll(ctx context.Context) ([]career.Observation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT role, skill_name, level FROM skill_observations ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []career.Observation
	for rows.Next() {
		var o career.Observation
		if err := rows.Scan(&o.Role, &o.Skill, &o.Level); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
