package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"careerpath/pkg/skills"
)

// SkillRepository stores user skill vectors. One row per (user, skill); the
// CHECK constraint pins the canonical zero-based 0..6 encoding at the
// storage boundary.
type SkillRepository struct {
	pool *pgxpool.Pool
}

func NewSkillRepository(pool *pgxpool.Pool) (*SkillRepository, error) {
	r := &SkillRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *SkillRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS skill_levels (
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			skill_name TEXT NOT NULL,
			level INT NOT NULL CHECK (level BETWEEN 0 AND 6),
			PRIMARY KEY (user_id, skill_name)
		);
	`)
	return err
}

// Replace swaps the user's whole vector in one transaction, matching the
// overwrite semantics of re-submitting the rating form.
func (r *SkillRepository) Replace(ctx context.Context, userID uuid.UUID, ratings []skills.Rating) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM skill_levels WHERE user_id = $1`, userID); err != nil {
		return err
	}
	for _, rating := range ratings {
		if _, err := tx.Exec(ctx, `
			INSERT INTO skill_levels (user_id, skill_name, level) VALUES ($1, $2, $3)
		`, userID, rating.Skill, rating.Level); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *SkillRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]skills.Rating, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT skill_name, level FROM skill_levels WHERE user_id = $1 ORDER BY skill_name
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []skills.Rating
	for rows.Next() {
		var rating skills.Rating
		if err := rows.Scan(&rating.Skill, &rating.Level); err != nil {
			return nil, err
		}
		out = append(out, rating)
	}
	return out, rows.Err()
}
