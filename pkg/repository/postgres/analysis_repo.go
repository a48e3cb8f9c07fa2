package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"careerpath/pkg/career"
	"careerpath/pkg/prediction"
)

// AnalysisRepository persists prediction results. The full gap report is
// stored as JSONB so history entries stay readable even after the catalog
// or dataset changes.
type AnalysisRepository struct {
	pool *pgxpool.Pool
}

func NewAnalysisRepository(pool *pgxpool.Pool) (*AnalysisRepository, error) {
	r := &AnalysisRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *AnalysisRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS career_analyses (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			predicted_role TEXT NOT NULL,
			confidence REAL NOT NULL,
			skill_gap JSONB NOT NULL,
			analyzed_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_career_analyses_user ON career_analyses (user_id, analyzed_at DESC);
	`)
	return err
}

func (r *AnalysisRepository) Create(ctx context.Context, analysis prediction.Analysis) error {
	gap, err := json.Marshal(analysis.Gap)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO career_analyses (id, user_id, predicted_role, confidence, skill_gap, analyzed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, analysis.ID, analysis.UserID, analysis.Role, analysis.Confidence, gap, analysis.AnalyzedAt)
	return err
}

func (r *AnalysisRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]prediction.Analysis, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, predicted_role, confidence, skill_gap, analyzed_at
		FROM career_analyses
		WHERE user_id = $1
		ORDER BY analyzed_at DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []prediction.Analysis
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, analysis)
	}
	return out, rows.Err()
}

func (r *AnalysisRepository) LatestByUser(ctx context.Context, userID uuid.UUID) (prediction.Analysis, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, predicted_role, confidence, skill_gap, analyzed_at
		FROM career_analyses
		WHERE user_id = $1
		ORDER BY analyzed_at DESC
		LIMIT 1
	`, userID)
	analysis, err := scanAnalysis(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return prediction.Analysis{}, prediction.ErrNotFound
		}
		return prediction.Analysis{}, err
	}
	return analysis, nil
}

func scanAnalysis(row pgx.Row) (prediction.Analysis, error) {
	var analysis prediction.Analysis
	var gap []byte
	var analyzedAt time.Time
	if err := row.Scan(&analysis.ID, &analysis.UserID, &analysis.Role, &analysis.Confidence, &gap, &analyzedAt); err != nil {
		return prediction.Analysis{}, err
	}
	var report career.Report
	if err := json.Unmarshal(gap, &report); err != nil {
		return prediction.Analysis{}, err
	}
	analysis.Gap = report
	analysis.AnalyzedAt = analyzedAt.UTC()
	return analysis, nil
}
