package prediction

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"careerpath/pkg/career"
)

// RolePrediction is what the external classifier returns for one encoded
// skill vector. Confidence is the model's own score; this service never
// fabricates one.
type RolePrediction struct {
	Role       string  `json:"role"`
	Confidence float32 `json:"confidence"`
}

// Predictor is the port to the pre-trained classifier. Levels are canonical
// ranks in catalog (feature) order.
type Predictor interface {
	Predict(ctx context.Context, levels []int) (RolePrediction, error)
	// Features reports the feature names the model was trained with, in
	// order. Used for the startup catalog consistency check.
	Features(ctx context.Context) ([]string, error)
}

// Analysis is one persisted career analysis run.
type Analysis struct {
	ID         uuid.UUID     `json:"id"`
	UserID     uuid.UUID     `json:"userId"`
	Role       string        `json:"predictedRole"`
	Confidence float32       `json:"confidence"`
	Gap        career.Report `json:"skillGap"`
	AnalyzedAt time.Time     `json:"analyzedAt"`
}

var (
	ErrNoSkills = errors.New("no skill ratings on record")
	ErrNotFound = errors.New("analysis not found")
)

// Repository persists analyses.
type Repository interface {
	Create(ctx context.Context, a Analysis) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Analysis, error)
	LatestByUser(ctx context.Context, userID uuid.UUID) (Analysis, error)
}

// SkillSource supplies the user's current skill vector.
type SkillSource interface {
	Vector(ctx context.Context, userID uuid.UUID) (map[string]int, error)
}
