package prediction

import (
	"context"
	"time"

	"github.com/google/uuid"

	"careerpath/pkg/career"
	"careerpath/pkg/catalog"
)

// UseCase runs career analyses and serves their history.
type UseCase interface {
	Analyze(ctx context.Context, userID uuid.UUID) (Analysis, error)
	History(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Analysis, error)
	Latest(ctx context.Context, userID uuid.UUID) (Analysis, error)
}

type service struct {
	predictor Predictor
	analyses  Repository
	skills    SkillSource
	careers   career.UseCase
	cat       *catalog.Catalog
}

func NewService(predictor Predictor, analyses Repository, skills SkillSource, careers career.UseCase, cat *catalog.Catalog) UseCase {
	return &service{
		predictor: predictor,
		analyses:  analyses,
		skills:    skills,
		careers:   careers,
		cat:       cat,
	}
}

// Analyze encodes the user's stored vector in the classifier's feature
// order, asks the model for a role, evaluates the skill gap against that
// role's profile and persists the whole result.
func (s *service) Analyze(ctx context.Context, userID uuid.UUID) (Analysis, error) {
	vector, err := s.skills.Vector(ctx, userID)
	if err != nil {
		return Analysis{}, err
	}
	if len(vector) == 0 {
		return Analysis{}, ErrNoSkills
	}

	// Skills the user never rated enter the feature vector at the midpoint,
	// same default the gap evaluation uses.
	levels := make([]int, s.cat.Len())
	for i, name := range s.cat.Names() {
		if rank, ok := vector[name]; ok {
			levels[i] = rank
		} else {
			levels[i] = s.cat.Midpoint()
		}
	}

	predicted, err := s.predictor.Predict(ctx, levels)
	if err != nil {
		return Analysis{}, err
	}

	report, err := s.careers.GapFor(ctx, vector, predicted.Role)
	if err != nil {
		return Analysis{}, err
	}

	a := Analysis{
		ID:         uuid.New(),
		UserID:     userID,
		Role:       predicted.Role,
		Confidence: predicted.Confidence,
		Gap:        report,
		AnalyzedAt: time.Now().UTC(),
	}
	if err := s.analyses.Create(ctx, a); err != nil {
		return Analysis{}, err
	}
	return a, nil
}

func (s *service) History(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Analysis, error) {
	return s.analyses.ListByUser(ctx, userID, limit, offset)
}

func (s *service) Latest(ctx context.Context, userID uuid.UUID) (Analysis, error) {
	return s.analyses.LatestByUser(ctx, userID)
}
