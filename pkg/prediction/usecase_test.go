package prediction

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpath/pkg/career"
	"careerpath/pkg/catalog"
)

func smallCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Skill{
		{Name: "A", Category: catalog.CategoryDevelopment},
		{Name: "B", Category: catalog.CategoryDevelopment},
		{Name: "C", Category: catalog.CategorySecurity},
	})
	require.NoError(t, err)
	return c
}

type fakePredictor struct {
	got    []int
	result RolePrediction
}

func (f *fakePredictor) Predict(ctx context.Context, levels []int) (RolePrediction, error) {
	f.got = append([]int(nil), levels...)
	return f.result, nil
}

func (f *fakePredictor) Features(ctx context.Context) ([]string, error) {
	return []string{"A", "B", "C"}, nil
}

type fakeAnalyses struct {
	created []Analysis
}

func (f *fakeAnalyses) Create(ctx context.Context, a Analysis) error {
	f.created = append(f.created, a)
	return nil
}

func (f *fakeAnalyses) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Analysis, error) {
	return f.created, nil
}

func (f *fakeAnalyses) LatestByUser(ctx context.Context, userID uuid.UUID) (Analysis, error) {
	if len(f.created) == 0 {
		return Analysis{}, ErrNotFound
	}
	return f.created[len(f.created)-1], nil
}

type fakeSkills struct {
	vector map[string]int
}

func (f *fakeSkills) Vector(ctx context.Context, userID uuid.UUID) (map[string]int, error) {
	return f.vector, nil
}

type fakeObservations struct{ obs []career.Observation }

func (f *fakeObservations) ListAll(ctx context.Context) ([]career.Observation, error) {
	return f.obs, nil
}

func TestAnalyzePersistsPredictionAndGap(t *testing.T) {
	cat := smallCatalog(t)
	careers := career.NewService(&fakeObservations{obs: []career.Observation{
		{Role: "Software Engineer", Skill: "A", Level: 5},
		{Role: "Software Engineer", Skill: "B", Level: 1},
	}}, nil, cat, 2)

	predictor := &fakePredictor{result: RolePrediction{Role: "Software Engineer", Confidence: 0.87}}
	analyses := &fakeAnalyses{}
	svc := NewService(predictor, analyses, &fakeSkills{vector: map[string]int{"A": 2, "B": 1}}, careers, cat)

	userID := uuid.New()
	a, err := svc.Analyze(context.Background(), userID)
	require.NoError(t, err)

	// Unrated C enters the feature vector at the midpoint.
	assert.Equal(t, []int{2, 1, 3}, predictor.got)

	assert.Equal(t, "Software Engineer", a.Role)
	assert.InDelta(t, 0.87, float64(a.Confidence), 1e-6)
	assert.Equal(t, userID, a.UserID)
	assert.False(t, a.AnalyzedAt.IsZero())

	// Gap: A required 5, user 2 -> +3; B required 1, user 1 -> 0; C default.
	assert.Equal(t, 1, a.Gap.ToImprove)
	assert.Equal(t, 3, a.Gap.Skills[0].Gap)

	require.Len(t, analyses.created, 1)
	assert.Equal(t, a.ID, analyses.created[0].ID)

	latest, err := svc.Latest(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, latest.ID)
}

func TestAnalyzeWithoutRatings(t *testing.T) {
	cat := smallCatalog(t)
	careers := career.NewService(&fakeObservations{}, nil, cat, 2)
	svc := NewService(&fakePredictor{}, &fakeAnalyses{}, &fakeSkills{vector: map[string]int{}}, careers, cat)

	_, err := svc.Analyze(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNoSkills)
}

func TestAnalyzeUnknownPredictedRole(t *testing.T) {
	cat := smallCatalog(t)
	careers := career.NewService(&fakeObservations{obs: []career.Observation{
		{Role: "Analyst", Skill: "A", Level: 4},
	}}, nil, cat, 2)
	predictor := &fakePredictor{result: RolePrediction{Role: "Astronaut", Confidence: 0.5}}
	analyses := &fakeAnalyses{}
	svc := NewService(predictor, analyses, &fakeSkills{vector: map[string]int{"A": 3}}, careers, cat)

	_, err := svc.Analyze(context.Background(), uuid.New())
	assert.ErrorIs(t, err, career.ErrUnknownRole)
	assert.Empty(t, analyses.created)
}
