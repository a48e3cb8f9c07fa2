package skills

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpath/pkg/career"
	"careerpath/pkg/catalog"
)

type memoryRepo struct {
	vectors  map[uuid.UUID][]Rating
	replaces int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{vectors: make(map[uuid.UUID][]Rating)}
}

func (r *memoryRepo) Replace(ctx context.Context, userID uuid.UUID, ratings []Rating) error {
	r.replaces++
	r.vectors[userID] = ratings
	return nil
}

func (r *memoryRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]Rating, error) {
	return r.vectors[userID], nil
}

func TestSaveMapsLabelsToRanks(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, catalog.Default())
	userID := uuid.New()

	vector, err := svc.Save(context.Background(), userID, map[string]string{
		"Database Fundamentals": "Professional",
		"AI ML":                 "Not Interested",
		"Networking":            "Average",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"Database Fundamentals": 6,
		"AI ML":                 0,
		"Networking":            3,
	}, vector)

	stored, err := svc.Vector(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, vector, stored)
}

func TestSaveOverwritesPreviousVector(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, catalog.Default())
	userID := uuid.New()

	_, err := svc.Save(context.Background(), userID, map[string]string{"Networking": "Poor"})
	require.NoError(t, err)
	_, err = svc.Save(context.Background(), userID, map[string]string{"Cyber Security": "Excellent"})
	require.NoError(t, err)

	vector, err := svc.Vector(context.Background(), userID)
	require.NoError(t, err)
	// Previous submission is gone, not merged.
	assert.Equal(t, map[string]int{"Cyber Security": 5}, vector)
	assert.Equal(t, 2, repo.replaces)
}

func TestSaveRejectsMalformedSubmissions(t *testing.T) {
	svc := NewService(newMemoryRepo(), catalog.Default())
	userID := uuid.New()

	cases := map[string]map[string]string{
		"empty":         {},
		"unknown skill": {"Time Travel": "Average"},
		"unknown label": {"Networking": "Supreme"},
		"duplicate after normalization": {
			"AI ML": "Average",
			"ai-ml": "Poor",
		},
	}
	for name, labels := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Save(context.Background(), userID, labels)
			assert.ErrorIs(t, err, career.ErrMalformedInput)
		})
	}
}

func TestVectorClampsStoredLevels(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, catalog.Default())
	userID := uuid.New()

	// Rows written by an older schema revision may carry a 1..7 encoding;
	// reads never let an out-of-range rank escape.
	repo.vectors[userID] = []Rating{{Skill: "Networking", Level: 7}}

	vector, err := svc.Vector(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 6, vector["Networking"])
}
