package skills

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"careerpath/pkg/career"
	"careerpath/pkg/catalog"
)

// UseCase maps the form's textual ratings to the canonical rank encoding and
// stores them as the user's current skill vector.
type UseCase interface {
	// Save validates and stores a skill -> level-label map, overwriting any
	// previous vector. A single unknown skill or label rejects the whole
	// submission.
	Save(ctx context.Context, userID uuid.UUID, labels map[string]string) (map[string]int, error)
	// Vector returns the stored skill -> rank map; empty map when the user
	// has not rated yet.
	Vector(ctx context.Context, userID uuid.UUID) (map[string]int, error)
}

type service struct {
	repo Repository
	cat  *catalog.Catalog
}

func NewService(repo Repository, cat *catalog.Catalog) UseCase {
	return &service{repo: repo, cat: cat}
}

func (s *service) Save(ctx context.Context, userID uuid.UUID, labels map[string]string) (map[string]int, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: empty submission", career.ErrMalformedInput)
	}

	// Canonical skill names and catalog order make the stored vector (and
	// anything derived from it) deterministic regardless of map iteration.
	vector := make(map[string]int, len(labels))
	seen := 0
	ratings := make([]Rating, 0, len(labels))
	for _, skill := range s.cat.Skills() {
		label, ok := lookupLabel(labels, skill.Name)
		if !ok {
			continue
		}
		seen++
		rank, ok := s.cat.ParseLevel(label)
		if !ok {
			return nil, fmt.Errorf("%w: unknown proficiency label %q for skill %q", career.ErrMalformedInput, label, skill.Name)
		}
		vector[skill.Name] = rank
		ratings = append(ratings, Rating{Skill: skill.Name, Level: rank})
	}
	if seen != len(labels) {
		for name := range labels {
			if !s.cat.Contains(name) {
				return nil, fmt.Errorf("%w: unknown skill %q", career.ErrMalformedInput, name)
			}
		}
		// Duplicate names after normalization ("AI ML" and "ai-ml").
		return nil, fmt.Errorf("%w: duplicate skill entries in submission", career.ErrMalformedInput)
	}

	if err := s.repo.Replace(ctx, userID, ratings); err != nil {
		return nil, err
	}
	return vector, nil
}

func (s *service) Vector(ctx context.Context, userID uuid.UUID) (map[string]int, error) {
	ratings, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	vector := make(map[string]int, len(ratings))
	for _, r := range ratings {
		vector[r.Skill] = s.cat.Clamp(r.Level)
	}
	return vector, nil
}

// lookupLabel finds the submitted label for a catalog skill, tolerating the
// same formatting variance the catalog itself accepts.
func lookupLabel(labels map[string]string, canonical string) (string, bool) {
	if label, ok := labels[canonical]; ok {
		return label, true
	}
	want := catalog.Normalize(canonical)
	for name, label := range labels {
		if catalog.Normalize(name) == want {
			return label, true
		}
	}
	return "", false
}
