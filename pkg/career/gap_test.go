package career

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpath/pkg/catalog"
)

func TestEvaluateGapScenario(t *testing.T) {
	cat := testCatalog(t)
	obs := []Observation{
		{Role: "X", Skill: "A", Level: 4},
		{Role: "X", Skill: "A", Level: 4},
		{Role: "X", Skill: "B", Level: 2},
	}
	profiles, err := BuildProfiles(obs, cat, 2)
	require.NoError(t, err)

	report := EvaluateGap(map[string]int{"A": 2, "B": 2}, profiles["X"], cat)

	require.Len(t, report.Skills, 3)
	assert.Equal(t, "X", report.Role)

	a, b, c := report.Skills[0], report.Skills[1], report.Skills[2]
	assert.Equal(t, SkillGap{Skill: "A", Category: catalog.CategoryDevelopment, UserLevel: 2, RequiredLevel: 4, RequiredMean: 4.0, Gap: 2}, a)
	assert.Equal(t, 0, b.Gap)
	// C missing from the vector: midpoint user level vs midpoint default.
	assert.Equal(t, 3, c.UserLevel)
	assert.Equal(t, 3, c.RequiredLevel)
	assert.Equal(t, 0, c.Gap)

	assert.Equal(t, 1, report.ToImprove)
}

func TestEvaluateGapIdempotent(t *testing.T) {
	cat := testCatalog(t)
	profile := Profile{Role: "X", Means: map[string]float64{"A": 4.6, "B": 1.2, "C": 3.0}}
	user := map[string]int{"A": 1}

	first := EvaluateGap(user, profile, cat)
	second := EvaluateGap(user, profile, cat)
	assert.Equal(t, first, second)
}

func TestEvaluateGapMissingEqualsMidpoint(t *testing.T) {
	cat := testCatalog(t)
	profile := Profile{Role: "X", Means: map[string]float64{"A": 5, "B": 2, "C": 4}}

	empty := EvaluateGap(map[string]int{}, profile, cat)
	explicit := EvaluateGap(map[string]int{"A": 3, "B": 3, "C": 3}, profile, cat)
	assert.Equal(t, explicit, empty)
}

func TestEvaluateGapRoundTripNoImprovements(t *testing.T) {
	cat := testCatalog(t)
	profile := Profile{Role: "X", Means: map[string]float64{"A": 4.4, "B": 1.6, "C": 3.0}}

	// A vector equal to the rounded profile leaves nothing to improve.
	user := map[string]int{}
	for skill, mean := range profile.Means {
		user[skill] = int(math.Round(mean))
	}
	report := EvaluateGap(user, profile, cat)

	assert.Equal(t, 0, report.ToImprove)
	for _, s := range report.Skills {
		assert.LessOrEqual(t, s.Gap, 0, s.Skill)
	}
}

func TestEvaluateGapClampsDriftedMeans(t *testing.T) {
	cat := testCatalog(t)
	// Upstream drift pushing a mean past the scale must not escape the rank
	// range once rounded.
	profile := Profile{Role: "X", Means: map[string]float64{"A": 6.7, "B": -0.9, "C": 3.0}}

	report := EvaluateGap(map[string]int{}, profile, cat)
	assert.Equal(t, 6, report.Skills[0].RequiredLevel)
	assert.Equal(t, 0, report.Skills[1].RequiredLevel)
}

func TestSortByGapAndOnlyGaps(t *testing.T) {
	rows := []SkillGap{
		{Skill: "A", Gap: 0},
		{Skill: "B", Gap: 3},
		{Skill: "C", Gap: 1},
	}

	sorted := SortByGap(rows)
	assert.Equal(t, []string{"B", "C", "A"}, []string{sorted[0].Skill, sorted[1].Skill, sorted[2].Skill})
	// Input order untouched.
	assert.Equal(t, "A", rows[0].Skill)

	gaps := OnlyGaps(rows)
	require.Len(t, gaps, 2)
	assert.Equal(t, "B", gaps[0].Skill)
	assert.Equal(t, "C", gaps[1].Skill)
}
