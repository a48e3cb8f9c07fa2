package career

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpath/pkg/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Skill{
		{Name: "A", Category: catalog.CategoryDevelopment},
		{Name: "B", Category: catalog.CategoryDevelopment},
		{Name: "C", Category: catalog.CategorySecurity},
	})
	require.NoError(t, err)
	return c
}

func TestBuildProfilesMeansAndDefaults(t *testing.T) {
	cat := testCatalog(t)
	obs := []Observation{
		{Role: "X", Skill: "A", Level: 4},
		{Role: "X", Skill: "A", Level: 4},
		{Role: "X", Skill: "B", Level: 2},
	}

	profiles, err := BuildProfiles(obs, cat, 2)
	require.NoError(t, err)
	require.Contains(t, profiles, "X")

	p := profiles["X"]
	assert.InDelta(t, 4.0, p.Means["A"], 1e-9)
	assert.InDelta(t, 2.0, p.Means["B"], 1e-9)
	// No observations for C: midpoint default, never a hole.
	assert.InDelta(t, 3.0, p.Means["C"], 1e-9)

	// Top-2 by mean: A (4.0) then C (3.0) beats B (2.0).
	require.Len(t, p.TopSkills, 2)
	assert.Equal(t, "A", p.TopSkills[0].Skill)
	assert.Equal(t, "C", p.TopSkills[1].Skill)
}

func TestBuildProfilesDuplicateShiftsMean(t *testing.T) {
	cat := testCatalog(t)
	base := []Observation{
		{Role: "X", Skill: "A", Level: 2},
		{Role: "X", Skill: "A", Level: 4},
	}

	profiles, err := BuildProfiles(base, cat, 1)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, profiles["X"].Means["A"], 1e-9)

	// No deduplication: repeating a record moves the mean.
	profiles, err = BuildProfiles(append(base, Observation{Role: "X", Skill: "A", Level: 4}), cat, 1)
	require.NoError(t, err)
	assert.InDelta(t, 10.0/3.0, profiles["X"].Means["A"], 1e-9)
}

func TestBuildProfilesEmptyObservations(t *testing.T) {
	cat := testCatalog(t)

	profiles, err := BuildProfiles(nil, cat, 5)
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestBuildProfilesCoversWholeCatalogPerRole(t *testing.T) {
	cat := testCatalog(t)
	obs := []Observation{
		{Role: "X", Skill: "A", Level: 5},
		{Role: "Y", Skill: "C", Level: 1},
	}

	profiles, err := BuildProfiles(obs, cat, 3)
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	for _, p := range profiles {
		assert.Len(t, p.Means, cat.Len())
	}
}

func TestBuildProfilesTieBreakByCatalogOrder(t *testing.T) {
	cat := testCatalog(t)
	obs := []Observation{
		{Role: "X", Skill: "A", Level: 3},
		{Role: "X", Skill: "B", Level: 3},
		{Role: "X", Skill: "C", Level: 3},
	}

	profiles, err := BuildProfiles(obs, cat, 3)
	require.NoError(t, err)

	top := profiles["X"].TopSkills
	require.Len(t, top, 3)
	assert.Equal(t, []string{"A", "B", "C"}, []string{top[0].Skill, top[1].Skill, top[2].Skill})
}

func TestBuildProfilesMalformedInput(t *testing.T) {
	cat := testCatalog(t)

	cases := map[string]Observation{
		"empty role":    {Role: "  ", Skill: "A", Level: 3},
		"unknown skill": {Role: "X", Skill: "Z", Level: 3},
		"level too low": {Role: "X", Skill: "A", Level: -1},
		"level too big": {Role: "X", Skill: "A", Level: 7},
	}
	for name, bad := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := BuildProfiles([]Observation{bad}, cat, 2)
			assert.ErrorIs(t, err, ErrMalformedInput)
		})
	}
}

func TestFingerprintTracksContent(t *testing.T) {
	a := []Observation{{Role: "X", Skill: "A", Level: 4}}
	b := []Observation{{Role: "X", Skill: "A", Level: 4}}

	assert.Equal(t, Fingerprint(a), Fingerprint(b))
	assert.NotEqual(t, Fingerprint(a), Fingerprint(append(b, b[0])))
	assert.NotEqual(t, Fingerprint(a), Fingerprint([]Observation{{Role: "X", Skill: "A", Level: 5}}))
}
