package career

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	observations []Observation
	calls        int
}

func (f *fakeSource) ListAll(ctx context.Context) ([]Observation, error) {
	f.calls++
	return f.observations, nil
}

type memoryCache struct {
	entries map[string]map[string]Profile
	puts    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]map[string]Profile)}
}

func (m *memoryCache) Get(ctx context.Context, fp string) (map[string]Profile, error) {
	return m.entries[fp], nil
}

func (m *memoryCache) Put(ctx context.Context, fp string, profiles map[string]Profile) error {
	m.puts++
	m.entries[fp] = profiles
	return nil
}

func TestServiceRolesSortedAndCached(t *testing.T) {
	cat := testCatalog(t)
	src := &fakeSource{observations: []Observation{
		{Role: "Web Developer", Skill: "A", Level: 5},
		{Role: "Analyst", Skill: "B", Level: 4},
	}}
	cache := newMemoryCache()
	svc := NewService(src, cache, cat, 2)

	roles, err := svc.Roles(context.Background())
	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.Equal(t, "Analyst", roles[0].Role)
	assert.Equal(t, "Web Developer", roles[1].Role)
	assert.Len(t, roles[0].TopSkills, 2)

	// Same dataset again: cache hit, single build.
	_, err = svc.Roles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, cache.puts)

	// Dataset change invalidates the fingerprint and triggers a rebuild.
	src.observations = append(src.observations, Observation{Role: "Analyst", Skill: "B", Level: 0})
	_, err = svc.Roles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, cache.puts)
}

func TestServiceGapForUnknownRole(t *testing.T) {
	cat := testCatalog(t)
	svc := NewService(&fakeSource{observations: []Observation{{Role: "X", Skill: "A", Level: 4}}}, nil, cat, 5)

	_, err := svc.GapFor(context.Background(), map[string]int{}, "Astronaut")
	assert.ErrorIs(t, err, ErrUnknownRole)

	report, err := svc.GapFor(context.Background(), map[string]int{"A": 4}, "X")
	require.NoError(t, err)
	assert.Equal(t, 0, report.ToImprove)
}

func TestServiceWorksWithoutCache(t *testing.T) {
	cat := testCatalog(t)
	src := &fakeSource{observations: []Observation{{Role: "X", Skill: "A", Level: 2}}}
	svc := NewService(src, nil, cat, 1)

	_, err := svc.Roles(context.Background())
	require.NoError(t, err)
	_, err = svc.Roles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)
}
