package career

import (
	"fmt"
	"sort"
	"strings"

	"careerpath/pkg/catalog"
)

// BuildProfiles aggregates historical observations into per-role career
// profiles: for every role seen in the input, the arithmetic mean level of
// each catalog skill, plus the topN skills ranked by descending mean (ties
// broken by catalog order). (Role, skill) pairs with no observations default
// to the scale midpoint so every emitted profile is total over the catalog.
//
// The function is pure: no shared state, no I/O, deterministic for fixed
// inputs. An observation with an empty role, a skill outside the catalog or
// a level outside the valid rank range fails the whole batch with
// ErrMalformedInput.
func BuildProfiles(observations []Observation, cat *catalog.Catalog, topN int) (map[string]Profile, error) {
	type acc struct {
		sum   []float64
		count []int
	}

	byRole := make(map[string]*acc)
	for i, o := range observations {
		role := strings.TrimSpace(o.Role)
		if role == "" {
			return nil, fmt.Errorf("%w: observation %d has empty role", ErrMalformedInput, i)
		}
		idx, ok := cat.Index(o.Skill)
		if !ok {
			return nil, fmt.Errorf("%w: observation %d references unknown skill %q", ErrMalformedInput, i, o.Skill)
		}
		if o.Level < 0 || o.Level > cat.MaxRank() {
			return nil, fmt.Errorf("%w: observation %d has level %d outside 0..%d", ErrMalformedInput, i, o.Level, cat.MaxRank())
		}
		a := byRole[role]
		if a == nil {
			a = &acc{sum: make([]float64, cat.Len()), count: make([]int, cat.Len())}
			byRole[role] = a
		}
		a.sum[idx] += float64(o.Level)
		a.count[idx]++
	}

	names := cat.Names()
	midpoint := float64(cat.Midpoint())

	profiles := make(map[string]Profile, len(byRole))
	for role, a := range byRole {
		means := make(map[string]float64, cat.Len())
		ranked := make([]RankedSkill, cat.Len())
		for i, name := range names {
			m := midpoint
			if a.count[i] > 0 {
				m = a.sum[i] / float64(a.count[i])
			}
			means[name] = m
			ranked[i] = RankedSkill{Skill: name, Mean: m}
		}
		// Stable sort over catalog-ordered input: equal means keep catalog
		// order, which makes the top-N selection deterministic.
		sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Mean > ranked[j].Mean })
		n := topN
		if n < 0 {
			n = 0
		}
		if n > len(ranked) {
			n = len(ranked)
		}
		profiles[role] = Profile{
			Role:      role,
			Means:     means,
			TopSkills: ranked[:n:n],
		}
	}
	return profiles, nil
}
