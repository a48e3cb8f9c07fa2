package career

import (
	"context"
	"sort"

	"careerpath/pkg/catalog"
)

// RoleOverview is the list-view shape for one career role.
type RoleOverview struct {
	Role      string        `json:"role"`
	TopSkills []RankedSkill `json:"topSkills"`
}

// UseCase exposes career-profile reads and on-demand gap evaluation.
type UseCase interface {
	Roles(ctx context.Context) ([]RoleOverview, error)
	ProfileFor(ctx context.Context, role string) (Profile, error)
	GapFor(ctx context.Context, userSkills map[string]int, role string) (Report, error)
}

type service struct {
	source ObservationSource
	cache  ProfileCache
	cat    *catalog.Catalog
	topN   int
}

// NewService wires the profile builder to the historical dataset. cache may
// be nil, in which case profiles are rebuilt on every call.
func NewService(source ObservationSource, cache ProfileCache, cat *catalog.Catalog, topN int) UseCase {
	return &service{source: source, cache: cache, cat: cat, topN: topN}
}

// profiles loads the dataset and returns built profiles, going through the
// fingerprint-keyed cache when one is configured. Cache failures fall back
// to a fresh build; only dataset or input errors propagate.
func (s *service) profiles(ctx context.Context) (map[string]Profile, error) {
	observations, err := s.source.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var fp string
	if s.cache != nil {
		fp = Fingerprint(observations)
		if cached, err := s.cache.Get(ctx, fp); err == nil && cached != nil {
			return cached, nil
		}
	}

	profiles, err := BuildProfiles(observations, s.cat, s.topN)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Put(ctx, fp, profiles)
	}
	return profiles, nil
}

func (s *service) Roles(ctx context.Context) ([]RoleOverview, error) {
	profiles, err := s.profiles(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]RoleOverview, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, RoleOverview{Role: p.Role, TopSkills: p.TopSkills})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Role < out[j].Role })
	return out, nil
}

func (s *service) ProfileFor(ctx context.Context, role string) (Profile, error) {
	profiles, err := s.profiles(ctx)
	if err != nil {
		return Profile{}, err
	}
	p, ok := profiles[role]
	if !ok {
		return Profile{}, ErrUnknownRole
	}
	return p, nil
}

func (s *service) GapFor(ctx context.Context, userSkills map[string]int, role string) (Report, error) {
	p, err := s.ProfileFor(ctx, role)
	if err != nil {
		return Report{}, err
	}
	return EvaluateGap(userSkills, p, s.cat), nil
}
