package career

import (
	"context"
	"errors"

	"careerpath/pkg/catalog"
)

// Observation is one historical record from the training dataset: a person
// who ended up in Role rated Skill at Level (canonical 0..6 rank). Read-only
// input to the profile builder.
type Observation struct {
	Role  string `json:"role"`
	Skill string `json:"skill"`
	Level int    `json:"level"`
}

// RankedSkill pairs a skill with its mean level inside one role profile.
type RankedSkill struct {
	Skill string  `json:"skill"`
	Mean  float64 `json:"mean"`
}

// Profile is the per-role aggregate derived from observations: the mean
// recorded level for every catalog skill plus the role's most defining
// skills. Means cover the whole catalog; skills with no observations carry
// the scale midpoint.
type Profile struct {
	Role      string             `json:"role"`
	Means     map[string]float64 `json:"means"`
	TopSkills []RankedSkill      `json:"topSkills"`
}

// SkillGap is one row of a gap report.
type SkillGap struct {
	Skill         string           `json:"skill"`
	Category      catalog.Category `json:"category"`
	UserLevel     int              `json:"userLevel"`
	RequiredLevel int              `json:"requiredLevel"`
	RequiredMean  float64          `json:"requiredMean"`
	Gap           int              `json:"gap"`
}

// Report is the outcome of evaluating one user vector against one role
// profile. It is recomputed on demand and never stored as its own entity.
type Report struct {
	Role      string     `json:"role"`
	Skills    []SkillGap `json:"skills"`
	ToImprove int        `json:"toImprove"`
}

var (
	// ErrMalformedInput marks an observation or rating that cannot be mapped
	// to a known skill or a valid rank. The whole batch fails: silently
	// dropping a record would bias every mean computed from it.
	ErrMalformedInput = errors.New("malformed skill input")

	// ErrUnknownRole is returned when a gap report is requested for a role
	// absent from the historical dataset.
	ErrUnknownRole = errors.New("unknown career role")
)

// ObservationSource supplies the historical dataset already parsed into
// (role, skill, level) triples.
type ObservationSource interface {
	ListAll(ctx context.Context) ([]Observation, error)
}

// ProfileCache lets the hosting service memoize built profiles keyed by a
// content fingerprint of the observation stream. The builder itself stays
// pure; caching is strictly a host concern.
type ProfileCache interface {
	Get(ctx context.Context, fingerprint string) (map[string]Profile, error)
	Put(ctx context.Context, fingerprint string, profiles map[string]Profile) error
}
