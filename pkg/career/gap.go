package career

import (
	"math"
	"sort"

	"careerpath/pkg/catalog"
)

// EvaluateGap compares one user's skill vector against a role profile and
// returns a per-skill gap report in catalog order. Skills absent from the
// vector count as the scale midpoint, mirroring how the profile builder
// treats missing observations, so gaps stay symmetric. The required level is
// the rounded mean clamped into the valid rank range, which protects against
// floating-point drift in upstream aggregation.
//
// The evaluation is deterministic and side-effect free; a report where no
// skill has a positive gap is a normal result meaning the user already meets
// the role's requirements.
func EvaluateGap(userSkills map[string]int, profile Profile, cat *catalog.Catalog) Report {
	midpoint := cat.Midpoint()
	skills := cat.Skills()

	report := Report{
		Role:   profile.Role,
		Skills: make([]SkillGap, 0, len(skills)),
	}
	for _, s := range skills {
		userLevel, ok := userSkills[s.Name]
		if !ok {
			userLevel = midpoint
		}
		userLevel = cat.Clamp(userLevel)

		mean, ok := profile.Means[s.Name]
		if !ok {
			mean = float64(midpoint)
		}
		required := cat.Clamp(int(math.Round(mean)))

		gap := required - userLevel
		if gap > 0 {
			report.ToImprove++
		}
		report.Skills = append(report.Skills, SkillGap{
			Skill:         s.Name,
			Category:      s.Category,
			UserLevel:     userLevel,
			RequiredLevel: required,
			RequiredMean:  mean,
			Gap:           gap,
		})
	}
	return report
}

// SortByGap returns a copy of the gap rows ordered by descending gap, the
// ordering used by the "skills to improve" view. Rows with equal gaps keep
// their catalog order.
func SortByGap(skills []SkillGap) []SkillGap {
	out := make([]SkillGap, len(skills))
	copy(out, skills)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Gap > out[j].Gap })
	return out
}

// OnlyGaps filters a report's rows down to skills the user still has to
// improve, ordered by descending gap.
func OnlyGaps(skills []SkillGap) []SkillGap {
	var out []SkillGap
	for _, s := range SortByGap(skills) {
		if s.Gap > 0 {
			out = append(out, s)
		}
	}
	return out
}
