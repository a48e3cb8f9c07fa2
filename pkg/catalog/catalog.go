package catalog

import (
	"errors"
	"fmt"
)

// Category groups related skills for presentation purposes.
type Category string

const (
	CategoryCoreTechnical Category = "Core Technical"
	CategoryDevelopment   Category = "Development"
	CategorySecurity      Category = "Security"
	CategoryCreative      Category = "Creative & Professional"
)

// Skill is one named competency area users rate themselves on.
type Skill struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
}

// Levels is the fixed proficiency scale, in increasing order. The canonical
// numeric encoding of a level is its zero-based index in this slice; no other
// encoding is valid inside the service. External encodings (storage rows,
// classifier features) convert through ParseLevel/LevelLabel at the boundary.
var Levels = []string{
	"Not Interested",
	"Poor",
	"Beginner",
	"Average",
	"Intermediate",
	"Excellent",
	"Professional",
}

var ErrEmptyCatalog = errors.New("skill catalog is empty")

// Catalog is the static, process-wide skill registry. It is built once at
// startup and never mutated afterwards, so it is safe for concurrent reads.
type Catalog struct {
	skills     []Skill
	index      map[string]int // normalized name -> position
	levelIndex map[string]int // normalized label -> rank
}

// New builds a catalog from an ordered skill list. The order matters: it must
// match the feature order the external classifier was trained with, and it is
// the tie-break order for profile rankings.
func New(skills []Skill) (*Catalog, error) {
	if len(skills) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		skills:     make([]Skill, len(skills)),
		index:      make(map[string]int, len(skills)),
		levelIndex: make(map[string]int, len(Levels)),
	}
	copy(c.skills, skills)
	for i, s := range skills {
		key := Normalize(s.Name)
		if key == "" {
			return nil, fmt.Errorf("skill %d has empty name", i)
		}
		if _, dup := c.index[key]; dup {
			return nil, fmt.Errorf("duplicate skill %q", s.Name)
		}
		c.index[key] = i
	}
	for i, l := range Levels {
		c.levelIndex[Normalize(l)] = i
	}
	return c, nil
}

// Default returns the catalog the bundled classifier was trained against.
// Skill order mirrors the model's feature order exactly.
func Default() *Catalog {
	c, err := New([]Skill{
		{Name: "Database Fundamentals", Category: CategoryCoreTechnical},
		{Name: "Computer Architecture", Category: CategoryCoreTechnical},
		{Name: "Distributed Computing Systems", Category: CategoryCoreTechnical},
		{Name: "Cyber Security", Category: CategorySecurity},
		{Name: "Networking", Category: CategoryCoreTechnical},
		{Name: "Software Development", Category: CategoryDevelopment},
		{Name: "Programming Skills", Category: CategoryDevelopment},
		{Name: "Project Management", Category: CategoryCreative},
		{Name: "Computer Forensics Fundamentals", Category: CategorySecurity},
		{Name: "Technical Communication", Category: CategoryCreative},
		{Name: "AI ML", Category: CategoryDevelopment},
		{Name: "Software Engineering", Category: CategoryDevelopment},
		{Name: "Business Analysis", Category: CategoryCreative},
		{Name: "Communication skills", Category: CategoryCreative},
		{Name: "Data Science", Category: CategoryDevelopment},
		{Name: "Troubleshooting skills", Category: CategorySecurity},
		{Name: "Graphics Designing", Category: CategoryCreative},
	})
	if err != nil {
		panic(err) // static data, cannot fail
	}
	return c
}

// Skills returns the ordered skill list as a defensive copy.
func (c *Catalog) Skills() []Skill {
	out := make([]Skill, len(c.skills))
	copy(out, c.skills)
	return out
}

// Names returns the ordered skill names (classifier feature order).
func (c *Catalog) Names() []string {
	out := make([]string, len(c.skills))
	for i, s := range c.skills {
		out[i] = s.Name
	}
	return out
}

func (c *Catalog) Len() int { return len(c.skills) }

// Index resolves a skill name (matching is case- and punctuation-insensitive)
// to its catalog position.
func (c *Catalog) Index(name string) (int, bool) {
	i, ok := c.index[Normalize(name)]
	return i, ok
}

func (c *Catalog) Contains(name string) bool {
	_, ok := c.Index(name)
	return ok
}

// CategoryOf reports the category of a known skill.
func (c *Catalog) CategoryOf(name string) (Category, bool) {
	i, ok := c.Index(name)
	if !ok {
		return "", false
	}
	return c.skills[i].Category, true
}

// MatchesFeatureOrder reports whether the given feature names line up with
// the catalog, position by position. Matching tolerates the same formatting
// variance as Index.
func (c *Catalog) MatchesFeatureOrder(features []string) bool {
	if len(features) != len(c.skills) {
		return false
	}
	for i, f := range features {
		if Normalize(f) != Normalize(c.skills[i].Name) {
			return false
		}
	}
	return true
}

// ParseLevel maps a textual proficiency label to its canonical rank.
func (c *Catalog) ParseLevel(label string) (int, bool) {
	r, ok := c.levelIndex[Normalize(label)]
	return r, ok
}

// LevelLabel returns the textual label for a rank, clamping out-of-range
// input into the valid scale.
func (c *Catalog) LevelLabel(rank int) string {
	return Levels[c.Clamp(rank)]
}

// Midpoint is the neutral default rank used wherever a skill has no recorded
// level ("Average" on the default scale).
func (c *Catalog) Midpoint() int { return len(Levels) / 2 }

// MaxRank is the highest valid rank (len(Levels)-1).
func (c *Catalog) MaxRank() int { return len(Levels) - 1 }

// Clamp forces a rank into the valid [0, MaxRank] range.
func (c *Catalog) Clamp(rank int) int {
	if rank < 0 {
		return 0
	}
	if rank > c.MaxRank() {
		return c.MaxRank()
	}
	return rank
}
