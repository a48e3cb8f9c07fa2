package catalog

import (
	"regexp"
	"strings"
)

var (
	reNonWord = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	reSpaces  = regexp.MustCompile(`\s+`)
)

// Normalize lowers a skill or level name and collapses punctuation/whitespace
// so that lookups tolerate the formatting differences external feeds produce
// ("AI ML" vs "ai-ml" vs "Ai  Ml").
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = reNonWord.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
