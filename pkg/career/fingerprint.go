package career

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Fingerprint computes a content hash of the observation stream. The hosting
// service uses it as the cache key for built profiles: any change to the
// dataset (including duplicated rows, which legitimately shift means)
// produces a different key.
func Fingerprint(observations []Observation) string {
	h := sha256.New()
	for _, o := range observations {
		fmt.Fprintf(h, "%s\x00%s\x00%d\n", o.Role, o.Skill, o.Level)
	}
	return hex.EncodeToString(h.Sum(nil))
}
