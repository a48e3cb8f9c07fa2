package skills

import (
	"context"

	"github.com/google/uuid"
)

// Rating is one stored (skill, canonical rank) pair for a user.
type Rating struct {
	Skill string `json:"skill"`
	Level int    `json:"level"`
}

// Repository persists user skill vectors. Replace swaps the whole vector
// atomically: a re-submission overwrites, never appends.
type Repository interface {
	Replace(ctx context.Context, userID uuid.UUID, ratings []Rating) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Rating, error)
}
