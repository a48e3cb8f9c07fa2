package courses

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UseCase covers role-targeted course recommendations and the user's own
// enrollments.
type UseCase interface {
	RecommendedFor(ctx context.Context, role string) ([]Course, error)
	Enroll(ctx context.Context, userID, courseID uuid.UUID) error
	MyCourses(ctx context.Context, userID uuid.UUID) ([]Enrollment, error)
	Complete(ctx context.Context, userID, courseID uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase {
	return &service{repo: repo}
}

func (s *service) RecommendedFor(ctx context.Context, role string) ([]Course, error) {
	return s.repo.ListByRole(ctx, role)
}

// Enroll is idempotent from the caller's perspective: enrolling twice
// surfaces ErrAlreadyEnrolled rather than duplicating rows.
func (s *service) Enroll(ctx context.Context, userID, courseID uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, courseID); err != nil {
		return err
	}
	return s.repo.Enroll(ctx, userID, courseID, time.Now().UTC())
}

func (s *service) MyCourses(ctx context.Context, userID uuid.UUID) ([]Enrollment, error) {
	return s.repo.ListEnrollments(ctx, userID)
}

func (s *service) Complete(ctx context.Context, userID, courseID uuid.UUID) error {
	return s.repo.MarkCompleted(ctx, userID, courseID, time.Now().UTC())
}
