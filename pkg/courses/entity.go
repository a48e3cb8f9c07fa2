package courses

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Course is one learning resource targeted at a career role.
type Course struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Provider    string    `json:"provider"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	TargetRole  string    `json:"targetRole"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Enrollment ties a user to a course they started.
type Enrollment struct {
	UserID      uuid.UUID  `json:"userId"`
	CourseID    uuid.UUID  `json:"courseId"`
	Completed   bool       `json:"completed"`
	StartedAt   time.Time  `json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Course      Course     `json:"course"`
}

var (
	ErrNotFound        = errors.New("course not found")
	ErrAlreadyEnrolled = errors.New("already enrolled")
	ErrNotEnrolled     = errors.New("not enrolled")
)

// Repository persists the course catalog and enrollments.
type Repository interface {
	Create(ctx context.Context, course Course) error
	GetByID(ctx context.Context, id uuid.UUID) (Course, error)
	ListByRole(ctx context.Context, role string) ([]Course, error)

	Enroll(ctx context.Context, userID, courseID uuid.UUID, startedAt time.Time) error
	ListEnrollments(ctx context.Context, userID uuid.UUID) ([]Enrollment, error)
	MarkCompleted(ctx context.Context, userID, courseID uuid.UUID, completedAt time.Time) error
}
