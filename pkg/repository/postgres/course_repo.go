package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"careerpath/pkg/courses"
)

// CourseRepository stores the course catalog and per-user enrollments.
type CourseRepository struct {
	pool *pgxpool.Pool
}

func NewCourseRepository(pool *pgxpool.Pool) (*CourseRepository, error) {
	r := &CourseRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *CourseRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS courses (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			provider TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			url TEXT NOT NULL DEFAULT '',
			target_role TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_courses_target_role ON courses (target_role);

		CREATE TABLE IF NOT EXISTS user_courses (
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			course_id UUID NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
			completed BOOLEAN NOT NULL DEFAULT FALSE,
			started_at TIMESTAMPTZ NOT NULL,
			completed_at TIMESTAMPTZ,
			PRIMARY KEY (user_id, course_id)
		);
	`)
	return err
}

func (r *CourseRepository) Create(ctx context.Context, course courses.Course) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO courses (id, title, provider, description, url, target_role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, course.ID, course.Title, course.Provider, course.Description, course.URL, course.TargetRole, course.CreatedAt)
	return err
}

func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (courses.Course, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, title, provider, description, url, target_role, created_at
		FROM courses WHERE id = $1
	`, id)
	course, err := scanCourse(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return courses.Course{}, courses.ErrNotFound
		}
		return courses.Course{}, err
	}
	return course, nil
}

func (r *CourseRepository) ListByRole(ctx context.Context, role string) ([]courses.Course, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, provider, description, url, target_role, created_at
		FROM courses WHERE target_role = $1 ORDER BY title
	`, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []courses.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, course)
	}
	return out, rows.Err()
}

func (r *CourseRepository) Enroll(ctx context.Context, userID, courseID uuid.UUID, startedAt time.Time) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO user_courses (user_id, course_id, started_at) VALUES ($1, $2, $3)
	`, userID, courseID, startedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return courses.ErrAlreadyEnrolled
			case "23503": // foreign_key_violation
				return courses.ErrNotFound
			}
		}
		return err
	}
	return nil
}

func (r *CourseRepository) ListEnrollments(ctx context.Context, userID uuid.UUID) ([]courses.Enrollment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT uc.user_id, uc.course_id, uc.completed, uc.started_at, uc.completed_at,
		       c.id, c.title, c.provider, c.description, c.url, c.target_role, c.created_at
		FROM user_courses uc
		JOIN courses c ON c.id = uc.course_id
		WHERE uc.user_id = $1
		ORDER BY uc.started_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []courses.Enrollment
	for rows.Next() {
		var e courses.Enrollment
		var startedAt time.Time
		var completedAt *time.Time
		if err := rows.Scan(
			&e.UserID, &e.CourseID, &e.Completed, &startedAt, &completedAt,
			&e.Course.ID, &e.Course.Title, &e.Course.Provider, &e.Course.Description,
			&e.Course.URL, &e.Course.TargetRole, &e.Course.CreatedAt,
		); err != nil {
			return nil, err
		}
		e.StartedAt = startedAt.UTC()
		if completedAt != nil {
			t := completedAt.UTC()
			e.CompletedAt = &t
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *CourseRepository) MarkCompleted(ctx context.Context, userID, courseID uuid.UUID, completedAt time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE user_courses SET completed = TRUE, completed_at = $3
		WHERE user_id = $1 AND course_id = $2
	`, userID, courseID, completedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return courses.ErrNotEnrolled
	}
	return nil
}

func scanCourse(row pgx.Row) (courses.Course, error) {
	var course courses.Course
	var createdAt time.Time
	if err := row.Scan(&course.ID, &course.Title, &course.Provider, &course.Description, &course.URL, &course.TargetRole, &createdAt); err != nil {
		return courses.Course{}, err
	}
	course.CreatedAt = createdAt.UTC()
	return course, nil
}
