package users

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"careerpath/pkg/auth"
)

// UpdateInput carries the editable profile fields. Nil pointers leave the
// current value untouched; email is immutable.
type UpdateInput struct {
	Name        *string
	Age         *int
	Designation *string
}

// UseCase exposes own-profile reads and updates.
type UseCase interface {
	Get(ctx context.Context, userID uuid.UUID) (auth.User, error)
	Update(ctx context.Context, userID uuid.UUID, input UpdateInput) (auth.User, error)
}

type service struct {
	repo auth.UserRepository
}

func NewService(repo auth.UserRepository) UseCase {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context, userID uuid.UUID) (auth.User, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *service) Update(ctx context.Context, userID uuid.UUID, input UpdateInput) (auth.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return auth.User{}, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return auth.User{}, fmt.Errorf("%w: name is required", auth.ErrInvalidInput)
		}
		user.Name = name
	}
	if input.Age != nil {
		if *input.Age < 13 || *input.Age > 100 {
			return auth.User{}, fmt.Errorf("%w: age must be between 13 and 100", auth.ErrInvalidInput)
		}
		user.Age = *input.Age
	}
	if input.Designation != nil {
		if !auth.ValidDesignation(*input.Designation) {
			return auth.User{}, fmt.Errorf("%w: unknown designation %q", auth.ErrInvalidInput, *input.Designation)
		}
		user.Designation = *input.Designation
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return auth.User{}, err
	}
	return user, nil
}
