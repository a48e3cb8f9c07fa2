package users

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpath/pkg/auth"
)

type memoryUserRepo struct {
	users map[uuid.UUID]auth.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[uuid.UUID]auth.User)}
}

func (r *memoryUserRepo) Create(_ context.Context, user auth.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memoryUserRepo) GetByEmail(_ context.Context, email string) (auth.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return auth.User{}, auth.ErrNotFound
}

func (r *memoryUserRepo) GetByID(_ context.Context, id uuid.UUID) (auth.User, error) {
	u, ok := r.users[id]
	if !ok {
		return auth.User{}, auth.ErrNotFound
	}
	return u, nil
}

func (r *memoryUserRepo) Update(_ context.Context, user auth.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return auth.ErrNotFound
	}
	r.users[user.ID] = user
	return nil
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestUpdatePartialFields(t *testing.T) {
	repo := newMemoryUserRepo()
	id := uuid.New()
	repo.users[id] = auth.User{ID: id, Name: "Dana", Email: "dana@example.com", Age: 25, Designation: "Student"}
	svc := NewService(repo)

	updated, err := svc.Update(context.Background(), id, UpdateInput{
		Age:         intPtr(26),
		Designation: strPtr("Professional"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Dana", updated.Name)
	assert.Equal(t, 26, updated.Age)
	assert.Equal(t, "Professional", updated.Designation)
	assert.Equal(t, "dana@example.com", updated.Email)
}

func TestUpdateValidation(t *testing.T) {
	repo := newMemoryUserRepo()
	id := uuid.New()
	repo.users[id] = auth.User{ID: id, Name: "Dana", Email: "dana@example.com", Age: 25, Designation: "Student"}
	svc := NewService(repo)

	tests := []struct {
		name  string
		input UpdateInput
	}{
		{"blank name", UpdateInput{Name: strPtr("   ")}},
		{"age too low", UpdateInput{Age: intPtr(12)}},
		{"age too high", UpdateInput{Age: intPtr(101)}},
		{"unknown designation", UpdateInput{Designation: strPtr("Wizard")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(context.Background(), id, tt.input)
			assert.ErrorIs(t, err, auth.ErrInvalidInput)
		})
	}

	// Failed updates must not leak partial changes.
	current, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 25, current.Age)
	assert.Equal(t, "Student", current.Designation)
}

func TestUpdateUnknownUser(t *testing.T) {
	svc := NewService(newMemoryUserRepo())
	_, err := svc.Update(context.Background(), uuid.New(), UpdateInput{Name: strPtr("Dana")})
	assert.ErrorIs(t, err, auth.ErrNotFound)
}
