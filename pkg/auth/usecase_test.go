package auth

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryUserRepo struct {
	byEmail map[string]User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{byEmail: make(map[string]User)}
}

func (r *memoryUserRepo) Create(ctx context.Context, user User) error {
	key := strings.ToLower(user.Email)
	if _, ok := r.byEmail[key]; ok {
		return ErrUserAlreadyExists
	}
	r.byEmail[key] = user
	return nil
}

func (r *memoryUserRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	u, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *memoryUserRepo) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *memoryUserRepo) Update(ctx context.Context, user User) error {
	r.byEmail[strings.ToLower(user.Email)] = user
	return nil
}

type staticTokens struct{ token string }

func (s staticTokens) Generate(ctx context.Context, user User) (string, error) {
	return s.token, nil
}

func validInput() RegisterInput {
	return RegisterInput{
		Name:        "Ada Lovelace",
		Email:       "Ada@Example.com",
		Age:         28,
		Designation: "Professional",
		Password:    "correct-horse",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewAuthService(repo, staticTokens{token: "tok"})

	res, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, "tok", res.Token)
	assert.Equal(t, "ada@example.com", res.User.Email)
	assert.NotEqual(t, "correct-horse", res.User.PasswordHash)

	login, err := svc.Login(context.Background(), "ada@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, login.User.ID)

	_, err = svc.Login(context.Background(), "ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody@example.com", "correct-horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newMemoryUserRepo(), staticTokens{})

	_, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), validInput())
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegisterValidation(t *testing.T) {
	svc := NewAuthService(newMemoryUserRepo(), staticTokens{})

	mutate := map[string]func(*RegisterInput){
		"blank name":        func(in *RegisterInput) { in.Name = "   " },
		"bad email":         func(in *RegisterInput) { in.Email = "not-an-email" },
		"too young":         func(in *RegisterInput) { in.Age = 12 },
		"implausible age":   func(in *RegisterInput) { in.Age = 250 },
		"bad designation":   func(in *RegisterInput) { in.Designation = "Wizard" },
		"short password":    func(in *RegisterInput) { in.Password = "short" },
	}
	for name, f := range mutate {
		t.Run(name, func(t *testing.T) {
			in := validInput()
			f(&in)
			_, err := svc.Register(context.Background(), in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
