package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	Repository
	byEmail *User
	created *User
	touched bool
}

func (f *fakeRepo) Create(_ context.Context, u *User) error {
	u.ID = "u1"
	u.IsActive = true
	f.created = u
	return nil
}

func (f *fakeRepo) GetByEmail(context.Context, string) (*User, error) {
	if f.byEmail == nil {
		return nil, ErrNotFound
	}
	return f.byEmail, nil
}

func (f *fakeRepo) TouchLastLogin(context.Context, string) error {
	f.touched = true
	return nil
}

type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

func (plainHasher) Compare(hash, plain string) error {
	if hash != "hashed:"+plain {
		return ErrInvalidCredentials
	}
	return nil
}

func TestRegisterValidation(t *testing.T) {
	svc := NewService(&fakeRepo{}, plainHasher{})

	tests := []struct {
		name string
		req  RegisterRequest
		want error
	}{
		{"missing email", RegisterRequest{Password: "longenough", Role: RoleCustomer}, ErrEmailRequired},
		{"short password", RegisterRequest{Email: "a@b.c", Password: "short", Role: RoleCustomer}, ErrPasswordTooShort},
		{"bad role", RegisterRequest{Email: "a@b.c", Password: "longenough", Role: "admin"}, ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, plainHasher{})

	u, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "a@b.c",
		Password: "longenough",
		Role:     RoleProvider,
	})
	require.NoError(t, err)

	assert.Equal(t, "hashed:longenough", u.PasswordHash)
	assert.Equal(t, RoleProvider, u.Role)
	require.NotNil(t, repo.created)
}

func TestAuthenticate(t *testing.T) {
	repo := &fakeRepo{byEmail: &User{
		ID:           "u1",
		Email:        "a@b.c",
		PasswordHash: "hashed:correct",
		Role:         RoleCustomer,
		IsActive:     true,
	}}
	svc := NewService(repo, plainHasher{})

	u, err := svc.Authenticate(context.Background(), "a@b.c", "correct")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.True(t, repo.touched)

	_, err = svc.Authenticate(context.Background(), "a@b.c", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	// An unknown email reads the same as a wrong password to the caller.
	svc := NewService(&fakeRepo{}, plainHasher{})

	_, err := svc.Authenticate(context.Background(), "nobody@b.c", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateInactive(t *testing.T) {
	repo := &fakeRepo{byEmail: &User{
		ID:           "u1",
		PasswordHash: "hashed:correct",
		IsActive:     false,
	}}
	svc := NewService(repo, plainHasher{})

	_, err := svc.Authenticate(context.Background(), "a@b.c", "correct")
	assert.ErrorIs(t, err, ErrInactiveUser)
}
