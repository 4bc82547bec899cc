package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-booking/models/user"
	"travel-booking/services/auth"
	authTypes "travel-booking/types/auth"
)

// fakeUserRepo is a hand-written in-memory double for auth.UserRepository.
type fakeUserRepo struct {
	nextID uint
	users  map[string]*user.User
}

var _ auth.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*user.User)}
}

func (f *fakeUserRepo) ByEmail(ctx context.Context, email string) (*user.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	f.nextID++
	u.ID = f.nextID
	copied := *u
	f.users[u.Email] = &copied
	return nil
}

const testSecret = "test-secret-not-for-production"

func newService() (*auth.Service, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return auth.NewService(repo, testSecret, time.Hour), repo
}

func registerRequest() authTypes.RegisterRequest {
	return authTypes.RegisterRequest{
		Email:           "jamie@example.com",
		FirstName:       "Jamie",
		LastName:        "Doe",
		Password:        "correct horse battery",
		ConfirmPassword: "correct horse battery",
	}
}

func TestRegisterCreatesCustomerWithHashedPassword(t *testing.T) {
	svc, repo := newService()

	created, token, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, token)

	assert.Equal(t, user.RoleCustomer, created.Role)
	assert.NotEmpty(t, created.Uuid)
	assert.True(t, created.IsActive)
	assert.NotEqual(t, "correct horse battery", created.PasswordHash)

	stored := repo.users["jamie@example.com"]
	require.NotNil(t, stored)
	assert.Equal(t, created.ID, stored.ID)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, registerRequest())
	assert.ErrorIs(t, err, auth.ErrEmailTaken)
}

func TestRegisterNormalizesEmail(t *testing.T) {
	svc, repo := newService()

	req := registerRequest()
	req.Email = "  Jamie@Example.COM "
	created, _, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "jamie@example.com", created.Email)
	assert.NotNil(t, repo.users["jamie@example.com"])
}

func TestLoginRoundTrip(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	u, token, err := svc.Login(ctx, authTypes.LoginRequest{
		Email:    "jamie@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, "jamie@example.com", u.Email)
	assert.NotEmpty(t, token)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, authTypes.LoginRequest{
		Email:    "jamie@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginRejectsUnknownEmailAndInactiveAccount(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()

	_, _, err := svc.Login(ctx, authTypes.LoginRequest{Email: "nobody@example.com", Password: "x"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, _, err = svc.Register(ctx, registerRequest())
	require.NoError(t, err)
	repo.users["jamie@example.com"].IsActive = false

	_, _, err = svc.Login(ctx, authTypes.LoginRequest{
		Email:    "jamie@example.com",
		Password: "correct horse battery",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestGeneratedTokenCarriesIdentityClaims(t *testing.T) {
	svc, _ := newService()

	created, token, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "1", claims["sub"])
	assert.Equal(t, created.Uuid, claims["uuid"])
	assert.Equal(t, "jamie@example.com", claims["email"])
	assert.Equal(t, "Jamie Doe", claims["name"])
	assert.Equal(t, user.RoleCustomer, claims["role"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.Greater(t, exp, float64(time.Now().Unix()))
}
