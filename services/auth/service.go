// Package auth handles registration, credential checks and token issuance.
// Passwords are stored as bcrypt hashes; sessions are stateless HS256 JWTs.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"travel-booking/models/user"
	authTypes "travel-booking/types/auth"
)

var (
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserRepository is the persistence contract for accounts. Missing rows are
// reported as (nil, nil).
type UserRepository interface {
	ByEmail(ctx context.Context, email string) (*user.User, error)
	Create(ctx context.Context, u *user.User) error
}

type Service struct {
	users  UserRepository
	secret []byte
	expiry time.Duration
}

func NewService(users UserRepository, secret string, expiry time.Duration) *Service {
	return &Service{users: users, secret: []byte(secret), expiry: expiry}
}

// Register creates a Customer account and returns it with a fresh token.
// Role is never taken from the request.
func (s *Service) Register(ctx context.Context, in authTypes.RegisterRequest) (*user.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	existing, err := s.users.ByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("look up email: %w", err)
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	u := &user.User{
		Uuid:         uuid.NewString(),
		Email:        email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: string(hash),
		Role:         user.RoleCustomer,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.GenerateToken(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Login verifies the credentials and returns the account with a fresh token.
// Unknown email, wrong password and deactivated accounts all surface the
// same error.
func (s *Service) Login(ctx context.Context, in authTypes.LoginRequest) (*user.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	u, err := s.users.ByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("look up email: %w", err)
	}
	if u == nil || !u.IsActive {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.GenerateToken(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// GenerateToken signs an HS256 JWT carrying the identity and role claims the
// middleware needs.
func (s *Service) GenerateToken(u *user.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   fmt.Sprintf("%d", u.ID),
		"uuid":  u.Uuid,
		"email": u.Email,
		"name":  u.FullName(),
		"role":  u.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(s.expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
