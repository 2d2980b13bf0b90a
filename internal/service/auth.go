package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Dharamchandpatle/RefineryIQ/internal/domain"
	"github.com/Dharamchandpatle/RefineryIQ/internal/security"
)

// UserStore persists user records; identity key is the email.
type UserStore interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// AuthService handles registration, login and token issuance. The token
// is the only authentication artifact; there is no session state.
type AuthService struct {
	users      UserStore
	jwtManager *security.JWTManager
}

// NewAuthService creates a new auth service.
func NewAuthService(users UserStore, jwtManager *security.JWTManager) *AuthService {
	return &AuthService{users: users, jwtManager: jwtManager}
}

// Register creates a new user account. A duplicate email fails with
// domain.ErrEmailTaken; the returned view never carries the hash.
func (s *AuthService) Register(ctx context.Context, input domain.UserCreate) (*domain.User, error) {
	exists, err := s.users.EmailExists(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, domain.ErrEmailTaken
	}

	hashedPassword, err := security.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := input.Role
	if role == "" {
		role = domain.DefaultRole
	}

	user := &domain.User{
		Email:        input.Email,
		FullName:     input.FullName,
		Role:         role,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and issues a signed token. An unknown email
// and a wrong password both fail with domain.ErrInvalidCredentials so
// the response never reveals whether an account exists.
func (s *AuthService) Login(ctx context.Context, input domain.UserLogin) (*domain.Token, error) {
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !security.VerifyPassword(input.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtManager.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &domain.Token{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
	}, nil
}

// Validate checks a token and returns its subject (the user id).
func (s *AuthService) Validate(token string) (string, error) {
	subject, err := s.jwtManager.Validate(token)
	if err != nil {
		return "", domain.ErrInvalidToken
	}
	return subject, nil
}

// GetUserByID retrieves a user by ID; nil when none exists.
func (s *AuthService) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}
