package service

import (
	"context"
	"testing"
	"time"

	"github.com/Dharamchandpatle/RefineryIQ/internal/domain"
	"github.com/Dharamchandpatle/RefineryIQ/internal/security"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(users *MockUserStore) *AuthService {
	return NewAuthService(users, security.NewJWTManager("test-secret-key-with-32-chars!!", 60*time.Minute))
}

func TestRegister(t *testing.T) {
	users := new(MockUserStore)
	users.On("EmailExists", mock.Anything, "op@refinery.example").Return(false, nil)
	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.User).ID = "64f1c0ffee64f1c0ffee64f1"
	})

	svc := newTestAuthService(users)
	user, err := svc.Register(context.Background(), domain.UserCreate{
		Email:    "op@refinery.example",
		Password: "plaintext-password",
		FullName: "Shift Operator",
	})
	require.NoError(t, err)

	require.Equal(t, "64f1c0ffee64f1c0ffee64f1", user.ID)
	require.Equal(t, domain.DefaultRole, user.Role)
	require.NotEqual(t, "plaintext-password", user.PasswordHash)
	require.True(t, security.VerifyPassword("plaintext-password", user.PasswordHash))
	require.False(t, security.VerifyPassword("anything else", user.PasswordHash))
	require.False(t, user.CreatedAt.IsZero())
	users.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := new(MockUserStore)
	users.On("EmailExists", mock.Anything, "op@refinery.example").Return(true, nil)

	svc := newTestAuthService(users)
	_, err := svc.Register(context.Background(), domain.UserCreate{
		Email:    "op@refinery.example",
		Password: "plaintext-password",
	})

	require.ErrorIs(t, err, domain.ErrEmailTaken)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin(t *testing.T) {
	hash, err := security.HashPassword("plaintext-password")
	require.NoError(t, err)

	users := new(MockUserStore)
	users.On("GetByEmail", mock.Anything, "op@refinery.example").Return(&domain.User{
		ID:           "64f1c0ffee64f1c0ffee64f1",
		Email:        "op@refinery.example",
		PasswordHash: hash,
	}, nil)

	svc := newTestAuthService(users)
	token, err := svc.Login(context.Background(), domain.UserLogin{
		Email:    "op@refinery.example",
		Password: "plaintext-password",
	})
	require.NoError(t, err)

	require.Equal(t, "bearer", token.TokenType)
	require.Equal(t, int64(3600), token.ExpiresIn)

	subject, err := svc.Validate(token.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "64f1c0ffee64f1c0ffee64f1", subject)
}

func TestLogin_NoAccountExistenceOracle(t *testing.T) {
	hash, err := security.HashPassword("plaintext-password")
	require.NoError(t, err)

	users := new(MockUserStore)
	users.On("GetByEmail", mock.Anything, "known@refinery.example").Return(&domain.User{
		ID:           "64f1c0ffee64f1c0ffee64f1",
		Email:        "known@refinery.example",
		PasswordHash: hash,
	}, nil)
	users.On("GetByEmail", mock.Anything, "unknown@refinery.example").Return(nil, nil)

	svc := newTestAuthService(users)

	_, wrongPassword := svc.Login(context.Background(), domain.UserLogin{
		Email:    "known@refinery.example",
		Password: "wrong",
	})
	_, unknownEmail := svc.Login(context.Background(), domain.UserLogin{
		Email:    "unknown@refinery.example",
		Password: "plaintext-password",
	})

	require.ErrorIs(t, wrongPassword, domain.ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, domain.ErrInvalidCredentials)
	require.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestValidate_Tampered(t *testing.T) {
	svc := newTestAuthService(new(MockUserStore))

	_, err := svc.Validate("not-a-token")
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}
