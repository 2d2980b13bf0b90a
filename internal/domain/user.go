package domain

import (
	"errors"
	"time"
)

// Sentinel errors surfaced by the auth service. Handlers map these to
// HTTP status codes; everything else is an internal failure.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// User represents a platform user stored in the users collection.
type User struct {
	ID           string    `json:"id" bson:"-"`
	Email        string    `json:"email" bson:"email"`
	FullName     string    `json:"full_name,omitempty" bson:"full_name,omitempty"`
	Role         string    `json:"role" bson:"role"`
	PasswordHash string    `json:"-" bson:"hashed_password"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// DefaultRole is assigned when registration omits a role.
const DefaultRole = "operator"

// UserCreate represents user registration data.
type UserCreate struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name,omitempty" validate:"omitempty,max=255"`
	Role     string `json:"role,omitempty" validate:"omitempty,max=64"`
}

// UserLogin represents login credentials.
type UserLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Token is the response to a successful login. The token is stateless;
// there is no session store and no revocation list.
type Token struct {
	AccessToken string `json:"token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
