package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Dharamchandpatle/RefineryIQ/internal/api/middleware"
	"github.com/Dharamchandpatle/RefineryIQ/internal/api/response"
	"github.com/Dharamchandpatle/RefineryIQ/internal/domain"
	"github.com/Dharamchandpatle/RefineryIQ/internal/service"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles user registration
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input domain.UserCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationMessages(err))
		return
	}

	user, err := h.authService.Register(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			response.Conflict(w, "email already registered")
			return
		}
		response.InternalError(w, "failed to register user")
		return
	}

	response.Created(w, user)
}

// Login handles user login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input domain.UserLogin
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationMessages(err))
		return
	}

	token, err := h.authService.Login(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			response.Unauthorized(w, "invalid credentials")
			return
		}
		response.InternalError(w, "failed to log in")
		return
	}

	response.OK(w, token)
}

// Me returns the current authenticated user
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		response.InternalError(w, "failed to load user")
		return
	}
	if user == nil {
		response.Unauthorized(w, "user not found")
		return
	}

	response.OK(w, user)
}

func validationMessages(err error) any {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	messages := make(map[string]string)
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required":
			messages[e.Field()] = "field is required"
		case "email":
			messages[e.Field()] = "invalid email format"
		case "min":
			messages[e.Field()] = "must be at least " + e.Param() + " characters"
		case "max":
			messages[e.Field()] = "must be at most " + e.Param() + " characters"
		default:
			messages[e.Field()] = "validation failed on " + e.Tag()
		}
	}
	return messages
}
