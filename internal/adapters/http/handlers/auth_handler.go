package handlers

import (
	"errors"
	"strings"

	"github.com/Omulosi/iReporter/internal/adapters/http/middleware"
	"github.com/Omulosi/iReporter/internal/core/domain"
	"github.com/Omulosi/iReporter/internal/core/services"
	"github.com/Omulosi/iReporter/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignUpRequest represents signup request body
type SignUpRequest struct {
	Username    string `json:"username" form:"username"`
	Password    string `json:"password" form:"password"`
	Email       string `json:"email" form:"email"`
	FirstName   string `json:"firstname" form:"firstname"`
	LastName    string `json:"lastname" form:"lastname"`
	OtherNames  string `json:"othernames" form:"othernames"`
	PhoneNumber string `json:"phone_number" form:"phone_number"`
}

// LoginRequest represents login request body
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// SignUp handles user registration
// @Summary Sign up a new user
// @Description Register a new user and return a fresh access/refresh token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body SignUpRequest true "Signup data"
// @Success 201 {object} response.DataResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Username == "" {
		return response.BadRequest(c, "Username is required")
	}
	if req.Password == "" {
		return response.BadRequest(c, "Password is required")
	}

	input := &services.SignUpInput{
		Username:    strings.TrimSpace(req.Username),
		Password:    req.Password,
		Email:       strings.TrimSpace(req.Email),
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		OtherNames:  strings.TrimSpace(req.OtherNames),
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
	}

	result, err := h.authService.SignUp(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidUsername),
			errors.Is(err, domain.ErrInvalidPassword),
			errors.Is(err, domain.ErrInvalidEmail):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, domain.ErrUserAlreadyExists):
			return response.Conflict(c, "Username already exists")
		default:
			return response.InternalServerError(c, "Failed to sign up user")
		}
	}

	return response.Created(c, []fiber.Map{{
		"user":          result.User,
		"access_token":  result.AccessToken,
		"refresh_token": result.RefreshToken,
	}})
}

// Login handles user login
// @Summary Login
// @Description Authenticate a user and return a fresh access/refresh token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} response.DataResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Username == "" {
		return response.BadRequest(c, "Username is required")
	}
	if req.Password == "" {
		return response.BadRequest(c, "Password is required")
	}

	result, err := h.authService.Login(c.Context(), strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return response.Unauthorized(c, "Invalid username or password")
		}
		return response.InternalServerError(c, "Failed to login")
	}

	return response.Success(c, []fiber.Map{{
		"user":          result.User,
		"access_token":  result.AccessToken,
		"refresh_token": result.RefreshToken,
	}})
}

// Refresh handles access token renewal
// @Summary Refresh access token
// @Description Mint a new (non-fresh) access token from a refresh token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.DataResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	claims := middleware.TokenClaims(c)

	accessToken, err := h.authService.Refresh(c.Context(), claims)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.Unauthorized(c, "Unknown token identity")
		}
		return response.InternalServerError(c, "Failed to refresh token")
	}

	return response.Success(c, []fiber.Map{{
		"access_token": accessToken,
	}})
}

// Logout revokes the presented token by blacklisting its jti. Wired for
// both the access logout and the refresh logout endpoints; the guard
// decides which family is acceptable.
// @Summary Logout
// @Description Revoke the presented token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.DataResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/logout [delete]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims := middleware.TokenClaims(c)

	if err := h.authService.RevokeToken(c.Context(), claims); err != nil {
		return response.InternalServerError(c, "Failed to revoke token")
	}

	return response.Success(c, []fiber.Map{{
		"message": "Successfully logged out",
	}})
}
