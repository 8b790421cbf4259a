package handlers

import (
	"github.com/Omulosi/iReporter/internal/adapters/http/middleware"
	"github.com/Omulosi/iReporter/internal/core/services"
	"github.com/Omulosi/iReporter/internal/pkg/pagination"
	"github.com/Omulosi/iReporter/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles user endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Me returns the current user's profile
// @Summary Get current user
// @Description Get the profile of the authenticated user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.DataResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /user [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	return response.Success(c, []interface{}{user.ToResponse()})
}

// List returns all registered users (Admin only)
// @Summary List all users
// @Description Get a paginated list of all registered users (Admin only)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.DataResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	result, err := h.userService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list users")
	}

	return c.JSON(fiber.Map{
		"status": fiber.StatusOK,
		"data":   result.Users,
		"meta":   pagination.GetMeta(params, result.Total),
	})
}
