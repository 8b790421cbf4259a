package response

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the uniform error envelope: {"status": ..., "error": ...}
type ErrorResponse struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
}

// DataResponse is the uniform success envelope: {"status": ..., "data": [...]}
type DataResponse struct {
	Status int         `json:"status"`
	Data   interface{} `json:"data"`
}

// Success sends a 200 response with the given data payload
func Success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(DataResponse{
		Status: fiber.StatusOK,
		Data:   data,
	})
}

// Created sends a 201 created response
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(DataResponse{
		Status: fiber.StatusCreated,
		Data:   data,
	})
}

// Error sends an error response with the given status code
func Error(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(ErrorResponse{
		Status: statusCode,
		Error:  message,
	})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// Unauthorized sends a 401 unauthorized response
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

// Forbidden sends a 403 forbidden response
func Forbidden(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusForbidden, message)
}

// NotFound sends a 404 not found response
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

// Conflict sends a 409 conflict response
func Conflict(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusConflict, message)
}

// UnprocessableEntity sends a 422 response, used for well-formed requests
// carrying the wrong kind of token
func UnprocessableEntity(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnprocessableEntity, message)
}

// InternalServerError sends a 500 internal server error response
func InternalServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}
