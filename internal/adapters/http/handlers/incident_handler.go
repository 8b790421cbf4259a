package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Omulosi/iReporter/internal/adapters/http/middleware"
	"github.com/Omulosi/iReporter/internal/adapters/persistence/models"
	"github.com/Omulosi/iReporter/internal/core/domain"
	"github.com/Omulosi/iReporter/internal/core/services"
	"github.com/Omulosi/iReporter/internal/pkg/pagination"
	"github.com/Omulosi/iReporter/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// IncidentHandler handles incident record endpoints
type IncidentHandler struct {
	incidentService *services.IncidentService
}

// NewIncidentHandler creates a new incident handler
func NewIncidentHandler(incidentService *services.IncidentService) *IncidentHandler {
	return &IncidentHandler{incidentService: incidentService}
}

// CreateIncidentRequest represents incident creation request body
type CreateIncidentRequest struct {
	Location string   `json:"location" form:"location"`
	Comment  string   `json:"comment" form:"comment"`
	Images   []string `json:"images"`
	Videos   []string `json:"videos"`
}

// UpdateFieldRequest carries the new value for a single-field update
type UpdateFieldRequest struct {
	Location string `json:"location" form:"location"`
	Comment  string `json:"comment" form:"comment"`
	Status   string `json:"status" form:"status"`
}

func (r *UpdateFieldRequest) value(field string) string {
	switch field {
	case services.FieldLocation:
		return r.Location
	case services.FieldComment:
		return r.Comment
	case services.FieldStatus:
		return r.Status
	}
	return ""
}

// Create handles incident record creation
// @Summary Create an incident record
// @Description Create a red-flag or intervention record (fresh access token required)
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param incident_type path string true "Incident type" Enums(red-flags, interventions)
// @Param body body CreateIncidentRequest true "Incident data"
// @Success 201 {object} response.DataResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /{incident_type} [post]
func (h *IncidentHandler) Create(c *fiber.Ctx) error {
	var req CreateIncidentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	incidentType := middleware.IncidentType(c)
	user := middleware.CurrentUser(c)

	input := &services.CreateIncidentInput{
		Type:      incidentType,
		Location:  req.Location,
		Comment:   req.Comment,
		Images:    req.Images,
		Videos:    req.Videos,
		CreatedBy: user.ID,
	}

	incident, err := h.incidentService.Create(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidLocation),
			errors.Is(err, domain.ErrInvalidComment):
			return response.BadRequest(c, err.Error())
		default:
			return response.InternalServerError(c, "Failed to create record")
		}
	}

	c.Set("Location", incident.URI)
	return response.Created(c, []fiber.Map{{
		"id":      incident.ID,
		"message": fmt.Sprintf("Created %s record", incidentType),
		"uri":     incident.URI,
	}})
}

// List handles listing incident records of a type
// @Summary List incident records
// @Description Get a paginated list of records of the given type, newest first
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param incident_type path string true "Incident type" Enums(red-flags, interventions)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.DataResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /{incident_type} [get]
func (h *IncidentHandler) List(c *fiber.Ctx) error {
	incidentType := middleware.IncidentType(c)
	params := pagination.GetParams(c)

	incidents, total, err := h.incidentService.List(c.Context(), incidentType, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list records")
	}

	return c.JSON(fiber.Map{
		"status": fiber.StatusOK,
		"data":   toResponses(incidents),
		"meta":   pagination.GetMeta(params, total),
	})
}

// Get handles fetching a single incident record
// @Summary Get an incident record
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param incident_type path string true "Incident type" Enums(red-flags, interventions)
// @Param id path int true "Record ID"
// @Success 200 {object} response.DataResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /{incident_type}/{id} [get]
func (h *IncidentHandler) Get(c *fiber.Ctx) error {
	incidentType := middleware.IncidentType(c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "ID should be an integer")
	}

	incident, err := h.incidentService.Get(c.Context(), uint(id), incidentType)
	if err != nil {
		if errors.Is(err, domain.ErrIncidentNotFound) {
			return response.NotFound(c, fmt.Sprintf("%s does not exist", incidentType))
		}
		return response.InternalServerError(c, "Failed to get record")
	}

	return response.Success(c, []interface{}{incident.ToResponse()})
}

// Delete handles deleting an incident record. The ownership predicate has
// already loaded the record and verified the caller created it.
// @Summary Delete an incident record
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param incident_type path string true "Incident type" Enums(red-flags, interventions)
// @Param id path int true "Record ID"
// @Success 200 {object} response.DataResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /{incident_type}/{id} [delete]
func (h *IncidentHandler) Delete(c *fiber.Ctx) error {
	incidentType := middleware.IncidentType(c)
	incident := middleware.CurrentIncident(c)

	if err := h.incidentService.Delete(c.Context(), incident.ID); err != nil {
		return response.InternalServerError(c, "Failed to delete record")
	}

	return response.Success(c, []fiber.Map{{
		"id":      incident.ID,
		"message": fmt.Sprintf("%s record has been deleted", incidentType),
	}})
}

// UpdateField handles single-field updates. The field policy predicate
// has already checked ownership (location, comment) or role (status).
// @Summary Update a field of an incident record
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param incident_type path string true "Incident type" Enums(red-flags, interventions)
// @Param id path int true "Record ID"
// @Param field path string true "Field" Enums(location, comment, status)
// @Param body body UpdateFieldRequest true "New value"
// @Success 200 {object} response.DataResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /{incident_type}/{id}/{field} [patch]
func (h *IncidentHandler) UpdateField(c *fiber.Ctx) error {
	incidentType := middleware.IncidentType(c)
	incident := middleware.CurrentIncident(c)
	field := c.Params("field")

	var req UpdateFieldRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.incidentService.UpdateField(c.Context(), incident, field, req.value(field)); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidLocation),
			errors.Is(err, domain.ErrInvalidComment),
			errors.Is(err, domain.ErrInvalidStatus),
			errors.Is(err, domain.ErrInvalidField):
			return response.BadRequest(c, err.Error())
		default:
			return response.InternalServerError(c, "Failed to update record")
		}
	}

	return response.Success(c, []fiber.Map{{
		"id":      incident.ID,
		"message": fmt.Sprintf("Updated %s record's %s", incidentType, field),
	}})
}

// ListByOwner handles listing a user's records of a type
// @Summary List a user's incident records
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param incident_type path string true "Incident type" Enums(red-flags, interventions)
// @Success 200 {object} response.DataResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id}/{incident_type} [get]
func (h *IncidentHandler) ListByOwner(c *fiber.Ctx) error {
	incidentType := middleware.IncidentType(c)

	ownerID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "ID should be an integer")
	}

	incidents, err := h.incidentService.ListByOwner(c.Context(), uint(ownerID), incidentType)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to list records")
	}

	return response.Success(c, toResponses(incidents))
}

func toResponses(incidents []*models.Incident) []*models.IncidentResponse {
	responses := make([]*models.IncidentResponse, 0, len(incidents))
	for _, incident := range incidents {
		responses = append(responses, incident.ToResponse())
	}
	return responses
}
