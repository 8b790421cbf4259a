package middleware

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Omulosi/iReporter/internal/adapters/persistence/models"
	"github.com/Omulosi/iReporter/internal/adapters/persistence/repositories"
	"github.com/Omulosi/iReporter/internal/config"
	"github.com/Omulosi/iReporter/internal/pkg/jwt"
	"github.com/Omulosi/iReporter/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Locals keys set by the guard for downstream handlers
const (
	localClaims   = "claims"
	localUser     = "currentUser"
	localIncident = "incident"
	localType     = "incidentType"
)

// Predicate is an ownership or role check evaluated after the token
// checks pass. Returning a *fiber.Error sets the response status and
// message directly.
type Predicate func(c *fiber.Ctx, user *models.User) error

// Policy parameterizes the authorization guard for an endpoint class:
// which token family it accepts, whether the token must be fresh, and an
// optional ownership/role predicate.
type Policy struct {
	TokenType    string
	RequireFresh bool
	Require      Predicate
}

// Guard gates protected endpoints with a single ordered decision
// function: presence, decodability, family match, freshness, blacklist,
// then the policy predicate. The first failing check short-circuits.
type Guard struct {
	cfg       *config.Config
	users     repositories.UserRepository
	blacklist repositories.BlacklistRepository
}

// NewGuard creates a new authorization guard
func NewGuard(cfg *config.Config, users repositories.UserRepository, blacklist repositories.BlacklistRepository) *Guard {
	return &Guard{
		cfg:       cfg,
		users:     users,
		blacklist: blacklist,
	}
}

// Protect returns the middleware enforcing the given policy
func (g *Guard) Protect(policy Policy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Presence
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return response.Unauthorized(c, "Missing Authorization Header")
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// 2-3. Decodability and token family
		claims, err := jwt.Decode(tokenString, policy.TokenType, g.cfg.JWT.Secret)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				return response.Unauthorized(c, "Token has expired")
			case errors.Is(err, jwt.ErrWrongTokenType):
				return response.UnprocessableEntity(c, fmt.Sprintf("Only %s tokens are allowed", policy.TokenType))
			default:
				return response.UnprocessableEntity(c, "Token is invalid")
			}
		}

		// 4. Freshness
		if policy.RequireFresh && !claims.Fresh {
			return response.Unauthorized(c, "Fresh token required")
		}

		// 5. Blacklist
		revoked, err := g.blacklist.IsRevoked(c.Context(), claims.ID)
		if err != nil {
			return response.InternalServerError(c, "Failed to check token status")
		}
		if revoked {
			return response.Unauthorized(c, "Token has been revoked")
		}

		// Resolve the token's identity
		user, err := g.users.GetByUsername(c.Context(), claims.Username)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.Unauthorized(c, "Unknown token identity")
			}
			return response.InternalServerError(c, "Failed to resolve token identity")
		}

		c.Locals(localClaims, claims)
		c.Locals(localUser, user)

		// 6. Ownership / role
		if policy.Require != nil {
			if err := policy.Require(c, user); err != nil {
				var fiberErr *fiber.Error
				if errors.As(err, &fiberErr) {
					return response.Error(c, fiberErr.Code, fiberErr.Message)
				}
				return response.InternalServerError(c, "Authorization check failed")
			}
		}

		return c.Next()
	}
}

// AdminOnly permits only admin users
func AdminOnly() Predicate {
	return func(c *fiber.Ctx, user *models.User) error {
		if !user.IsAdmin {
			return fiber.NewError(fiber.StatusForbidden, "Only admins can access this endpoint")
		}
		return nil
	}
}

// RecordOwner permits only the creator of the record addressed by the
// :id parameter. The loaded record is stashed for the handler.
func RecordOwner(repo repositories.IncidentRepository) Predicate {
	return func(c *fiber.Ctx, user *models.User) error {
		incident, err := loadRecord(c, repo)
		if err != nil {
			return err
		}
		if incident.CreatedBy != user.ID {
			return fiber.NewError(fiber.StatusForbidden, "You can only delete your own record.")
		}
		return nil
	}
}

// RecordFieldPolicy gates the field update endpoint: location and comment
// may only be changed by the record's creator, status only by an admin.
func RecordFieldPolicy(repo repositories.IncidentRepository) Predicate {
	return func(c *fiber.Ctx, user *models.User) error {
		field := c.Params("field")
		if field != "location" && field != "comment" && field != "status" {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid field name")
		}

		incident, err := loadRecord(c, repo)
		if err != nil {
			return err
		}

		if field == "status" {
			if !user.IsAdmin {
				return fiber.NewError(fiber.StatusForbidden, "Request forbidden")
			}
			return nil
		}
		if incident.CreatedBy != user.ID {
			return fiber.NewError(fiber.StatusForbidden,
				fmt.Sprintf("You can only update %s field of your own record.", field))
		}
		return nil
	}
}

// loadRecord resolves the :id parameter to a record of the request's
// incident type and stores it in locals.
func loadRecord(c *fiber.Ctx, repo repositories.IncidentRepository) (*models.Incident, error) {
	incidentType := IncidentType(c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID should be an integer")
	}

	incident, err := repo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("%s does not exist", incidentType))
		}
		return nil, err
	}
	if incident.Type != incidentType {
		return nil, fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("%s does not exist", incidentType))
	}

	c.Locals(localIncident, incident)
	return incident, nil
}

// ValidateIncidentType maps the plural :incident_type URL segment to the
// stored record type, rejecting unknown segments.
func ValidateIncidentType() fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch c.Params("incident_type") {
		case "red-flags":
			c.Locals(localType, models.IncidentTypeRedFlag)
		case "interventions":
			c.Locals(localType, models.IncidentTypeIntervention)
		default:
			return response.NotFound(c, "The requested url cannot be found")
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated user set by the guard
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(localUser).(*models.User)
	return user
}

// TokenClaims returns the decoded token claims set by the guard
func TokenClaims(c *fiber.Ctx) *jwt.Claims {
	claims, _ := c.Locals(localClaims).(*jwt.Claims)
	return claims
}

// CurrentIncident returns the record loaded by an ownership predicate
func CurrentIncident(c *fiber.Ctx) *models.Incident {
	incident, _ := c.Locals(localIncident).(*models.Incident)
	return incident
}

// IncidentType returns the record type resolved from the URL
func IncidentType(c *fiber.Ctx) string {
	t, _ := c.Locals(localType).(string)
	return t
}
