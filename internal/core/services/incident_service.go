package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Omulosi/iReporter/internal/adapters/persistence/models"
	"github.com/Omulosi/iReporter/internal/adapters/persistence/repositories"
	"github.com/Omulosi/iReporter/internal/core/domain"
	"github.com/Omulosi/iReporter/internal/pkg/validator"

	"gorm.io/gorm"
)

// Mutable incident fields reachable through the patch endpoint
const (
	FieldLocation = "location"
	FieldComment  = "comment"
	FieldStatus   = "status"
)

// IncidentService handles incident record business logic. Ownership and
// role checks happen in the authorization guard before requests reach
// this service.
type IncidentService struct {
	incidentRepo repositories.IncidentRepository
	userRepo     repositories.UserRepository
	notify       *NotificationService
}

// NewIncidentService creates a new incident service
func NewIncidentService(
	incidentRepo repositories.IncidentRepository,
	userRepo repositories.UserRepository,
	notify *NotificationService,
) *IncidentService {
	return &IncidentService{
		incidentRepo: incidentRepo,
		userRepo:     userRepo,
		notify:       notify,
	}
}

// CreateIncidentInput represents incident creation input
type CreateIncidentInput struct {
	Type      string
	Location  string
	Comment   string
	Images    []string
	Videos    []string
	CreatedBy uint
}

// Create validates input, stores a new draft record and writes back its
// canonical URI once the id is assigned.
func (s *IncidentService) Create(ctx context.Context, input *CreateIncidentInput) (*models.Incident, error) {
	if !validator.ValidLocation(input.Location) {
		return nil, domain.ErrInvalidLocation
	}
	comment, ok := validator.ValidComment(input.Comment)
	if !ok {
		return nil, domain.ErrInvalidComment
	}

	incident := &models.Incident{
		Type:      input.Type,
		Location:  input.Location,
		Comment:   comment,
		Status:    models.StatusDraft,
		Images:    input.Images,
		Videos:    input.Videos,
		CreatedBy: input.CreatedBy,
	}

	if err := s.incidentRepo.Create(ctx, incident); err != nil {
		return nil, err
	}

	uri := fmt.Sprintf("/api/v2/%ss/%d", incident.Type, incident.ID)
	if err := s.incidentRepo.UpdateField(ctx, incident.ID, "uri", uri); err != nil {
		return nil, err
	}
	incident.URI = uri

	log.Printf("✅ Created %s record #%d", incident.Type, incident.ID)
	return incident, nil
}

// Get returns a record by id, scoped to the given incident type
func (s *IncidentService) Get(ctx context.Context, id uint, incidentType string) (*models.Incident, error) {
	incident, err := s.incidentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIncidentNotFound
		}
		return nil, err
	}
	if incident.Type != incidentType {
		return nil, domain.ErrIncidentNotFound
	}
	return incident, nil
}

// List returns records of the given type, newest first
func (s *IncidentService) List(ctx context.Context, incidentType string, offset, limit int) ([]*models.Incident, int64, error) {
	return s.incidentRepo.ListByType(ctx, incidentType, offset, limit)
}

// ListByOwner returns records of the given type created by a user
func (s *IncidentService) ListByOwner(ctx context.Context, ownerID uint, incidentType string) ([]*models.Incident, error) {
	if _, err := s.userRepo.GetByID(ctx, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return s.incidentRepo.ListByOwner(ctx, ownerID, incidentType)
}

// UpdateField validates and updates a single mutable field of a record.
// A status change triggers a notification email to the record's creator;
// email failure never fails the update.
func (s *IncidentService) UpdateField(ctx context.Context, incident *models.Incident, field, value string) error {
	switch field {
	case FieldLocation:
		if !validator.ValidLocation(value) {
			return domain.ErrInvalidLocation
		}
	case FieldComment:
		comment, ok := validator.ValidComment(value)
		if !ok {
			return domain.ErrInvalidComment
		}
		value = comment
	case FieldStatus:
		status, ok := validator.ValidStatus(value)
		if !ok {
			return domain.ErrInvalidStatus
		}
		value = status
	default:
		return domain.ErrInvalidField
	}

	oldStatus := incident.Status
	if err := s.incidentRepo.UpdateField(ctx, incident.ID, field, value); err != nil {
		return err
	}

	if field == FieldStatus {
		s.notifyStatusChange(ctx, incident, oldStatus, value)
	}

	return nil
}

// Delete removes a record
func (s *IncidentService) Delete(ctx context.Context, id uint) error {
	return s.incidentRepo.Delete(ctx, id)
}

// notifyStatusChange emails the record creator about a status change.
// Fire-and-forget: failures are logged, never surfaced.
func (s *IncidentService) notifyStatusChange(ctx context.Context, incident *models.Incident, oldStatus, newStatus string) {
	owner, err := s.userRepo.GetByID(ctx, incident.CreatedBy)
	if err != nil {
		log.Printf("⚠️ Status notification skipped for record #%d: %v", incident.ID, err)
		return
	}
	if owner.Email == "" {
		return
	}
	s.notify.SendStatusChangeEmail(owner.Email, incident.Type, oldStatus, newStatus)
}
