package repositories

import (
	"context"

	"github.com/Omulosi/iReporter/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// incidentRepository implements IncidentRepository interface
type incidentRepository struct {
	db *gorm.DB
}

// NewIncidentRepository creates a new incident repository
func NewIncidentRepository(db *gorm.DB) IncidentRepository {
	return &incidentRepository{db: db}
}

// Create creates a new incident record
func (r *incidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	return r.db.WithContext(ctx).Create(incident).Error
}

// GetByID gets an incident record by ID
func (r *incidentRepository) GetByID(ctx context.Context, id uint) (*models.Incident, error) {
	var incident models.Incident
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&incident).Error
	if err != nil {
		return nil, err
	}
	return &incident, nil
}

// ListByType lists incident records of the given type with pagination,
// most recent first
func (r *incidentRepository) ListByType(ctx context.Context, incidentType string, offset, limit int) ([]*models.Incident, int64, error) {
	var incidents []*models.Incident
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Incident{}).
		Where("type = ?", incidentType).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Where("type = ?", incidentType).
		Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&incidents).Error; err != nil {
		return nil, 0, err
	}

	return incidents, total, nil
}

// ListByOwner lists all incident records of the given type created by a user
func (r *incidentRepository) ListByOwner(ctx context.Context, ownerID uint, incidentType string) ([]*models.Incident, error) {
	var incidents []*models.Incident
	err := r.db.WithContext(ctx).
		Where("created_by = ?", ownerID).
		Where("type = ?", incidentType).
		Order("created_at desc").
		Find(&incidents).Error
	if err != nil {
		return nil, err
	}
	return incidents, nil
}

// UpdateField updates a single column of an incident record. Callers
// whitelist the field name before reaching here; last writer wins on
// concurrent updates.
func (r *incidentRepository) UpdateField(ctx context.Context, id uint, field, value string) error {
	return r.db.WithContext(ctx).
		Model(&models.Incident{}).
		Where("id = ?", id).
		Update(field, value).Error
}

// Delete deletes an incident record
func (r *incidentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Incident{}, id).Error
}
