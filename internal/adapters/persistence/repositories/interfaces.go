package repositories

import (
	"context"

	"github.com/Omulosi/iReporter/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
}

// IncidentRepository defines incident record repository interface
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uint) (*models.Incident, error)
	ListByType(ctx context.Context, incidentType string, offset, limit int) ([]*models.Incident, int64, error)
	ListByOwner(ctx context.Context, ownerID uint, incidentType string) ([]*models.Incident, error)
	UpdateField(ctx context.Context, id uint, field, value string) error
	Delete(ctx context.Context, id uint) error
}

// BlacklistRepository defines token blacklist repository interface
type BlacklistRepository interface {
	Revoke(ctx context.Context, entry *models.BlacklistedToken) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
	DeleteExpired(ctx context.Context) (int64, error)
}
