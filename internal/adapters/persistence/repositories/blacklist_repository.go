package repositories

import (
	"context"
	"time"

	"github.com/Omulosi/iReporter/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// blacklistRepository implements BlacklistRepository interface
type blacklistRepository struct {
	db *gorm.DB
}

// NewBlacklistRepository creates a new token blacklist repository
func NewBlacklistRepository(db *gorm.DB) BlacklistRepository {
	return &blacklistRepository{db: db}
}

// Revoke inserts a jti into the blacklist. Idempotent: revoking the same
// jti twice is not an error, the store-level unique index arbitrates.
func (r *blacklistRepository) Revoke(ctx context.Context, entry *models.BlacklistedToken) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "jti"}},
			DoNothing: true,
		}).
		Create(entry).Error
}

// IsRevoked checks whether a jti is blacklisted
func (r *blacklistRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.BlacklistedToken{}).
		Where("jti = ?", jti).
		Count(&count).Error
	return count > 0, err
}

// DeleteExpired prunes entries whose token has already expired. Expired
// tokens are rejected at decode time before the blacklist is consulted,
// so pruning never resurrects one.
func (r *blacklistRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&models.BlacklistedToken{})
	return result.RowsAffected, result.Error
}
