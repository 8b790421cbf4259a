package services

import (
	"testing"

	"github.com/Omulosi/iReporter/internal/adapters/persistence/models"
	"github.com/Omulosi/iReporter/internal/adapters/persistence/repositories"
	"github.com/Omulosi/iReporter/internal/config"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with all tables migrated
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))

	return db
}

// newTestConfig builds a config with mail disabled and short-lived tokens
func newTestConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		Port:    "3000",
		JWT: config.JWTConfig{
			Secret:                "test-signing-secret",
			AccessTokenMins:       15,
			RefreshTokenDays:      7,
			RequireFreshMutations: true,
		},
	}
}

func newAuthService(t *testing.T) (*AuthService, *gorm.DB, *config.Config) {
	t.Helper()

	db := newTestDB(t)
	cfg := newTestConfig()
	svc := NewAuthService(
		repositories.NewUserRepository(db),
		repositories.NewBlacklistRepository(db),
		cfg,
	)
	return svc, db, cfg
}

func newIncidentService(t *testing.T) (*IncidentService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	cfg := newTestConfig()
	svc := NewIncidentService(
		repositories.NewIncidentRepository(db),
		repositories.NewUserRepository(db),
		NewNotificationService(cfg),
	)
	return svc, db
}
