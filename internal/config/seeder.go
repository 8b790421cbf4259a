package config

import (
	"log"

	"github.com/Omulosi/iReporter/internal/adapters/persistence/models"
	"github.com/Omulosi/iReporter/internal/pkg/password"

	"gorm.io/gorm"
)

// SeedAdminUser creates the initial admin account from ADMIN_USERNAME /
// ADMIN_PASSWORD when no user with that name exists. is_admin can only be
// set at creation, so this is the only way an admin comes into being.
func SeedAdminUser(db *gorm.DB) error {
	username := getEnv("ADMIN_USERNAME", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if username == "" || pass == "" {
		log.Println("Admin seed skipped: ADMIN_USERNAME/ADMIN_PASSWORD not set")
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := password.Hash(pass)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username: username,
		Password: hash,
		Email:    getEnv("ADMIN_EMAIL", ""),
		IsAdmin:  true,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Admin user seeded: %s", username)
	return nil
}
