package services

import (
	"testing"

	"github.com/Omulosi/iReporter/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestNotificationService_Enabled(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig()
	svc := NewNotificationService(cfg)
	assert.False(t, svc.IsEnabled())

	// Sending while disabled is a silent no-op
	svc.SendStatusChangeEmail("owner@example.com", "red-flag", "draft", "resolved")

	cfg.Mail = config.MailConfig{
		Host:   "smtp.example.com",
		Port:   587,
		Sender: "no-reply@ireporter.local",
	}
	assert.True(t, NewNotificationService(cfg).IsEnabled())
}
