package services

import (
	"fmt"
	"log"

	"github.com/Omulosi/iReporter/internal/config"

	"github.com/wneessen/go-mail"
)

// NotificationService sends status-change emails over SMTP. Delivery is
// best-effort: send failures are logged and never propagate into the
// transaction that triggered them.
type NotificationService struct {
	cfg     config.MailConfig
	enabled bool
}

// NewNotificationService creates a new notification service. Disabled
// when no SMTP host is configured.
func NewNotificationService(cfg *config.Config) *NotificationService {
	return &NotificationService{
		cfg:     cfg.Mail,
		enabled: cfg.Mail.Host != "",
	}
}

// IsEnabled checks if notification is enabled
func (s *NotificationService) IsEnabled() bool {
	return s.enabled
}

// SendStatusChangeEmail notifies a record owner that an admin changed the
// record's status. Fire-and-forget.
func (s *NotificationService) SendStatusChangeEmail(recipient, incidentType, oldStatus, newStatus string) {
	if !s.enabled {
		return
	}

	go func() {
		if err := s.send(recipient, incidentType, oldStatus, newStatus); err != nil {
			log.Printf("⚠️ Failed to send status update email to %s: %v", recipient, err)
		}
	}()
}

func (s *NotificationService) send(recipient, incidentType, oldStatus, newStatus string) error {
	client, err := mail.NewClient(s.cfg.Host,
		mail.WithPort(s.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.Username),
		mail.WithPassword(s.cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err := msg.From(s.cfg.Sender); err != nil {
		return err
	}
	if err := msg.To(recipient); err != nil {
		return err
	}
	msg.Subject("Status Update")
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"The status of your %s record has changed from '%s' to '%s'.",
		incidentType, oldStatus, newStatus,
	))

	return client.DialAndSend(msg)
}
