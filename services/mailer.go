package services

import (
	"log"

	"wedding-backend/config"
	"wedding-backend/utils"
)

// AdminMailer emails the organizer about new customer submissions. Sends
// happen in the background; failures are logged only.
type AdminMailer struct {
	SMTP config.SMTPConfig
	To   string
}

func NewAdminMailer(smtp config.SMTPConfig, to string) *AdminMailer {
	return &AdminMailer{SMTP: smtp, To: to}
}

func (m *AdminMailer) send(subject string, fields []utils.Field) {
	if m == nil || m.To == "" {
		return
	}
	go func() {
		if err := utils.SendAdminNotification(m.SMTP, m.To, subject, fields); err != nil {
			log.Printf("❌ notification %q failed: %v", subject, err)
		}
	}()
}
