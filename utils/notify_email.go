package utils

import (
	"fmt"
	"html"
	"log"
	"net/smtp"
	"strings"

	"wedding-backend/config"
)

// Field is one "label: value" row of a notification email.
type Field struct {
	Label string
	Value string
}

// headerSafe flattens a value for use in a mail header. Any CR or LF
// would start a new header line.
var headerSafe = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

func cleanHeader(s string) string {
	return strings.TrimSpace(headerSafe.Replace(s))
}

// SendAdminNotification mails a short summary (new custom request, new
// contact message) to the organizer inbox. Without SMTP settings it only
// logs the message.
func SendAdminNotification(cfg config.SMTPConfig, recipient, subject string, fields []Field) error {
	recipient = cleanHeader(recipient)
	if recipient == "" {
		return nil
	}
	if cfg.Username == "" || cfg.Password == "" || cfg.Host == "" || cfg.Port == "" {
		log.Printf("[MOCK EMAIL] to:%s subject:%s fields:%v", recipient, cleanHeader(subject), fields)
		return nil
	}

	auth := smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	msg := buildNotification(cfg.FromName, cfg.Username, recipient, subject, fields)

	if err := smtp.SendMail(addr, auth, cfg.Username, []string{recipient}, msg); err != nil {
		log.Printf("Failed to send notification email to %s: %v", recipient, err)
		return err
	}

	log.Printf("Notification email sent to %s", recipient)
	return nil
}

func buildNotification(fromName, fromAddr, recipient, subject string, fields []Field) []byte {
	subject = cleanHeader(subject)
	from := fmt.Sprintf("%s <%s>", cleanHeader(fromName), cleanHeader(fromAddr))
	boundary := "----=_WEDDING_NOTIFY_BOUNDARY"

	var plain, rows strings.Builder
	for _, f := range fields {
		plain.WriteString(fmt.Sprintf("%s: %s\r\n", cleanHeader(f.Label), cleanHeader(f.Value)))
		rows.WriteString(fmt.Sprintf("<tr><td style=\"padding:4px 12px 4px 0;color:#666\">%s</td><td>%s</td></tr>\n",
			html.EscapeString(f.Label), html.EscapeString(f.Value)))
	}

	htmlBody := fmt.Sprintf(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>%s</title></head>
<body style="background:#faf7f5;font-family:Arial, Helvetica, sans-serif;color:#222">
<div style="max-width:640px;margin:20px auto;background:#fff;border:1px solid #eee;padding:24px;border-radius:8px">
  <h2>%s</h2>
  <table>
%s  </table>
</div>
</body>
</html>`, html.EscapeString(subject), html.EscapeString(subject), rows.String())

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", cleanHeader(recipient)))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(plain.String() + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(htmlBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))
	return []byte(sb.String())
}
