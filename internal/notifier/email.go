package notifier

import (
	"worktrack-backend/config"

	gomail "gopkg.in/gomail.v2"
)

type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewMailerFromEnv: return nil kalau SMTP_HOST tidak di-set,
// artinya kanal email dimatikan.
func NewMailerFromEnv() *Mailer {
	host := config.GetEnv("SMTP_HOST", "")
	if host == "" {
		return nil
	}
	return &Mailer{
		host:     host,
		port:     config.GetEnvAsInt("SMTP_PORT", 587),
		username: config.GetEnv("SMTP_USER", ""),
		password: config.GetEnv("SMTP_PASSWORD", ""),
		from:     config.GetEnv("SMTP_FROM", "no-reply@worktrack.local"),
	}
}

func (m *Mailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	return dialer.DialAndSend(msg)
}
