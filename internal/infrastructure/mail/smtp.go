// Package mail sends outbound account email over SMTP.
package mail

import (
	"fmt"
	"net/smtp"
)

type Config struct {
	Username string
	Password string
	From     string
	FromName string
	Server   string
	Port     int
}

// Sender delivers mail through a configured SMTP relay.
type Sender struct {
	cfg Config
}

func NewSender(cfg Config) *Sender {
	return &Sender{cfg: cfg}
}

// Configured reports whether the relay settings are complete enough to
// attempt delivery.
func (s *Sender) Configured() bool {
	return s.cfg.Server != "" && s.cfg.From != ""
}

// SendNewPassword emails a freshly generated password to recipient.
func (s *Sender) SendNewPassword(recipient, newPassword string) error {
	subject := "Nueva contraseña - SINAC Turismo"
	body := fmt.Sprintf(
		"Su nueva contraseña de acceso es: %s\r\n\r\nLe recomendamos cambiarla después de iniciar sesión.\r\n",
		newPassword)
	msg := []byte(fmt.Sprintf(
		"From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		s.cfg.FromName, s.cfg.From, recipient, subject, body))

	addr := fmt.Sprintf("%s:%d", s.cfg.Server, s.cfg.Port)
	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Server)
	}
	return smtp.SendMail(addr, auth, s.cfg.From, []string{recipient}, msg)
}
