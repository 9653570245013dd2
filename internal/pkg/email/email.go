// Package email sends transactional mail over SMTP. When SMTP is not
// configured the messages are logged instead, which keeps local development
// working without a mail server.
package email

import (
	"fmt"
	"net/smtp"

	"github.com/appderecho/backend/internal/pkg/logger"
)

// Config holds SMTP connection settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Enabled  bool
}

// Service sends application emails.
type Service struct {
	cfg Config
}

// NewService creates an email service with the given config
func NewService(cfg Config) *Service {
	return &Service{cfg: cfg}
}

// SendPasswordResetCode mails a password reset code to the given address.
func (s *Service) SendPasswordResetCode(to, name, code string) error {
	subject := "Recuperación de contraseña - Consultorio Jurídico"
	body := fmt.Sprintf(
		"Hola %s,\r\n\r\n"+
			"Tu código de recuperación de contraseña es: %s\r\n\r\n"+
			"Este código expira en 15 minutos y solo puede usarse una vez.\r\n"+
			"Si no solicitaste este cambio, ignora este mensaje.\r\n\r\n"+
			"Consultorio Jurídico - Universidad Colegio Mayor de Cundinamarca\r\n",
		name, code)
	return s.send(to, subject, body)
}

// SendWelcome mails a registration confirmation to a newly activated student.
func (s *Service) SendWelcome(to, name, studentCode string) error {
	subject := "Registro completado - Consultorio Jurídico"
	body := fmt.Sprintf(
		"Hola %s,\r\n\r\n"+
			"Tu registro en el sistema del Consultorio Jurídico fue completado.\r\n"+
			"Tu código de estudiante es: %s\r\n\r\n"+
			"Ya puedes iniciar sesión con tu correo institucional.\r\n\r\n"+
			"Consultorio Jurídico - Universidad Colegio Mayor de Cundinamarca\r\n",
		name, studentCode)
	return s.send(to, subject, body)
}

func (s *Service) send(to, subject, body string) error {
	if !s.cfg.Enabled {
		logger.Info().
			Str("to", to).
			Str("subject", subject).
			Msg("SMTP disabled, email not sent")
		return nil
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n%s",
		s.cfg.From, to, subject, body)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("sending email to %s: %w", to, err)
	}

	logger.Debug().Str("to", to).Str("subject", subject).Msg("Email sent")
	return nil
}
