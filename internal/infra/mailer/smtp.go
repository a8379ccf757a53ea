package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"kelurahan-booking/internal/pkg/config"
	"kelurahan-booking/internal/pkg/errs"
	"kelurahan-booking/internal/usecase/commands"
)

// SMTPMailer sends password reset codes over plain SMTP with AUTH.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

var _ commands.OTPMailer = (*SMTPMailer)(nil)

func (m *SMTPMailer) SendOTP(_ context.Context, email, code string) error {
	if m.cfg.User == "" {
		return errs.New("smtp is not configured")
	}

	from := m.cfg.From
	if from == "" {
		from = m.cfg.User
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", email)
	b.WriteString("Subject: Password Reset Code\r\n")
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	fmt.Fprintf(&b, "Your password reset code is %s.\r\nIt expires in 5 minutes.\r\n", code)

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	addr := m.cfg.Host + ":" + m.cfg.Port
	if err := smtp.SendMail(addr, auth, from, []string{email}, []byte(b.String())); err != nil {
		return errs.Wrap(err, "failed to send reset mail")
	}
	return nil
}
