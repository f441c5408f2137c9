package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// Mailer delivers outbound notifications. Delivery failure is never fatal
// for the workflow that requested it.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, resetURL string) error
}

// SMTPMailer sends mail through a plain SMTP relay.
type SMTPMailer struct {
	addr string
	from string
}

// Ensure SMTPMailer implements Mailer
var _ Mailer = (*SMTPMailer)(nil)

// NewSMTPMailer creates a mailer for the given relay address ("host:port").
func NewSMTPMailer(addr, from string) *SMTPMailer {
	return &SMTPMailer{addr: addr, from: from}
}

// SendPasswordReset emails a recovery link embedding the reset token.
func (m *SMTPMailer) SendPasswordReset(ctx context.Context, to, resetURL string) error {
	body := resetEmailBody(resetURL)
	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: Your Password Reset Token",
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	if err := smtp.SendMail(m.addr, nil, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send reset mail: %w", err)
	}
	return nil
}

func resetEmailBody(resetURL string) string {
	return fmt.Sprintf(`<div style="border:1px solid black;padding:20px;font-family:sans-serif;line-height:2;font-size:20px;">
<h2>Hello There!</h2>
<p>Your password reset token is here!</p>
<p><a href="%s">Click here to reset your password</a></p>
</div>`, resetURL)
}
