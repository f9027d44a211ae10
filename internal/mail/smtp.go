package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"
)

// SMTPConfig holds the connection settings for SMTPSender.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     Address
}

// SMTPSender delivers messages through an SMTP server using go-mail.
// The client dials per send — delivery volume here is a handful of
// confirmation mails per request, not a bulk pipeline.
type SMTPSender struct {
	client *gomail.Client
	from   Address
}

// NewSMTPSender builds an SMTPSender from cfg. An empty cfg.From falls back
// to DefaultFrom.
func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("mail.NewSMTPSender: %w", err)
	}

	from := cfg.From
	if from.Email == "" {
		from = DefaultFrom
	}
	return &SMTPSender{client: client, from: from}, nil
}

// Send delivers msg through the configured SMTP server.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m := gomail.NewMsg()
	if err := m.FromFormat(s.from.Name, s.from.Email); err != nil {
		return fmt.Errorf("mail.SMTPSender.Send: from: %w", err)
	}
	if err := m.AddToFormat(msg.To.Name, msg.To.Email); err != nil {
		return fmt.Errorf("mail.SMTPSender.Send: to: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextHTML, msg.HTML)

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("mail.SMTPSender.Send: %w", err)
	}
	return nil
}
