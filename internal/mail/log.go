package mail

import (
	"context"
	"log/slog"
)

// LogSender writes messages to the structured log instead of delivering them.
// It is the default sender when SMTP_HOST is not configured, which keeps
// local development working without a mail server — the Go counterpart of
// pointing the app at a throwaway test inbox.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender constructs a LogSender writing through log.
func NewLogSender(log *slog.Logger) *LogSender {
	return &LogSender{log: log}
}

// Send logs the message and reports success.
func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.log.InfoContext(ctx, "mail not delivered (no SMTP configured)",
		"to", msg.To.Email,
		"subject", msg.Subject,
	)
	return nil
}
