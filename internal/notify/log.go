package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// LogSender writes reminders to the log instead of delivering them.
// Used when SMTP is not configured, so local development exercises the
// full reminder workflow without a mail server.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, msg Message) (string, error) {
	messageID := "log-" + uuid.NewString()
	s.logger.InfoContext(ctx, "reminder email (log sender)",
		"to", msg.RecipientEmail,
		"subject", Subject(msg.DocumentType),
		"message_id", messageID,
	)
	return messageID, nil
}
