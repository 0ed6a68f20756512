package notify

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gopkg.in/gomail.v2"

	dErrors "github.com/deltacloudassociates/optmark-crm-hub/pkg/domain-errors"
)

var tracer = otel.Tracer("notify")

// SMTPSender delivers reminder emails over SMTP.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(host string, port int, username, password, from string) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send renders and delivers the reminder. SMTP servers do not return a
// message ID on submission, so one is generated for correlation with the
// Message-ID header.
func (s *SMTPSender) Send(ctx context.Context, msg Message) (string, error) {
	_, span := tracer.Start(ctx, "smtp.send", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("notify.document_type", msg.DocumentType),
	)

	body, err := Body(msg)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "render reminder email")
	}

	messageID := fmt.Sprintf("<%s@optmark>", uuid.NewString())

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.RecipientEmail)
	m.SetHeader("Subject", Subject(msg.DocumentType))
	m.SetHeader("Message-ID", messageID)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return "", dErrors.Wrap(err, dErrors.CodeUnavailable, "smtp delivery failed")
	}
	return messageID, nil
}
