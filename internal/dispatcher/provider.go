package dispatcher

import (
	"context"
	"net/http"

	"github.com/jpretorius/email-gateway/internal/model"
)

// StatusAccepted is the provider status meaning the message was queued
// for delivery, not that it reached the recipient's inbox.
const StatusAccepted = http.StatusAccepted

// Email is the provider-facing message: sender identity resolved,
// attachment defaults already applied.
type Email struct {
	To         string
	FromEmail  string
	FromName   string
	Subject    string
	HTML       string
	Attachment *model.Attachment
}

// Provider performs one outbound delivery attempt. Send returns the
// provider's HTTP status; a non-nil error means the attempt failed at
// the transport level and no status was obtained.
type Provider interface {
	Name() string
	Configured() bool
	Send(ctx context.Context, email Email) (int, error)
}
