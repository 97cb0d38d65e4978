// Package dispatcher performs the single outbound delivery attempt for a
// fully rendered message and translates the provider's response into a
// success/failure result. There is no queue, no retry and no idempotency
// key: delivery is fire-and-forget and a human resubmits on failure.
package dispatcher

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jpretorius/email-gateway/internal/catalog"
	"github.com/jpretorius/email-gateway/internal/metrics"
	"github.com/jpretorius/email-gateway/internal/model"
)

// Defaults applied when a caller supplies an attachment without naming it.
const (
	DefaultAttachmentName = "Application_Form.pdf"
	DefaultAttachmentType = "application/pdf"
)

// ErrNotConfigured reports a missing provider credential. The gateway
// refuses all sends until the credential is supplied.
var ErrNotConfigured = fmt.Errorf("dispatcher: email provider credential missing")

// MissingFieldsError names the required message fields the caller left
// empty. No network activity happened.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "dispatcher: missing required fields: " + strings.Join(e.Fields, ", ")
}

// UnknownOrganizationError reports an organization identifier outside
// the verified-sender allow-list. No network activity happened.
type UnknownOrganizationError struct {
	Organization string
}

func (e *UnknownOrganizationError) Error() string {
	return fmt.Sprintf("dispatcher: unknown organization %q", e.Organization)
}

// Gateway validates a dispatch message, resolves the verified sender for
// its organization and hands it to the provider exactly once.
type Gateway struct {
	provider Provider
	log      *zap.Logger
}

func New(provider Provider, log *zap.Logger) *Gateway {
	return &Gateway{provider: provider, log: log}
}

// Send performs one delivery attempt. A non-nil error means the attempt
// never left the gateway (misconfiguration or invalid input); otherwise
// the result reports the provider outcome, success or not.
func (g *Gateway) Send(ctx context.Context, msg model.DispatchMessage) (model.DispatchResult, error) {
	if !g.provider.Configured() {
		return model.DispatchResult{}, ErrNotConfigured
	}

	if missing := missingFields(msg); len(missing) > 0 {
		return model.DispatchResult{}, &MissingFieldsError{Fields: missing}
	}

	org, ok := model.ParseOrganization(msg.Organization)
	if !ok {
		return model.DispatchResult{}, &UnknownOrganizationError{Organization: msg.Organization}
	}
	cfg, ok := catalog.Organization(org)
	if !ok {
		return model.DispatchResult{}, &UnknownOrganizationError{Organization: msg.Organization}
	}

	email := Email{
		To:        msg.Recipient,
		FromEmail: cfg.SenderEmail,
		FromName:  cfg.Name.String(),
		Subject:   msg.Subject,
		HTML:      msg.HTML,
	}
	if msg.Attachment != nil {
		att := *msg.Attachment
		if att.Filename == "" {
			att.Filename = DefaultAttachmentName
		}
		if att.MIMEType == "" {
			att.MIMEType = DefaultAttachmentType
		}
		email.Attachment = &att
	}

	id := newID()
	status, err := g.provider.Send(ctx, email)
	now := time.Now().UTC()

	if err != nil {
		metrics.DispatchTotal.WithLabelValues(org.String(), "transport_error").Inc()
		g.log.Error("send failed",
			zap.String("id", id),
			zap.String("organization", org.String()),
			zap.String("provider", g.provider.Name()),
			zap.Error(err),
		)
		return model.DispatchResult{
			ID:        id,
			Success:   false,
			Message:   err.Error(),
			Timestamp: now,
		}, nil
	}

	if status == StatusAccepted {
		metrics.DispatchTotal.WithLabelValues(org.String(), "accepted").Inc()
		g.log.Info("message accepted",
			zap.String("id", id),
			zap.String("organization", org.String()),
			zap.String("language", msg.Language),
		)
		return model.DispatchResult{
			ID:         id,
			Success:    true,
			StatusCode: status,
			Message:    "Email sent successfully",
			Timestamp:  now,
		}, nil
	}

	metrics.DispatchTotal.WithLabelValues(org.String(), "rejected").Inc()
	return model.DispatchResult{
		ID:         id,
		Success:    false,
		StatusCode: status,
		Message:    fmt.Sprintf("email provider returned %d", status),
		Timestamp:  now,
	}, nil
}

// missingFields reports empty required fields by their wire names, in
// request-body order.
func missingFields(msg model.DispatchMessage) []string {
	var missing []string
	if msg.Recipient == "" {
		missing = append(missing, "clientEmail")
	}
	if msg.Subject == "" {
		missing = append(missing, "subject")
	}
	if msg.HTML == "" {
		missing = append(missing, "html")
	}
	if msg.Organization == "" {
		missing = append(missing, "department")
	}
	return missing
}
