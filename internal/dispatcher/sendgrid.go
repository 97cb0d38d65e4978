package dispatcher

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// SendGridProvider posts messages to the SendGrid v3 mail/send endpoint
// with bearer authentication. The request timeout comes from config via
// the underlying client; there is no retry here.
type SendGridProvider struct {
	url    string
	apiKey string
	client *http.Client
	log    *zap.Logger
}

func NewSendGridProvider(url, apiKey string, timeoutMs int, log *zap.Logger) *SendGridProvider {
	if timeoutMs <= 0 {
		timeoutMs = 10000
	}
	return &SendGridProvider{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: time.Duration(timeoutMs) * time.Millisecond},
		log:    log,
	}
}

func (p *SendGridProvider) Name() string     { return "sendgrid" }
func (p *SendGridProvider) Configured() bool { return p.apiKey != "" }

type sgPayload struct {
	Personalizations []sgPersonalization `json:"personalizations"`
	From             sgAddress           `json:"from"`
	Subject          string              `json:"subject"`
	Content          []sgContent         `json:"content"`
	Attachments      []sgAttachment      `json:"attachments,omitempty"`
}

type sgPersonalization struct {
	To []sgAddress `json:"to"`
}

type sgAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sgContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sgAttachment struct {
	Content     string `json:"content"`
	Filename    string `json:"filename"`
	Type        string `json:"type"`
	Disposition string `json:"disposition"`
}

func (p *SendGridProvider) Send(ctx context.Context, email Email) (int, error) {
	payload := sgPayload{
		Personalizations: []sgPersonalization{{To: []sgAddress{{Email: email.To}}}},
		From:             sgAddress{Email: email.FromEmail, Name: email.FromName},
		Subject:          email.Subject,
		Content:          []sgContent{{Type: "text/html", Value: email.HTML}},
	}
	if email.Attachment != nil {
		payload.Attachments = []sgAttachment{{
			Content:     base64.StdEncoding.EncodeToString(email.Attachment.Content),
			Filename:    email.Attachment.Filename,
			Type:        email.Attachment.MIMEType,
			Disposition: "attachment",
		}}
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(b))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()

	if res.StatusCode != StatusAccepted {
		// Raw provider body stays in the logs for operator diagnosis;
		// callers only see the status.
		body, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		p.log.Error("provider rejected message",
			zap.Int("status", res.StatusCode),
			zap.ByteString("body", body),
		)
	}
	return res.StatusCode, nil
}
