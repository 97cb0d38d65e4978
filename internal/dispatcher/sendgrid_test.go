package dispatcher

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jpretorius/email-gateway/internal/model"
)

func TestSendGridProviderSend(t *testing.T) {
	var got sgPayload
	var auth, contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		contentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	p := NewSendGridProvider(srv.URL, "SG.test-key", 2000, zap.NewNop())
	require.True(t, p.Configured())

	status, err := p.Send(context.Background(), Email{
		To:        "client@example.org",
		FromEmail: "benefits@firearmsguardian.co.za",
		FromName:  "Firearms Guardian",
		Subject:   "Welcome",
		HTML:      "<p>hi</p>",
		Attachment: &model.Attachment{
			Content:  []byte("%PDF-1.7"),
			Filename: "Application_Form.pdf",
			MIMEType: "application/pdf",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, status)

	assert.Equal(t, "Bearer SG.test-key", auth)
	assert.Equal(t, "application/json", contentType)
	require.Len(t, got.Personalizations, 1)
	require.Len(t, got.Personalizations[0].To, 1)
	assert.Equal(t, "client@example.org", got.Personalizations[0].To[0].Email)
	assert.Equal(t, "benefits@firearmsguardian.co.za", got.From.Email)
	assert.Equal(t, "Firearms Guardian", got.From.Name)
	require.Len(t, got.Content, 1)
	assert.Equal(t, "text/html", got.Content[0].Type)
	require.Len(t, got.Attachments, 1)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("%PDF-1.7")), got.Attachments[0].Content)
	assert.Equal(t, "attachment", got.Attachments[0].Disposition)
}

func TestSendGridProviderRejectionIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"message":"bad key"}]}`))
	}))
	defer srv.Close()

	p := NewSendGridProvider(srv.URL, "bad", 2000, zap.NewNop())
	status, err := p.Send(context.Background(), Email{To: "a@b.c"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestSendGridProviderTransportError(t *testing.T) {
	p := NewSendGridProvider("http://127.0.0.1:1", "key", 200, zap.NewNop())
	status, err := p.Send(context.Background(), Email{To: "a@b.c"})
	assert.Error(t, err)
	assert.Zero(t, status)
}

func TestSendGridProviderConfigured(t *testing.T) {
	assert.False(t, NewSendGridProvider("http://x", "", 0, zap.NewNop()).Configured())
	assert.True(t, NewSendGridProvider("http://x", "k", 0, zap.NewNop()).Configured())
}
