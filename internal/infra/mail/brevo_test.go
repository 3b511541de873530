package mail

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mpeshop/config"
	"mpeshop/internal/domain/service"
	"mpeshop/internal/infra/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, email config.EmailConfig) *settings.Store {
	t.Helper()

	cfg := &config.Config{Email: &email}

	return settings.New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBrevoMailer_SendPostsExpectedPayload(t *testing.T) {
	t.Parallel()

	var (
		gotAPIKey      string
		gotContentType string
		gotPayload     map[string]any
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("api-key")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	store := newTestStore(t, config.EmailConfig{
		APIURL:  server.URL,
		APIKey:  "key-123",
		Timeout: 5 * time.Second,
	})
	mailer := NewBrevoMailer(store, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := mailer.Send(context.Background(), service.Message{
		FromEmail: "orders@example.co.uk",
		FromName:  "MPE Orders",
		ReplyTo:   "sales@example.co.uk",
		To:        []string{"customer@example.com"},
		Subject:   "Order Confirmation - PO-1001",
		TextBody:  "Thank you for your order.",
		Attachments: []service.Attachment{
			{Filename: "Order_PO-1001.pdf", Content: []byte("%PDF-1.4 fake"), MIMEType: "application/pdf"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "key-123", gotAPIKey)
	assert.Equal(t, "application/json", gotContentType)

	sender, ok := gotPayload["sender"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "orders@example.co.uk", sender["email"])
	assert.Equal(t, "MPE Orders", sender["name"])

	to, ok := gotPayload["to"].([]any)
	require.True(t, ok)
	require.Len(t, to, 1)
	assert.Equal(t, "customer@example.com", to[0].(map[string]any)["email"])

	replyTo, ok := gotPayload["replyTo"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "sales@example.co.uk", replyTo["email"])

	assert.Equal(t, "Order Confirmation - PO-1001", gotPayload["subject"])
	assert.Equal(t, "Thank you for your order.", gotPayload["textContent"])

	attachments, ok := gotPayload["attachment"].([]any)
	require.True(t, ok)
	require.Len(t, attachments, 1)
	att := attachments[0].(map[string]any)
	assert.Equal(t, "Order_PO-1001.pdf", att["name"])
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 fake")), att["content"])
}

func TestBrevoMailer_SendOmitsEmptyOptionalFields(t *testing.T) {
	t.Parallel()

	var raw map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	store := newTestStore(t, config.EmailConfig{APIURL: server.URL, APIKey: "key"})
	mailer := NewBrevoMailer(store, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := mailer.Send(context.Background(), service.Message{
		FromEmail: "orders@example.co.uk",
		To:        []string{"staff@example.co.uk"},
		Subject:   "New Order Received",
		TextBody:  "A new order has been placed.",
	})
	require.NoError(t, err)

	_, hasReplyTo := raw["replyTo"]
	assert.False(t, hasReplyTo)
	_, hasAttachment := raw["attachment"]
	assert.False(t, hasAttachment)
}

func TestBrevoMailer_SendFailsOnProviderError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":"unauthorized"}`))
	}))
	defer server.Close()

	store := newTestStore(t, config.EmailConfig{APIURL: server.URL, APIKey: "bad-key"})
	mailer := NewBrevoMailer(store, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := mailer.Send(context.Background(), service.Message{
		FromEmail: "orders@example.co.uk",
		To:        []string{"customer@example.com"},
		Subject:   "Order Confirmation",
		TextBody:  "body",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestBrevoMailer_SendRequiresRecipientsAndKey(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, config.EmailConfig{})
	mailer := NewBrevoMailer(store, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := mailer.Send(context.Background(), service.Message{Subject: "x"})
	assert.Error(t, err)

	err = mailer.Send(context.Background(), service.Message{To: []string{"a@b.com"}})
	assert.Error(t, err)
}
