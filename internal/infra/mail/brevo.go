// Package mail implements the transactional email transport against a
// Brevo-compatible REST API.
package mail

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"mpeshop/internal/domain/service"
	"mpeshop/internal/errors"
	"mpeshop/internal/infra/settings"
)

const (
	defaultAPIURL  = "https://api.brevo.com/v3/smtp/email"
	defaultTimeout = 15 * time.Second

	// Error bodies are logged for diagnosis; cap how much we read.
	maxErrorBodyBytes = 4 << 10
)

type brevoParty struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type brevoAttachment struct {
	Name    string `json:"name"`
	Content string `json:"content"` // base64
}

type brevoPayload struct {
	Sender      brevoParty        `json:"sender"`
	To          []brevoParty      `json:"to"`
	ReplyTo     *brevoParty       `json:"replyTo,omitempty"`
	Subject     string            `json:"subject"`
	TextContent string            `json:"textContent"`
	Attachment  []brevoAttachment `json:"attachment,omitempty"`
}

type brevoMailer struct {
	settings *settings.Store
	client   *http.Client
	logger   *slog.Logger
}

// NewBrevoMailer creates a Mailer that posts to the configured
// Brevo-compatible endpoint. Endpoint, credentials and timeout come from the
// live settings snapshot so a settings reload takes effect without restart.
func NewBrevoMailer(store *settings.Store, logger *slog.Logger) service.Mailer {
	return &brevoMailer{
		settings: store,
		client:   &http.Client{},
		logger:   logger,
	}
}

func (m *brevoMailer) Send(ctx context.Context, msg service.Message) error {
	if len(msg.To) == 0 {
		return errors.New("no recipients")
	}

	cfg := m.settings.Current().Email
	if cfg.APIKey == "" {
		return errors.New("email api key is not configured")
	}

	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	payload := brevoPayload{
		Sender: brevoParty{
			Email: msg.FromEmail,
			Name:  msg.FromName,
		},
		Subject:     msg.Subject,
		TextContent: msg.TextBody,
	}
	for _, to := range msg.To {
		payload.To = append(payload.To, brevoParty{Email: to})
	}
	if msg.ReplyTo != "" {
		payload.ReplyTo = &brevoParty{Email: msg.ReplyTo}
	}
	for _, att := range msg.Attachments {
		payload.Attachment = append(payload.Attachment, brevoAttachment{
			Name:    att.Filename,
			Content: base64.StdEncoding.EncodeToString(att.Content),
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "marshal email payload")
	}

	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, apiURL, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build email request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("api-key", cfg.APIKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "send email request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		m.logger.ErrorContext(ctx, "email provider rejected send",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(respBody)),
		)

		return errors.Errorf("email provider returned status %d", resp.StatusCode)
	}

	return nil
}
