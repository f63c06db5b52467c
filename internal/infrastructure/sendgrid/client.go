// Package sendgrid delivers digest emails through the SendGrid v3 mail API.
package sendgrid

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/voicecare/voicemail_triage/internal/capability"
)

const (
	DefaultURL = "https://api.sendgrid.com"

	provider       = "sendgrid"
	requestTimeout = 30 * time.Second
	maxErrorBody   = 1 << 10
)

var ErrNotConfigured = errors.New("sendgrid api key or sender address is not configured")

type Client struct {
	log        *slog.Logger
	httpClient *http.Client
	baseURL    string
	apiKey     string
	from       string
}

func New(log *slog.Logger, baseURL, apiKey, from string) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}

	return &Client{
		log:        log,
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		from:       from,
	}
}

type address struct {
	Email string `json:"email"`
}

type personalization struct {
	To []address `json:"to"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type mail struct {
	Personalizations []personalization `json:"personalizations"`
	From             address           `json:"from"`
	Subject          string            `json:"subject"`
	Content          []content         `json:"content"`
}

// SendNotification sends a plain text email. It returns false without an
// error when SendGrid rejects the message as a client error, and an error for
// transport failures and retryable statuses.
func (c *Client) SendNotification(ctx context.Context, destination, subject, body string) (bool, error) {
	if c.apiKey == "" || c.from == "" {
		return false, ErrNotConfigured
	}

	payload, err := json.Marshal(mail{
		Personalizations: []personalization{{To: []address{{Email: destination}}}},
		From:             address{Email: c.from},
		Subject:          subject,
		Content:          []content{{Type: "text/plain", Value: body}},
	})
	if err != nil {
		return false, fmt.Errorf("failed to encode mail: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v3/mail/send", bytes.NewReader(payload))
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("%s: request failed: %w", provider, err)
	}
	defer resp.Body.Close()

	log := c.log.With(slog.Int("status_code", resp.StatusCode))

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusAccepted:
		log.InfoContext(ctx, "email sent")
		return true, nil

	case capability.IsTransientHTTPStatus(resp.StatusCode):
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return false, &capability.StatusError{
			Provider:   provider,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(errBody)),
		}

	default:
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		log.ErrorContext(ctx, "email rejected", slog.String("body", strings.TrimSpace(string(errBody))))
		return false, nil
	}
}
