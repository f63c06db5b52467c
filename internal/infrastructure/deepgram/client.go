// Package deepgram transcribes voicemail audio with the Deepgram
// pre-recorded listen API.
package deepgram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/voicecare/voicemail_triage/internal/capability"
	"github.com/voicecare/voicemail_triage/internal/domain"
)

const (
	DefaultURL   = "https://api.deepgram.com"
	DefaultModel = "nova-2-medical"

	provider       = "deepgram"
	requestTimeout = 2 * time.Minute
	maxErrorBody   = 1 << 10
)

type Client struct {
	log        *slog.Logger
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

func New(log *slog.Logger, baseURL, apiKey, model string) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	if model == "" {
		model = DefaultModel
	}

	return &Client{
		log:        log,
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
	}
}

type listenResponse struct {
	Results struct {
		Channels []struct {
			Alternatives []struct {
				Transcript string  `json:"transcript"`
				Confidence float64 `json:"confidence"`
			} `json:"alternatives"`
		} `json:"channels"`
	} `json:"results"`
}

// Transcribe asks Deepgram to fetch and transcribe the audio at audioURL.
func (c *Client) Transcribe(ctx context.Context, audioURL string) (domain.Transcription, error) {
	payload, err := json.Marshal(map[string]string{"url": audioURL})
	if err != nil {
		return domain.Transcription{}, fmt.Errorf("failed to encode request: %w", err)
	}

	query := url.Values{}
	query.Set("model", c.model)
	query.Set("punctuate", "true")
	query.Set("smart_format", "true")
	query.Set("diarize", "false")
	query.Set("language", "en")

	endpoint := c.baseURL + "/v1/listen?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return domain.Transcription{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Transcription{}, fmt.Errorf("%s: request failed: %w", provider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return domain.Transcription{}, &capability.StatusError{
			Provider:   provider,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var decoded listenResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Transcription{}, fmt.Errorf("%w: %s: failed to decode response: %v", capability.ErrInvalidOutput, provider, err)
	}

	if len(decoded.Results.Channels) == 0 || len(decoded.Results.Channels[0].Alternatives) == 0 {
		return domain.Transcription{}, fmt.Errorf("%w: %s: no transcription alternatives", capability.ErrInvalidOutput, provider)
	}

	best := decoded.Results.Channels[0].Alternatives[0]

	c.log.DebugContext(ctx, "transcription received",
		slog.Float64("confidence", best.Confidence),
		slog.Int("length", len(best.Transcript)),
	)

	return domain.Transcription{
		Text:       best.Transcript,
		Confidence: best.Confidence,
		Provider:   provider + "_" + c.model,
	}, nil
}
