// Package anthropic implements the language model capabilities of the
// pipeline on top of the Anthropic Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/voicecare/voicemail_triage/internal/capability"
)

const (
	DefaultModel = "claude-haiku-4-5-20251001"
	provider     = "anthropic"
)

type Client struct {
	log    *slog.Logger
	client sdk.Client
	model  string
}

// New builds a client. SDK retries are disabled: retry policy belongs to the
// pipeline.
func New(log *slog.Logger, apiKey, model string, opts ...option.RequestOption) *Client {
	if model == "" {
		model = DefaultModel
	}

	opts = append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)

	return &Client{
		log:    log,
		client: sdk.NewClient(opts...),
		model:  model,
	}
}

type request struct {
	system      string
	prompt      string
	maxTokens   int64
	temperature float64
}

func (c *Client) complete(ctx context.Context, req request) (string, error) {
	params := sdk.MessageNewParams{
		Model:       sdk.Model(c.model),
		MaxTokens:   req.maxTokens,
		Messages:    []sdk.MessageParam{sdk.NewUserMessage(sdk.NewTextBlock(req.prompt))},
		Temperature: sdk.Float(req.temperature),
	}

	if req.system != "" {
		params.System = []sdk.TextBlockParam{{Text: req.system}}
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		var apiErr *sdk.Error
		if errors.As(err, &apiErr) {
			return "", &capability.StatusError{
				Provider:   provider,
				StatusCode: apiErr.StatusCode,
				Body:       apiErr.Error(),
			}
		}

		return "", fmt.Errorf("%s: create message: %w", provider, err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}

	c.log.DebugContext(ctx, "model completion received",
		slog.String("model", string(msg.Model)),
		slog.Int64("input_tokens", msg.Usage.InputTokens),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
	)

	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", fmt.Errorf("%w: empty completion", capability.ErrInvalidOutput)
	}

	return text, nil
}
