package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/wxdeck/wxdeck/internal/metrics"
	"github.com/wxdeck/wxdeck/internal/models"
)

// ErrNoAPIKey is returned at construction when the credential is missing.
// It is a configuration condition, caught before any network call, and is
// distinguishable from a downstream API failure.
var ErrNoAPIKey = errors.New("chat API key not set")

// Message is one turn of prior conversation history.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Client asks natural-language questions about a forecast through a chat
// completion API. Answers are grounded solely in the context built from the
// forecast and location.
type Client struct {
	client    openai.Client
	model     string
	maxTokens int64
	maxHours  int
}

// NewClient creates a chat client. baseURL may be empty to use the
// provider's default endpoint.
func NewClient(apiKey, baseURL, model string, maxTokens int) (*Client, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &Client{
		client:    openai.NewClient(opts...),
		model:     model,
		maxTokens: int64(maxTokens),
		maxHours:  DefaultMaxHours,
	}, nil
}

// Ask sends the question with the forecast context and prior history, and
// returns the assistant's text answer.
func (c *Client) Ask(ctx context.Context, question string, f models.Forecast, loc models.GeoLocation, history []Message) (string, error) {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+2)
	msgs = append(msgs, openai.SystemMessage(BuildContext(f, loc, c.maxHours)))
	for _, m := range history {
		switch m.Role {
		case "assistant":
			msgs = append(msgs, openai.AssistantMessage(m.Content))
		default:
			msgs = append(msgs, openai.UserMessage(m.Content))
		}
	}
	msgs = append(msgs, openai.UserMessage(question))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:     openai.ChatModel(c.model),
		Messages:  msgs,
		MaxTokens: openai.Int(c.maxTokens),
	})
	if err != nil {
		metrics.ChatRequestsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("weather chat request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		metrics.ChatRequestsTotal.WithLabelValues("empty").Inc()
		return "", errors.New("weather chat returned no choices")
	}

	metrics.ChatRequestsTotal.WithLabelValues("ok").Inc()
	return resp.Choices[0].Message.Content, nil
}
