package llm

import (
	"context"
	"errors"
	"fmt"
	"os"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/sokochat/sokochat/pkg/config"
)

// defaultAnthropicMaxTokens is used when neither the request nor the provider
// config sets a completion cap; the Messages API requires one.
const defaultAnthropicMaxTokens = 1024

// MessagesClient captures the subset of the Anthropic SDK used by the
// adapter. It is satisfied by client.Messages so tests can pass a mock.
type MessagesClient interface {
	New(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
}

// AnthropicProvider implements Provider via the Anthropic Messages API.
type AnthropicProvider struct {
	name     string
	messages MessagesClient
	cfg      *config.LLMProviderConfig
}

// NewAnthropicProvider builds an Anthropic-backed provider from its registry
// entry. The API key is read from the configured environment variable.
func NewAnthropicProvider(name string, cfg *config.LLMProviderConfig) (*AnthropicProvider, error) {
	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("LLM provider %s: environment variable %s is not set", name, cfg.APIKeyEnv)
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	client := sdk.NewClient(opts...)
	return &AnthropicProvider{name: name, messages: &client.Messages, cfg: cfg}, nil
}

// NewAnthropicProviderWithClient builds the adapter around an existing
// messages client (used by tests).
func NewAnthropicProviderWithClient(name string, cfg *config.LLMProviderConfig, messages MessagesClient) *AnthropicProvider {
	return &AnthropicProvider{name: name, messages: messages, cfg: cfg}
}

// Name returns the provider's registry name.
func (p *AnthropicProvider) Name() string { return p.name }

// Complete performs one message completion.
func (p *AnthropicProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	if len(req.Messages) == 0 {
		return nil, &ProviderError{Provider: p.name, Message: "messages are required"}
	}

	model := req.Model
	if model == "" {
		model = p.cfg.Model
	}
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = p.cfg.MaxTokens
	}
	if maxTokens == 0 {
		maxTokens = defaultAnthropicMaxTokens
	}

	// System messages go in the dedicated system field; the rest alternate
	// user/assistant turns.
	var system []sdk.TextBlockParam
	turns := make([]sdk.MessageParam, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case RoleSystem:
			system = append(system, sdk.TextBlockParam{Text: m.Content})
		case RoleAssistant:
			turns = append(turns, sdk.NewAssistantMessage(sdk.NewTextBlock(m.Content)))
		default:
			turns = append(turns, sdk.NewUserMessage(sdk.NewTextBlock(m.Content)))
		}
	}

	params := sdk.MessageNewParams{
		Model:     sdk.Model(model),
		MaxTokens: int64(maxTokens),
		Messages:  turns,
		System:    system,
	}
	if req.Temperature != nil {
		params.Temperature = sdk.Float(*req.Temperature)
	} else if p.cfg.Temperature != nil {
		params.Temperature = sdk.Float(*p.cfg.Temperature)
	}

	message, err := p.messages.New(ctx, params)
	if err != nil {
		return nil, p.classify(err)
	}

	var text string
	for _, block := range message.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	if text == "" {
		return nil, &ProviderError{Provider: p.name, Message: "empty completion", Retryable: true}
	}

	return &Response{
		Text:         text,
		Model:        model,
		InputTokens:  int(message.Usage.InputTokens),
		OutputTokens: int(message.Usage.OutputTokens),
	}, nil
}

func (p *AnthropicProvider) classify(err error) error {
	var apiErr *sdk.Error
	if errors.As(err, &apiErr) {
		return &ProviderError{
			Provider:   p.name,
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Error(),
			Retryable:  retryableStatus(apiErr.StatusCode),
		}
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return err
	}
	return &ProviderError{Provider: p.name, Message: err.Error(), Retryable: true}
}
