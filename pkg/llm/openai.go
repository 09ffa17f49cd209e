package llm

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/sokochat/sokochat/pkg/config"
)

// ChatService captures the subset of the OpenAI SDK used by the adapter.
// It is satisfied by client.Chat.Completions so tests can pass a mock.
type ChatService interface {
	New(ctx context.Context, params openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

// OpenAIProvider implements Provider via the OpenAI Chat Completions API.
type OpenAIProvider struct {
	name string
	chat ChatService
	cfg  *config.LLMProviderConfig
}

// NewOpenAIProvider builds an OpenAI-backed provider from its registry entry.
// The API key is read from the configured environment variable.
func NewOpenAIProvider(name string, cfg *config.LLMProviderConfig) (*OpenAIProvider, error) {
	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("LLM provider %s: environment variable %s is not set", name, cfg.APIKeyEnv)
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	client := openai.NewClient(opts...)
	return &OpenAIProvider{name: name, chat: &client.Chat.Completions, cfg: cfg}, nil
}

// NewOpenAIProviderWithClient builds the adapter around an existing chat
// service (used by tests).
func NewOpenAIProviderWithClient(name string, cfg *config.LLMProviderConfig, chat ChatService) *OpenAIProvider {
	return &OpenAIProvider{name: name, chat: chat, cfg: cfg}
}

// Name returns the provider's registry name.
func (p *OpenAIProvider) Name() string { return p.name }

// Complete performs one chat completion.
func (p *OpenAIProvider) Complete(ctx context.Context, req Request) (*Response, error) {
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

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case RoleSystem:
			messages = append(messages, openai.SystemMessage(m.Content))
		case RoleAssistant:
			messages = append(messages, openai.AssistantMessage(m.Content))
		default:
			messages = append(messages, openai.UserMessage(m.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(model),
		Messages: messages,
	}
	if maxTokens > 0 {
		params.MaxTokens = openai.Int(int64(maxTokens))
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	} else if p.cfg.Temperature != nil {
		params.Temperature = openai.Float(*p.cfg.Temperature)
	}

	completion, err := p.chat.New(ctx, params)
	if err != nil {
		return nil, p.classify(err)
	}
	if len(completion.Choices) == 0 {
		return nil, &ProviderError{Provider: p.name, Message: "empty completion", Retryable: true}
	}

	return &Response{
		Text:         completion.Choices[0].Message.Content,
		Model:        model,
		InputTokens:  int(completion.Usage.PromptTokens),
		OutputTokens: int(completion.Usage.CompletionTokens),
	}, nil
}

func (p *OpenAIProvider) classify(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return &ProviderError{
			Provider:   p.name,
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
			Retryable:  retryableStatus(apiErr.StatusCode),
		}
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return err
	}
	return &ProviderError{Provider: p.name, Message: err.Error(), Retryable: true}
}
