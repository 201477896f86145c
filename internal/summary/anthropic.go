package summary

import (
	"context"
	"errors"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	anthropicopt "github.com/anthropics/anthropic-sdk-go/option"

	"github.com/qepting91/usaidwat/internal/domain"
)

// AnthropicProvider completes prompts through the Anthropic Messages API.
type AnthropicProvider struct {
	client    anthropic.Client
	maxTokens int64
}

// NewAnthropicProvider builds a provider from the supplied credentials.
func NewAnthropicProvider(creds domain.Credentials) (*AnthropicProvider, error) {
	if creds.AnthropicKey == "" {
		return nil, domain.NewError(domain.KindConfiguration,
			"ANTHROPIC_API_KEY is not set")
	}
	return &AnthropicProvider{
		client:    anthropic.NewClient(anthropicopt.WithAPIKey(creds.AnthropicKey)),
		maxTokens: 1024,
	}, nil
}

// Model maps a model class to an Anthropic model identifier.
func (p *AnthropicProvider) Model(class ModelClass) string {
	switch class {
	case Flagship:
		return "claude-sonnet-4-0"
	case Best:
		return "claude-opus-4-0"
	case Fastest:
		return "claude-3-5-haiku-latest"
	default:
		return "claude-3-5-haiku-latest"
	}
}

// Complete issues one synchronous message request and concatenates the
// text blocks of the answer.
func (p *AnthropicProvider) Complete(ctx context.Context, model, prompt string) (string, error) {
	if model == "" {
		model = p.Model(Cheapest)
	}

	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: p.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", classifyAnthropicErr(err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			b.WriteString(text.Text)
		}
	}
	if b.Len() == 0 {
		return "", domain.NewError(domain.KindProvider, "empty response from Anthropic")
	}
	return b.String(), nil
}

func classifyAnthropicErr(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == 413 {
			return domain.WrapError(domain.KindPayloadTooLarge, err, "anthropic rejected the prompt size")
		}
		return domain.WrapError(domain.KindProvider, err, "anthropic returned HTTP %d", apiErr.StatusCode)
	}
	return domain.WrapError(domain.KindProvider, err, "calling anthropic")
}
