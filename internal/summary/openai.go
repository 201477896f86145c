package summary

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/qepting91/usaidwat/internal/domain"
)

// OpenAIProvider completes prompts through the OpenAI chat API.
type OpenAIProvider struct {
	client *openai.Client
}

// NewOpenAIProvider builds a provider from the supplied credentials.
func NewOpenAIProvider(creds domain.Credentials) (*OpenAIProvider, error) {
	if creds.OpenAIKey == "" {
		return nil, domain.NewError(domain.KindConfiguration,
			"OPENAI_API_KEY is not set")
	}
	return &OpenAIProvider{client: openai.NewClient(creds.OpenAIKey)}, nil
}

// Model maps a model class to an OpenAI model identifier.
func (p *OpenAIProvider) Model(class ModelClass) string {
	switch class {
	case Flagship:
		return "gpt-4o"
	case Best:
		return "gpt-4.1"
	case Fastest:
		return "gpt-4o-mini"
	default:
		return "gpt-4.1-nano"
	}
}

// Complete issues one synchronous chat completion. Provider failures are
// surfaced verbatim, never retried.
func (p *OpenAIProvider) Complete(ctx context.Context, model, prompt string) (string, error) {
	if model == "" {
		model = p.Model(Cheapest)
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		}},
	})
	if err != nil {
		return "", classifyOpenAIErr(err)
	}
	if len(resp.Choices) == 0 {
		return "", domain.NewError(domain.KindProvider, "empty response from OpenAI")
	}
	return resp.Choices[0].Message.Content, nil
}

func classifyOpenAIErr(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		code := fmt.Sprint(apiErr.Code)
		if apiErr.HTTPStatusCode == 413 || code == "context_length_exceeded" {
			return domain.WrapError(domain.KindPayloadTooLarge, err, "openai rejected the prompt size")
		}
		return domain.WrapError(domain.KindProvider, err, "openai returned HTTP %d", apiErr.HTTPStatusCode)
	}
	return domain.WrapError(domain.KindProvider, err, "calling openai")
}
