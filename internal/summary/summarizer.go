// Package summary turns a user's comment history into an LLM tone and
// sentiment summary.
package summary

import (
	"context"
	"html"
	"strings"

	"github.com/qepting91/usaidwat/internal/domain"
)

// Instructions is the fixed preamble sent ahead of the comment text.
const Instructions = "The text after this paragraph is a series of comments " +
	"that a single Reddit user has posted, separated by blank lines. " +
	"Summarize the main topics and interests reflected in the comments, " +
	"then describe the overall tone and sentiment of the user's writing. " +
	"Answer in a few short paragraphs of plain prose."

// DefaultMaxPromptBytes bounds the serialized prompt. 100 comments of a
// few kilobytes each fit comfortably under it.
const DefaultMaxPromptBytes = 400_000

// ModelClass names a tier of model rather than a concrete identifier, so
// the same flag works across providers.
type ModelClass string

const (
	// Flagship is the provider's standard, promoted model.
	Flagship ModelClass = "flagship"
	// Best is the provider's strongest model.
	Best ModelClass = "best"
	// Cheapest is the least expensive tier. It is the default.
	Cheapest ModelClass = "cheapest"
	// Fastest is the lowest-latency tier.
	Fastest ModelClass = "fastest"
)

// ParseModelClass recognizes a model class name.
func ParseModelClass(s string) (ModelClass, bool) {
	switch ModelClass(strings.ToLower(s)) {
	case Flagship:
		return Flagship, true
	case Best:
		return Best, true
	case Cheapest:
		return Cheapest, true
	case Fastest:
		return Fastest, true
	}
	return "", false
}

// ModelResolver maps a model class to a provider-specific identifier.
type ModelResolver interface {
	Model(class ModelClass) string
}

// Options configures a single summarization call.
type Options struct {
	// Model is the provider-specific model identifier.
	Model string
	// MaxPromptBytes caps the serialized prompt; 0 means the default.
	MaxPromptBytes int
	// MaxCommentLen caps each comment body in runes; 0 means uncapped.
	MaxCommentLen int
}

// Summarizer assembles a prompt from comments and runs it through a
// completion provider. It never retries a provider failure; the one
// permitted recovery is a single truncate-and-retry when the payload is
// too large.
type Summarizer struct {
	provider domain.Provider
}

// New wraps a completion provider.
func New(provider domain.Provider) *Summarizer {
	return &Summarizer{provider: provider}
}

// Summarize sends the comments to the provider and returns the raw
// textual summary. Comments are expected newest first; when the payload
// must shrink, the oldest comments are dropped.
func (s *Summarizer) Summarize(ctx context.Context, comments []domain.Comment, opts Options) (string, error) {
	maxBytes := opts.MaxPromptBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxPromptBytes
	}

	prompt := Prompt(comments, opts.MaxCommentLen)
	if len(prompt) <= maxBytes {
		out, err := s.provider.Complete(ctx, opts.Model, prompt)
		if err == nil || !domain.IsKind(err, domain.KindPayloadTooLarge) {
			return out, err
		}
		// The provider's real limit is below ours; aim well under the
		// size it just rejected.
		maxBytes = len(prompt) / 2
	}

	comments = TruncateOldest(comments, maxBytes, opts.MaxCommentLen)
	prompt = Prompt(comments, opts.MaxCommentLen)
	if len(prompt) > maxBytes {
		return "", domain.NewError(domain.KindPayloadTooLarge,
			"comment text does not fit in %d bytes even after truncation", maxBytes)
	}
	return s.provider.Complete(ctx, opts.Model, prompt)
}

// Prompt serializes the instruction preamble and comment bodies into a
// single completion input. Bodies are HTML-unescaped and joined by blank
// lines, newest first.
func Prompt(comments []domain.Comment, maxCommentLen int) string {
	var b strings.Builder
	b.WriteString(Instructions)
	for _, c := range comments {
		body := cleanBody(c.Body, maxCommentLen)
		if body == "" {
			continue
		}
		b.WriteString("\n\n")
		b.WriteString(body)
	}
	return b.String()
}

// TruncateOldest drops comments from the end of the slice (the oldest,
// given newest-first retrieval order) until the serialized prompt fits in
// budget bytes. A payload already under budget is returned unchanged.
func TruncateOldest(comments []domain.Comment, budget, maxCommentLen int) []domain.Comment {
	kept := comments
	for len(kept) > 0 && len(Prompt(kept, maxCommentLen)) > budget {
		kept = kept[:len(kept)-1]
	}
	return kept
}

func cleanBody(body string, maxLen int) string {
	// Reddit escapes &, <, and > in comment bodies.
	body = strings.TrimSpace(html.UnescapeString(body))
	if maxLen > 0 {
		if runes := []rune(body); len(runes) > maxLen {
			body = string(runes[:maxLen])
		}
	}
	return body
}
