package domain

import (
	"context"
	"regexp"
	"time"
)

// DefaultFetchLimit caps the number of comments retrieved per run.
const DefaultFetchLimit = 100

// MaxPageSize is the largest page the Reddit listing API will serve.
const MaxPageSize = 100

// Comment is a single normalized Reddit comment. Instances are built by a
// CommentSource and never mutated afterward. Bodies are passed through
// verbatim, including Reddit's "[deleted]"/"[removed]" sentinels.
type Comment struct {
	ID        string    `json:"id"`
	Subreddit string    `json:"subreddit"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	Permalink string    `json:"permalink"`
	Score     int       `json:"score"`
}

// Account holds profile data for a Redditor.
type Account struct {
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
	LinkKarma    int       `json:"link_karma"`
	CommentKarma int       `json:"comment_karma"`
}

// Credentials carries every externally supplied secret the tool needs.
// It is read once from the environment and passed into constructors so
// that components stay testable with fakes.
type Credentials struct {
	RedditClientID     string
	RedditClientSecret string
	RedditUsername     string
	RedditPassword     string
	UserAgent          string
	OpenAIKey          string
	AnthropicKey       string
}

// CommentSource retrieves a user's public history from Reddit.
type CommentSource interface {
	// Comments returns up to limit of the user's most recent comments in
	// retrieval order (newest first). A user with no comments yields an
	// empty slice, not an error.
	Comments(ctx context.Context, username string, limit int) ([]Comment, error)

	// About returns profile data for the user.
	About(ctx context.Context, username string) (Account, error)
}

// Provider is a minimal LLM completion API: one model, one prompt, one
// synchronous answer.
type Provider interface {
	Complete(ctx context.Context, model, prompt string) (string, error)
}

// Reddit usernames are 3-20 word characters or hyphens.
var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{3,20}$`)

// ValidUsername reports whether name is a plausible Reddit username.
func ValidUsername(name string) bool {
	return usernameRegex.MatchString(name)
}
