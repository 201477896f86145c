// Package config reads all externally supplied settings from the process
// environment in one place.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/qepting91/usaidwat/internal/domain"
)

// Version is the tool version, stamped into the Reddit User-Agent.
const Version = "1.0.0"

// Config is everything usaidwat reads from the environment. Core
// components never touch the environment themselves; they receive a
// Credentials value built from this struct.
type Config struct {
	// Mode selects the comment source: api, public, or mock.
	Mode string `env:"COLLECTOR_MODE" envDefault:"public"`

	RedditClientID     string `env:"REDDIT_CLIENT_ID"`
	RedditClientSecret string `env:"REDDIT_CLIENT_SECRET"`
	RedditUsername     string `env:"REDDIT_USERNAME"`
	RedditPassword     string `env:"REDDIT_PASSWORD"`
	UserAgent          string `env:"REDDIT_USER_AGENT"`

	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`

	// FetchLimit caps comments retrieved per run.
	FetchLimit int `env:"USAIDWAT_LIMIT" envDefault:"100"`
}

// Load parses the process environment.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, domain.WrapError(domain.KindConfiguration, err, "parsing environment")
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = fmt.Sprintf("usaidwat v%s", Version)
	}
	if cfg.FetchLimit <= 0 {
		cfg.FetchLimit = domain.DefaultFetchLimit
	}
	return cfg, nil
}

// Credentials bundles the secrets for injection into constructors.
func (c Config) Credentials() domain.Credentials {
	return domain.Credentials{
		RedditClientID:     c.RedditClientID,
		RedditClientSecret: c.RedditClientSecret,
		RedditUsername:     c.RedditUsername,
		RedditPassword:     c.RedditPassword,
		UserAgent:          c.UserAgent,
		OpenAIKey:          c.OpenAIAPIKey,
		AnthropicKey:       c.AnthropicAPIKey,
	}
}
