package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("COLLECTOR_MODE", "")
	t.Setenv("REDDIT_USER_AGENT", "")
	t.Setenv("USAIDWAT_LIMIT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "public", cfg.Mode)
	assert.Equal(t, 100, cfg.FetchLimit)
	assert.Equal(t, "usaidwat v"+Version, cfg.UserAgent)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("COLLECTOR_MODE", "api")
	t.Setenv("REDDIT_CLIENT_ID", "id")
	t.Setenv("REDDIT_CLIENT_SECRET", "secret")
	t.Setenv("REDDIT_USER_AGENT", "custom agent")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("USAIDWAT_LIMIT", "50")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "api", cfg.Mode)
	assert.Equal(t, 50, cfg.FetchLimit)
	assert.Equal(t, "custom agent", cfg.UserAgent)

	creds := cfg.Credentials()
	assert.Equal(t, "id", creds.RedditClientID)
	assert.Equal(t, "secret", creds.RedditClientSecret)
	assert.Equal(t, "custom agent", creds.UserAgent)
	assert.Equal(t, "sk-test", creds.OpenAIKey)
}

func TestLoadNormalizesNonPositiveLimit(t *testing.T) {
	t.Setenv("USAIDWAT_LIMIT", "-5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.FetchLimit)
}
