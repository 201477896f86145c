package cli

import (
	"context"
	"strings"

	"github.com/qepting91/usaidwat/internal/collector"
	"github.com/qepting91/usaidwat/internal/config"
	"github.com/qepting91/usaidwat/internal/domain"
)

// newSource resolves the comment source for a command run: the injected
// test double when present, otherwise a collector built from the
// environment.
func newSource(opts *Options) (domain.CommentSource, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, err
	}
	if opts.Source != nil {
		return opts.Source, cfg, nil
	}
	source, err := collector.New(cfg.Mode, cfg.Credentials())
	if err != nil {
		return nil, config.Config{}, err
	}
	return source, cfg, nil
}

// fetchComments retrieves a user's recent comments, applying the
// configured fetch limit unless the command overrides it.
func fetchComments(ctx context.Context, opts *Options, username string, limit int) ([]domain.Comment, error) {
	if !domain.ValidUsername(username) {
		return nil, domain.NewError(domain.KindNotFound, "no such user: %s", username)
	}

	source, cfg, err := newSource(opts)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = cfg.FetchLimit
	}

	logger := loggerFromContext(ctx)
	logger.Debug("fetching comments", "username", username, "limit", limit)

	return source.Comments(ctx, username, limit)
}

// fetchAccount retrieves a user's account record.
func fetchAccount(ctx context.Context, opts *Options, username string) (domain.Account, error) {
	if !domain.ValidUsername(username) {
		return domain.Account{}, domain.NewError(domain.KindNotFound, "no such user: %s", username)
	}

	source, _, err := newSource(opts)
	if err != nil {
		return domain.Account{}, err
	}
	return source.About(ctx, username)
}

// splitUserArgs separates the username from trailing subreddit filter
// arguments.
func splitUserArgs(args []string) (string, []string) {
	username := strings.TrimPrefix(args[0], "/u/")
	username = strings.TrimPrefix(username, "u/")
	return username, args[1:]
}
