package collector

import (
	"context"
	"time"

	"github.com/loganintech/go-reddit/v2/reddit"
	"golang.org/x/time/rate"

	"github.com/qepting91/usaidwat/internal/domain"
)

// APIClient reads a user's history through the authenticated Reddit API.
type APIClient struct {
	client  *reddit.Client
	limiter *rate.Limiter
}

// NewAPIClient builds an OAuth client from the supplied credentials.
func NewAPIClient(creds domain.Credentials) (*APIClient, error) {
	if creds.RedditClientID == "" || creds.RedditClientSecret == "" {
		return nil, domain.NewError(domain.KindConfiguration,
			"REDDIT_CLIENT_ID and REDDIT_CLIENT_SECRET are required for api mode")
	}

	client, err := reddit.NewClient(reddit.Credentials{
		ID:       creds.RedditClientID,
		Secret:   creds.RedditClientSecret,
		Username: creds.RedditUsername,
		Password: creds.RedditPassword,
	}, reddit.WithUserAgent(creds.UserAgent))
	if err != nil {
		return nil, err
	}

	// API rate limit: ~60 reqs/min (safe buffer)
	limiter := rate.NewLimiter(rate.Every(1*time.Second), 1)

	return &APIClient{client: client, limiter: limiter}, nil
}

// Comments pages through the user's comment listing until limit comments
// are collected or the listing is exhausted. Pages are fetched strictly in
// sequence: each request depends on the previous page's cursor.
func (ac *APIClient) Comments(ctx context.Context, username string, limit int) ([]domain.Comment, error) {
	if limit <= 0 {
		limit = domain.DefaultFetchLimit
	}

	var out []domain.Comment
	cursor := ""
	for {
		if err := ac.limiter.Wait(ctx); err != nil {
			return nil, classifyErr(err, username)
		}

		comments, resp, err := ac.client.User.CommentsOf(ctx, username, &reddit.ListUserOverviewOptions{
			ListOptions: reddit.ListOptions{
				Limit: PageSize(len(out), limit),
				After: cursor,
			},
		})
		if err != nil {
			return nil, classifyErr(err, username)
		}

		page := PageResult{After: resp.After}
		for _, c := range comments {
			page.Comments = append(page.Comments, normalizeAPIComment(c))
		}

		out = append(out, page.Comments...)
		if len(out) > limit {
			out = out[:limit]
		}

		next, cont := NextPage(cursor, page, len(out), limit)
		if !cont {
			return out, nil
		}
		cursor = next
	}
}

// About returns the user's profile data.
func (ac *APIClient) About(ctx context.Context, username string) (domain.Account, error) {
	if err := ac.limiter.Wait(ctx); err != nil {
		return domain.Account{}, classifyErr(err, username)
	}

	user, _, err := ac.client.User.Get(ctx, username)
	if err != nil {
		return domain.Account{}, classifyErr(err, username)
	}

	return domain.Account{
		Name:         user.Name,
		CreatedAt:    timeOrZero(user.Created),
		LinkKarma:    user.PostKarma,
		CommentKarma: user.CommentKarma,
	}, nil
}

func normalizeAPIComment(c *reddit.Comment) domain.Comment {
	return domain.Comment{
		ID:        c.ID,
		Subreddit: c.SubredditName,
		Body:      c.Body,
		CreatedAt: timeOrZero(c.Created),
		Permalink: c.Permalink,
		Score:     c.Score,
	}
}

// Reddit omits created_utc for suspended accounts, so go-reddit leaves
// the timestamp nil.
func timeOrZero(ts *reddit.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.Time
}
