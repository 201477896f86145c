package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/qepting91/usaidwat/internal/domain"
)

const defaultBaseURL = "https://www.reddit.com"

// PublicClient reads a user's history through Reddit's unauthenticated
// .json endpoints. Reddit requires a descriptive User-Agent for these.
type PublicClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	userAgent  string
}

// listingEnvelope mirrors the Reddit listing JSON for user comment pages.
type listingEnvelope struct {
	Data struct {
		After    string `json:"after"`
		Children []struct {
			Data struct {
				ID         string  `json:"id"`
				Subreddit  string  `json:"subreddit"`
				Body       string  `json:"body"`
				CreatedUTC float64 `json:"created_utc"`
				Permalink  string  `json:"permalink"`
				Score      int     `json:"score"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type aboutEnvelope struct {
	Data struct {
		Name         string  `json:"name"`
		CreatedUTC   float64 `json:"created_utc"`
		LinkKarma    int     `json:"link_karma"`
		CommentKarma int     `json:"comment_karma"`
	} `json:"data"`
}

// NewPublicClient builds an unauthenticated client.
func NewPublicClient(userAgent string) (*PublicClient, error) {
	if userAgent == "" {
		return nil, domain.NewError(domain.KindConfiguration,
			"a User-Agent is required for public mode")
	}
	return &PublicClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		// Public JSON limit: 1 req / 2 seconds (stricter)
		limiter:   rate.NewLimiter(rate.Every(2*time.Second), 1),
		baseURL:   defaultBaseURL,
		userAgent: userAgent,
	}, nil
}

// Comments pages through /user/<name>/comments.json until limit comments
// are collected or the listing is exhausted.
func (pc *PublicClient) Comments(ctx context.Context, username string, limit int) ([]domain.Comment, error) {
	if limit <= 0 {
		limit = domain.DefaultFetchLimit
	}

	var out []domain.Comment
	cursor := ""
	for {
		page, err := pc.fetchPage(ctx, username, PageSize(len(out), limit), cursor)
		if err != nil {
			return nil, err
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

// About fetches /user/<name>/about.json.
func (pc *PublicClient) About(ctx context.Context, username string) (domain.Account, error) {
	uri := fmt.Sprintf("%s/user/%s/about.json?raw_json=1", pc.baseURL, url.PathEscape(username))

	var envelope aboutEnvelope
	if err := pc.getJSON(ctx, uri, username, &envelope); err != nil {
		return domain.Account{}, err
	}

	return domain.Account{
		Name:         envelope.Data.Name,
		CreatedAt:    time.Unix(int64(envelope.Data.CreatedUTC), 0).UTC(),
		LinkKarma:    envelope.Data.LinkKarma,
		CommentKarma: envelope.Data.CommentKarma,
	}, nil
}

func (pc *PublicClient) fetchPage(ctx context.Context, username string, size int, cursor string) (PageResult, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(size))
	query.Set("raw_json", "1")
	if cursor != "" {
		query.Set("after", cursor)
	}
	uri := fmt.Sprintf("%s/user/%s/comments.json?%s", pc.baseURL, url.PathEscape(username), query.Encode())

	var envelope listingEnvelope
	if err := pc.getJSON(ctx, uri, username, &envelope); err != nil {
		return PageResult{}, err
	}

	page := PageResult{After: envelope.Data.After}
	for _, child := range envelope.Data.Children {
		d := child.Data
		page.Comments = append(page.Comments, domain.Comment{
			ID:        d.ID,
			Subreddit: d.Subreddit,
			Body:      d.Body,
			CreatedAt: time.Unix(int64(d.CreatedUTC), 0).UTC(),
			Permalink: d.Permalink,
			Score:     d.Score,
		})
	}
	return page, nil
}

func (pc *PublicClient) getJSON(ctx context.Context, uri, username string, v any) error {
	if err := pc.limiter.Wait(ctx); err != nil {
		return classifyErr(err, username)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", pc.userAgent)

	resp, err := pc.httpClient.Do(req)
	if err != nil {
		return classifyErr(err, username)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return classifyStatus(resp.StatusCode, username, retryAfterHeader(resp))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return domain.WrapError(domain.KindTransientNetwork, err, "decoding reddit response")
	}
	return nil
}
