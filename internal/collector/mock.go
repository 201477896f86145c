package collector

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/qepting91/usaidwat/internal/domain"
)

var mockSubreddits = []string{"rpg", "DiscoElysium", "movies", "golang", "worldnews"}

// MockClient implements domain.CommentSource with generated data. Useful
// for trying out commands without touching the network.
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (mc *MockClient) Comments(ctx context.Context, username string, limit int) ([]domain.Comment, error) {
	if limit <= 0 {
		limit = domain.DefaultFetchLimit
	}

	var comments []domain.Comment
	now := time.Now()
	for i := 0; i < limit; i++ {
		comments = append(comments, domain.Comment{
			ID:        fmt.Sprintf("mock_%s_%d", username, i),
			Subreddit: mockSubreddits[i%len(mockSubreddits)],
			Body:      fmt.Sprintf("Simulated comment #%d from %s.", i, username),
			CreatedAt: now.Add(-time.Duration(i) * time.Hour),
			Permalink: fmt.Sprintf("/r/%s/comments/mock/%d/", mockSubreddits[i%len(mockSubreddits)], i),
			Score:     rand.Intn(500),
		})
	}
	return comments, nil
}

func (mc *MockClient) About(ctx context.Context, username string) (domain.Account, error) {
	return domain.Account{
		Name:         username,
		CreatedAt:    time.Date(2010, time.June, 15, 6, 13, 46, 0, time.UTC),
		LinkKarma:    rand.Intn(10000),
		CommentKarma: rand.Intn(100000),
	}, nil
}
