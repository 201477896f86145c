package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/qepting91/usaidwat/internal/domain"
)

type fakeListing struct {
	after    string
	comments []map[string]any
}

func fakeComment(id, sub string) map[string]any {
	return map[string]any{
		"id":          id,
		"subreddit":   sub,
		"body":        "body of " + id,
		"created_utc": float64(1700000000),
		"permalink":   "/r/" + sub + "/comments/" + id + "/",
		"score":       42,
	}
}

func writeListing(w http.ResponseWriter, listing fakeListing) {
	children := make([]map[string]any, 0, len(listing.comments))
	for _, c := range listing.comments {
		children = append(children, map[string]any{"data": c})
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"data": map[string]any{
			"after":    listing.after,
			"children": children,
		},
	})
}

func newTestClient(t *testing.T, handler http.Handler) (*PublicClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	pc, err := NewPublicClient("usaidwat test")
	require.NoError(t, err)
	pc.baseURL = srv.URL
	pc.limiter = rate.NewLimiter(rate.Inf, 1)
	return pc, srv
}

func TestPublicClientFetchesSinglePage(t *testing.T) {
	pc, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/mipadi/comments.json", r.URL.Path)
		assert.Equal(t, "usaidwat test", r.Header.Get("User-Agent"))
		writeListing(w, fakeListing{
			comments: []map[string]any{fakeComment("c1", "rpg"), fakeComment("c2", "movies")},
		})
	}))

	comments, err := pc.Comments(context.Background(), "mipadi", 100)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "c1", comments[0].ID)
	assert.Equal(t, "rpg", comments[0].Subreddit)
	assert.Equal(t, "body of c1", comments[0].Body)
	assert.Equal(t, "/r/rpg/comments/c1/", comments[0].Permalink)
	assert.Equal(t, 42, comments[0].Score)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), comments[0].CreatedAt)
}

func TestPublicClientPaginates(t *testing.T) {
	var requested []string
	pc, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		after := r.URL.Query().Get("after")
		requested = append(requested, after)
		switch after {
		case "":
			var cs []map[string]any
			for i := 0; i < 100; i++ {
				cs = append(cs, fakeComment(fmt.Sprintf("a%d", i), "rpg"))
			}
			writeListing(w, fakeListing{after: "t1_page2", comments: cs})
		case "t1_page2":
			writeListing(w, fakeListing{comments: []map[string]any{fakeComment("b0", "books")}})
		default:
			t.Errorf("unexpected cursor %q", after)
		}
	}))

	comments, err := pc.Comments(context.Background(), "mipadi", 150)
	require.NoError(t, err)
	assert.Len(t, comments, 101)
	assert.Equal(t, []string{"", "t1_page2"}, requested)
	// second page asks only for the remaining budget
}

func TestPublicClientHonorsLimitAcrossFullPages(t *testing.T) {
	calls := 0
	pc, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		var cs []map[string]any
		for i := 0; i < 100; i++ {
			cs = append(cs, fakeComment(fmt.Sprintf("p%d_%d", calls, i), "rpg"))
		}
		writeListing(w, fakeListing{after: fmt.Sprintf("t1_p%d", calls), comments: cs})
	}))

	comments, err := pc.Comments(context.Background(), "mipadi", 100)
	require.NoError(t, err)
	assert.Len(t, comments, 100)
	assert.Equal(t, 1, calls, "limit reached after first page; no further requests")
}

func TestPublicClientStallDetection(t *testing.T) {
	calls := 0
	pc, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		writeListing(w, fakeListing{after: "t1_same", comments: []map[string]any{fakeComment(fmt.Sprintf("c%d", calls), "rpg")}})
	}))

	comments, err := pc.Comments(context.Background(), "mipadi", 100)
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "identical cursors on consecutive pages must stop the loop")
	assert.Len(t, comments, 2)
}

func TestPublicClientEmptyHistory(t *testing.T) {
	pc, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeListing(w, fakeListing{})
	}))

	comments, err := pc.Comments(context.Background(), "lurker", 100)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestPublicClientNotFound(t *testing.T) {
	pc, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))

	_, err := pc.Comments(context.Background(), "nobody", 100)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}

func TestPublicClientRateLimited(t *testing.T) {
	pc, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))

	_, err := pc.Comments(context.Background(), "mipadi", 100)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindRateLimited))

	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 30*time.Second, de.RetryAfter)
}

func TestPublicClientServerError(t *testing.T) {
	pc, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "oops", http.StatusInternalServerError)
	}))

	_, err := pc.Comments(context.Background(), "mipadi", 100)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindTransientNetwork))
}

func TestPublicClientCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pc, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cancel()
		<-r.Context().Done()
	}))

	_, err := pc.Comments(ctx, "mipadi", 100)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPublicClientDeletedBodiesPassThrough(t *testing.T) {
	deleted := fakeComment("c1", "rpg")
	deleted["body"] = "[deleted]"
	pc, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeListing(w, fakeListing{comments: []map[string]any{deleted}})
	}))

	comments, err := pc.Comments(context.Background(), "mipadi", 100)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "[deleted]", comments[0].Body)
}

func TestPublicClientAbout(t *testing.T) {
	pc, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/mipadi/about.json", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"name":          "mipadi",
				"created_utc":   float64(1206998126),
				"link_karma":    11729,
				"comment_karma": 121995,
			},
		})
	}))

	acct, err := pc.About(context.Background(), "mipadi")
	require.NoError(t, err)
	assert.Equal(t, "mipadi", acct.Name)
	assert.Equal(t, 11729, acct.LinkKarma)
	assert.Equal(t, 121995, acct.CommentKarma)
	assert.Equal(t, 2008, acct.CreatedAt.Year())
}

func TestFactoryModes(t *testing.T) {
	creds := domain.Credentials{UserAgent: "usaidwat test"}

	src, err := New("public", creds)
	require.NoError(t, err)
	assert.IsType(t, &PublicClient{}, src)

	src, err = New("mock", creds)
	require.NoError(t, err)
	assert.IsType(t, &MockClient{}, src)

	_, err = New("bogus", creds)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindConfiguration))

	_, err = New("api", domain.Credentials{})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindConfiguration))
}
