// Package tally groups retrieved comments by the subreddit they were
// posted in.
package tally

import (
	"sort"
	"strings"

	"github.com/qepting91/usaidwat/internal/domain"
)

// Order selects a presentation order for tally entries. The tally itself
// imposes no order; this only affects how entries are listed.
type Order int

const (
	// Lexicographic sorts case-insensitively by subreddit name.
	Lexicographic Order = iota
	// ByCount sorts by descending count, ties broken by name.
	ByCount
)

// Entry is one subreddit's line in a tally.
type Entry struct {
	Subreddit string
	Count     int
}

// Tally maps subreddits to counts and ordered comment lists. Subreddit
// keys are matched case-insensitively; the display casing is whichever
// the source returned first. Built in one pass and read-only afterward.
type Tally struct {
	order   []string // folded keys, first-seen order
	buckets map[string]*bucket
}

type bucket struct {
	name     string // first-seen casing
	comments []domain.Comment
}

// Count builds a Tally from comments in a single pass, preserving
// retrieval order within each subreddit.
func Count(comments []domain.Comment) *Tally {
	t := &Tally{buckets: make(map[string]*bucket)}
	for _, c := range comments {
		key := strings.ToLower(c.Subreddit)
		b, ok := t.buckets[key]
		if !ok {
			b = &bucket{name: c.Subreddit}
			t.buckets[key] = b
			t.order = append(t.order, key)
		}
		b.comments = append(b.comments, c)
	}
	return t
}

// Total is the number of comments tallied. It always equals the length of
// the input slice.
func (t *Tally) Total() int {
	n := 0
	for _, b := range t.buckets {
		n += len(b.comments)
	}
	return n
}

// Len is the number of distinct subreddits.
func (t *Tally) Len() int {
	return len(t.buckets)
}

// CountOf returns the number of comments in the named subreddit,
// matched case-insensitively.
func (t *Tally) CountOf(subreddit string) int {
	return len(t.CommentsOf(subreddit))
}

// CommentsOf returns the comments in the named subreddit in retrieval
// order, matched case-insensitively.
func (t *Tally) CommentsOf(subreddit string) []domain.Comment {
	b, ok := t.buckets[strings.ToLower(subreddit)]
	if !ok {
		return nil
	}
	return b.comments
}

// Subreddits lists tally entries in the requested presentation order.
func (t *Tally) Subreddits(order Order) []Entry {
	entries := make([]Entry, 0, len(t.order))
	for _, key := range t.order {
		b := t.buckets[key]
		entries = append(entries, Entry{Subreddit: b.name, Count: len(b.comments)})
	}

	switch order {
	case ByCount:
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].Count != entries[j].Count {
				return entries[i].Count > entries[j].Count
			}
			return lessFold(entries[i].Subreddit, entries[j].Subreddit)
		})
	default:
		sort.Slice(entries, func(i, j int) bool {
			return lessFold(entries[i].Subreddit, entries[j].Subreddit)
		})
	}
	return entries
}

func lessFold(a, b string) bool {
	fa, fb := strings.ToLower(a), strings.ToLower(b)
	if fa != fb {
		return fa < fb
	}
	return a < b
}
