package tally

import (
	"regexp"
	"strings"

	"github.com/qepting91/usaidwat/internal/domain"
)

// SubredditFilter matches subreddit names case-insensitively. Names
// prefixed with "-" negate the filter: a negated filter matches every
// subreddit except those named. Positive and negated names cannot be
// mixed in one filter.
type SubredditFilter struct {
	negated bool
	names   map[string]struct{}
}

// NewSubredditFilter builds a filter from command-line arguments. Each
// argument may itself hold a comma-separated list. An empty argument list
// yields a filter that matches everything.
func NewSubredditFilter(args []string) (*SubredditFilter, error) {
	f := &SubredditFilter{names: make(map[string]struct{})}

	positives, negatives := 0, 0
	for _, arg := range args {
		for _, name := range strings.Split(arg, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if strings.HasPrefix(name, "-") {
				negatives++
				name = name[1:]
			} else {
				positives++
			}
			f.names[strings.ToLower(name)] = struct{}{}
		}
	}

	if positives > 0 && negatives > 0 {
		return nil, domain.NewError(domain.KindConfiguration,
			"subreddit filters cannot mix names and negated names")
	}
	f.negated = negatives > 0
	return f, nil
}

// Match reports whether the filter admits the subreddit.
func (f *SubredditFilter) Match(subreddit string) bool {
	if len(f.names) == 0 {
		return true
	}
	_, ok := f.names[strings.ToLower(subreddit)]
	if f.negated {
		return !ok
	}
	return ok
}

// Apply returns the comments admitted by the filter, preserving order.
func (f *SubredditFilter) Apply(comments []domain.Comment) []domain.Comment {
	if len(f.names) == 0 {
		return comments
	}
	var out []domain.Comment
	for _, c := range comments {
		if f.Match(c.Subreddit) {
			out = append(out, c)
		}
	}
	return out
}

// FilterBySubreddit returns the comments posted in any of the named
// subreddits, matched case-insensitively, in their original order.
func FilterBySubreddit(comments []domain.Comment, names ...string) ([]domain.Comment, error) {
	f, err := NewSubredditFilter(names)
	if err != nil {
		return nil, err
	}
	return f.Apply(comments), nil
}

// Grep returns the comments whose bodies match the pattern. The pattern
// is treated as a case-insensitive regular expression; if it does not
// compile, it falls back to a literal substring match.
func Grep(comments []domain.Comment, pattern string) []domain.Comment {
	if pattern == "" {
		return comments
	}

	match := func(body string) bool {
		return strings.Contains(strings.ToLower(body), strings.ToLower(pattern))
	}
	if re, err := regexp.Compile("(?i)" + pattern); err == nil {
		match = re.MatchString
	}

	var out []domain.Comment
	for _, c := range comments {
		if match(c.Body) {
			out = append(out, c)
		}
	}
	return out
}
