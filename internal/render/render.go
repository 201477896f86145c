// Package render formats comments, tallies, and profiles for the
// terminal.
package render

import (
	"fmt"
	"html"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/qepting91/usaidwat/internal/domain"
	"github.com/qepting91/usaidwat/internal/tally"
)

// DateFormat selects absolute ("31 Mar 2008") or relative ("5 months
// ago") date rendering.
type DateFormat string

const (
	DateAbsolute DateFormat = "absolute"
	DateRelative DateFormat = "relative"
)

// ParseDateFormat recognizes a date format name, defaulting to relative.
func ParseDateFormat(s string) (DateFormat, error) {
	switch DateFormat(strings.ToLower(s)) {
	case DateAbsolute:
		return DateAbsolute, nil
	case DateRelative, "":
		return DateRelative, nil
	default:
		return "", fmt.Errorf("unknown date format %q (use 'absolute' or 'relative')", s)
	}
}

// CommentOptions controls comment log rendering.
type CommentOptions struct {
	Oneline bool
	// Raw skips HTML-entity unescaping of bodies.
	Raw  bool
	Date DateFormat
	// Now anchors relative dates; zero means time.Now().
	Now time.Time
}

// Comments writes the comment log. The full form prints a header block
// and body per comment; oneline compresses each to a single line.
func Comments(w io.Writer, comments []domain.Comment, opts CommentOptions) {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	for i, c := range comments {
		if i > 0 {
			if opts.Oneline {
				fmt.Fprintln(w)
			} else {
				fmt.Fprint(w, "\n\n\n")
			}
		}

		body := c.Body
		if !opts.Raw {
			body = strings.TrimSpace(html.UnescapeString(body))
		}

		if opts.Oneline {
			fmt.Fprintf(w, "%s: %s", c.Subreddit, firstLine(body))
			continue
		}

		fmt.Fprintf(w, "%s\n", c.Subreddit)
		fmt.Fprintf(w, "https://www.reddit.com%s\n", c.Permalink)
		fmt.Fprintf(w, "%s • %s\n\n", points(c.Score), Date(c.CreatedAt, opts.Date, now))
		fmt.Fprint(w, body)
	}
	if len(comments) > 0 {
		fmt.Fprintln(w)
	}
}

// TallyTable writes aligned subreddit/count columns.
func TallyTable(w io.Writer, entries []tally.Entry) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%d\n", e.Subreddit, e.Count)
	}
	tw.Flush()
}

// Info writes a user's profile block.
func Info(w io.Writer, acct domain.Account, now time.Time) {
	if now.IsZero() {
		now = time.Now()
	}
	fmt.Fprintf(w, "%s\n", acct.Name)
	fmt.Fprintf(w, "Created: %s (%s)\n", acct.CreatedAt.Format("02 Jan 2006"), RelativeTime(now.Sub(acct.CreatedAt)))
	fmt.Fprintf(w, "Link Karma: %d\n", acct.LinkKarma)
	fmt.Fprintf(w, "Comment Karma: %d\n", acct.CommentKarma)
}

// TimelineGrid writes the weekday-by-hour activity matrix.
func TimelineGrid(w io.Writer, tl tally.Timeline) {
	fmt.Fprint(w, "    ")
	for hour := 0; hour < 24; hour++ {
		fmt.Fprintf(w, "%3d", hour)
	}
	fmt.Fprintln(w)

	for _, day := range tally.Weekdays() {
		fmt.Fprintf(w, "%s ", day.String()[:3])
		for _, n := range tl.Day(day) {
			if n == 0 {
				fmt.Fprint(w, "  .")
			} else {
				fmt.Fprintf(w, "%3d", n)
			}
		}
		fmt.Fprintln(w)
	}
}

// Date renders ts in the requested format.
func Date(ts time.Time, format DateFormat, now time.Time) string {
	if format == DateAbsolute {
		return ts.Format("02 Jan 2006 15:04")
	}
	return RelativeTime(now.Sub(ts))
}

// RelativeTime renders a duration as a rough "N units ago" phrase.
func RelativeTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	switch {
	case d < time.Minute:
		return "just now"
	case d < 2*time.Minute:
		return "a minute ago"
	case d < time.Hour:
		return fmt.Sprintf("%d minutes ago", int(d.Minutes()))
	case d < 2*time.Hour:
		return "an hour ago"
	case d < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(d.Hours()))
	case d < 48*time.Hour:
		return "a day ago"
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%d days ago", int(d.Hours()/24))
	case d < 60*24*time.Hour:
		return "a month ago"
	case d < 365*24*time.Hour:
		return fmt.Sprintf("%d months ago", int(d.Hours()/(24*30)))
	case d < 2*365*24*time.Hour:
		return "a year ago"
	default:
		return fmt.Sprintf("%d years ago", int(d.Hours()/(24*365)))
	}
}

func points(score int) string {
	if score == 1 || score == -1 {
		return fmt.Sprintf("%d point", score)
	}
	return fmt.Sprintf("%d points", score)
}

func firstLine(body string) string {
	if i := strings.IndexByte(body, '\n'); i >= 0 {
		return strings.TrimSpace(body[:i])
	}
	return body
}
