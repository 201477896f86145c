package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/qepting91/usaidwat/internal/render"
	"github.com/qepting91/usaidwat/internal/tally"
)

func newLogCommand(opts *Options) *cobra.Command {
	var (
		grepPattern string
		limit       int
		oneline     bool
		raw         bool
		dateFormat  string
	)

	cmd := &cobra.Command{
		Use:     "log <username> [subreddit...]",
		Aliases: []string{"l"},
		Short:   "Show a user's recent comments",
		Long: "Show a user's most recent comments, newest first. Trailing arguments " +
			"restrict output to the named subreddits; prefix a name with '-' to " +
			"exclude it instead. Flags must come before the username.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username, subreddits := splitUserArgs(args)

			filter, err := tally.NewSubredditFilter(subreddits)
			if err != nil {
				return err
			}
			date, err := render.ParseDateFormat(dateFormat)
			if err != nil {
				return err
			}

			comments, err := fetchComments(cmd.Context(), opts, username, limit)
			if err != nil {
				return err
			}
			comments = filter.Apply(comments)
			if grepPattern != "" {
				comments = tally.Grep(comments, grepPattern)
			}

			if len(comments) == 0 {
				fmt.Fprintf(opts.out(), "%s has no comments.\n", username)
				return nil
			}

			render.Comments(opts.out(), comments, render.CommentOptions{
				Oneline: oneline,
				Raw:     raw,
				Date:    date,
				Now:     time.Now(),
			})
			return nil
		},
	}

	// Stop flag parsing at the username so negated subreddit filters
	// ("-golang") are not mistaken for flags. Flags go before the username.
	cmd.Flags().SetInterspersed(false)

	cmd.Flags().StringVar(&grepPattern, "grep", "", "Only show comments matching a pattern")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of comments to fetch (default 100)")
	cmd.Flags().BoolVar(&oneline, "oneline", false, "Show each comment on a single line")
	cmd.Flags().BoolVar(&raw, "raw", false, "Do not unescape HTML entities in comment bodies")
	cmd.Flags().StringVar(&dateFormat, "date", "relative", "Date format: relative or absolute")

	return cmd
}
