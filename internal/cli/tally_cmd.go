package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qepting91/usaidwat/internal/render"
	"github.com/qepting91/usaidwat/internal/tally"
)

func newTallyCommand(opts *Options) *cobra.Command {
	var byCount bool

	cmd := &cobra.Command{
		Use:     "tally <username>",
		Aliases: []string{"t"},
		Short:   "Tally a user's comments by subreddit",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username, _ := splitUserArgs(args)

			comments, err := fetchComments(cmd.Context(), opts, username, 0)
			if err != nil {
				return err
			}
			if len(comments) == 0 {
				fmt.Fprintf(opts.out(), "%s has no comments.\n", username)
				return nil
			}

			order := tally.Lexicographic
			if byCount {
				order = tally.ByCount
			}
			t := tally.Count(comments)
			render.TallyTable(opts.out(), t.Subreddits(order))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&byCount, "count", "c", false, "Sort by comment count instead of subreddit name")

	return cmd
}
