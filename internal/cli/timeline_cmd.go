package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qepting91/usaidwat/internal/render"
	"github.com/qepting91/usaidwat/internal/tally"
)

func newTimelineCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "timeline <username>",
		Short: "Show when a user comments, by weekday and hour",
		Args:  cobra.ExactArgs(1),
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

			render.TimelineGrid(opts.out(), tally.NewTimeline(comments))
			return nil
		},
	}
}
