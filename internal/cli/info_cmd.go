package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/qepting91/usaidwat/internal/render"
)

func newInfoCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:     "info <username>",
		Aliases: []string{"i"},
		Short:   "Show account age and karma for a user",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username, _ := splitUserArgs(args)

			acct, err := fetchAccount(cmd.Context(), opts, username)
			if err != nil {
				return err
			}
			render.Info(opts.out(), acct, time.Now())
			return nil
		},
	}
}
