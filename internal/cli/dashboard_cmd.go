package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qepting91/usaidwat/internal/dashboard"
)

func newDashboardCommand(opts *Options) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "dashboard <username>",
		Short: "Serve charts of a user's comment history in the browser",
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

			logger := loggerFromContext(cmd.Context())
			logger.Info("serving dashboard", "username", username, "url", "http://localhost:"+port)

			return dashboard.StartServer(username, comments, port)
		},
	}

	cmd.Flags().StringVar(&port, "port", "8080", "Port to serve the dashboard on")

	return cmd
}
