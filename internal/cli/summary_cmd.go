package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qepting91/usaidwat/internal/config"
	"github.com/qepting91/usaidwat/internal/domain"
	"github.com/qepting91/usaidwat/internal/summary"
)

func newSummaryCommand(opts *Options) *cobra.Command {
	var (
		modelFlag    string
		providerFlag string
	)

	cmd := &cobra.Command{
		Use:   "summary <username>",
		Short: "Summarize a user's comments with an LLM",
		Long: "Send a user's recent comments to a completion provider and print a " +
			"short summary of their topics, tone, and sentiment. The --model flag " +
			"accepts a class name (flagship, best, cheapest, fastest) or a concrete " +
			"provider model identifier.",
		Args: cobra.ExactArgs(1),
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

			provider, err := newProvider(opts, providerFlag)
			if err != nil {
				return err
			}
			model, err := resolveModel(provider, modelFlag)
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			logger.Debug("summarizing comments", "username", username, "model", model, "count", len(comments))

			text, err := summary.New(provider).Summarize(cmd.Context(), comments, summary.Options{Model: model})
			if err != nil {
				return err
			}
			fmt.Fprintln(opts.out(), text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&modelFlag, "model", "m", string(summary.Cheapest), "Model class or provider model identifier")
	cmd.Flags().StringVar(&providerFlag, "provider", "openai", "Completion provider (openai or anthropic)")

	return cmd
}

// newProvider resolves the completion provider for a summary run: the
// injected test double when present, otherwise a real client built from
// the environment.
func newProvider(opts *Options, name string) (domain.Provider, error) {
	if opts.Provider != nil {
		return opts.Provider, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	switch name {
	case "openai", "":
		return summary.NewOpenAIProvider(cfg.Credentials())
	case "anthropic":
		return summary.NewAnthropicProvider(cfg.Credentials())
	default:
		return nil, domain.NewError(domain.KindConfiguration, "unknown provider %q (want openai or anthropic)", name)
	}
}

// resolveModel turns a class name into a provider model identifier. A
// value that is not a class name passes through as a concrete identifier.
func resolveModel(provider domain.Provider, flag string) (string, error) {
	class, ok := summary.ParseModelClass(flag)
	if !ok {
		return flag, nil
	}
	resolver, ok := provider.(summary.ModelResolver)
	if !ok {
		return "", domain.NewError(domain.KindConfiguration, "provider cannot resolve model class %q; pass a concrete model identifier", flag)
	}
	return resolver.Model(class), nil
}
