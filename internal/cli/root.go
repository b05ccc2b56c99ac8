// Package cli implements the nasa-search console tool.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ytget/nasa-images/internal/config"
	"github.com/ytget/nasa-images/internal/logger"
)

// NewRootCommand builds the command tree with its own viper instance
func NewRootCommand() *cobra.Command {
	v := config.NewViper()

	root := &cobra.Command{
		Use:   "nasa-search",
		Short: "Search the NASA Image and Video Library",
		Long: `nasa-search - query images-api.nasa.gov from the terminal
  - prints the title and image link of the first results
  - settings come from flags or NASA_SEARCH_* environment variables`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadCLI(v, cmd.Flags())
			if err != nil {
				return err
			}
			return logger.Initialize(cfg.JSONLogs, cfg.Verbose)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Cleanup()
		},
	}

	config.RegisterCLIFlags(root.PersistentFlags())

	root.AddCommand(newSearchCommand(v))
	root.AddCommand(newVersionCommand())
	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}

func loadConfig(v *viper.Viper, cmd *cobra.Command) (*config.CLIConfig, error) {
	return config.LoadCLI(v, cmd.Flags())
}
