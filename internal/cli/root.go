package cli

import (
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-local/internal/config"
)

// RootOptions holds the flags of the root command.
type RootOptions struct {
	ConfigPath string
	LogLevel   string // overrides the config file when set
}

// Runner starts the game with the parsed options.
type Runner func(cmd *cobra.Command, opts *RootOptions) error

// NewRootCommand creates the tictactoe command.
func NewRootCommand(run Runner) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Two-player Tic-Tac-Toe in the terminal",
		Long: `Two-player Tic-Tac-Toe in the terminal.

Enter a move as "<row> <col>" with both in 0-2, "reset" to start over and "quit" to leave.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.LogLevel == "" {
				return nil
			}
			return config.ValidateLogLevel(opts.LogLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "config.yml", "path to the config file")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error)")

	return cmd
}
