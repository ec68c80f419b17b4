package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-local/internal"
	"github.com/rocketscienceinc/tictactoe-local/internal/cli"
	"github.com/rocketscienceinc/tictactoe-local/internal/config"
)

// main - is the entry point of the application. It parses flags, initializes the configuration and logger, and runs the game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := cli.NewRootCommand(run).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, opts *cli.RootOptions) error {
	conf := initConfig(opts.ConfigPath)
	if opts.LogLevel != "" {
		conf.LogLevel = opts.LogLevel
	}

	logger := initLogger(conf)

	if err := app.RunApp(logger, conf, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("app run failed: %w", err)
	}

	return nil
}

// initialize config.
func initConfig(path string) *config.Config {
	if !filepath.IsAbs(path) {
		baseDir, err := os.Getwd()
		if err != nil {
			panic(fmt.Errorf("failed to get current directory: %w", err))
		}

		path = filepath.Join(baseDir, path)
	}

	return config.MustLoad(path)
}

// initialize logger. Logs go to stderr so they don't mix with the board.
func initLogger(conf *config.Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: conf.SlogLevel()}))
}
