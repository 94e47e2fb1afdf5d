// Package commands implements the executor command line.
package commands

import (
	"fmt"
	"log/slog"

	lifecycle "github.com/effxhq/executor"
	"github.com/effxhq/executor/internal/config"
	"github.com/effxhq/executor/internal/logger"
	"github.com/spf13/cobra"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// runner holds the process-level collaborators of the root command.
type runner struct {
	initLogger func(logger.Config) (*slog.Logger, error)
	options    []lifecycle.Option
}

// Execute runs the root command. It is called once by main.main.
func Execute() error {
	return newRootCmd(runner{initLogger: logger.Init}).Execute()
}

func newRootCmd(r runner) *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "executor",
		Short: "Executor service",
		Long: `Executor brings up structured logging, reports that it has bootstrapped,
and runs until it receives an interrupt (Ctrl+C).

Logging output can be configured with --config or environment variables:

  EXECUTOR_LOGGING_FORMAT=json executor
  EXECUTOR_LOGGING_OUTPUT=/var/log/executor.log executor`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cfgFile)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	cmd.AddCommand(newVersionCmd())
	cmd.CompletionOptions.DisableDefaultCmd = true

	return cmd
}

func (r runner) run(cfgFile string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	log, err := r.initLogger(logger.Config{
		Level:  logger.DefaultLevel,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app, err := lifecycle.New(log, r.options...)
	if err != nil {
		return err
	}
	return app.Run()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "executor %s (commit: %s, built: %s)\n", Version, Commit, Date)
		},
	}
}
