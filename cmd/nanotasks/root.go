package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arthur-debert/nanotasks/internal/app"
	"github.com/arthur-debert/nanotasks/internal/config"
	"github.com/arthur-debert/nanotasks/internal/logging"
	"github.com/arthur-debert/nanotasks/internal/tui"
)

var (
	v         *viper.Viper
	session   *app.App
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "nanotasks",
	Short: "A small task list with regular and urgent tasks",
	Long: `Nanotasks keeps a task list for the current session. Tasks are either
regular (with an optional category) or urgent (with an optional deadline).

The list can be driven from a terminal UI (the default), a line-oriented
shell or an HTTP API. Nothing is persisted; use export to dump the list.

Examples:
  nanotasks                         # Start the terminal UI
  nanotasks shell                   # Read commands from stdin
  nanotasks serve --addr :9000      # Serve the HTTP API
  nanotasks formats                 # List the export formats`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logCloser != nil {
			return logCloser.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(session)
	},
}

func init() {
	d := config.Default()
	flags := rootCmd.PersistentFlags()
	flags.StringP("format", "f", d.Format, "Output format for listings and exports")
	flags.String("log-level", d.LogLevel, "Log level (debug, info, warn, error)")
	flags.Bool("log-stderr", d.LogStderr, "Also write logs to stderr")
	flags.String("log-dir", d.LogDir, "Directory for the log file")
	flags.String("export-dir", d.ExportDir, "Directory for exports without an explicit path")
	flags.Bool("strict-deadlines", d.StrictDeadlines, "Require urgent deadlines to be YYYY-MM-DD dates")
	flags.Duration("lock-timeout", d.LockTimeout, "How long export waits for the file lock")

	rootCmd.AddCommand(tuiCmd, shellCmd, serveCmd, formatsCmd)
}

// setup resolves the configuration and builds the session shared by every
// subcommand
func setup(cmd *cobra.Command, args []string) error {
	var err error
	v, err = config.New()
	if err != nil {
		return err
	}
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return err
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	opts := logging.Options{Level: cfg.LogLevel, Dir: cfg.LogDir}
	if cfg.LogStderr {
		opts.Stderr = os.Stderr
	}
	logger, closer, err := logging.Setup(opts)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	logCloser = closer

	session = app.New(cfg, logger)
	logger.Debug("session started", "command", cmd.Name(), "format", cfg.Format)
	return nil
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the terminal UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(session)
	},
}
