package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/maloquacious/flatdb/internal/logger"
	"github.com/maloquacious/flatdb/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	DB       string // path to the database document
	Format   string // "json" | "text"
	Verbose  bool
	LogLevel string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the flatdb CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "flatdb",
		Short: "flatdb - a single-file JSON table store",
		Long: "flatdb keeps named tables of schema-less rows in one JSON document.\n" +
			"Row ids are positional and renumbered on every load; they are stable\n" +
			"only within a single connection.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(DefaultConfigFile)
			if err != nil {
				return err
			}
			applyConfig(cmd, opts, cfg)
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return configureLogging(opts)
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.DB, "db", store.DefaultPath(), "path to the database document")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output (implies --log-level debug)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")

	// Add subcommands
	cmd.AddCommand(NewCreateCommand(opts))
	cmd.AddCommand(NewTablesCommand(opts))
	cmd.AddCommand(NewCreateTableCommand(opts))
	cmd.AddCommand(NewDropTableCommand(opts))
	cmd.AddCommand(NewInsertCommand(opts))
	cmd.AddCommand(NewReadCommand(opts))
	cmd.AddCommand(NewSelectCommand(opts))
	cmd.AddCommand(NewUpdateCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewVerifyCommand(opts))
	cmd.AddCommand(NewStatusCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	return cmd
}

// applyConfig fills in global options the user did not set on the command
// line from the config file.
func applyConfig(cmd *cobra.Command, opts *RootOptions, cfg Config) {
	flags := cmd.Root().PersistentFlags()
	if cfg.DB != "" && !flags.Changed("db") {
		opts.DB = cfg.DB
	}
	if cfg.Format != "" && !flags.Changed("format") {
		opts.Format = cfg.Format
	}
	if cfg.LogLevel != "" && !flags.Changed("log-level") {
		opts.LogLevel = cfg.LogLevel
	}
}

// configureLogging points the package default logger at the requested
// level.
func configureLogging(opts *RootOptions) error {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	} else {
		var err error
		level, err = logger.ParseLevel(opts.LogLevel)
		if err != nil {
			return err
		}
	}
	logger.Default = logger.New(level)
	return nil
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
