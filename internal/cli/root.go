package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigFile string

	// Config holds defaults loaded from --config, if any.
	Config FileConfig
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the tally CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "tally",
		Short: "tally - durable named counters in a single SQLite file",
		Long: `Durable, crash-safe named counters backed by a single SQLite file.

Counters are created at zero on first increment and accumulate arbitrary
signed amounts. The database path defaults to <home>/counter.db; pass
":memory:" for a transient in-memory store.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.ConfigFile != "" {
				cfg, err := LoadConfig(opts.ConfigFile)
				if err != nil {
					return err
				}
				opts.Config = cfg
			}
			configureLogging(opts.Verbose)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "path to YAML config file")

	// Add subcommands
	cmd.AddCommand(NewIncCommand(opts))
	cmd.AddCommand(NewGetCommand(opts))
	cmd.AddCommand(NewDumpCommand(opts))

	return cmd
}

// configureLogging routes slog to stderr, gated by the verbose flag.
func configureLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
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

// resolvePath picks the database path: positional argument first, then the
// config file, then empty (the facade resolves empty to <home>/counter.db).
func (o *RootOptions) resolvePath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return o.Config.Database
}

// resolveName picks the counter name: positional argument first, then the
// config file, then empty (the engine resolves empty to "default").
func (o *RootOptions) resolveName(args []string) string {
	if len(args) > 1 && args[1] != "" {
		return args[1]
	}
	return o.Config.Counter
}
