package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tallydb/tally"
)

// NewDumpCommand creates the dump command.
func NewDumpCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump [path]",
		Short: "Print every counter and its value",
		Long: `Print every stored counter as name<TAB>value lines sorted by name
(or a single JSON object with --format json).

Example:
  tally dump ./app.db
  tally dump --format json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runDump(opts *RootOptions, args []string, cmd *cobra.Command) error {
	path := opts.resolvePath(args)
	slog.Debug("dumping counters", "path", path)

	counters, err := tally.Dump(tally.DumpConfig{Path: path})
	if err != nil {
		return WrapExitError(ExitCommandError, "dump failed", err)
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Counters(counters)
}
