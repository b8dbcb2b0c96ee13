package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tallydb/tally"
	"github.com/tallydb/tally/internal/counter"
)

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "get [path] [counter-name]",
		Aliases: []string{"get-counter"},
		Short:   "Print a counter's current value",
		Long: `Print the stored value of a named counter.

A counter that does not exist prints nothing and exits with code 1;
absence is distinct from a stored zero.

Example:
  tally get ./app.db requests
  tally get`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runGet(opts *RootOptions, args []string, cmd *cobra.Command) error {
	cfg := tally.GetConfig{
		Path: opts.resolvePath(args),
		Name: opts.resolveName(args),
	}
	slog.Debug("reading counter", "path", cfg.Path, "name", cfg.Name)

	res := tally.Get(cfg)
	switch res.Status {
	case tally.StatusError:
		return WrapExitError(ExitCommandError, "get failed", res.Err)
	case tally.StatusNotFound:
		// Absent is a valid result: empty output, exit code 1.
		return NewExitError(ExitNotFound, "")
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Counter(counter.CanonicalName(cfg.Name), res.Value)
}
