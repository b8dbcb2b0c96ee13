package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tallydb/tally"
	"github.com/tallydb/tally/internal/counter"
)

// IncOptions holds flags for the inc command.
type IncOptions struct {
	*RootOptions
	Amount int64
	DryRun bool
}

// NewIncCommand creates the inc command.
func NewIncCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &IncOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:     "inc [path] [counter-name]",
		Aliases: []string{"increment-counter"},
		Short:   "Increment a counter, creating it at zero if absent",
		Long: `Increment a named counter by a signed amount and print the new value.

The counter is created at zero on first increment. With --dry-run the
post-increment value is computed and printed without being persisted
(a previously missing counter is still durably created at zero).

Example:
  tally inc ./app.db requests -i 5
  tally inc ./app.db retries --increment -2
  tally inc --dry-run`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInc(opts, args, cmd)
		},
	}

	cmd.Flags().Int64VarP(&opts.Amount, "increment", "i", 1, "signed amount to add")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "compute the new value without persisting it")

	return cmd
}

func runInc(opts *IncOptions, args []string, cmd *cobra.Command) error {
	cfg := tally.IncrementConfig{
		Path:   opts.resolvePath(args),
		Name:   opts.resolveName(args),
		Amount: opts.Amount,
		DryRun: opts.DryRun,
	}
	slog.Debug("incrementing counter",
		"path", cfg.Path, "name", cfg.Name, "amount", cfg.Amount, "dry_run", cfg.DryRun)

	res := tally.Increment(cfg)
	if res.Status == tally.StatusError {
		return WrapExitError(ExitCommandError, "increment failed", res.Err)
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Counter(counter.CanonicalName(cfg.Name), res.Value)
}
