package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/sie/internal/convlog"
	"github.com/cleared-dev/sie/internal/journal"
)

func newValidateCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check references and voucher balances of a SIE file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			report, err := runValidate(g, path)
			g.logRun(convlog.NewEntry("validate", path, "", report, err))
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), path, report)
			return nil
		},
	}
}

func runValidate(g *globals, path string) (journal.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return journal.Report{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	_, report, err := journal.NewService(g.cfg, journal.WithLogger(g.logger)).Load(f)
	return report, err
}

func printReport(w io.Writer, path string, r journal.Report) {
	fmt.Fprintf(w, "%s: %d accounts, %d vouchers, %d lines\n", path, r.Accounts, r.Vouchers, r.Lines)
	for _, ue := range r.Unbalanced {
		fmt.Fprintf(w, "  warning: %v\n", ue)
	}
	if r.Degenerate > 0 {
		fmt.Fprintf(w, "  %d vouchers without lines\n", r.Degenerate)
	}
}

// logRun appends e to the run log. Failures are logged, not returned.
func (g *globals) logRun(e convlog.Entry) {
	if g.cfg.Log.Path == "" {
		return
	}
	if err := convlog.Append(g.cfg.Log.Path, []convlog.Entry{e}); err != nil {
		g.logger.Warn("run log not written", "path", g.cfg.Log.Path, "error", err)
	}
}
