package commands

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/sie/internal/journal"
	"github.com/cleared-dev/sie/internal/key"
	"github.com/cleared-dev/sie/internal/model"
	"github.com/cleared-dev/sie/internal/scalar"
)

func newVouchersCommand(g *globals) *cobra.Command {
	var asCSV bool
	var series string

	cmd := &cobra.Command{
		Use:   "vouchers FILE",
		Short: "List the vouchers of a SIE file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := g.readLedger(args[0])
			if err != nil {
				return err
			}

			vouchers := l.Vouchers.Items()
			if series != "" {
				vouchers = l.Vouchers.ByTag(key.Tag("series", series))
				slices.SortFunc(vouchers, model.CompareVouchers)
			}

			w := cmd.OutOrStdout()
			if asCSV {
				return journal.WriteLines(w, vouchers)
			}
			for _, v := range vouchers {
				fmt.Fprintf(w, "%s %s %s\n", v.ID(), scalar.FormatDate(v.Date), v.Text)
				for _, t := range v.Lines {
					marker := ""
					if t.Kind != model.TransRegular {
						marker = " (" + string(t.Kind) + ")"
					}
					fmt.Fprintf(w, "  %-6s %12s%s\n", t.Account, scalar.FormatAmount(t.Amount), marker)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asCSV, "csv", false, "write CSV instead of a listing")
	cmd.Flags().StringVar(&series, "series", "", "only vouchers of this series")
	return cmd
}
