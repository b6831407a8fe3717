package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/sie/internal/accounts"
)

func newAccountsCommand(g *globals) *cobra.Command {
	var asCSV bool

	cmd := &cobra.Command{
		Use:   "accounts FILE",
		Short: "List the chart of accounts of a SIE file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := g.readLedger(args[0])
			if err != nil {
				return err
			}
			entries := accounts.NewService(l).Entries()

			w := cmd.OutOrStdout()
			if asCSV {
				return accounts.WriteAccounts(w, entries)
			}
			for _, e := range entries {
				sru := ""
				if e.SRU != 0 {
					sru = fmt.Sprintf(" [SRU %d]", e.SRU)
				}
				fmt.Fprintf(w, "%-6s %-1s %s%s\n", e.Number, e.Type, e.Name, sru)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asCSV, "csv", false, "write CSV instead of a listing")
	return cmd
}
