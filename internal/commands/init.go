package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/sie/internal/accounts"
	"github.com/cleared-dev/sie/internal/config"
	"github.com/cleared-dev/sie/internal/model"
	"github.com/cleared-dev/sie/internal/sie"
)

// LedgerFile is the skeleton ledger written by init.
const LedgerFile = "ledger.se"

func newInitCommand(g *globals) *cobra.Command {
	var name, org, chart string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create sie.yaml and a skeleton ledger with a chart of accounts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if err := runInit(g, absDir, name, org, chart, time.Now()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized SIE ledger at %s\n", filepath.Join(absDir, LedgerFile))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "company name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&org, "org", "", "organization number")
	cmd.Flags().StringVar(&chart, "chart", "", "chart of accounts CSV (default: built-in BAS chart)")

	return cmd
}

func runInit(g *globals, dir, name, org, chart string, now time.Time) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	cfg := config.Default(name)
	cfg.Company.OrgNumber = org
	cfg.Encoding = g.cfg.Encoding
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	l := newLedger(cfg, now)
	if chart != "" {
		if _, err := accounts.Load(chart, l); err != nil {
			return err
		}
	} else if err := accounts.NewService(l).Import(accounts.DefaultChart()); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(dir, LedgerFile))
	if err != nil {
		return fmt.Errorf("creating ledger: %w", err)
	}
	defer f.Close()

	if err := sie.Write(f, l, cfg.TextEncoding()); err != nil {
		return err
	}
	g.logger.Debug("ledger initialized", "dir", dir, "accounts", l.Accounts.Len())
	return nil
}

// newLedger returns an empty ledger for the calendar year of now.
func newLedger(cfg *config.Config, now time.Time) *model.Ledger {
	year := now.Year()
	l := model.New()
	l.Program = model.Program{Name: cfg.Output.Program, Version: cfg.Output.ProgramVersion}
	l.Generated = model.Generated{Date: time.Date(year, now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)}
	l.SieType = 4
	l.CompanyName = cfg.Company.Name
	l.OrgNumber = model.OrgNumber{Number: cfg.Company.OrgNumber}
	l.Currency = cfg.Company.Currency
	l.ChartType = "BAS2014"
	l.FiscalYears = []model.FiscalYear{{
		Offset: 0,
		Start:  time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:    time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	}}
	return l
}
