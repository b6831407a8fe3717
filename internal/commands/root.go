package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/sie/internal/buildinfo"
	"github.com/cleared-dev/sie/internal/config"
	"github.com/cleared-dev/sie/internal/model"
	"github.com/cleared-dev/sie/internal/sie"
)

// globals holds the state shared by every subcommand once the root
// command's pre-run has resolved flags.
type globals struct {
	configPath string
	envPath    string
	debug      bool

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:     "sie",
		Short:   "Read, validate and convert SIE accounting files",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", config.FileName, "config file")
	rootCmd.PersistentFlags().StringVar(&g.envPath, "env", "", "env file with SIE_* overrides (default ./.env if present)")
	rootCmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(
		newInitCommand(g),
		newValidateCommand(g),
		newConvertCommand(g),
		newAccountsCommand(g),
		newVouchersCommand(g),
	)

	return rootCmd
}

func (g *globals) setup(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if g.debug {
		level = slog.LevelDebug
	}
	g.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))

	cfg, err := config.LoadOrDefault(g.configPath)
	if err != nil {
		return err
	}
	if err := cfg.LoadEnv(g.envPath); err != nil {
		return err
	}
	g.cfg = cfg
	g.logger.Debug("config loaded", "path", g.configPath, "encoding", cfg.Encoding)
	return nil
}

// readLedger parses path without validating it.
func (g *globals) readLedger(path string) (*model.Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	l, err := sie.Read(f, g.cfg.TextEncoding())
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return l, nil
}
