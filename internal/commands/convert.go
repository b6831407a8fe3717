package commands

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/sie/internal/convlog"
	"github.com/cleared-dev/sie/internal/journal"
	"github.com/cleared-dev/sie/internal/textutil"
)

func newConvertCommand(g *globals) *cobra.Command {
	var out, encoding string

	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Validate a SIE file and write it back normalized",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := args[0]
			var buf bytes.Buffer
			report, err := runConvert(g, in, encoding, &buf)
			g.logRun(convlog.NewEntry("convert", in, out, report, err))
			if err != nil {
				return err
			}

			if out == "" || out == "-" {
				_, err := buf.WriteTo(cmd.OutOrStdout())
				return err
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			printReport(cmd.ErrOrStderr(), in, report)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&encoding, "encoding", "", "output encoding: cp437 or utf-8 (default from config)")

	return cmd
}

func runConvert(g *globals, in, encoding string, buf *bytes.Buffer) (journal.Report, error) {
	opts := []journal.ServiceOption{journal.WithLogger(g.logger)}
	if encoding != "" {
		enc, err := textutil.ParseEncoding(encoding)
		if err != nil {
			return journal.Report{}, err
		}
		opts = append(opts, journal.WithOutputEncoding(enc))
	}

	f, err := os.Open(in)
	if err != nil {
		return journal.Report{}, fmt.Errorf("opening %s: %w", in, err)
	}
	defer f.Close()

	return journal.NewService(g.cfg, opts...).Process(f, buf)
}
