package journal

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/cleared-dev/sie/internal/config"
	"github.com/cleared-dev/sie/internal/model"
	"github.com/cleared-dev/sie/internal/sie"
	"github.com/cleared-dev/sie/internal/textutil"
)

// Report summarizes one pass over a ledger.
type Report struct {
	Accounts   int
	Vouchers   int
	Lines      int
	Degenerate int
	Unbalanced []*UnbalancedError
}

// Service runs the read, validate and write pipeline.
type Service struct {
	cfg    *config.Config
	in     textutil.Encoding
	out    textutil.Encoding
	logger *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger used for progress and warnings.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) { s.logger = logger }
}

// WithOutputEncoding overrides the configured encoding for written output.
func WithOutputEncoding(enc textutil.Encoding) ServiceOption {
	return func(s *Service) { s.out = enc }
}

// NewService creates a journal Service.
func NewService(cfg *config.Config, opts ...ServiceOption) *Service {
	enc := cfg.TextEncoding()
	s := &Service{cfg: cfg, in: enc, out: enc}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	return s
}

// Load reads a ledger from r and checks it. Unbalanced vouchers fail the
// load unless the config policy is warn, in which case they are reported.
func (s *Service) Load(r io.Reader) (*model.Ledger, Report, error) {
	l, err := sie.Read(r, s.in)
	if err != nil {
		return nil, Report{}, err
	}
	report := Report{
		Accounts:   l.Accounts.Len(),
		Vouchers:   l.Vouchers.Len(),
		Lines:      l.LineCount(),
		Degenerate: len(Degenerate(l)),
	}
	s.logger.Debug("ledger read",
		"accounts", report.Accounts,
		"vouchers", report.Vouchers,
		"lines", report.Lines,
	)

	if err := ValidateReferences(l, Options{RequireObjects: s.cfg.Validation.RequireObjects}); err != nil {
		return nil, report, err
	}

	report.Unbalanced = CheckVouchers(l)
	if len(report.Unbalanced) > 0 {
		if s.cfg.Validation.Unbalanced != config.UnbalancedWarn {
			return nil, report, report.Unbalanced[0]
		}
		for _, ue := range report.Unbalanced {
			s.logger.Warn("unbalanced voucher", "voucher", model.Voucher{Series: ue.Series, Number: ue.Number}.ID(), "sum", ue.Sum.StringFixed(2))
		}
	}
	return l, report, nil
}

// Process reads r, validates it and writes the normalized ledger to w.
// Nothing is written to w when any step fails.
func (s *Service) Process(r io.Reader, w io.Writer) (Report, error) {
	l, report, err := s.Load(r)
	if err != nil {
		return report, err
	}

	l.Program = model.Program{Name: s.cfg.Output.Program, Version: s.cfg.Output.ProgramVersion}
	l.Format = ""

	var buf bytes.Buffer
	if err := sie.Write(&buf, l, s.out); err != nil {
		return report, err
	}
	n, err := buf.WriteTo(w)
	if err != nil {
		return report, fmt.Errorf("writing output: %w", err)
	}
	s.logger.Debug("ledger written", "encoding", string(s.out), "bytes", n)
	return report, nil
}
