package accounts

import (
	"fmt"
	"os"

	"github.com/cleared-dev/sie/internal/model"
)

// Service provides lookup and import over a ledger's chart of accounts.
type Service struct {
	ledger *model.Ledger
}

// NewService wraps the accounts of l.
func NewService(l *model.Ledger) *Service {
	return &Service{ledger: l}
}

// Load reads a chart CSV from path and imports it into l.
func Load(path string, l *model.Ledger) (*Service, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	entries, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	svc := NewService(l)
	if err := svc.Import(entries); err != nil {
		return nil, err
	}
	return svc, nil
}

// Import inserts every entry and its SRU code. It stops at the first
// duplicate account.
func (s *Service) Import(entries []Entry) error {
	for _, e := range entries {
		if err := s.ledger.Accounts.Insert(e.Account); err != nil {
			return fmt.Errorf("importing account: %w", err)
		}
		if e.SRU != 0 {
			code := model.ClassificationCode{Account: e.Number, Code: e.SRU}
			if err := s.ledger.Classifications.Insert(code); err != nil {
				return fmt.Errorf("importing sru: %w", err)
			}
		}
	}
	return nil
}

// All returns all accounts in account number order.
func (s *Service) All() []model.Account {
	return s.ledger.Accounts.Items()
}

// Entries returns all accounts with their SRU codes.
func (s *Service) Entries() []Entry {
	accounts := s.All()
	entries := make([]Entry, len(accounts))
	for i, a := range accounts {
		entries[i] = Entry{Account: a}
		if c, err := s.ledger.Classifications.Get(a.Number); err == nil {
			entries[i].SRU = c.Code
		}
	}
	return entries
}

// Get returns an account by number.
func (s *Service) Get(number string) (model.Account, bool) {
	a, err := s.ledger.Accounts.Get(number)
	return a, err == nil
}

// Exists reports whether an account number exists.
func (s *Service) Exists(number string) bool {
	return s.ledger.Accounts.Exists(number)
}

// ByType returns all accounts of the given type in insertion order.
func (s *Service) ByType(accountType model.AccountType) []model.Account {
	return s.ledger.AccountsByType(accountType)
}

// SetType changes the type of an existing account.
func (s *Service) SetType(number string, accountType model.AccountType) error {
	if !accountType.Valid() {
		return fmt.Errorf("unknown account type %q", accountType)
	}
	return s.ledger.UpdateAccount(number, func(a *model.Account) { a.Type = accountType })
}

// Save writes the chart of accounts to path as CSV.
func (s *Service) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, s.Entries()); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}
