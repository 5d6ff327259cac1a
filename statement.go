package capgains

import (
	"fmt"
	"slices"
)

// Statement aggregates the lot queues of every traded security, keyed by
// security code. A queue is created lazily the first time its code is seen,
// and securities keep that first-seen order when reports are drained. No
// matching ever crosses securities.
type Statement struct {
	codes []string
	fifos map[string]*FIFO
}

// NewStatement returns an empty statement.
func NewStatement() *Statement {
	return &Statement{fifos: make(map[string]*FIFO)}
}

// fifo returns the lot queue for code, creating it on first use.
func (s *Statement) fifo(code string) *FIFO {
	f, ok := s.fifos[code]
	if !ok {
		f = &FIFO{}
		s.fifos[code] = f
		s.codes = append(s.codes, code)
	}
	return f
}

// AddTransaction routes the transaction to its security's lot queue.
// Transactions must arrive in non-decreasing date order per security.
func (s *Statement) AddTransaction(code string, trans Transaction) error {
	if err := s.fifo(code).AddTransaction(trans); err != nil {
		return fmt.Errorf("%s: %w", code, err)
	}
	return nil
}

// Split applies a stock split to a security already present in the
// statement. Unlike AddTransaction it does not create the queue: splitting a
// security that was never traded is an input error.
func (s *Statement) Split(code string, multiplier Quantity) error {
	f, ok := s.fifos[code]
	if !ok {
		return fmt.Errorf("%w: cannot split %q", ErrUnknownSecurity, code)
	}
	f.Split(multiplier)
	return nil
}

// SecurityReport pairs a closure report with the security it belongs to.
type SecurityReport struct {
	Security string
	Report   Report
}

// Reports drains the merged closure reports of every security, grouped by
// security in the order the codes were first seen.
func (s *Statement) Reports() []SecurityReport {
	var all []SecurityReport
	for _, code := range s.codes {
		for _, report := range s.fifos[code].Reports(true) {
			all = append(all, SecurityReport{Security: code, Report: report})
		}
	}
	return all
}

// Securities returns the security codes in first-seen order.
func (s *Statement) Securities() []string { return slices.Clone(s.codes) }

// Lots returns a copy of the open lots for a security, oldest first.
func (s *Statement) Lots(code string) []Transaction {
	if f, ok := s.fifos[code]; ok {
		return f.Lots()
	}
	return nil
}
