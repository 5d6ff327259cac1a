package capgains

import (
	"fmt"
	"slices"
	"time"
)

// FIFO is the lot queue of a single security: the open buy lots in strict
// acquisition order, plus the closure reports produced so far. A sale always
// consumes the oldest open lot first.
//
// A FIFO is owned by its Statement and is not safe for concurrent use.
type FIFO struct {
	lastDate time.Time
	queue    []Transaction
	reports  []Report
}

// AddTransaction feeds the next transaction, which must not be dated before
// any previously fed one. A purchase opens a new lot at the tail of the
// queue. A sale consumes the oldest lots first, appending one closure report
// per lot it touches; the last touched lot may be consumed only partially,
// in which case it stays in the queue, reduced.
//
// An error aborts the matching loop but leaves already completed closures of
// the same sale committed.
func (f *FIFO) AddTransaction(trans Transaction) error {
	if trans.Amount.IsZero() {
		return fmt.Errorf("%w: transaction dated %s", ErrZeroQuantity, trans.Date.Format(time.DateTime))
	}
	if trans.Date.Before(f.lastDate) {
		return fmt.Errorf("%w: %s dated %s arrived after %s",
			ErrOutOfOrder, trans.Amount, trans.Date.Format(time.DateTime), f.lastDate.Format(time.DateTime))
	}
	f.lastDate = trans.Date

	if trans.IsBuy() {
		f.queue = append(f.queue, trans)
		return nil
	}

	// The amount being sold, as a positive number.
	remaining := trans.Amount.Neg()
	for remaining.IsPositive() {
		if len(f.queue) == 0 {
			return fmt.Errorf("%w: %s of %s shares unmatched for the sale dated %s",
				ErrInsufficientLot, remaining, trans.Amount.Neg(), trans.Date.Format(time.DateTime))
		}
		first := &f.queue[0]
		if first.Amount.LessThanOrEqual(remaining) {
			// The sale covers the whole oldest lot: close and pop it.
			f.reports = append(f.reports, Report{
				Amount:       first.Amount,
				DateAcquired: first.Date,
				Costs:        trans.PartialCosts(first.Amount).Add(first.TotalCosts()),
				DateSold:     trans.Date,
				Sales:        trans.Sales(first.Amount),
			})
			remaining = remaining.Sub(first.Amount)
			f.queue = f.queue[1:]
		} else {
			// The sale only consumes part of the oldest lot, which stays
			// open with the remainder.
			basis, err := first.SellParts(remaining)
			if err != nil {
				return err
			}
			f.reports = append(f.reports, Report{
				Amount:       remaining,
				DateAcquired: first.Date,
				Costs:        trans.PartialCosts(remaining).Add(basis),
				DateSold:     trans.Date,
				Sales:        trans.Sales(remaining),
			})
			remaining = Q(0)
		}
	}
	return nil
}

// Split applies a stock split to every open lot. It must be called before
// feeding any transaction dated after the split takes effect.
func (f *FIFO) Split(multiplier Quantity) {
	for i := range f.queue {
		f.queue[i].Split(multiplier)
	}
}

// Reports drains the pending closure reports, leaving the list empty; each
// report is returned exactly once. With merge, consecutive reports closing
// the same acquisition/disposal date pair are coalesced into one row.
// Same-trade reports separated by a different trade stay separate: matching
// emits same-trade closures contiguously, so only adjacent coalescing is
// wanted here, not a global group-by.
func (f *FIFO) Reports(merge bool) []Report {
	reports := f.reports
	f.reports = nil
	if !merge || len(reports) == 0 {
		return reports
	}
	merged := make([]Report, 0, len(reports))
	merged = append(merged, reports[0])
	for _, report := range reports[1:] {
		acc := &merged[len(merged)-1]
		if acc.SameTrade(report) {
			acc.Merge(report)
		} else {
			merged = append(merged, report)
		}
	}
	return merged
}

// Lots returns a copy of the still-open lots, oldest first.
func (f *FIFO) Lots() []Transaction { return slices.Clone(f.queue) }
