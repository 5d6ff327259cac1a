package capgains

import "time"

// Report records one realized lot closure: the acquisition it came from, the
// disposal that closed it, and the quantity, cost basis and proceeds
// attributed to that closure. Costs include the proportional share of both
// the original purchase's and the closing sale's incidental costs.
type Report struct {
	Amount       Quantity
	DateAcquired time.Time
	Costs        Money
	DateSold     time.Time
	Sales        Money
}

// Profit returns Sales minus Costs. A negative profit is a loss.
func (r Report) Profit() Money { return r.Sales.Sub(r.Costs) }

// SameTrade reports whether both reports close the exact same
// acquisition/disposal date pair and may therefore be merged into one row.
func (r Report) SameTrade(other Report) bool {
	return r.DateAcquired.Equal(other.DateAcquired) && r.DateSold.Equal(other.DateSold)
}

// Merge folds another closure of the same trade into this one.
func (r *Report) Merge(other Report) {
	r.Amount = r.Amount.Add(other.Amount)
	r.Costs = r.Costs.Add(other.Costs)
	r.Sales = r.Sales.Add(other.Sales)
}
