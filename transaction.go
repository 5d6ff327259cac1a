package capgains

import (
	"fmt"
	"time"
)

// Transaction is a single buy or sell event for one security.
//
// Amount is positive for a purchase and negative for a sale. Price is the
// unit price, and Costs holds the incidental fees and commissions of this
// transaction alone. Date is only used for ordering and for the report dates.
type Transaction struct {
	Amount Quantity
	Price  Money
	Costs  Money
	Date   time.Time
}

// IsBuy reports whether the transaction is a purchase.
func (t Transaction) IsBuy() bool { return t.Amount.IsPositive() }

// TotalCosts returns the full cost basis of the transaction. For a purchase
// it includes the price paid for the shares on top of the incidental costs.
func (t Transaction) TotalCosts() Money {
	if t.IsBuy() {
		return t.Costs.Add(t.Price.Mul(t.Amount))
	}
	return t.Costs
}

// PartialCosts allocates a proportional share of this sale's incidental
// costs to a partial quantity of the sale.
func (t Transaction) PartialCosts(quantity Quantity) Money {
	return t.Costs.Mul(quantity).Div(t.Amount.Neg())
}

// Sales returns the proceeds for a quantity sold at this sale's price.
func (t Transaction) Sales(quantity Quantity) Money {
	return t.Price.Mul(quantity)
}

// TotalSales returns the proceeds of the whole sale.
func (t Transaction) TotalSales() Money { return t.Sales(t.Amount.Neg()) }

// SellParts consumes a strictly partial quantity of this open buy lot,
// shrinking the lot in place. It returns the cost basis of the consumed
// part: the allocated share of the lot's incidental costs plus the price
// paid for the consumed shares.
func (t *Transaction) SellParts(quantity Quantity) (Money, error) {
	if !quantity.IsPositive() || !quantity.LessThan(t.Amount) {
		return Money{}, fmt.Errorf("%w: selling %s of a lot of %s", ErrPartialSale, quantity, t.Amount)
	}
	partCosts := t.Costs.Mul(quantity).Div(t.Amount)
	t.Amount = t.Amount.Sub(quantity)
	t.Costs = t.Costs.Sub(partCosts)
	return partCosts.Add(t.Price.Mul(quantity)), nil
}

// Split adjusts the lot for a stock split: more shares at a proportionally
// lower unit price. Costs are a past expenditure and are left untouched.
func (t *Transaction) Split(multiplier Quantity) {
	t.Amount = t.Amount.Mul(multiplier)
	t.Price = t.Price.Div(multiplier)
}

// String formats the transaction for error messages and lot listings.
func (t Transaction) String() string {
	return fmt.Sprintf("%s @ %s +%s on %s", t.Amount, t.Price, t.Costs, t.Date.Format(time.DateTime))
}
