package renderer

import (
	"fmt"
	"strings"

	"github.com/hzou/capgains"
)

// SummaryMarkdown renders the realized results of a processed statement:
// one row per security and the run totals, with losses and gains tallied
// separately the way they land on the tax form.
func SummaryMarkdown(title string, reports []capgains.SecurityReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Realized Gains: %s\n\n", title)
	if len(reports) == 0 {
		fmt.Fprintln(&b, "No closed lots in this statement.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Security | Shares | Proceeds | Cost Basis | Result |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")

	type line struct {
		shares capgains.Quantity
		sales  capgains.Money
		costs  capgains.Money
	}
	var order []string
	lines := make(map[string]*line)
	var totalSales, totalCosts, totalLoss, totalGain capgains.Money

	for _, sr := range reports {
		l, ok := lines[sr.Security]
		if !ok {
			l = &line{}
			lines[sr.Security] = l
			order = append(order, sr.Security)
		}
		l.shares = l.shares.Add(sr.Report.Amount)
		l.sales = l.sales.Add(sr.Report.Sales)
		l.costs = l.costs.Add(sr.Report.Costs)

		totalSales = totalSales.Add(sr.Report.Sales)
		totalCosts = totalCosts.Add(sr.Report.Costs)
		if profit := sr.Report.Profit(); profit.IsNegative() {
			totalLoss = totalLoss.Add(profit.Neg())
		} else {
			totalGain = totalGain.Add(profit)
		}
	}

	for _, code := range order {
		l := lines[code]
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			code, l.shares, l.sales, l.costs, l.sales.Sub(l.costs).SignedString())
	}
	fmt.Fprintf(&b, "| **Total** | | **%s** | **%s** | **%s** |\n",
		totalSales, totalCosts, totalSales.Sub(totalCosts).SignedString())

	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "- Total Loss: %s\n", totalLoss)
	fmt.Fprintf(&b, "- Total Gain: %s\n", totalGain)
	fmt.Fprintf(&b, "- Net Profit: %s\n", totalGain.Sub(totalLoss).SignedString())

	return b.String()
}

// LotsMarkdown renders the still-open lots of every security in the
// statement, oldest first.
func LotsMarkdown(stmt *capgains.Statement) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Open Lots\n\n")

	empty := true
	for _, code := range stmt.Securities() {
		lots := stmt.Lots(code)
		if len(lots) == 0 {
			continue
		}
		empty = false
		fmt.Fprintf(&b, "## %s\n\n", code)
		fmt.Fprintln(&b, "| Acquired | Shares | Unit Price | Costs |")
		fmt.Fprintln(&b, "|:---|---:|---:|---:|")
		for _, lot := range lots {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
				lot.Date.Format("2006-01-02 15:04:05"), lot.Amount, lot.Price, lot.Costs)
		}
		fmt.Fprintln(&b)
	}
	if empty {
		fmt.Fprintln(&b, "All positions are closed.")
	}
	return b.String()
}
