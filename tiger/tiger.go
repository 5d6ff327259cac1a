// Package tiger parses Tiger Brokers annual activity statements into the
// canonical ordered transaction stream consumed by the capgains engine.
package tiger

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/hzou/capgains"
	"github.com/shopspring/decimal"
)

const (
	sectionTrades      = "Trades"
	sectionInstruments = "Financial Instrument Information"
	rowData            = "DATA"
)

// Column headers of the Trades section the parser relies on. The columns
// between Amount and Realized P/L hold the incidental costs (commissions,
// fees, taxes) and vary between statement versions, which is why they are
// summed positionally rather than by name.
const (
	colSymbol      = "Symbol"
	colQuantity    = "Quantity"
	colTradePrice  = "Trade Price"
	colTradeTime   = "Trade Time"
	colAmount      = "Amount"
	colRealizedPnL = "Realized P/L"
)

// Trade is one parsed statement row: a transaction tagged with the security
// it belongs to.
type Trade struct {
	Security    string
	Transaction capgains.Transaction
}

// headerIndex maps a section's column headers to their positions.
type headerIndex map[string]int

func newHeaderIndex(row []string) (headerIndex, error) {
	index := make(headerIndex, len(row))
	for i, name := range row {
		if name != "" {
			index[name] = i
		}
	}
	for _, required := range []string{colSymbol, colQuantity, colTradePrice, colTradeTime, colAmount, colRealizedPnL} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("trades header is missing column %q", required)
		}
	}
	return index, nil
}

// isTradesHeader reports whether the row opens (or re-opens) a Trades
// section. Statements may switch to a different column layout mid file, in
// which case the header row appears again.
func isTradesHeader(row []string) bool {
	return len(row) > 3 && row[0] == sectionTrades && row[1] == "" && row[2] == "" && row[3] == ""
}

// Parse reads one activity statement and returns its trades sorted by trade
// time. Rows sharing the same timestamp keep their statement order, the tie
// break the FIFO engine expects from its caller.
func Parse(r io.Reader) ([]Trade, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var (
		trades []Trade
		index  headerIndex
		code   string
	)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read statement: %w", err)
		}
		if isTradesHeader(row) {
			if index, err = newHeaderIndex(row); err != nil {
				return nil, err
			}
			continue
		}
		// Only DATA rows of the Trades section matter, and only once a
		// header has established the column layout.
		if index == nil || len(row) < 4 || row[0] != sectionTrades || row[3] != rowData {
			continue
		}
		if symbol := row[index[colSymbol]]; symbol != "" {
			// Summary row: it carries the code for the detail rows below it.
			code = symbol
			continue
		}
		trans, err := parseTransaction(row, index)
		if err != nil {
			return nil, err
		}
		trades = append(trades, Trade{Security: code, Transaction: trans})
	}

	slices.SortStableFunc(trades, func(a, b Trade) int {
		return a.Transaction.Date.Compare(b.Transaction.Date)
	})
	return trades, nil
}

// parseTransaction converts one Trades detail row.
func parseTransaction(row []string, index headerIndex) (capgains.Transaction, error) {
	quantity, err := parseCell(row[index[colQuantity]])
	if err != nil {
		return capgains.Transaction{}, fmt.Errorf("cannot parse quantity: %w", err)
	}
	price, err := parseCell(row[index[colTradePrice]])
	if err != nil {
		return capgains.Transaction{}, fmt.Errorf("cannot parse trade price: %w", err)
	}

	// Every column between Amount and Realized P/L is a cost deducted from
	// the account, reported negative in the statement.
	costs := decimal.Zero
	for i := index[colAmount] + 1; i < index[colRealizedPnL]; i++ {
		cell, err := parseCell(row[i])
		if err != nil {
			return capgains.Transaction{}, fmt.Errorf("cannot parse cost column %d: %w", i, err)
		}
		costs = costs.Add(cell)
	}
	costs = costs.Neg()

	date, err := parseTradeTime(row[index[colTradeTime]])
	if err != nil {
		return capgains.Transaction{}, err
	}

	return capgains.Transaction{
		Amount: capgains.Q(quantity),
		Price:  capgains.USD(price),
		Costs:  capgains.USD(costs),
		Date:   date,
	}, nil
}

// parseCell reads a numeric statement cell, where empty means zero.
func parseCell(cell string) (decimal.Decimal, error) {
	if cell == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(cell)
}

// Trade times come in two flavors, both with the time on a second line of
// the cell: a GMT+8 suffix or a US/Eastern suffix. Everything is normalized
// to US/Eastern, the timezone of the reports.
const (
	tradeTimeOffset  = "2006-01-02\n15:04:05, -0700"
	tradeTimeEastern = "2006-01-02\n15:04:05"
	easternSuffix    = ", US/Eastern"
)

func parseTradeTime(cell string) (time.Time, error) {
	eastern, err := time.LoadLocation("US/Eastern")
	if err != nil {
		return time.Time{}, err
	}
	if strings.Contains(cell, "GMT+8") {
		t, err := time.Parse(tradeTimeOffset, strings.Replace(cell, "GMT+8", "+0800", 1))
		if err != nil {
			return time.Time{}, fmt.Errorf("cannot parse trade time %q: %w", cell, err)
		}
		return t.In(eastern), nil
	}
	t, err := time.ParseInLocation(tradeTimeEastern, strings.TrimSuffix(cell, easternSuffix), eastern)
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse trade time %q: %w", cell, err)
	}
	return t, nil
}

// Descriptions scans a statement for the Financial Instrument Information
// section and returns code to "SYMBOL (Description)" labels for the report
// description column.
func Descriptions(r io.Reader) (map[string]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	descs := make(map[string]string)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read statement: %w", err)
		}
		if len(row) > 6 && row[0] == sectionInstruments && row[3] == rowData {
			descs[row[4]] = fmt.Sprintf("%s (%s)", row[4], row[6])
		}
	}
	return descs, nil
}
