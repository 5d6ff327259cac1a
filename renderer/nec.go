// Package renderer formats closure reports for output: the Schedule NEC CSV
// layout for tax filing, and markdown summaries for the terminal.
package renderer

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/hzou/capgains"
)

// necHeader is the fixed 7 column header block of Schedule NEC (Form
// 1040-NR), kept character for character so the output loads into the same
// spreadsheets as before.
const necHeader = `"(a) Kind of property and description
(if necessary, attach statement of
descriptive details not shown below)","(b) Date acquired
mm/dd/yyyy","(c) Date sold
mm/dd/yyyy","(d) Sales price","(e) Cost or
other basis","(f) LOSS
If (e) is more than (d),
subtract (d) from (e).","(g) GAIN
If (d) is more than (e),
subtract (e) from (d)."
`

const necDateFormat = "01/02/2006"

// NECCSV renders the reports as a Schedule NEC capital gains CSV. descs maps
// security codes to the description column; a code with no description falls
// back to the bare code. The sign of each report's profit selects which of
// the LOSS or GAIN columns is filled, never both.
func NECCSV(reports []capgains.SecurityReport, descs map[string]string) (string, error) {
	var b strings.Builder
	b.WriteString(necHeader)

	w := csv.NewWriter(&b)
	for _, sr := range reports {
		report := sr.Report
		desc, ok := descs[sr.Security]
		if !ok {
			desc = sr.Security
		}
		row := []string{
			fmt.Sprintf("%s - %s shares", desc, report.Amount),
			report.DateAcquired.Format(necDateFormat),
			report.DateSold.Format(necDateFormat),
			report.Sales.Text(),
			report.Costs.Text(),
			"", // LOSS
			"", // GAIN
		}
		if profit := report.Profit(); profit.IsNegative() {
			row[5] = profit.Neg().Text()
		} else {
			row[6] = profit.Text()
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("cannot write NEC row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("cannot write NEC rows: %w", err)
	}
	return b.String(), nil
}
