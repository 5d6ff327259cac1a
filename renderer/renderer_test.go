package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/hzou/capgains"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func date(month time.Month, d int) time.Time {
	return time.Date(2020, month, d, 9, 30, 0, 0, time.UTC)
}

func sampleReports() []capgains.SecurityReport {
	return []capgains.SecurityReport{
		{Security: "AAPL", Report: capgains.Report{
			Amount:       capgains.Q(40),
			DateAcquired: date(time.January, 2),
			Costs:        capgains.USD(404),
			DateSold:     date(time.March, 2),
			Sales:        capgains.USD(600),
		}},
		{Security: "TSLA", Report: capgains.Report{
			Amount:       capgains.Q(5),
			DateAcquired: date(time.January, 5),
			Costs:        capgains.USD(1002),
			DateSold:     date(time.February, 1),
			Sales:        capgains.USD(900),
		}},
	}
}

func TestNECCSV(t *testing.T) {
	out, err := NECCSV(sampleReports(), map[string]string{"AAPL": "AAPL (APPLE INC)"})
	if err != nil {
		t.Fatalf("NECCSV() error = %v", err)
	}

	if !strings.HasPrefix(out, necHeader) {
		t.Errorf("output does not start with the Schedule NEC header block")
	}

	rows := strings.TrimPrefix(out, necHeader)
	want := "AAPL (APPLE INC) - 40 shares,01/02/2020,03/02/2020,600,404,,196\n" +
		"TSLA - 5 shares,01/05/2020,02/01/2020,900,1002,102,\n"
	if rows != want {
		t.Errorf("rows:\n%q\nwant:\n%q", rows, want)
	}
}

func TestNECCSV_Empty(t *testing.T) {
	out, err := NECCSV(nil, nil)
	if err != nil {
		t.Fatalf("NECCSV() error = %v", err)
	}
	if out != necHeader {
		t.Errorf("empty run should produce the bare header, got %q", out)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	md := SummaryMarkdown("2020.csv", sampleReports())

	// The gain and the loss are tallied in separate columns of the form.
	for _, want := range []string{
		"2020.csv",
		"| AAPL |",
		"| TSLA |",
		"Total Loss: $102.00",
		"Total Gain: $196.00",
		"Net Profit: +$94.00",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("summary does not contain %q:\n%s", want, md)
		}
	}
}

// The summary must stay structurally valid markdown: one top level heading
// and the three totals bullets.
func TestSummaryMarkdown_Structure(t *testing.T) {
	md := SummaryMarkdown("2020.csv", sampleReports())

	source := []byte(md)
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var headings, items int
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Heading:
			if v.Level == 1 {
				headings++
			}
		case *ast.ListItem:
			items++
		}
		return ast.WalkContinue, nil
	})

	if headings != 1 {
		t.Errorf("got %d level-1 headings, want 1", headings)
	}
	if items != 3 {
		t.Errorf("got %d totals bullets, want 3", items)
	}
}

func TestSummaryMarkdown_NoReports(t *testing.T) {
	md := SummaryMarkdown("2020.csv", nil)
	if !strings.Contains(md, "No closed lots") {
		t.Errorf("empty summary = %q", md)
	}
}

func TestLotsMarkdown(t *testing.T) {
	stmt := capgains.NewStatement()
	trans := capgains.Transaction{
		Amount: capgains.Q(100), Price: capgains.USD(10), Costs: capgains.USD(5), Date: date(time.January, 2),
	}
	if err := stmt.AddTransaction("AAPL", trans); err != nil {
		t.Fatalf("AddTransaction() error = %v", err)
	}

	md := LotsMarkdown(stmt)
	for _, want := range []string{"## AAPL", "| 2020-01-02 09:30:00 | 100 | $10.00 | $5.00 |"} {
		if !strings.Contains(md, want) {
			t.Errorf("lots markdown does not contain %q:\n%s", want, md)
		}
	}
}

func TestLotsMarkdown_AllClosed(t *testing.T) {
	md := LotsMarkdown(capgains.NewStatement())
	if !strings.Contains(md, "All positions are closed.") {
		t.Errorf("lots markdown = %q", md)
	}
}
