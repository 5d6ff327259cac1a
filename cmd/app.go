// Package cmd implements the CLI application to compute FIFO capital gains
// from broker activity statements.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/hzou/capgains"
	"github.com/hzou/capgains/tiger"
)

// Commands lists the subcommands to register; a main package registers each
// one on its commander.
var Commands = []subcommands.Command{
	&necCmd{},
	&lotsCmd{},
}

// printMarkdown renders a markdown report to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// Fall back to the raw markdown.
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// loadSchedule reads the split schedule file, or returns an empty schedule
// when no file was given.
func loadSchedule(path string) (capgains.SplitSchedule, error) {
	if path == "" {
		return capgains.SplitSchedule{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open split schedule %q: %w", path, err)
	}
	defer f.Close()
	return capgains.LoadSplitSchedule(f)
}

// loadDescriptions merges the instrument descriptions of all statements.
func loadDescriptions(paths []string) (map[string]string, error) {
	descs := make(map[string]string)
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("cannot open statement %q: %w", path, err)
		}
		d, err := tiger.Descriptions(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		for code, desc := range d {
			descs[code] = desc
		}
	}
	return descs, nil
}

// processStatement feeds one statement file through the shared statement,
// applying scheduled splits right before the transaction dated at their key,
// and drains the reports it produced.
func processStatement(stmt *capgains.Statement, schedule capgains.SplitSchedule, path string) ([]capgains.SecurityReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open statement %q: %w", path, err)
	}
	defer f.Close()

	trades, err := tiger.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for _, trade := range trades {
		if event, ok := schedule.Take(trade.Transaction.Date); ok {
			if err := stmt.Split(event.Security, event.Multiplier); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
		if err := stmt.AddTransaction(trade.Security, trade.Transaction); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return stmt.Reports(), nil
}
