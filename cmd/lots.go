package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hzou/capgains"
	"github.com/hzou/capgains/renderer"
)

// lotsCmd holds the flags for the 'lots' subcommand.
type lotsCmd struct {
	splits string
}

func (*lotsCmd) Name() string { return "lots" }
func (*lotsCmd) Synopsis() string {
	return "show the lots still open after processing the statements"
}
func (*lotsCmd) Usage() string {
	return `cgt lots [-splits <schedule.json>] <statement.csv>...

  Processes the activity statements like 'nec' but instead of writing tax
  reports, prints the lots still open per security. Useful to reconcile the
  computed position against the broker's.
`
}

func (c *lotsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.splits, "splits", "", "JSON file mapping timestamps to [security code, split multiplier] pairs.")
}

func (c *lotsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	paths := f.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "at least one activity statement is required")
		return subcommands.ExitUsageError
	}

	schedule, err := loadSchedule(c.splits)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	stmt := capgains.NewStatement()
	for _, path := range paths {
		if _, err := processStatement(stmt, schedule, path); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.LotsMarkdown(stmt))
	return subcommands.ExitSuccess
}
