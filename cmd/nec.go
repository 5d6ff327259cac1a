package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/hzou/capgains"
	"github.com/hzou/capgains/renderer"
)

// necCmd holds the flags for the 'nec' subcommand.
type necCmd struct {
	splits string
}

func (*necCmd) Name() string { return "nec" }
func (*necCmd) Synopsis() string {
	return "match sales against lots FIFO and write Schedule NEC CSV files"
}
func (*necCmd) Usage() string {
	return `cgt nec [-splits <schedule.json>] <statement.csv>...

  Processes Tiger Brokers activity statements of consecutive years, matches
  every sale against the oldest open lots, and writes one <statement>.nec.csv
  per input in the Schedule NEC column layout. Statements must each cover a
  whole year and be given in chronological order.

  The split schedule maps exact trade timestamps to [code, multiplier] pairs,
  applied to resting lots right before the transaction dated at that key.
`
}

func (c *necCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.splits, "splits", "", "JSON file mapping timestamps to [security code, split multiplier] pairs.")
}

func (c *necCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	descs, err := loadDescriptions(paths)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	stmt := capgains.NewStatement()
	for _, path := range paths {
		reports, err := processStatement(stmt, schedule, path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}

		out, err := renderer.NECCSV(reports, descs)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		output := strings.TrimSuffix(path, ".csv") + ".nec.csv"
		if err := os.WriteFile(output, []byte(out), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "cannot write %q: %v\n", output, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", output)

		printMarkdown(renderer.SummaryMarkdown(path, reports))
	}
	return subcommands.ExitSuccess
}
