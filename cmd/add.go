package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/money"
	"github.com/google/subcommands"
)

type addCmd struct{}

func (*addCmd) Name() string { return "add" }
func (*addCmd) Synopsis() string {
	return "sums two or more amounts of the same currency"
}
func (*addCmd) Usage() string {
	return `mny add <amount> <amount> [<amount> ...]

  Parses the amounts, sums them and prints the total in canonical form.
  All amounts must share the same currency; mixing currencies is an error.

Usage Examples:
$ mny add "10 USD" "20 USD"
30.00 USD

`
}

func (*addCmd) SetFlags(f *flag.FlagSet) {}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Error: add needs at least two amounts")
		return subcommands.ExitUsageError
	}

	total, err := money.Parse(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, arg := range f.Args()[1:] {
		m, err := money.Parse(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		total, err = total.Add(m)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	fmt.Fprintln(stdout, total)
	return subcommands.ExitSuccess
}
