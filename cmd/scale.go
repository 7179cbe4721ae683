package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/money"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type scaleCmd struct{}

func (*scaleCmd) Name() string { return "scale" }
func (*scaleCmd) Synopsis() string {
	return "multiplies an amount by a decimal factor"
}
func (*scaleCmd) Usage() string {
	return `mny scale <factor> <amount>

  Multiplies the amount by the factor and prints the result in canonical
  form. The result is rounded half away from zero to whole cents.

Usage Examples:
$ mny scale 1.5 "10.00 USD"
15.00 USD

`
}

func (*scaleCmd) SetFlags(f *flag.FlagSet) {}

func (p *scaleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: scale needs a factor and an amount")
		return subcommands.ExitUsageError
	}

	factor, err := decimal.NewFromString(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing factor %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	m, err := money.Parse(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	scaled, err := m.Scale(factor)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, scaled)
	return subcommands.ExitSuccess
}
