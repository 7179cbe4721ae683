package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/money"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates amounts and prints them in canonical form"
}
func (*fmtCmd) Usage() string {
	return `mny fmt [<amount> ...]

  Parses each amount and prints it back in canonical form, one per line.
  When no argument is given, amounts are read from stdin, one per line.

Usage Examples:
$ mny fmt "10 USD"
10.00 USD

`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inputs := f.Args()
	if len(inputs) == 0 {
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			inputs = append(inputs, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	for _, input := range inputs {
		m, err := money.Parse(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(stdout, m)
	}
	return subcommands.ExitSuccess
}
