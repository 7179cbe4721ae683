package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/google/subcommands"
)

type currencyCmd struct{}

func (*currencyCmd) Name() string { return "currency" }
func (*currencyCmd) Synopsis() string {
	return "shows registry metadata for a currency code"
}
func (*currencyCmd) Usage() string {
	return `mny currency <code> [<code> ...]

  Looks up each 3-letter code in the ISO currency registry and shows its
  numeric code, fraction digits and symbol. This is informational only:
  parsing and formatting never consult the registry, any 3-character
  code is accepted there.

Usage Examples:
$ mny currency USD
`
}

func (*currencyCmd) SetFlags(f *flag.FlagSet) {}

func (p *currencyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: currency needs at least one code")
		return subcommands.ExitUsageError
	}

	var b strings.Builder
	b.WriteString("| Code | Numeric | Fraction | Symbol |\n")
	b.WriteString("|------|---------|----------|--------|\n")
	for _, code := range f.Args() {
		c := gomoney.GetCurrency(code)
		if c == nil {
			fmt.Fprintf(os.Stderr, "Error: %q is not a registered currency code\n", code)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(&b, "| %s | %s | %d | %s |\n", c.Code, c.NumericCode, c.Fraction, c.Grapheme)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
