// Package cmd implements the CLI application to parse, format and
// combine monetary amounts.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Commands lists the subcommands in registration order.
// A main package registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&fmtCmd{},
	&addCmd{},
	&scaleCmd{},
	&currencyCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok
// to use global variables. Tests swap them to capture output.
var (
	stdout io.Writer = os.Stdout
	stdin  io.Reader = os.Stdin
)

// printMarkdown renders markdown for the terminal, falling back to the
// raw source when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
