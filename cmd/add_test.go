package cmd

import (
	"bytes"
	"context"
	"flag"
	"io"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

// captureStdout swaps the package stdout for a buffer for the duration
// of the test.
func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = old })
	return &buf
}

// run executes a command against the given arguments.
func run(t *testing.T, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("failed to parse args: %v", err)
	}
	return cmd.Execute(context.Background(), f)
}

func TestAddCmd(t *testing.T) {
	buf := captureStdout(t)

	status := run(t, &addCmd{}, "10 USD", "20 USD", "0.50 USD")
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	if got, want := strings.TrimSpace(buf.String()), "30.50 USD"; got != want {
		t.Errorf("add output = %q, want %q", got, want)
	}
}

func TestAddCmd_currencyMismatch(t *testing.T) {
	captureStdout(t)

	status := run(t, &addCmd{}, "10 USD", "10 EUR")
	if status != subcommands.ExitFailure {
		t.Errorf("Expected ExitFailure on mixed currencies, got %v", status)
	}
}

func TestAddCmd_needsTwoAmounts(t *testing.T) {
	captureStdout(t)

	status := run(t, &addCmd{}, "10 USD")
	if status != subcommands.ExitUsageError {
		t.Errorf("Expected ExitUsageError, got %v", status)
	}
}

func TestAddCmd_invalidAmount(t *testing.T) {
	captureStdout(t)

	status := run(t, &addCmd{}, "10.1 USD", "20 USD")
	if status != subcommands.ExitFailure {
		t.Errorf("Expected ExitFailure on invalid amount, got %v", status)
	}
}

// swapStdin replaces the command input for the duration of the test.
func swapStdin(t *testing.T, r io.Reader) {
	t.Helper()
	old := stdin
	stdin = r
	t.Cleanup(func() { stdin = old })
}
