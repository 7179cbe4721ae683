package cmd

import (
	"strings"
	"testing"

	"github.com/google/subcommands"
)

func TestScaleCmd(t *testing.T) {
	tests := []struct {
		factor string
		amount string
		want   string
	}{
		{"3", "10.00 USD", "30.00 USD"},
		{"1.5", "10.00 USD", "15.00 USD"},
		{"0.5", "0.01 USD", "0.01 USD"},
	}
	for _, tt := range tests {
		t.Run(tt.factor+"x"+tt.amount, func(t *testing.T) {
			buf := captureStdout(t)

			status := run(t, &scaleCmd{}, tt.factor, tt.amount)
			if status != subcommands.ExitSuccess {
				t.Fatalf("Expected ExitSuccess, got %v", status)
			}
			if got := strings.TrimSpace(buf.String()); got != tt.want {
				t.Errorf("scale output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScaleCmd_badFactor(t *testing.T) {
	captureStdout(t)

	status := run(t, &scaleCmd{}, "one", "10.00 USD")
	if status != subcommands.ExitFailure {
		t.Errorf("Expected ExitFailure, got %v", status)
	}
}

func TestScaleCmd_needsTwoArgs(t *testing.T) {
	captureStdout(t)

	status := run(t, &scaleCmd{}, "10.00 USD")
	if status != subcommands.ExitUsageError {
		t.Errorf("Expected ExitUsageError, got %v", status)
	}
}
