package cmd

import (
	"context"
	"flag"
	"testing"

	"github.com/google/subcommands"
)

func TestDataMapperExecuteRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		cmd  datamapperCmd
	}{
		{"missing country", datamapperCmd{start: "2020", amount: 100}},
		{"blank country", datamapperCmd{country: "  ", start: "2020", amount: 100}},
		{"zero amount", datamapperCmd{country: "POL", start: "2020"}},
		{"negative amount", datamapperCmd{country: "POL", start: "2020", amount: -1}},
		{"missing start", datamapperCmd{country: "POL", amount: 100}},
		{"non-numeric start", datamapperCmd{country: "POL", start: "20x0", amount: 100}},
		{"start before 1800", datamapperCmd{country: "POL", start: "1750", amount: 100}},
		{"bad end", datamapperCmd{country: "POL", start: "2020", end: "soon", amount: 100}},
		{"end before start", datamapperCmd{country: "POL", start: "2022", end: "2019", amount: 100}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := flag.NewFlagSet(tc.name, flag.ContinueOnError)
			got := tc.cmd.Execute(context.Background(), f)
			if got != subcommands.ExitFailure {
				t.Errorf("Execute() = %v, want %v", got, subcommands.ExitFailure)
			}
		})
	}
}

func TestDataMapperCountryIsNormalized(t *testing.T) {
	// Fails at the amount gate, after the code has been cleaned up.
	cmd := datamapperCmd{country: "pol", start: "2020"}
	f := flag.NewFlagSet("norm", flag.ContinueOnError)
	cmd.Execute(context.Background(), f)

	if got, want := cmd.country, "POL"; got != want {
		t.Errorf("country = %q, want %q", got, want)
	}
}
