package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"realincome"
)

// countriesCmd lists the country codes a data source accepts.
type countriesCmd struct {
	source string
}

func (*countriesCmd) Name() string     { return "countries" }
func (*countriesCmd) Synopsis() string { return "list the country codes a data source accepts" }
func (*countriesCmd) Usage() string {
	return `ri countries [-source sdmx|datamapper]

  Prints the countries known to a data source, one per line, sorted by
  name. The code at the end of each line is what the adjust commands
  take as -country.
`
}

func (c *countriesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.source, "source", "sdmx", "Data source to list: sdmx or datamapper")
}

func (c *countriesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var items []realincome.Item
	switch c.source {
	case "sdmx":
		client, err := newSDMX()
		if err != nil {
			return fail(err)
		}
		if items, err = client.Countries(ctx); err != nil {
			return fail(err)
		}
	case "datamapper":
		client, err := newDataMapper()
		if err != nil {
			return fail(err)
		}
		if items, err = client.Countries(ctx); err != nil {
			return fail(err)
		}
	default:
		return fail(fmt.Errorf("unknown source %q, want sdmx or datamapper", c.source))
	}

	for _, item := range items {
		fmt.Println(item)
	}
	return subcommands.ExitSuccess
}
