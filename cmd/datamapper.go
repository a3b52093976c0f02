package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/google/subcommands"

	"realincome"
	"realincome/datamapper"
	"realincome/period"
	"realincome/quip"
	"realincome/renderer"
)

// datamapperCmd implements the "datamapper" command: yearly inflation rates.
type datamapperCmd struct {
	country  string
	start    string
	end      string
	amount   float64
	currency string
	noQuips  bool
	aiQuips  bool
}

func (*datamapperCmd) Name() string     { return "datamapper" }
func (*datamapperCmd) Synopsis() string { return "adjust an amount using yearly inflation rates" }
func (*datamapperCmd) Usage() string {
	return `ri datamapper -country <ISO3> -start <YYYY> -amount <amount> [-end <YYYY>] [-currency <code>]

  Fetches the yearly inflation rates for a country and chains them into a
  single deflator. The real value is the nominal amount divided by the
  product of (1 + rate/100) over the covered years.
`
}

func (c *datamapperCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.country, "country", "", "ISO3 country code (see 'ri countries -source datamapper')")
	f.StringVar(&c.start, "start", "", "Start year, YYYY")
	f.StringVar(&c.end, "end", "", "End year, YYYY (defaults to the current year)")
	f.Float64Var(&c.amount, "amount", 0, "Nominal amount in the start year")
	f.StringVar(&c.currency, "currency", "USD", "ISO currency code used to format amounts")
	f.BoolVar(&c.noQuips, "no-quips", false, "Leave the commentary out of the report")
	f.BoolVar(&c.aiQuips, "ai-quips", false, "Generate the commentary with Gemini (needs GEMINI_API_KEY)")
}

func (c *datamapperCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// the values document is keyed by the upper-case code
	c.country = strings.ToUpper(strings.TrimSpace(c.country))
	if c.country == "" {
		return fail(fmt.Errorf("-country is required (see 'ri countries -source datamapper')"))
	}
	if c.amount <= 0 {
		return fail(fmt.Errorf("-amount must be positive, got %v", c.amount))
	}
	startYear, err := period.ParseYearLoose(c.start)
	if err != nil {
		return fail(fmt.Errorf("-start: %w", err))
	}
	currentYear := time.Now().UTC().Year()
	endYear := currentYear
	if c.end != "" {
		endYear, err = period.ParseYearLoose(c.end)
		if err != nil {
			return fail(fmt.Errorf("-end: %w", err))
		}
		endYear = period.ClampYear(endYear, currentYear)
	}
	if endYear < startYear {
		return fail(fmt.Errorf("end year %d is before start year %d", endYear, startYear))
	}

	client, err := newDataMapper()
	if err != nil {
		return fail(err)
	}

	items, err := client.Countries(ctx)
	if err != nil {
		return fail(err)
	}
	item, ok := realincome.FindItem(items, c.country)
	if !ok {
		return fail(fmt.Errorf("unknown country %q (see 'ri countries -source datamapper')", c.country))
	}

	rates, err := client.Rates(ctx, c.country, startYear, endYear)
	if err != nil {
		return fail(err)
	}
	deflator, latestYear, err := realincome.Chain(rates)
	if err != nil {
		return fail(err)
	}

	res := realincome.DeflateChain(c.amount, deflator)
	report := &renderer.Report{
		Mode:      renderer.ModeChain,
		Country:   item.Name,
		Source:    "IMF DataMapper",
		Indicator: datamapper.Indicator,
		Start:     fmt.Sprintf("%d", rates[0].Year),
		Latest:    fmt.Sprintf("%d", latestYear),
		Nominal:   realincome.M(res.Nominal, c.currency),
		Real:      realincome.M(res.Real, c.currency),
		Loss:      realincome.M(res.Loss, c.currency),
		LossPct:   res.LossPct,
		Rates:     rates,
	}
	if !c.noQuips {
		if c.aiQuips {
			report.Quip = quip.Generate(ctx, float64(res.LossPct))
		} else {
			report.Quip = quip.Pick(float64(res.LossPct))
		}
	}

	fmt.Println(renderer.Render(report))
	return subcommands.ExitSuccess
}
