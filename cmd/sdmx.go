package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/google/subcommands"

	"realincome"
	"realincome/period"
	"realincome/quip"
	"realincome/renderer"
	"realincome/sdmx"
)

// sdmxCmd implements the "sdmx" command: monthly CPI index levels.
type sdmxCmd struct {
	country  string
	start    string
	end      string
	amount   float64
	currency string
	noQuips  bool
	aiQuips  bool
}

func (*sdmxCmd) Name() string     { return "sdmx" }
func (*sdmxCmd) Synopsis() string { return "adjust an amount using monthly CPI index levels" }
func (*sdmxCmd) Usage() string {
	return `ri sdmx -country <ISO3> -start <YYYY-MM> -amount <amount> [-end <YYYY-MM>] [-currency <code>]

  Fetches the monthly consumer price index for a country and reports what
  an amount from the start month is worth at the latest available month.
  The real value is the nominal amount scaled by the ratio of the two
  index levels.
`
}

func (c *sdmxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.country, "country", "", "ISO3 country code (see 'ri countries')")
	f.StringVar(&c.start, "start", "", "Start month, YYYY-MM")
	f.StringVar(&c.end, "end", "", "End month, YYYY-MM (defaults to the current month)")
	f.Float64Var(&c.amount, "amount", 0, "Nominal amount in the start month")
	f.StringVar(&c.currency, "currency", "USD", "ISO currency code used to format amounts")
	f.BoolVar(&c.noQuips, "no-quips", false, "Leave the commentary out of the report")
	f.BoolVar(&c.aiQuips, "ai-quips", false, "Generate the commentary with Gemini (needs GEMINI_API_KEY)")
}

func (c *sdmxCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// the series key is case-sensitive on the remote side
	c.country = strings.ToUpper(strings.TrimSpace(c.country))
	if c.country == "" {
		return fail(fmt.Errorf("-country is required (see 'ri countries')"))
	}
	if c.amount <= 0 {
		return fail(fmt.Errorf("-amount must be positive, got %v", c.amount))
	}
	start, err := period.Parse(c.start)
	if err != nil {
		return fail(fmt.Errorf("-start: %w", err))
	}
	end := period.ThisMonth()
	if c.end != "" {
		end, err = period.Parse(c.end)
		if err != nil {
			return fail(fmt.Errorf("-end: %w", err))
		}
		end = period.Clamp(end, period.ThisMonth())
	}
	if end.Before(start) {
		return fail(fmt.Errorf("end period %s is before start period %s", end, start))
	}

	client, err := newSDMX()
	if err != nil {
		return fail(err)
	}

	name := c.country
	if items, err := client.Countries(ctx); err != nil {
		log.Printf("country list unavailable (ignored): %v", err)
	} else if item, ok := realincome.FindItem(items, c.country); ok {
		name = item.Name
	}

	obs, err := client.Series(ctx, c.country, start, end)
	if err != nil {
		return fail(err)
	}
	first, latest, err := sdmx.StartAndLatest(obs, start.Wire())
	if err != nil {
		return fail(err)
	}

	res := realincome.DeflateRatio(c.amount, first.Value, latest.Value)
	report := &renderer.Report{
		Mode:        renderer.ModeRatio,
		Country:     name,
		Source:      "IMF SDMX 2.1",
		Indicator:   sdmx.Indicator,
		Start:       period.Label(first.Period),
		Latest:      period.Label(latest.Period),
		Nominal:     realincome.M(res.Nominal, c.currency),
		Real:        realincome.M(res.Real, c.currency),
		Loss:        realincome.M(res.Loss, c.currency),
		LossPct:     res.LossPct,
		IndexStart:  first.Value,
		IndexLatest: latest.Value,
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
