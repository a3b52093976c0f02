package renderer

import (
	"strings"
	"testing"

	"realincome"
)

func TestRenderRatio(t *testing.T) {
	r := &Report{
		Mode:        ModeRatio,
		Country:     "Poland",
		Source:      "IMF SDMX",
		Indicator:   "CPI index level",
		Start:       "2020-01",
		Latest:      "2025-06",
		Nominal:     realincome.M(100000, "USD"),
		Real:        realincome.M(80000, "USD"),
		Loss:        realincome.M(20000, "USD"),
		LossPct:     realincome.Percent(20),
		IndexStart:  100.0,
		IndexLatest: 125.0,
	}
	out := Render(r)

	for _, want := range []string{
		"Mode: SDMX",
		"Country: Poland",
		"Start: 2020-01",
		"Latest: 2025-06",
		"Nominal amount: $100,000.00",
		"Real value now: $80,000.00",
		"Purchasing-power loss: $20,000.00 (20.00%)",
		"2020-01: 100.00",
		"2025-06: 125.00",
		"Inflation factor: 1.2500",
		"real_value = nominal * (CPI_start / CPI_latest)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report is missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Annual inflation rates") {
		t.Error("ratio report contains the chain detail block")
	}
}

func TestRenderChain(t *testing.T) {
	r := &Report{
		Mode:      ModeChain,
		Country:   "United States",
		Source:    "IMF DataMapper",
		Indicator: "PCPIPCH",
		Start:     "2020",
		Latest:    "2021",
		Nominal:   realincome.M(1000, "USD"),
		Real:      realincome.M(956.94, "USD"),
		Loss:      realincome.M(43.06, "USD"),
		LossPct:   realincome.Percent(4.31),
		Rates: []realincome.YearlyRate{
			{Year: 2020, Pct: 10.0},
			{Year: 2021, Pct: -5.0},
		},
		Quip: "Inflation never sleeps.",
	}
	out := Render(r)

	for _, want := range []string{
		"Mode: DataMapper",
		"Annual inflation rates used (PCPIPCH):",
		"2020: +10.00%",
		"2021: -5.00%",
		"real_value = nominal / deflator",
		"Inflation never sleeps.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report is missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Inflation factor") {
		t.Error("chain report contains the ratio detail block")
	}
}
