// Package realincome computes the inflation-adjusted ("real") value of a
// nominal amount from price data published by the IMF.
//
// Two data paths are supported:
//   - SDMX: monthly CPI index levels from the IMF SDMX API. The real value
//     is the nominal amount scaled by the ratio of the index at the start
//     period over the latest available index.
//   - DataMapper: annual inflation rates (PCPIPCH) from the IMF DataMapper
//     API. The rates compound into a deflator that divides the nominal
//     amount.
//
// This package holds the shared value types (Item, Observation, YearlyRate,
// Money, Percent), the two deflator computations, the best-effort disk
// cache, and the HTTP helpers the provider packages (sdmx, datamapper)
// build on. It serves as the foundational logic for the `ri` command-line
// tool.
package realincome
