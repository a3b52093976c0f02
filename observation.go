package realincome

// Observation is a single time-stamped numeric data point of a series. The
// period is kept verbatim in the source's own token encoding ("2020-M01" or
// a bare year); binding it to a calendar period is the resolver's job.
type Observation struct {
	Period string
	Value  float64
}

// YearlyRate is an annual percentage change. Pct may be negative
// (deflation). A year the source has no value for is simply absent from a
// sequence, never zero-filled.
type YearlyRate struct {
	Year int
	Pct  float64
}
