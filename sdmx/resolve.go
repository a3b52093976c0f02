package sdmx

import (
	"fmt"
	"sort"

	"realincome"
	"realincome/period"
)

// StartAndLatest selects from a series the observation at or after the
// requested start token, and the latest available one.
//
// Wire-format monthly tokens sort chronologically under plain string
// comparison, so a lexicographic sort of the tokens is a chronological
// sort of the series. The latest observation is simply the last of the
// sorted sequence; it may be earlier than the nominally requested end when
// the range extends into unreleased periods.
func StartAndLatest(obs []realincome.Observation, startToken string) (start, latest realincome.Observation, err error) {
	if len(obs) == 0 {
		return start, latest, fmt.Errorf("empty series: %w", realincome.ErrNoRecords)
	}
	sorted := make([]realincome.Observation, len(obs))
	copy(sorted, obs)
	sort.Slice(sorted, func(a, b int) bool { return sorted[a].Period < sorted[b].Period })

	i := sort.Search(len(sorted), func(i int) bool { return sorted[i].Period >= startToken })
	if i == len(sorted) {
		return start, latest, fmt.Errorf("no observation at or after %s, the start may precede the series coverage: %w",
			period.Label(startToken), realincome.ErrNoRecords)
	}
	start, latest = sorted[i], sorted[len(sorted)-1]

	// extraction already drops non-positive values; re-check before anyone
	// divides by these
	if start.Value <= 0 || latest.Value <= 0 {
		return realincome.Observation{}, realincome.Observation{},
			fmt.Errorf("invalid index level (<= 0) at %s or %s", start.Period, latest.Period)
	}
	return start, latest, nil
}
