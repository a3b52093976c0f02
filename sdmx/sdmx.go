// Package sdmx fetches monthly CPI index levels and area codelists from the
// IMF SDMX APIs, and resolves a fetched series into the index pair the
// ratio-mode computation needs.
package sdmx

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"realincome"
	"realincome/period"
)

const (
	defaultDataBaseURL      = "https://api.imf.org/external/sdmx/2.1"
	defaultStructureBaseURL = "https://sdmxcentral.imf.org/ws/public/sdmxapi/rest"
	defaultUserAgent        = "real-income/0.3.1"
	defaultTimeout          = 30 * time.Second

	// CPI series key parts: AREA.INDEX_TYPE.COICOP.TRANSFORMATION.FREQUENCY
	dataset        = "CPI"
	indexType      = "CPI" // headline index family
	coicop         = "_T"  // all items
	transformation = "IX"  // index level
	frequency      = "M"   // monthly

	// codelist holding the ISO3 area codes the CPI dataset is keyed by
	areaCodelist = "CL_COUNTRY_ISO3"
)

// Indicator names what the fetched series measures, for display.
const Indicator = "CPI index level"

// Config holds the endpoints and client settings. Zero fields take the
// defaults above.
type Config struct {
	DataBaseURL      string        `yaml:"data_base_url"`
	StructureBaseURL string        `yaml:"structure_base_url"`
	UserAgent        string        `yaml:"user_agent"`
	Timeout          time.Duration `yaml:"timeout"`
}

// Client fetches from the SDMX APIs through a payload cache.
type Client struct {
	cfg   Config
	http  *http.Client
	cache *realincome.Cache
}

// New returns a Client with cfg's zero fields defaulted.
func New(cfg Config, cache *realincome.Cache) *Client {
	if cfg.DataBaseURL == "" {
		cfg.DataBaseURL = defaultDataBaseURL
	}
	if cfg.StructureBaseURL == "" {
		cfg.StructureBaseURL = defaultStructureBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		cfg:   cfg,
		http:  &http.Client{Timeout: cfg.Timeout},
		cache: cache,
	}
}

func (c *Client) header() http.Header {
	h := http.Header{}
	h.Set("User-Agent", c.cfg.UserAgent)
	return h
}

// SeriesKey returns the CPI series key for an area code, e.g.
// "POL.CPI._T.IX.M".
func SeriesKey(area string) string {
	return strings.Join([]string{area, indexType, coicop, transformation, frequency}, ".")
}

// Countries returns the ISO3 area codelist, sorted by name. Duplicated
// codes are kept: the list is for display and selection, where the first
// occurrence wins.
func (c *Client) Countries(ctx context.Context) ([]realincome.Item, error) {
	key := "sdmx codelist " + areaCodelist
	raw, err := c.cache.GetOrFetch(key, func() ([]byte, error) {
		addr := fmt.Sprintf("%s/codelist/IMF/%s/latest", c.cfg.StructureBaseURL, areaCodelist)
		return realincome.Get(ctx, c.http, addr, c.header())
	})
	if err != nil {
		return nil, fmt.Errorf("fetching codelist %s: %w", areaCodelist, err)
	}
	items, err := DecodeCodelist(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid codelist document: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("codelist %s is empty: %w", areaCodelist, realincome.ErrNoRecords)
	}
	realincome.SortItems(items)
	return items, nil
}

// Series returns all usable observations of the area's CPI series between
// start and end, in document order.
func (c *Client) Series(ctx context.Context, area string, start, end period.Month) ([]realincome.Observation, error) {
	sk := SeriesKey(area)
	key := strings.Join([]string{"sdmx data", dataset, sk, start.Wire(), end.Wire()}, " ")
	raw, err := c.cache.GetOrFetch(key, func() ([]byte, error) {
		addr := fmt.Sprintf("%s/data/%s/%s?startPeriod=%s&endPeriod=%s",
			c.cfg.DataBaseURL, dataset, sk, start.Wire(), end.Wire())
		return realincome.Get(ctx, c.http, addr, c.header())
	})
	if err != nil {
		return nil, fmt.Errorf("fetching series %s: %w", sk, err)
	}
	obs, err := DecodeObservations(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid dataset document for %s: %w", sk, err)
	}
	if len(obs) == 0 {
		return nil, fmt.Errorf("series %s has no observations in %s..%s: %w", sk, start, end, realincome.ErrNoRecords)
	}
	return obs, nil
}
