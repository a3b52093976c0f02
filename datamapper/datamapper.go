// Package datamapper fetches country lists and annual inflation rates from
// the IMF DataMapper API.
//
// The API is JSON over plain GET, but it answers 403 to clients that do not
// look like a browser or curl, hence the default headers.
package datamapper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"

	"realincome"
)

const (
	defaultBaseURL   = "https://www.imf.org/external/datamapper/api/v1"
	defaultUserAgent = "curl/8.5.0"
	defaultReferer   = "https://www.imf.org/external/datamapper/"
	defaultTimeout   = 30 * time.Second
)

// Indicator is the annual inflation rate, average consumer prices (%).
const Indicator = "PCPIPCH"

// Config holds the endpoint and client settings. Zero fields take the
// defaults above.
type Config struct {
	BaseURL   string        `yaml:"base_url"`
	UserAgent string        `yaml:"user_agent"`
	Referer   string        `yaml:"referer"`
	Timeout   time.Duration `yaml:"timeout"`
}

// Client fetches from the DataMapper API through a payload cache.
type Client struct {
	cfg   Config
	http  *http.Client
	cache *realincome.Cache
}

// New returns a Client with cfg's zero fields defaulted.
func New(cfg Config, cache *realincome.Cache) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.Referer == "" {
		cfg.Referer = defaultReferer
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
	h.Set("Accept", "application/json,text/plain,*/*")
	h.Set("Accept-Language", "en-US,en;q=0.9")
	h.Set("Referer", c.cfg.Referer)
	h.Set("User-Agent", c.cfg.UserAgent)
	return h
}

// Countries returns the ISO3 country list, sorted by name.
func (c *Client) Countries(ctx context.Context) ([]realincome.Item, error) {
	raw, err := c.cache.GetOrFetch("datamapper countries", func() ([]byte, error) {
		return realincome.Get(ctx, c.http, c.cfg.BaseURL+"/countries", c.header())
	})
	if err != nil {
		return nil, fmt.Errorf("fetching countries: %w", err)
	}
	items, err := decodeCountries(raw)
	if err != nil {
		return nil, err
	}
	realincome.SortItems(items)
	return items, nil
}

func decodeCountries(raw []byte) ([]realincome.Item, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid countries document: %w", err)
	}
	jval, err := jsonpath.Get("$.countries", doc)
	if err != nil {
		return nil, fmt.Errorf("countries document has no countries object: %w", err)
	}
	m, ok := jval.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected countries shape %T", jval)
	}
	out := make([]realincome.Item, 0, len(m))
	for code, info := range m {
		name := code
		if obj, ok := info.(map[string]any); ok {
			if s, ok := obj["label"].(string); ok && s != "" {
				name = s
			}
		}
		out = append(out, realincome.Item{Code: code, Name: name})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("countries document is empty: %w", realincome.ErrNoRecords)
	}
	return out, nil
}

// Rates returns the annual inflation rates for the country over the
// inclusive year range, ascending. Years the source has no value for are
// skipped, not zero-filled.
func (c *Client) Rates(ctx context.Context, country string, startYear, endYear int) ([]realincome.YearlyRate, error) {
	periods := make([]string, 0, endYear-startYear+1)
	for y := startYear; y <= endYear; y++ {
		periods = append(periods, strconv.Itoa(y))
	}
	key := strings.Join([]string{"datamapper", Indicator, country, strconv.Itoa(startYear), strconv.Itoa(endYear)}, " ")
	raw, err := c.cache.GetOrFetch(key, func() ([]byte, error) {
		addr := fmt.Sprintf("%s/%s/%s?periods=%s", c.cfg.BaseURL, Indicator, country, strings.Join(periods, ","))
		return realincome.Get(ctx, c.http, addr, c.header())
	})
	if err != nil {
		return nil, fmt.Errorf("fetching %s values: %w", Indicator, err)
	}
	return decodeRates(raw, country, startYear, endYear)
}

func decodeRates(raw []byte, country string, startYear, endYear int) ([]realincome.YearlyRate, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid values document: %w", err)
	}
	jval, err := jsonpath.Get(fmt.Sprintf("$.values.%s.%s", Indicator, country), doc)
	if err != nil {
		return nil, fmt.Errorf("no %s data for %s: %w", Indicator, country, realincome.ErrNoRecords)
	}
	series, ok := jval.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected values shape %T for %s", jval, country)
	}

	var out []realincome.YearlyRate
	for y := startYear; y <= endYear; y++ {
		v, ok := series[strconv.Itoa(y)]
		if !ok {
			continue // the source has gaps, skip rather than zero-fill
		}
		pct, ok := v.(float64)
		if !ok {
			continue
		}
		out = append(out, realincome.YearlyRate{Year: y, Pct: pct})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s for %s has no values in %d..%d: %w", Indicator, country, startYear, endYear, realincome.ErrNoRecords)
	}
	return out, nil
}
