// Package cmd implements the CLI application that adjusts amounts for
// inflation.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"realincome"
	"realincome/datamapper"
	"realincome/sdmx"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&sdmxCmd{}, "adjust")
	c.Register(&datamapperCmd{}, "adjust")

	c.Register(&countriesCmd{}, "reference")
	c.Register(&topicCmd{}, "reference")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the YAML config file (optional)")
var cacheDir = flag.String("cache-dir", "", "Path to the response cache directory (defaults to the user cache dir)")
var noCache = flag.Bool("no-cache", false, "Bypass the response cache for this invocation")
var verbose = flag.Bool("v", false, "Log requests and cache activity to stderr")

// Verbose reports whether -v was given.
func Verbose() bool { return *verbose }

// loadConfig reads the optional config file and folds the cache flags in.
func loadConfig() (*Config, error) {
	cfg, err := Load(*configFile)
	if err != nil {
		return nil, err
	}
	if *cacheDir != "" {
		cfg.CacheDir = *cacheDir
	}
	return cfg, nil
}

// newSDMX builds the SDMX client from config and flags.
func newSDMX() (*sdmx.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	cache := realincome.NewCache(cfg.CacheDir, *noCache)
	return sdmx.New(cfg.SDMX, cache), nil
}

// newDataMapper builds the DataMapper client from config and flags.
func newDataMapper() (*datamapper.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	cache := realincome.NewCache(cfg.CacheDir, *noCache)
	return datamapper.New(cfg.DataMapper, cache), nil
}

// fail prints err and returns the failure status for Execute methods.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
