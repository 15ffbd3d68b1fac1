package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/volunteam/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the platform API (default from Config)
//	-t int      request timeout in seconds (default from Config)
//	-r int      total retry attempts per request (default from Config)
//	-d int      delay between retry attempts in seconds (default from Config)
//	-f string   path of the local session cache database
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-r", "-d", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the platform API")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.IntVar(&cfg.RetryAttempts, "r", cfg.RetryAttempts, "total retry attempts per request")
	retryDelay := fs.Int("d", int(cfg.RetryDelay.Seconds()), "delay between retry attempts (in seconds)")
	fs.StringVar(&cfg.CacheDBPath, "f", cfg.CacheDBPath, "path of the local session cache database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.RetryDelay = time.Duration(*retryDelay) * time.Second
}
