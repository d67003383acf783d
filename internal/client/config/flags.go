package config

import (
	"flag"
	"os"
	"time"

	"github.com/quantumio/qtask/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the user listing endpoint
//	-t int      request timeout in seconds
//	-l int      simulated auth latency in milliseconds
//	-p int      page size
//	-s string   sqlite DSN of the local store
//
// os.Args is filtered down to these flags first so other packages can parse
// their own flags without collisions.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-l", "-p", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIEndpointAddr, "a", cfg.APIEndpointAddr, "base URL of the user listing endpoint")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	simulatedLatency := fs.Int("l", int(cfg.SimulatedLatency.Milliseconds()), "simulated auth latency (in milliseconds)")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "directory entries per page")
	fs.StringVar(&cfg.StorageDSN, "s", cfg.StorageDSN, "sqlite DSN of the local store")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.SimulatedLatency = time.Duration(*simulatedLatency) * time.Millisecond
}
