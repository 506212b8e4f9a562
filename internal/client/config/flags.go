package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/taskdesk/internal/flagx"
)

// parseFlags populates Config from the -s, -d, -t and -l flags. Other flags
// in os.Args are ignored. Invalid values panic.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-d", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StoreURL, "s", cfg.StoreURL, "base URL of the REST store")
	fs.StringVar(&cfg.SessionDB, "d", cfg.SessionDB, "path of the local session database")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "per-request timeout, 0 disables it")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
