package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/bloglist/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the API
//	-data string  local data directory
//	-n int      notification duration (seconds)
//	-t int      request timeout (seconds)
//	-i int      online check interval (seconds)
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-data", "-n", "-t", "-i"})

	fs := flag.NewFlagSet("cli", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the API")
	fs.StringVar(&cfg.DataDir, "data", cfg.DataDir, "local data directory")
	notification := fs.Int("n", 0, "notification duration (in seconds)")
	timeout := fs.Int("t", 0, "request timeout (in seconds)")
	interval := fs.Int("i", 0, "online check interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cfg.NotificationDuration = time.Duration(*notification) * time.Second
		case "t":
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		case "i":
			cfg.OnlineCheckInterval = time.Duration(*interval) * time.Second
		}
	})
	return nil
}
