package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/bloglist/internal/flagx"
)

// parseFlags overlays values from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g. ":3003")
//	-health string  gRPC health bind address ("" disables)
//	-d string   PostgreSQL DSN ("memory" for the in-memory store)
//	-s string   token signing secret
//	-t int      token validity, minutes
//	-hc int     gRPC health refresh interval, seconds
//	-m string   mode: production | test
//	-l string   log level
//	-u string   S3 user
//	-p string   S3 password
//	-b string   S3 bucket
//	-r string   S3 region
//	-e string   S3 base endpoint
//
// Args are filtered with flagx.FilterArgs first so flags owned by other
// components do not break parsing.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-health", "-d", "-s", "-t", "-hc", "-m", "-l", "-u", "-p", "-b", "-r", "-e"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "HTTP address and port")
	fs.StringVar(&config.EndpointAddrGRPC, "health", config.EndpointAddrGRPC, "gRPC health address and port")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "token signing secret")
	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token validity (in minutes)")
	healthInterval := fs.Int("hc", int(config.HealthCheckInterval.Seconds()), "gRPC health refresh interval (in seconds)")
	fs.StringVar(&config.Mode, "m", config.Mode, "mode: production or test")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "r", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Minute
		case "hc":
			config.HealthCheckInterval = time.Duration(*healthInterval) * time.Second
		}
	})
	return nil
}
