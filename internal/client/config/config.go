package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// Config holds runtime settings for the blog list CLI.
//
// Fields:
//   - ServerURL: base URL of the blog list API.
//   - DataDir: directory of the local database; relative paths resolve against the working directory.
//   - NotificationDuration: how long a notification stays visible.
//   - RequestTimeout: per-request HTTP timeout.
//   - OnlineCheckInterval: how often the client checks server reachability.
type Config struct {
	ServerURL            string
	DataDir              string
	NotificationDuration time.Duration
	RequestTimeout       time.Duration
	OnlineCheckInterval  time.Duration
}

const DatabaseFile = "bloglist.db"

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:3003"
	c.DataDir = ".bloglist"
	c.NotificationDuration = 5 * time.Second
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
}

// LoadConfig applies defaults, then JSON (if -c/-config is given), then
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}

// Load is LoadConfig over an explicit argument list.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ErrNonPositiveDuration is returned by Load when a duration setting is zero
// or negative.
var ErrNonPositiveDuration = errors.New("duration must be positive")

func (c *Config) validate() error {
	for _, d := range []struct {
		name  string
		value time.Duration
	}{
		{"notification duration", c.NotificationDuration},
		{"request timeout", c.RequestTimeout},
		{"online check interval", c.OnlineCheckInterval},
	} {
		if d.value <= 0 {
			return fmt.Errorf("%s %s: %w", d.name, d.value, ErrNonPositiveDuration)
		}
	}
	return nil
}
