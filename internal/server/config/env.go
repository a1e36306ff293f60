package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// loadDotEnv is a seam for godotenv.Load. A missing .env file is not an error.
var loadDotEnv = func() error { return godotenv.Load() }

// parseEnv overlays values from the process environment. PORT, DATABASE_URL,
// SECRET and APP_MODE follow the usual hosting conventions; the rest use the
// BLOGLIST_ prefix. Empty variables count as unset.
//
//	PORT                       HTTP port (bind address becomes ":PORT")
//	DATABASE_URL               PostgreSQL DSN
//	SECRET                     token signing secret
//	APP_MODE                   production | test
//	BLOGLIST_HTTP_ADDR         full HTTP bind address (wins over PORT)
//	BLOGLIST_GRPC_ADDR         gRPC health bind address
//	BLOGLIST_TOKEN_TTL         token lifetime, Go duration syntax
//	BLOGLIST_HEALTH_INTERVAL   store health refresh period, Go duration syntax
//	BLOGLIST_LOG_LEVEL         log level
//	BLOGLIST_S3_USER, BLOGLIST_S3_PASSWORD, BLOGLIST_S3_BUCKET,
//	BLOGLIST_S3_REGION, BLOGLIST_S3_ENDPOINT
func parseEnv(config *Config) error {
	if err := loadDotEnv(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}

	v := newEnvViper()

	if port := envString(v, "PORT"); port != "" {
		config.EndpointAddrHTTP = ":" + strings.TrimPrefix(port, ":")
	}

	for key, dst := range map[string]*string{
		"BLOGLIST_HTTP_ADDR":   &config.EndpointAddrHTTP,
		"BLOGLIST_GRPC_ADDR":   &config.EndpointAddrGRPC,
		"DATABASE_URL":         &config.DatabaseDSN,
		"SECRET":               &config.SecretKey,
		"APP_MODE":             &config.Mode,
		"BLOGLIST_LOG_LEVEL":   &config.LogLevel,
		"BLOGLIST_S3_USER":     &config.S3RootUser,
		"BLOGLIST_S3_PASSWORD": &config.S3RootPassword,
		"BLOGLIST_S3_BUCKET":   &config.S3Bucket,
		"BLOGLIST_S3_REGION":   &config.S3Region,
		"BLOGLIST_S3_ENDPOINT": &config.S3BaseEndpoint,
	} {
		if s := envString(v, key); s != "" {
			*dst = s
		}
	}

	for key, dst := range map[string]*time.Duration{
		"BLOGLIST_TOKEN_TTL":       &config.TokenValidityDuration,
		"BLOGLIST_HEALTH_INTERVAL": &config.HealthCheckInterval,
	} {
		s := envString(v, key)
		if s == "" {
			continue
		}
		d, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = d
	}
	return nil
}

// newEnvViper returns a viper instance that resolves keys straight from the
// environment. AllowEmptyEnv stays off, so blank variables read as unset.
func newEnvViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	return v
}

func envString(v *viper.Viper, key string) string {
	return strings.TrimSpace(v.GetString(key))
}
