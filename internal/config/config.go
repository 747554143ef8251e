package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPAddr string `yaml:"http_addr"`

	DBDriver string `yaml:"db_driver"` // memory|sqlite|postgres
	DBDSN    string `yaml:"db_dsn"`

	HMACSecret string `yaml:"hmac_secret"`

	CORSOrigins []string `yaml:"cors_origins"`
}

// FromEnv builds the runtime config from environment variables with
// local-dev defaults.
func FromEnv() Config {
	return Config{
		HTTPAddr:    envOr("HTTP_ADDR", ":8080"),
		DBDriver:    envOr("DB_DRIVER", "memory"),
		DBDSN:       envOr("DB_DSN", ""),
		HMACSecret:  envOr("AUTH_HMAC_SECRET", "supersecret-dev-key"),
		CORSOrigins: csvOr("CORS_ORIGINS", "http://localhost:3000"),
	}
}

// Load reads a YAML config file and overlays it on the env config. Missing
// file fields keep their env/default values.
func Load(path string) (Config, error) {
	cfg := FromEnv()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, err
	}
	if file.HTTPAddr != "" {
		cfg.HTTPAddr = file.HTTPAddr
	}
	if file.DBDriver != "" {
		cfg.DBDriver = file.DBDriver
	}
	if file.DBDSN != "" {
		cfg.DBDSN = file.DBDSN
	}
	if file.HMACSecret != "" {
		cfg.HMACSecret = file.HMACSecret
	}
	if len(file.CORSOrigins) > 0 {
		cfg.CORSOrigins = file.CORSOrigins
	}
	return cfg, nil
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
