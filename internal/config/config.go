package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr string     `env:"HTTP_ADDR" envDefault:":8080"`
	DBPath   string     `env:"DB_PATH" envDefault:"data/globequiz.db"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	SPADir   string     `env:"SPA_DIR" envDefault:"../web/dist"`

	// Upstream feeds for the country catalogue.
	GeoURL  string `env:"GEO_URL" envDefault:"https://cdn.jsdelivr.net/gh/johan/world.geo.json@master/countries.geo.json"`
	MetaURL string `env:"META_URL" envDefault:"https://restcountries.com/v3.1/all?fields=cca3,name,translations,capital,region,latlng,flags"`

	// SessionTTL is how long an idle game session survives before the
	// registry evicts it, in minutes.
	SessionTTLMinutes int `env:"SESSION_TTL_MINUTES" envDefault:"120"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
