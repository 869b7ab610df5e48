package config

import (
	"github.com/pelletier/go-toml/v2"
)

// Encode renders cfg in the same TOML shape Load reads.
func Encode(cfg Config) ([]byte, error) {
	days := cfg.Days
	if days == nil {
		days = []int{}
	}
	origins := cfg.CorsOrigins
	if origins == nil {
		origins = []string{}
	}
	return toml.Marshal(fileConfig{
		InputDir:      cfg.InputDir,
		Year:          cfg.Year,
		Format:        cfg.Format,
		Parallel:      cfg.Parallel,
		Color:         cfg.Color,
		LogLevel:      cfg.LogLevel,
		Addr:          cfg.Addr,
		CorsOrigins:   origins,
		WatchDebounce: cfg.WatchDebounce.String(),
		Days:          days,
		MetricsOut:    cfg.MetricsOut,
	})
}
