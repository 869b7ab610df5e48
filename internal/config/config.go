package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/advent2024/internal/logging"
	"github.com/danmuck/advent2024/internal/output"
	"github.com/danmuck/advent2024/internal/puzzle"
)

// DefaultPath is where the CLI looks for its config file.
const DefaultPath = "advent.toml"

var ErrInvalidConfig = errors.New("invalid config")

// Config is the effective harness configuration.
type Config struct {
	InputDir      string
	Year          int
	Format        string
	Parallel      bool
	Color         bool
	LogLevel      string
	Addr          string
	CorsOrigins   []string
	WatchDebounce time.Duration
	Days          []int
	MetricsOut    string
}

type fileConfig struct {
	InputDir      string   `toml:"input_dir"`
	Year          int      `toml:"year"`
	Format        string   `toml:"format"`
	Parallel      bool     `toml:"parallel"`
	Color         bool     `toml:"color"`
	LogLevel      string   `toml:"log_level"`
	Addr          string   `toml:"addr"`
	CorsOrigins   []string `toml:"cors_origins"`
	WatchDebounce string   `toml:"watch_debounce"`
	Days          []int    `toml:"days"`
	MetricsOut    string   `toml:"metrics_out"`
}

func DefaultConfig() Config {
	return Config{
		InputDir:      puzzle.DefaultInputDir,
		Year:          output.DefaultYear,
		Format:        string(output.FormatText),
		Color:         true,
		Addr:          "127.0.0.1:9024",
		CorsOrigins:   []string{"http://localhost:3000"},
		WatchDebounce: 250 * time.Millisecond,
	}
}

// Load reads path over the defaults. A missing file is not an error; the
// second return value reports whether a file was read.
func Load(path string) (Config, bool, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return cfg, false, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, false, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, false, fmt.Errorf("%w (%s): unknown key %q", ErrInvalidConfig, path, undecoded[0].String())
	}

	if meta.IsDefined("input_dir") {
		cfg.InputDir = strings.TrimSpace(raw.InputDir)
	}
	if meta.IsDefined("year") {
		cfg.Year = raw.Year
	}
	if meta.IsDefined("format") {
		cfg.Format = strings.TrimSpace(raw.Format)
	}
	if meta.IsDefined("parallel") {
		cfg.Parallel = raw.Parallel
	}
	if meta.IsDefined("color") {
		cfg.Color = raw.Color
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("addr") {
		cfg.Addr = strings.TrimSpace(raw.Addr)
	}
	if meta.IsDefined("cors_origins") {
		cfg.CorsOrigins = normalizeOrigins(raw.CorsOrigins)
	}
	if meta.IsDefined("watch_debounce") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.WatchDebounce))
		if err != nil {
			return Config{}, false, fmt.Errorf("parse watch_debounce: %w", err)
		}
		cfg.WatchDebounce = d
	}
	if meta.IsDefined("days") {
		cfg.Days = raw.Days
	}
	if meta.IsDefined("metrics_out") {
		cfg.MetricsOut = strings.TrimSpace(raw.MetricsOut)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, false, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, true, nil
}

func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.InputDir) == "" {
		return fmt.Errorf("%w: input_dir is required", ErrInvalidConfig)
	}
	if cfg.Year < 2015 {
		return fmt.Errorf("%w: year %d predates advent of code", ErrInvalidConfig, cfg.Year)
	}
	if _, err := output.ParseFormat(cfg.Format); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, ok := logging.ParseLevel(cfg.LogLevel); cfg.LogLevel != "" && !ok {
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, cfg.LogLevel)
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("%w: addr is required", ErrInvalidConfig)
	}
	if cfg.WatchDebounce <= 0 {
		return fmt.Errorf("%w: watch_debounce must be positive", ErrInvalidConfig)
	}
	for i, day := range cfg.Days {
		if day < puzzle.FirstDay || day > puzzle.LastDay {
			return fmt.Errorf("%w: days[%d]=%d out of range", ErrInvalidConfig, i, day)
		}
	}
	return nil
}

func normalizeOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	for _, origin := range in {
		v := strings.TrimSpace(origin)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
