// Package config loads waypoint settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/waypoint/internal/logging"
	"github.com/iw2rmb/waypoint/navhistory"
)

const (
	EnvConfigPath   = "WAYPOINT_CONFIG"
	EnvSpaceBarrier = "WAYPOINT_SPACE_BARRIER"
	EnvHistoryLimit = "WAYPOINT_HISTORY_LIMIT"
)

var ErrInvalid = errors.New("config: invalid value")

// Config is the on-disk configuration.
//
//	history:
//	  space_barrier: 25
//	  limit: 20
//	logging:
//	  level: debug
//	  sink: file
type Config struct {
	History History        `yaml:"history"`
	Logging logging.Config `yaml:"logging"`
}

type History struct {
	// SpaceBarrier is the minimum number of lines between the new and the
	// last recorded cursor position for the move to be recorded.
	SpaceBarrier *int `yaml:"space_barrier,omitempty"`
	// Limit is the maximum number of positions kept per document.
	Limit *int `yaml:"limit,omitempty"`
}

func Default() Config {
	barrier := navhistory.DefaultSpaceBarrier
	limit := navhistory.DefaultHistoryLimit
	return Config{
		History: History{SpaceBarrier: &barrier, Limit: &limit},
	}
}

// Limits returns the history thresholds, falling back to defaults for unset
// fields.
func (c Config) Limits() navhistory.Limits {
	lim := navhistory.DefaultLimits()
	if c.History.SpaceBarrier != nil {
		lim.SpaceBarrier = *c.History.SpaceBarrier
	}
	if c.History.Limit != nil {
		lim.HistoryLimit = *c.History.Limit
	}
	return lim
}

func (c Config) Validate() error {
	if b := c.History.SpaceBarrier; b != nil && *b < 0 {
		return fmt.Errorf("%w: history.space_barrier must be >= 0, got %d", ErrInvalid, *b)
	}
	if l := c.History.Limit; l != nil && *l < 1 {
		return fmt.Errorf("%w: history.limit must be >= 1, got %d", ErrInvalid, *l)
	}
	if _, err := c.Logging.Normalize(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Parse decodes YAML and applies it over Default.
func Parse(data []byte) (Config, error) {
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	cfg := Default()
	if file.History.SpaceBarrier != nil {
		cfg.History.SpaceBarrier = file.History.SpaceBarrier
	}
	if file.History.Limit != nil {
		cfg.History.Limit = file.History.Limit
	}
	cfg.Logging = file.Logging
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads path. A missing file yields Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// WithEnv applies WAYPOINT_* overrides. Malformed numbers are ignored.
func (c Config) WithEnv() Config {
	applyInt := func(dst **int, env string) {
		raw := strings.TrimSpace(os.Getenv(env))
		if raw == "" {
			return
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return
		}
		*dst = &n
	}
	applyInt(&c.History.SpaceBarrier, EnvSpaceBarrier)
	applyInt(&c.History.Limit, EnvHistoryLimit)
	c.Logging = c.Logging.WithEnv()
	return c
}

// DefaultPath returns $WAYPOINT_CONFIG or <user config dir>/waypoint/config.yaml.
func DefaultPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve config dir: %w", err)
	}
	return filepath.Join(dir, "waypoint", "config.yaml"), nil
}

// Live holds the current configuration. It is safe to read from the UI
// goroutine while a watcher stores reloaded values.
type Live struct {
	cur atomic.Pointer[Config]
}

func NewLive(c Config) *Live {
	l := &Live{}
	l.Store(c)
	return l
}

func (l *Live) Load() Config {
	if c := l.cur.Load(); c != nil {
		return *c
	}
	return Default()
}

func (l *Live) Store(c Config) { l.cur.Store(&c) }

func (l *Live) Limits() navhistory.Limits { return l.Load().Limits() }
