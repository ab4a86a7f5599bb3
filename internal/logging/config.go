// Package logging configures the process-wide slog logger.
//
// The editor owns the terminal, so the default sink discards everything;
// users opt into a rotated log file.
package logging

import (
	"fmt"
	"os"
	"strings"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

type Sink string

const (
	SinkNone   Sink = "none"
	SinkStderr Sink = "stderr"
	SinkFile   Sink = "file"
)

const (
	EnvLogLevel  = "WAYPOINT_LOG_LEVEL"
	EnvLogFormat = "WAYPOINT_LOG_FORMAT"
	EnvLogSink   = "WAYPOINT_LOG_SINK"
	EnvLogFile   = "WAYPOINT_LOG_FILE"
)

// Config holds logging settings. Nil fields fall back to DefaultConfig.
type Config struct {
	Level  *string `yaml:"level,omitempty"`
	Format *string `yaml:"format,omitempty"`
	Sink   *string `yaml:"sink,omitempty"`
	File   *string `yaml:"file,omitempty"`

	MaxSizeMB  *int  `yaml:"max_size_mb,omitempty"`
	MaxBackups *int  `yaml:"max_backups,omitempty"`
	MaxAgeDays *int  `yaml:"max_age_days,omitempty"`
	Compress   *bool `yaml:"compress,omitempty"`
}

func DefaultConfig() Config {
	level := "info"
	format := string(FormatText)
	sink := string(SinkNone)
	maxSizeMB := 10
	maxBackups := 3
	maxAgeDays := 14
	compress := true
	return Config{
		Level:      &level,
		Format:     &format,
		Sink:       &sink,
		MaxSizeMB:  &maxSizeMB,
		MaxBackups: &maxBackups,
		MaxAgeDays: &maxAgeDays,
		Compress:   &compress,
	}
}

// Merge returns c with every non-nil field of override applied.
func (c Config) Merge(override Config) Config {
	pick := func(dst **string, src *string) {
		if src != nil {
			*dst = src
		}
	}
	pickInt := func(dst **int, src *int) {
		if src != nil {
			*dst = src
		}
	}
	pick(&c.Level, override.Level)
	pick(&c.Format, override.Format)
	pick(&c.Sink, override.Sink)
	pick(&c.File, override.File)
	pickInt(&c.MaxSizeMB, override.MaxSizeMB)
	pickInt(&c.MaxBackups, override.MaxBackups)
	pickInt(&c.MaxAgeDays, override.MaxAgeDays)
	if override.Compress != nil {
		c.Compress = override.Compress
	}
	return c
}

func (c Config) WithEnv() Config {
	apply := func(dst **string, env string) {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			*dst = &v
		}
	}
	apply(&c.Level, EnvLogLevel)
	apply(&c.Format, EnvLogFormat)
	apply(&c.Sink, EnvLogSink)
	apply(&c.File, EnvLogFile)
	// A log file without an explicit sink means "log to that file".
	if os.Getenv(EnvLogFile) != "" && os.Getenv(EnvLogSink) == "" {
		file := string(SinkFile)
		c.Sink = &file
	}
	return c
}

func (c Config) Normalize() (Config, error) {
	lower := func(s *string) *string {
		if s == nil {
			return nil
		}
		v := strings.ToLower(strings.TrimSpace(*s))
		if v == "" {
			return nil
		}
		return &v
	}
	nonNegative := func(n *int) *int {
		if n == nil || *n >= 0 {
			return n
		}
		zero := 0
		return &zero
	}
	c.Level = lower(c.Level)
	c.Format = lower(c.Format)
	c.Sink = lower(c.Sink)
	if c.File != nil {
		if v := strings.TrimSpace(*c.File); v == "" {
			c.File = nil
		} else {
			c.File = &v
		}
	}
	c.MaxSizeMB = nonNegative(c.MaxSizeMB)
	c.MaxBackups = nonNegative(c.MaxBackups)
	c.MaxAgeDays = nonNegative(c.MaxAgeDays)
	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.Level != nil {
		switch *c.Level {
		case "debug", "info", "warn", "warning", "error":
		default:
			return fmt.Errorf("logging.level: invalid %q", *c.Level)
		}
	}
	if c.Format != nil {
		switch Format(*c.Format) {
		case FormatText, FormatJSON:
		default:
			return fmt.Errorf("logging.format: invalid %q", *c.Format)
		}
	}
	if c.Sink != nil {
		switch Sink(*c.Sink) {
		case SinkNone, SinkStderr, SinkFile:
		default:
			return fmt.Errorf("logging.sink: invalid %q", *c.Sink)
		}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
