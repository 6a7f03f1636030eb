package logger

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/striker-satyam/gatewaychk/internal/common/errorwrapper"
	"github.com/striker-satyam/gatewaychk/internal/config"
)

// Format selects how log lines are rendered.
type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
	FormatText    Format = "text"
)

// Options is the resolved form of config.LogConfig.
type Options struct {
	Level      zerolog.Level
	Format     Format
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
}

// FileEnabled reports whether a rotating log file is configured.
func (o Options) FileEnabled() bool {
	return o.FilePath != ""
}

func defaultOptions() Options {
	return Options{
		Level:      zerolog.InfoLevel,
		Format:     FormatConsole,
		MaxSizeMB:  config.DefaultMaxLogSizeMB,
		MaxBackups: config.DefaultMaxLogBackups,
	}
}

// OptionsFromConfig resolves a LogConfig. Unknown levels fall back to info,
// unknown formats to console and non-positive rotation limits to the defaults.
func OptionsFromConfig(cfg config.LogConfig) Options {
	opts := defaultOptions()
	if level, err := ParseLevel(cfg.LogLevel); err == nil {
		opts.Level = level
	}
	opts.Format = ParseFormat(cfg.LogFormat)
	opts.FilePath = strings.TrimSpace(cfg.LogFile)
	if cfg.MaxLogSizeMB > 0 {
		opts.MaxSizeMB = cfg.MaxLogSizeMB
	}
	if cfg.MaxLogBackups > 0 {
		opts.MaxBackups = cfg.MaxLogBackups
	}
	return opts
}

// ParseLevel accepts zerolog level names in any case. Blank means info.
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.InfoLevel, errorwrapper.WrapError(err, "invalid log level")
	}
	return level, nil
}

func ParseFormat(s string) Format {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatJSON:
		return FormatJSON
	case FormatText:
		return FormatText
	default:
		return FormatConsole
	}
}
