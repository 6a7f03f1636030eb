package logger

import (
	"io"
	stdlog "log"
	"os"

	"github.com/rs/zerolog"
	"github.com/striker-satyam/gatewaychk/internal/common/errorwrapper"
	"github.com/striker-satyam/gatewaychk/internal/config"
)

// LoggerBuilder assembles a Logger from Options.
type LoggerBuilder struct {
	opts    Options
	console io.Writer
}

func NewLoggerBuilder() *LoggerBuilder {
	return &LoggerBuilder{
		opts:    defaultOptions(),
		console: os.Stderr,
	}
}

// WithConfig replaces the options with ones resolved from cfg.
func (lb *LoggerBuilder) WithConfig(cfg config.LogConfig) *LoggerBuilder {
	lb.opts = OptionsFromConfig(cfg)
	return lb
}

func (lb *LoggerBuilder) WithLevel(level zerolog.Level) *LoggerBuilder {
	lb.opts.Level = level
	return lb
}

// WithConsoleOutput redirects console output. Nil disables the console.
func (lb *LoggerBuilder) WithConsoleOutput(w io.Writer) *LoggerBuilder {
	lb.console = w
	return lb
}

func (lb *LoggerBuilder) Build() (*Logger, error) {
	if lb.opts.FileEnabled() && lb.opts.MaxSizeMB <= 0 {
		return nil, errorwrapper.NewValidationError("max_log_size_mb", lb.opts.MaxSizeMB, "must be positive")
	}

	var outputs []io.Writer
	if lb.console != nil {
		outputs = append(outputs, formatWriter(lb.console, lb.opts.Format, lb.console == os.Stderr))
	}
	if lb.opts.FileEnabled() {
		file, err := rotatingFile(lb.opts)
		if err != nil {
			return nil, errorwrapper.WrapError(err, "failed to prepare log file")
		}
		// files never get ANSI colors
		outputs = append(outputs, formatWriter(file, lb.opts.Format, false))
	}
	if len(outputs) == 0 {
		return nil, errorwrapper.NewError("no log outputs configured")
	}

	zl := zerolog.New(zerolog.MultiLevelWriter(outputs...)).
		Level(lb.opts.Level).
		With().
		Timestamp().
		Logger()

	// anything still using the standard log package ends up in zerolog too
	stdlog.SetFlags(0)
	stdlog.SetOutput(zl)

	return &Logger{zerolog: zl, opts: lb.opts}, nil
}
