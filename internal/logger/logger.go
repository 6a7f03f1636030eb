package logger

import (
	"github.com/rs/zerolog"
	"github.com/striker-satyam/gatewaychk/internal/config"
)

// Logger pairs a zerolog instance with the options it was built from.
type Logger struct {
	zerolog zerolog.Logger
	opts    Options
}

func (l *Logger) GetZerolog() *zerolog.Logger {
	return &l.zerolog
}

func (l *Logger) Options() Options {
	return l.opts
}

// New builds the application logger from cfg.
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	l, err := NewLoggerBuilder().WithConfig(cfg).Build()
	if err != nil {
		return zerolog.Logger{}, err
	}
	return l.zerolog, nil
}
