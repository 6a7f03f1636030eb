package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/striker-satyam/gatewaychk/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultLogger(t *testing.T) {
	log, err := New(config.NewDefaultLogConfig())
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}

func TestLoggerBuilder_JSONConsole(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLoggerBuilder().
		WithConfig(config.LogConfig{LogLevel: "debug", LogFormat: "json"}).
		WithConsoleOutput(&buf).
		Build()
	require.NoError(t, err)

	l.GetZerolog().Debug().Str("module", "test").Msg("hello")

	assert.Contains(t, buf.String(), `"module":"test"`)
	assert.Contains(t, buf.String(), `"message":"hello"`)
	assert.Equal(t, FormatJSON, l.Options().Format)
}

func TestLoggerBuilder_TextHasNoColor(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLoggerBuilder().
		WithConfig(config.LogConfig{LogFormat: "text"}).
		WithConsoleOutput(&buf).
		Build()
	require.NoError(t, err)

	l.GetZerolog().Info().Msg("plain")

	assert.Contains(t, buf.String(), "plain")
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestLoggerBuilder_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLoggerBuilder().
		WithConfig(config.LogConfig{LogLevel: "warn", LogFormat: "json"}).
		WithConsoleOutput(&buf).
		Build()
	require.NoError(t, err)

	l.GetZerolog().Info().Msg("dropped")
	l.GetZerolog().Warn().Msg("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestLoggerBuilder_WithLevelOverridesConfig(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLoggerBuilder().
		WithConfig(config.LogConfig{LogLevel: "debug", LogFormat: "json"}).
		WithLevel(zerolog.ErrorLevel).
		WithConsoleOutput(&buf).
		Build()
	require.NoError(t, err)

	l.GetZerolog().Warn().Msg("quiet")
	assert.Empty(t, buf.String())
}

func TestLoggerBuilder_FileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "gatechk.log")
	l, err := NewLoggerBuilder().
		WithConfig(config.LogConfig{LogFormat: "json", LogFile: logFile}).
		WithConsoleOutput(nil).
		Build()
	require.NoError(t, err)
	assert.True(t, l.Options().FileEnabled())

	l.GetZerolog().Info().Msg("to file")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestLoggerBuilder_NoOutputs(t *testing.T) {
	_, err := NewLoggerBuilder().WithConsoleOutput(nil).Build()
	assert.Error(t, err)
}

func TestOptionsFromConfig_Fallbacks(t *testing.T) {
	opts := OptionsFromConfig(config.LogConfig{LogLevel: "nonsense", MaxLogSizeMB: -1})

	assert.Equal(t, zerolog.InfoLevel, opts.Level)
	assert.Equal(t, FormatConsole, opts.Format)
	assert.Equal(t, config.DefaultMaxLogSizeMB, opts.MaxSizeMB)
	assert.Equal(t, config.DefaultMaxLogBackups, opts.MaxBackups)
	assert.False(t, opts.FileEnabled())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"DEBUG", zerolog.DebugLevel, false},
		{" warn ", zerolog.WarnLevel, false},
		{"", zerolog.InfoLevel, false},
		{"loud", zerolog.InfoLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatText, ParseFormat("TEXT"))
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatConsole, ParseFormat("pretty"))
	assert.Equal(t, FormatConsole, ParseFormat(""))
}
