package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/striker-satyam/gatewaychk/internal/analyzer"
	"github.com/striker-satyam/gatewaychk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	flags, err := ParseFlags([]string{"-u", "a.example", "-url", "b.example", "-c", "cfg.yaml", "-json", "-notify", "-concurrency", "3", "c.example"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.example", "b.example", "c.example"}, flags.Targets)
	assert.Equal(t, "cfg.yaml", flags.GlobalConfigFile)
	assert.True(t, flags.JSONOutput)
	assert.True(t, flags.Notify)
	assert.Equal(t, 3, flags.Concurrency)
}

func TestParseFlags_FileOnly(t *testing.T) {
	flags, err := ParseFlags([]string{"-f", "targets.txt"}, io.Discard)
	require.NoError(t, err)

	assert.Empty(t, flags.Targets)
	assert.Equal(t, "targets.txt", flags.TargetsFile)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no targets", args: []string{"-json"}},
		{name: "negative concurrency", args: []string{"-u", "a.example", "-concurrency", "-1"}},
		{name: "unknown flag", args: []string{"-bogus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlags(tt.args, io.Discard)
			assert.Error(t, err)
		})
	}
}

func TestPrintOutcome(t *testing.T) {
	result := &models.ClassificationResult{
		URL:        "https://shop.example",
		Gateways:   []string{"Stripe"},
		Platform:   "Shopify",
		StatusCode: 200,
	}

	var text bytes.Buffer
	require.NoError(t, printOutcome(&text, analyzer.Outcome{Target: "shop.example", Result: result}, false))
	assert.Contains(t, text.String(), "Payment Gateways: Stripe")

	var js bytes.Buffer
	require.NoError(t, printOutcome(&js, analyzer.Outcome{Target: "shop.example", Result: result}, true))
	var decoded models.ClassificationResult
	require.NoError(t, json.Unmarshal(js.Bytes(), &decoded))
	assert.Equal(t, *result, decoded)

	var failed bytes.Buffer
	outcome := analyzer.Outcome{Target: "down.example", Err: analyzer.NewAnalysisError("https://down.example", errors.New("refused"))}
	require.NoError(t, printOutcome(&failed, outcome, true))
	assert.Contains(t, failed.String(), `"target":"down.example"`)
}

func writeQuietConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_config:\n  log_level: error\n"), 0o600))
	return path
}

func TestRun(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<script src="https://js.stripe.com/v3/"></script> graphql`))
	}))
	defer server.Close()

	var out bytes.Buffer
	code := run(context.Background(), AppFlags{
		Targets:          []string{server.URL},
		GlobalConfigFile: writeQuietConfig(t),
		JSONOutput:       true,
	}, &out)

	assert.Equal(t, 0, code)
	var result models.ClassificationResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, []string{"Stripe"}, result.Gateways)
	assert.True(t, result.QueryLayer)
}

func TestRun_FailureExitCode(t *testing.T) {
	var out bytes.Buffer
	code := run(context.Background(), AppFlags{
		Targets:          []string{"   "},
		GlobalConfigFile: writeQuietConfig(t),
	}, &out)

	assert.Equal(t, 1, code)
	assert.True(t, strings.HasPrefix(out.String(), "Error analyzing"))
}

func TestRun_MissingConfig(t *testing.T) {
	code := run(context.Background(), AppFlags{
		Targets:          []string{"a.example"},
		GlobalConfigFile: filepath.Join(t.TempDir(), "missing.yaml"),
	}, io.Discard)

	assert.Equal(t, 1, code)
}
