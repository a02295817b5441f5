package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies that a field set by an earlier source
// is not overwritten, while empty fields are filled by later ones.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{BaseURL: "http://env:8000"}},
		&StructuredConfig{
			Adapter: Adapter{BaseURL: "http://flag:8000", RequestTimeout: time.Second},
			Workers: Workers{Concurrency: 2},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://env:8000", cfg.Adapter.BaseURL)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2, cfg.Workers.Concurrency)
}

// ── withFlags / withJSON ─────────────────────────────────────────────────────

func TestWithFlags_KeepsPositionalArgs(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", "http://x:1", "analyze", "a.csv", "b.csv"})
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "http://x:1", b.configs[0].Adapter.BaseURL)
	assert.Equal(t, []string{"analyze", "a.csv", "b.csv"}, b.rest)
}

func TestWithFlags_UnknownFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})
	require.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_NotSpecified(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFileFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, `{"history": {"dsn": "history.db"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "history.db", b.configs[1].History.DSN)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "absent.json")})
	b.withJSON()

	require.Error(t, b.err)
}

// ── GetClientConfig ──────────────────────────────────────────────────────────

func TestGetClientConfig_Defaults(t *testing.T) {
	cfg, rest, err := GetClientConfig([]string{"analyze", "tx.csv"})
	require.NoError(t, err)

	assert.Equal(t, Profiles[ProfileHosted], cfg.Adapter.BaseURL)
	assert.Equal(t, defaultConcurrency, cfg.Workers.Concurrency)
	assert.False(t, cfg.History.Enabled())
	assert.Equal(t, []string{"analyze", "tx.csv"}, rest)
}

func TestGetClientConfig_LocalProfile(t *testing.T) {
	cfg, _, err := GetClientConfig([]string{"-profile", "local"})
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8000", cfg.Adapter.BaseURL)
}

func TestGetClientConfig_BaseURLOverridesProfile(t *testing.T) {
	cfg, _, err := GetClientConfig([]string{"-profile", "local", "-a", "http://10.0.0.5:9000"})
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:9000", cfg.Adapter.BaseURL)
}

func TestGetClientConfig_EnvBeatsFlags(t *testing.T) {
	t.Setenv("ADAPTER_BASE_URL", "http://from-env:8000")

	cfg, _, err := GetClientConfig([]string{"-a", "http://from-flag:8000"})
	require.NoError(t, err)
	assert.Equal(t, "http://from-env:8000", cfg.Adapter.BaseURL)
}

func TestGetClientConfig_JSONFillsGaps(t *testing.T) {
	path := writeTempJSONConfig(t, `{
		"adapter": {"profile": "local", "request_timeout": "45s"},
		"workers": {"concurrency": 8},
		"output": {"format": "pretty"}
	}`)

	cfg, _, err := GetClientConfig([]string{"-c", path, "-concurrency", "2"})
	require.NoError(t, err)

	assert.Equal(t, Profiles[ProfileLocal], cfg.Adapter.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2, cfg.Workers.Concurrency)
	assert.Equal(t, OutputPretty, cfg.Output.Format)
}

func TestGetClientConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "unknown profile", args: []string{"-profile", "staging"}, wantErr: ErrUnknownProfile},
		{name: "negative timeout", args: []string{"-request-timeout", "-1s"}, wantErr: ErrInvalidAdapterConfigs},
		{name: "negative concurrency", args: []string{"-concurrency", "-3"}, wantErr: ErrInvalidWorkerConfigs},
		{name: "bad output format", args: []string{"-o", "xml"}, wantErr: ErrInvalidOutputConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _, err := GetClientConfig(tt.args)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
