package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/nasa-images/internal/nasa"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterCLIFlags(flags)
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestLoadCLI_Defaults(t *testing.T) {
	cfg, err := LoadCLI(NewViper(), newFlags(t))
	require.NoError(t, err)

	assert.Equal(t, nasa.DefaultBaseURL, cfg.APIURL)
	assert.Equal(t, nasa.DefaultMediaType, cfg.MediaType)
	assert.Equal(t, DefaultLimit, cfg.Limit)
	assert.Equal(t, nasa.DefaultTimeout, cfg.Timeout)
	assert.False(t, cfg.JSONLogs)
	assert.False(t, cfg.Verbose)
}

func TestLoadCLI_Flags(t *testing.T) {
	flags := newFlags(t, "--limit", "3", "--timeout", "5s", "--api-url", "http://localhost/search", "-v")

	cfg, err := LoadCLI(NewViper(), flags)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Limit)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "http://localhost/search", cfg.APIURL)
	assert.True(t, cfg.Verbose)
}

func TestLoadCLI_Env(t *testing.T) {
	t.Setenv("NASA_SEARCH_LIMIT", "7")
	t.Setenv("NASA_SEARCH_MEDIA_TYPE", "video")

	cfg, err := LoadCLI(NewViper(), newFlags(t))
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Limit)
	assert.Equal(t, "video", cfg.MediaType)
}

func TestLoadCLI_FlagBeatsEnv(t *testing.T) {
	t.Setenv("NASA_SEARCH_LIMIT", "7")

	cfg, err := LoadCLI(NewViper(), newFlags(t, "--limit", "2"))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Limit)
}

func TestCLIConfig_Validate(t *testing.T) {
	valid := CLIConfig{APIURL: nasa.DefaultBaseURL, Limit: 5, Timeout: 30 * time.Second}

	tests := []struct {
		name    string
		mutate  func(*CLIConfig)
		wantErr string
	}{
		{"valid", func(*CLIConfig) {}, ""},
		{"empty url", func(c *CLIConfig) { c.APIURL = "" }, "api-url"},
		{"zero limit", func(c *CLIConfig) { c.Limit = 0 }, "limit"},
		{"short timeout", func(c *CLIConfig) { c.Timeout = 100 * time.Millisecond }, "timeout"},
		{"long timeout", func(c *CLIConfig) { c.Timeout = 5 * time.Minute }, "timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
