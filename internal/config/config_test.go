package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.hcl")
	content := `
scraper {
  hand_history_dir = "/tmp/hands"
}
server {
  url = "https://coach.example.com"
}
logging {
}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/hands", cfg.Scraper.HandHistoryDir)
	assert.Equal(t, "https://coach.example.com", cfg.Server.URL)
	assert.Equal(t, 30, cfg.Scraper.PollIntervalSeconds)
	assert.Equal(t, 4, cfg.Scraper.Workers)
	assert.Equal(t, 30, cfg.Server.RequestTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadInvalidHCL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.hcl")
	require.NoError(t, os.WriteFile(path, []byte("scraper {"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.hcl")

	cfg := Default()
	cfg.Scraper.HandHistoryDir = "/home/joe/HandHistory"
	cfg.Server.URL = "https://coach.example.com"
	cfg.Logging.Level = "debug"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing hand history dir",
			mutate:  func(c *Config) { c.Scraper.HandHistoryDir = "" },
			wantErr: "hand history directory is required",
		},
		{
			name:    "zero poll interval",
			mutate:  func(c *Config) { c.Scraper.PollIntervalSeconds = 0 },
			wantErr: "poll interval must be positive",
		},
		{
			name:    "negative workers",
			mutate:  func(c *Config) { c.Scraper.Workers = -1 },
			wantErr: "workers must be positive",
		},
		{
			name:    "missing server URL",
			mutate:  func(c *Config) { c.Server.URL = "" },
			wantErr: "server URL is required",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "invalid log level: verbose",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Scraper.HandHistoryDir = "/tmp/hands"
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}
