package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sigweihq/kanawallet/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectError bool
		expect      func(t *testing.T, c Config)
	}{
		{
			name: "full file",
			content: `
bridge:
  url: wss://bridge.example.com/kana
  token: secret
timeout: 30s
pollInterval: 250ms
logLevel: debug
`,
			expect: func(t *testing.T, c Config) {
				assert.Equal(t, "wss://bridge.example.com/kana", c.Bridge.URL)
				assert.Equal(t, "secret", c.Bridge.Token)
				assert.Equal(t, 30*time.Second, c.Timeout)
				assert.Equal(t, 250*time.Millisecond, c.PollInterval)
				assert.Equal(t, "debug", c.LogLevel)
			},
		},
		{
			name:    "partial file keeps defaults",
			content: "logLevel: warn\n",
			expect: func(t *testing.T, c Config) {
				assert.Equal(t, constants.DefaultBridgeURL, c.Bridge.URL)
				assert.Equal(t, constants.DefaultTimeout, c.Timeout)
				assert.Equal(t, constants.DefaultPollInterval, c.PollInterval)
				assert.Equal(t, "warn", c.LogLevel)
			},
		},
		{
			name:        "insecure remote bridge",
			content:     "bridge:\n  url: ws://bridge.example.com\n",
			expectError: true,
		},
		{
			name:        "unknown log level",
			content:     "logLevel: loud\n",
			expectError: true,
		},
		{
			name:        "zero poll interval",
			content:     "pollInterval: 0s\n",
			expectError: true,
		},
		{
			name:        "malformed yaml",
			content:     "bridge: [",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Load(writeConfig(t, tt.content))
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.expect(t, c)
		})
	}
}

func TestLoad_MissingFiles(t *testing.T) {
	home := t.TempDir()
	original := osUserHomeDir
	osUserHomeDir = func() (string, error) { return home, nil }
	t.Cleanup(func() { osUserHomeDir = original })

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	_, err = Load(filepath.Join(home, "missing.yaml"))
	assert.Error(t, err)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	c := Default()
	c.Bridge.Token = "abc"
	c.PollInterval = 2 * time.Second

	require.NoError(t, c.Save(path))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, loaded)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for input, expected := range tests {
		level, err := ParseLevel(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, level, input)
	}
}
