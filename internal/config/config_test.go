package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pointConfigAway keeps Load from picking up a stray newswire.yaml in
// the working directory during tests.
func pointConfigAway(t *testing.T) {
	t.Helper()
	t.Setenv("NEWSWIRE_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
}

func TestLoad_Defaults(t *testing.T) {
	pointConfigAway(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "console", cfg.Logging.Output)
	assert.Equal(t, "en", cfg.Pipeline.Language)
	assert.Equal(t, "America/New_York", cfg.Pipeline.Timezone)
	assert.Equal(t, 16, cfg.Pipeline.CutoffHour)
	assert.Empty(t, cfg.Pipeline.Universe)
}

func TestLoad_EnvOverrides(t *testing.T) {
	pointConfigAway(t)
	t.Setenv("NEWSWIRE_PIPELINE_TIMEZONE", "Europe/London")
	t.Setenv("NEWSWIRE_PIPELINE_CUTOFF_HOUR", "15")
	t.Setenv("NEWSWIRE_PIPELINE_UNIVERSE", "AAPL,MSFT")
	t.Setenv("NEWSWIRE_LOGGING_FORMAT", "text")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Europe/London", cfg.Pipeline.Timezone)
	assert.Equal(t, 15, cfg.Pipeline.CutoffHour)
	assert.Equal(t, []string{"AAPL", "MSFT"}, cfg.Pipeline.Universe)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "newswire.yaml")
	content := `
pipeline:
  universe: [AAPL, JPM]
  rule_file: rules.yaml
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("NEWSWIRE_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"AAPL", "JPM"}, cfg.Pipeline.Universe)
	assert.Equal(t, "rules.yaml", cfg.Pipeline.RuleFile)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// File did not set the timezone; the default survives the merge.
	assert.Equal(t, "America/New_York", cfg.Pipeline.Timezone)
}

func TestLoad_EnvWinsOverFileWhenSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "newswire.yaml")
	content := `
logging:
  level: debug
  output: file
  file_path: from-file.log
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("NEWSWIRE_CONFIG", path)
	t.Setenv("NEWSWIRE_LOGGING_LEVEL", "error")
	t.Setenv("NEWSWIRE_LOGGING_FILE_PATH", "from-env.log")

	cfg, err := Load()
	require.NoError(t, err)

	// Explicitly set env vars beat the file.
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, "from-env.log", cfg.Logging.FilePath)
	// Fields the env layer only defaulted still come from the file.
	assert.Equal(t, "file", cfg.Logging.Output)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		envKey  string
		envVal  string
		wantErr string
	}{
		{
			name:    "cutoff hour out of range",
			envKey:  "NEWSWIRE_PIPELINE_CUTOFF_HOUR",
			envVal:  "24",
			wantErr: "cutoff_hour",
		},
		{
			name:    "unknown timezone",
			envKey:  "NEWSWIRE_PIPELINE_TIMEZONE",
			envVal:  "Mars/Olympus_Mons",
			wantErr: "invalid timezone",
		},
		{
			name:    "bad logging format",
			envKey:  "NEWSWIRE_LOGGING_FORMAT",
			envVal:  "xml",
			wantErr: "logging format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pointConfigAway(t)
			t.Setenv(tt.envKey, tt.envVal)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_Location(t *testing.T) {
	pointConfigAway(t)

	cfg, err := Load()
	require.NoError(t, err)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", loc.String())
}
