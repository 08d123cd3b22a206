package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRuleFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRuleFile_Valid(t *testing.T) {
	path := writeRuleFile(t, `
tickers:
  AAPL:
    company: '\b(Apple(?:\s+Inc\.?)?|AAPL)\b'
    products:
      - pattern: '\biPhone\s+\d+\s+Pro\b'
        token: '[Product 1 Pro]'
      - pattern: '\biPhone\b'
        token: '[Product 1]'
  XOM:
    company: '\b(Exxon\s*Mobil|Exxon|XOM)\b'
`)

	rules, err := LoadRuleFile(path)
	require.NoError(t, err)
	require.Len(t, rules, 2)

	aapl, ok := rules["AAPL"]
	require.True(t, ok)
	assert.Equal(t, `\b(Apple(?:\s+Inc\.?)?|AAPL)\b`, aapl.Company)

	// Product rules keep their declared order.
	require.Len(t, aapl.Products, 2)
	assert.Equal(t, "[Product 1 Pro]", aapl.Products[0].Token)
	assert.Equal(t, "[Product 1]", aapl.Products[1].Token)

	xom, ok := rules["XOM"]
	require.True(t, ok)
	assert.Empty(t, xom.Products)
}

func TestLoadRuleFile_EmptyCompanyAllowed(t *testing.T) {
	path := writeRuleFile(t, `
tickers:
  ZZZT:
    products:
      - pattern: '\bWidget\b'
        token: '[Product 1]'
`)

	rules, err := LoadRuleFile(path)
	require.NoError(t, err)
	assert.Empty(t, rules["ZZZT"].Company)
}

func TestLoadRuleFile_MissingProductToken(t *testing.T) {
	path := writeRuleFile(t, `
tickers:
  AAPL:
    company: '\bApple\b'
    products:
      - pattern: '\biPhone\b'
`)

	_, err := LoadRuleFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed validation")
}

func TestLoadRuleFile_MalformedYAML(t *testing.T) {
	path := writeRuleFile(t, "tickers: [not: a: map")

	_, err := LoadRuleFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLoadRuleFile_MissingFile(t *testing.T) {
	_, err := LoadRuleFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}
