package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".stylesmith.yaml")
	configContent := `
verbose: true
color: true

analyze:
  include:
    - "pages/**/*.html"
  out: custom/output
  format: json
  write: true
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.True(t, k.Bool("color"))
	assert.Equal(t, []string{"pages/**/*.html"}, k.Strings("analyze.include"))
	assert.Equal(t, "custom/output", k.String("analyze.out"))
	assert.Equal(t, "json", k.String("analyze.format"))
	assert.True(t, k.Bool("analyze.write"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Points at a non-existent config; must not error.
	require.NoError(t, loadConfigFromPath("/nonexistent/.stylesmith.yaml"))

	config := buildAnalyzeConfig()
	assert.Equal(t, []string{"**/*.html"}, config.Include)
	assert.Equal(t, "styleguide", config.OutputDir)
	assert.Equal(t, "summary", config.OutputFormat)
	assert.False(t, config.WriteFiles)
	assert.False(t, config.Verbose)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".stylesmith.yaml")
	configContent := `
analyze:
  format: summary
verbose: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	// Set env vars that should override config file
	t.Setenv("STYLESMITH_ANALYZE_FORMAT", "markdown")
	t.Setenv("STYLESMITH_VERBOSE", "true")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "markdown", k.String("analyze.format"))
	assert.True(t, k.Bool("verbose"))
}

func TestBuildAnalyzeConfig_FromConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".stylesmith.yaml")
	configContent := `
analyze:
  include:
    - "site/*.html"
    - "landing.html"
  out: dist/guide
  format: css
  write: true
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	config := buildAnalyzeConfig()
	assert.Equal(t, []string{"site/*.html", "landing.html"}, config.Include)
	assert.Equal(t, "dist/guide", config.OutputDir)
	assert.Equal(t, "css", config.OutputFormat)
	assert.True(t, config.WriteFiles)
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	require.NoError(t, cmd.Execute())

	// Verify file was created
	data, err := os.ReadFile(".stylesmith.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "analyze:")
	assert.Contains(t, string(data), "format: summary")
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	// Create existing file
	require.NoError(t, os.WriteFile(".stylesmith.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	// Create existing file
	require.NoError(t, os.WriteFile(".stylesmith.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init", "--force"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(".stylesmith.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "analyze:")
}

func TestVersionCommand(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))
}
