package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "wpprep", configBaseName)
	assert.Equal(t, "wpprep.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "format", formatFlagName)
	assert.Equal(t, "parallel", parallelFlagName)
	assert.Equal(t, "output.format", formatConfigKey)
	assert.Equal(t, "detect.parallel", parallelConfigKey)
	assert.Equal(t, "json", defaultFormat)
	assert.Equal(t, 1, defaultParallel)
	assert.Equal(t, "WPPREP", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelWarn},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestConfigureLogger_Stderr(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var stderr bytes.Buffer

	configureLogger("", true, &stderr)
	slog.Debug("probe", "check", "git")

	assert.Contains(t, stderr.String(), "check=git")
	assert.NotNil(t, globalLogger)

	stderr.Reset()
	configureLogger("", false, &stderr)
	slog.Debug("hidden")
	slog.Info("hidden too")
	assert.Empty(t, stderr.String())
}

func TestConfigureLogger_File(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var stderr bytes.Buffer

	logPath := filepath.Join(t.TempDir(), "wpprep.log")
	configureLogger(logPath, false, &stderr)
	slog.Warn("written to file")

	contents, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "written to file")
	assert.Empty(t, stderr.String())
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "valid.yaml")
	require.NoError(t, os.WriteFile(valid, []byte("output:\n  format: yaml\n"), 0o600))

	malformed := filepath.Join(dir, "malformed.yaml")
	require.NoError(t, os.WriteFile(malformed, []byte("output: [format\n"), 0o600))

	t.Run("valid file", func(t *testing.T) {
		v := viper.New()
		v.SetConfigFile(valid)

		require.NoError(t, readConfig(v))
		assert.Equal(t, "yaml", v.GetString(formatConfigKey))
	})

	t.Run("missing file", func(t *testing.T) {
		v := viper.New()
		v.SetConfigFile(filepath.Join(dir, "absent.yaml"))

		assert.NoError(t, readConfig(v))
	})

	t.Run("missing from search path", func(t *testing.T) {
		v := viper.New()
		v.SetConfigName("absent")
		v.AddConfigPath(dir)

		assert.NoError(t, readConfig(v))
	})

	t.Run("malformed file", func(t *testing.T) {
		v := viper.New()
		v.SetConfigFile(malformed)

		assert.Error(t, readConfig(v))
	})
}
