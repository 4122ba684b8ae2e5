package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and the working directory at empty temp dirs so no
// real config file leaks into a test.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return home
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".optistudy", "optistudy.db"), cfg.DB)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Zero(t, cfg.Planner.TotalHours)
	assert.Equal(t, 8.0, cfg.Planner.DayStartHour)
	assert.Equal(t, 0.5, cfg.Planner.MinHours)
	assert.Equal(t, 0.4, cfg.Planner.MaxShareOfTotal)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("OPTISTUDY_DB", "/tmp/study.db")
	t.Setenv("OPTISTUDY_LOG_LEVEL", "debug")
	t.Setenv("OPTISTUDY_LOG_FORMAT", "json")
	t.Setenv("OPTISTUDY_TOTAL_HOURS", "7.5")
	t.Setenv("OPTISTUDY_MAX_PER_SUBJECT", "2")
	t.Setenv("OPTISTUDY_DAY_START_HOUR", "9.5")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/study.db", cfg.DB)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 7.5, cfg.Planner.TotalHours)
	assert.Equal(t, 2.0, cfg.Planner.MaxPerSubject)
	assert.Equal(t, 9.5, cfg.Planner.DayStartHour)
}

func TestLoad_FileThenFlags(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	yaml := "db: /data/from-file.db\nlog:\n  level: info\nplanner:\n  total_hours: 5\n  max_share_of_total: 0.5\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("db", "", "")
	flags.String("log-level", "", "")
	require.NoError(t, flags.Parse([]string{"--log-level", "error"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "/data/from-file.db", cfg.DB, "unset flag does not override the file")
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, 5.0, cfg.Planner.TotalHours)
	assert.Equal(t, 0.5, cfg.Allocator().Config.MaxShareOfTotal)
}

func TestLoad_HomeConfigFile(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".optistudy")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "optistudy.yaml"), []byte("planner:\n  day_start_hour: 6\n"), 0o644))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 6.0, cfg.Planner.DayStartHour)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  string
		val  string
	}{
		{"log format", "OPTISTUDY_LOG_FORMAT", "xml"},
		{"total hours", "OPTISTUDY_TOTAL_HOURS", "30"},
		{"day start", "OPTISTUDY_DAY_START_HOUR", "24"},
		{"max share", "OPTISTUDY_MAX_SHARE_OF_TOTAL", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Setenv(tt.env, tt.val)
			_, err := Load("", nil)
			assert.Error(t, err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(LogConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())

	logger.WithField("use_case", "generate-plan").Info("service_use_case")
	assert.Contains(t, buf.String(), `"use_case":"generate-plan"`)

	logger.Debug("hidden")
	assert.NotContains(t, buf.String(), "hidden")

	_, err = NewLogger(LogConfig{Level: "loud", Format: "text"}, &buf)
	assert.Error(t, err)
}
