package daylog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "", cfg.Level)
	assert.Equal(t, "log", cfg.Directory)
	assert.Equal(t, "log", cfg.Extension)
	assert.Equal(t, "stdout", cfg.ConsoleTarget)
	assert.True(t, cfg.EnableConsole)
	assert.False(t, cfg.Release)

	// Mutating the copy must not leak into the defaults
	cfg.Directory = "elsewhere"
	assert.Equal(t, "log", DefaultConfig().Directory)
}

func TestConfigClone(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "warn"

	clone := cfg.Clone()
	clone.Level = "debug"

	assert.Equal(t, "warn", cfg.Level)
	assert.Equal(t, "debug", clone.Level)
}

func TestConfigThreshold(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "warn"
	assert.Equal(t, LevelWarn, cfg.threshold())

	// Empty defers to the environment-derived default
	cfg.Level = ""
	assert.Equal(t, LevelFromEnv(), cfg.threshold())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"named level", func(c *Config) { c.Level = "trace" }, true},
		{"bad level", func(c *Config) { c.Level = "verbose" }, false},
		{"empty directory", func(c *Config) { c.Directory = " " }, false},
		{"empty extension", func(c *Config) { c.Extension = "" }, false},
		{"dotted extension", func(c *Config) { c.Extension = ".log" }, false},
		{"stderr target", func(c *Config) { c.ConsoleTarget = "stderr" }, true},
		{"bad target", func(c *Config) { c.ConsoleTarget = "syslog" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestApplyOverride(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.ApplyOverride(
		"level=debug",
		"directory=/tmp/daylog-test",
		"console_target=stderr",
		"enable_console=false",
		"release=true",
	)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "/tmp/daylog-test", cfg.Directory)
	assert.Equal(t, "stderr", cfg.ConsoleTarget)
	assert.False(t, cfg.EnableConsole)
	assert.True(t, cfg.Release)
}

func TestApplyOverrideErrors(t *testing.T) {
	cfg := DefaultConfig()

	assert.Error(t, cfg.ApplyOverride("no-equals-sign"))
	assert.Error(t, cfg.ApplyOverride("unknown_key=1"))
	assert.Error(t, cfg.ApplyOverride("enable_console=maybe"))

	// Multiple failures are combined into one report
	err := cfg.ApplyOverride("bad", "also_unknown=x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple configuration errors")
}

func TestNewConfigFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "daylog.toml")

	content := `
[daylog]
level = "warn"
directory = "/var/log/app"
console_target = "stderr"
release = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Level)
	assert.Equal(t, "/var/log/app", cfg.Directory)
	assert.Equal(t, "stderr", cfg.ConsoleTarget)
	assert.True(t, cfg.Release)
	// Untouched keys keep their defaults
	assert.Equal(t, "log", cfg.Extension)
}

func TestNewConfigFromFileMissing(t *testing.T) {
	cfg, err := NewConfigFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestNewConfigFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "daylog.toml")
	require.NoError(t, os.WriteFile(path, []byte("[daylog]\nlevel = \"loud\"\n"), 0644))

	_, err := NewConfigFromFile(path)
	assert.Error(t, err)
}
