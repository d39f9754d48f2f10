package daylog

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/lixenwraith/config"
)

// Config holds all writer configuration values
type Config struct {
	// Maximum enabled level name; empty means "derive from environment"
	Level string `toml:"level"`

	// Root directory holding one subdirectory per channel
	Directory string `toml:"directory"`

	// File extension without dot
	Extension string `toml:"extension"`

	// Console output settings
	ConsoleTarget string `toml:"console_target"` // "stdout" or "stderr"
	EnableConsole bool   `toml:"enable_console"`

	// Release suppresses the caller package/line prefix on console records
	Release bool `toml:"release"`
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	Level:         "",
	Directory:     "log",
	Extension:     "log",
	ConsoleTarget: "stdout",
	EnableConsole: true,
	Release:       false,
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	return &copiedConfig
}

// Clone returns a copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}

// threshold resolves the configured level name, deferring to the
// process environment when unset.
func (c *Config) threshold() Level {
	if c.Level == "" {
		return LevelFromEnv()
	}
	return ParseLevel(c.Level)
}

// NewConfigFromFile loads configuration from a TOML file and returns a validated Config
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	// Use lixenwraith/config as a loader
	loader := config.New()

	// Register the struct to enable proper unmarshaling
	if err := loader.RegisterStruct("daylog.", *cfg); err != nil {
		return nil, fmtErrorf("failed to register config struct: %w", err)
	}

	// Load from file (handles file not found gracefully)
	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmtErrorf("failed to load config from %s: %w", path, err)
	}

	// Extract values into our Config struct
	if err := extractConfig(loader, "daylog.", cfg); err != nil {
		return nil, fmtErrorf("failed to extract config values: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig extracts values from lixenwraith/config into our Config struct
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		// Get the toml tag to determine the config key
		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		key := prefix + tomlTag

		// Get value from loader
		val, found := loader.Get(key)
		if !found {
			continue // Use default value
		}

		// Set the field value with type conversion
		if err := setFieldValue(fieldValue, val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with proper type conversion
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	case reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		default:
			return fmt.Errorf("expected int64, got %T", value)
		}

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

// ApplyOverride applies string key-value overrides to the configuration.
// Each override should be in the format "key=value".
func (c *Config) ApplyOverride(overrides ...string) error {
	var errs []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if err := applyConfigField(c, key, value); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return combineConfigErrors(errs)
	}

	return c.validate()
}

// applyConfigField applies a single key-value override to a Config.
func applyConfigField(cfg *Config, key, value string) error {
	switch key {
	case "level":
		cfg.Level = value
	case "directory":
		cfg.Directory = value
	case "extension":
		cfg.Extension = value
	case "console_target":
		cfg.ConsoleTarget = value
	case "enable_console":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean for enable_console: %s", value)
		}
		cfg.EnableConsole = b
	case "release":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean for release: %s", value)
		}
		cfg.Release = b
	default:
		return fmtErrorf("unknown config key: %s", key)
	}
	return nil
}

// combineConfigErrors combines multiple configuration errors into a single error.
func combineConfigErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}

	var sb strings.Builder
	sb.WriteString("daylog: multiple configuration errors:")
	for i, err := range errs {
		errMsg := err.Error()
		// Strip the "daylog: " prefix from individual errors to avoid duplication
		errMsg = strings.TrimPrefix(errMsg, "daylog: ")
		sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, errMsg))
	}
	return fmt.Errorf("%s", sb.String())
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.Level != "" {
		switch c.Level {
		case "off", "error", "info", "warn", "debug", "trace":
		default:
			return fmtErrorf("invalid level: '%s' (use off, error, info, warn, debug, or trace)", c.Level)
		}
	}

	if strings.TrimSpace(c.Directory) == "" {
		return fmtErrorf("directory cannot be empty")
	}

	if c.Extension == "" {
		return fmtErrorf("extension cannot be empty")
	}

	if strings.HasPrefix(c.Extension, ".") {
		return fmtErrorf("extension should not start with dot: %s", c.Extension)
	}

	if c.ConsoleTarget != "stdout" && c.ConsoleTarget != "stderr" {
		return fmtErrorf("invalid console_target: '%s' (use stdout or stderr)", c.ConsoleTarget)
	}

	return nil
}
