package daylog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"info", LevelInfo},
		{"debug", LevelDebug},
		{"error", LevelError},
		{"warn", LevelWarn},
		{"off", LevelOff},
		{"trace", LevelTrace},
		// The mapping is case-sensitive; everything else falls back to info
		{"Info", LevelInfo},
		{"DEBUG", LevelInfo},
		{"warning", LevelInfo},
		{"", LevelInfo},
		{"garbage", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestLevelOrdering(t *testing.T) {
	// Error is least verbose, debug most; "maximum enabled level"
	// filtering relies on this ordering
	assert.Less(t, LevelError, LevelInfo)
	assert.Less(t, LevelInfo, LevelWarn)
	assert.Less(t, LevelWarn, LevelDebug)
	assert.Less(t, LevelDebug, LevelTrace)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "OFF", LevelOff.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "TRACE", LevelTrace.String())
	assert.Equal(t, "LEVEL(42)", Level(42).String())
}

func TestLevelFromEnvDefault(t *testing.T) {
	// No test in this package sets the variable, so the once-computed
	// value is the documented fallback
	assert.Equal(t, LevelInfo, LevelFromEnv())
}
