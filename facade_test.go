package daylog

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallOnce(t *testing.T) {
	defer Uninstall()

	w, _ := createTestWriter(t, "Facade")
	require.NoError(t, Install(w))
	assert.Same(t, w, Installed())

	// A second backend is a recoverable setup error
	other, _ := createTestWriter(t, "Other")
	err := Install(other)
	require.Error(t, err)
	assert.Same(t, w, Installed())
}

func TestInstallNil(t *testing.T) {
	defer Uninstall()
	assert.Error(t, Install(nil))
}

func TestUninstall(t *testing.T) {
	w, _ := createTestWriter(t, "Facade")
	require.NoError(t, Install(w))
	Uninstall()
	assert.Nil(t, Installed())
}

func TestFacadeWithoutBackend(t *testing.T) {
	Uninstall()

	// All package-level entry points are no-ops with no backend
	assert.NotPanics(t, func() {
		Debug("a")
		Info("b")
		Warn("c")
		Error("d")
		Infof("%d", 1)
		Progress(LevelInfo, "e", true)
	})
}

func TestFacadeDispatch(t *testing.T) {
	defer Uninstall()

	w, tmpDir := createTestWriter(t, "Facade")
	require.NoError(t, Install(w))

	Info("through the facade:", 7)
	Errorf("code %d", 500)
	Progress(LevelInfo, "wrapping up", true)

	data, err := os.ReadFile(datedPathOf(tmpDir, "Facade", dateOf(time.Now())))
	require.NoError(t, err)
	assert.Contains(t, string(data), "through the facade: 7")
	assert.Contains(t, string(data), "code 500")
	assert.Contains(t, string(data), "wrapping up")
}

func TestCallerRef(t *testing.T) {
	w, _ := createTestWriter(t, "Caller")

	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	var buf bytes.Buffer
	w.console.out = &buf

	w.Info("hello")
	out := buf.String()
	assert.Contains(t, out, "[github.com/keiofn/daylog]", "caller package path expected on console")

	buf.Reset()
	w.Error("boom")
	out = buf.String()
	assert.Contains(t, out, "github.com/keiofn/daylog:", "error level carries the line number")
}

func TestCallerRefReleaseMode(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Directory = tmpDir
	cfg.EnableConsole = false
	cfg.Release = true

	w := NewWithConfig("Caller", cfg)
	defer w.Close()

	assert.Empty(t, w.callerRef(LevelError))
}
