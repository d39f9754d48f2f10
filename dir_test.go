package daylog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureChannelDir(t *testing.T) {
	root := filepath.Join(t.TempDir(), "log")

	dir := ensureChannelDir(root, "Svc")
	assert.Equal(t, filepath.Join(root, "Svc"), dir)

	fi, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
}

func TestEnsureChannelDirIdempotent(t *testing.T) {
	root := t.TempDir()

	first := ensureChannelDir(root, "Svc")
	second := ensureChannelDir(root, "Svc")
	assert.Equal(t, first, second)
}

func TestEnsureChannelDirFatal(t *testing.T) {
	root := t.TempDir()

	// A plain file where the channel directory should go makes
	// creation fail for a reason other than already-exists
	blocked := filepath.Join(root, "Svc")
	require.NoError(t, os.WriteFile(blocked, []byte("in the way"), 0644))

	assert.Panics(t, func() {
		ensureChannelDir(root, "Svc")
	})
}
