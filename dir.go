package daylog

import (
	"os"
	"path/filepath"
)

// ensureChannelDir guarantees <root>/<channel>/ exists and returns its
// path. Idempotent. A creation failure is fatal: the backend must not
// silently degrade when it cannot secure its own storage.
func ensureChannelDir(root, channel string) string {
	dir := filepath.Join(root, channel)
	if err := os.MkdirAll(dir, 0755); err != nil {
		fatalf("create log directory '%s' failed: %v", dir, err)
	}
	return dir
}
