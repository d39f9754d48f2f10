package daylog

import (
	"io"
	"os"
	"sync"
)

// logFile pairs one file handle with the byte cursor marking where the
// next progress write begins. Handle and cursor move together, so one
// mutex guards both; the latest and dated files never share a lock.
type logFile struct {
	mu     sync.Mutex
	f      *os.File
	cursor uint64
}

// openLatest opens the truncate-on-open current-day file. Prior
// content represents a finished run and is discarded.
func openLatest(path string) *os.File {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		fatalf("create log file '%s' failed: %v", path, err)
	}
	return f
}

// openDated opens the per-day archive file positioned at its end, so
// writes accumulate across process restarts within the same day.
func openDated(path string) *os.File {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		fatalf("create log file '%s' failed: %v", path, err)
	}
	_, _ = f.Seek(0, io.SeekEnd)
	return f
}

// replace swaps in a new handle, closing the old one. The cursor is
// reset; a stale offset could point past the new file's end.
func (lf *logFile) replace(f *os.File) {
	lf.mu.Lock()
	old := lf.f
	lf.f = f
	lf.cursor = 0
	lf.mu.Unlock()
	if old != nil {
		_ = old.Close()
	}
}

// writeProgress writes line starting at the stored cursor. When the
// progress sequence ends (terminal), the cursor advances past the
// content; otherwise it rewinds by rewind bytes so the next progress
// write overwrites this one. Write errors drop the line; losing one
// status update must never abort the caller.
func (lf *logFile) writeProgress(line string, rewind int, terminal bool) {
	lf.mu.Lock()
	defer lf.mu.Unlock()
	if lf.f == nil {
		return
	}
	if _, err := lf.f.Seek(int64(lf.cursor), io.SeekStart); err != nil {
		return
	}
	if _, err := lf.f.WriteString(line); err != nil {
		return
	}
	pos, err := lf.f.Seek(0, io.SeekCurrent)
	if err != nil {
		lf.cursor = 0
		return
	}
	if terminal {
		lf.cursor = uint64(pos)
	} else {
		lf.cursor = uint64(pos) - uint64(rewind)
	}
}

// writeRecord appends line at the handle's current position, never at
// the cursor: records are permanent and must not overwrite anything.
// The cursor is refreshed so a later progress write starts after this
// record.
func (lf *logFile) writeRecord(line string) {
	lf.mu.Lock()
	defer lf.mu.Unlock()
	if lf.f == nil {
		return
	}
	if _, err := lf.f.WriteString(line); err != nil {
		return
	}
	pos, err := lf.f.Seek(0, io.SeekCurrent)
	if err != nil {
		lf.cursor = 0
		return
	}
	lf.cursor = uint64(pos)
}

// position returns the stored cursor.
func (lf *logFile) position() uint64 {
	lf.mu.Lock()
	defer lf.mu.Unlock()
	return lf.cursor
}

// close releases the handle.
func (lf *logFile) close() {
	lf.mu.Lock()
	defer lf.mu.Unlock()
	if lf.f != nil {
		_ = lf.f.Close()
		lf.f = nil
	}
}
