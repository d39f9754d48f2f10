package daylog

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"
)

// Writer is a per-channel logging backend. It owns two file sinks:
// the latest file, truncated on each date rollover and reflecting only
// the current day, and the dated archive file, appended to for as long
// as its calendar day lasts. Multiple goroutines may share one Writer.
type Writer struct {
	cfg     *Config
	level   Level
	console *console

	latest *logFile
	dated  *logFile

	// dateMu guards channel and openDate and serializes the rollover
	// swap against all writers crossing the date boundary.
	dateMu   sync.Mutex
	channel  string
	openDate time.Time

	// now is replaceable in tests to simulate date changes
	now func() time.Time
}

// New creates a Writer for the named channel with default
// configuration. An empty channel name produces a console-only writer
// with no backing files, for callers that want file output suppressed.
func New(channel string) *Writer {
	return NewWithConfig(channel, DefaultConfig())
}

// NewWithConfig creates a Writer for the named channel. File and
// directory creation failures panic: a backend that cannot secure its
// storage must fail loudly, not swallow log output.
func NewWithConfig(channel string, cfg *Config) *Writer {
	if cfg == nil {
		cfg = DefaultConfig()
	} else {
		cfg = cfg.Clone()
	}
	if err := cfg.validate(); err != nil {
		fatalf("invalid configuration: %v", err)
	}

	w := &Writer{
		cfg:     cfg,
		level:   cfg.threshold(),
		console: newConsole(cfg),
		latest:  &logFile{},
		dated:   &logFile{},
		channel: channel,
		now:     time.Now,
	}
	now := w.now()
	w.openDate = dateOf(now)
	if channel != "" {
		w.openFiles(now)
	}
	return w
}

// Channel returns the channel name.
func (w *Writer) Channel() string {
	w.dateMu.Lock()
	defer w.dateMu.Unlock()
	return w.channel
}

// SetChannel reassigns the channel name. The renamed files take effect
// on the next rollover.
func (w *Writer) SetChannel(channel string) {
	w.dateMu.Lock()
	w.channel = channel
	w.dateMu.Unlock()
}

// Close releases both file handles. Writes after Close degrade to
// console-only.
func (w *Writer) Close() {
	w.latest.close()
	w.dated.close()
}

// WriteProgress emits a transient status line that overwrites itself.
// The console line is redrawn in place via carriage return; each file
// sink rewrites the line at its stored cursor. With terminal set, the
// progress sequence ends and subsequent output begins after this line.
func (w *Writer) WriteProgress(level Level, msg string, terminal bool) {
	if !w.enabled(level) {
		return
	}
	now := w.now()
	w.rolloverIfNeeded(now)

	w.console.progress(now, level, msg)

	line := formatPrefix(now, level) + msg
	rewind := len(msg) + prefixLen(level)
	w.latest.writeProgress(line, rewind, terminal)
	w.dated.writeProgress(line, rewind, terminal)
}

// WriteRecord emits a permanent, newline-terminated log line appended
// to both file sinks.
func (w *Writer) WriteRecord(level Level, msg string) {
	w.writeRecord(level, msg, "")
}

// writeRecord is the shared record path; caller, when non-empty, is
// shown on the console only, in muted style.
func (w *Writer) writeRecord(level Level, msg, caller string) {
	if !w.enabled(level) {
		return
	}
	now := w.now()
	w.rolloverIfNeeded(now)

	w.console.record(now, level, caller, msg)

	line := formatPrefix(now, level) + msg + "\n"
	w.latest.writeRecord(line)
	w.dated.writeRecord(line)
}

// Debug logs a message at debug level
func (w *Writer) Debug(args ...any) {
	w.writeRecord(LevelDebug, formatArgs(args...), w.callerRef(LevelDebug))
}

// Info logs a message at info level
func (w *Writer) Info(args ...any) {
	w.writeRecord(LevelInfo, formatArgs(args...), w.callerRef(LevelInfo))
}

// Warn logs a message at warning level
func (w *Writer) Warn(args ...any) {
	w.writeRecord(LevelWarn, formatArgs(args...), w.callerRef(LevelWarn))
}

// Error logs a message at error level
func (w *Writer) Error(args ...any) {
	w.writeRecord(LevelError, formatArgs(args...), w.callerRef(LevelError))
}

// Debugf logs a formatted message at debug level
func (w *Writer) Debugf(format string, args ...any) {
	w.writeRecord(LevelDebug, fmt.Sprintf(format, args...), w.callerRef(LevelDebug))
}

// Infof logs a formatted message at info level
func (w *Writer) Infof(format string, args ...any) {
	w.writeRecord(LevelInfo, fmt.Sprintf(format, args...), w.callerRef(LevelInfo))
}

// Warnf logs a formatted message at warning level
func (w *Writer) Warnf(format string, args ...any) {
	w.writeRecord(LevelWarn, fmt.Sprintf(format, args...), w.callerRef(LevelWarn))
}

// Errorf logs a formatted message at error level
func (w *Writer) Errorf(format string, args ...any) {
	w.writeRecord(LevelError, fmt.Sprintf(format, args...), w.callerRef(LevelError))
}

// enabled gates every write before any I/O happens.
func (w *Writer) enabled(level Level) bool {
	return level != LevelOff && level <= w.level
}

// rolloverIfNeeded rotates both files when the wall-clock date has
// moved past openDate. The whole check-and-swap runs under dateMu, so
// no writer ever observes a half-rotated pair; the handles themselves
// are swapped under each file's own lock, so a writer already past the
// date check still picks up the fresh handle at write time.
func (w *Writer) rolloverIfNeeded(now time.Time) {
	w.dateMu.Lock()
	defer w.dateMu.Unlock()
	if w.channel == "" {
		return
	}
	today := dateOf(now)
	if today.Equal(w.openDate) {
		return
	}
	w.openFiles(now)
	w.openDate = today
}

// openFiles (re)creates both sinks for the day of now. Old handles are
// released by the swap. Callers with a non-empty channel only.
func (w *Writer) openFiles(now time.Time) {
	dir := ensureChannelDir(w.cfg.Directory, w.channel)
	w.latest.replace(openLatest(w.latestPath(dir)))
	w.dated.replace(openDated(w.datedPath(dir, now)))
}

func (w *Writer) latestPath(dir string) string {
	return filepath.Join(dir, w.channel+"."+w.cfg.Extension)
}

func (w *Writer) datedPath(dir string, t time.Time) string {
	name := fmt.Sprintf("%s_%s.%s", w.channel, t.Format(dateLayout), w.cfg.Extension)
	return filepath.Join(dir, name)
}

// callerRef renders the caller package path (and line, for error
// level) for console display. Empty in release mode.
func (w *Writer) callerRef(level Level) string {
	if w.cfg.Release {
		return ""
	}
	const skip = 3 // callerInfo -> callerRef -> leveled method -> caller
	pkg, line, ok := callerInfo(skip)
	if !ok {
		return ""
	}
	if level == LevelError {
		return fmt.Sprintf("%s:%d", pkg, line)
	}
	return pkg
}

// dateOf truncates t to its calendar date.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
