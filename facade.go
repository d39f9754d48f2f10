package daylog

import (
	"fmt"
	"sync/atomic"
)

// backend is the process-wide writer behind the package-level logging
// functions. Exactly one may be installed; tests and libraries that
// need isolation construct their own Writer instead.
var backend atomic.Pointer[Writer]

// Install registers w as the process-wide backend. Installing a second
// backend is a recoverable setup error, not a panic.
func Install(w *Writer) error {
	if w == nil {
		return fmtErrorf("cannot install nil writer")
	}
	if !backend.CompareAndSwap(nil, w) {
		return fmtErrorf("a backend is already installed")
	}
	return nil
}

// Installed returns the registered backend, or nil.
func Installed() *Writer {
	return backend.Load()
}

// Uninstall removes the registered backend. Intended for tests.
func Uninstall() {
	backend.Store(nil)
}

// Package-level functions that delegate to the installed backend.
// With no backend installed they are no-ops.

// Debug logs a message at debug level
func Debug(args ...any) {
	if w := backend.Load(); w != nil {
		w.writeRecord(LevelDebug, formatArgs(args...), w.callerRef(LevelDebug))
	}
}

// Info logs a message at info level
func Info(args ...any) {
	if w := backend.Load(); w != nil {
		w.writeRecord(LevelInfo, formatArgs(args...), w.callerRef(LevelInfo))
	}
}

// Warn logs a message at warning level
func Warn(args ...any) {
	if w := backend.Load(); w != nil {
		w.writeRecord(LevelWarn, formatArgs(args...), w.callerRef(LevelWarn))
	}
}

// Error logs a message at error level
func Error(args ...any) {
	if w := backend.Load(); w != nil {
		w.writeRecord(LevelError, formatArgs(args...), w.callerRef(LevelError))
	}
}

// Debugf logs a formatted message at debug level
func Debugf(format string, args ...any) {
	if w := backend.Load(); w != nil {
		w.writeRecord(LevelDebug, fmt.Sprintf(format, args...), w.callerRef(LevelDebug))
	}
}

// Infof logs a formatted message at info level
func Infof(format string, args ...any) {
	if w := backend.Load(); w != nil {
		w.writeRecord(LevelInfo, fmt.Sprintf(format, args...), w.callerRef(LevelInfo))
	}
}

// Warnf logs a formatted message at warning level
func Warnf(format string, args ...any) {
	if w := backend.Load(); w != nil {
		w.writeRecord(LevelWarn, fmt.Sprintf(format, args...), w.callerRef(LevelWarn))
	}
}

// Errorf logs a formatted message at error level
func Errorf(format string, args ...any) {
	if w := backend.Load(); w != nil {
		w.writeRecord(LevelError, fmt.Sprintf(format, args...), w.callerRef(LevelError))
	}
}

// Progress emits an overwrite-in-place status line through the
// installed backend.
func Progress(level Level, msg string, terminal bool) {
	if w := backend.Load(); w != nil {
		w.WriteProgress(level, msg, terminal)
	}
}
