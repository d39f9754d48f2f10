package daylog

import (
	"fmt"
	"runtime"
	"strings"
)

// fmtErrorf wrapper
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "daylog: ") {
		format = "daylog: " + format
	}
	return fmt.Errorf(format, args...)
}

// fatalf reports an unrecoverable setup failure. A backend that cannot
// secure its own storage has no safe degraded mode.
func fatalf(format string, args ...any) {
	if !strings.HasPrefix(format, "daylog: ") {
		format = "daylog: " + format
	}
	panic(fmt.Sprintf(format, args...))
}

// parseKeyValue splits a "key=value" string.
func parseKeyValue(arg string) (string, string, error) {
	parts := strings.SplitN(strings.TrimSpace(arg), "=", 2)
	if len(parts) != 2 {
		return "", "", fmtErrorf("invalid format in override string '%s', expected key=value", arg)
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", fmtErrorf("key cannot be empty in override string '%s'", arg)
	}
	return key, value, nil
}

// callerInfo resolves the importing package path and line of the frame
// skip levels up the stack. skip counts from callerInfo itself.
func callerInfo(skip int) (pkg string, line int, ok bool) {
	pc, _, line, ok := runtime.Caller(skip)
	if !ok {
		return "", 0, false
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "", 0, false
	}
	name := fn.Name() // e.g. github.com/user/proj/pkg.(*T).Method
	if i := strings.LastIndex(name, "/"); i >= 0 {
		if j := strings.Index(name[i:], "."); j >= 0 {
			name = name[:i+j]
		}
	} else if j := strings.Index(name, "."); j >= 0 {
		name = name[:j]
	}
	return name, line, true
}
