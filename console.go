package daylog

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
)

// Per-level color attributes
var (
	debugLabelColor = color.New(color.FgHiBlack)
	debugTextColor  = color.New(color.FgHiBlack, color.Underline)
	warnColor       = color.New(color.FgYellow)
	errorColor      = color.New(color.FgRed, color.Bold)
	callerColor     = color.New(color.FgHiBlack)
)

// console renders colored lines to one terminal stream. It is an
// independent sink: file write failures never gate console output.
type console struct {
	out io.Writer
}

func newConsole(cfg *Config) *console {
	c := &console{}
	switch {
	case !cfg.EnableConsole:
		c.out = io.Discard
	case cfg.ConsoleTarget == "stderr":
		c.out = os.Stderr
	default:
		c.out = os.Stdout
	}
	return c
}

// renderLine builds one colored console line. caller, when non-empty,
// is prepended in muted style before the message.
func renderLine(t time.Time, level Level, caller, msg string) string {
	var label, text string
	switch level {
	case LevelDebug:
		label = debugLabelColor.Sprint(level.String())
		text = debugTextColor.Sprint(msg)
	case LevelWarn:
		label = warnColor.Sprint(level.String())
		text = warnColor.Sprint(msg)
	case LevelError:
		label = errorColor.Sprint(level.String())
		text = errorColor.Sprint(msg)
	default:
		label = level.String()
		text = msg
	}
	if caller != "" {
		text = callerColor.Sprintf("[%s]", caller) + " " + text
	}
	return fmt.Sprintf("[%s %s] %s", t.Format(timestampLayout), label, text)
}

// record emits a newline-terminated console line.
func (c *console) record(t time.Time, level Level, caller, msg string) {
	fmt.Fprintln(c.out, renderLine(t, level, caller, msg))
}

// progress returns to the start of the terminal line and redraws it,
// leaving no trailing newline so the next progress call overwrites it.
func (c *console) progress(t time.Time, level Level, msg string) {
	fmt.Fprint(c.out, "\r"+renderLine(t, level, "", msg))
}
