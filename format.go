package daylog

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// timestampLayout renders every calendar timestamp to the same byte
// width; the progress rewind arithmetic depends on that.
const timestampLayout = "2006-01-02 15:04:05"

// dateLayout names the per-day archive files.
const dateLayout = "20060102"

// sampleTime is the fixed timestamp used to measure prefix width.
var sampleTime = time.Date(2024, 5, 8, 12, 24, 5, 0, time.UTC)

// formatPrefix renders the "[timestamp LEVEL] " prefix shared by the
// console and both file sinks (without color).
func formatPrefix(t time.Time, level Level) string {
	return "[" + t.Format(timestampLayout) + " " + level.String() + "] "
}

// prefixLen measures the prefix by formatting a sample timestamp
// through the same code path that renders real prefixes, keeping the
// progress rewind byte-exact.
func prefixLen(level Level) int {
	return len(formatPrefix(sampleTime, level))
}

// dumper renders values that have no direct string form
var dumper = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true, // Cleaner for logs
	DisableCapacities:       true, // Less noise
	SortKeys:                true, // Consistent map output
}

// formatArgs renders variadic values into one space-separated message.
func formatArgs(args ...any) string {
	var sb strings.Builder
	for i, arg := range args {
		if i > 0 {
			sb.WriteByte(' ')
		}
		appendValue(&sb, arg)
	}
	return sb.String()
}

// appendValue converts any value to its message representation,
// delegating composite types to spew.
func appendValue(sb *strings.Builder, v any) {
	switch val := v.(type) {
	case string:
		sb.WriteString(val)
	case int:
		sb.WriteString(strconv.FormatInt(int64(val), 10))
	case int64:
		sb.WriteString(strconv.FormatInt(val, 10))
	case uint:
		sb.WriteString(strconv.FormatUint(uint64(val), 10))
	case uint64:
		sb.WriteString(strconv.FormatUint(val, 10))
	case float32:
		sb.WriteString(strconv.FormatFloat(float64(val), 'f', -1, 32))
	case float64:
		sb.WriteString(strconv.FormatFloat(val, 'f', -1, 64))
	case bool:
		sb.WriteString(strconv.FormatBool(val))
	case nil:
		sb.WriteString("nil")
	case time.Time:
		sb.WriteString(val.Format(timestampLayout))
	case error:
		sb.WriteString(val.Error())
	case fmt.Stringer:
		sb.WriteString(val.String())
	default:
		var b bytes.Buffer
		dumper.Fdump(&b, val)
		sb.Write(bytes.TrimSpace(b.Bytes()))
	}
}
