// Package format holds the display formatting shared by exports and the
// terminal views.
package format

import (
	"fmt"
	"strconv"
	"time"
)

// Count renders an optional non-negative count with comma grouping, or
// "N/A" when absent. Used by the Markdown report.
func Count(n *int64) string {
	if n == nil {
		return "N/A"
	}
	return groupDigits(*n)
}

// CompactCount renders an optional count in compact form (1.5M, 1.5K, 999),
// or "-" when absent. Used by list views.
func CompactCount(n *int64) string {
	if n == nil {
		return "-"
	}
	v := *n
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(v)/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("%.1fK", float64(v)/1_000)
	}
	return strconv.FormatInt(v, 10)
}

// Date renders a backend ISO 8601 timestamp as "Mar 15, 2024". Strings
// that do not parse are returned unchanged.
func Date(iso string) string {
	t, err := parseISO(iso)
	if err != nil {
		return iso
	}
	return t.Format("Jan 2, 2006")
}

// DateStamp renders t as a YYYY-MM-DD stamp.
func DateStamp(t time.Time) string {
	return t.Format("2006-01-02")
}

func parseISO(iso string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.999999", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, iso); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", iso)
}

func groupDigits(v int64) string {
	s := strconv.FormatInt(v, 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}

	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
