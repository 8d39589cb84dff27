package tabular

import (
	"strings"
	"time"
)

// Source exports come from a day-first locale, so ambiguous values like
// "03/04/2024" must read as 3 April. Every layout here is day-first; adding a
// month-first layout would silently corrupt dates.
var dateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"02/01/06",
	"2006-01-02",
	"02 Jan 2006",
}

// absentSentinel marks empty date-ish cells in the course exports.
const absentSentinel = "-"

// ParseDate parses a day-first date string, ignoring any trailing time
// portion. Returns false for empty values, the "-" sentinel, and anything
// that matches no known layout.
func ParseDate(value string) (time.Time, bool) {
	token := DatePortion(value)
	if token == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, token); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DatePortion returns the leading date token of a raw cell value: the part
// before the first space, so "03/04/2024 14:52" yields "03/04/2024".
// Empty values and the "-" sentinel yield "".
func DatePortion(value string) string {
	value = strings.TrimSpace(value)
	if value == "" || value == absentSentinel {
		return ""
	}
	if i := strings.IndexByte(value, ' '); i >= 0 {
		return value[:i]
	}
	return value
}

// Present reports whether a date-ish cell holds a real value rather than
// being empty or the "-" sentinel.
func Present(value string) bool {
	value = strings.TrimSpace(value)
	return value != "" && value != absentSentinel
}
