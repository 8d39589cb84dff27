package render

import (
	"regexp"
	"strings"
	"time"
)

// Characters Windows refuses in file names; replaced rather than stripped so
// two courses differing only in punctuation still get distinct names.
var unsafeFileChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// FileName derives the suggested report file name from the course, an
// optional group label, and the generation date:
// Report_<course>_<group>_<DD-MM-YYYY>.xlsx, group segment omitted when
// no group filter was applied.
func FileName(course, group string, now time.Time) string {
	parts := []string{"Report", Sanitize(course)}
	if group != "" {
		parts = append(parts, Sanitize(group))
	}
	parts = append(parts, now.Format("02-01-2006"))
	return strings.Join(parts, "_") + ".xlsx"
}

// Sanitize replaces filesystem-hostile characters with "_".
func Sanitize(s string) string {
	return unsafeFileChars.ReplaceAllString(s, "_")
}
