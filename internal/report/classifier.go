package report

import (
	"math"
	"strconv"
	"strings"

	"everbright-backend/internal/tabular"
)

// Classify assigns the canonical status for a course record and derives the
// matching human-readable completion note. Pure function of the record:
// status depends only on which date fields are present, first match wins.
//
//  1. Completed present    -> Passed
//  2. Last accessed present -> In Progress
//  3. otherwise            -> Not started
func Classify(rec CourseStatusRecord) (Status, string) {
	switch {
	case tabular.Present(rec.Completed):
		return StatusPassed, datedNote("Completed: ", rec.Completed)
	case tabular.Present(rec.LastAccessed):
		return StatusInProgress, datedNote("Last accessed course: ", rec.LastAccessed)
	default:
		if tabular.Present(rec.Enrolled) {
			return StatusNotStarted, "Enrolled on: " + tabular.DatePortion(rec.Enrolled)
		}
		// No enrolled date: pass the Completed field through untouched. An
		// earlier stage may have planted a custom note there (the pending-row
		// synthesizer does), and that note must not be overwritten.
		return StatusNotStarted, rec.Completed
	}
}

// datedNote builds "<prefix><date>" from the date portion of a raw value,
// falling back to "<prefix>Unknown" when the value does not parse as a date.
func datedNote(prefix, raw string) string {
	if _, ok := tabular.ParseDate(raw); !ok {
		return prefix + "Unknown"
	}
	return prefix + tabular.DatePortion(raw)
}

// NormalizeScore canonicalizes a percentage string: "87.6%" -> "88%".
// The "%" suffix is optional on input but always present on output.
// Non-numeric values fail with a ScoreFormatError.
func NormalizeScore(raw string) (string, error) {
	trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
	if trimmed == "" {
		return "", &ScoreFormatError{Value: raw}
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return "", &ScoreFormatError{Value: raw}
	}
	return strconv.Itoa(int(math.Round(f))) + "%", nil
}
