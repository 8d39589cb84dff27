package report

import "fmt"

// MalformedEmailError reports a row whose email lacks an "@" separator.
// Such rows are excluded from matching rather than aborting the batch; a
// single bad row must not poison the whole report.
type MalformedEmailError struct {
	Email string
}

func (e *MalformedEmailError) Error() string {
	return fmt.Sprintf("malformed email %q: missing @", e.Email)
}

// ScoreFormatError reports a score value that cannot be parsed as a
// percentage. Fatal for the batch: scores feed a mandatory output column.
type ScoreFormatError struct {
	Value string
}

func (e *ScoreFormatError) Error() string {
	return fmt.Sprintf("score %q is not a percentage", e.Value)
}

// TemplateUnavailableError reports that the report template could not be
// loaded. Unrecoverable: it is a packaging problem, not a transient one.
type TemplateUnavailableError struct {
	Path string
	Err  error
}

func (e *TemplateUnavailableError) Error() string {
	return fmt.Sprintf("report template %q unavailable: %v", e.Path, e.Err)
}

func (e *TemplateUnavailableError) Unwrap() error { return e.Err }
