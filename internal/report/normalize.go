package report

import (
	"strings"

	"everbright-backend/internal/pkg/validation"
	"everbright-backend/internal/tabular"
)

// Column names expected in the uploaded exports. Case-sensitive; the tabular
// reader only strips incidental whitespace around header cells.
const (
	ColEmail          = "Email"
	ColLastInviteSent = "Last invite sent at"
	ColFullName       = "Full name"
	ColCourseName     = "Course name"
	ColProgress       = "Progress"
	ColScore          = "Score"
	ColEnrolled       = "Enrolled"
	ColStarted        = "Started"
	ColLastAccessed   = "Last accessed"
	ColCompleted      = "Completed"
	ColGroups         = "Groups"
)

var pendingColumns = []string{ColEmail, ColLastInviteSent}

var statusColumns = []string{
	ColEmail, ColProgress, ColScore, ColCompleted,
	ColLastAccessed, ColEnrolled, ColFullName, ColCourseName,
}

// PendingFromDataset normalizes the invitee roster. Rows whose email lacks an
// "@" cannot derive a domain and are dropped from the roster; each drop is
// reported in the second return value so the caller can log it. A missing
// required column aborts with a tabular.SchemaError.
func PendingFromDataset(ds *tabular.Dataset) ([]PendingInvitee, []*MalformedEmailError, error) {
	if err := ds.Require(pendingColumns...); err != nil {
		return nil, nil, err
	}

	invitees := make([]PendingInvitee, 0, len(ds.Rows))
	var malformed []*MalformedEmailError
	for _, row := range ds.Rows {
		email := validation.NormalizeEmail(row[ColEmail])
		domain, ok := validation.EmailDomain(email)
		if !ok {
			malformed = append(malformed, &MalformedEmailError{Email: email})
			continue
		}
		invitees = append(invitees, PendingInvitee{
			Email:            email,
			EmailDomain:      domain,
			LastInviteSentAt: row[ColLastInviteSent],
		})
	}
	return invitees, malformed, nil
}

// StatusFromDataset normalizes a course export. Rows whose email lacks an "@"
// stay in the output (the learner still belongs in the report) but get an
// empty EmailDomain and never participate in matching. A missing required
// column aborts with a tabular.SchemaError; the Started and Groups columns
// are optional.
func StatusFromDataset(ds *tabular.Dataset) ([]CourseStatusRecord, []*MalformedEmailError, error) {
	if err := ds.Require(statusColumns...); err != nil {
		return nil, nil, err
	}
	hasGroups := ds.HasColumn(ColGroups)

	records := make([]CourseStatusRecord, 0, len(ds.Rows))
	var malformed []*MalformedEmailError
	for _, row := range ds.Rows {
		email := validation.NormalizeEmail(row[ColEmail])
		domain, ok := validation.EmailDomain(email)
		if !ok {
			malformed = append(malformed, &MalformedEmailError{Email: email})
			domain = ""
		}

		rec := CourseStatusRecord{
			FullName:     strings.TrimSpace(row[ColFullName]),
			Email:        email,
			EmailDomain:  domain,
			CourseName:   strings.TrimSpace(row[ColCourseName]),
			Progress:     row[ColProgress],
			Score:        row[ColScore],
			Enrolled:     row[ColEnrolled],
			Started:      row[ColStarted],
			LastAccessed: row[ColLastAccessed],
			Completed:    row[ColCompleted],
		}
		if hasGroups {
			rec.Groups = splitGroups(row[ColGroups])
		}
		records = append(records, rec)
	}
	return records, malformed, nil
}

// splitGroups parses a multi-valued group cell. Values are separated by
// commas or semicolons; blanks are dropped. Always non-nil when the column
// exists, so an empty cell still means "in no group" rather than "unfiltered".
func splitGroups(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';'
	})
	groups := make([]string, 0, len(fields))
	for _, f := range fields {
		if g := strings.TrimSpace(f); g != "" {
			groups = append(groups, g)
		}
	}
	return groups
}
