package report

// Status is the canonical three-state classification of a learner on a
// course. String values match what lands in the rendered report.
type Status string

const (
	StatusPassed     Status = "Passed"
	StatusInProgress Status = "In Progress"
	StatusNotStarted Status = "Not started"
)

// Sentinels written into rows synthesized for invitees with no course record.
const (
	PendingUserName   = "Pending User"
	PendingCourseName = "Pending Course"
	PendingScore      = "0%"
)

// PendingInvitee is one row of the invitee roster: someone who has been sent
// an invite but may not have enrolled yet. Read-only after normalization.
type PendingInvitee struct {
	Email            string // lower-cased, trimmed matching key
	EmailDomain      string // part after "@"
	LastInviteSentAt string // raw date string, day-first locale
}

// CourseStatusRecord is one row of a course export. Read-only after
// normalization. Date-ish fields keep their raw string form ("-" marks
// absent); interpretation is the classifier's job.
type CourseStatusRecord struct {
	FullName     string
	Email        string // lower-cased, trimmed matching key
	EmailDomain  string // "" when the email has no "@"; such rows never match
	CourseName   string
	Progress     string
	Score        string
	Enrolled     string
	Started      string
	LastAccessed string
	Completed    string
	Groups       []string // nil when the export has no group column
}

// ReconciledRow is one output row of the completion report, in render order:
// User, Email, CourseName, Status, CompletedNote, Score.
type ReconciledRow struct {
	User          string
	Email         string
	CourseName    string
	Status        Status
	CompletedNote string
	Score         string
}
