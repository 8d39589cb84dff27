package report

import (
	"strings"

	"everbright-backend/internal/tabular"
)

// Options scope one reconciliation. Zero value means: exact-email matching
// only, no domain scoping, no group filtering.
type Options struct {
	// DomainFilter, when non-nil, restricts synthesized pending rows to
	// invitees whose email domain is in the set. Exact-email exclusion
	// against the course export applies either way.
	DomainFilter []string
	// Group, when non-empty, pre-filters course rows to those whose group
	// list contains the label (case-insensitive). Rows from exports without
	// a group column carry no group info and pass through unfiltered.
	Group string
}

// Reconcile merges the invitee roster with one course export into the final
// report table: classified course rows first, then a synthesized row per
// invitee not already covered by the export, each population in its original
// order. The same email never appears in both populations; the course export
// wins outright. Coverage is computed from the full export before any group
// filtering, so a learner dropped from the report by the group filter still
// never reappears as a pending row.
func Reconcile(pending []PendingInvitee, statusRows []CourseStatusRecord, opts Options) ([]ReconciledRow, error) {
	covered := make(map[string]struct{}, len(statusRows))
	for _, rec := range statusRows {
		if rec.EmailDomain == "" {
			continue // malformed email, excluded from matching
		}
		covered[rec.Email] = struct{}{}
	}

	if opts.Group != "" {
		statusRows = filterByGroup(statusRows, opts.Group)
	}

	var domains map[string]struct{}
	if opts.DomainFilter != nil {
		domains = make(map[string]struct{}, len(opts.DomainFilter))
		for _, d := range opts.DomainFilter {
			domains[strings.ToLower(d)] = struct{}{}
		}
	}

	rows := make([]ReconciledRow, 0, len(statusRows)+len(pending))
	for _, rec := range statusRows {
		status, note := Classify(rec)
		score, err := NormalizeScore(rec.Score)
		if err != nil {
			return nil, err
		}
		rows = append(rows, ReconciledRow{
			User:          rec.FullName,
			Email:         rec.Email,
			CourseName:    rec.CourseName,
			Status:        status,
			CompletedNote: note,
			Score:         score,
		})
	}

	for _, inv := range pending {
		if _, ok := covered[inv.Email]; ok {
			continue
		}
		if domains != nil {
			if _, ok := domains[inv.EmailDomain]; !ok {
				continue
			}
		}
		rows = append(rows, synthesizePendingRow(inv))
	}
	return rows, nil
}

// synthesizePendingRow builds the placeholder row for an invitee with no
// course record. This deliberately does not go through Classify: the invite
// note must survive verbatim, where the classifier's not-started branch
// would prefer an enrollment date.
func synthesizePendingRow(inv PendingInvitee) ReconciledRow {
	note := "Unknown"
	if _, ok := tabular.ParseDate(inv.LastInviteSentAt); ok {
		note = "Invite last sent: " + tabular.DatePortion(inv.LastInviteSentAt)
	}
	return ReconciledRow{
		User:          PendingUserName,
		Email:         inv.Email,
		CourseName:    PendingCourseName,
		Status:        StatusNotStarted,
		CompletedNote: note,
		Score:         PendingScore,
	}
}

// filterByGroup keeps rows whose group list contains the label. Rows with a
// nil group list come from exports without a group column and are kept; an
// empty non-nil list means the learner is in no group and is dropped.
func filterByGroup(statusRows []CourseStatusRecord, group string) []CourseStatusRecord {
	kept := make([]CourseStatusRecord, 0, len(statusRows))
	for _, rec := range statusRows {
		if rec.Groups == nil || containsFold(rec.Groups, group) {
			kept = append(kept, rec)
		}
	}
	return kept
}

func containsFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}

// Domains returns the distinct email domains present in a course export, in
// first-seen order. Used by the domain matching mode, where pending invitees
// are scoped to domains the export actually covers.
func Domains(statusRows []CourseStatusRecord) []string {
	seen := make(map[string]struct{}, len(statusRows))
	var out []string
	for _, rec := range statusRows {
		if rec.EmailDomain == "" {
			continue
		}
		if _, ok := seen[rec.EmailDomain]; ok {
			continue
		}
		seen[rec.EmailDomain] = struct{}{}
		out = append(out, rec.EmailDomain)
	}
	return out
}
