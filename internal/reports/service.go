package reports

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"everbright-backend/internal/render"
	"everbright-backend/internal/report"
	"everbright-backend/internal/tabular"

	"github.com/rs/zerolog/log"
)

// MatchMode selects the matching discipline for pending invitees. Exactly one
// mode applies per generation.
type MatchMode string

const (
	// MatchEmail excludes invitees whose exact email appears in the course
	// export; all remaining invitees get a pending row.
	MatchEmail MatchMode = "email"
	// MatchDomain additionally restricts pending rows to invitees whose
	// email domain appears somewhere in the course export.
	MatchDomain MatchMode = "domain"
)

// ParseMatchMode parses the form value; empty input means MatchEmail.
func ParseMatchMode(s string) (MatchMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(MatchEmail):
		return MatchEmail, true
	case string(MatchDomain):
		return MatchDomain, true
	}
	return "", false
}

type Service struct {
	Renderer   *render.Renderer
	ReportsDir string
}

type GenerateInput struct {
	PendingPath string
	StatusPaths []string
	Match       MatchMode
	Group       string
}

// Generated describes one written report file.
type Generated struct {
	Path       string
	FileName   string
	CourseName string
	Rows       int
}

// Fallback course segment for a status export with no rows at all.
const emptyCourseName = "No Course Data"

// Generate runs the full pipeline once per course-status file: normalize both
// datasets, reconcile, render into the template, and write the workbook under
// ReportsDir. Results come back in input order.
//
// File naming uses the first status row's course name; a file mixing several
// courses is a known upstream limitation and is not special-cased.
func (s *Service) Generate(ctx context.Context, in GenerateInput) ([]Generated, error) {
	pendingDS, err := readDataset(in.PendingPath)
	if err != nil {
		return nil, err
	}
	pending, malformed, err := report.PendingFromDataset(pendingDS)
	if err != nil {
		return nil, err
	}
	logMalformed("pending roster", malformed)

	results := make([]Generated, 0, len(in.StatusPaths))
	for _, statusPath := range in.StatusPaths {
		gen, err := s.generateOne(pending, statusPath, in)
		if err != nil {
			return nil, err
		}
		results = append(results, gen)
	}
	return results, nil
}

func (s *Service) generateOne(pending []report.PendingInvitee, statusPath string, in GenerateInput) (Generated, error) {
	statusDS, err := readDataset(statusPath)
	if err != nil {
		return Generated{}, err
	}
	records, malformed, err := report.StatusFromDataset(statusDS)
	if err != nil {
		return Generated{}, err
	}
	logMalformed("course export", malformed)

	opts := report.Options{Group: in.Group}
	if in.Match == MatchDomain {
		opts.DomainFilter = report.Domains(records)
	}
	rows, err := report.Reconcile(pending, records, opts)
	if err != nil {
		return Generated{}, err
	}

	f, err := s.Renderer.Render(rows)
	if err != nil {
		return Generated{}, err
	}
	defer f.Close()

	course := emptyCourseName
	if len(records) > 0 {
		course = records[0].CourseName
	} else if len(rows) > 0 {
		course = rows[0].CourseName
	}

	name := render.FileName(course, in.Group, time.Now())
	path := filepath.Join(s.ReportsDir, name)
	if err := f.SaveAs(path); err != nil {
		return Generated{}, fmt.Errorf("save report %s: %w", name, err)
	}

	log.Info().Str("course", course).Int("rows", len(rows)).Str("file", name).Msg("Report generated")
	return Generated{Path: path, FileName: name, CourseName: course, Rows: len(rows)}, nil
}

func readDataset(path string) (*tabular.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open upload %s: %w", filepath.Base(path), err)
	}
	defer file.Close()
	return tabular.Read(file)
}

func logMalformed(source string, malformed []*report.MalformedEmailError) {
	for _, m := range malformed {
		log.Warn().Str("source", source).Str("email", m.Email).Msg("Row excluded from matching")
	}
}
