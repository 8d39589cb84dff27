package reports

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"everbright-backend/internal/render"
	"everbright-backend/internal/report"
	"everbright-backend/internal/tabular"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const pendingCSV = `Email,Last invite sent at
a@x.com,05/01/2024
c@z.com,10/01/2024
`

const statusCSV = `Full name,Email,Course name,Progress,Score,Enrolled,Started,Last accessed,Completed
Ada Lovelace,a@x.com,Safety Basics,Passed,87.6%,01/02/2024 09:00,02/02/2024,10/02/2024,11/02/2024 16:50
`

func setupServiceTest(t *testing.T) (*Service, string) {
	t.Helper()
	dir := t.TempDir()

	templatePath := filepath.Join(dir, "template.xlsx")
	tmpl := excelize.NewFile()
	require.NoError(t, tmpl.SaveAs(templatePath))
	require.NoError(t, tmpl.Close())

	svc := &Service{
		Renderer:   &render.Renderer{TemplatePath: templatePath},
		ReportsDir: dir,
	}
	return svc, dir
}

func writeUpload(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGenerate_WritesReport(t *testing.T) {
	svc, dir := setupServiceTest(t)
	pending := writeUpload(t, dir, "pending.csv", pendingCSV)
	status := writeUpload(t, dir, "status.csv", statusCSV)

	results, err := svc.Generate(context.Background(), GenerateInput{
		PendingPath: pending,
		StatusPaths: []string{status},
		Match:       MatchEmail,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)

	gen := results[0]
	assert.Equal(t, "Safety Basics", gen.CourseName)
	assert.Equal(t, 2, gen.Rows) // one course row + one uncovered invitee
	assert.True(t, strings.HasPrefix(gen.FileName, "Report_Safety Basics_"), gen.FileName)
	assert.True(t, strings.HasSuffix(gen.FileName, ".xlsx"), gen.FileName)

	f, err := excelize.OpenFile(gen.Path)
	require.NoError(t, err)
	defer f.Close()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	got := func(cell string) string {
		v, err := f.GetCellValue(sheet, cell)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "Ada Lovelace", got("B13"))
	assert.Equal(t, "Passed", got("E13"))
	assert.Equal(t, "Completed: 11/02/2024", got("F13"))
	assert.Equal(t, "88%", got("G13"))

	assert.Equal(t, report.PendingUserName, got("B14"))
	assert.Equal(t, "c@z.com", got("C14"))
	assert.Equal(t, "Invite last sent: 10/01/2024", got("F14"))
	assert.Equal(t, "0%", got("G14"))
}

// Domain mode: c@z.com's domain is absent from the export, so no pending row.
func TestGenerate_DomainMatch(t *testing.T) {
	svc, dir := setupServiceTest(t)
	pending := writeUpload(t, dir, "pending.csv", pendingCSV)
	status := writeUpload(t, dir, "status.csv", statusCSV)

	results, err := svc.Generate(context.Background(), GenerateInput{
		PendingPath: pending,
		StatusPaths: []string{status},
		Match:       MatchDomain,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].Rows)
}

func TestGenerate_OneReportPerStatusFile(t *testing.T) {
	svc, dir := setupServiceTest(t)
	pending := writeUpload(t, dir, "pending.csv", pendingCSV)
	first := writeUpload(t, dir, "status1.csv", statusCSV)
	second := writeUpload(t, dir, "status2.csv", strings.ReplaceAll(statusCSV, "Safety Basics", "Fire Drill"))

	results, err := svc.Generate(context.Background(), GenerateInput{
		PendingPath: pending,
		StatusPaths: []string{first, second},
		Match:       MatchEmail,
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Safety Basics", results[0].CourseName)
	assert.Equal(t, "Fire Drill", results[1].CourseName)
}

func TestGenerate_MissingColumnAborts(t *testing.T) {
	svc, dir := setupServiceTest(t)
	pending := writeUpload(t, dir, "pending.csv", pendingCSV)
	status := writeUpload(t, dir, "status.csv", "Email,Progress\na@x.com,Passed\n")

	_, err := svc.Generate(context.Background(), GenerateInput{
		PendingPath: pending,
		StatusPaths: []string{status},
		Match:       MatchEmail,
	})
	var schemaErr *tabular.SchemaError
	require.ErrorAs(t, err, &schemaErr)
}

func TestGenerate_TemplateMissingIsFatal(t *testing.T) {
	svc, dir := setupServiceTest(t)
	svc.Renderer.TemplatePath = filepath.Join(dir, "gone.xlsx")
	pending := writeUpload(t, dir, "pending.csv", pendingCSV)
	status := writeUpload(t, dir, "status.csv", statusCSV)

	_, err := svc.Generate(context.Background(), GenerateInput{
		PendingPath: pending,
		StatusPaths: []string{status},
		Match:       MatchEmail,
	})
	var tmplErr *report.TemplateUnavailableError
	require.ErrorAs(t, err, &tmplErr)
}

func TestParseMatchMode(t *testing.T) {
	for in, want := range map[string]MatchMode{
		"":       MatchEmail,
		"email":  MatchEmail,
		"Domain": MatchDomain,
	} {
		got, ok := ParseMatchMode(in)
		require.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseMatchMode("fuzzy")
	assert.False(t, ok)
}
