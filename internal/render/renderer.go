package render

import (
	"os"

	"everbright-backend/internal/report"

	"github.com/xuri/excelize/v2"
)

// The template reserves everything above row 13 for headings and branding;
// the data table starts at B13 and runs one row per reconciled record.
const (
	startRow   = 13
	startCol   = 2 // column B
	logoAnchor = "D4"
)

// Renderer populates the prepared report template with reconciled rows.
type Renderer struct {
	TemplatePath string
	LogoPath     string // optional; missing file means no logo overlay
}

// Render opens the template, writes the rows at the fixed offset, and
// overlays the logo when the asset exists. A template that cannot be opened
// is a report.TemplateUnavailableError; there is no fallback template.
func (r *Renderer) Render(rows []report.ReconciledRow) (*excelize.File, error) {
	f, err := excelize.OpenFile(r.TemplatePath)
	if err != nil {
		return nil, &report.TemplateUnavailableError{Path: r.TemplatePath, Err: err}
	}
	if err := WriteRows(f, rows); err != nil {
		f.Close()
		return nil, err
	}
	if err := r.overlayLogo(f); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// WriteRows writes each row's six fields into the active sheet starting at
// B13: row i lands at absolute row 13+i, columns B through G. No overwrite
// protection; anything already in those cells is clobbered.
func WriteRows(f *excelize.File, rows []report.ReconciledRow) error {
	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	for i, row := range rows {
		values := []string{
			row.User, row.Email, row.CourseName,
			string(row.Status), row.CompletedNote, row.Score,
		}
		for j, value := range values {
			cell, err := excelize.CoordinatesToCellName(startCol+j, startRow+i)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}
	return nil
}

// overlayLogo anchors the logo asset at D4. A missing asset is tolerated; a
// present but unreadable one is not.
func (r *Renderer) overlayLogo(f *excelize.File) error {
	if r.LogoPath == "" {
		return nil
	}
	if _, err := os.Stat(r.LogoPath); err != nil {
		return nil
	}
	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	return f.AddPicture(sheet, logoAnchor, r.LogoPath, nil)
}
