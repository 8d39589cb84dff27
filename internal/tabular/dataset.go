package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Row maps a column name to the raw cell value for one record.
type Row map[string]string

// Dataset is a parsed delimited export: a header row plus data rows keyed by
// column name. Header cells are trimmed of incidental whitespace on read;
// the names themselves stay case-sensitive.
type Dataset struct {
	Columns []string
	Rows    []Row
}

// SchemaError reports a required column missing from an input dataset.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("required column %q missing from input", e.Column)
}

// Read parses CSV data with a header row into a Dataset.
// Rows shorter than the header are padded with empty values; cells beyond
// the header width are dropped.
func Read(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read csv: empty input, expected a header row")
	}

	columns := make([]string, len(records[0]))
	for i, name := range records[0] {
		columns[i] = strings.TrimSpace(name)
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(columns))
		for i, name := range columns {
			if i < len(record) {
				row[name] = record[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}

	return &Dataset{Columns: columns, Rows: rows}, nil
}

// Require checks that every named column is present, returning a SchemaError
// naming the first missing one.
func (d *Dataset) Require(columns ...string) error {
	for _, name := range columns {
		if !d.HasColumn(name) {
			return &SchemaError{Column: name}
		}
	}
	return nil
}

// HasColumn reports whether the dataset header contains the named column.
func (d *Dataset) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}
