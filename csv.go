package enumjen

import (
	"fmt"
	"strings"
)

// Table is comma-separated text split into its heading line and data rows.
//
// Every row has exactly len(Headings) fields.
type Table struct {
	Headings []string
	Rows     [][]string
}

// ParseTable splits text on newlines and commas. No quoting is understood: a
// field may not contain a comma.
//
// Exactly one leading space is stripped from each heading and field, since
// ", " separators are common in hand-written files. Trailing carriage returns
// are dropped and blank lines are skipped. A row whose field count differs
// from the number of headings is an error.
func ParseTable(text string) (*Table, error) {
	t := &Table{}
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := splitFields(line)
		if t.Headings == nil {
			t.Headings = fields
			continue
		}
		if len(fields) != len(t.Headings) {
			return nil, fmt.Errorf("%w: line %d has %d fields, expected %d", ErrParse, i+1, len(fields), len(t.Headings))
		}
		t.Rows = append(t.Rows, fields)
	}

	if t.Headings == nil {
		return nil, fmt.Errorf("%w: no heading line", ErrParse)
	}
	return t, nil
}

func splitFields(line string) []string {
	fields := strings.Split(line, ",")
	for i, f := range fields {
		fields[i] = strings.TrimPrefix(f, " ")
	}
	return fields
}

// Specs transposes the table into one EnumSpec per column, named after the
// column heading, with one entry per row.
func (t *Table) Specs() []EnumSpec {
	specs := make([]EnumSpec, len(t.Headings))
	for i, h := range t.Headings {
		entries := make([]Entry, 0, len(t.Rows))
		for _, row := range t.Rows {
			entries = append(entries, Entry{Name: row[i], Value: row[i]})
		}
		specs[i] = EnumSpec{Name: h, Entries: entries}
	}
	return specs
}
