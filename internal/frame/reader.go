package frame

import (
	"encoding/csv"
	"io"
	"os"

	"csv-refine/internal/errors"
)

// Load reads a comma-delimited file into a typed frame.
//
// Declared columns are matched by header name and coerced to their
// declared type; every declared column must be present. Undeclared
// columns pass through untouched as text, keeping their file position.
// When override names are given the file's header row is discarded and
// the override names apply positionally.
func Load(path string, specs []ColumnSpec, override []string) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.Parse, "opening source")
	}
	defer file.Close()

	r := csv.NewReader(file)

	header, err := r.Read()
	if err == io.EOF {
		return nil, errors.New(errors.Parse, "%s: file is empty", path)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.Parse, "%s: reading header", path)
	}

	if len(override) > 0 {
		if len(override) != len(header) {
			return nil, errors.New(errors.Parse, "%s: header has %d columns, override names %d", path, len(header), len(override))
		}
		header = override
	}

	seen := make(map[string]bool, len(header))
	for _, name := range header {
		if seen[name] {
			return nil, errors.New(errors.Parse, "%s: duplicate column %q", path, name)
		}
		seen[name] = true
	}

	declared := make(map[string]ColumnSpec, len(specs))
	for _, s := range specs {
		if !seen[s.Name] {
			return nil, errors.New(errors.Parse, "%s: declared column %q not found", path, s.Name)
		}
		declared[s.Name] = s
	}

	// Columns are built in file order; undeclared ones default to text.
	cols := make([]*Column, len(header))
	colSpecs := make([]ColumnSpec, len(header))
	for j, name := range header {
		cs, ok := declared[name]
		if !ok {
			cs = ColumnSpec{Name: name, Type: Text}
		}
		colSpecs[j] = cs
		cols[j] = &Column{Name: name, Type: cs.Type}
	}

	row := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, errors.Parse, "%s: reading rows", path)
		}
		row++
		for j, raw := range record {
			v, err := ParseCell(raw, colSpecs[j])
			if err != nil {
				return nil, errors.Wrap(err, errors.Parse, "%s: row %d", path, row)
			}
			cols[j].Cells = append(cols[j].Cells, v)
		}
	}

	return NewFrame(cols...)
}
