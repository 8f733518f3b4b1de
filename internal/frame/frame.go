package frame

import (
	"time"

	"github.com/samber/lo"

	"csv-refine/internal/errors"
)

// Column is one named, typed column of cell values. Cells hold nil for
// missing, or string/int64/float64/time.Time matching Type.
type Column struct {
	Name  string
	Type  Type
	Cells []any
}

// Frame is an ordered set of equally sized columns. Rows keep the order
// they had in the source file.
type Frame struct {
	cols  []*Column
	index map[string]int
}

// NewFrame assembles a frame from prebuilt columns.
func NewFrame(cols ...*Column) (*Frame, error) {
	f := &Frame{index: make(map[string]int)}
	for _, c := range cols {
		if err := f.add(c); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (f *Frame) add(c *Column) error {
	if _, ok := f.index[c.Name]; ok {
		return errors.New(errors.Parse, "column %q already present", c.Name)
	}
	if len(f.cols) > 0 && len(c.Cells) != f.NumRows() {
		return errors.New(errors.Parse, "column %q has %d cells, frame has %d rows", c.Name, len(c.Cells), f.NumRows())
	}
	f.index[c.Name] = len(f.cols)
	f.cols = append(f.cols, c)
	return nil
}

// AddColumn appends a computed column. The cell count must match the
// frame's row count and the name must not collide with an existing column.
func (f *Frame) AddColumn(name string, typ Type, cells []any) error {
	return f.add(&Column{Name: name, Type: typ, Cells: cells})
}

func (f *Frame) NumRows() int {
	if len(f.cols) == 0 {
		return 0
	}
	return len(f.cols[0].Cells)
}

func (f *Frame) NumCols() int {
	return len(f.cols)
}

// Columns returns the columns in frame order.
func (f *Frame) Columns() []*Column {
	return f.cols
}

// Column returns the named column, if present.
func (f *Frame) Column(name string) (*Column, bool) {
	i, ok := f.index[name]
	if !ok {
		return nil, false
	}
	return f.cols[i], true
}

// Header returns the column names in frame order.
func (f *Frame) Header() []string {
	return lo.Map(f.cols, func(c *Column, _ int) string {
		return c.Name
	})
}

// Record renders row i as formatted text fields in frame order.
func (f *Frame) Record(i int) []string {
	return lo.Map(f.cols, func(c *Column, _ int) string {
		return FormatCell(c.Cells[i])
	})
}

// Row returns a cursor over row i.
func (f *Frame) Row(i int) Row {
	return Row{f: f, i: i}
}

// Row is a cursor over one row of a frame. The typed accessors report
// ok=false for missing cells, absent columns and type mismatches, so
// derivation rules can treat all three as "no value".
type Row struct {
	f *Frame
	i int
}

// Value returns the raw cell, nil when missing or the column is absent.
func (r Row) Value(col string) any {
	c, ok := r.f.Column(col)
	if !ok {
		return nil
	}
	return c.Cells[r.i]
}

func (r Row) Text(col string) (string, bool) {
	s, ok := r.Value(col).(string)
	return s, ok
}

func (r Row) Int(col string) (int64, bool) {
	n, ok := r.Value(col).(int64)
	return n, ok
}

// Float returns the cell as float64. Int cells convert; anything else
// reports false.
func (r Row) Float(col string) (float64, bool) {
	switch v := r.Value(col).(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func (r Row) Time(col string) (time.Time, bool) {
	ts, ok := r.Value(col).(time.Time)
	return ts, ok
}
