package dataset

import (
	"strings"

	"csv-refine/internal/frame"
)

// Spec is the processing record for one dataset variant: which raw file
// it reads, how its columns are typed, which columns are derived from
// them, and where the refined output goes.
type Spec struct {
	Name       string
	RawFile    string
	OutputFile string
	Columns    []frame.ColumnSpec
	// HeaderOverride replaces the raw header row positionally before
	// column matching. Used where the source file ships broken names.
	HeaderOverride []string
	Derived        []Derivation
	Checks         []Check
}

// Derivation appends one computed column. Fn sees the row after type
// coercion and after earlier derivations, and returns nil for missing.
type Derivation struct {
	Name string
	Type frame.Type
	Fn   func(frame.Row) any
}

// Check is one declared row invariant, applied only when validation is
// requested. OK receives the typed cell value (nil for missing).
type Check struct {
	Column string
	Rule   string
	OK     func(v any) bool
}

// TableName is the destination table name for SQL loads.
func (s Spec) TableName() string {
	return strings.TrimSuffix(s.OutputFile, ".csv")
}

// RefinedColumns describes the schema of the refined output file, used
// when reloading an exported file. Derived columns are nullable because
// derivations can yield missing values.
func (s Spec) RefinedColumns() []frame.ColumnSpec {
	cols := make([]frame.ColumnSpec, 0, len(s.Columns)+len(s.Derived))
	cols = append(cols, s.Columns...)
	for _, d := range s.Derived {
		cols = append(cols, frame.ColumnSpec{Name: d.Name, Type: d.Type, Nullable: true})
	}
	return cols
}
