package frame

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cast"
)

// Type is the scalar type of a column's cells.
type Type int

const (
	Text Type = iota
	Int
	Float
	Time
)

func (t Type) String() string {
	switch t {
	case Text:
		return "text"
	case Int:
		return "int"
	case Float:
		return "float"
	case Time:
		return "time"
	default:
		return "unknown"
	}
}

// TimeLayout is the timestamp layout used by both raw and refined files.
const TimeLayout = "2006-01-02 15:04:05"

// ColumnSpec declares how one raw column is typed on load.
// Nullable only matters for Int columns: an empty field loads as missing
// instead of failing. Text, Float and Time columns always accept empty
// fields as missing.
type ColumnSpec struct {
	Name     string
	Type     Type
	Nullable bool
}

// ParseCell coerces one raw field into its typed cell value.
// Missing values come back as nil.
func ParseCell(raw string, spec ColumnSpec) (any, error) {
	if raw == "" {
		if spec.Type == Int && !spec.Nullable {
			return nil, fmt.Errorf("column %s: empty value for required int column", spec.Name)
		}
		return nil, nil
	}
	switch spec.Type {
	case Text:
		return raw, nil
	case Int:
		n, err := cast.ToInt64E(raw)
		if err != nil {
			return nil, fmt.Errorf("column %s: %q is not an integer", spec.Name, raw)
		}
		return n, nil
	case Float:
		f, err := cast.ToFloat64E(raw)
		if err != nil {
			return nil, fmt.Errorf("column %s: %q is not a number", spec.Name, raw)
		}
		return f, nil
	case Time:
		ts, err := cast.ToTimeE(raw)
		if err != nil {
			return nil, fmt.Errorf("column %s: %q is not a timestamp", spec.Name, raw)
		}
		return ts, nil
	default:
		return nil, fmt.Errorf("column %s: unknown type %d", spec.Name, spec.Type)
	}
}

// FormatCell renders a typed cell back to its text form. Missing values
// render as the empty field. Floats use the shortest representation that
// round-trips, so export output is stable across load/export cycles.
func FormatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case time.Time:
		return x.Format(TimeLayout)
	default:
		return fmt.Sprint(x)
	}
}
