package sink

import (
	"fmt"
	"strings"

	"csv-refine/internal/frame"
)

// Dialect abstracts database-specific SQL for loading refined tables.
type Dialect interface {
	// Identifier quoting for table and column names.
	QuoteIdent(name string) string

	// Query Generation
	CreateTableQuery(table string, cols []*frame.Column) string
	TruncateQuery(table string) string
	InsertQuery(table string, cols []string) string
	Placeholder(index int) string // Returns ?, $1, @p1, :1 etc.

	// ColumnType maps a frame column type to the destination column type.
	ColumnType(t frame.Type) string
}

// GeneratePlaceholders is a helper function to create a slice of placeholder strings.
// It takes the number of placeholders needed and a function that returns the placeholder for a given index.
// It returns a comma-separated string of the generated placeholders.
func GeneratePlaceholders(count int, placeholderFunc func(int) string) string {
	placeholders := make([]string, count)
	for i := 0; i < count; i++ {
		placeholders[i] = placeholderFunc(i)
	}
	return strings.Join(placeholders, ", ")
}

// columnDefs renders the quoted "name TYPE" pairs for CREATE TABLE.
func columnDefs(d Dialect, cols []*frame.Column) string {
	defs := make([]string, len(cols))
	for i, c := range cols {
		defs[i] = fmt.Sprintf("%s %s", d.QuoteIdent(c.Name), d.ColumnType(c.Type))
	}
	return strings.Join(defs, ", ")
}

// quoteAll quotes every identifier in the list.
func quoteAll(d Dialect, names []string) []string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = d.QuoteIdent(n)
	}
	return quoted
}
