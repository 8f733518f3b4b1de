package sink

import (
	"fmt"
	"strings"

	"csv-refine/internal/frame"
)

type MSSQLDialect struct{}

func (d *MSSQLDialect) QuoteIdent(name string) string {
	return "[" + name + "]"
}

func (d *MSSQLDialect) CreateTableQuery(table string, cols []*frame.Column) string {
	// No IF NOT EXISTS in T-SQL; guard with OBJECT_ID.
	return fmt.Sprintf("IF OBJECT_ID(N'%s', N'U') IS NULL CREATE TABLE %s (%s)",
		table, d.QuoteIdent(table), columnDefs(d, cols))
}

func (d *MSSQLDialect) TruncateQuery(table string) string {
	return fmt.Sprintf("TRUNCATE TABLE %s", d.QuoteIdent(table))
}

func (d *MSSQLDialect) InsertQuery(table string, cols []string) string {
	vals := GeneratePlaceholders(len(cols), d.Placeholder)
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		d.QuoteIdent(table), strings.Join(quoteAll(d, cols), ", "), vals)
}

func (d *MSSQLDialect) Placeholder(index int) string {
	return fmt.Sprintf("@p%d", index+1)
}

func (d *MSSQLDialect) ColumnType(t frame.Type) string {
	switch t {
	case frame.Int:
		return "BIGINT"
	case frame.Float:
		return "FLOAT"
	case frame.Time:
		return "DATETIME2"
	default:
		return "NVARCHAR(MAX)"
	}
}
