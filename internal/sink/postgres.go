package sink

import (
	"fmt"
	"strings"

	"csv-refine/internal/frame"
)

type PostgresDialect struct{}

func (d *PostgresDialect) QuoteIdent(name string) string {
	return `"` + name + `"`
}

func (d *PostgresDialect) CreateTableQuery(table string, cols []*frame.Column) string {
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", d.QuoteIdent(table), columnDefs(d, cols))
}

func (d *PostgresDialect) TruncateQuery(table string) string {
	return fmt.Sprintf("TRUNCATE TABLE %s", d.QuoteIdent(table))
}

func (d *PostgresDialect) InsertQuery(table string, cols []string) string {
	vals := GeneratePlaceholders(len(cols), d.Placeholder)
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		d.QuoteIdent(table), strings.Join(quoteAll(d, cols), ", "), vals)
}

func (d *PostgresDialect) Placeholder(index int) string {
	return fmt.Sprintf("$%d", index+1)
}

func (d *PostgresDialect) ColumnType(t frame.Type) string {
	switch t {
	case frame.Int:
		return "BIGINT"
	case frame.Float:
		return "DOUBLE PRECISION"
	case frame.Time:
		return "TIMESTAMP"
	default:
		return "TEXT"
	}
}
