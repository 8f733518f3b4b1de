package sink

import (
	"fmt"
	"strings"

	"csv-refine/internal/frame"
)

type MysqlDialect struct{}

func (d *MysqlDialect) QuoteIdent(name string) string {
	return "`" + name + "`"
}

func (d *MysqlDialect) CreateTableQuery(table string, cols []*frame.Column) string {
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", d.QuoteIdent(table), columnDefs(d, cols))
}

func (d *MysqlDialect) TruncateQuery(table string) string {
	return fmt.Sprintf("TRUNCATE TABLE %s", d.QuoteIdent(table))
}

func (d *MysqlDialect) InsertQuery(table string, cols []string) string {
	vals := GeneratePlaceholders(len(cols), d.Placeholder)
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		d.QuoteIdent(table), strings.Join(quoteAll(d, cols), ", "), vals)
}

func (d *MysqlDialect) Placeholder(index int) string {
	return "?"
}

func (d *MysqlDialect) ColumnType(t frame.Type) string {
	switch t {
	case frame.Int:
		return "BIGINT"
	case frame.Float:
		return "DOUBLE"
	case frame.Time:
		return "DATETIME"
	default:
		return "TEXT"
	}
}
