package sink

import (
	"fmt"
	"strings"

	"csv-refine/internal/frame"
)

type OracleDialect struct{}

// Oracle folds unquoted identifiers to upper case, so quote the upper
// cased name to keep every generated statement consistent.
func (d *OracleDialect) QuoteIdent(name string) string {
	return `"` + strings.ToUpper(name) + `"`
}

func (d *OracleDialect) CreateTableQuery(table string, cols []*frame.Column) string {
	// No IF NOT EXISTS; swallow ORA-00955 (name already used) instead.
	return fmt.Sprintf(
		"BEGIN EXECUTE IMMEDIATE 'CREATE TABLE %s (%s)'; EXCEPTION WHEN OTHERS THEN IF SQLCODE != -955 THEN RAISE; END IF; END;",
		d.QuoteIdent(table), columnDefs(d, cols))
}

func (d *OracleDialect) TruncateQuery(table string) string {
	return fmt.Sprintf("TRUNCATE TABLE %s", d.QuoteIdent(table))
}

func (d *OracleDialect) InsertQuery(table string, cols []string) string {
	vals := GeneratePlaceholders(len(cols), d.Placeholder)
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		d.QuoteIdent(table), strings.Join(quoteAll(d, cols), ", "), vals)
}

func (d *OracleDialect) Placeholder(index int) string {
	// Oracle uses :1, :2, etc. (1-based index)
	return fmt.Sprintf(":%d", index+1)
}

func (d *OracleDialect) ColumnType(t frame.Type) string {
	switch t {
	case frame.Int:
		return "NUMBER(19)"
	case frame.Float:
		return "BINARY_DOUBLE"
	case frame.Time:
		return "TIMESTAMP"
	default:
		return "VARCHAR2(4000)"
	}
}
