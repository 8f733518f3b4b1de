package sink

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"csv-refine/internal/dataset"
	"csv-refine/internal/frame"
	"csv-refine/internal/logging"
)

// Item pairs a variant with its refined data for loading.
type Item struct {
	Spec  dataset.Spec
	Frame *frame.Frame
}

// LoadResult is the per-table report line for a load run.
type LoadResult struct {
	Table  string
	Target int
	Actual int
	Status string
	ErrMsg string
}

// Load pushes refined tables into the destination database. Each table is
// created if missing, truncated, and filled inside one transaction, then
// verified with a count query. A failing table is reported in its result
// and does not stop the others.
func Load(db *sql.DB, d Dialect, items []Item, log *zap.SugaredLogger, onProgress func()) ([]LoadResult, error) {
	if log == nil {
		log = logging.Nop()
	}

	var results []LoadResult
	for _, item := range items {
		res := loadOne(db, d, item, log)
		results = append(results, res)
		if onProgress != nil {
			onProgress()
		}
	}
	return results, nil
}

func loadOne(db *sql.DB, d Dialect, item Item, log *zap.SugaredLogger) LoadResult {
	table := item.Spec.TableName()
	f := item.Frame
	res := LoadResult{Table: table, Target: f.NumRows()}

	if _, err := db.Exec(d.CreateTableQuery(table, f.Columns())); err != nil {
		res.Status = "FAILED"
		res.ErrMsg = fmt.Sprintf("create table: %v", err)
		return res
	}
	if _, err := db.Exec(d.TruncateQuery(table)); err != nil {
		res.Status = "FAILED"
		res.ErrMsg = fmt.Sprintf("truncate: %v", err)
		return res
	}

	tx, err := db.Begin()
	if err != nil {
		res.Status = "FAILED"
		res.ErrMsg = fmt.Sprintf("begin: %v", err)
		return res
	}

	stmt, err := tx.Prepare(d.InsertQuery(table, f.Header()))
	if err != nil {
		tx.Rollback()
		res.Status = "FAILED"
		res.ErrMsg = fmt.Sprintf("prepare insert: %v", err)
		return res
	}

	for i := 0; i < f.NumRows(); i++ {
		if _, err := stmt.Exec(rowArgs(f, i)...); err != nil {
			stmt.Close()
			tx.Rollback()
			res.Status = "FAILED"
			res.ErrMsg = fmt.Sprintf("row %d: %v", i+1, err)
			return res
		}
	}
	stmt.Close()

	if err := tx.Commit(); err != nil {
		res.Status = "FAILED"
		res.ErrMsg = fmt.Sprintf("commit: %v", err)
		return res
	}

	// Verification
	var count int
	if err := db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", d.QuoteIdent(table))).Scan(&count); err != nil {
		res.Actual = res.Target
		res.Status = fmt.Sprintf("VERIFY_FAIL: %v", err)
		return res
	}
	res.Actual = count
	if count < res.Target {
		res.Status = fmt.Sprintf("PARTIAL: %d/%d", count, res.Target)
	} else {
		res.Status = "OK"
	}

	log.Infow("table loaded", "table", table, "rows", count)
	return res
}

// rowArgs converts one frame row into driver arguments. Missing cells
// become SQL NULLs; string, int64, float64 and time.Time bind natively.
func rowArgs(f *frame.Frame, i int) []any {
	cols := f.Columns()
	args := make([]any, len(cols))
	for j, c := range cols {
		args[j] = c.Cells[i]
	}
	return args
}
