package frame

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"csv-refine/internal/errors"
)

// Write exports the frame as a comma-delimited file with a header row and
// no index column. The content is staged in a temporary file and renamed
// into place on success, so a failed export never leaves a partial file.
func Write(f *Frame, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, errors.IO, "creating output directory for %s", path)
	}

	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return errors.Wrap(err, errors.IO, "staging %s", path)
	}
	defer pending.Cleanup()

	w := csv.NewWriter(pending)
	if err := w.Write(f.Header()); err != nil {
		return errors.Wrap(err, errors.IO, "%s: writing header", path)
	}
	for i := 0; i < f.NumRows(); i++ {
		if err := w.Write(f.Record(i)); err != nil {
			return errors.Wrap(err, errors.IO, "%s: writing row %d", path, i+1)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.Wrap(err, errors.IO, "%s: flushing", path)
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return errors.Wrap(err, errors.IO, "replacing %s", path)
	}
	return nil
}
