// Package csvfile persists the contact and user tables as headered CSV
// snapshots. Every save rewrites the whole file via a temp file and rename;
// there is no locking across processes.
package csvfile

import (
	"encoding/csv"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jasongilchristp/xrm-by-json/internal/apperr"
)

// readTable returns the data rows of the CSV at path, skipping the header.
// A missing file is an empty table, not an error.
func readTable(path string, width int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, apperr.Persistence("open "+filepath.Base(path), err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = width
	records, err := r.ReadAll()
	if err != nil {
		return nil, apperr.Persistence("read "+filepath.Base(path), err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[1:], nil
}

// writeTable overwrites the CSV at path with header plus rows. The write
// goes to a temp file in the same directory first and is renamed into
// place, so readers never observe a half-written table.
func writeTable(path string, header []string, rows [][]string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return apperr.Persistence("write "+filepath.Base(path), err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	_ = w.Write(header)
	_ = w.WriteAll(rows) // WriteAll flushes
	if err := w.Error(); err != nil {
		tmp.Close()
		return apperr.Persistence("write "+filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		return apperr.Persistence("write "+filepath.Base(path), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return apperr.Persistence("write "+filepath.Base(path), err)
	}
	return nil
}
