// Package export writes query results to documents.
package export

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"medman/internal/catalog"
	"medman/internal/errors"
)

// Report is a result set together with the request text that produced it.
type Report struct {
	Request string
	Results []*catalog.Record
}

// Exporter writes a report to the file at path, creating or replacing it.
type Exporter interface {
	Export(path string, r Report) error
}

// Writer is an exporter that can also stream its document.
type Writer interface {
	Exporter
	Write(w io.Writer, r Report) error
}

// ForPath picks the exporter matching the extension of path.
func ForPath(path string) (Exporter, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return Markdown{}, nil
	case ".json":
		return JSON{Indent: 2}, nil
	case ".sqlite", ".sqlite3", ".db":
		return SQLite{}, nil
	default:
		return nil, errors.Errorf("unsupported export format for %q: use .md, .json or .sqlite", path)
	}
}

func writeFile(path string, r Report, w Writer) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WithStackTrace(err)
	}

	if err := w.Write(f, r); err != nil {
		f.Close()
		return err
	}

	return errors.WithStackTrace(f.Close())
}
