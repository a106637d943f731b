//go:build !cgo

package export

import "medman/internal/errors"

// SQLite is unavailable without cgo.
type SQLite struct{}

func (SQLite) Export(path string, r Report) error {
	return errors.New("SQLite export is not available in non-CGO builds. Export to .md or .json, or rebuild with CGO_ENABLED=1")
}
