// Package catalog holds the in-memory media catalog produced by a scan.
package catalog

import (
	"encoding/json"
	"time"
)

// UnknownGenre is the genre of a record whose tags carry none from the supported vocabulary.
const UnknownGenre = "Unknown"

// Record is the decoded metadata of a single media file.
type Record struct {
	Path     string        `json:"path"`
	Size     uint64        `json:"file_size"`
	Title    string        `json:"title"`
	Author   string        `json:"author"`
	Duration time.Duration `json:"duration"`
	Album    string        `json:"album"`
	Year     uint16        `json:"year"`
	Genre    string        `json:"genre"`
}

// NewRecord returns a record for path with every other field at its absent value.
func NewRecord(path string) *Record {
	return &Record{
		Path:  path,
		Genre: UnknownGenre,
	}
}

// MarshalJSON writes the duration in its human form ("2m45s") instead of nanoseconds.
func (r Record) MarshalJSON() ([]byte, error) {
	type plain Record

	return json.Marshal(struct {
		plain
		Duration string `json:"duration"`
	}{
		plain:    plain(r),
		Duration: r.Duration.String(),
	})
}
