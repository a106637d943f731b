package scan

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
	"github.com/sirupsen/logrus"
	"github.com/tcolgate/mp3"

	"medman/internal/catalog"
	mderrors "medman/internal/errors"
)

// Decoder turns one media file into a catalog record.
type Decoder interface {
	Decode(path string) (*catalog.Record, error)
}

// TagDecoder reads embedded tags with dhowden/tag and, for MP3 files, sums frame durations.
type TagDecoder struct {
	Log logrus.FieldLogger
}

// Decode fails when the file cannot be read or its tags are corrupt. A file without tags
// yields a record with only path and size set. A duration that cannot be decoded stays zero.
func (d TagDecoder) Decode(path string) (*catalog.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, mderrors.WithStackTrace(err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, mderrors.WithStackTrace(err)
	}

	rec := catalog.NewRecord(path)
	rec.Size = uint64(info.Size())

	m, err := tag.ReadFrom(f)
	switch {
	case errors.Is(err, tag.ErrNoTagsFound):
	case err != nil:
		return nil, mderrors.WithStackTraceAndPrefix(err, "reading tags")
	default:
		applyTags(rec, m)
	}

	if strings.EqualFold(filepath.Ext(path), ".mp3") {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, mderrors.WithStackTrace(err)
		}

		dur, err := mp3Duration(bufio.NewReader(f))
		if err != nil {
			d.log().WithError(err).WithField("path", path).Debug("Could not decode MP3 frames, leaving duration empty")
		} else {
			rec.Duration = dur.Round(time.Millisecond)
		}
	}

	return rec, nil
}

func (d TagDecoder) log() logrus.FieldLogger {
	if d.Log == nil {
		return logrus.StandardLogger()
	}
	return d.Log
}

func applyTags(rec *catalog.Record, m tag.Metadata) {
	artist := m.Artist()
	if artist == "" {
		artist = m.AlbumArtist()
	}

	rec.Title = cleanText(m.Title())
	rec.Author = cleanText(artist)
	rec.Album = cleanText(m.Album())
	rec.Genre = NormalizeGenre(m.Genre())

	if y := m.Year(); y > 0 && y <= 65535 {
		rec.Year = uint16(y)
	}
}

// cleanText drops NUL padding and replaces spaces with underscores so values can be written
// in whitespace-separated queries.
func cleanText(s string) string {
	s = strings.TrimSpace(strings.Trim(s, "\x00"))
	return strings.ReplaceAll(s, " ", "_")
}

func mp3Duration(r io.Reader) (time.Duration, error) {
	var (
		dec     = mp3.NewDecoder(r)
		frame   mp3.Frame
		skipped int
		total   time.Duration
	)

	for {
		if err := dec.Decode(&frame, &skipped); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return total, nil
			}
			return total, err
		}
		total += frame.Duration()
	}
}
