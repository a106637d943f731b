package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medman/internal/catalog"
)

// id3v1File returns audio-less content followed by an ID3v1 tag.
func id3v1File(title, artist, album, year string, genre byte) []byte {
	field := func(s string, n int) []byte {
		b := make([]byte, n)
		copy(b, s)
		return b
	}

	data := make([]byte, 256)
	data = append(data, "TAG"...)
	data = append(data, field(title, 30)...)
	data = append(data, field(artist, 30)...)
	data = append(data, field(album, 30)...)
	data = append(data, field(year, 4)...)
	data = append(data, field("", 30)...)
	data = append(data, genre)
	return data
}

func TestTagDecoderReadsID3v1(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.mp3")
	content := id3v1File("My Song", "The Band", "Greatest", "1999", 17)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	log, _ := test.NewNullLogger()

	rec, err := TagDecoder{Log: log}.Decode(path)

	require.NoError(t, err)
	assert.Equal(t, path, rec.Path)
	assert.Equal(t, uint64(len(content)), rec.Size)
	assert.Equal(t, "My_Song", rec.Title)
	assert.Equal(t, "The_Band", rec.Author)
	assert.Equal(t, "Greatest", rec.Album)
	assert.Equal(t, uint16(1999), rec.Year)
	assert.Equal(t, "Rock", rec.Genre)
}

func TestTagDecoderRejectsTruncatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.mp3")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := TagDecoder{}.Decode(path)

	assert.Error(t, err)
}

func TestTagDecoderMissingFile(t *testing.T) {
	_, err := TagDecoder{}.Decode(filepath.Join(t.TempDir(), "missing.mp3"))

	assert.Error(t, err)
}

func TestNormalizeGenre(t *testing.T) {
	tests := map[string]string{
		"Rock":         "Rock",
		"rock":         "Rock",
		"Hip-Hop":      "HipHop",
		"R&B":          "RAndB",
		"New Age":      "NewAge",
		"Death Metal":  "DeathMetal",
		"A capella":    "ACapela",
		"Dance Hall":   "DanceHall",
		"Electronic":   "Electronic",
		"Classic Rock": catalog.UnknownGenre,
		"":             catalog.UnknownGenre,
		"Vaporwave":    catalog.UnknownGenre,
	}

	for in, expected := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, expected, NormalizeGenre(in))
		})
	}
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "My_Song", cleanText("My Song\x00\x00"))
	assert.Equal(t, "A__B", cleanText(" A  B "))
	assert.Empty(t, cleanText("\x00\x00"))
}
