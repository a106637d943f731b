//go:build cgo

package export

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.sqlite")

	require.NoError(t, SQLite{}.Export(path, sampleReport()))
	require.NoError(t, SQLite{}.Export(path, Report{Request: "search year:1"}))

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var requests int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM requests").Scan(&requests))
	assert.Equal(t, 2, requests)

	rows, err := db.Query("SELECT position, path, title, duration_ms, year, genre FROM results ORDER BY position")
	require.NoError(t, err)
	defer rows.Close()

	var positions []int
	for rows.Next() {
		var (
			position, durationMS, year int
			p, title, genre            string
		)
		require.NoError(t, rows.Scan(&position, &p, &title, &durationMS, &year, &genre))
		assert.Equal(t, "/music/a.mp3", p)
		assert.Equal(t, "Song", title)
		assert.Equal(t, 165000, durationMS)
		assert.Equal(t, 1999, year)
		assert.Equal(t, "Rock", genre)
		positions = append(positions, position)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []int{1, 2}, positions)
}
