//go:build cgo

package export

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"medman/internal/errors"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS requests(
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	request TEXT,
	result_count INTEGER,
	exported_at TEXT
);
CREATE TABLE IF NOT EXISTS results(
	request_id INTEGER REFERENCES requests(id),
	position INTEGER,
	path TEXT,
	file_size INTEGER,
	title TEXT,
	author TEXT,
	duration_ms INTEGER,
	album TEXT,
	year INTEGER,
	genre TEXT
);`

// SQLite appends a report to a SQLite database: one requests row and one results row per
// result, duplicates included. Earlier exports in the same file are kept.
type SQLite struct{}

func (SQLite) Export(path string, r Report) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return errors.WithStackTrace(err)
	}
	defer db.Close()

	if _, err := db.Exec(sqliteSchema); err != nil {
		return errors.WithStackTraceAndPrefix(err, "creating schema in %s", path)
	}

	tx, err := db.Begin()
	if err != nil {
		return errors.WithStackTrace(err)
	}

	res, err := tx.Exec("INSERT INTO requests (request, result_count, exported_at) VALUES (?, ?, ?)",
		r.Request, len(r.Results), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		tx.Rollback()
		return errors.WithStackTrace(err)
	}
	requestID, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return errors.WithStackTrace(err)
	}

	stmt, err := tx.Prepare("INSERT INTO results (request_id, position, path, file_size, title, author, duration_ms, album, year, genre) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return errors.WithStackTrace(err)
	}
	defer stmt.Close()

	for i, m := range r.Results {
		_, err = stmt.Exec(requestID, i+1, m.Path, int64(m.Size), m.Title, m.Author, m.Duration.Milliseconds(), m.Album, int(m.Year), m.Genre)
		if err != nil {
			tx.Rollback()
			return errors.WithStackTraceAndPrefix(err, "writing %s", m.Path)
		}
	}

	return errors.WithStackTrace(tx.Commit())
}
