package library

import (
	"database/sql"
	"strings"
	"time"

	dbutil "github.com/llehouerou/crate/internal/db"
)

// Sources returns all configured library source paths.
func (l *Library) Sources() ([]string, error) {
	rows, err := l.db.Query(`SELECT path FROM library_sources ORDER BY added_at, path`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sources []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		sources = append(sources, path)
	}
	return sources, rows.Err()
}

// AddSource adds a library source path. Adding an existing path is a no-op.
func (l *Library) AddSource(path string) error {
	_, err := l.db.Exec(`
		INSERT OR IGNORE INTO library_sources (path, added_at) VALUES (?, ?)
	`, path, time.Now().Unix())
	return err
}

// RemoveSource removes a library source path and all tracks under it.
func (l *Library) RemoveSource(path string) error {
	prefix := sourcePrefix(path)

	return dbutil.WithTx(l.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM library_tracks WHERE path LIKE ?`, prefix+"%"); err != nil {
			return err
		}
		_, err := tx.Exec(`DELETE FROM library_sources WHERE path = ?`, path)
		return err
	})
}

// TrackCountBySource returns the number of tracks under a source path.
func (l *Library) TrackCountBySource(path string) (int, error) {
	var count int
	err := l.db.QueryRow(`
		SELECT COUNT(*) FROM library_tracks WHERE path LIKE ?
	`, sourcePrefix(path)+"%").Scan(&count)
	return count, err
}

// SeedSources adds the configured sources when none are stored yet, so the
// config file only bootstraps the list.
func (l *Library) SeedSources(sources []string) error {
	var count int
	if err := l.db.QueryRow(`SELECT COUNT(*) FROM library_sources`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, source := range sources {
		if source != "" {
			if err := l.AddSource(source); err != nil {
				return err
			}
		}
	}
	return nil
}

func sourcePrefix(path string) string {
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}
	return path
}
