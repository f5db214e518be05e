package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS navigation_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			top_level_view TEXT NOT NULL,
			folder_path TEXT
		);

		CREATE TABLE IF NOT EXISTS library_sources (
			path TEXT PRIMARY KEY,
			added_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS library_tracks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			path TEXT NOT NULL UNIQUE,
			mtime INTEGER NOT NULL,
			artist TEXT NOT NULL,
			album_artist TEXT NOT NULL,
			album TEXT NOT NULL,
			title TEXT NOT NULL,
			disc_number INTEGER,
			track_number INTEGER,
			year INTEGER,
			genre TEXT,
			composer TEXT,
			lyricist TEXT,
			comment TEXT,
			rating INTEGER NOT NULL DEFAULT 0,
			play_count INTEGER NOT NULL DEFAULT 0,
			first_played_at INTEGER,
			last_played_at INTEGER,
			added_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_tracks_album_artist ON library_tracks(album_artist);
		CREATE INDEX IF NOT EXISTS idx_tracks_album_artist_album ON library_tracks(album_artist, album);
		CREATE INDEX IF NOT EXISTS idx_tracks_genre ON library_tracks(genre);
		CREATE INDEX IF NOT EXISTS idx_tracks_last_played ON library_tracks(last_played_at DESC);
		CREATE INDEX IF NOT EXISTS idx_tracks_play_count ON library_tracks(play_count DESC);

		CREATE TABLE IF NOT EXISTS radios (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			url TEXT NOT NULL UNIQUE,
			image TEXT,
			play_count INTEGER NOT NULL DEFAULT 0,
			last_played_at INTEGER,
			added_at INTEGER NOT NULL
		);
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
