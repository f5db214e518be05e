// Package library is the SQLite read model behind every library view:
// albums, artists, genres, tracks, play history and radios.
package library

import (
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound is returned when an id does not match a stored row.
var ErrNotFound = errors.New("not found")

type Track struct {
	ID           int64
	Path         string
	Mtime        int64
	Artist       string
	AlbumArtist  string
	Album        string
	Title        string
	DiscNumber   int
	TrackNumber  int
	Year         int
	Genre        string
	Composer     string
	Lyricist     string
	Comment      string
	Rating       int
	PlayCount    int
	LastPlayedAt time.Time
	AddedAt      time.Time
}

// Album is one (album artist, album) group. Its ID is the smallest track id
// in the group, which stays stable across rescans of unchanged files.
type Album struct {
	ID         int64
	Name       string
	Artist     string
	Year       int
	TrackCount int
	DiscCount  int
}

type Artist struct {
	Name       string
	AlbumCount int
}

type Genre struct {
	Name       string
	TrackCount int
}

type Library struct {
	db *sql.DB
}

func New(db *sql.DB) *Library {
	return &Library{db: db}
}

// executor is satisfied by both *sql.DB and *sql.Tx.
type executor interface {
	Exec(query string, args ...any) (sql.Result, error)
}

const trackColumns = `id, path, mtime, artist, album_artist, album, title, disc_number, track_number,
	year, genre, composer, lyricist, comment, rating, play_count, last_played_at, added_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrack(s rowScanner) (Track, error) {
	var t Track
	var disc, trackNum, year, lastPlayed sql.NullInt64
	var genre, composer, lyricist, comment sql.NullString
	var addedAt int64

	err := s.Scan(&t.ID, &t.Path, &t.Mtime, &t.Artist, &t.AlbumArtist, &t.Album, &t.Title,
		&disc, &trackNum, &year, &genre, &composer, &lyricist, &comment,
		&t.Rating, &t.PlayCount, &lastPlayed, &addedAt)
	if err != nil {
		return Track{}, err
	}
	t.DiscNumber = int(disc.Int64)
	t.TrackNumber = int(trackNum.Int64)
	t.Year = int(year.Int64)
	t.Genre = genre.String
	t.Composer = composer.String
	t.Lyricist = lyricist.String
	t.Comment = comment.String
	if lastPlayed.Valid {
		t.LastPlayedAt = time.Unix(lastPlayed.Int64, 0)
	}
	t.AddedAt = time.Unix(addedAt, 0)
	return t, nil
}

func collectTracks(rows *sql.Rows) ([]Track, error) {
	defer rows.Close()

	var tracks []Track
	for rows.Next() {
		t, err := scanTrack(rows)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}

// TrackByID returns a track by its ID.
func (l *Library) TrackByID(id int64) (*Track, error) {
	row := l.db.QueryRow(`SELECT `+trackColumns+` FROM library_tracks WHERE id = ?`, id)
	t, err := scanTrack(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// TrackByPath returns a track by its file path.
func (l *Library) TrackByPath(path string) (*Track, error) {
	row := l.db.QueryRow(`SELECT `+trackColumns+` FROM library_tracks WHERE path = ?`, path)
	t, err := scanTrack(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (l *Library) TrackCount() (int, error) {
	var count int
	err := l.db.QueryRow(`SELECT COUNT(*) FROM library_tracks`).Scan(&count)
	return count, err
}
