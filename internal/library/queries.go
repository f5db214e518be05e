package library

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	dbutil "github.com/llehouerou/crate/internal/db"
)

// AlbumFilter narrows Albums. Empty fields match everything.
type AlbumFilter struct {
	Artist string
	Genre  string
}

func (f AlbumFilter) where() (string, []any) {
	var conds []string
	var args []any
	if f.Artist != "" {
		conds = append(conds, "(album_artist = ? OR artist = ?)")
		args = append(args, f.Artist, f.Artist)
	}
	if f.Genre != "" {
		conds = append(conds, "genre = ?")
		args = append(args, f.Genre)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// Albums returns albums matching f, ordered by name.
func (l *Library) Albums(f AlbumFilter) ([]Album, error) {
	where, args := f.where()
	rows, err := l.db.Query(`
		SELECT MIN(id), album, album_artist, MAX(year), COUNT(*), COUNT(DISTINCT COALESCE(disc_number, 1))
		FROM library_tracks
		`+where+`
		GROUP BY album_artist, album
		ORDER BY album COLLATE NOCASE, album_artist COLLATE NOCASE
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var albums []Album
	for rows.Next() {
		var a Album
		var year sql.NullInt64
		if err := rows.Scan(&a.ID, &a.Name, &a.Artist, &year, &a.TrackCount, &a.DiscCount); err != nil {
			return nil, err
		}
		a.Year = int(dbutil.NullInt64Value(year))
		albums = append(albums, a)
	}
	return albums, rows.Err()
}

// Artists returns album artists, restricted to genre when it is not empty.
func (l *Library) Artists(genre string) ([]Artist, error) {
	where := ""
	var args []any
	if genre != "" {
		where = "WHERE genre = ?"
		args = append(args, genre)
	}

	rows, err := l.db.Query(`
		SELECT album_artist, COUNT(DISTINCT album)
		FROM library_tracks
		`+where+`
		GROUP BY album_artist
		ORDER BY album_artist COLLATE NOCASE
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var artists []Artist
	for rows.Next() {
		var a Artist
		if err := rows.Scan(&a.Name, &a.AlbumCount); err != nil {
			return nil, err
		}
		artists = append(artists, a)
	}
	return artists, rows.Err()
}

// Genres returns every non-empty genre with its track count.
func (l *Library) Genres() ([]Genre, error) {
	rows, err := l.db.Query(`
		SELECT genre, COUNT(*)
		FROM library_tracks
		WHERE genre IS NOT NULL AND genre != ''
		GROUP BY genre
		ORDER BY genre COLLATE NOCASE
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var genres []Genre
	for rows.Next() {
		var g Genre
		if err := rows.Scan(&g.Name, &g.TrackCount); err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

// Tracks returns every track ordered by title.
func (l *Library) Tracks() ([]Track, error) {
	rows, err := l.db.Query(`
		SELECT ` + trackColumns + `
		FROM library_tracks
		ORDER BY title COLLATE NOCASE, id
	`)
	if err != nil {
		return nil, err
	}
	return collectTracks(rows)
}

// AlbumTracks returns the tracks of the album identified by albumID (see
// Album.ID) in disc then track order.
func (l *Library) AlbumTracks(albumID int64) ([]Track, error) {
	var albumArtist, album string
	err := l.db.QueryRow(`
		SELECT album_artist, album FROM library_tracks WHERE id = ?
	`, albumID).Scan(&albumArtist, &album)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := l.db.Query(`
		SELECT `+trackColumns+`
		FROM library_tracks
		WHERE album_artist = ? AND album = ?
		ORDER BY COALESCE(disc_number, 1), track_number, title COLLATE NOCASE
	`, albumArtist, album)
	if err != nil {
		return nil, err
	}
	return collectTracks(rows)
}

// RecentlyPlayed returns played tracks, newest play first. limit <= 0
// means no limit.
func (l *Library) RecentlyPlayed(limit int) ([]Track, error) {
	rows, err := l.db.Query(`
		SELECT `+trackColumns+`
		FROM library_tracks
		WHERE last_played_at IS NOT NULL
		ORDER BY last_played_at DESC, id
		LIMIT ?
	`, sqlLimit(limit))
	if err != nil {
		return nil, err
	}
	return collectTracks(rows)
}

// FrequentlyPlayed returns played tracks, most played first.
func (l *Library) FrequentlyPlayed(limit int) ([]Track, error) {
	rows, err := l.db.Query(`
		SELECT `+trackColumns+`
		FROM library_tracks
		WHERE play_count > 0
		ORDER BY play_count DESC, last_played_at DESC, id
		LIMIT ?
	`, sqlLimit(limit))
	if err != nil {
		return nil, err
	}
	return collectTracks(rows)
}

func sqlLimit(limit int) int {
	if limit <= 0 {
		return -1
	}
	return limit
}

// RecordPlay bumps the play counter of a track and stamps its play dates.
func (l *Library) RecordPlay(id int64, at time.Time) error {
	res, err := l.db.Exec(`
		UPDATE library_tracks SET
			play_count = play_count + 1,
			last_played_at = ?,
			first_played_at = COALESCE(first_played_at, ?)
		WHERE id = ?
	`, at.Unix(), at.Unix(), id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// UpdateTrack stores the user-editable fields of t. Paths, play statistics
// and timestamps are left untouched.
func (l *Library) UpdateTrack(t Track) error {
	res, err := l.db.Exec(`
		UPDATE library_tracks SET
			title = ?, artist = ?, album_artist = ?, album = ?, genre = ?,
			composer = ?, lyricist = ?, comment = ?,
			year = ?, disc_number = ?, track_number = ?, rating = ?,
			updated_at = ?
		WHERE id = ?
	`, t.Title, t.Artist, t.AlbumArtist, t.Album, dbutil.NullString(t.Genre),
		dbutil.NullString(t.Composer), dbutil.NullString(t.Lyricist), dbutil.NullString(t.Comment),
		dbutil.NullInt64(int64(t.Year)), dbutil.NullInt64(int64(t.DiscNumber)), dbutil.NullInt64(int64(t.TrackNumber)),
		t.Rating, time.Now().Unix(), t.ID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
