package library

import (
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/llehouerou/crate/internal/db"
)

// Radio is a stored stream URL.
type Radio struct {
	ID           int64
	Name         string
	URL          string
	Image        string
	PlayCount    int
	LastPlayedAt time.Time
}

func scanRadio(s rowScanner) (Radio, error) {
	var r Radio
	var image sql.NullString
	var lastPlayed sql.NullInt64
	if err := s.Scan(&r.ID, &r.Name, &r.URL, &image, &r.PlayCount, &lastPlayed); err != nil {
		return Radio{}, err
	}
	r.Image = dbutil.NullStringValue(image)
	if lastPlayed.Valid {
		r.LastPlayedAt = time.Unix(lastPlayed.Int64, 0)
	}
	return r, nil
}

// Radios returns every radio ordered by name.
func (l *Library) Radios() ([]Radio, error) {
	rows, err := l.db.Query(`
		SELECT id, name, url, image, play_count, last_played_at
		FROM radios
		ORDER BY name COLLATE NOCASE, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var radios []Radio
	for rows.Next() {
		r, err := scanRadio(rows)
		if err != nil {
			return nil, err
		}
		radios = append(radios, r)
	}
	return radios, rows.Err()
}

func (l *Library) RadioByID(id int64) (*Radio, error) {
	row := l.db.QueryRow(`
		SELECT id, name, url, image, play_count, last_played_at FROM radios WHERE id = ?
	`, id)
	r, err := scanRadio(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// SaveRadio inserts r when r.ID is 0 and updates it otherwise. It returns
// the stored id.
func (l *Library) SaveRadio(r Radio) (int64, error) {
	if r.ID == 0 {
		res, err := l.db.Exec(`
			INSERT INTO radios (name, url, image, added_at) VALUES (?, ?, ?, ?)
		`, r.Name, r.URL, dbutil.NullString(r.Image), time.Now().Unix())
		if err != nil {
			return 0, err
		}
		return res.LastInsertId()
	}

	res, err := l.db.Exec(`
		UPDATE radios SET name = ?, url = ?, image = ? WHERE id = ?
	`, r.Name, r.URL, dbutil.NullString(r.Image), r.ID)
	if err != nil {
		return 0, err
	}
	return r.ID, requireAffected(res)
}

func (l *Library) DeleteRadio(id int64) error {
	res, err := l.db.Exec(`DELETE FROM radios WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
