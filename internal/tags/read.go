package tags

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/dhowden/tag"
)

// lyricistKeys are the raw frame names carrying the lyricist, per container.
var lyricistKeys = []string{"TEXT", "TXT", "lyricist", "LYRICIST"}

// Read reads tag metadata from a music file.
func Read(path string) (*Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, err
	}

	title := m.Title()
	if title == "" {
		title = filepath.Base(path)
	}

	track, totalTracks := m.Track()
	disc, totalDiscs := m.Disc()

	albumArtist := m.AlbumArtist()
	if albumArtist == "" {
		albumArtist = m.Artist()
	}

	return &Tag{
		Path:        path,
		Title:       title,
		Artist:      m.Artist(),
		AlbumArtist: albumArtist,
		Album:       m.Album(),
		Genre:       m.Genre(),
		Composer:    m.Composer(),
		Lyricist:    rawString(m.Raw(), lyricistKeys...),
		Comment:     m.Comment(),
		Lyrics:      m.Lyrics(),
		Date:        yearToDate(m.Year()),
		TrackNumber: track,
		TotalTracks: totalTracks,
		DiscNumber:  disc,
		TotalDiscs:  totalDiscs,
	}, nil
}

// rawString returns the first string value found under any of keys.
func rawString(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := raw[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// yearToDate converts a year integer to a date string.
// Returns empty string for year 0.
func yearToDate(year int) string {
	if year == 0 {
		return ""
	}
	return strconv.Itoa(year)
}
