// Package tags reads the metadata the library indexes from music files.
package tags

import (
	"path/filepath"
	"strconv"
	"strings"
)

// musicExts are the lowercase extensions the library indexes.
var musicExts = map[string]bool{
	".mp3":  true,
	".flac": true,
	".opus": true,
	".ogg":  true,
	".oga":  true,
	".m4a":  true,
	".mp4":  true,
}

// Tag contains the tag metadata of one music file.
type Tag struct {
	Path        string
	Title       string
	Artist      string
	AlbumArtist string
	Album       string
	Genre       string
	Composer    string
	Lyricist    string
	Comment     string
	Lyrics      string

	TrackNumber int
	TotalTracks int
	DiscNumber  int
	TotalDiscs  int

	// Date is the release date (YYYY-MM-DD or YYYY).
	Date string
}

// Year returns the leading year of Date, or 0.
func (t *Tag) Year() int {
	year, _, _ := strings.Cut(t.Date, "-")
	y, err := strconv.Atoi(year)
	if err != nil || y < 0 {
		return 0
	}
	return y
}

// IsMusicFile reports whether path has an indexed extension.
func IsMusicFile(path string) bool {
	return musicExts[strings.ToLower(filepath.Ext(path))]
}
