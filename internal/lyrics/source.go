package lyrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/llehouerou/crate/internal/tags"
)

// ErrNotFound is returned when a track has neither a sidecar file nor
// embedded lyrics.
var ErrNotFound = errors.New("no lyrics")

// Where lyrics were found.
const (
	SourceSidecar  = "sidecar"
	SourceEmbedded = "embedded"
)

// Load finds lyrics for the music file at audioPath: first an .lrc file
// with the same base name, then lyrics embedded in the tags. Embedded text
// without timestamps yields unsynced lines.
func Load(audioPath string) (*Lyrics, string, error) {
	if l, err := loadFromFile(lrcPathForAudio(audioPath)); err == nil && len(l.Lines) > 0 {
		return l, SourceSidecar, nil
	}

	t, err := tags.Read(audioPath)
	if err != nil {
		return nil, "", err
	}
	if strings.TrimSpace(t.Lyrics) == "" {
		return nil, "", ErrNotFound
	}

	l, err := ParseLRC(strings.NewReader(t.Lyrics))
	if err != nil {
		return nil, "", err
	}
	if len(l.Lines) == 0 {
		l = plainLyrics(t.Lyrics)
	}
	if l.Title == "" {
		l.Title = t.Title
	}
	if l.Artist == "" {
		l.Artist = t.Artist
	}
	if l.Album == "" {
		l.Album = t.Album
	}
	return l, SourceEmbedded, nil
}

// plainLyrics turns untimed text into lines at time 0.
func plainLyrics(text string) *Lyrics {
	l := &Lyrics{}
	for line := range strings.SplitSeq(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			l.Lines = append(l.Lines, Line{Text: line})
		}
	}
	return l
}

// lrcPathForAudio returns the expected .lrc file path for an audio file.
func lrcPathForAudio(audioPath string) string {
	ext := filepath.Ext(audioPath)
	return audioPath[:len(audioPath)-len(ext)] + ".lrc"
}

func loadFromFile(path string) (*Lyrics, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseLRC(f)
}
