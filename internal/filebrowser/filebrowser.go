// Package filebrowser lists the folders, music files and playlists of one
// directory for the file browser view.
package filebrowser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/llehouerou/crate/internal/tags"
	"github.com/llehouerou/crate/internal/viewnav"
)

// ErrNotDir is returned when SetPath targets something other than a
// directory.
var ErrNotDir = errors.New("not a directory")

// playlistMIMEs covers the extended M3U signature and its aliases.
var playlistMIMEs = []string{"application/vnd.apple.mpegurl", "audio/mpegurl", "audio/x-mpegurl"}

// Entry is one listed file or directory.
type Entry struct {
	Name       string
	Path       string
	IsDir      bool
	IsPlaylist bool
	// MIME is the sniffed content type; empty for directories.
	MIME string
}

// Image returns the icon handle shown for the entry.
func (e Entry) Image() string {
	switch {
	case e.IsDir:
		return viewnav.IconFolder
	case e.IsPlaylist:
		return viewnav.IconPlaylist
	default:
		return viewnav.IconTrack
	}
}

// Model holds the directory being browsed and its listing.
type Model struct {
	root    string
	path    string
	entries []Entry
}

// New returns a model showing root.
func New(root string) (*Model, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	m := &Model{root: abs}
	if err := m.SetPath(abs); err != nil {
		return nil, err
	}
	return m, nil
}

// Root returns the folder the browser started at.
func (m *Model) Root() string { return m.root }

// Path returns the directory being shown.
func (m *Model) Path() string { return m.path }

// Entries returns the listing: directories first, then files, each by name.
func (m *Model) Entries() []Entry { return m.entries }

// SetPath shows path. Setting the current path again re-reads it.
func (m *Model) SetPath(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", abs, ErrNotDir)
	}

	entries, err := list(abs)
	if err != nil {
		return err
	}
	m.path = abs
	m.entries = entries
	return nil
}

// Refresh re-reads the current directory.
func (m *Model) Refresh() error {
	return m.SetPath(m.path)
}

// Up moves to the parent directory. It reports false at the root.
func (m *Model) Up() (bool, error) {
	if m.path == m.root {
		return false, nil
	}
	return true, m.SetPath(filepath.Dir(m.path))
}

// Open enters e when it is a directory and reports whether it did.
func (m *Model) Open(e Entry) (bool, error) {
	if !e.IsDir {
		return false, nil
	}
	return true, m.SetPath(e.Path)
}

func list(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, d := range dirEntries {
		name := d.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		path := filepath.Join(dir, name)

		if d.IsDir() {
			entries = append(entries, Entry{Name: name, Path: path, IsDir: true})
			continue
		}

		e, ok := classify(path)
		if !ok {
			continue
		}
		e.Name = name
		entries = append(entries, e)
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		if a.IsDir != b.IsDir {
			if a.IsDir {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	})
	return entries, nil
}

// classify sniffs path and keeps audio files and playlists.
func classify(path string) (Entry, bool) {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return Entry{}, false
	}
	e := Entry{Path: path, MIME: mt.String()}

	if slices.ContainsFunc(playlistMIMEs, mt.Is) || isPlainPlaylist(path, mt) {
		e.IsPlaylist = true
		return e, true
	}
	if isAudio(mt) || (tags.IsMusicFile(path) && !mt.Is("text/plain")) {
		return e, true
	}
	return Entry{}, false
}

// isAudio reports whether mt or one of its parents is an audio type.
func isAudio(mt *mimetype.MIME) bool {
	for ; mt != nil; mt = mt.Parent() {
		if strings.HasPrefix(mt.String(), "audio/") || mt.Is("application/ogg") {
			return true
		}
	}
	return false
}

// isPlainPlaylist accepts header-less .m3u files, which sniff as text.
func isPlainPlaylist(path string, mt *mimetype.MIME) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return (ext == ".m3u" || ext == ".m3u8") && mt.Is("text/plain")
}
