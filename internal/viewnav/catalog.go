package viewnav

import "fmt"

// Icon handles used by the catalog and the child templates.
const (
	IconLyrics     = "view-media-lyrics"
	IconPlaylist   = "media-playlist-play"
	IconPlayCount  = "view-media-playcount"
	IconAlbumCover = "view-media-album-cover"
	IconArtist     = "view-media-artist"
	IconTrack      = "view-media-track"
	IconGenre      = "view-media-genre"
	IconFolder     = "document-open-folder"
	IconRadio      = "radio"
	IconDisc       = "media-optical-audio"
)

// NowPlayingView is the playlist/context page.
func NowPlayingView() Config {
	return contextConfig(Context, "Now Playing", IconLyrics)
}

// RecentlyPlayedView lists tracks by last play date, newest first.
func RecentlyPlayedView() Config {
	return listConfig(RecentlyPlayedTracks, "Recently Played", IconPlaylist,
		FilterByRecentlyPlayed, DataTrack,
		SortByLastPlayDate, SortDescending, MultipleAlbums, GroupFlat, RadioStyleTrack)
}

// FrequentlyPlayedView lists tracks by play frequency, most played first.
func FrequentlyPlayedView() Config {
	return listConfig(FrequentlyPlayedTracks, "Frequently Played", IconPlayCount,
		FilterByFrequentlyPlayed, DataTrack,
		SortByPlayFrequency, SortDescending, MultipleAlbums, GroupFlat, RadioStyleTrack)
}

// AlbumsView is the grid of every album.
func AlbumsView() Config {
	return gridConfig(AllAlbums, "Albums", IconAlbumCover,
		NoFilter, DataAlbum, IconDisc, true, true)
}

// ArtistsView is the grid of every artist.
func ArtistsView() Config {
	return gridConfig(AllArtists, "Artists", IconArtist,
		NoFilter, DataArtist, IconArtist, false, false)
}

// TracksView lists every track by title.
func TracksView() Config {
	return listConfig(AllTracks, "Tracks", IconTrack,
		NoFilter, DataTrack,
		SortByTitle, SortAscending, MultipleAlbums, GroupFlat, RadioStyleTrack)
}

// GenresView is the grid of every genre.
func GenresView() Config {
	return gridConfig(AllGenres, "Genres", IconGenre,
		NoFilter, DataGenre, IconGenre, false, false)
}

// FilesView is the filesystem browser.
func FilesView() Config {
	return fileBrowserConfig(FilesBrowser, "Files", IconFolder)
}

// RadiosView lists radio streams.
func RadiosView() Config {
	return listConfig(RadiosBrowser, "Radios", IconRadio,
		NoFilter, DataRadio,
		SortByTitle, SortAscending, MultipleAlbums, GroupFlat, RadioStyleRadio)
}

// Catalog is the ordered table of top-level views, one per menu entry.
type Catalog struct {
	entries []Config
	index   map[ViewKind]int
}

// DefaultCatalog returns the menu in display order.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		NowPlayingView(),
		RecentlyPlayedView(),
		FrequentlyPlayedView(),
		AlbumsView(),
		ArtistsView(),
		TracksView(),
		GenresView(),
		FilesView(),
		RadiosView(),
	)
}

// NewCatalog builds a catalog from entries. It panics on an empty table
// or duplicate kinds since both are programming errors.
func NewCatalog(entries ...Config) *Catalog {
	if len(entries) == 0 {
		panic("viewnav: empty catalog")
	}
	c := &Catalog{
		entries: make([]Config, len(entries)),
		index:   make(map[ViewKind]int, len(entries)),
	}
	for i, e := range entries {
		if _, dup := c.index[e.Kind]; dup {
			panic(fmt.Sprintf("viewnav: duplicate catalog entry %s", e.Kind))
		}
		e.Depth = 1
		c.entries[i] = e
		c.index[e.Kind] = i
	}
	return c
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// At returns the entry at menu position i.
func (c *Catalog) At(i int) (Config, error) {
	if i < 0 || i >= len(c.entries) {
		return Config{}, fmt.Errorf("catalog index %d of %d: %w", i, len(c.entries), ErrIndexOutOfRange)
	}
	return c.entries[i], nil
}

// Lookup returns the entry for kind.
func (c *Catalog) Lookup(kind ViewKind) (Config, error) {
	i, ok := c.index[kind]
	if !ok {
		return Config{}, fmt.Errorf("catalog has no %s view: %w", kind, ErrIndexOutOfRange)
	}
	return c.entries[i], nil
}

// IndexOf returns the menu position of kind, or -1.
func (c *Catalog) IndexOf(kind ViewKind) int {
	if i, ok := c.index[kind]; ok {
		return i
	}
	return -1
}

// First returns the entry the stack is seeded with.
func (c *Catalog) First() Config { return c.entries[0] }

// Entries returns a copy of the table in menu order.
func (c *Catalog) Entries() []Config {
	out := make([]Config, len(c.entries))
	copy(out, c.entries)
	return out
}
