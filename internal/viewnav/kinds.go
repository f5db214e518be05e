// Package viewnav decides which library view is displayed and how to get
// from one view to another.
//
// The Engine keeps a stack of view configurations. Hosts feed it requests
// (select a top-level view, open a child item, go back) and receive the
// ordered list of events they must act on. Drill-downs that need an
// intermediate view are split in two: the ancestor is activated first and
// the child waits until the host calls ConfirmViewLoaded.
package viewnav

// ViewKind identifies a logical view.
type ViewKind int

const (
	UnknownView ViewKind = iota

	// Top-level views, one per menu entry.
	Context
	RecentlyPlayedTracks
	FrequentlyPlayedTracks
	AllAlbums
	AllArtists
	AllTracks
	AllGenres
	FilesBrowser
	RadiosBrowser

	// Drill-down views.
	OneAlbum
	OneArtist
	OneAlbumFromArtist
	OneArtistFromGenre
	OneAlbumFromArtistAndGenre
	AllArtistsFromGenre
)

var viewKindNames = map[ViewKind]string{
	UnknownView:                "unknown",
	Context:                    "now-playing",
	RecentlyPlayedTracks:       "recently-played",
	FrequentlyPlayedTracks:     "frequently-played",
	AllAlbums:                  "albums",
	AllArtists:                 "artists",
	AllTracks:                  "tracks",
	AllGenres:                  "genres",
	FilesBrowser:               "files",
	RadiosBrowser:              "radios",
	OneAlbum:                   "album",
	OneArtist:                  "artist",
	OneAlbumFromArtist:         "artist-album",
	OneArtistFromGenre:         "genre-artist",
	OneAlbumFromArtistAndGenre: "genre-artist-album",
	AllArtistsFromGenre:        "genre-artists",
}

func (k ViewKind) String() string {
	if name, ok := viewKindNames[k]; ok {
		return name
	}
	return viewKindNames[UnknownView]
}

// ParseViewKind returns the kind whose String() is name.
func ParseViewKind(name string) (ViewKind, bool) {
	for k, n := range viewKindNames {
		if n == name && k != UnknownView {
			return k, true
		}
	}
	return UnknownView, false
}

// Presentation selects which activation event a configuration produces.
type Presentation int

const (
	PresentationUnknown Presentation = iota
	PresentationContext
	PresentationGrid
	PresentationList
	PresentationFileBrowser
)

func (p Presentation) String() string {
	switch p {
	case PresentationContext:
		return "context"
	case PresentationGrid:
		return "grid"
	case PresentationList:
		return "list"
	case PresentationFileBrowser:
		return "file-browser"
	case PresentationUnknown:
	}
	return "unknown"
}

// FilterType describes how the underlying dataset is filtered.
type FilterType int

const (
	FilterUnknown FilterType = iota
	NoFilter
	FilterByID
	FilterByArtist
	FilterByGenre
	FilterByGenreAndArtist
	FilterByRecentlyPlayed
	FilterByFrequentlyPlayed
)

func (f FilterType) String() string {
	switch f {
	case NoFilter:
		return "none"
	case FilterByID:
		return "id"
	case FilterByArtist:
		return "artist"
	case FilterByGenre:
		return "genre"
	case FilterByGenreAndArtist:
		return "genre+artist"
	case FilterByRecentlyPlayed:
		return "recently-played"
	case FilterByFrequentlyPlayed:
		return "frequently-played"
	case FilterUnknown:
	}
	return "unknown"
}

// DataKind is the entity type a view lists, or the type of a child item
// the user asked to open.
type DataKind int

const (
	DataUnknown DataKind = iota
	DataTrack
	DataAlbum
	DataArtist
	DataGenre
	DataLyricist
	DataComposer
	DataFileName
	DataRadio
	DataContainer
)

func (d DataKind) String() string {
	switch d {
	case DataTrack:
		return "track"
	case DataAlbum:
		return "album"
	case DataArtist:
		return "artist"
	case DataGenre:
		return "genre"
	case DataLyricist:
		return "lyricist"
	case DataComposer:
		return "composer"
	case DataFileName:
		return "file"
	case DataRadio:
		return "radio"
	case DataContainer:
		return "container"
	case DataUnknown:
	}
	return "unknown"
}

// SortKey names the column a list view is sorted by. The engine passes it
// through untouched.
type SortKey int

const (
	SortByTitle SortKey = iota
	SortByLastPlayDate
	SortByPlayFrequency
)

// SortOrder is the direction of SortKey.
type SortOrder int

const (
	SortAscending SortOrder = iota
	SortDescending
	NoSort
)

// AlbumCardinality tells list views whether they show a single album.
type AlbumCardinality int

const (
	MultipleAlbums AlbumCardinality = iota
	SingleAlbum
)

// AlbumGrouping controls disc headers in album track lists.
type AlbumGrouping int

const (
	GroupFlat AlbumGrouping = iota
	GroupByDisc
)

// RadioStyle tells list views whether rows are tracks or radio streams.
type RadioStyle int

const (
	RadioStyleTrack RadioStyle = iota
	RadioStyleRadio
)
