package viewnav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_Order(t *testing.T) {
	c := DefaultCatalog()

	want := []ViewKind{
		Context, RecentlyPlayedTracks, FrequentlyPlayedTracks, AllAlbums,
		AllArtists, AllTracks, AllGenres, FilesBrowser, RadiosBrowser,
	}
	require.Equal(t, len(want), c.Len())
	for i, kind := range want {
		entry, err := c.At(i)
		require.NoError(t, err)
		assert.Equal(t, kind, entry.Kind, "entry %d", i)
		assert.True(t, entry.Valid)
		assert.Equal(t, 1, entry.Depth)
		assert.Equal(t, i, c.IndexOf(kind))
	}
	assert.Equal(t, -1, c.IndexOf(OneAlbum))
}

func TestCatalog_PresentationPerEntry(t *testing.T) {
	tests := []struct {
		build func() Config
		want  Presentation
		data  DataKind
	}{
		{NowPlayingView, PresentationContext, DataUnknown},
		{RecentlyPlayedView, PresentationList, DataTrack},
		{FrequentlyPlayedView, PresentationList, DataTrack},
		{AlbumsView, PresentationGrid, DataAlbum},
		{ArtistsView, PresentationGrid, DataArtist},
		{TracksView, PresentationList, DataTrack},
		{GenresView, PresentationGrid, DataGenre},
		{FilesView, PresentationFileBrowser, DataUnknown},
		{RadiosView, PresentationList, DataRadio},
	}
	for _, tt := range tests {
		c := tt.build()
		t.Run(c.Kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, c.Presentation)
			assert.Equal(t, tt.data, c.DataKind)
			assert.NotEmpty(t, c.Title)
			assert.NotEmpty(t, c.MainImage)
		})
	}
}

func TestCatalog_PlayHistoryViewsSortDescending(t *testing.T) {
	recent := RecentlyPlayedView()
	assert.Equal(t, SortByLastPlayDate, recent.SortKey)
	assert.Equal(t, SortDescending, recent.SortOrder)
	assert.Equal(t, FilterByRecentlyPlayed, recent.Filter)

	frequent := FrequentlyPlayedView()
	assert.Equal(t, SortByPlayFrequency, frequent.SortKey)
	assert.Equal(t, SortDescending, frequent.SortOrder)

	assert.Equal(t, RadioStyleRadio, RadiosView().RadioStyle)
	assert.Equal(t, RadioStyleTrack, TracksView().RadioStyle)
}

func TestNewCatalog_PanicsOnDuplicates(t *testing.T) {
	assert.Panics(t, func() { NewCatalog(AlbumsView(), AlbumsView()) })
	assert.Panics(t, func() { NewCatalog() })
}

func TestCatalog_EntriesIsACopy(t *testing.T) {
	c := DefaultCatalog()
	entries := c.Entries()
	entries[0].Title = "changed"

	first := c.First()
	assert.Equal(t, "Now Playing", first.Title)
}

func TestTemplates_EveryDrillDownKind(t *testing.T) {
	templates := DefaultTemplates()
	ancestry := DefaultAncestry()
	catalog := DefaultCatalog()

	for kind := range templates {
		c, err := templates.Get(kind)
		require.NoError(t, err)
		assert.Equal(t, kind, c.Kind)
		assert.True(t, c.Valid)
		assert.Empty(t, c.Title, "templates are filled at request time")

		_, ok := ancestry.Parent(kind)
		assert.True(t, ok, "%s needs a parent", kind)

		_, err = catalog.Lookup(ancestry.Root(kind))
		assert.NoError(t, err, "root of %s must be a catalog view", kind)
	}

	_, err := templates.Get(AllAlbums)
	assert.Error(t, err)
}

func TestAncestry_Chain(t *testing.T) {
	a := DefaultAncestry()

	assert.Equal(t,
		[]ViewKind{AllGenres, AllArtistsFromGenre, OneArtistFromGenre, OneAlbumFromArtistAndGenre},
		a.Chain(OneAlbumFromArtistAndGenre))
	assert.Equal(t, []ViewKind{AllAlbums, OneAlbum}, a.Chain(OneAlbum))
	assert.Equal(t, []ViewKind{AllTracks}, a.Chain(AllTracks))
	assert.Equal(t, AllArtists, a.Root(OneAlbumFromArtist))

	_, ok := a.Parent(AllAlbums)
	assert.False(t, ok)
}

func TestConfig_Equal(t *testing.T) {
	a := OneAlbumTemplate()
	b := OneAlbumTemplate()
	assert.True(t, a.Equal(b))

	b.Depth = 4
	assert.False(t, a.Equal(b), "depth takes part in equality")

	assert.False(t, Config{}.Valid)
}

func TestParseViewKind(t *testing.T) {
	kind, ok := ParseViewKind("genres")
	require.True(t, ok)
	assert.Equal(t, AllGenres, kind)

	_, ok = ParseViewKind("unknown")
	assert.False(t, ok)
	_, ok = ParseViewKind("nope")
	assert.False(t, ok)
}

func TestStack(t *testing.T) {
	s := NewStack(AlbumsView())
	_, err := s.Pop()
	require.ErrorIs(t, err, ErrUnderflow)
	assert.Equal(t, 1, s.Len())

	s.Push(OneAlbumTemplate())
	below, ok := s.Below()
	require.True(t, ok)
	assert.Equal(t, AllAlbums, below.Kind)

	top, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, OneAlbum, top.Kind)
	assert.Equal(t, AllAlbums, s.Top().Kind)
}
