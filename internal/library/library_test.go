package library

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/crate/internal/state"
)

func newTestLibrary(t *testing.T) (*Library, *sql.DB) {
	t.Helper()
	m, err := state.OpenAt(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })
	return New(m.DB()), m.DB()
}

// addTrack inserts t directly and returns its id.
func addTrack(t *testing.T, db *sql.DB, tr Track) int64 {
	t.Helper()
	if tr.AlbumArtist == "" {
		tr.AlbumArtist = tr.Artist
	}
	res, err := db.Exec(`
		INSERT INTO library_tracks (path, mtime, artist, album_artist, album, title, disc_number, track_number,
		                            year, genre, play_count, last_played_at, added_at, updated_at)
		VALUES (?, 1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1, 1)
	`, tr.Path, tr.Artist, tr.AlbumArtist, tr.Album, tr.Title,
		nullInt(tr.DiscNumber), nullInt(tr.TrackNumber), nullInt(tr.Year), tr.Genre,
		tr.PlayCount, nullTime(tr.LastPlayedAt))
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

func nullInt(n int) any {
	if n == 0 {
		return nil
	}
	return n
}

func nullTime(at time.Time) any {
	if at.IsZero() {
		return nil
	}
	return at.Unix()
}

// seedJazz loads a small library: two Coltrane albums (one on two discs),
// one Davis album and one rock album.
func seedJazz(t *testing.T, db *sql.DB) map[string]int64 {
	t.Helper()
	ids := map[string]int64{}
	ids["giant steps"] = addTrack(t, db, Track{Path: "/m/jc/gs/01.mp3", Artist: "John Coltrane", Album: "Giant Steps", Title: "Giant Steps", TrackNumber: 1, Year: 1960, Genre: "Jazz"})
	ids["naima"] = addTrack(t, db, Track{Path: "/m/jc/gs/02.mp3", Artist: "John Coltrane", Album: "Giant Steps", Title: "Naima", TrackNumber: 2, Year: 1960, Genre: "Jazz"})
	ids["resolution"] = addTrack(t, db, Track{Path: "/m/jc/als/2-01.mp3", Artist: "John Coltrane", Album: "A Love Supreme", Title: "Resolution", DiscNumber: 2, TrackNumber: 1, Year: 1965, Genre: "Jazz"})
	ids["acknowledgement"] = addTrack(t, db, Track{Path: "/m/jc/als/1-01.mp3", Artist: "John Coltrane", Album: "A Love Supreme", Title: "Acknowledgement", DiscNumber: 1, TrackNumber: 1, Year: 1965, Genre: "Jazz"})
	ids["so what"] = addTrack(t, db, Track{Path: "/m/md/kob/01.mp3", Artist: "Miles Davis", Album: "Kind of Blue", Title: "So What", TrackNumber: 1, Year: 1959, Genre: "Jazz"})
	ids["paranoid"] = addTrack(t, db, Track{Path: "/m/bs/p/01.mp3", Artist: "Black Sabbath", Album: "Paranoid", Title: "Paranoid", TrackNumber: 1, Year: 1970, Genre: "Rock"})
	return ids
}

func TestAlbums(t *testing.T) {
	lib, db := newTestLibrary(t)
	ids := seedJazz(t, db)

	all, err := lib.Albums(AlbumFilter{})
	require.NoError(t, err)
	names := make([]string, len(all))
	for i, a := range all {
		names[i] = a.Name
	}
	assert.Equal(t, []string{"A Love Supreme", "Giant Steps", "Kind of Blue", "Paranoid"}, names)

	als := all[0]
	assert.Equal(t, "John Coltrane", als.Artist)
	assert.Equal(t, 1965, als.Year)
	assert.Equal(t, 2, als.TrackCount)
	assert.Equal(t, 2, als.DiscCount)
	assert.Equal(t, ids["resolution"], als.ID, "album id is its smallest track id")

	byArtist, err := lib.Albums(AlbumFilter{Artist: "John Coltrane"})
	require.NoError(t, err)
	assert.Len(t, byArtist, 2)

	byGenre, err := lib.Albums(AlbumFilter{Genre: "Rock"})
	require.NoError(t, err)
	require.Len(t, byGenre, 1)
	assert.Equal(t, "Paranoid", byGenre[0].Name)

	none, err := lib.Albums(AlbumFilter{Artist: "Miles Davis", Genre: "Rock"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestArtistsAndGenres(t *testing.T) {
	lib, db := newTestLibrary(t)
	seedJazz(t, db)
	addTrack(t, db, Track{Path: "/m/x.mp3", Artist: "Nobody", Album: "Untitled", Title: "x"})

	artists, err := lib.Artists("")
	require.NoError(t, err)
	assert.Len(t, artists, 4)

	jazz, err := lib.Artists("Jazz")
	require.NoError(t, err)
	require.Len(t, jazz, 2)
	assert.Equal(t, Artist{Name: "John Coltrane", AlbumCount: 2}, jazz[0])
	assert.Equal(t, Artist{Name: "Miles Davis", AlbumCount: 1}, jazz[1])

	genres, err := lib.Genres()
	require.NoError(t, err)
	assert.Equal(t, []Genre{{Name: "Jazz", TrackCount: 5}, {Name: "Rock", TrackCount: 1}}, genres)
}

func TestAlbumTracks(t *testing.T) {
	lib, db := newTestLibrary(t)
	ids := seedJazz(t, db)

	tracks, err := lib.AlbumTracks(ids["resolution"])
	require.NoError(t, err)
	require.Len(t, tracks, 2)
	assert.Equal(t, "Acknowledgement", tracks[0].Title, "disc 1 first")
	assert.Equal(t, "Resolution", tracks[1].Title)

	_, err = lib.AlbumTracks(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlayHistory(t *testing.T) {
	lib, db := newTestLibrary(t)
	ids := seedJazz(t, db)

	recent, err := lib.RecentlyPlayed(0)
	require.NoError(t, err)
	assert.Empty(t, recent, "nothing played yet")

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, lib.RecordPlay(ids["naima"], base))
	require.NoError(t, lib.RecordPlay(ids["so what"], base.Add(time.Hour)))
	require.NoError(t, lib.RecordPlay(ids["naima"], base.Add(2*time.Hour)))
	require.NoError(t, lib.RecordPlay(ids["paranoid"], base.Add(30*time.Minute)))

	recent, err = lib.RecentlyPlayed(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "Naima", recent[0].Title)
	assert.Equal(t, "So What", recent[1].Title)
	assert.True(t, recent[0].LastPlayedAt.Equal(base.Add(2*time.Hour)))

	frequent, err := lib.FrequentlyPlayed(0)
	require.NoError(t, err)
	require.Len(t, frequent, 3)
	assert.Equal(t, "Naima", frequent[0].Title)
	assert.Equal(t, 2, frequent[0].PlayCount)
	assert.Equal(t, "So What", frequent[1].Title, "ties broken by last play")

	assert.ErrorIs(t, lib.RecordPlay(9999, base), ErrNotFound)
}

func TestUpdateTrack(t *testing.T) {
	lib, db := newTestLibrary(t)
	ids := seedJazz(t, db)

	tr, err := lib.TrackByID(ids["so what"])
	require.NoError(t, err)

	tr.Title = "So What (Live)"
	tr.Genre = "Modal Jazz"
	tr.Rating = 4
	tr.Composer = "Miles Davis"
	require.NoError(t, lib.UpdateTrack(*tr))

	got, err := lib.TrackByPath("/m/md/kob/01.mp3")
	require.NoError(t, err)
	assert.Equal(t, "So What (Live)", got.Title)
	assert.Equal(t, "Modal Jazz", got.Genre)
	assert.Equal(t, "Miles Davis", got.Composer)
	assert.Equal(t, 4, got.Rating)

	assert.ErrorIs(t, lib.UpdateTrack(Track{ID: 9999, Title: "x"}), ErrNotFound)
	_, err = lib.TrackByID(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRadios(t *testing.T) {
	lib, _ := newTestLibrary(t)

	id, err := lib.SaveRadio(Radio{Name: "WWOZ", URL: "https://wwoz.org/listen/hi"})
	require.NoError(t, err)
	_, err = lib.SaveRadio(Radio{Name: "FIP", URL: "https://icecast.radiofrance.fr/fip-hifi.aac", Image: "/img/fip.png"})
	require.NoError(t, err)

	radios, err := lib.Radios()
	require.NoError(t, err)
	require.Len(t, radios, 2)
	assert.Equal(t, "FIP", radios[0].Name)
	assert.Equal(t, "/img/fip.png", radios[0].Image)

	_, err = lib.SaveRadio(Radio{ID: id, Name: "WWOZ 90.7", URL: "https://wwoz.org/listen/hi"})
	require.NoError(t, err)
	r, err := lib.RadioByID(id)
	require.NoError(t, err)
	assert.Equal(t, "WWOZ 90.7", r.Name)

	require.NoError(t, lib.DeleteRadio(id))
	assert.ErrorIs(t, lib.DeleteRadio(id), ErrNotFound)
	_, err = lib.RadioByID(id)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = lib.SaveRadio(Radio{Name: "dup", URL: "https://icecast.radiofrance.fr/fip-hifi.aac"})
	assert.Error(t, err, "urls are unique")
}

func TestSources(t *testing.T) {
	lib, db := newTestLibrary(t)
	seedJazz(t, db)

	require.NoError(t, lib.SeedSources([]string{"/m/jc", "", "/m/md"}))
	require.NoError(t, lib.SeedSources([]string{"/elsewhere"}), "ignored once sources exist")
	require.NoError(t, lib.AddSource("/m/jc"))

	sources, err := lib.Sources()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"/m/jc", "/m/md"}, sources)

	n, err := lib.TrackCountBySource("/m/jc")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	require.NoError(t, lib.RemoveSource("/m/jc"))
	n, err = lib.TrackCount()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	sources, err = lib.Sources()
	require.NoError(t, err)
	assert.Equal(t, []string{"/m/md"}, sources)
}
