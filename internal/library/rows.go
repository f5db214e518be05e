package library

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/crate/internal/viewnav"
)

// ErrUnsupportedQuery is returned for filter/data combinations no view uses.
var ErrUnsupportedQuery = errors.New("unsupported view query")

// Row is one entry of a library view, ready to display and to open.
type Row struct {
	Title     string
	Secondary string
	// Info is a short humanized detail (counts, play dates).
	Info     string
	ID       uint64
	DataKind viewnav.DataKind
	Image    string
	// Group is the section header the row starts, or "".
	Group     string
	Rating    int
	PlayCount int
	PlayedAt  time.Time
}

// Child returns the request that opens r.
func (r Row) Child() viewnav.ChildRequest {
	return viewnav.ChildRequest{
		Title:          r.Title,
		SecondaryTitle: r.Secondary,
		Image:          r.Image,
		ID:             r.ID,
		DataKind:       r.DataKind,
	}
}

// Query selects the rows of one view. The zero Filter selects every row,
// like NoFilter.
type Query struct {
	Filter    viewnav.FilterType
	DataKind  viewnav.DataKind
	ID        uint64
	Genre     string
	Artist    string
	SortKey   viewnav.SortKey
	SortOrder viewnav.SortOrder
	Grouping  viewnav.AlbumGrouping
	// Limit caps play history views; 0 means no cap.
	Limit int
}

// QueryFor builds the query feeding view c.
func QueryFor(c viewnav.Config) Query {
	return Query{
		Filter:    c.Filter,
		DataKind:  c.DataKind,
		ID:        c.DatabaseIDFilter,
		Genre:     c.GenreFilter,
		Artist:    c.ArtistFilter,
		SortKey:   c.SortKey,
		SortOrder: c.SortOrder,
		Grouping:  c.AlbumGrouping,
	}
}

// QueryForEvent builds the query for an activation event. It reports false
// for events that are not backed by library rows.
func QueryForEvent(ev viewnav.Event) (Query, bool) {
	switch e := ev.(type) {
	case viewnav.ActivateGrid:
		return Query{
			Filter:    e.Filter,
			DataKind:  e.DataKind,
			Genre:     e.GenreFilter,
			Artist:    e.ArtistFilter,
			SortOrder: viewnav.SortAscending,
		}, true
	case viewnav.ActivateList:
		return Query{
			Filter:    e.Filter,
			DataKind:  e.DataKind,
			ID:        e.DatabaseID,
			SortKey:   e.SortKey,
			SortOrder: e.SortOrder,
			Grouping:  e.AlbumGrouping,
		}, true
	}
	return Query{}, false
}

// RowsFor returns the rows of view c.
func (l *Library) RowsFor(c viewnav.Config) ([]Row, error) {
	return l.Rows(QueryFor(c))
}

// Rows runs q.
func (l *Library) Rows(q Query) ([]Row, error) {
	if q.Filter == viewnav.FilterUnknown {
		q.Filter = viewnav.NoFilter
	}
	var (
		rows []Row
		err  error
	)
	switch q.DataKind {
	case viewnav.DataAlbum:
		rows, err = l.albumRows(q)
	case viewnav.DataArtist:
		rows, err = l.artistRows(q)
	case viewnav.DataGenre:
		rows, err = l.genreRows(q)
	case viewnav.DataTrack:
		rows, err = l.trackRows(q)
	case viewnav.DataRadio:
		rows, err = l.radioRows()
	default:
		err = ErrUnsupportedQuery
	}
	if err != nil {
		return nil, fmt.Errorf("%s rows (%s): %w", q.DataKind, q.Filter, err)
	}
	sortRows(rows, q.SortKey, q.SortOrder)
	return rows, nil
}

func (l *Library) albumRows(q Query) ([]Row, error) {
	var f AlbumFilter
	switch q.Filter {
	case viewnav.NoFilter:
	case viewnav.FilterByArtist:
		f.Artist = q.Artist
	case viewnav.FilterByGenre:
		f.Genre = q.Genre
	case viewnav.FilterByGenreAndArtist:
		f.Artist, f.Genre = q.Artist, q.Genre
	default:
		return nil, ErrUnsupportedQuery
	}

	albums, err := l.Albums(f)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, len(albums))
	for i, a := range albums {
		info := plural(a.TrackCount, "track")
		if a.Year > 0 {
			info = strconv.Itoa(a.Year) + " · " + info
		}
		rows[i] = Row{
			Title:     a.Name,
			Secondary: a.Artist,
			Info:      info,
			ID:        uint64(a.ID),
			DataKind:  viewnav.DataAlbum,
			Image:     viewnav.IconDisc,
		}
	}
	return rows, nil
}

func (l *Library) artistRows(q Query) ([]Row, error) {
	var genre string
	switch q.Filter {
	case viewnav.NoFilter:
	case viewnav.FilterByGenre:
		genre = q.Genre
	default:
		return nil, ErrUnsupportedQuery
	}

	artists, err := l.Artists(genre)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, len(artists))
	for i, a := range artists {
		rows[i] = Row{
			Title:    a.Name,
			Info:     plural(a.AlbumCount, "album"),
			DataKind: viewnav.DataArtist,
			Image:    viewnav.IconArtist,
		}
	}
	return rows, nil
}

func (l *Library) genreRows(q Query) ([]Row, error) {
	if q.Filter != viewnav.NoFilter {
		return nil, ErrUnsupportedQuery
	}
	genres, err := l.Genres()
	if err != nil {
		return nil, err
	}
	rows := make([]Row, len(genres))
	for i, g := range genres {
		rows[i] = Row{
			Title:    g.Name,
			Info:     plural(g.TrackCount, "track"),
			DataKind: viewnav.DataGenre,
			Image:    viewnav.IconGenre,
		}
	}
	return rows, nil
}

func (l *Library) trackRows(q Query) ([]Row, error) {
	var (
		tracks []Track
		err    error
	)
	switch q.Filter {
	case viewnav.NoFilter:
		tracks, err = l.Tracks()
	case viewnav.FilterByID:
		tracks, err = l.AlbumTracks(int64(q.ID))
	case viewnav.FilterByRecentlyPlayed:
		tracks, err = l.RecentlyPlayed(q.Limit)
	case viewnav.FilterByFrequentlyPlayed:
		tracks, err = l.FrequentlyPlayed(q.Limit)
	default:
		return nil, ErrUnsupportedQuery
	}
	if err != nil {
		return nil, err
	}

	rows := make([]Row, len(tracks))
	for i, t := range tracks {
		rows[i] = Row{
			Title:     t.Title,
			Secondary: t.Artist,
			ID:        uint64(t.ID),
			DataKind:  viewnav.DataTrack,
			Image:     viewnav.IconTrack,
			Rating:    t.Rating,
			PlayCount: t.PlayCount,
			PlayedAt:  t.LastPlayedAt,
		}
		switch q.Filter {
		case viewnav.FilterByRecentlyPlayed:
			rows[i].Info = humanize.Time(t.LastPlayedAt)
		case viewnav.FilterByFrequentlyPlayed:
			rows[i].Info = "played " + plural(t.PlayCount, "time")
		case viewnav.FilterByID:
			if t.TrackNumber > 0 {
				rows[i].Info = strconv.Itoa(t.TrackNumber)
			}
		}
	}

	if q.Filter == viewnav.FilterByID && q.Grouping == viewnav.GroupByDisc {
		groupByDisc(rows, tracks)
	}
	return rows, nil
}

// groupByDisc sets a "Disc N" header on the first row of every disc, only
// when the album spans several discs.
func groupByDisc(rows []Row, tracks []Track) {
	disc := func(t Track) int { return max(t.DiscNumber, 1) }
	multi := slices.ContainsFunc(tracks, func(t Track) bool { return disc(t) != disc(tracks[0]) })
	if !multi {
		return
	}
	prev := 0
	for i, t := range tracks {
		if d := disc(t); d != prev {
			rows[i].Group = "Disc " + strconv.Itoa(d)
			prev = d
		}
	}
}

func (l *Library) radioRows() ([]Row, error) {
	radios, err := l.Radios()
	if err != nil {
		return nil, err
	}
	rows := make([]Row, len(radios))
	for i, r := range radios {
		image := r.Image
		if image == "" {
			image = viewnav.IconRadio
		}
		rows[i] = Row{
			Title:     r.Name,
			Secondary: r.URL,
			ID:        uint64(r.ID),
			DataKind:  viewnav.DataRadio,
			Image:     image,
			PlayCount: r.PlayCount,
			PlayedAt:  r.LastPlayedAt,
		}
	}
	return rows, nil
}

// sortRows orders rows by key. Queries already return rows in their
// natural order, so NoSort keeps it.
func sortRows(rows []Row, key viewnav.SortKey, order viewnav.SortOrder) {
	if order == viewnav.NoSort {
		return
	}
	var compare func(a, b Row) int
	switch key {
	case viewnav.SortByTitle:
		compare = func(a, b Row) int {
			return cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		}
	case viewnav.SortByLastPlayDate:
		compare = func(a, b Row) int { return a.PlayedAt.Compare(b.PlayedAt) }
	case viewnav.SortByPlayFrequency:
		compare = func(a, b Row) int { return cmp.Compare(a.PlayCount, b.PlayCount) }
	default:
		return
	}
	if order == viewnav.SortDescending {
		asc := compare
		compare = func(a, b Row) int { return asc(b, a) }
	}
	slices.SortStableFunc(rows, compare)
}

func plural(n int, unit string) string {
	s := humanize.Comma(int64(n)) + " " + unit
	if n != 1 {
		s += "s"
	}
	return s
}
