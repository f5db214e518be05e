package viewnav

import "fmt"

// OneAlbumTemplate lists the tracks of one album, grouped by disc.
func OneAlbumTemplate() Config {
	return albumTracksTemplate(OneAlbum)
}

// OneAlbumFromArtistTemplate is OneAlbumTemplate opened from an artist page.
func OneAlbumFromArtistTemplate() Config {
	return albumTracksTemplate(OneAlbumFromArtist)
}

// OneAlbumFromArtistAndGenreTemplate is OneAlbumTemplate opened from an
// artist page inside a genre.
func OneAlbumFromArtistAndGenreTemplate() Config {
	return albumTracksTemplate(OneAlbumFromArtistAndGenre)
}

// AllArtistsFromGenreTemplate is the grid of artists in one genre.
func AllArtistsFromGenreTemplate() Config {
	return gridConfig(AllArtistsFromGenre, "", IconArtist,
		FilterByGenre, DataArtist, IconArtist, false, false)
}

// OneArtistTemplate is the grid of albums by one artist.
func OneArtistTemplate() Config {
	return gridConfig(OneArtist, "", IconAlbumCover,
		FilterByArtist, DataAlbum, IconDisc, true, true)
}

// OneArtistFromGenreTemplate is the grid of albums by one artist inside a
// genre.
func OneArtistFromGenreTemplate() Config {
	return gridConfig(OneArtistFromGenre, "", IconAlbumCover,
		FilterByGenreAndArtist, DataAlbum, IconDisc, true, true)
}

func albumTracksTemplate(kind ViewKind) Config {
	return listConfig(kind, "", IconTrack,
		FilterByID, DataTrack,
		SortByTitle, NoSort, SingleAlbum, GroupByDisc, RadioStyleTrack)
}

// Templates maps drill-down kinds to their unfilled configuration.
type Templates map[ViewKind]func() Config

// DefaultTemplates returns every drill-down template.
func DefaultTemplates() Templates {
	return Templates{
		OneAlbum:                   OneAlbumTemplate,
		OneAlbumFromArtist:         OneAlbumFromArtistTemplate,
		OneAlbumFromArtistAndGenre: OneAlbumFromArtistAndGenreTemplate,
		AllArtistsFromGenre:        AllArtistsFromGenreTemplate,
		OneArtist:                  OneArtistTemplate,
		OneArtistFromGenre:         OneArtistFromGenreTemplate,
	}
}

// Get returns a fresh copy of the template for kind.
func (t Templates) Get(kind ViewKind) (Config, error) {
	build, ok := t[kind]
	if !ok {
		return Config{}, fmt.Errorf("no template for %s view", kind)
	}
	return build(), nil
}
