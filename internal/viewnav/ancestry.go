package viewnav

import "slices"

// Ancestry maps a drill-down kind to the kind that precedes it.
type Ancestry map[ViewKind]ViewKind

// DefaultAncestry returns the parent of every drill-down kind.
func DefaultAncestry() Ancestry {
	return Ancestry{
		OneAlbum:                   AllAlbums,
		OneArtist:                  AllArtists,
		OneAlbumFromArtist:         OneArtist,
		AllArtistsFromGenre:        AllGenres,
		OneArtistFromGenre:         AllArtistsFromGenre,
		OneAlbumFromArtistAndGenre: OneArtistFromGenre,
	}
}

// Parent returns the kind that must precede kind. Top-level kinds have no
// parent.
func (a Ancestry) Parent(kind ViewKind) (ViewKind, bool) {
	p, ok := a[kind]
	return p, ok
}

// Root follows parents up to the top-level kind.
func (a Ancestry) Root(kind ViewKind) ViewKind {
	for range len(a) + 1 {
		p, ok := a[kind]
		if !ok {
			return kind
		}
		kind = p
	}
	return kind
}

// Chain returns kind and its ancestors, top-level first.
func (a Ancestry) Chain(kind ViewKind) []ViewKind {
	chain := []ViewKind{kind}
	for range len(a) {
		p, ok := a[kind]
		if !ok {
			break
		}
		chain = append(chain, p)
		kind = p
	}
	slices.Reverse(chain)
	return chain
}
