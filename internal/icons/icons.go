// Package icons turns the icon handles carried by views and rows into
// terminal glyphs for the configured style.
package icons

import "github.com/llehouerou/crate/internal/viewnav"

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Set maps icon handles to glyphs. Glyphs carry their trailing space.
type Set struct {
	style  Style
	glyphs map[string]string
}

var (
	nerdGlyphs = map[string]string{
		viewnav.IconLyrics:     "\U000f0d6e ", // nf-md-text_box
		viewnav.IconPlaylist:   "\U000f0cb8 ", // nf-md-playlist_music
		viewnav.IconPlayCount:  "\U000f0150 ", // nf-md-clock
		viewnav.IconAlbumCover: "\U000f0025 ", // nf-md-album
		viewnav.IconDisc:       "\U000f0025 ",
		viewnav.IconArtist:     "\uf007 ", // nf-fa-user
		viewnav.IconTrack:      "\uf001 ", // nf-fa-music
		viewnav.IconGenre:      "\uf02c ", // nf-fa-tags
		viewnav.IconFolder:     "\uf07b ", // nf-fa-folder
		viewnav.IconRadio:      "\U000f0439 ", // nf-md-radio
	}

	unicodeGlyphs = map[string]string{
		viewnav.IconLyrics:     "📝 ",
		viewnav.IconPlaylist:   "📋 ",
		viewnav.IconPlayCount:  "🔢 ",
		viewnav.IconAlbumCover: "💿 ",
		viewnav.IconDisc:       "💿 ",
		viewnav.IconArtist:     "👤 ",
		viewnav.IconTrack:      "🎵 ",
		viewnav.IconGenre:      "🏷 ",
		viewnav.IconFolder:     "📁 ",
		viewnav.IconRadio:      "📻 ",
	}
)

// New returns the set for style. Unknown styles fall back to none.
func New(style string) Set {
	switch Style(style) {
	case StyleNerd:
		return Set{style: StyleNerd, glyphs: nerdGlyphs}
	case StyleUnicode:
		return Set{style: StyleUnicode, glyphs: unicodeGlyphs}
	case StyleNone:
	}
	return Set{style: StyleNone}
}

// Style reports the active style.
func (s Set) Style() Style { return s.style }

// Glyph returns the prefix for handle, or "" when none is known.
func (s Set) Glyph(handle string) string {
	return s.glyphs[handle]
}

// Format decorates name with the glyph for handle.
// For "none" style folders get a "/" suffix instead.
func (s Set) Format(handle, name string) string {
	if s.style == StyleNone {
		if handle == viewnav.IconFolder {
			return name + "/"
		}
		return name
	}
	return s.Glyph(handle) + name
}
