package icons

import (
	"testing"

	"github.com/llehouerou/crate/internal/viewnav"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		style string
		want  Style
	}{
		{"nerd style", "nerd", StyleNerd},
		{"unicode style", "unicode", StyleUnicode},
		{"none style", "none", StyleNone},
		{"empty string defaults to none", "", StyleNone},
		{"unknown style defaults to none", "invalid", StyleNone},
		{"case sensitive - NERD defaults to none", "NERD", StyleNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.style).Style(); got != tt.want {
				t.Errorf("New(%q).Style() = %q, want %q", tt.style, got, tt.want)
			}
		})
	}
}

func TestFormat_None(t *testing.T) {
	s := New("none")

	if got := s.Format(viewnav.IconFolder, "Music"); got != "Music/" {
		t.Errorf("folder = %q, want %q", got, "Music/")
	}
	if got := s.Format(viewnav.IconDisc, "Kind of Blue"); got != "Kind of Blue" {
		t.Errorf("album = %q, want bare name", got)
	}
	if g := s.Glyph(viewnav.IconTrack); g != "" {
		t.Errorf("Glyph = %q, want empty", g)
	}
}

func TestFormat_Unicode(t *testing.T) {
	s := New("unicode")

	if got := s.Format(viewnav.IconFolder, "Music"); got != "📁 Music" {
		t.Errorf("folder = %q", got)
	}
	if got := s.Format("no-such-icon", "x"); got != "x" {
		t.Errorf("unknown handle = %q, want bare name", got)
	}
}

func TestEveryCatalogIconHasGlyph(t *testing.T) {
	for _, style := range []string{"nerd", "unicode"} {
		s := New(style)
		for _, c := range viewnav.DefaultCatalog().Entries() {
			if s.Glyph(c.MainImage) == "" {
				t.Errorf("%s: no glyph for %s (%s)", style, c.MainImage, c.Kind)
			}
		}
	}
}
