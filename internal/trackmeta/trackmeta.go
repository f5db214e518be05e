// Package trackmeta is the editable metadata record behind the track and
// radio editor: which fields may change, which may be dropped, and whether
// the record is fit to save.
package trackmeta

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/llehouerou/crate/internal/library"
	"github.com/llehouerou/crate/internal/viewnav"
)

var (
	ErrReadOnly     = errors.New("field is read-only")
	ErrNotPresent   = errors.New("field not present")
	ErrNotRemovable = errors.New("field cannot be removed")
	ErrPresent      = errors.New("field already present")
	ErrInvalid      = errors.New("invalid metadata")
)

var validate = validator.New()

// checked mirrors the fields Valid looks at.
type checked struct {
	Resource    string `validate:"required,url"`
	Title       string `validate:"required"`
	TrackNumber string `validate:"omitempty,number"`
	DiscNumber  string `validate:"omitempty,number"`
	Year        string `validate:"omitempty,number"`
	Rating      string `validate:"omitempty,number"`
}

// Model holds one track or radio being edited.
type Model struct {
	kind     viewnav.DataKind
	id       int64
	values   map[Field]string
	dirty    bool
	newRadio bool
	valid    bool
	errMsg   string
}

// Record is a saved snapshot.
type Record struct {
	Kind   viewnav.DataKind
	ID     int64
	Values map[Field]string
}

// FromTrack loads t. Empty tag fields are left out and show up in
// ExtraFields.
func FromTrack(t library.Track) *Model {
	m := &Model{kind: viewnav.DataTrack, id: t.ID, values: map[Field]string{}}
	m.put(FieldTitle, t.Title)
	m.put(FieldResource, (&url.URL{Scheme: "file", Path: t.Path}).String())
	m.put(FieldArtist, t.Artist)
	m.put(FieldAlbum, t.Album)
	m.put(FieldAlbumArtist, t.AlbumArtist)
	m.putInt(FieldTrackNumber, t.TrackNumber)
	m.putInt(FieldDiscNumber, t.DiscNumber)
	m.putInt(FieldRating, t.Rating)
	m.put(FieldGenre, t.Genre)
	m.put(FieldLyricist, t.Lyricist)
	m.put(FieldComposer, t.Composer)
	m.put(FieldComment, t.Comment)
	m.putInt(FieldYear, t.Year)
	m.values[FieldPlayCounter] = strconv.Itoa(t.PlayCount)
	if !t.LastPlayedAt.IsZero() {
		m.values[FieldLastPlayDate] = t.LastPlayedAt.Format(time.DateTime)
	}
	m.check()
	return m
}

// FromRadio loads r.
func FromRadio(r library.Radio) *Model {
	m := &Model{kind: viewnav.DataRadio, id: r.ID, values: map[Field]string{}}
	m.values[FieldTitle] = r.Name
	m.values[FieldResource] = r.URL
	m.values[FieldImage] = r.Image
	m.check()
	return m
}

// NewRadio starts an empty radio. It is invalid until a URL and a name are
// set.
func NewRadio() *Model {
	m := FromRadio(library.Radio{})
	m.newRadio = true
	return m
}

func (m *Model) put(f Field, v string) {
	if v != "" {
		m.values[f] = v
	}
}

func (m *Model) putInt(f Field, n int) {
	if n != 0 {
		m.values[f] = strconv.Itoa(n)
	}
}

// Kind reports whether the model is a track or a radio.
func (m *Model) Kind() viewnav.DataKind { return m.kind }

// ID is the stored id, 0 for a new radio.
func (m *Model) ID() int64 { return m.id }

// IsNewRadio reports whether the model was created by NewRadio and not
// saved yet.
func (m *Model) IsNewRadio() bool { return m.newRadio }

// Fields returns the present fields in display order.
func (m *Model) Fields() []Field {
	out := make([]Field, 0, len(m.values))
	for f := FieldTitle; f <= FieldDuration; f++ {
		if _, ok := m.values[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// Value returns the value of f and whether f is present.
func (m *Model) Value(f Field) (string, bool) {
	v, ok := m.values[f]
	return v, ok
}

// ReadOnly reports whether f cannot be edited. The resource is editable
// only on radios; play statistics and duration never are.
func (m *Model) ReadOnly(f Field) bool {
	if f == FieldResource {
		return m.kind != viewnav.DataRadio
	}
	return statFields[f]
}

// Removable reports whether f may be dropped: only user tag fields of
// tracks.
func (m *Model) Removable(f Field) bool {
	return m.kind == viewnav.DataTrack && slices.Contains(userFields, f)
}

// Set changes a present field.
func (m *Model) Set(f Field, v string) error {
	if m.ReadOnly(f) {
		return fmt.Errorf("set %s: %w", f, ErrReadOnly)
	}
	if _, ok := m.values[f]; !ok {
		return fmt.Errorf("set %s: %w", f, ErrNotPresent)
	}
	m.values[f] = v
	m.modified()
	return nil
}

// Remove drops f.
func (m *Model) Remove(f Field) error {
	if !m.Removable(f) {
		return fmt.Errorf("remove %s: %w", f, ErrNotRemovable)
	}
	if _, ok := m.values[f]; !ok {
		return fmt.Errorf("remove %s: %w", f, ErrNotPresent)
	}
	delete(m.values, f)
	m.modified()
	return nil
}

// Add makes one of ExtraFields present with an empty value.
func (m *Model) Add(f Field) error {
	if _, ok := m.values[f]; ok {
		return fmt.Errorf("add %s: %w", f, ErrPresent)
	}
	if !slices.Contains(m.ExtraFields(), f) {
		return fmt.Errorf("add %s: %w", f, ErrNotRemovable)
	}
	m.values[f] = ""
	m.modified()
	return nil
}

// ExtraFields lists the tag fields a track does not carry yet. Radios have
// none.
func (m *Model) ExtraFields() []Field {
	if m.kind != viewnav.DataTrack {
		return nil
	}
	var extra []Field
	for _, f := range userFields {
		if _, ok := m.values[f]; !ok {
			extra = append(extra, f)
		}
	}
	return extra
}

// Dirty reports unsaved changes.
func (m *Model) Dirty() bool { return m.dirty }

// Valid reports whether the record can be saved.
func (m *Model) Valid() bool { return m.valid }

// ErrorMessage explains why the record is invalid, or is "".
func (m *Model) ErrorMessage() string { return m.errMsg }

func (m *Model) modified() {
	m.dirty = true
	m.check()
}

func (m *Model) check() {
	err := validate.Struct(checked{
		Resource:    strings.TrimSpace(m.values[FieldResource]),
		Title:       m.values[FieldTitle],
		TrackNumber: m.values[FieldTrackNumber],
		DiscNumber:  m.values[FieldDiscNumber],
		Year:        m.values[FieldYear],
		Rating:      m.values[FieldRating],
	})
	m.valid = err == nil
	m.errMsg = ""

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch fe := verrs[0]; fe.Field() {
		case "Resource":
			m.errMsg = "Invalid URL."
		case "Title":
			m.errMsg = "Empty title."
		default:
			m.errMsg = "Invalid " + strings.ToLower(fe.Field()) + "."
		}
	}
}

// Save clears the dirty flag and returns the record with bare image paths
// turned into file URLs.
func (m *Model) Save() (Record, error) {
	if !m.valid {
		return Record{}, fmt.Errorf("save: %w: %s", ErrInvalid, m.errMsg)
	}
	m.dirty = false
	m.newRadio = false

	values := make(map[Field]string, len(m.values))
	for f, v := range m.values {
		values[f] = v
	}
	values[FieldResource] = strings.TrimSpace(values[FieldResource])
	if img := values[FieldImage]; img != "" && !hasURLScheme(img) {
		if abs, err := filepath.Abs(img); err == nil {
			img = abs
		}
		values[FieldImage] = (&url.URL{Scheme: "file", Path: img}).String()
		m.values[FieldImage] = values[FieldImage]
	}

	return Record{Kind: m.kind, ID: m.id, Values: values}, nil
}

// DeleteRadio returns the id of the stored radio to delete. It reports
// false for tracks and unsaved radios.
func (m *Model) DeleteRadio() (int64, bool) {
	if m.kind != viewnav.DataRadio || m.id == 0 {
		return 0, false
	}
	return m.id, true
}

func hasURLScheme(s string) bool {
	for _, p := range []string{"http://", "https://", "file://"} {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// ApplyTo copies the editable values of r onto t.
func (r Record) ApplyTo(t library.Track) library.Track {
	t.Title = r.Values[FieldTitle]
	t.Artist = r.Values[FieldArtist]
	t.Album = r.Values[FieldAlbum]
	t.AlbumArtist = r.Values[FieldAlbumArtist]
	t.Genre = r.Values[FieldGenre]
	t.Lyricist = r.Values[FieldLyricist]
	t.Composer = r.Values[FieldComposer]
	t.Comment = r.Values[FieldComment]
	t.TrackNumber = atoi(r.Values[FieldTrackNumber])
	t.DiscNumber = atoi(r.Values[FieldDiscNumber])
	t.Year = atoi(r.Values[FieldYear])
	t.Rating = atoi(r.Values[FieldRating])
	return t
}

// Radio returns r as a stored radio.
func (r Record) Radio() library.Radio {
	return library.Radio{
		ID:    r.ID,
		Name:  r.Values[FieldTitle],
		URL:   r.Values[FieldResource],
		Image: r.Values[FieldImage],
	}
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
