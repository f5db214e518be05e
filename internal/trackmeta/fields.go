package trackmeta

// Field names one piece of track or radio metadata.
type Field int

const (
	FieldTitle Field = iota
	FieldResource
	FieldImage
	FieldArtist
	FieldAlbum
	FieldAlbumArtist
	FieldTrackNumber
	FieldDiscNumber
	FieldRating
	FieldGenre
	FieldLyricist
	FieldComposer
	FieldComment
	FieldYear
	FieldLyrics
	FieldLastPlayDate
	FieldFirstPlayDate
	FieldPlayCounter
	FieldDuration
)

var fieldNames = map[Field]string{
	FieldTitle:         "title",
	FieldResource:      "resource",
	FieldImage:         "image",
	FieldArtist:        "artist",
	FieldAlbum:         "album",
	FieldAlbumArtist:   "album artist",
	FieldTrackNumber:   "track number",
	FieldDiscNumber:    "disc number",
	FieldRating:        "rating",
	FieldGenre:         "genre",
	FieldLyricist:      "lyricist",
	FieldComposer:      "composer",
	FieldComment:       "comment",
	FieldYear:          "year",
	FieldLyrics:        "lyrics",
	FieldLastPlayDate:  "last played",
	FieldFirstPlayDate: "first played",
	FieldPlayCounter:   "play count",
	FieldDuration:      "duration",
}

func (f Field) String() string {
	if s, ok := fieldNames[f]; ok {
		return s
	}
	return "unknown"
}

// userFields are the tag fields a track can gain or lose, in display order.
var userFields = []Field{
	FieldTitle, FieldArtist, FieldAlbum, FieldAlbumArtist, FieldTrackNumber,
	FieldDiscNumber, FieldRating, FieldGenre, FieldLyricist, FieldComposer,
	FieldComment, FieldYear, FieldLyrics,
}

// statFields are maintained by the player, never by the user.
var statFields = map[Field]bool{
	FieldLastPlayDate:  true,
	FieldFirstPlayDate: true,
	FieldPlayCounter:   true,
	FieldDuration:      true,
}
