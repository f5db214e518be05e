package viewnav

// Config describes one view: its identity, the filters threaded through
// from its ancestors and presentation hints for the host.
//
// Config is comparable; two configs are the same view only if every field,
// Depth included, matches.
type Config struct {
	Kind         ViewKind
	Presentation Presentation

	Title          string
	SecondaryTitle string
	MainImage      string

	Filter       FilterType
	DataKind     DataKind
	FallbackIcon string

	ShowSecondaryText bool
	CanBeRated        bool

	SortKey          SortKey
	SortOrder        SortOrder
	AlbumCardinality AlbumCardinality
	AlbumGrouping    AlbumGrouping
	RadioStyle       RadioStyle

	// Depth is the 1-based stack position the config occupies.
	Depth int

	DatabaseIDFilter uint64
	GenreFilter      string
	ArtistFilter     string

	// Valid is false for the zero value.
	Valid bool
}

// Equal reports whether c and other describe the same view.
func (c Config) Equal(other Config) bool {
	return c == other
}

// contextConfig builds a view shown as a standalone page.
func contextConfig(kind ViewKind, title, image string) Config {
	return Config{
		Kind:         kind,
		Presentation: PresentationContext,
		Title:        title,
		MainImage:    image,
		Filter:       FilterUnknown,
		SortOrder:    SortAscending,
		Depth:        1,
		Valid:        true,

		ShowSecondaryText: true,
	}
}

// fileBrowserConfig builds the filesystem browser view.
func fileBrowserConfig(kind ViewKind, title, image string) Config {
	c := contextConfig(kind, title, image)
	c.Presentation = PresentationFileBrowser
	return c
}

// gridConfig builds a grid of cards (albums, artists, genres).
func gridConfig(kind ViewKind, title, image string, filter FilterType, data DataKind,
	fallbackIcon string, secondaryText, rated bool,
) Config {
	return Config{
		Kind:              kind,
		Presentation:      PresentationGrid,
		Title:             title,
		MainImage:         image,
		Filter:            filter,
		DataKind:          data,
		FallbackIcon:      fallbackIcon,
		ShowSecondaryText: secondaryText,
		CanBeRated:        rated,
		SortOrder:         SortAscending,
		Depth:             1,
		Valid:             true,
	}
}

// listConfig builds a list of tracks or radios.
func listConfig(kind ViewKind, title, image string, filter FilterType, data DataKind,
	sortKey SortKey, order SortOrder, cardinality AlbumCardinality, grouping AlbumGrouping, radio RadioStyle,
) Config {
	return Config{
		Kind:              kind,
		Presentation:      PresentationList,
		Title:             title,
		MainImage:         image,
		Filter:            filter,
		DataKind:          data,
		ShowSecondaryText: true,
		SortKey:           sortKey,
		SortOrder:         order,
		AlbumCardinality:  cardinality,
		AlbumGrouping:     grouping,
		RadioStyle:        radio,
		Depth:             1,
		Valid:             true,
	}
}
