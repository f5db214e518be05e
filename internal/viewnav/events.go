package viewnav

// Event is a notification the host must act on. Operations return events
// in the order they happened.
type Event interface {
	event()
}

// ActivateGrid asks the host to mount a grid view.
type ActivateGrid struct {
	Kind              ViewKind
	Filter            FilterType
	Depth             int
	Title             string
	SecondaryTitle    string
	Image             string
	DataKind          DataKind
	FallbackIcon      string
	GenreFilter       string
	ArtistFilter      string
	CanBeRated        bool
	ShowSecondaryText bool
}

// ActivateList asks the host to mount a list view.
type ActivateList struct {
	Kind             ViewKind
	Filter           FilterType
	Depth            int
	Title            string
	SecondaryTitle   string
	DatabaseID       uint64
	Image            string
	DataKind         DataKind
	SortKey          SortKey
	SortOrder        SortOrder
	AlbumCardinality AlbumCardinality
	AlbumGrouping    AlbumGrouping
	RadioStyle       RadioStyle
}

// ActivateFileBrowser asks the host to switch to the file browser.
type ActivateFileBrowser struct {
	Kind  ViewKind
	Depth int
	Title string
	Image string
}

// ActivateContext asks the host to switch to the now playing page.
type ActivateContext struct {
	Kind  ViewKind
	Depth int
	Title string
	Image string
}

// PopRequested asks the host to tear down the top view. It precedes the
// stack pop.
type PopRequested struct{}

func (ActivateGrid) event()        {}
func (ActivateList) event()        {}
func (ActivateFileBrowser) event() {}
func (ActivateContext) event()     {}
func (PopRequested) event()        {}

// activationEvent builds the event for c, or nil when c has no known
// presentation.
func activationEvent(c Config) Event {
	switch c.Presentation {
	case PresentationGrid:
		return ActivateGrid{
			Kind:              c.Kind,
			Filter:            c.Filter,
			Depth:             c.Depth,
			Title:             c.Title,
			SecondaryTitle:    c.SecondaryTitle,
			Image:             c.MainImage,
			DataKind:          c.DataKind,
			FallbackIcon:      c.FallbackIcon,
			GenreFilter:       c.GenreFilter,
			ArtistFilter:      c.ArtistFilter,
			CanBeRated:        c.CanBeRated,
			ShowSecondaryText: c.ShowSecondaryText,
		}
	case PresentationList:
		return ActivateList{
			Kind:             c.Kind,
			Filter:           c.Filter,
			Depth:            c.Depth,
			Title:            c.Title,
			SecondaryTitle:   c.SecondaryTitle,
			DatabaseID:       c.DatabaseIDFilter,
			Image:            c.MainImage,
			DataKind:         c.DataKind,
			SortKey:          c.SortKey,
			SortOrder:        c.SortOrder,
			AlbumCardinality: c.AlbumCardinality,
			AlbumGrouping:    c.AlbumGrouping,
			RadioStyle:       c.RadioStyle,
		}
	case PresentationFileBrowser:
		return ActivateFileBrowser{Kind: c.Kind, Depth: 1, Title: c.Title, Image: c.MainImage}
	case PresentationContext:
		return ActivateContext{Kind: c.Kind, Depth: 1, Title: c.Title, Image: c.MainImage}
	case PresentationUnknown:
	}
	return nil
}
