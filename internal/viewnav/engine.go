package viewnav

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// ChildRequest describes the item the user asked to open.
type ChildRequest struct {
	Title          string
	SecondaryTitle string
	Image          string
	ID             uint64
	DataKind       DataKind
}

// state is everything the engine mutates.
type state struct {
	stack   Stack
	pending Config
}

// Engine is the view navigation state machine. It is not safe for
// concurrent use; one owner drives it.
type Engine struct {
	catalog   *Catalog
	templates Templates
	ancestry  Ancestry
	logger    *log.Logger

	st state
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for activation traces.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithCatalog replaces the default top-level catalog.
func WithCatalog(c *Catalog) Option {
	return func(e *Engine) {
		if c != nil {
			e.catalog = c
		}
	}
}

// New returns an engine showing the first catalog entry.
func New(opts ...Option) *Engine {
	e := &Engine{
		catalog:   DefaultCatalog(),
		templates: DefaultTemplates(),
		ancestry:  DefaultAncestry(),
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.st.stack = NewStack(e.catalog.First())
	return e
}

// SelectTopLevelAt selects the catalog entry at menu position index.
func (e *Engine) SelectTopLevelAt(index int) ([]Event, error) {
	c, err := e.catalog.At(index)
	if err != nil {
		return nil, fmt.Errorf("select top-level view: %w", err)
	}
	return e.selectTopLevel(c), nil
}

// SelectTopLevel selects the catalog entry for kind. Selecting the view
// already on top does nothing.
func (e *Engine) SelectTopLevel(kind ViewKind) ([]Event, error) {
	c, err := e.catalog.Lookup(kind)
	if err != nil {
		return nil, fmt.Errorf("select top-level view: %w", err)
	}
	return e.selectTopLevel(c), nil
}

func (e *Engine) selectTopLevel(c Config) []Event {
	if e.st.stack.Top().Kind == c.Kind {
		return nil
	}
	var events []Event
	e.st.stack.clear()
	e.st.pending = c
	e.activate(c, &events)
	return events
}

// OpenChild drills into req. When the view on top cannot hold req's kind,
// the matching top-level view is activated first and the child is only
// staged until ConfirmViewLoaded.
func (e *Engine) OpenChild(req ChildRequest) ([]Event, error) {
	var (
		events    []Event
		immediate = true
		err       error
	)

	switch req.DataKind {
	case DataAlbum:
		if e.st.stack.Top().DataKind != DataAlbum {
			if err := e.activateAncestor(OneAlbum, &events); err != nil {
				return events, err
			}
			immediate = false
		}
		if err := e.switchArtist(req.SecondaryTitle, &events); err != nil {
			return events, err
		}
		err = e.stageAlbum(req)
	case DataArtist:
		if e.st.stack.Top().DataKind != DataArtist {
			if err := e.activateAncestor(OneArtist, &events); err != nil {
				return events, err
			}
			immediate = false
		}
		err = e.stageArtist(req)
	case DataGenre:
		if e.st.stack.Top().DataKind != DataGenre {
			if err := e.activateAncestor(AllArtistsFromGenre, &events); err != nil {
				return events, err
			}
			immediate = false
		}
		err = e.stageGenre(req)
	case DataLyricist, DataComposer, DataTrack, DataFileName, DataRadio, DataContainer, DataUnknown:
		return nil, nil
	}
	if err != nil {
		return events, fmt.Errorf("open %s %q: %w", req.DataKind, req.Title, err)
	}

	if immediate {
		e.activate(e.st.pending, &events)
	}
	return events, nil
}

// activateAncestor activates the top-level view that precedes child.
func (e *Engine) activateAncestor(child ViewKind, events *[]Event) error {
	c, err := e.catalog.Lookup(e.ancestry.Root(child))
	if err != nil {
		return fmt.Errorf("synthesize ancestor of %s: %w", child, err)
	}
	e.activate(c, events)
	return nil
}

// switchArtist replaces an artist page whose artist is not artist.
func (e *Engine) switchArtist(artist string, events *[]Event) error {
	top := e.st.stack.Top()
	if top.Filter != FilterByArtist || top.ArtistFilter == artist {
		return nil
	}
	if _, err := e.st.stack.Pop(); err != nil {
		return fmt.Errorf("replace artist %q: %w", top.ArtistFilter, err)
	}

	kind := OneArtist
	parent := e.st.stack.Top()
	if parent.Filter == FilterByGenre {
		kind = OneArtistFromGenre
	}
	c, err := e.templates.Get(kind)
	if err != nil {
		return err
	}
	c.Title = artist
	c.ArtistFilter = artist
	if kind == OneArtistFromGenre {
		c.GenreFilter = parent.GenreFilter
	}
	c.Depth = e.st.stack.Len() + 1

	e.logger.Debug("replace artist view", "from", top.ArtistFilter, "to", artist, "kind", kind)
	e.activate(c, events)
	return nil
}

func (e *Engine) stageAlbum(req ChildRequest) error {
	top := e.st.stack.Top()
	kind := OneAlbum
	if top.Filter == FilterByArtist {
		kind = OneAlbumFromArtist
	}

	c, err := e.templates.Get(kind)
	if err != nil {
		return err
	}
	c.Title = req.Title
	c.SecondaryTitle = req.SecondaryTitle
	c.MainImage = req.Image
	c.DatabaseIDFilter = req.ID
	// Only a plain artist page scopes the album. Inside a genre the album
	// opens unfiltered since its artist may differ from the page's.
	if kind == OneAlbumFromArtist {
		c.ArtistFilter = top.ArtistFilter
	}
	c.Depth = e.st.stack.Len() + 1
	e.st.pending = c
	return nil
}

func (e *Engine) stageArtist(req ChildRequest) error {
	top := e.st.stack.Top()
	kind := OneArtist
	if top.Filter == FilterByGenre {
		kind = OneArtistFromGenre
	}

	c, err := e.templates.Get(kind)
	if err != nil {
		return err
	}
	c.Title = req.Title
	c.MainImage = req.Image
	c.DatabaseIDFilter = req.ID
	c.ArtistFilter = req.Title
	if kind == OneArtistFromGenre {
		c.GenreFilter = top.GenreFilter
	}
	c.Depth = e.st.stack.Len() + 1
	e.st.pending = c
	return nil
}

func (e *Engine) stageGenre(req ChildRequest) error {
	c, err := e.templates.Get(AllArtistsFromGenre)
	if err != nil {
		return err
	}
	c.Title = req.Title
	c.MainImage = req.Image
	c.DatabaseIDFilter = req.ID
	c.GenreFilter = req.Title
	c.Depth = e.st.stack.Len() + 1
	e.st.pending = c
	return nil
}

// ConfirmViewLoaded tells the engine the host finished mounting the last
// activated view. A staged child is activated now.
func (e *Engine) ConfirmViewLoaded() []Event {
	next := e.st.pending
	if !next.Valid || next == e.st.stack.Top() {
		return nil
	}
	var events []Event
	e.st.pending = Config{}
	e.activate(next, &events)
	return events
}

// GoBack pops the view on top. The root view cannot be popped.
func (e *Engine) GoBack() ([]Event, error) {
	if e.st.stack.Len() <= 1 {
		return nil, fmt.Errorf("go back from %s: %w", e.st.stack.Top().Kind, ErrUnderflow)
	}
	events := []Event{PopRequested{}}
	if _, err := e.st.stack.Pop(); err != nil {
		return nil, err
	}
	e.st.pending = Config{}
	return events, nil
}

// activate pushes c at the next depth and records its event.
func (e *Engine) activate(c Config, events *[]Event) {
	c.Depth = e.st.stack.Len() + 1
	e.st.stack.Push(c)

	ev := activationEvent(c)
	if ev == nil {
		e.logger.Warn("view has no presentation", "kind", c.Kind)
		return
	}
	e.logger.Debug("activate view",
		"kind", c.Kind,
		"presentation", c.Presentation,
		"depth", c.Depth,
		"title", c.Title,
		"secondary", c.SecondaryTitle,
		"filter", c.Filter,
		"data", c.DataKind,
		"id", c.DatabaseIDFilter,
		"genre", c.GenreFilter,
		"artist", c.ArtistFilter,
	)
	*events = append(*events, ev)
}

// Replay returns the activation events of the active views, bottom first,
// without changing any state. Hosts use it to mount the initial view.
func (e *Engine) Replay() []Event {
	var events []Event
	for _, c := range e.st.stack.Snapshot() {
		if ev := activationEvent(c); ev != nil {
			events = append(events, ev)
		}
	}
	return events
}

// Current returns the view on top of the stack.
func (e *Engine) Current() Config { return e.st.stack.Top() }

// Pending returns the staged view, if any.
func (e *Engine) Pending() (Config, bool) {
	return e.st.pending, e.st.pending.Valid
}

// Stack returns the active views, bottom first.
func (e *Engine) Stack() []Config { return e.st.stack.Snapshot() }

// Depth returns the number of active views.
func (e *Engine) Depth() int { return e.st.stack.Len() }

// Catalog returns the top-level table.
func (e *Engine) Catalog() *Catalog { return e.catalog }

// Breadcrumbs returns the titles of the active views, bottom first.
func (e *Engine) Breadcrumbs() []string {
	views := e.st.stack.Snapshot()
	crumbs := make([]string, len(views))
	for i, v := range views {
		crumbs[i] = v.Title
	}
	return crumbs
}

// TopLevelIndex returns the menu position of the root view.
func (e *Engine) TopLevelIndex() int {
	views := e.st.stack.Snapshot()
	if len(views) == 0 {
		return -1
	}
	return e.catalog.IndexOf(views[0].Kind)
}
