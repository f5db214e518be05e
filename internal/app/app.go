// Package app is the terminal host of the view engine: it mounts the views
// the engine activates and turns key presses into engine requests.
package app

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/llehouerou/crate/internal/config"
	"github.com/llehouerou/crate/internal/errmsg"
	"github.com/llehouerou/crate/internal/filebrowser"
	"github.com/llehouerou/crate/internal/icons"
	"github.com/llehouerou/crate/internal/keymap"
	"github.com/llehouerou/crate/internal/library"
	"github.com/llehouerou/crate/internal/state"
	"github.com/llehouerou/crate/internal/trackmeta"
	"github.com/llehouerou/crate/internal/viewnav"
)

// Model is the bubbletea model of the application.
type Model struct {
	Engine   *viewnav.Engine
	Library  *library.Library
	Files    *filebrowser.Model
	StateMgr state.Interface
	Keys     *keymap.Resolver
	Icons    icons.Set
	Logger   *log.Logger

	HistoryLimit int

	// Panes holds one mounted view per engine depth, bottom first.
	Panes []Pane
	// Loading is set while activated views are being fetched; navigation
	// requests wait for it to clear.
	Loading bool

	Info     *trackmeta.Model
	ShowHelp bool

	Scanning     bool
	ScanProgress library.ScanProgress
	scanCh       <-chan library.ScanProgress
	scanErr      <-chan error

	startView viewnav.ViewKind

	Width     int
	Height    int
	ErrorMsg  string
	StatusMsg string
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger shared with the engine.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.Logger = l
		}
	}
}

// New creates the model. The start view is the saved top-level view, or
// cfg.StartView on first run.
func New(cfg *config.Config, lib *library.Library, stateMgr state.Interface, opts ...Option) (Model, error) {
	m := Model{
		Library:      lib,
		StateMgr:     stateMgr,
		Keys:         keymap.NewResolver(keymap.Bindings),
		Icons:        icons.New(cfg.Icons),
		Logger:       log.New(io.Discard),
		HistoryLimit: cfg.HistoryLimit,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.Engine = viewnav.New(viewnav.WithLogger(m.Logger))

	root := cfg.MusicFolder
	if root == "" {
		root = "."
	}
	files, err := filebrowser.New(root)
	if err != nil {
		return Model{}, err
	}
	m.Files = files

	m.startView, _ = viewnav.ParseViewKind(cfg.StartView)
	if nav, err := stateMgr.GetNavigation(); err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpStateLoad, err)
	} else if nav != nil {
		if kind, ok := viewnav.ParseViewKind(nav.TopLevelView); ok {
			m.startView = kind
		}
		if nav.FolderPath != "" {
			if err := m.Files.SetPath(nav.FolderPath); err != nil {
				m.Logger.Warn("saved folder unavailable", "path", nav.FolderPath, "err", err)
			}
		}
	}
	return m, nil
}

// Init mounts the start view.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return startMsg{} }
}

// start selects the start view, or replays the engine's initial stack when
// the start view is already on top.
func (m *Model) start() tea.Cmd {
	var events []viewnav.Event
	if m.startView != viewnav.UnknownView {
		ev, err := m.Engine.SelectTopLevel(m.startView)
		if err != nil {
			m.ErrorMsg = errmsg.FormatWith(errmsg.OpViewSelect, m.startView.String(), err)
		}
		events = ev
	}
	if len(events) == 0 {
		events = m.Engine.Replay()
	}
	return m.apply(events)
}
