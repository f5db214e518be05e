package app

import (
	"context"
	"path/filepath"
	"strconv"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/crate/internal/config"
	"github.com/llehouerou/crate/internal/library"
	"github.com/llehouerou/crate/internal/state"
	"github.com/llehouerou/crate/internal/testutil"
	"github.com/llehouerou/crate/internal/viewnav"
)

// fixture is a scanned library of three tracks on two albums, plus an
// empty "incoming" folder next to them.
type fixture struct {
	root  string
	lib   *library.Library
	state *state.Mock
}

func writeTrack(t *testing.T, path, artist, album, title, track string) {
	t.Helper()
	testutil.WriteID3v2(t, path, map[string]string{
		"TPE1": artist,
		"TALB": album,
		"TIT2": title,
		"TRCK": track,
		"TCON": "Jazz",
	})
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	root := t.TempDir()
	writeTrack(t, filepath.Join(root, "coltrane", "giant-steps", "01.mp3"), "John Coltrane", "Giant Steps", "Giant Steps", "1")
	writeTrack(t, filepath.Join(root, "coltrane", "giant-steps", "02.mp3"), "John Coltrane", "Giant Steps", "Naima", "2")
	writeTrack(t, filepath.Join(root, "davis", "kind-of-blue", "01.mp3"), "Miles Davis", "Kind of Blue", "So What", "1")
	testutil.WriteFile(t, filepath.Join(root, "incoming", ".keep"), nil)

	mgr, err := state.OpenAt(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { mgr.Close() })

	lib := library.New(mgr.DB())
	require.NoError(t, lib.Scan(context.Background(), []string{root}, nil))

	return &fixture{root: root, lib: lib, state: state.NewMock()}
}

func (f *fixture) config(startView string) *config.Config {
	cfg := config.Default()
	cfg.StartView = startView
	cfg.MusicFolder = f.root
	cfg.Icons = "none"
	return cfg
}

// start builds the model and runs it until the start view is mounted.
func (f *fixture) start(t *testing.T, startView string) Model {
	t.Helper()
	m, err := New(f.config(startView), f.lib, f.state)
	require.NoError(t, err)
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	return drive(t, m, m.Init())
}

// send delivers msg and runs every resulting command to completion.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok, "Update should return Model")
	return drive(t, model, cmd)
}

// drive runs cmd and feeds its messages back until nothing is left.
func drive(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case nil:
		return m
	case tea.QuitMsg:
		return m
	case tea.BatchMsg:
		for _, c := range msg {
			m = drive(t, m, c)
		}
		return m
	default:
		return send(t, m, msg)
	}
}

func key(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m = send(t, m, key(k))
	}
	return m
}

// selectView presses the menu digit of kind.
func selectView(t *testing.T, m Model, kind viewnav.ViewKind) Model {
	t.Helper()
	i := m.Engine.Catalog().IndexOf(kind)
	require.GreaterOrEqual(t, i, 0)
	return press(t, m, strconv.Itoa(i+1))
}

// cursorTo moves the top pane cursor onto the row titled title.
func cursorTo(t *testing.T, m Model, title string) Model {
	t.Helper()
	top := m.Top()
	require.NotNil(t, top)
	for i, r := range top.Rows {
		if r.Title == title {
			top.MoveTo(i)
			return m
		}
	}
	t.Fatalf("no row %q in %s", title, top.Kind)
	return m
}

func rowTitles(p *Pane) []string {
	titles := make([]string, len(p.Rows))
	for i, r := range p.Rows {
		titles[i] = r.Title
	}
	return titles
}

func paneKinds(m Model) []viewnav.ViewKind {
	kinds := make([]viewnav.ViewKind, len(m.Panes))
	for i, p := range m.Panes {
		kinds[i] = p.Kind
	}
	return kinds
}
