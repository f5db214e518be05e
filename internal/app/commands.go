package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/crate/internal/errmsg"
	"github.com/llehouerou/crate/internal/library"
	"github.com/llehouerou/crate/internal/lyrics"
	"github.com/llehouerou/crate/internal/viewnav"
)

// loadPanesCmd fetches the rows of each activated view. File browser panes
// are listed on mount since the browser is owned by the update loop.
func loadPanesCmd(lib *library.Library, limit int, events []viewnav.Event) tea.Cmd {
	return func() tea.Msg {
		panes := make([]Pane, 0, len(events))
		for _, ev := range events {
			if p, ok := loadPane(lib, limit, ev); ok {
				panes = append(panes, p)
			}
		}
		return panesLoadedMsg{panes: panes}
	}
}

func loadPane(lib *library.Library, limit int, ev viewnav.Event) (Pane, bool) {
	var p Pane
	switch e := ev.(type) {
	case viewnav.ActivateGrid:
		p = Pane{
			Kind: e.Kind, Depth: e.Depth, Title: e.Title, Subtitle: e.SecondaryTitle,
			Image: e.Image, Grid: true, CanRate: e.CanBeRated,
		}
	case viewnav.ActivateList:
		p = Pane{
			Kind: e.Kind, Depth: e.Depth, Title: e.Title, Subtitle: e.SecondaryTitle,
			Image: e.Image, CanRate: e.DataKind == viewnav.DataTrack,
		}
	case viewnav.ActivateFileBrowser:
		return Pane{Kind: e.Kind, Depth: e.Depth, Title: e.Title, Image: e.Image, IsFiles: true}, true
	case viewnav.ActivateContext:
		return nowPlayingPane(lib, e), true
	default:
		return Pane{}, false
	}

	q, _ := library.QueryForEvent(ev)
	q.Limit = limit
	rows, err := lib.Rows(q)
	if err != nil {
		p.Err = errmsg.FormatWith(errmsg.OpRowsLoad, p.Title, err)
	}
	p.Rows = rows
	p.Empty = "Nothing here yet"
	return p, true
}

// nowPlayingPane shows the lyrics of the last played track.
func nowPlayingPane(lib *library.Library, e viewnav.ActivateContext) Pane {
	p := Pane{Kind: e.Kind, Depth: e.Depth, Title: e.Title, Image: e.Image, Empty: "Nothing played yet"}

	recent, err := lib.RecentlyPlayed(1)
	if err != nil {
		p.Err = errmsg.Format(errmsg.OpRowsLoad, err)
		return p
	}
	if len(recent) == 0 {
		return p
	}
	t := recent[0]
	p.Subtitle = t.Title
	if t.Artist != "" {
		p.Subtitle = t.Artist + " - " + t.Title
	}
	p.Empty = "No lyrics"

	l, _, err := lyrics.Load(t.Path)
	switch {
	case errors.Is(err, lyrics.ErrNotFound):
		return p
	case err != nil:
		p.Err = errmsg.FormatWith(errmsg.OpLyricsLoad, t.Title, err)
		return p
	}

	synced := l.IsSynced()
	p.Rows = make([]library.Row, len(l.Lines))
	for i, line := range l.Lines {
		p.Rows[i] = library.Row{Title: line.Text}
		if synced {
			p.Rows[i].Info = formatTimestamp(line.Time)
		}
	}
	// Without a player, the track is assumed to have run since it was
	// last marked played.
	if synced && !t.LastPlayedAt.IsZero() {
		if i := lyrics.NewTracker(l).Update(time.Since(t.LastPlayedAt)); i >= 0 {
			p.MoveTo(i)
		}
	}
	return p
}

func formatTimestamp(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// runScan scans sources in the background. Progress arrives on the
// returned channel, which is closed once the result is on errc.
func runScan(lib *library.Library, sources []string) (<-chan library.ScanProgress, <-chan error) {
	ch := make(chan library.ScanProgress, 16)
	errc := make(chan error, 1)
	progress := make(chan library.ScanProgress)
	go func() {
		errc <- lib.Scan(context.Background(), sources, progress)
	}()
	go func() {
		defer close(ch)
		for p := range progress {
			ch <- p
		}
	}()
	return ch, errc
}

// waitForChannel creates a command that waits for a value from a channel.
// Returns nil if the channel is nil.
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}

func (m Model) waitForScan() tea.Cmd {
	errc := m.scanErr
	return waitForChannel(m.scanCh, func(p library.ScanProgress, ok bool) tea.Msg {
		if !ok {
			return ScanCompleteMsg{Err: <-errc}
		}
		return ScanProgressMsg(p)
	})
}
