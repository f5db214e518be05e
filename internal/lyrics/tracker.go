package lyrics

import "time"

// linearWindow is how far playback may advance between two updates before
// the tracker stops walking forward and searches instead.
const linearWindow = time.Second

// Tracker follows the highlighted line while a track plays. Small forward
// steps walk from the previous line; seeks and rewinds search.
type Tracker struct {
	lyrics  *Lyrics
	index   int
	lastPos time.Duration
}

// NewTracker returns a tracker for l. l may be nil.
func NewTracker(l *Lyrics) *Tracker {
	t := &Tracker{}
	t.SetLyrics(l)
	return t
}

// SetLyrics replaces the lyrics and rewinds to the start.
func (t *Tracker) SetLyrics(l *Lyrics) {
	t.lyrics = l
	t.index = -1
	t.lastPos = 0
}

// Index returns the highlighted line, or -1.
func (t *Tracker) Index() int { return t.index }

// Update moves to pos and returns the highlighted line, or -1 when no line
// has started or the lyrics are unsynced.
func (t *Tracker) Update(pos time.Duration) int {
	if t.lyrics == nil || !t.lyrics.IsSynced() {
		t.index = -1
		return -1
	}

	if pos >= t.lastPos && pos-t.lastPos < linearWindow {
		t.index = t.walk(pos)
	} else {
		t.index = t.lyrics.LineAt(pos)
	}
	t.lastPos = pos
	return t.index
}

// walk advances from the current line while the next one has started.
func (t *Tracker) walk(pos time.Duration) int {
	lines := t.lyrics.Lines
	i := t.index
	for i+1 < len(lines) && lines[i+1].Time <= pos {
		i++
	}
	return i
}
