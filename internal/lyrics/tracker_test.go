package lyrics

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sampleLyrics() *Lyrics {
	return &Lyrics{Lines: []Line{
		{Time: 1 * time.Second, Text: "one"},
		{Time: 1500 * time.Millisecond, Text: "two"},
		{Time: 4 * time.Second, Text: "three"},
		{Time: 4 * time.Second, Text: "three again"},
		{Time: 9 * time.Second, Text: "four"},
	}}
}

func TestTracker_SmallSteps(t *testing.T) {
	tr := NewTracker(sampleLyrics())

	steps := []struct {
		pos  time.Duration
		want int
	}{
		{0, -1},
		{900 * time.Millisecond, -1},
		{1200 * time.Millisecond, 0},
		{1900 * time.Millisecond, 1},
		{2800 * time.Millisecond, 1},
		{3700 * time.Millisecond, 1},
		{4100 * time.Millisecond, 3},
		{4500 * time.Millisecond, 3},
	}
	for _, s := range steps {
		assert.Equal(t, s.want, tr.Update(s.pos), "Update(%v)", s.pos)
	}
	assert.Equal(t, 3, tr.Index())
}

func TestTracker_SeekAndRewind(t *testing.T) {
	tr := NewTracker(sampleLyrics())

	assert.Equal(t, 4, tr.Update(30*time.Second), "seek past the end")
	assert.Equal(t, 1, tr.Update(2*time.Second), "rewind")
	assert.Equal(t, -1, tr.Update(0), "back to start")
}

func TestTracker_MatchesLineAt(t *testing.T) {
	l := sampleLyrics()
	tr := NewTracker(l)
	r := rand.New(rand.NewPCG(7, 11))

	pos := time.Duration(0)
	for range 500 {
		if r.IntN(5) == 0 {
			pos = time.Duration(r.Int64N(int64(12 * time.Second)))
		} else {
			pos += time.Duration(r.Int64N(int64(time.Second)))
		}
		assert.Equal(t, l.LineAt(pos), tr.Update(pos), "pos %v", pos)
	}
}

func TestTracker_NoLyrics(t *testing.T) {
	tr := NewTracker(nil)
	assert.Equal(t, -1, tr.Update(5*time.Second))

	tr.SetLyrics(&Lyrics{Lines: []Line{{Text: "unsynced"}}})
	assert.Equal(t, -1, tr.Update(5*time.Second))

	tr.SetLyrics(sampleLyrics())
	assert.Equal(t, -1, tr.Index(), "SetLyrics rewinds")
	assert.Equal(t, 0, tr.Update(time.Second))
}
