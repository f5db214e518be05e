package lyrics

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) *Lyrics {
	t.Helper()
	l, err := ParseLRC(strings.NewReader(src))
	require.NoError(t, err)
	return l
}

func TestParseLRC_TagsAndLines(t *testing.T) {
	l := parse(t, `[ar:Nina Simone]
[ti:Feeling Good]
[al:I Put a Spell on You]
[by:someone]

[00:05.10]Birds flying high
[00:09.80]You know how I feel
[01:02]Sun in the sky`)

	assert.Equal(t, "Nina Simone", l.Artist)
	assert.Equal(t, "Feeling Good", l.Title)
	assert.Equal(t, "I Put a Spell on You", l.Album)
	assert.Equal(t, []Line{
		{Time: 5100 * time.Millisecond, Text: "Birds flying high"},
		{Time: 9800 * time.Millisecond, Text: "You know how I feel"},
		{Time: 62 * time.Second, Text: "Sun in the sky"},
	}, l.Lines)
	assert.True(t, l.IsSynced())
}

func TestParseLRC_RepeatedStampsAreSorted(t *testing.T) {
	l := parse(t, `[00:30.00][00:10.00]Chorus
[00:20.00]Verse`)

	require.Len(t, l.Lines, 3)
	assert.Equal(t, "Chorus", l.Lines[0].Text)
	assert.Equal(t, 10*time.Second, l.Lines[0].Time)
	assert.Equal(t, "Verse", l.Lines[1].Text)
	assert.Equal(t, "Chorus", l.Lines[2].Text)
	assert.Equal(t, 30*time.Second, l.Lines[2].Time)
}

func TestParseLRC_StampFormats(t *testing.T) {
	cases := map[string]time.Duration{
		"[01:02]x":     62 * time.Second,
		"[01:02.5]x":   62*time.Second + 500*time.Millisecond,
		"[01:02.34]x":  62*time.Second + 340*time.Millisecond,
		"[01:02.345]x": 62*time.Second + 345*time.Millisecond,
		"[01:02:34]x":  62*time.Second + 340*time.Millisecond,
		"[12:00.00]x":  12 * time.Minute,
	}
	for src, want := range cases {
		l := parse(t, src)
		require.Len(t, l.Lines, 1, src)
		assert.Equal(t, want, l.Lines[0].Time, src)
	}
}

func TestParseLRC_Offset(t *testing.T) {
	l := parse(t, `[offset:+500]
[00:00.20]early
[00:02.00]later`)

	assert.Equal(t, 500*time.Millisecond, l.Offset)
	assert.Equal(t, time.Duration(0), l.Lines[0].Time, "clamped at zero")
	assert.Equal(t, 1500*time.Millisecond, l.Lines[1].Time)

	l = parse(t, "[offset:-250]\n[00:01.00]late")
	assert.Equal(t, 1250*time.Millisecond, l.Lines[0].Time)
}

func TestParseLRC_UntimedTextIsDropped(t *testing.T) {
	l := parse(t, "just words\n[00:00.00]zero\n[ar:Someone]")

	assert.Equal(t, []Line{{Text: "zero"}}, l.Lines)
	assert.True(t, l.IsSynced(), "a zero stamp is still a stamp")
	assert.Equal(t, "Someone", l.Artist)
}

func TestParseLRC_ZeroStampsStaySynced(t *testing.T) {
	l := parse(t, "[00:00.00]intro\n[00:00.00]count in")
	assert.True(t, l.IsSynced())
	assert.Equal(t, 1, l.LineAt(0))
	assert.Equal(t, 1, NewTracker(l).Update(500*time.Millisecond))

	l = parse(t, "[offset:+1000]\n[00:00.50]a\n[00:00.80]b")
	assert.True(t, l.IsSynced(), "offset clamps every line to zero")
	assert.Equal(t, 1, l.LineAt(time.Second))

	assert.False(t, plainLyrics("[00:00.00]").IsSynced(), "plain text is never synced")
}

func TestLyrics_LineAt(t *testing.T) {
	l := parse(t, `[00:01.00]a
[00:03.00]b
[00:03.00]b2
[00:07.00]c`)

	cases := []struct {
		pos  time.Duration
		want int
	}{
		{0, -1},
		{999 * time.Millisecond, -1},
		{time.Second, 0},
		{2 * time.Second, 0},
		{3 * time.Second, 2},
		{6 * time.Second, 2},
		{7 * time.Second, 3},
		{time.Hour, 3},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, l.LineAt(c.pos), "pos %s", c.pos)
	}
}

func TestLyrics_LineAt_Unsynced(t *testing.T) {
	assert.Equal(t, -1, (&Lyrics{}).LineAt(time.Second))
	assert.Equal(t, -1, plainLyrics("one\ntwo").LineAt(time.Second))
}
