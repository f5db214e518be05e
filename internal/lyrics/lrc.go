// Package lyrics parses LRC lyrics, finds them next to or inside a music
// file and follows the line matching a playback position.
package lyrics

import (
	"bufio"
	"cmp"
	"io"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Line is one lyric line. Time is zero for unsynced text.
type Line struct {
	Time time.Duration
	Text string
}

// Lyrics is a parsed lyrics document.
type Lyrics struct {
	Lines  []Line
	Title  string
	Artist string
	Album  string

	// Offset is the [offset:] tag, already applied to every line time.
	Offset time.Duration

	// synced is set when the source carried timestamps, even if they are
	// all zero.
	synced bool
}

// LineAt returns the index of the line shown at pos, or -1 before the
// first line and for unsynced lyrics.
func (l *Lyrics) LineAt(pos time.Duration) int {
	if !l.IsSynced() {
		return -1
	}
	i, found := slices.BinarySearchFunc(l.Lines, pos, func(line Line, p time.Duration) int {
		return cmp.Compare(line.Time, p)
	})
	for found && i+1 < len(l.Lines) && l.Lines[i+1].Time == pos {
		i++
	}
	if found {
		return i
	}
	return i - 1
}

// IsSynced reports whether the lines carry timestamps.
func (l *Lyrics) IsSynced() bool {
	return l.synced || slices.ContainsFunc(l.Lines, func(line Line) bool { return line.Time > 0 })
}

var (
	// [mm:ss], [mm:ss.xx], [mm:ss.xxx] and [mm:ss:xx]
	stampRe = regexp.MustCompile(`^\[(\d+):(\d{1,2})(?:[.:](\d{1,3}))?\]`)
	tagRe   = regexp.MustCompile(`^\[([a-zA-Z]+):(.*)\]$`)
)

// ParseLRC reads LRC lyrics from r. Lines sharing several timestamps are
// repeated once per timestamp; lines without any are skipped.
func ParseLRC(r io.Reader) (*Lyrics, error) {
	l := &Lyrics{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			continue
		}
		if stamps, text := splitStamps(raw); len(stamps) > 0 {
			l.synced = true
			for _, ts := range stamps {
				l.Lines = append(l.Lines, Line{Time: ts, Text: text})
			}
			continue
		}
		if m := tagRe.FindStringSubmatch(raw); m != nil {
			l.setTag(strings.ToLower(m[1]), strings.TrimSpace(m[2]))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if l.Offset != 0 {
		// A positive offset shows lines earlier.
		for i := range l.Lines {
			l.Lines[i].Time = max(0, l.Lines[i].Time-l.Offset)
		}
	}
	slices.SortStableFunc(l.Lines, func(a, b Line) int { return cmp.Compare(a.Time, b.Time) })
	return l, nil
}

func (l *Lyrics) setTag(name, value string) {
	switch name {
	case "ar":
		l.Artist = value
	case "ti":
		l.Title = value
	case "al":
		l.Album = value
	case "offset":
		if ms, err := strconv.Atoi(strings.TrimPrefix(value, "+")); err == nil {
			l.Offset = time.Duration(ms) * time.Millisecond
		}
	}
}

// splitStamps strips the leading timestamps of raw and returns them with
// the remaining text.
func splitStamps(raw string) ([]time.Duration, string) {
	var stamps []time.Duration
	rest := raw
	for {
		m := stampRe.FindStringSubmatch(rest)
		if m == nil {
			break
		}
		stamps = append(stamps, stampDuration(m[1], m[2], m[3]))
		rest = rest[len(m[0]):]
	}
	return stamps, strings.TrimSpace(rest)
}

// stampDuration converts the captured minute, second and fraction parts.
// Two fraction digits are centiseconds, three are milliseconds.
func stampDuration(mins, secs, frac string) time.Duration {
	m, _ := strconv.Atoi(mins)
	s, _ := strconv.Atoi(secs)
	d := time.Duration(m)*time.Minute + time.Duration(s)*time.Second
	if frac == "" {
		return d
	}
	f, _ := strconv.Atoi(frac)
	switch len(frac) {
	case 1:
		f *= 100
	case 2:
		f *= 10
	}
	return d + time.Duration(f)*time.Millisecond
}
