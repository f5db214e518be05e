package library

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	dbutil "github.com/llehouerou/crate/internal/db"
	"github.com/llehouerou/crate/internal/tags"
)

const numWorkers = 8

// Scan phases reported through ScanProgress.Phase.
const (
	PhaseScanning   = "scanning"
	PhaseProcessing = "processing"
	PhaseCleaning   = "cleaning"
	PhaseDone       = "done"
)

// ScanProgress reports the progress of a library scan.
type ScanProgress struct {
	Phase       string
	Current     int
	Total       int
	CurrentFile string
	Stats       *ScanStats // Only populated when Phase == PhaseDone
}

// ScanStats holds statistics for a completed scan.
type ScanStats struct {
	Added   int
	Updated int
	Removed int
	Skipped int
}

// fileInfo holds information about a discovered music file.
type fileInfo struct {
	path  string
	mtime int64
}

// trackResult holds the result of processing a music file.
type trackResult struct {
	file fileInfo
	tag  *tags.Tag
}

// Scan walks sources, indexes new or modified music files and drops
// tracks whose files vanished. Files whose mtime is unchanged are not
// reread. progress may be nil; when set it is closed on return.
func (l *Library) Scan(ctx context.Context, sources []string, progress chan<- ScanProgress) error {
	report := func(p ScanProgress) {
		if progress != nil {
			progress <- p
		}
	}
	if progress != nil {
		defer close(progress)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stats := &ScanStats{}

	// Phase 1: Scan directories for music files
	report(ScanProgress{Phase: PhaseScanning})
	files, err := discoverFiles(ctx, sources)
	if err != nil {
		return err
	}
	report(ScanProgress{Phase: PhaseScanning, Current: len(files)})

	// Phase 2: Compare with what is stored
	existing, err := l.existingTracks(sources)
	if err != nil {
		return err
	}

	toProcess := make([]fileInfo, 0, len(files))
	for _, f := range files {
		if mtime, ok := existing[f.path]; ok && mtime == f.mtime {
			continue
		}
		toProcess = append(toProcess, f)
	}

	// Phase 3: Read tags in parallel and store sequentially
	results := readAll(ctx, toProcess)
	processed := 0
	err = dbutil.WithTxContext(ctx, l.db, func(tx *sql.Tx) error {
		for r := range results {
			processed++
			report(ScanProgress{Phase: PhaseProcessing, Current: processed, Total: len(toProcess), CurrentFile: r.file.path})
			if r.tag == nil {
				stats.Skipped++
				continue
			}
			if err := upsertTrack(tx, r.file, r.tag); err != nil {
				return err
			}
			if _, ok := existing[r.file.path]; ok {
				stats.Updated++
			} else {
				stats.Added++
			}
		}
		return ctx.Err()
	})
	if err != nil {
		return err
	}

	// Phase 4: Clean up deleted files
	report(ScanProgress{Phase: PhaseCleaning})
	discovered := make(map[string]struct{}, len(files))
	for _, f := range files {
		discovered[f.path] = struct{}{}
	}
	for path := range existing {
		if _, ok := discovered[path]; ok {
			continue
		}
		if _, err := l.db.ExecContext(ctx, `DELETE FROM library_tracks WHERE path = ?`, path); err != nil {
			return err
		}
		stats.Removed++
	}

	report(ScanProgress{Phase: PhaseDone, Current: len(files), Total: len(files), Stats: stats})
	return nil
}

// discoverFiles walks the given source directories and returns all music
// files found. Unreadable entries are skipped.
func discoverFiles(ctx context.Context, sources []string) ([]fileInfo, error) {
	var files []fileInfo
	for _, src := range sources {
		err := filepath.WalkDir(src, func(path string, d os.DirEntry, walkErr error) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if walkErr != nil {
				return nil //nolint:nilerr // keep scanning other paths
			}
			if d.IsDir() || !tags.IsMusicFile(path) {
				return nil
			}
			info, err := d.Info()
			if err != nil {
				return nil //nolint:nilerr // keep scanning other files
			}
			files = append(files, fileInfo{path: path, mtime: info.ModTime().Unix()})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

// readAll reads tags with a fixed worker pool. Results arrive in any order;
// files without artist or album come back with a nil tag.
func readAll(ctx context.Context, files []fileInfo) <-chan trackResult {
	workCh := make(chan fileInfo)
	resultCh := make(chan trackResult)

	var wg sync.WaitGroup
	for range numWorkers {
		wg.Go(func() {
			for f := range workCh {
				t, err := tags.Read(f.path)
				if err != nil || t.Artist == "" || t.Album == "" {
					t = nil
				}
				select {
				case resultCh <- trackResult{file: f, tag: t}:
				case <-ctx.Done():
					return
				}
			}
		})
	}

	go func() {
		defer close(workCh)
		for _, f := range files {
			select {
			case workCh <- f:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	return resultCh
}

// existingTracks returns path->mtime for stored tracks under sources.
func (l *Library) existingTracks(sources []string) (map[string]int64, error) {
	rows, err := l.db.Query(`SELECT path, mtime FROM library_tracks`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tracks := make(map[string]int64)
	for rows.Next() {
		var path string
		var mtime int64
		if err := rows.Scan(&path, &mtime); err != nil {
			return nil, err
		}
		for _, src := range sources {
			if strings.HasPrefix(path, sourcePrefix(src)) {
				tracks[path] = mtime
				break
			}
		}
	}
	return tracks, rows.Err()
}

// upsertTrack inserts or updates a track from its tags. Play statistics
// and rating survive rescans.
func upsertTrack(ex executor, f fileInfo, t *tags.Tag) error {
	now := time.Now().Unix()
	_, err := ex.Exec(`
		INSERT INTO library_tracks (path, mtime, artist, album_artist, album, title, disc_number, track_number,
		                            year, genre, composer, lyricist, comment, added_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			mtime = excluded.mtime,
			artist = excluded.artist,
			album_artist = excluded.album_artist,
			album = excluded.album,
			title = excluded.title,
			disc_number = excluded.disc_number,
			track_number = excluded.track_number,
			year = excluded.year,
			genre = excluded.genre,
			composer = excluded.composer,
			lyricist = excluded.lyricist,
			comment = excluded.comment,
			updated_at = excluded.updated_at
	`, f.path, f.mtime, t.Artist, t.AlbumArtist, t.Album, t.Title,
		dbutil.NullInt64(int64(t.DiscNumber)), dbutil.NullInt64(int64(t.TrackNumber)), dbutil.NullInt64(int64(t.Year())),
		dbutil.NullString(t.Genre), dbutil.NullString(t.Composer), dbutil.NullString(t.Lyricist), dbutil.NullString(t.Comment),
		f.mtime, now)
	return err
}
