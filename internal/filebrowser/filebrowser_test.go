package filebrowser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/crate/internal/testutil"
	"github.com/llehouerou/crate/internal/viewnav"
)

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func setupTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Bebop", "Parker"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".cache"), 0o755))

	testutil.WriteID3v2(t, filepath.Join(root, "a.mp3"), map[string]string{"TIT2": "a"})
	testutil.WriteFLAC(t, filepath.Join(root, "c.flac"))
	testutil.WriteFile(t, filepath.Join(root, "list.m3u"), []byte("#EXTM3U\n#EXTINF:123,Artist - Title\na.mp3\n"))
	testutil.WriteFile(t, filepath.Join(root, "plain.m3u8"), []byte("a.mp3\nc.flac\n"))
	testutil.WriteFile(t, filepath.Join(root, "notes.txt"), []byte("liner notes"))
	testutil.WriteFile(t, filepath.Join(root, "cover.jpg"), []byte{0xFF, 0xD8, 0xFF, 0xE0, 0, 0x10, 'J', 'F', 'I', 'F'})
	testutil.WriteFile(t, filepath.Join(root, "fake.mp3"), []byte("this is just text"))
	testutil.WriteID3v2(t, filepath.Join(root, ".hidden.mp3"), map[string]string{"TIT2": "h"})
	testutil.WriteID3v2(t, filepath.Join(root, "Bebop", "Parker", "01.mp3"), map[string]string{"TIT2": "Ko-Ko"})
	return root
}

func TestNew_ListsMusicFoldersAndPlaylists(t *testing.T) {
	root := setupTree(t)

	m, err := New(root)
	require.NoError(t, err)

	assert.Equal(t, root, m.Root())
	assert.Equal(t, root, m.Path())
	assert.Equal(t, []string{"Bebop", "a.mp3", "c.flac", "list.m3u", "plain.m3u8"}, names(m.Entries()))

	byName := map[string]Entry{}
	for _, e := range m.Entries() {
		byName[e.Name] = e
	}
	assert.True(t, byName["Bebop"].IsDir)
	assert.Equal(t, viewnav.IconFolder, byName["Bebop"].Image())
	assert.Equal(t, viewnav.IconTrack, byName["a.mp3"].Image())
	assert.Equal(t, "audio/mpeg", byName["a.mp3"].MIME)
	assert.Equal(t, "audio/flac", byName["c.flac"].MIME)
	assert.True(t, byName["list.m3u"].IsPlaylist)
	assert.True(t, byName["plain.m3u8"].IsPlaylist)
	assert.Equal(t, viewnav.IconPlaylist, byName["list.m3u"].Image())
	assert.False(t, byName["a.mp3"].IsPlaylist)
	assert.Equal(t, filepath.Join(root, "c.flac"), byName["c.flac"].Path)
}

func TestModel_Navigate(t *testing.T) {
	root := setupTree(t)
	m, err := New(root)
	require.NoError(t, err)

	ok, err := m.Open(m.Entries()[0])
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "Bebop"), m.Path())
	assert.Equal(t, []string{"Parker"}, names(m.Entries()))

	ok, err = m.Open(Entry{Name: "a.mp3", Path: filepath.Join(root, "a.mp3")})
	require.NoError(t, err)
	assert.False(t, ok, "files are not entered")

	ok, err = m.Up()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, root, m.Path())

	ok, err = m.Up()
	require.NoError(t, err)
	assert.False(t, ok, "cannot leave the root")
}

func TestModel_SetPathSamePathRefreshes(t *testing.T) {
	root := setupTree(t)
	m, err := New(root)
	require.NoError(t, err)
	before := len(m.Entries())

	testutil.WriteID3v2(t, filepath.Join(root, "b.mp3"), map[string]string{"TIT2": "b"})
	require.NoError(t, m.SetPath(root))
	assert.Len(t, m.Entries(), before+1)

	require.NoError(t, os.Remove(filepath.Join(root, "b.mp3")))
	require.NoError(t, m.Refresh())
	assert.Len(t, m.Entries(), before)
}

func TestModel_SetPathErrors(t *testing.T) {
	root := setupTree(t)
	m, err := New(root)
	require.NoError(t, err)

	err = m.SetPath(filepath.Join(root, "a.mp3"))
	assert.ErrorIs(t, err, ErrNotDir)
	assert.Equal(t, root, m.Path(), "failed SetPath keeps the listing")

	err = m.SetPath(filepath.Join(root, "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = New(filepath.Join(root, "missing"))
	assert.Error(t, err)
}
