package testutil

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

// WriteID3v2 writes a file holding only an ID3v2.3 tag with the given text
// frames (e.g. "TIT2": "Title", "TRCK": "3/12"). Empty values are left
// out. Tag readers accept the file as an MP3 even though it carries no
// audio.
func WriteID3v2(t *testing.T, path string, frames map[string]string) {
	t.Helper()

	ids := make([]string, 0, len(frames))
	for id, v := range frames {
		if v == "" {
			continue
		}
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var body []byte
	for _, id := range ids {
		// ISO-8859-1 encoding byte, then the text
		data := append([]byte{0x00}, frames[id]...)
		hdr := make([]byte, 10)
		copy(hdr, id)
		binary.BigEndian.PutUint32(hdr[4:8], uint32(len(data)))
		body = append(body, hdr...)
		body = append(body, data...)
	}

	size := len(body)
	header := []byte{'I', 'D', '3', 3, 0, 0,
		byte(size >> 21 & 0x7f), byte(size >> 14 & 0x7f), byte(size >> 7 & 0x7f), byte(size & 0x7f)}

	WriteFile(t, path, append(header, body...))
}

// WriteFLAC writes a FLAC stream holding only a STREAMINFO block for a
// 44.1kHz 16-bit stereo stream with no samples.
func WriteFLAC(t *testing.T, path string) {
	t.Helper()

	info := make([]byte, 34)
	binary.BigEndian.PutUint16(info[0:2], 4096) // min block size
	binary.BigEndian.PutUint16(info[2:4], 4096) // max block size
	// sample rate (20 bits), channels-1 (3), bits per sample-1 (5), total samples (36)
	binary.BigEndian.PutUint64(info[10:18], 44100<<44|1<<41|15<<36)

	data := []byte("fLaC")
	data = append(data, 0x00, 0x00, 0x00, byte(len(info)))
	WriteFile(t, path, append(data, info...))
}

// WriteFile writes data to path, creating parent directories.
func WriteFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// Touch sets the modification time of path.
func Touch(t *testing.T, path string, mtime time.Time) {
	t.Helper()
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("chtimes %s: %v", path, err)
	}
}
