// SPDX-License-Identifier: EPL-2.0

// Package codectest provides fixtures for tests that transcode files.
package codectest

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/ik5/kotorcodec/audio"
)

// Short headers keep fixtures readable. The VO header is longer than the
// SFX one, like the real pair.
var (
	SFXHeader = []byte{0xAA, 0xBB, 0xCC, 0xDD}
	VOHeader  = []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66}
)

// Headers returns a registry built from SFXHeader and VOHeader.
func Headers(t testing.TB) *audio.HeaderRegistry {
	t.Helper()

	h, err := audio.NewHeaderRegistry(SFXHeader, VOHeader)
	if err != nil {
		t.Fatalf("NewHeaderRegistry() error = %v", err)
	}

	return h
}

// Join concatenates byte slices.
func Join(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

// WriteFile creates dir/name (and its parents) holding data and returns the path.
func WriteFile(t testing.TB, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

// ReadFile returns the content of path, failing the test if it is missing.
func ReadFile(t testing.TB, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%s) error = %v", path, err)
	}

	return data
}

// Snapshot is the state of a directory tree: relative path to content.
type Snapshot map[string]string

// Tree walks dir and records every file with its content and every
// directory with a trailing slash.
func Tree(t testing.TB, dir string) Snapshot {
	t.Helper()

	snap := Snapshot{}
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, _ := filepath.Rel(dir, path)
		if info.IsDir() {
			snap[rel+"/"] = ""
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		snap[rel] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("Tree(%s) error = %v", dir, err)
	}

	return snap
}

// Names lists the entries of dir, sorted.
func Names(t testing.TB, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir(%s) error = %v", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	return names
}

// FileCall is one RecordFile call seen by a Recorder.
type FileCall struct {
	Op      string
	Format  audio.Format
	Written int64
	Err     error
}

// BatchCall is one RecordBatch call seen by a Recorder.
type BatchCall struct {
	Op     string
	Total  int
	Failed int
}

// Recorder keeps every call it receives.
type Recorder struct {
	Files   []FileCall
	Batches []BatchCall
}

func (r *Recorder) RecordFile(op string, format audio.Format, written int64, err error) {
	r.Files = append(r.Files, FileCall{Op: op, Format: format, Written: written, Err: err})
}

func (r *Recorder) RecordBatch(op string, total, failed int, _ time.Duration) {
	r.Batches = append(r.Batches, BatchCall{Op: op, Total: total, Failed: failed})
}
