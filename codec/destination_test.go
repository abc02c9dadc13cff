// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ik5/kotorcodec/audio"
)

func TestResolveDestination(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	if err := os.Mkdir(out, 0o755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		input  string
		output string
		ext    string
		want   string
	}{
		{"in place", filepath.Join("a", "b.raw"), "", audio.ExtWAV, filepath.Join("a", "b.wav")},
		{"in place mp3", filepath.Join("a", "b.wav"), "", audio.ExtMP3, filepath.Join("a", "b.mp3")},
		{"existing directory", filepath.Join("a", "b.raw"), out, audio.ExtWAV, filepath.Join(out, "b.wav")},
		{"trailing separator", filepath.Join("a", "b.raw"), filepath.Join(dir, "new") + string(filepath.Separator), audio.ExtWAV, filepath.Join(dir, "new", "b.wav")},
		{"explicit file", filepath.Join("a", "b.raw"), filepath.Join(out, "renamed.dat"), audio.ExtWAV, filepath.Join(out, "renamed.wav")},
		{"explicit file without extension", "b.raw", filepath.Join(dir, "plain"), audio.ExtWAV, filepath.Join(dir, "plain.wav")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ResolveDestination(tt.input, tt.output, tt.ext))
		})
	}
}

func TestReplaceExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"b.raw", "b.wav"},
		{"b", "b.wav"},
		{"b.tar.gz", "b.tar.wav"},
		{".hidden", ".hidden.wav"},
		{filepath.Join("dir.d", "b"), filepath.Join("dir.d", "b.wav")},
		{filepath.Join("dir", "b.wav"), filepath.Join("dir", "b.wav")},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ReplaceExtension(tt.path, ".wav"))
		})
	}
}
