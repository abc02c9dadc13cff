// SPDX-License-Identifier: EPL-2.0

package kotorcodec

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/kotorcodec/audio"
	"github.com/ik5/kotorcodec/codec"
	"github.com/ik5/kotorcodec/internal/codectest"
)

// wavPayload encodes frames of 16-bit mono silence at rate.
func wavPayload(t *testing.T, rate, frames int) []byte {
	t.Helper()

	path := filepath.Join(t.TempDir(), "payload.wav")
	f, err := os.Create(path)
	require.NoError(t, err)

	enc := gowav.NewEncoder(f, rate, 16, 1, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: rate},
		Data:           make([]int, frames),
		SourceBitDepth: 16,
	}
	require.NoError(t, enc.Write(buf))
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())

	return codectest.ReadFile(t, path)
}

func TestNewProbeRegistry(t *testing.T) {
	t.Parallel()

	reg := NewProbeRegistry()
	for _, key := range []string{"wav", "aiff", "ogg vorbis", "mp3"} {
		_, ok := reg.Get(key)
		assert.True(t, ok, key)
	}
}

func TestInspect(t *testing.T) {
	t.Parallel()

	headers := codectest.Headers(t)
	probes := NewProbeRegistry()
	dir := t.TempDir()
	payload := wavPayload(t, 22050, 22050)

	t.Run("SFX with wav payload", func(t *testing.T) {
		t.Parallel()

		path := codectest.WriteFile(t, dir, "sfx.wav", codectest.Join(codectest.SFXHeader, payload))

		report, err := Inspect(path, headers, probes)
		require.NoError(t, err)

		assert.Equal(t, path, report.Path)
		assert.Equal(t, audio.SFX, report.Format)
		assert.Equal(t, len(codectest.SFXHeader), report.HeaderSize)
		assert.Equal(t, int64(len(payload)), report.PayloadSize)
		require.NotNil(t, report.Payload)
		assert.Equal(t, "wav", report.Payload.Codec)
		assert.Equal(t, 22050, report.Payload.SampleRate)
		assert.Equal(t, 1, report.Payload.Channels)
		assert.Equal(t, 16, report.Payload.BitDepth)
		assert.NoError(t, report.PayloadErr)
	})

	t.Run("VO with unknown payload", func(t *testing.T) {
		t.Parallel()

		path := codectest.WriteFile(t, dir, "vo.wav", codectest.Join(codectest.VOHeader, []byte("not audio at all")))

		report, err := Inspect(path, headers, probes)
		require.NoError(t, err)

		assert.Equal(t, audio.VO, report.Format)
		assert.Equal(t, int64(16), report.PayloadSize)
		assert.Nil(t, report.Payload)
		assert.True(t, report.IsUnknownPayload())
		assert.Equal(t, "VO", report.String())
	})

	t.Run("plain wav", func(t *testing.T) {
		t.Parallel()

		path := codectest.WriteFile(t, dir, "plain.wav", payload)

		report, err := Inspect(path, headers, probes)
		require.NoError(t, err)

		assert.Equal(t, audio.None, report.Format)
		assert.Zero(t, report.HeaderSize)
		assert.Equal(t, int64(len(payload)), report.PayloadSize)
		require.NotNil(t, report.Payload)
		assert.Contains(t, report.String(), "None (wav 22050Hz 1ch 16bit")
	})

	t.Run("without probes", func(t *testing.T) {
		t.Parallel()

		path := codectest.WriteFile(t, dir, "noprobe.wav", codectest.Join(codectest.SFXHeader, payload))

		report, err := Inspect(path, headers, nil)
		require.NoError(t, err)

		assert.Equal(t, audio.SFX, report.Format)
		assert.Nil(t, report.Payload)
		assert.NoError(t, report.PayloadErr)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		_, err := Inspect(filepath.Join(dir, "missing.wav"), headers, probes)
		assert.ErrorIs(t, err, codec.ErrOpen)
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		_, err := Inspect(t.TempDir(), headers, probes)
		assert.ErrorIs(t, err, codec.ErrOpen)
	})
}

func TestInspect_DefaultHeaders(t *testing.T) {
	t.Parallel()

	headers := audio.DefaultHeaders()
	path := codectest.WriteFile(t, t.TempDir(), "vo.wav",
		codectest.Join(headers.Bytes(audio.VO), bytes.Repeat([]byte{0}, 8)))

	report, err := Inspect(path, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, audio.VO, report.Format)
	assert.Equal(t, audio.VOHeaderSize, report.HeaderSize)
	assert.Equal(t, int64(8), report.PayloadSize)
}
