// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/kotorcodec/audio"
)

// Prober reads RIFF/WAVE stream parameters using github.com/go-audio/wav.
type Prober struct{}

func (Prober) Sniff(prefix []byte) bool {
	return len(prefix) >= 12 &&
		bytes.Equal(prefix[:4], []byte("RIFF")) &&
		bytes.Equal(prefix[8:12], []byte("WAVE"))
}

func (Prober) Probe(r io.ReadSeeker) (audio.StreamInfo, error) {
	dec := gowav.NewDecoder(r)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return audio.StreamInfo{}, errors.Join(ErrNotWavFile, err)
	}

	if dec.NumChans == 0 || dec.SampleRate == 0 {
		return audio.StreamInfo{}, ErrUnsupportedWavLayout
	}

	info := audio.StreamInfo{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   int(dec.BitDepth),
	}

	// a truncated data chunk leaves the duration unknown
	if d, err := dec.Duration(); err == nil {
		info.Duration = d
	}

	return info, nil
}
