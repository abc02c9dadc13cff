// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/ik5/kotorcodec/audio"
	"github.com/jfreymuth/oggvorbis"
)

// oggStream is the part of oggvorbis.Reader the prober needs, to allow testing
type oggStream interface {
	SampleRate() int
	Channels() int
	Length() int64
}

// Prober reads Ogg Vorbis stream parameters using github.com/jfreymuth/oggvorbis.
type Prober struct{}

func (Prober) Sniff(prefix []byte) bool {
	return bytes.HasPrefix(prefix, []byte("OggS"))
}

func (Prober) Probe(r io.ReadSeeker) (audio.StreamInfo, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return audio.StreamInfo{}, fmt.Errorf("%w", err)
	}

	return streamInfo(dec), nil
}

func streamInfo(s oggStream) audio.StreamInfo {
	info := audio.StreamInfo{
		SampleRate: s.SampleRate(),
		Channels:   s.Channels(),
	}

	// Length is in samples per channel, 0 when unknown
	if n := s.Length(); n > 0 && info.SampleRate > 0 {
		info.Duration = time.Duration(n) * time.Second / time.Duration(info.SampleRate)
	}

	return info
}
