// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"fmt"
	"io"
	"time"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/kotorcodec/audio"
)

// go-mp3 always decodes to 16-bit little-endian stereo.
const (
	outputChannels = 2
	bytesPerFrame  = outputChannels * 2
)

// mp3Stream is the part of gomp3.Decoder the prober needs, to allow testing
type mp3Stream interface {
	SampleRate() int
	Length() int64
}

// Prober reads MPEG audio stream parameters using github.com/hajimehoshi/go-mp3.
type Prober struct{}

func (Prober) Sniff(prefix []byte) bool {
	if bytes.HasPrefix(prefix, []byte("ID3")) {
		return true
	}

	// frame sync: 11 set bits
	return len(prefix) >= 2 && prefix[0] == 0xFF && prefix[1]&0xE0 == 0xE0
}

func (Prober) Probe(r io.ReadSeeker) (audio.StreamInfo, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return audio.StreamInfo{}, fmt.Errorf("%w", err)
	}

	return streamInfo(dec), nil
}

func streamInfo(s mp3Stream) audio.StreamInfo {
	info := audio.StreamInfo{
		SampleRate: s.SampleRate(),
		Channels:   outputChannels,
	}

	// Length is -1 when the source cannot seek
	if n := s.Length(); n > 0 && info.SampleRate > 0 {
		frames := n / bytesPerFrame
		info.Duration = time.Duration(frames) * time.Second / time.Duration(info.SampleRate)
	}

	return info
}
