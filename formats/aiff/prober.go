// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"io"
	"time"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/kotorcodec/audio"
)

// aiffInfo is the part of aiff.Decoder the prober needs, to allow testing
type aiffInfo interface {
	Format() *goaudio.Format
	Duration() (time.Duration, error)
}

// Prober reads AIFF/AIFC stream parameters using github.com/go-audio/aiff.
type Prober struct{}

func (Prober) Sniff(prefix []byte) bool {
	return len(prefix) >= 12 &&
		bytes.Equal(prefix[:4], []byte("FORM")) &&
		(bytes.Equal(prefix[8:12], []byte("AIFF")) || bytes.Equal(prefix[8:12], []byte("AIFC")))
}

func (Prober) Probe(r io.ReadSeeker) (audio.StreamInfo, error) {
	dec := aiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return audio.StreamInfo{}, ErrNotAiffFile
	}

	dec.ReadInfo()

	return streamInfo(dec, int(dec.BitDepth))
}

func streamInfo(d aiffInfo, bitDepth int) (audio.StreamInfo, error) {
	format := d.Format()
	if format == nil || format.NumChannels == 0 {
		return audio.StreamInfo{}, ErrUnsupportedAiffLayout
	}

	info := audio.StreamInfo{
		SampleRate: format.SampleRate,
		Channels:   format.NumChannels,
		BitDepth:   bitDepth,
	}

	if dur, err := d.Duration(); err == nil {
		info.Duration = dur
	}

	return info, nil
}
