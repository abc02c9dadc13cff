// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// StreamInfo describes the audio payload stored behind a container header.
type StreamInfo struct {
	// Codec key of the prober that recognised the payload (e.g. "wav", "mp3").
	Codec string
	// SampleRate of the payload in Hz.
	SampleRate int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels int
	// BitDepth of PCM payloads, 0 when the codec has none.
	BitDepth int
	// Duration of the payload, 0 when it could not be determined.
	Duration time.Duration
}

func (i StreamInfo) String() string {
	s := fmt.Sprintf("%s %dHz %dch", i.Codec, i.SampleRate, i.Channels)
	if i.BitDepth > 0 {
		s += fmt.Sprintf(" %dbit", i.BitDepth)
	}
	if i.Duration > 0 {
		s += " " + i.Duration.Round(time.Millisecond).String()
	}

	return s
}

// Prober inspects an audio payload without decoding all of it.
type Prober interface {
	// Sniff reports whether prefix looks like this codec's stream.
	Sniff(prefix []byte) bool
	// Probe reads stream parameters from r, which is positioned at the
	// payload start.
	Probe(r io.ReadSeeker) (StreamInfo, error)
}

// sniffSize is how many payload bytes are handed to Sniff.
const sniffSize = 12

// Registry of probers by codec key (e.g., "wav", "mp3", "ogg vorbis").
// Identify tries them in registration order.
type Registry struct {
	probers map[string]Prober
	order   []string

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		probers: make(map[string]Prober),
		mtx:     &sync.Mutex{},
	}
}

func (r *Registry) Register(codec string, p Prober) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.probers[codec]; !ok {
		r.order = append(r.order, codec)
	}
	r.probers[codec] = p
}

func (r *Registry) Get(codec string) (Prober, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	p, ok := r.probers[codec]
	return p, ok
}

// Identify sniffs the payload at the current position of rs and probes it
// with the first prober that claims it. The position is restored before
// every Probe call. ErrUnknownPayload is returned when nothing matched.
func (r *Registry) Identify(rs io.ReadSeeker) (StreamInfo, error) {
	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return StreamInfo{}, err
	}

	prefix := make([]byte, sniffSize)
	n, _ := io.ReadFull(rs, prefix)
	prefix = prefix[:n]

	r.mtx.Lock()
	order := append([]string(nil), r.order...)
	r.mtx.Unlock()

	for _, codec := range order {
		p, _ := r.Get(codec)
		if !p.Sniff(prefix) {
			continue
		}

		if _, err := rs.Seek(start, io.SeekStart); err != nil {
			return StreamInfo{}, err
		}

		info, err := p.Probe(rs)
		if err != nil {
			return StreamInfo{}, fmt.Errorf("%s payload: %w", codec, err)
		}
		info.Codec = codec

		return info, nil
	}

	return StreamInfo{}, ErrUnknownPayload
}
