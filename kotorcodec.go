// SPDX-License-Identifier: EPL-2.0

package kotorcodec

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/kotorcodec/audio"
	"github.com/ik5/kotorcodec/codec"
	"github.com/ik5/kotorcodec/formats/aiff"
	"github.com/ik5/kotorcodec/formats/mp3"
	"github.com/ik5/kotorcodec/formats/vorbis"
	"github.com/ik5/kotorcodec/formats/wav"
)

// NewProbeRegistry returns a registry with every payload prober of this
// module. Formats with a fixed magic come first; MP3 frame sync is the
// loosest match and is tried last.
func NewProbeRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Prober{})
	reg.Register("aiff", aiff.Prober{})
	reg.Register("ogg vorbis", vorbis.Prober{})
	reg.Register("mp3", mp3.Prober{})

	return reg
}

// Report is what Inspect learned about one file.
type Report struct {
	Path   string
	Format audio.Format
	// HeaderSize is 0 for None.
	HeaderSize int
	// PayloadSize is the number of bytes after the header.
	PayloadSize int64
	// Payload is nil when no prober recognised the payload or none was asked.
	Payload *audio.StreamInfo
	// PayloadErr explains a nil Payload when probing was attempted.
	PayloadErr error
}

func (r Report) String() string {
	s := r.Format.String()
	if r.Payload != nil {
		s += " (" + r.Payload.String() + ")"
	}

	return s
}

// Inspect detects the container of path and, when probes is not nil, the
// audio stream behind its header. A nil headers means audio.DefaultHeaders.
// Only failing to read path itself is an error; an unrecognised payload is
// reported in Report.PayloadErr.
func Inspect(path string, headers *audio.HeaderRegistry, probes *audio.Registry) (Report, error) {
	if headers == nil {
		headers = audio.DefaultHeaders()
	}

	report := Report{Path: path}

	f, err := os.Open(path)
	if err != nil {
		return report, fmt.Errorf("%w %q: %w", codec.ErrOpen, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return report, fmt.Errorf("%w %q: %w", codec.ErrOpen, path, err)
	}
	if info.IsDir() {
		return report, fmt.Errorf("%w %q: is a directory", codec.ErrOpen, path)
	}

	report.Format = headers.Detect(f)
	if report.Format != audio.None {
		report.HeaderSize = headers.Size(report.Format)
	}
	report.PayloadSize = max(info.Size()-int64(report.HeaderSize), 0)

	if probes == nil {
		return report, nil
	}

	payload := io.NewSectionReader(f, int64(report.HeaderSize), report.PayloadSize)
	stream, err := probes.Identify(payload)
	if err != nil {
		report.PayloadErr = err
		return report, nil
	}
	report.Payload = &stream

	return report, nil
}

// IsUnknownPayload reports whether r's payload matched no prober.
func (r Report) IsUnknownPayload() bool {
	return errors.Is(r.PayloadErr, audio.ErrUnknownPayload)
}
