// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"
)

// stubProber claims streams starting with magic and reports info.
type stubProber struct {
	magic []byte
	info  StreamInfo
	err   error
	seen  []byte
}

func (p *stubProber) Sniff(prefix []byte) bool { return bytes.HasPrefix(prefix, p.magic) }

func (p *stubProber) Probe(r io.ReadSeeker) (StreamInfo, error) {
	p.seen, _ = io.ReadAll(r)
	return p.info, p.err
}

func TestRegistry_RegisterGet(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	p := &stubProber{magic: []byte("RIFF")}
	reg.Register("wav", p)

	got, ok := reg.Get("wav")
	if !ok || got != p {
		t.Errorf("Get(wav) = %v, %v; want registered prober", got, ok)
	}

	if _, ok := reg.Get("mp3"); ok {
		t.Error("Get(mp3) ok = true, want false")
	}
}

func TestRegistry_Identify(t *testing.T) {
	t.Parallel()

	wav := &stubProber{magic: []byte("RIFF"), info: StreamInfo{SampleRate: 22050, Channels: 1, BitDepth: 16}}
	ogg := &stubProber{magic: []byte("OggS"), info: StreamInfo{SampleRate: 44100, Channels: 2}}

	reg := NewRegistry()
	reg.Register("wav", wav)
	reg.Register("ogg vorbis", ogg)

	data := []byte("xxOggS-payload")
	r := bytes.NewReader(data)
	if _, err := r.Seek(2, io.SeekStart); err != nil {
		t.Fatal(err)
	}

	info, err := reg.Identify(r)
	if err != nil {
		t.Fatalf("Identify() error = %v", err)
	}

	if info.Codec != "ogg vorbis" || info.SampleRate != 44100 || info.Channels != 2 {
		t.Errorf("Identify() = %+v", info)
	}

	if !bytes.Equal(ogg.seen, []byte("OggS-payload")) {
		t.Errorf("prober saw %q, want it positioned at payload start", ogg.seen)
	}
}

func TestRegistry_IdentifyOrder(t *testing.T) {
	t.Parallel()

	first := &stubProber{magic: []byte("ID3"), info: StreamInfo{SampleRate: 1}}
	second := &stubProber{magic: []byte("ID"), info: StreamInfo{SampleRate: 2}}

	reg := NewRegistry()
	reg.Register("first", first)
	reg.Register("second", second)
	// re-registering keeps the original slot
	reg.Register("first", first)

	info, err := reg.Identify(bytes.NewReader([]byte("ID3\x04")))
	if err != nil {
		t.Fatal(err)
	}
	if info.Codec != "first" {
		t.Errorf("Identify().Codec = %q, want first", info.Codec)
	}
}

func TestRegistry_IdentifyUnknown(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register("wav", &stubProber{magic: []byte("RIFF")})

	_, err := reg.Identify(bytes.NewReader([]byte{1, 2, 3}))
	if !errors.Is(err, ErrUnknownPayload) {
		t.Errorf("Identify() error = %v, want ErrUnknownPayload", err)
	}
}

func TestRegistry_IdentifyProbeError(t *testing.T) {
	t.Parallel()

	probeErr := errors.New("broken fmt chunk")
	reg := NewRegistry()
	reg.Register("wav", &stubProber{magic: []byte("RIFF"), err: probeErr})

	_, err := reg.Identify(bytes.NewReader([]byte("RIFF....")))
	if !errors.Is(err, probeErr) {
		t.Errorf("Identify() error = %v, want wrapped probe error", err)
	}
}

func TestStreamInfo_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		info StreamInfo
		want string
	}{
		{StreamInfo{Codec: "wav", SampleRate: 22050, Channels: 1, BitDepth: 16, Duration: 1500 * time.Millisecond}, "wav 22050Hz 1ch 16bit 1.5s"},
		{StreamInfo{Codec: "mp3", SampleRate: 44100, Channels: 2}, "mp3 44100Hz 2ch"},
	}

	for _, tt := range tests {
		if got := tt.info.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
