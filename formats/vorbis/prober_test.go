// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"testing"
	"time"
)

// mockOggStream simulates the oggvorbis.Reader for testing
type mockOggStream struct {
	sampleRate int
	channels   int
	length     int64
}

func (m mockOggStream) SampleRate() int { return m.sampleRate }
func (m mockOggStream) Channels() int   { return m.channels }
func (m mockOggStream) Length() int64   { return m.length }

func TestProber_Sniff(t *testing.T) {
	t.Parallel()

	if !(Prober{}).Sniff([]byte("OggS\x00\x02")) {
		t.Error("Sniff(OggS) = false, want true")
	}
	if (Prober{}).Sniff([]byte("RIFF")) {
		t.Error("Sniff(RIFF) = true, want false")
	}
}

func TestProber_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Prober{}.Probe(bytes.NewReader([]byte("This is not Ogg Vorbis data")))
	if err == nil {
		t.Error("Probe() error = nil, want error for invalid data")
	}
}

func TestStreamInfo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stream mockOggStream
		want   time.Duration
	}{
		{"stereo 44100", mockOggStream{sampleRate: 44100, channels: 2, length: 88200}, 2 * time.Second},
		{"mono 22050", mockOggStream{sampleRate: 22050, channels: 1, length: 11025}, 500 * time.Millisecond},
		{"unknown length", mockOggStream{sampleRate: 48000, channels: 2}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			info := streamInfo(tt.stream)
			if info.Duration != tt.want {
				t.Errorf("Duration = %v, want %v", info.Duration, tt.want)
			}
			if info.Channels != tt.stream.channels {
				t.Errorf("Channels = %d, want %d", info.Channels, tt.stream.channels)
			}
		})
	}
}
