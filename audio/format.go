// SPDX-License-Identifier: EPL-2.0

package audio

import "strings"

// Format identifies one of the game's audio container variants.
type Format int

const (
	// None means no known header was found at the start of the stream.
	None Format = iota
	// SFX is the streamsounds container: a WAV payload behind a fixed header.
	SFX
	// VO is the streamwaves/streamvoice/streammusic container: an MP3
	// payload behind a fixed header.
	VO
)

// File extensions produced by the transcoder.
const (
	ExtWAV = ".wav"
	ExtMP3 = ".mp3"
)

func (f Format) String() string {
	switch f {
	case SFX:
		return "SFX"
	case VO:
		return "VO"
	default:
		return "None"
	}
}

// ParseFormat maps a user supplied token to a Format. Both bare names and
// the command line switches of the CLI are accepted, case-insensitively.
// Unknown tokens map to None.
func ParseFormat(token string) Format {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "sfx", "-s", "--sfx":
		return SFX
	case "vo", "music", "-v", "--vo", "-m", "--music":
		return VO
	default:
		return None
	}
}

// EncodeExtension is the extension of an encoded file. It is always ".wav",
// the game loads both containers from .wav names.
func EncodeExtension(Format) string {
	return ExtWAV
}

// DecodeExtension is the extension of a decoded file: ".mp3" once a VO
// header was stripped, ".wav" otherwise.
func DecodeExtension(f Format) string {
	if f == VO {
		return ExtMP3
	}

	return ExtWAV
}
