// SPDX-License-Identifier: EPL-2.0

// Package audio provides the container formats of the game's audio assets
// and the detection of their magic headers.
//
// This package contains the core building blocks:
//   - Format, the enumeration of known containers (None, SFX, VO)
//   - HeaderRegistry, the fixed header bytes and sizes per format
//   - Detect and DetectStrict, which match a stream against the registry
//   - Registry, probers for the audio payload behind a header
//
// # Containers
//
// Every asset the game streams is a payload prefixed by a fixed header:
//
//	SFX  streamsounds   58 byte header + WAV payload
//	VO   streamwaves   470 byte header + MP3 payload
//
// The header content never varies, so a file is identified by exact byte
// equality of its first bytes with one of the headers. There are no
// wildcards and no partial matches.
//
// # Detection
//
//	headers := audio.DefaultHeaders()
//	f, _ := os.Open("n_darthmalak01.wav")
//	format := headers.Detect(f)
//
// Detect reads at most headers.MaxSize() bytes from the start of the stream
// and restores the read position before returning. SFX is tested before VO;
// a stream that satisfies both is SFX. A stream that matches nothing,
// including one that is too short or unreadable, is None. None is a result,
// not an error.
//
// DetectStrict is available for callers that need the whole probe window to
// be present. It returns ErrEndOfStream when nothing matched and the stream
// ended early.
//
// # Custom Headers
//
// The built-in headers returned by DefaultHeaders are placeholders with the
// right sizes, not the bytes the game ships. Tools working on real game
// files build their registry from captured reference files:
//
//	headers, err := audio.NewHeaderRegistry(sfx, vo)
//	headers, err := audio.LoadHeaderRegistry("ref/sfx.wav", "ref/vo.wav")
//
// # Payload Probing
//
// Registry maps a codec key to a Prober. Identify sniffs the bytes at the
// current position and asks the first matching prober for the stream
// parameters:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Prober{})
//	reg.Register("mp3", mp3.Prober{})
//	info, err := reg.Identify(payload)
package audio
