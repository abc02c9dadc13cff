// SPDX-License-Identifier: EPL-2.0

// Package mp3 probes MPEG audio payloads, the payload of VO assets.
//
// This package uses github.com/hajimehoshi/go-mp3 to read the first frame
// header. go-mp3 always decodes to 16-bit stereo, so Channels is reported as
// 2 and the duration is derived from the decoded length when the reader can
// seek.
//
//	info, err := mp3.Prober{}.Probe(f)
//
// Sniff accepts an ID3v2 tag or a raw frame sync.
package mp3
