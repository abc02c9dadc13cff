// SPDX-License-Identifier: EPL-2.0

// Package kotorcodec converts the streamed audio of Knights of the Old
// Republic between the game's containers and ordinary audio files.
//
// The game stores sound effects (streamsounds) and voice over and music
// (streamwaves) as ".wav" files that start with a fixed header. Behind the
// header is a plain WAV payload for SFX and an MP3 payload for VO. Players
// and editors choke on the header; the game refuses files without it.
//
// # Subpackages
//
//   - audio: container formats, header registry and detection, payload probers
//   - codec: Decode, Encode and their batch variants
//   - formats/wav, formats/mp3, formats/vorbis, formats/aiff: payload probers
//   - cmd/kotorcodec: the command line tool
//
// # Quick Start
//
// Strip the header of a voice line and get an MP3 back:
//
//	tc := codec.New(codec.Options{})
//	err := tc.Decode("streamwaves/n_darthmalak01.wav", "out/")
//	// out/n_darthmalak01.mp3
//
// Put an edited file back into the game:
//
//	err := tc.Encode("n_darthmalak01.mp3", audio.VO, "streamwaves/")
//	// streamwaves/n_darthmalak01.wav
//
// # Inspecting Files
//
// Inspect reports the container and, with a probe registry, what the
// payload holds:
//
//	report, err := kotorcodec.Inspect(path, audio.DefaultHeaders(), kotorcodec.NewProbeRegistry())
//	fmt.Println(report) // VO (mp3 22050Hz 2ch 3.2s)
//
// ListFormats does the same for a whole directory tree and HeaderSource
// dumps the header bytes of a file, which is how new header sets are
// captured from game files.
package kotorcodec
