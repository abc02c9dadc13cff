// SPDX-License-Identifier: EPL-2.0

// Package codec converts between the game's audio containers and plain
// payload files.
//
// # Decoding and Encoding
//
//	tc := codec.New(codec.Options{Logger: logger})
//	err := tc.Decode("streamwaves/n_darthmalak01.wav", "out/")
//	err = tc.Encode("edited.mp3", audio.VO, "streamwaves/n_darthmalak01.wav")
//
// Decode strips the detected header. The result is named after the payload
// it holds: ".mp3" for VO, ".wav" otherwise. An input without a known header
// is left alone and Decode returns nil.
//
// Encode prepends the header of the requested format and always writes a
// ".wav" file, the name the game looks for.
//
// # Destinations
//
// An empty output path converts in place. A path naming an existing
// directory, or ending in a separator, receives a file named after the
// input. Anything else is the output file itself. The extension is replaced
// in every case; see ResolveDestination.
//
// # Commit
//
// Output is staged in a uniquely named file under Options.TempDir and moved
// into place once complete. An existing destination is deleted first, unless
// Options.AtomicReplace is set. When the staging directory is on another
// volume the file is copied instead of renamed, which is not atomic; a
// warning is logged.
//
// # Batches
//
// EncodeAll and DecodeAll take a directory, walked recursively, or a text
// file with one path per line. Each input becomes a FileOperation that
// carries its own error; one failing file never stops the rest.
//
// # Errors
//
// Every error wraps one of ErrOpen, ErrWrite, ErrDelete or ErrInvalidFormat
// together with the path and the underlying cause:
//
//	if errors.Is(err, codec.ErrOpen) && errors.Is(err, fs.ErrNotExist) {
//		// input missing
//	}
package codec
