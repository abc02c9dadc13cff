// SPDX-License-Identifier: EPL-2.0

package audio

import "encoding/binary"

// Sizes of the built-in headers.
const (
	SFXHeaderSize = 58
	VOHeaderSize  = 470
)

// Placeholder headers of the documented sizes, laid out as RIFF/WAVE
// preambles. They are not the bytes the game ships. Load the real headers
// from reference files with LoadHeaderRegistry (headers.sfx_file and
// headers.vo_file in the command's config).
var (
	sfxHeader = buildSFXHeader()
	voHeader  = buildVOHeader()
)

// buildSFXHeader lays out the SFX placeholder: RIFF, an 18 byte fmt
// chunk, an empty fact chunk and an empty data chunk header.
func buildSFXHeader() []byte {
	h := make([]byte, SFXHeaderSize)

	copy(h[0:4], "RIFF")
	binary.LittleEndian.PutUint32(h[4:8], SFXHeaderSize-8)
	copy(h[8:12], "WAVE")

	copy(h[12:16], "fmt ")
	binary.LittleEndian.PutUint32(h[16:20], 18)
	binary.LittleEndian.PutUint16(h[20:22], 1)     // PCM
	binary.LittleEndian.PutUint16(h[22:24], 1)     // mono
	binary.LittleEndian.PutUint32(h[24:28], 22050) // sample rate
	binary.LittleEndian.PutUint32(h[28:32], 44100) // byte rate
	binary.LittleEndian.PutUint16(h[32:34], 2)     // block align
	binary.LittleEndian.PutUint16(h[34:36], 16)    // bits per sample
	// h[36:38] cbSize stays 0

	copy(h[38:42], "fact")
	binary.LittleEndian.PutUint32(h[42:46], 4)
	// h[46:50] sample count stays 0

	copy(h[50:54], "data")
	// h[54:58] data size stays 0

	return h
}

// buildVOHeader lays out the VO placeholder: a canonical 44 byte PCM
// WAV header whose data chunk is zero filled up to VOHeaderSize.
func buildVOHeader() []byte {
	const dataSize = VOHeaderSize - 44

	h := make([]byte, VOHeaderSize)

	copy(h[0:4], "RIFF")
	binary.LittleEndian.PutUint32(h[4:8], VOHeaderSize-8)
	copy(h[8:12], "WAVE")

	copy(h[12:16], "fmt ")
	binary.LittleEndian.PutUint32(h[16:20], 16)
	binary.LittleEndian.PutUint16(h[20:22], 1)
	binary.LittleEndian.PutUint16(h[22:24], 1)
	binary.LittleEndian.PutUint32(h[24:28], 22050)
	binary.LittleEndian.PutUint32(h[28:32], 44100)
	binary.LittleEndian.PutUint16(h[32:34], 2)
	binary.LittleEndian.PutUint16(h[34:36], 16)

	copy(h[36:40], "data")
	binary.LittleEndian.PutUint32(h[40:44], dataSize)

	return h
}
