// SPDX-License-Identifier: EPL-2.0

// Package wav probes RIFF/WAVE payloads.
//
// SFX assets carry a WAV payload behind their container header. This package
// uses the github.com/go-audio/wav decoder to read the fmt chunk of such a
// payload without decoding the samples.
//
// # Probing
//
//	f, _ := os.Open("decoded.wav")
//	info, err := wav.Prober{}.Probe(f)
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(info.SampleRate, info.Channels, info.BitDepth)
//
// Sniff only accepts streams starting with "RIFF" and carrying the "WAVE"
// form type, so AVI and other RIFF forms are left to other probers.
//
// # Error Handling
//
//   - ErrNotWavFile: the RIFF headers could not be parsed
//   - ErrUnsupportedWavLayout: no channel count or sample rate was found
package wav
