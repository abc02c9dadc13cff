// SPDX-License-Identifier: EPL-2.0

// Package vorbis probes Ogg Vorbis payloads using github.com/jfreymuth/oggvorbis.
//
// Probing them lets a listing tell Vorbis payloads apart from MP3 ones.
package vorbis
