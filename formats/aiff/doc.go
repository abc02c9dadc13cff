// SPDX-License-Identifier: EPL-2.0

// Package aiff probes AIFF and AIFC payloads.
//
// This package uses github.com/go-audio/aiff to read the COMM chunk. It
// reports sample rate, channel count, bit depth and duration.
package aiff
