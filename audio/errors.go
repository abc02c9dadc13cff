// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrEndOfStream is returned by strict detection when the stream ended
	// before enough bytes could be read to rule out every known header.
	ErrEndOfStream = errors.New("reached end of stream before header could be read")

	// ErrEmptyHeader is returned when a header set has no usable header.
	ErrEmptyHeader = errors.New("header set has no non-empty header")

	// ErrUnknownPayload is returned when no registered prober recognises a payload.
	ErrUnknownPayload = errors.New("unknown payload format")
)
