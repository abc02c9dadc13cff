package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the payload is not a valid AIFF stream
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedAiffLayout indicates the COMM chunk could not be read
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
)
