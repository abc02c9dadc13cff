// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Detect reports which known header r starts with.
//
// The probe reads up to MaxSize bytes from the absolute start of r and then
// puts the read position back where it found it. Candidates are tested in a
// fixed order, SFX first and VO second, so a stream satisfying both is SFX.
// Short or unreadable streams simply fail to match and yield None.
func (r *HeaderRegistry) Detect(rs io.ReadSeeker) Format {
	buf, _, err := r.probe(rs)
	if err != nil {
		return None
	}

	return r.match(buf)
}

// DetectStrict is Detect for callers that treat a short stream as an error.
// When no header matched and fewer than MaxSize bytes were available it
// returns ErrEndOfStream. Seek failures are returned as well.
func (r *HeaderRegistry) DetectStrict(rs io.ReadSeeker) (Format, error) {
	buf, short, err := r.probe(rs)
	if err != nil {
		return None, err
	}

	f := r.match(buf)
	if f == None && short {
		return None, ErrEndOfStream
	}

	return f, nil
}

// probe returns the leading bytes of rs and whether the stream was shorter
// than MaxSize.
func (r *HeaderRegistry) probe(rs io.ReadSeeker) (buf []byte, short bool, err error) {
	pos, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, false, fmt.Errorf("probe position: %w", err)
	}

	defer func() {
		if _, serr := rs.Seek(pos, io.SeekStart); serr != nil && err == nil {
			err = fmt.Errorf("restore position: %w", serr)
		}
	}()

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, false, fmt.Errorf("seek to start: %w", err)
	}

	buf = make([]byte, r.max)
	n, rerr := io.ReadFull(rs, buf)
	// unreadable counts as short as well; the caller decides if that matters
	short = rerr != nil

	return buf[:n], short, nil
}
