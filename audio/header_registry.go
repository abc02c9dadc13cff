// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// HeaderRegistry holds the magic header of every known container format.
// It is immutable once built and may be shared freely.
type HeaderRegistry struct {
	sfx []byte
	vo  []byte
	max int
}

// DefaultHeaders returns the registry of the built-in placeholder headers.
// Detecting real game files needs the headers captured from them; see
// LoadHeaderRegistry.
func DefaultHeaders() *HeaderRegistry {
	r, _ := NewHeaderRegistry(sfxHeader, voHeader)
	return r
}

// NewHeaderRegistry builds a registry from explicit header bytes. The slices
// are copied. An empty header never matches; at least one must be non-empty.
func NewHeaderRegistry(sfx, vo []byte) (*HeaderRegistry, error) {
	if len(sfx) == 0 && len(vo) == 0 {
		return nil, ErrEmptyHeader
	}

	return &HeaderRegistry{
		sfx: bytes.Clone(sfx),
		vo:  bytes.Clone(vo),
		max: max(len(sfx), len(vo)),
	}, nil
}

// LoadHeaderRegistry builds a registry from reference files captured from the
// game. The first SFXHeaderSize bytes of sfxPath and the first VOHeaderSize
// bytes of voPath become the headers. An empty path keeps the built-in header.
func LoadHeaderRegistry(sfxPath, voPath string) (*HeaderRegistry, error) {
	sfx, err := readHeaderFile(sfxPath, sfxHeader)
	if err != nil {
		return nil, err
	}

	vo, err := readHeaderFile(voPath, voHeader)
	if err != nil {
		return nil, err
	}

	return NewHeaderRegistry(sfx, vo)
}

func readHeaderFile(path string, builtin []byte) ([]byte, error) {
	if path == "" {
		return builtin, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("header reference: %w", err)
	}
	defer f.Close()

	h := make([]byte, len(builtin))
	if _, err := io.ReadFull(f, h); err != nil {
		return nil, fmt.Errorf("header reference %q: %w", path, ErrEndOfStream)
	}

	return h, nil
}

// Bytes returns a copy of the header of f, or nil for None.
func (r *HeaderRegistry) Bytes(f Format) []byte {
	switch f {
	case SFX:
		return bytes.Clone(r.sfx)
	case VO:
		return bytes.Clone(r.vo)
	default:
		return nil
	}
}

// Size returns the header length of f. For None it returns MaxSize, the
// number of bytes a probe has to read to test every header.
func (r *HeaderRegistry) Size(f Format) int {
	switch f {
	case SFX:
		return len(r.sfx)
	case VO:
		return len(r.vo)
	default:
		return r.max
	}
}

// MaxSize is the length of the longest known header.
func (r *HeaderRegistry) MaxSize() int { return r.max }

// match reports the first format whose header is a prefix of b.
// SFX is always tested before VO.
func (r *HeaderRegistry) match(b []byte) Format {
	if len(r.sfx) > 0 && bytes.HasPrefix(b, r.sfx) {
		return SFX
	}

	if len(r.vo) > 0 && bytes.HasPrefix(b, r.vo) {
		return VO
	}

	return None
}
