// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrOpen indicates an input path is missing or cannot be read.
	ErrOpen = errors.New("failed to open")

	// ErrWrite indicates a temporary or destination file cannot be created or written.
	ErrWrite = errors.New("failed to write")

	// ErrDelete indicates an existing destination could not be removed.
	ErrDelete = errors.New("failed to delete")

	// ErrInvalidFormat indicates an encode was requested without a target format.
	ErrInvalidFormat = errors.New("invalid audio format")
)

func openError(path string, err error) error {
	return fmt.Errorf("%w %q: %w", ErrOpen, path, err)
}

func writeError(path string, err error) error {
	return fmt.Errorf("%w %q: %w", ErrWrite, path, err)
}

func deleteError(path string, err error) error {
	return fmt.Errorf("%w %q: %w", ErrDelete, path, err)
}
