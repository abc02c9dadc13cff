// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"
)

// commit moves the staged file at tmpPath to dest.
//
// An existing dest is deleted first, otherwise its parent directories are
// created, then the temp file is renamed into place. The delete and the
// rename are two steps: a crash in between leaves neither the old nor the new
// file at dest. With AtomicReplace the delete is skipped and rename replaces
// dest in one step.
//
// The temp file is removed on every failure path.
func (t *Transcoder) commit(tmpPath, dest string) (err error) {
	defer func() {
		if err != nil {
			os.Remove(tmpPath)
		}
	}()

	if exists(dest) && !t.atomicReplace {
		if err := os.Remove(dest); err != nil {
			return deleteError(dest, err)
		}
	} else if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return writeError(dir, err)
		}
	}

	err = t.rename(tmpPath, dest)
	if errors.Is(err, syscall.EXDEV) {
		t.logger.Warn("temp dir is on another volume, copying instead of renaming; the replace is not atomic",
			slog.String("temp", tmpPath),
			slog.String("dest", dest),
		)
		return t.copyInto(tmpPath, dest)
	}
	if err != nil {
		return writeError(dest, err)
	}

	return nil
}

// copyInto is the fallback for temp dirs that cannot be renamed into dest.
func (t *Transcoder) copyInto(tmpPath, dest string) error {
	src, err := os.Open(tmpPath)
	if err != nil {
		return writeError(tmpPath, err)
	}
	defer src.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return writeError(dest, err)
	}

	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return writeError(dest, err)
	}

	if err := out.Close(); err != nil {
		return writeError(dest, err)
	}

	src.Close()
	if err := os.Remove(tmpPath); err != nil {
		t.logger.Warn("could not remove temp file", slog.String("temp", tmpPath), slog.Any("error", err))
	}

	return nil
}
