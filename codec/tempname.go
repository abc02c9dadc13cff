// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	tempNameChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	tempNameLength = 16

	maxTempAttempts = 100
)

func (t *Transcoder) randomName() string {
	b := make([]byte, tempNameLength)
	for i := range b {
		b[i] = tempNameChars[t.rng.IntN(len(tempNameChars))]
	}

	return string(b)
}

// createTemp opens a new file under the temp dir. Names are re-rolled until
// one is free.
func (t *Transcoder) createTemp() (*os.File, error) {
	var path string

	for range maxTempAttempts {
		path = filepath.Join(t.tempDir, t.randomName())

		f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return nil, writeError(path, err)
		}

		return f, nil
	}

	return nil, writeError(path, fs.ErrExist)
}
