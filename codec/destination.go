// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolveDestination returns where the output for inputPath ends up.
//
// An empty outputPath means inputPath itself. An outputPath naming an
// existing directory, or ending in a path separator, receives the input's
// file name. Any other outputPath is used as is. In every case the extension
// is replaced with ext.
func ResolveDestination(inputPath, outputPath, ext string) string {
	dest := outputPath

	switch {
	case outputPath == "":
		dest = inputPath
	case isDir(outputPath), strings.HasSuffix(outputPath, string(filepath.Separator)), strings.HasSuffix(outputPath, "/"):
		dest = filepath.Join(outputPath, filepath.Base(inputPath))
	}

	return ReplaceExtension(dest, ext)
}

// ReplaceExtension swaps the extension of path for ext. A leading dot of the
// file name does not count as an extension, so ".hidden" becomes
// ".hidden.wav".
func ReplaceExtension(path, ext string) string {
	base := filepath.Base(path)
	old := filepath.Ext(base)
	if old == base {
		old = ""
	}

	return strings.TrimSuffix(path, old) + ext
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
