// SPDX-License-Identifier: EPL-2.0

package kotorcodec

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/kotorcodec/audio"
	"github.com/ik5/kotorcodec/codec"
)

const (
	dirIndent  = "  "
	fileIndent = "    "
	failMsg    = "failed!"

	bytesPerLine = 12
)

// ListFormats writes the tree below dir with the container format of every
// file. The first line is dir itself, sub directories follow indented by two
// spaces and files by four:
//
//	streamwaves
//	  streamwaves/globe
//	    n_darthmalak01.wav VO (mp3 22050Hz 2ch 3.2s)
//	    notes.txt None
//	    locked.wav failed!
//
// An empty dir lists the working directory. probes may be nil to skip the
// payload summary.
func ListFormats(w io.Writer, dir string, headers *audio.HeaderRegistry, probes *audio.Registry) error {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("%w %q: %w", codec.ErrOpen, ".", err)
		}
		dir = wd
	}

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w %q: %w", codec.ErrOpen, dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w %q: not a directory", codec.ErrOpen, dir)
	}

	if headers == nil {
		headers = audio.DefaultHeaders()
	}

	if _, err := fmt.Fprintln(w, dir); err != nil {
		return err
	}

	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if path == dir && err == nil {
			return nil
		}

		var line string
		switch {
		case err != nil && d != nil && d.IsDir():
			line = dirIndent + path + " " + failMsg
		case err != nil:
			line = fileIndent + filepath.Base(path) + " " + failMsg
		case d.IsDir():
			line = dirIndent + path
		default:
			line = fileIndent + d.Name() + " " + describe(path, headers, probes)
		}

		if _, werr := fmt.Fprintln(w, line); werr != nil {
			return werr
		}

		if err != nil && d != nil && d.IsDir() {
			return fs.SkipDir
		}

		return nil
	})
}

func describe(path string, headers *audio.HeaderRegistry, probes *audio.Registry) string {
	report, err := Inspect(path, headers, probes)
	if err != nil {
		return failMsg
	}

	return report.String()
}

// HeaderSource writes the header bytes detected at the start of path as the
// body of a Go byte slice literal, twelve values per line. A file without a
// known header yields "None".
func HeaderSource(w io.Writer, path string, headers *audio.HeaderRegistry) error {
	if headers == nil {
		headers = audio.DefaultHeaders()
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w %q: %w", codec.ErrOpen, path, err)
	}
	defer f.Close()

	format := headers.Detect(f)
	if format == audio.None {
		_, err := fmt.Fprintln(w, format)
		return err
	}

	header := headers.Bytes(format)

	var b strings.Builder
	for i, c := range header {
		if i > 0 {
			if i%bytesPerLine == 0 {
				b.WriteString("\n")
			} else {
				b.WriteString(" ")
			}
		}
		fmt.Fprintf(&b, "0x%02X,", c)
	}
	b.WriteString("\n")

	_, err = io.WriteString(w, b.String())
	return err
}
