// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"bufio"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ik5/kotorcodec/audio"
)

// FileOperation is one entry of a batch: the input path and, once the entry
// has been processed, the error it failed with. Err stays nil on success.
type FileOperation struct {
	Path string
	Err  error
}

// Failed reports whether the operation recorded an error.
func (op FileOperation) Failed() bool { return op.Err != nil }

// Message returns the error text, or "" on success.
func (op FileOperation) Message() string {
	if op.Err == nil {
		return ""
	}

	return op.Err.Error()
}

// LoadOperations lists the inputs of a batch. A directory yields every
// non-directory entry below it, recursively, in lexical walk order. A file is
// read as a list with one path per line; blank lines are ignored.
func LoadOperations(input string) ([]FileOperation, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, openError(input, err)
	}

	if info.IsDir() {
		return loadFromDir(input)
	}

	return loadFromList(input)
}

func loadFromDir(root string) ([]FileOperation, error) {
	var ops []FileOperation

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		// symlinks to directories are not inputs
		if d.Type()&fs.ModeSymlink != 0 && isDir(path) {
			return nil
		}

		ops = append(ops, FileOperation{Path: path})
		return nil
	})
	if err != nil {
		return nil, openError(root, err)
	}

	return ops, nil
}

func loadFromList(list string) ([]FileOperation, error) {
	f, err := os.Open(list)
	if err != nil {
		return nil, openError(list, err)
	}
	defer f.Close()

	var ops []FileOperation

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		ops = append(ops, FileOperation{Path: line})
	}

	if err := scanner.Err(); err != nil {
		return nil, openError(list, err)
	}

	return ops, nil
}

// RelativePath returns path relative to root. When path does not live under
// root, or the two cannot be related at all, the file name is returned.
func RelativePath(path, root string) string {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return filepath.Base(path)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return filepath.Base(path)
	}

	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.Base(path)
	}

	return rel
}

// EncodeAll runs Encode over every input listed by LoadOperations(input).
// See DecodeAll for how outputs are placed and how failures are reported.
func (t *Transcoder) EncodeAll(input string, format audio.Format, output string) ([]FileOperation, error) {
	if format == audio.None {
		return nil, ErrInvalidFormat
	}

	return t.runAll(opEncode, input, output, func(in, out string) error {
		return t.Encode(in, format, out)
	})
}

// DecodeAll runs Decode over every input listed by LoadOperations(input).
//
// With an empty output every file is decoded in place. Otherwise output is
// created when missing and must be a directory; each entry is written below
// it at its path relative to the input directory (or to the directory of the
// list file), or at its bare file name when it lives elsewhere.
//
// Errors of single entries are stored in their FileOperation and never stop
// the batch. Only problems with input or output themselves are returned.
func (t *Transcoder) DecodeAll(input, output string) ([]FileOperation, error) {
	return t.runAll(opDecode, input, output, t.Decode)
}

func (t *Transcoder) runAll(op, input, output string, run func(in, out string) error) ([]FileOperation, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, openError(input, err)
	}

	root := input
	if !info.IsDir() {
		root = filepath.Dir(input)
	}

	if output != "" {
		if !exists(output) {
			if err := os.MkdirAll(output, 0o755); err != nil {
				return nil, writeError(output, err)
			}
		}
		if !isDir(output) {
			return nil, openError(output, fs.ErrInvalid)
		}
	}

	ops, err := LoadOperations(input)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	failed := 0

	for i := range ops {
		dest := ""
		if output != "" {
			dest = filepath.Join(output, RelativePath(ops[i].Path, root))
		}

		ops[i].Err = run(ops[i].Path, dest)
		if ops[i].Err != nil {
			failed++
			t.logger.Warn(op+" failed", slog.String("path", ops[i].Path), slog.Any("error", ops[i].Err))
		}
	}

	elapsed := time.Since(start)
	if t.recorder != nil {
		t.recorder.RecordBatch(op, len(ops), failed, elapsed)
	}

	t.logger.Info(op+" batch finished",
		slog.String("input", input),
		slog.Int("files", len(ops)),
		slog.Int("failed", failed),
		slog.Duration("elapsed", elapsed),
	)

	return ops, nil
}
