// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"syscall"
	"time"

	"github.com/ik5/kotorcodec/audio"
)

const (
	opEncode = "encode"
	opDecode = "decode"
)

// Recorder receives the outcome of every file and batch operation.
// internal/metrics provides a Prometheus backed implementation.
type Recorder interface {
	RecordFile(op string, format audio.Format, written int64, err error)
	RecordBatch(op string, total, failed int, elapsed time.Duration)
}

// Options configures a Transcoder. The zero value is usable.
type Options struct {
	// Headers used for detection and encoding. Defaults to audio.DefaultHeaders().
	Headers *audio.HeaderRegistry
	// TempDir receives staged output before it is moved into place.
	// Defaults to os.TempDir().
	TempDir string
	// Seed of the temporary name generator. Zero seeds from the clock.
	Seed uint64
	// StrictDetection makes Decode fail with audio.ErrEndOfStream on inputs
	// too short to rule out every header, instead of skipping them.
	StrictDetection bool
	// AtomicReplace commits by renaming straight over an existing
	// destination instead of deleting it first. Only enable it where rename
	// replaces atomically (POSIX, Windows MoveFileEx).
	AtomicReplace bool
	// Logger defaults to a logger that discards everything.
	Logger *slog.Logger
	// Recorder is optional.
	Recorder Recorder
}

// Transcoder strips and prepends container headers.
//
// A Transcoder owns its random source and is not safe for concurrent use.
type Transcoder struct {
	headers       *audio.HeaderRegistry
	tempDir       string
	rng           *rand.Rand
	strict        bool
	atomicReplace bool
	logger        *slog.Logger
	recorder      Recorder

	// rename moves a staged file into place; os.Rename outside tests
	rename func(oldpath, newpath string) error
}

// New creates a Transcoder from opts.
func New(opts Options) *Transcoder {
	t := &Transcoder{
		headers:       opts.Headers,
		tempDir:       opts.TempDir,
		strict:        opts.StrictDetection,
		atomicReplace: opts.AtomicReplace,
		logger:        opts.Logger,
		recorder:      opts.Recorder,
		rename:        os.Rename,
	}

	if t.headers == nil {
		t.headers = audio.DefaultHeaders()
	}
	if t.tempDir == "" {
		t.tempDir = os.TempDir()
	}
	if t.logger == nil {
		t.logger = slog.New(slog.DiscardHandler)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	t.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	return t
}

// Headers returns the header registry in use.
func (t *Transcoder) Headers() *audio.HeaderRegistry { return t.headers }

// Decode strips the container header from inputPath.
//
// Files without a known header are left alone: nothing is written and nil is
// returned. Otherwise the payload is staged in the temp directory and moved
// to the destination resolved from inputPath and outputPath, with the
// extension ".mp3" for VO and ".wav" for SFX.
func (t *Transcoder) Decode(inputPath, outputPath string) error {
	format, tmpPath, n, err := t.stageDecode(inputPath)
	if err != nil {
		t.record(opDecode, format, 0, err)
		return err
	}

	if format == audio.None {
		t.logger.Debug("no known header, skipping", slog.String("path", inputPath))
		t.record(opDecode, format, 0, nil)
		return nil
	}

	dest := ResolveDestination(inputPath, outputPath, audio.DecodeExtension(format))
	err = t.commit(tmpPath, dest)
	t.record(opDecode, format, n, err)
	if err != nil {
		return err
	}

	t.logger.Debug("decoded",
		slog.String("path", inputPath),
		slog.String("format", format.String()),
		slog.String("dest", dest),
		slog.Int64("bytes", n),
	)

	return nil
}

func (t *Transcoder) stageDecode(inputPath string) (audio.Format, string, int64, error) {
	in, err := openInput(inputPath)
	if err != nil {
		return audio.None, "", 0, err
	}
	defer in.Close()

	return t.stagePayload(inputPath, in)
}

// stagePayload detects the header of in and stages everything after it.
func (t *Transcoder) stagePayload(inputPath string, in io.ReadSeeker) (audio.Format, string, int64, error) {
	format, err := t.detect(in)
	if err != nil {
		return audio.None, "", 0, fmt.Errorf("%q: %w", inputPath, err)
	}
	if format == audio.None {
		return audio.None, "", 0, nil
	}

	if _, err := in.Seek(int64(t.headers.Size(format)), io.SeekStart); err != nil {
		return format, "", 0, fmt.Errorf("skip %s header of %q: %w", format, inputPath, err)
	}

	tmpPath, n, err := t.stage(nil, in)
	return format, tmpPath, n, err
}

// openInput opens a regular input file. Directories are rejected as open
// failures; reading them would fail later with a misleading error.
func openInput(path string) (*os.File, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, openError(path, err)
	}

	info, err := in.Stat()
	if err != nil {
		in.Close()
		return nil, openError(path, err)
	}
	if info.IsDir() {
		in.Close()
		return nil, openError(path, syscall.EISDIR)
	}

	return in, nil
}

func (t *Transcoder) detect(rs io.ReadSeeker) (audio.Format, error) {
	if t.strict {
		return t.headers.DetectStrict(rs)
	}

	return t.headers.Detect(rs), nil
}

// Encode prepends the header of format to inputPath.
//
// format must not be None; ErrInvalidFormat is returned before any file is
// touched. The result always gets the ".wav" extension.
func (t *Transcoder) Encode(inputPath string, format audio.Format, outputPath string) error {
	if format == audio.None {
		return ErrInvalidFormat
	}

	tmpPath, n, err := t.stageEncode(inputPath, format)
	if err != nil {
		t.record(opEncode, format, 0, err)
		return err
	}

	dest := ResolveDestination(inputPath, outputPath, audio.EncodeExtension(format))
	err = t.commit(tmpPath, dest)
	t.record(opEncode, format, n, err)
	if err != nil {
		return err
	}

	t.logger.Debug("encoded",
		slog.String("path", inputPath),
		slog.String("format", format.String()),
		slog.String("dest", dest),
		slog.Int64("bytes", n),
	)

	return nil
}

func (t *Transcoder) stageEncode(inputPath string, format audio.Format) (string, int64, error) {
	in, err := openInput(inputPath)
	if err != nil {
		return "", 0, err
	}
	defer in.Close()

	return t.stage(t.headers.Bytes(format), in)
}

// stage writes header followed by everything left in src to a new temp file
// and returns its path. The temp file is removed on failure.
func (t *Transcoder) stage(header []byte, src io.Reader) (string, int64, error) {
	tmp, err := t.createTemp()
	if err != nil {
		return "", 0, err
	}
	tmpPath := tmp.Name()

	var written int64
	if len(header) > 0 {
		n, err := tmp.Write(header)
		written += int64(n)
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
			return "", 0, writeError(tmpPath, err)
		}
	}

	n, err := io.Copy(tmp, src)
	written += n
	if err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", 0, writeError(tmpPath, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", 0, writeError(tmpPath, err)
	}

	return tmpPath, written, nil
}

func (t *Transcoder) record(op string, format audio.Format, n int64, err error) {
	if t.recorder != nil {
		t.recorder.RecordFile(op, format, n, err)
	}
}
