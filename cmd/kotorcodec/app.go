// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ik5/kotorcodec"
	"github.com/ik5/kotorcodec/audio"
	"github.com/ik5/kotorcodec/codec"
	"github.com/ik5/kotorcodec/internal/config"
	"github.com/ik5/kotorcodec/internal/metrics"
)

const (
	indentLevel1 = "  "
	indentLevel2 = "    "

	successMsg     = "done!"
	failMsg        = "failed!"
	finishedErrMsg = "Finished with errors."
	badInputMsg    = "Invalid input. You can enter -h or --help to get help."
)

type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	headers *audio.HeaderRegistry
	probes  *audio.Registry
	metrics *metrics.Metrics
	tc      *codec.Transcoder
}

func newApp(cfg *config.Config, headers *audio.HeaderRegistry, logger *slog.Logger) *app {
	m := metrics.New()

	return &app{
		cfg:     cfg,
		logger:  logger,
		headers: headers,
		probes:  kotorcodec.NewProbeRegistry(),
		metrics: m,
		tc: codec.New(codec.Options{
			Headers:         headers,
			TempDir:         cfg.Transcode.TempDir,
			Seed:            cfg.Transcode.Seed,
			StrictDetection: cfg.Transcode.StrictDetection,
			AtomicReplace:   cfg.Transcode.AtomicReplace,
			Logger:          logger,
			Recorder:        m,
		}),
	}
}

// menu reads commands from input until -q or end of input.
func (a *app) menu(input io.Reader, output io.Writer) Result {
	welcome(output)

	scanner := bufio.NewScanner(input)
	for {
		fmt.Fprint(output, ">")

		if !scanner.Scan() {
			fmt.Fprintln(output)
			return Quit
		}

		switch a.execute(splitLine(scanner.Text()), output) {
		case Failure:
			fmt.Fprintln(output, finishedErrMsg)
		case BadInput:
			fmt.Fprintln(output, badInputMsg)
		case Quit:
			return Quit
		}
	}
}

// execute parses and runs one command.
func (a *app) execute(args []string, w io.Writer) Result {
	cmd, result := parseCommand(args)
	if result != Success {
		if result == BadInput {
			a.logger.Debug("rejected command", slog.Any("args", args))
		}
		return result
	}

	if cmd.screen != nil {
		cmd.screen(w)
		return Success
	}

	switch cmd.mode {
	case modeDecode:
		return a.report(w, a.tc.Decode(cmd.input, cmd.output))
	case modeEncode:
		return a.report(w, a.tc.Encode(cmd.input, audio.ParseFormat(cmd.format), cmd.output))
	case modeDecodeAll:
		ops, err := a.tc.DecodeAll(orCurrentDir(cmd.input), cmd.output)
		return a.reportAll(w, ops, err)
	case modeEncodeAll:
		ops, err := a.tc.EncodeAll(orCurrentDir(cmd.input), audio.ParseFormat(cmd.format), cmd.output)
		return a.reportAll(w, ops, err)
	case modeList:
		return a.toOutput(w, cmd.output, func(out io.Writer) error {
			return kotorcodec.ListFormats(out, cmd.input, a.headers, a.probes)
		})
	case modeHeaderSource:
		return a.toOutput(w, cmd.output, func(out io.Writer) error {
			return kotorcodec.HeaderSource(out, cmd.input, a.headers)
		})
	}

	return Success
}

func (a *app) report(w io.Writer, err error) Result {
	if err != nil {
		fmt.Fprintln(w, err)
		return Failure
	}

	return Success
}

func (a *app) reportAll(w io.Writer, ops []codec.FileOperation, err error) Result {
	if err != nil {
		fmt.Fprintln(w, indentLevel2+err.Error())
		return Failure
	}

	result := Success
	for _, op := range ops {
		printLog(w, op)
		if op.Failed() {
			result = Failure
		}
	}

	return result
}

// toOutput runs write against w, or against the file path when it is set.
func (a *app) toOutput(w io.Writer, path string, write func(io.Writer) error) Result {
	if path == "" {
		if err := write(w); err != nil {
			fmt.Fprintln(w, indentLevel2+err.Error())
			return Failure
		}
		return Success
	}

	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintln(w, fmt.Errorf("%w %q: %w", codec.ErrWrite, path, err))
		return Failure
	}

	werr := write(f)
	cerr := f.Close()

	switch {
	case werr != nil:
		fmt.Fprintln(w, indentLevel2+werr.Error())
		return Failure
	case cerr != nil:
		fmt.Fprintln(w, fmt.Errorf("%w %q: %w", codec.ErrWrite, path, cerr))
		return Failure
	}

	return Success
}

func (a *app) writeMetrics() error {
	if a.cfg.Metrics.Textfile == "" {
		return nil
	}

	return a.metrics.WriteTextfile(a.cfg.Metrics.Textfile)
}

// printLog writes the outcome of one batch entry.
func printLog(w io.Writer, op codec.FileOperation) {
	if !op.Failed() {
		fmt.Fprintf(w, "%s%s %s\n", indentLevel1, op.Path, successMsg)
		return
	}

	fmt.Fprintf(w, "%s%s %s\n%s%s\n", indentLevel1, op.Path, failMsg, indentLevel2, op.Message())
}

func orCurrentDir(path string) string {
	if path == "" {
		return "."
	}

	return path
}
