// SPDX-License-Identifier: EPL-2.0

// Command kotorcodec converts audio between the containers of Knights of the
// Old Republic and plain WAV/MP3 files.
//
// With arguments it runs one command and exits. Without arguments it starts
// an interactive menu that reads one command per line until -q.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ik5/kotorcodec/internal/config"
	"github.com/ik5/kotorcodec/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process: it returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	configPath, args, ok := extractConfigPath(args)
	if !ok {
		fmt.Fprintln(stderr, badInputMsg)
		return BadInput.ExitCode()
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return Failure.ExitCode()
		}
		cfg = loaded
	}

	logger, closeLog, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return Failure.ExitCode()
	}
	defer closeLog()

	headers, err := cfg.Headers.Registry()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return Failure.ExitCode()
	}

	a := newApp(cfg, headers, logger)

	var result Result
	if len(args) == 0 {
		result = a.menu(stdin, stdout)
	} else {
		result = a.execute(args, stdout)
	}

	if err := a.writeMetrics(); err != nil {
		logger.Error("failed to write metrics",
			slog.String("textfile", cfg.Metrics.Textfile),
			slog.Any("error", err),
		)
	}

	return result.ExitCode()
}

// extractConfigPath removes --config=<path> or --config <path> from args.
// ok is false when the option is given without a path.
func extractConfigPath(args []string) (path string, rest []string, ok bool) {
	rest = make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "--config":
			if i+1 == len(args) || path != "" {
				return "", nil, false
			}
			i++
			path = args[i]
		case strings.HasPrefix(arg, "--config="):
			if path != "" {
				return "", nil, false
			}
			path = strings.TrimPrefix(arg, "--config=")
		default:
			rest = append(rest, arg)
			continue
		}

		if path == "" {
			return "", nil, false
		}
	}

	return path, rest, true
}
