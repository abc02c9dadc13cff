// SPDX-License-Identifier: EPL-2.0

package main

import (
	"io"
	"strings"
	"unicode"
)

// Result of one command.
type Result int

const (
	Success Result = iota
	Failure
	BadInput
	Quit
)

func (r Result) String() string {
	switch r {
	case Success:
		return "success"
	case Failure:
		return "failure"
	case BadInput:
		return "bad input"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// ExitCode maps a result to the process exit status.
func (r Result) ExitCode() int {
	switch r {
	case Failure:
		return 1
	case BadInput:
		return 2
	default:
		return 0
	}
}

type mode int

const (
	modeNone mode = iota
	modeDecode
	modeDecodeAll
	modeEncode
	modeEncodeAll
	modeList
	modeHeaderSource
)

// command is a parsed argument list.
type command struct {
	mode   mode
	input  string
	output string
	format string
	// screen, when set, is printed instead of running anything
	screen func(io.Writer)
}

// parseCommand reads one argument list. Options are matched without regard
// to case; path values keep theirs. -q, -h, -c and -x win immediately over
// whatever follows them.
func parseCommand(args []string) (command, Result) {
	var cmd command

	setMode := func(m mode) bool {
		if cmd.mode != modeNone {
			return false
		}
		cmd.mode = m
		return true
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		lower := strings.ToLower(arg)
		last := i == len(args)-1

		switch {
		case lower == "-q" || lower == "--quit":
			return command{}, Quit
		case lower == "-h" || lower == "--help":
			return command{screen: help}, Success
		case lower == "-c" || lower == "--commands":
			return command{screen: commands}, Success
		case lower == "-x" || lower == "--examples":
			return command{screen: examples}, Success

		case lower == "-d" || lower == "--decode":
			if last || !setMode(modeDecode) {
				return command{}, BadInput
			}
		case lower == "-e" || lower == "--encode":
			if last || !setMode(modeEncode) {
				return command{}, BadInput
			}
		case lower == "-l" || lower == "--list":
			if !setMode(modeList) {
				return command{}, BadInput
			}
		case lower == "--header-source":
			if !setMode(modeHeaderSource) {
				return command{}, BadInput
			}
		case lower == "-a" || lower == "--all":
			switch cmd.mode {
			case modeDecode:
				cmd.mode = modeDecodeAll
			case modeEncode:
				cmd.mode = modeEncodeAll
			default:
				return command{}, BadInput
			}

		case lower == "-f" || lower == "--format":
			if last || cmd.format != "" {
				return command{}, BadInput
			}
			i++
			cmd.format = args[i]

		case hasValuePrefix(lower, "-i", "--in"):
			v := optionValue(arg)
			if v == "" || cmd.input != "" {
				return command{}, BadInput
			}
			cmd.input = v
		case hasValuePrefix(lower, "-o", "--out"):
			v := optionValue(arg)
			if v == "" || cmd.output != "" {
				return command{}, BadInput
			}
			cmd.output = v

		default:
			return command{}, BadInput
		}
	}

	// a single file needs an explicit input
	if (cmd.mode == modeDecode || cmd.mode == modeEncode || cmd.mode == modeHeaderSource) && cmd.input == "" {
		return command{}, BadInput
	}

	return cmd, Success
}

// hasValuePrefix reports whether arg is one of names followed by '='.
func hasValuePrefix(arg string, names ...string) bool {
	for _, name := range names {
		if strings.HasPrefix(arg, name+"=") {
			return true
		}
	}

	return false
}

// optionValue returns what follows the first '=' of arg.
func optionValue(arg string) string {
	_, v, _ := strings.Cut(arg, "=")
	return v
}

// splitLine turns a menu line into arguments. An argument starts with '-'
// at the beginning of the line or after white space and runs until the
// next such start, so paths may hold spaces and dashes:
//
//	-d -i=my files/a-b.wav   ->   ["-d", "-i=my files/a-b.wav"]
func splitLine(line string) []string {
	var (
		args  []string
		start = -1
	)

	flush := func(end int) {
		if start >= 0 {
			if arg := strings.TrimSpace(line[start:end]); arg != "" {
				args = append(args, arg)
			}
		}
	}

	prevSpace := true
	for i, r := range line {
		if r == '-' && prevSpace {
			flush(i)
			start = i
		} else if start < 0 && !unicode.IsSpace(r) {
			start = i
		}
		prevSpace = unicode.IsSpace(r)
	}
	flush(len(line))

	return args
}
