// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
)

const ruler = "-------------------------------------------------------------------------------"

func welcome(w io.Writer) {
	fmt.Fprintln(w, ruler)
	fmt.Fprintln(w, "kotorcodec")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Converts audio formats for Star Wars: Knights of the Old Republic &")
	fmt.Fprintln(w, "Star Wars: Knights of the Old Republic II - The Sith Lords")
	help(w)
}

func help(w io.Writer) {
	fmt.Fprint(w, ruler+`
Help

-d, --decode                decode audio
-e, --encode                encode audio
-f, --format                set output audio format
-m, --music                 streammusic format
-s, --sfx                   streamsounds format
-v, --vo                    streamwaves/streamvoice format
-a, --all                   all files
-l, --list                  list files & formats
    --header-source         print the header of a file as Go source
-i, --in                    input path
-o, --out                   output path
-h, --help                  display this menu
-c, --commands              display list of commands
-x, --examples              display example commands
-q, --quit                  exit application
    --config                configuration file (command line only)
`+ruler+"\n\n")
}

func commands(w io.Writer) {
	fmt.Fprint(w, "\n"+ruler+`
Commands

-d -i=[input path]
-d -i=[input path] -o=[output path]
-d -a
-d -a -i=[input path]
-d -a -o=[output path]
-d -a -i=[input path] -o=[output path]
-e -f -[format] -i=[input path]
-e -f -[format] -i=[input path] -o=[output path]
-e -a -f -[format]
-e -a -f -[format] -i=[input path]
-e -a -f -[format] -o=[output path]
-e -a -f -[format] -i=[input path] -o=[output path]
-l
-l -i=[input path]
-l -o=[output path]
-l -i=[input path] -o=[output path]
--header-source -i=[input path]
--header-source -i=[input path] -o=[output path]
`+ruler+"\n\n")
}

func examples(w io.Writer) {
	fmt.Fprint(w, "\n"+ruler+`
Examples

Encode all files in SFX format from the input path, to the output path:
-e --all -f --sfx -i=in_folder -o=out_folder

Decode a file, outputting to a new file:
-d -i=oldfile.old -o=newfile.new

Decode a file without specifying output, possibly overwriting the original:
-d -i=file.wav

List all files & formats in a given directory, printing to the console:
-l -i=my_folder

List all files & formats in the current directory, printing to a file:
-l -o=file.txt

Capture the header of a game file:
--header-source -i=streamwaves/n_darthmalak01.wav
`+ruler+"\n\n")
}
