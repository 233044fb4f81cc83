package main

import (
	"fmt"
	"io"
	"os"

	"github.com/karrick/golf"
	"github.com/karrick/gologs"
	"github.com/karrick/gorill"
)

var (
	optChars        = golf.IntP('c', "chars", 0, "truncate each tail line to N characters (0 means no limit)")
	optHeaderLines  = golf.Int("header", 0, "print first N lines verbatim before tailing")
	optIgnoreHeader = golf.BoolP('s', "skip-header", false, "Same as `--header 1`")
	optLines        = golf.IntP('n', "lines", 10, "print the last N lines of input")
	optVerbose      = golf.BoolP('v', "verbose", false, "print verbose information to standard error")
)

func main() {
	golf.Parse()

	log, err := gologs.New(os.Stderr, gologs.DefaultCommandFormat)
	if err != nil {
		bail(err)
	}
	if *optVerbose {
		log.SetVerbose()
	}

	if err := cmd(log); err != nil {
		bail(err)
	}
}

func bail(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func cmd(log *gologs.Logger) error {
	if *optIgnoreHeader && *optHeaderLines == 0 {
		*optHeaderLines = 1
	}

	cfg := config{
		chars:       *optChars,
		headerLines: *optHeaderLines,
		lines:       *optLines,
		log:         log,
	}

	var ior io.Reader
	if golf.NArg() == 0 {
		ior = os.Stdin
	} else {
		ior = &gorill.FilesReader{Pathnames: golf.Args()}
	}

	return process(ior, os.Stdout, cfg)
}
