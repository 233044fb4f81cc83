package main

import (
	"fmt"
	"io"

	"github.com/karrick/gobls"
	"github.com/karrick/gologs"
	"github.com/karrick/goring"
	"github.com/karrick/goutfs"
)

type config struct {
	chars       int // chars is the maximum characters per tail line; 0 means no limit
	headerLines int
	lines       int
	log         *gologs.Logger
}

func (c config) validate() error {
	switch {
	case c.lines < 1:
		return fmt.Errorf("cannot tail non-positive line count: %d", c.lines)
	case c.headerLines < 0:
		return fmt.Errorf("cannot print negative header line count: %d", c.headerLines)
	case c.chars < 0:
		return fmt.Errorf("cannot truncate to negative character count: %d", c.chars)
	}
	return nil
}

// process copies the first cfg.headerLines lines of ior to iow, then the last
// cfg.lines lines of what remains.
func process(ior io.Reader, iow io.Writer, cfg config) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	_ = cfg.log.Verbose("lines: %d; header: %d; chars: %d", cfg.lines, cfg.headerLines, cfg.chars)

	// Every line goes into the ring; once it is full each push discards the
	// oldest line, leaving the last cfg.lines lines when input ends.
	rb := goring.New[string](cfg.lines)

	br := gobls.NewScanner(ior)

	var lineNumber, tailed int

	for br.Scan() {
		if lineNumber < cfg.headerLines {
			lineNumber++
			if _, err := fmt.Fprintf(iow, "%s\n", br.Text()); err != nil {
				return err
			}
			continue
		}
		rb.Push(br.Text())
		tailed++
	}
	if err := br.Err(); err != nil {
		return fmt.Errorf("cannot read input: %w", err)
	}

	if tailed > rb.Cap() {
		_ = cfg.log.Verbose("read %d lines; discarded %d", tailed, tailed-rb.Cap())
	} else {
		_ = cfg.log.Verbose("read %d lines", tailed)
	}

	// The read cursor has not moved, so one lap of pops yields the slots in
	// storage order, skipping empty slots when fewer lines than the capacity
	// were read. After a partial lap of overwrites the oldest line sits at
	// the write cursor, tailed%Cap slots in.
	lines := make([]string, 0, rb.Cap())
	for i := 0; i < rb.Cap(); i++ {
		if line, ok := rb.Pop(); ok {
			lines = append(lines, line)
		}
	}
	var oldest int
	if tailed > rb.Cap() {
		oldest = tailed % rb.Cap()
	}

	for _, ll := range [][]string{lines[oldest:], lines[:oldest]} {
		for _, line := range ll {
			if _, err := fmt.Fprintf(iow, "%s\n", truncate(line, cfg.chars)); err != nil {
				return err
			}
		}
	}
	return nil
}

// truncate returns at most max characters of line. A max of 0 means no limit.
func truncate(line string, max int) string {
	if max == 0 {
		return line
	}
	s := goutfs.NewString(line)
	if s.Len() <= max {
		return line
	}
	return string(s.Slice(0, max))
}
