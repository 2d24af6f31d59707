// Package diag renders source-position-tagged diagnostics and tracks
// whether any have been reported, the way the assembler's driver uses
// it to decide between exit codes 0/1/2.
package diag

import (
	"fmt"
	"io"
	"strings"
)

// Pos is a source-position record: a file name and a line with an
// inclusive column range. Columns and lines are 1-based; a Pos with
// Line == 0 has no associated source line to render.
type Pos struct {
	File     string
	Line     int
	ColStart int
	ColEnd   int
}

func (p Pos) String() string {
	return fmt.Sprintf("%s:%d:%d-%d", p.File, p.Line, p.ColStart, p.ColEnd)
}

// Sink accumulates diagnostics and latches once any has been reported,
// mirroring the process-wide error_reported flag described in §7: a
// phase keeps running after the first failure so later errors are
// also surfaced, and the driver only decides to abort once a phase
// completes.
type Sink struct {
	w        io.Writer
	lines    []string
	reported bool
}

// NewSink creates a Sink that renders diagnostics against source,
// split into lines for caret-band rendering.
func NewSink(w io.Writer, source string) *Sink {
	return &Sink{w: w, lines: strings.Split(source, "\n")}
}

// Report writes one diagnostic in the form
// "<file>:<line>:<col-begin>-<col-end>: <message>" followed by the
// offending source line and a caret-underline band, and sets the
// latch. A zero Pos (no parser line information available) skips the
// source/caret lines but still reports and latches.
func (s *Sink) Report(pos Pos, err error) {
	s.reported = true
	fmt.Fprintf(s.w, "%s: %s\n", pos, err)
	if pos.Line < 1 || pos.Line > len(s.lines) {
		return
	}
	line := s.lines[pos.Line-1]
	fmt.Fprintln(s.w, line)
	fmt.Fprintln(s.w, caretBand(line, pos.ColStart, pos.ColEnd))
}

// ErrorReported reports whether Report has ever been called.
func (s *Sink) ErrorReported() bool {
	return s.reported
}

// caretBand draws spaces up to col start, then carets from start to
// end inclusive (both 1-based). Tabs in the source line are preserved
// as tabs in the band so the columns still line up in a terminal.
func caretBand(line string, start, end int) string {
	if start < 1 {
		start = 1
	}
	if end < start {
		end = start
	}
	var b strings.Builder
	for i := 1; i < start; i++ {
		if i-1 < len(line) && line[i-1] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	for i := start; i <= end; i++ {
		b.WriteByte('^')
	}
	return b.String()
}
