package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ZanzyTHEbar/line-word-count/lwc/aggregate"
	"github.com/ZanzyTHEbar/line-word-count/lwc/filesystem/types"
)

const delim = "==>"

// stat is one "<count> <what>" field of an output line.
type stat struct {
	count uint64
	what  string
}

// TextReporter writes one line per item, "<stats> ==> <path>", and failures
// to errOut. Zero counts are left out.
type TextReporter struct {
	out        io.Writer
	errOut     io.Writer
	totalsOnly bool
}

func NewTextReporter(out, errOut io.Writer, totalsOnly bool) *TextReporter {
	return &TextReporter{out: out, errOut: errOut, totalsOnly: totalsOnly}
}

func (r *TextReporter) Item(res types.Result) error {
	if res.Failed() {
		_, err := fmt.Fprintf(r.errOut, "%s %v\n", delim, res.Err)
		return err
	}

	var line string
	switch {
	case res.Content != nil:
		line = contentStats(res.Content.Lines, res.Content.Words, res.Content.Chars, res.Content.Bytes)
	case res.Dir != nil:
		line = dirStats(aggregate.FromResult(res).Dir)
	}
	if res.Path != "" {
		line = fmt.Sprintf("%s %s %s", line, delim, res.Path)
	}
	_, err := fmt.Fprintln(r.out, line)
	return err
}

func (r *TextReporter) Total(t aggregate.GrandTotal) error {
	var line string
	if t.Kind == types.ResultDirectory {
		line = dirStats(t.Dir)
	} else {
		var chars *uint64
		if t.CharsComplete() {
			chars = &t.Content.Chars
		}
		line = contentStats(t.Content.Lines, t.Content.Words, chars, t.Content.Bytes)
	}

	if !r.totalsOnly {
		line = "\n" + line
	}
	if t.Failures > 0 {
		line = fmt.Sprintf("%s (%d failed)", line, t.Failures)
	}
	_, err := fmt.Fprintln(r.out, line)
	return err
}

func contentStats(lines, words uint64, chars *uint64, bytes uint64) string {
	stats := []stat{{lines, "line"}, {words, "word"}}
	if chars != nil {
		stats = append(stats, stat{*chars, "char"})
	}
	stats = append(stats, stat{bytes, "byte"})
	return formatStats(stats)
}

func dirStats(d aggregate.DirTotals) string {
	return formatStats([]stat{
		{d.Subdirs, "subdir"},
		{d.Files, "file"},
		{d.Symlinks, "symlink"},
		{d.Blocks, "block"},
		{d.Chars, "char"},
		{d.Fifos, "fifo"},
		{d.Sockets, "socket"},
		{d.Unknown, "unknown"},
	})
}

func formatStats(stats []stat) string {
	parts := make([]string, 0, len(stats))
	for _, s := range stats {
		if s.count == 0 {
			continue
		}
		what := s.what
		if s.count > 1 {
			what += "s"
		}
		parts = append(parts, fmt.Sprintf("%d %s", s.count, what))
	}
	if len(parts) == 0 {
		return "empty"
	}
	return strings.Join(parts, " ")
}
