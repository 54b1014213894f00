package aggregate

import (
	"github.com/ZanzyTHEbar/line-word-count/lwc/filesystem/types"
)

// ContentTotals is the field-wise sum of ContentCounts.
type ContentTotals struct {
	Lines uint64 `json:"lines"`
	Words uint64 `json:"words"`
	Chars uint64 `json:"chars"`
	Bytes uint64 `json:"bytes"`
	// NonUTF8 counts merged items whose characters were unavailable; their
	// Chars contribute zero.
	NonUTF8 uint64 `json:"non_utf8"`
}

// DirTotals is the field-wise sum of DirCounts.
type DirTotals struct {
	Subdirs  uint64 `json:"subdirs"`
	Files    uint64 `json:"files"`
	Symlinks uint64 `json:"symlinks"`
	Others   uint64 `json:"others"`
	Blocks   uint64 `json:"blocks"`
	Chars    uint64 `json:"chars"`
	Fifos    uint64 `json:"fifos"`
	Sockets  uint64 `json:"sockets"`
	Unknown  uint64 `json:"unknown"`
}

// GrandTotal is a commutative monoid over one result shape. The zero value for
// a kind is the identity; Combine is field-wise addition.
type GrandTotal struct {
	Kind    types.ResultKind `json:"kind"`
	Content ContentTotals    `json:"content"`
	Dir     DirTotals        `json:"dir"`
	// Items is the number of successful results merged in.
	Items uint64 `json:"items"`
	// Failures is the number of failed results seen; they add nothing else.
	Failures uint64 `json:"failures"`
}

// Zero returns the identity element for kind.
func Zero(kind types.ResultKind) GrandTotal {
	return GrandTotal{Kind: kind}
}

// Combine returns g+o. Both totals must have the same kind.
func (g GrandTotal) Combine(o GrandTotal) GrandTotal {
	g.Content.Lines += o.Content.Lines
	g.Content.Words += o.Content.Words
	g.Content.Chars += o.Content.Chars
	g.Content.Bytes += o.Content.Bytes
	g.Content.NonUTF8 += o.Content.NonUTF8

	g.Dir.Subdirs += o.Dir.Subdirs
	g.Dir.Files += o.Dir.Files
	g.Dir.Symlinks += o.Dir.Symlinks
	g.Dir.Others += o.Dir.Others
	g.Dir.Blocks += o.Dir.Blocks
	g.Dir.Chars += o.Dir.Chars
	g.Dir.Fifos += o.Dir.Fifos
	g.Dir.Sockets += o.Dir.Sockets
	g.Dir.Unknown += o.Dir.Unknown

	g.Items += o.Items
	g.Failures += o.Failures
	return g
}

// FromResult lifts a single result into the monoid.
func FromResult(r types.Result) GrandTotal {
	g := Zero(r.Kind)
	if r.Failed() {
		g.Failures = 1
		return g
	}

	switch {
	case r.Content != nil:
		c := r.Content
		g.Content = ContentTotals{
			Lines: c.Lines,
			Words: c.Words,
			Chars: c.CharCount(),
			Bytes: c.Bytes,
		}
		if !c.ValidUTF8 {
			g.Content.NonUTF8 = 1
		}
		g.Items = 1
	case r.Dir != nil:
		d := r.Dir
		g.Dir = DirTotals{
			Subdirs:  d.Subdirs,
			Files:    d.Files,
			Symlinks: d.Symlinks,
			Others:   d.Others,
			Blocks:   d.Blocks,
			Chars:    d.Chars,
			Fifos:    d.Fifos,
			Sockets:  d.Sockets,
			Unknown:  d.Unknown,
		}
		g.Items = 1
	}
	return g
}

// CharsComplete reports whether every merged item had a character count.
func (g GrandTotal) CharsComplete() bool {
	return g.Content.NonUTF8 == 0
}
