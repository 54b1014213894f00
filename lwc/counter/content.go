// Package counter implements the per-job counting primitives: a streaming
// line/word/char/byte counter and a one-level directory tally.
package counter

import (
	"errors"
	"io"
	"sync"

	"github.com/ZanzyTHEbar/line-word-count/lwc/filesystem/types"
)

// DefaultBufferSize is the read size used when none is configured.
const DefaultBufferSize = 64 * 1024

var bufPool = sync.Pool{
	New: func() any {
		b := make([]byte, DefaultBufferSize)
		return &b
	},
}

// ContentCounter accumulates statistics for a single byte stream.
// The zero value is ready to use; feed it with Write and finish with Result.
type ContentCounter struct {
	lines  uint64
	words  uint64
	chars  uint64
	bytes  uint64
	inWord bool
	last   byte

	dec     utf8State
	invalid bool
}

// Write consumes p. It never returns an error.
func (c *ContentCounter) Write(p []byte) (int, error) {
	for _, b := range p {
		if b == '\n' {
			c.lines++
		}

		if isSpace(b) {
			c.inWord = false
		} else if !c.inWord {
			c.inWord = true
			c.words++
		}

		if !c.invalid {
			switch c.dec.step(b) {
			case utf8Complete:
				c.chars++
			case utf8Invalid:
				c.invalid = true
			}
		}
	}

	if len(p) > 0 {
		c.last = p[len(p)-1]
	}
	c.bytes += uint64(len(p))
	return len(p), nil
}

// Result finalizes the counts for path. A final unterminated line counts as a
// line, and a truncated multi-byte sequence at end of stream marks the stream
// as not UTF-8.
func (c *ContentCounter) Result(path string) types.ContentCount {
	lines := c.lines
	if c.bytes > 0 && c.last != '\n' {
		lines++
	}

	valid := !c.invalid && c.dec.pending == 0

	cc := types.ContentCount{
		Path:      path,
		Lines:     lines,
		Words:     c.words,
		Bytes:     c.bytes,
		ValidUTF8: valid,
	}
	if valid {
		chars := c.chars
		cc.Chars = &chars
	}
	return cc
}

// Count reads r to EOF in a single pass using a pooled buffer of bufSize bytes
// (DefaultBufferSize when bufSize <= 0). A read error discards the partial count.
func Count(r io.Reader, path string, bufSize int) (types.ContentCount, error) {
	var buf []byte
	if bufSize <= 0 || bufSize == DefaultBufferSize {
		bp := bufPool.Get().(*[]byte)
		defer bufPool.Put(bp)
		buf = *bp
	} else {
		buf = make([]byte, bufSize)
	}

	var c ContentCounter
	for {
		n, err := r.Read(buf)
		if n > 0 {
			c.Write(buf[:n])
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return types.ContentCount{}, err
		}
	}

	return c.Result(path), nil
}

// isSpace is the classic wc whitespace set: space, \t, \n, \v, \f, \r.
func isSpace(b byte) bool {
	return b == ' ' || (b >= '\t' && b <= '\r')
}
