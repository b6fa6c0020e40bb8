package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"shaderlex/internal/source"
)

// Cursor walks a byte buffer and keeps the source location of its position
// up to date. Peek and Advance see through backslash-newline splices, so
// scanners never deal with them.
type Cursor struct {
	data []byte
	file source.FileID
	Off  uint32
	// Limit is the exclusive upper bound for Off.
	Limit uint32
	loc   source.Location
	// second byte of a CR LF or LF CR pair whose first byte was consumed
	pairNL byte
}

// NewCursor creates a cursor at the start of data.
func NewCursor(src source.CodeSource, file source.FileID, data []byte) (Cursor, error) {
	limit, err := safecast.Conv[uint32](len(data))
	if err != nil {
		return Cursor{loc: source.Location{Source: src}}, fmt.Errorf("source too large: %w", err)
	}
	return Cursor{
		data:  data,
		file:  file,
		Limit: limit,
		loc:   source.Location{Source: src},
	}, nil
}

// Location returns the location of the next unconsumed byte.
func (c *Cursor) Location() source.Location { return c.loc }

func isNewline(b byte) bool { return b == '\n' || b == '\r' }

// newlineLen returns the length of the newline sequence at i: 2 for a pair
// of different newline bytes, 1 for a single one and 0 otherwise.
func (c *Cursor) newlineLen(i uint32) uint32 {
	if i >= c.Limit || !isNewline(c.data[i]) {
		return 0
	}
	if i+1 < c.Limit && isNewline(c.data[i+1]) && c.data[i+1] != c.data[i] {
		return 2
	}
	return 1
}

// splice returns the first index at or after i that does not start a
// backslash-newline sequence.
func (c *Cursor) splice(i uint32) uint32 {
	for i+1 < c.Limit && c.data[i] == '\\' {
		n := c.newlineLen(i + 1)
		if n == 0 {
			break
		}
		i += 1 + n
	}
	return i
}

// forward returns the buffer index of the n-th logical byte ahead.
func (c *Cursor) forward(n int) uint32 {
	i := c.splice(c.Off)
	for ; n > 0 && i < c.Limit; n-- {
		i = c.splice(i + 1)
	}
	return i
}

// EOF reports whether only splices (or nothing) remain.
func (c *Cursor) EOF() bool {
	return c.splice(c.Off) >= c.Limit
}

// Peek returns the n-th logical byte ahead, or 0 past the end.
func (c *Cursor) Peek(n int) byte {
	i := c.forward(n)
	if i >= c.Limit {
		return 0
	}
	return c.data[i]
}

// Advance consumes n logical bytes together with any splices before them.
func (c *Cursor) Advance(n int) {
	for ; n > 0; n-- {
		c.SkipSplices()
		if c.Off >= c.Limit {
			return
		}
		c.step()
	}
}

// SkipSplices consumes backslash-newline sequences at the cursor. They are
// invisible to Peek but still advance the line count.
func (c *Cursor) SkipSplices() {
	for c.Off+1 < c.Limit && c.data[c.Off] == '\\' {
		n := c.newlineLen(c.Off + 1)
		if n == 0 {
			return
		}
		c.loc.Advance(1, 1)
		c.loc.AdvanceNewline(int(n))
		c.Off += 1 + n
		c.pairNL = 0
	}
}

func (c *Cursor) step() {
	b := c.data[c.Off]
	switch {
	case isNewline(b) && c.pairNL == b:
		// second half of a two-byte line break
		c.loc.Bytes++
		c.loc.Chars++
		c.pairNL = 0
	case isNewline(b):
		c.loc.AdvanceNewline(1)
		c.pairNL = 0
		if c.newlineLen(c.Off) == 2 {
			c.pairNL = c.data[c.Off+1]
		}
	case b&0xC0 == 0x80:
		// UTF-8 continuation byte
		c.loc.Advance(1, 0)
		c.pairNL = 0
	default:
		c.loc.Advance(1, 1)
		c.pairNL = 0
	}
	c.Off++
}

// Mark is a saved cursor position used to build spans.
type Mark struct {
	Off uint32
	Loc source.Location
}

// Mark saves the current position.
func (c *Cursor) Mark() Mark {
	return Mark{Off: c.Off, Loc: c.loc}
}

// SpanFrom returns the span of everything consumed since m.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.file, Start: m.Off, End: c.Off}
}

// Slice returns the raw bytes consumed since m, splices included.
func (c *Cursor) Slice(m Mark) []byte {
	return c.data[m.Off:c.Off]
}

// release drops the buffer; the cursor then reports EOF forever.
func (c *Cursor) release() {
	c.data = nil
	c.Off = 0
	c.Limit = 0
	c.loc.Source = nil
}
