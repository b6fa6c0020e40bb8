package source

import "fmt"

// Location is a cursor position inside a CodeSource. All counters are 0-based.
// Chars counts UTF-8 code points; continuation bytes do not advance it.
type Location struct {
	Source    CodeSource `json:"-" msgpack:"-"`
	Bytes     int        `json:"bytes" msgpack:"b"`
	Chars     int        `json:"chars" msgpack:"c"`
	Lines     int        `json:"lines" msgpack:"l"`
	LineBytes int        `json:"line_bytes" msgpack:"lb"`
	LineChars int        `json:"line_chars" msgpack:"lc"`
}

// Advance moves the location over nBytes bytes forming nChars characters on
// the current line.
func (l *Location) Advance(nBytes, nChars int) {
	l.Bytes += nBytes
	l.Chars += nChars
	l.LineBytes += nBytes
	l.LineChars += nChars
}

// AdvanceNewline moves the location over a newline sequence of nBytes bytes
// and starts a new line.
func (l *Location) AdvanceNewline(nBytes int) {
	l.Bytes += nBytes
	l.Chars += nBytes
	l.Lines++
	l.LineBytes = 0
	l.LineChars = 0
}

// Pos returns the 1-based line and column of the location.
func (l Location) Pos() LineCol {
	return LineCol{Line: uint32(l.Lines + 1), Col: uint32(l.LineChars + 1)} // #nosec G115 -- counters never go negative
}

// Name returns the name of the owning source, or "<input>".
func (l Location) Name() string {
	if l.Source == nil {
		return "<input>"
	}
	return l.Source.Name()
}

// String renders name:line:col with 1-based line and column.
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.Name(), l.Lines+1, l.LineChars+1)
}
