package lexer

import (
	"fmt"
	"sync/atomic"

	"github.com/tliron/commonlog"

	"shaderlex/internal/source"
	"shaderlex/internal/token"
)

var log = commonlog.GetLogger("shaderlex.lexer")

// Lexer turns the bytes of a CodeSource into tokens, one per Next call.
// Trivia is returned as ordinary tokens. A Lexer is not safe for concurrent
// use, except for Ref and Unref.
type Lexer struct {
	refs    atomic.Int32
	src     source.CodeSource
	data    []byte
	cursor  Cursor
	opts    Options
	pending []*Error
}

// New loads src once and returns a lexer positioned at its start holding one
// reference. A load failure is reported through the error callback and the
// lexer continues with an empty buffer.
func New(src source.CodeSource, opts Options) *Lexer {
	lx := &Lexer{src: src, opts: opts}
	lx.refs.Store(1)

	var file source.FileID
	if f, ok := src.(*source.File); ok {
		file = f.ID
	}

	data, err := src.Load()
	if err == nil {
		lx.cursor, err = NewCursor(src, file, data)
	}
	if err != nil {
		lx.data = nil
		lx.cursor, _ = NewCursor(src, file, nil)
		e := newError(ErrLoad, err.Error())
		e.Err = fmt.Errorf("%w: %w", ErrLoad, err)
		e.Location = lx.cursor.Location()
		e.Span = source.Span{File: file}
		lx.emit(e.Location, token.Token{Kind: token.EOF, Span: e.Span}, e)
		return lx
	}
	lx.data = data
	return lx
}

// Ref adds a reference and returns lx.
func (lx *Lexer) Ref() *Lexer {
	lx.refs.Add(1)
	return lx
}

// Unref drops a reference. Dropping the last one runs Options.OnRelease and
// releases the buffer and the source; Next then only yields EOF.
func (lx *Lexer) Unref() {
	if lx.refs.Add(-1) != 0 {
		return
	}
	if lx.opts.OnRelease != nil {
		lx.opts.OnRelease()
	}
	lx.cursor.release()
	lx.data = nil
	lx.src = nil
}

// Source returns the code source, or nil after the last Unref.
func (lx *Lexer) Source() source.CodeSource { return lx.src }

// Bytes returns the loaded buffer.
func (lx *Lexer) Bytes() []byte { return lx.data }

// Location returns the position right before the next token.
func (lx *Lexer) Location() source.Location { return lx.cursor.Location() }

// Next reads one token. After the end of input it keeps returning EOF.
// Errors are reported and the offending input is consumed, so Next always
// makes progress.
func (lx *Lexer) Next() token.Token {
	start := lx.cursor.Mark()
	ch := lx.cursor.Peek(0)
	var tok token.Token

	switch {
	case lx.cursor.EOF():
		// trailing splices belong to the EOF token
		lx.cursor.SkipSplices()
		tok = token.Token{Kind: token.EOF}
	case isSpace(ch):
		tok = lx.scanWhitespace()
	case ch == '/':
		tok = lx.scanSlash()
	case ch == '"':
		tok = lx.scanString()
	case isDec(ch):
		tok = lx.scanNumber()
	case token.IsIdentStart(ch):
		tok = lx.scanIdent()
	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.Span = lx.cursor.SpanFrom(start)
	lx.flush(start, tok)
	return tok
}

// Raw returns the bytes a token was read from, splices included.
func (lx *Lexer) Raw(tok token.Token) []byte {
	return tok.Span.Slice(lx.data)
}

// fail queues an error for the token being scanned.
func (lx *Lexer) fail(kind error, format string, args ...any) {
	lx.pending = append(lx.pending, newError(kind, fmt.Sprintf(format, args...)))
}

func (lx *Lexer) flush(start Mark, tok token.Token) {
	if len(lx.pending) == 0 {
		return
	}
	errs := lx.pending
	lx.pending = nil
	for _, e := range errs {
		e.Location = start.Loc
		e.Span = tok.Span
		lx.emit(start.Loc, tok, e)
	}
}

func (lx *Lexer) emit(loc source.Location, tok token.Token, e *Error) {
	if lx.opts.OnError != nil {
		lx.opts.OnError(lx, loc, tok, e)
		return
	}
	log.Warningf("Unhandled GLSL error: %d:%d: %s", loc.Lines+1, loc.LineChars+1, e.Msg)
}

// Tokenize reads src through EOF, which is included as the last token, and
// releases the lexer.
func Tokenize(src source.CodeSource, opts Options) []token.Token {
	lx := New(src, opts)
	defer lx.Unref()
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}
