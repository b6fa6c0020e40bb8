package stream

import (
	"fmt"

	"shaderlex/internal/diag"
	"shaderlex/internal/lexer"
	"shaderlex/internal/source"
	"shaderlex/internal/token"
)

// Stream hands out the significant tokens of a lexer. Whitespace, newlines,
// comments and Error tokens are collected as leading trivia of the next
// significant token.
type Stream struct {
	lx       *lexer.Lexer
	reporter diag.Reporter

	tok     token.Token
	loc     source.Location
	leading []token.Token
	ready   bool
	last    source.Span
}

// New wraps lx and takes a reference on it; Close drops it.
func New(lx *lexer.Lexer, r diag.Reporter) *Stream {
	return &Stream{lx: lx.Ref(), reporter: r}
}

// Close releases the stream's reference to the lexer.
func (s *Stream) Close() {
	if s.lx == nil {
		return
	}
	s.lx.Unref()
	s.lx = nil
}

func (s *Stream) fill() {
	if s.ready {
		return
	}
	s.leading = s.leading[:0]
	for {
		loc := s.lx.Location()
		tok := s.lx.Next()
		if tok.IsSkipped() {
			s.leading = append(s.leading, tok)
			continue
		}
		s.tok = tok
		s.loc = loc
		s.ready = true
		return
	}
}

// Peek returns the next significant token without consuming it.
func (s *Stream) Peek() token.Token {
	s.fill()
	return s.tok
}

// At reports whether the next significant token has one of kinds.
func (s *Stream) At(kinds ...token.Kind) bool {
	return s.Peek().Is(kinds...)
}

// Consume returns the next significant token and moves past it.
// At the end of input it keeps returning EOF.
func (s *Stream) Consume() token.Token {
	tok := s.Peek()
	if tok.Kind != token.EOF {
		s.ready = false
		s.last = tok.Span
	}
	return tok
}

// Location is the position where the peeked token starts.
func (s *Stream) Location() source.Location {
	s.fill()
	return s.loc
}

// Leading returns the trivia read before the peeked token. The slice is
// reused after the next Consume.
func (s *Stream) Leading() []token.Token {
	s.fill()
	return s.leading
}

// span is the peeked token's span. An EOF without a position falls back to
// the end of the last consumed token.
func (s *Stream) span() source.Span {
	tok := s.Peek()
	if tok.Kind == token.EOF && tok.Span.Start == 0 && tok.Span.End == 0 && s.last.End > 0 {
		return source.Span{File: s.last.File, Start: s.last.End, End: s.last.End}
	}
	return tok.Span
}

// Errorf reports an error at the peeked token.
func (s *Stream) Errorf(code diag.Code, format string, args ...any) {
	diag.ReportError(s.reporter, code, s.span(), fmt.Sprintf(format, args...)).Emit()
}

// Expect consumes a token of kind k. Otherwise it reports SynExpectToken
// and leaves the stream where it is.
func (s *Stream) Expect(k token.Kind) (token.Token, bool) {
	if s.At(k) {
		return s.Consume(), true
	}
	s.Errorf(diag.SynExpectToken, "Expected %q, got %q", k.Text(), s.Peek().String())
	return s.Peek(), false
}

var closers = map[token.Kind]token.Kind{
	token.LeftParen:   token.RightParen,
	token.LeftBracket: token.RightBracket,
	token.LeftBrace:   token.RightBrace,
}

// Sync skips tokens until the next k outside of nested parentheses,
// brackets and braces. The match is not consumed. It returns false when
// the input ends first.
func (s *Stream) Sync(k token.Kind) bool {
	for {
		tok := s.Peek()
		if tok.Kind == k {
			return true
		}
		if tok.Kind == token.EOF {
			return false
		}
		s.Consume()
		if closer, ok := closers[tok.Kind]; ok {
			if !s.Sync(closer) {
				return false
			}
			s.Consume()
		}
	}
}
