package lexer

import (
	"shaderlex/internal/token"
)

// scanWhitespace consumes a maximal blank run. Any line break in it makes
// the run a Newline token.
func (lx *Lexer) scanWhitespace() token.Token {
	kind := token.Whitespace
	for {
		ch := lx.cursor.Peek(0)
		if !isSpace(ch) {
			break
		}
		if isNewline(ch) {
			kind = token.Newline
		}
		lx.cursor.Advance(1)
	}
	return token.Token{Kind: kind}
}

// scanSlash handles comments, "/=" and "/".
func (lx *Lexer) scanSlash() token.Token {
	switch lx.cursor.Peek(1) {
	case '/':
		lx.cursor.Advance(2)
		for !lx.cursor.EOF() && !isNewline(lx.cursor.Peek(0)) {
			lx.cursor.Advance(1)
		}
		return token.Token{Kind: token.LineComment}
	case '*':
		lx.cursor.Advance(2)
		for {
			if lx.cursor.EOF() {
				lx.fail(ErrUnterminatedComment, "Unterminated comment at end of document.")
				return token.Token{Kind: token.Comment}
			}
			if lx.cursor.Peek(0) == '*' && lx.cursor.Peek(1) == '/' {
				lx.cursor.Advance(2)
				return token.Token{Kind: token.Comment}
			}
			lx.cursor.Advance(1)
		}
	case '=':
		lx.cursor.Advance(2)
		return token.Token{Kind: token.DivAssign}
	default:
		lx.cursor.Advance(1)
		return token.Token{Kind: token.Slash}
	}
}
