package lexer

import (
	"strings"

	"shaderlex/internal/token"
)

// scanString reads "..." without escape processing. The payload is the text
// between the quotes with splices removed.
func (lx *Lexer) scanString() token.Token {
	lx.cursor.Advance(1) // opening '"'
	var sb strings.Builder
	for {
		if lx.cursor.EOF() {
			lx.fail(ErrUnterminatedString, "Unterminated string literal.")
			break
		}
		ch := lx.cursor.Peek(0)
		lx.cursor.Advance(1)
		if ch == '"' {
			break
		}
		sb.WriteByte(ch)
	}
	return token.Token{Kind: token.String, Str: sb.String()}
}
