package lexer

import (
	"strings"

	"shaderlex/internal/token"
)

// scanIdent reads [A-Za-z_][A-Za-z0-9_]* and classifies it.
func (lx *Lexer) scanIdent() token.Token {
	var sb strings.Builder
	for ch := lx.cursor.Peek(0); token.IsIdentChar(ch); ch = lx.cursor.Peek(0) {
		sb.WriteByte(ch)
		lx.cursor.Advance(1)
	}
	return token.FromIdentifier(sb.String())
}
