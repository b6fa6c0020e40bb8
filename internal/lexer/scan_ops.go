package lexer

import (
	"shaderlex/internal/token"
)

var singleOps = map[byte]token.Kind{
	'(': token.LeftParen,
	')': token.RightParen,
	'[': token.LeftBracket,
	']': token.RightBracket,
	'{': token.LeftBrace,
	'}': token.RightBrace,
	'.': token.Dot,
	',': token.Comma,
	':': token.Colon,
	';': token.Semicolon,
	'~': token.Tilde,
	'?': token.Question,
	'#': token.Hash,
	'<': token.LeftAngle,
	'>': token.RightAngle,
	'+': token.Plus,
	'-': token.Dash,
	'=': token.Equal,
	'!': token.Bang,
	'&': token.Ampersand,
	'|': token.VerticalBar,
	'^': token.Caret,
	'*': token.Star,
	'%': token.Percent,
}

// Longest match first: 3-byte, then 2-byte, then single-byte operators.
// '/' is handled by scanSlash.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	emit := func(k token.Kind) token.Token { return token.Token{Kind: k} }

	switch {
	case lx.try3('<', '<', '='):
		return emit(token.LeftAssign)
	case lx.try3('>', '>', '='):
		return emit(token.RightAssign)
	case lx.try2('<', '<'):
		return emit(token.LeftOp)
	case lx.try2('<', '='):
		return emit(token.LeOp)
	case lx.try2('>', '>'):
		return emit(token.RightOp)
	case lx.try2('>', '='):
		return emit(token.GeOp)
	case lx.try2('+', '+'):
		return emit(token.IncOp)
	case lx.try2('+', '='):
		return emit(token.AddAssign)
	case lx.try2('-', '-'):
		return emit(token.DecOp)
	case lx.try2('-', '='):
		return emit(token.SubAssign)
	case lx.try2('=', '='):
		return emit(token.EqOp)
	case lx.try2('!', '='):
		return emit(token.NeOp)
	case lx.try2('&', '&'):
		return emit(token.AndOp)
	case lx.try2('&', '='):
		return emit(token.AndAssign)
	case lx.try2('|', '|'):
		return emit(token.OrOp)
	case lx.try2('|', '='):
		return emit(token.OrAssign)
	case lx.try2('^', '^'):
		return emit(token.XorOp)
	case lx.try2('^', '='):
		return emit(token.XorAssign)
	case lx.try2('*', '='):
		return emit(token.MulAssign)
	case lx.try2('%', '='):
		return emit(token.ModAssign)
	}

	ch := lx.cursor.Peek(0)
	lx.cursor.Advance(1)
	if k, ok := singleOps[ch]; ok {
		return emit(k)
	}
	lx.fail(ErrUnknownChar, "Unknown character 0x%X", ch)
	return emit(token.Error)
}
