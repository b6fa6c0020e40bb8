package lexer

func isDec(b byte) bool { return b >= '0' && b <= '9' }
func isOct(b byte) bool { return b >= '0' && b <= '7' }
func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

func hexVal(b byte) uint64 {
	switch {
	case b >= 'a':
		return uint64(b-'a') + 10
	case b >= 'A':
		return uint64(b-'A') + 10
	default:
		return uint64(b - '0')
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\f' || isNewline(b)
}

// try2/try3 consume the next 2/3 logical bytes when they match.
func (lx *Lexer) try3(a, b, c byte) bool {
	if lx.cursor.Peek(0) != a || lx.cursor.Peek(1) != b || lx.cursor.Peek(2) != c {
		return false
	}
	lx.cursor.Advance(3)
	return true
}

func (lx *Lexer) try2(a, b byte) bool {
	if lx.cursor.Peek(0) != a || lx.cursor.Peek(1) != b {
		return false
	}
	lx.cursor.Advance(2)
	return true
}
