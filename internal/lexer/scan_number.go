package lexer

import (
	"math"
	"strconv"

	"shaderlex/internal/token"
)

// Integer literals are 32 bits wide. Larger values are reported as overflow
// and wrap around; the wrapped value is still returned.

func (lx *Lexer) scanNumber() token.Token {
	if lx.cursor.Peek(0) == '0' {
		if c := lx.cursor.Peek(1); c == 'x' || c == 'X' {
			if !isHex(lx.cursor.Peek(2)) {
				// "0x" without digits: just the zero
				lx.cursor.Advance(1)
				return token.Token{Kind: token.IntConstant}
			}
			lx.cursor.Advance(2)
			return lx.scanHex()
		}
		return lx.scanOctal()
	}
	return lx.scanDecimal()
}

func (lx *Lexer) scanHex() token.Token {
	var v uint64
	overflow := false
	for ch := lx.cursor.Peek(0); isHex(ch); ch = lx.cursor.Peek(0) {
		v = v*16 + hexVal(ch)
		if v > math.MaxUint32 {
			overflow = true
			v &= math.MaxUint32
		}
		lx.cursor.Advance(1)
	}
	tok := lx.intWithSuffix(v)
	if overflow {
		lx.fail(ErrIntOverflow, "Overflow in integer constant")
	}
	return tok
}

// scanOctal reads a literal starting with '0'. A digit run followed by a
// float marker is handed to scanDecimal. Digits 8 and 9 are consumed but
// only the octal prefix before them contributes to the value.
func (lx *Lexer) scanOctal() token.Token {
	n := 0
	la := lx.cursor
	for isDec(la.Peek(0)) {
		la.Advance(1)
		n++
	}
	switch la.Peek(0) {
	case '.', 'e', 'E', 'f', 'F':
		return lx.scanDecimal()
	}

	var v uint64
	valid, overflow := true, false
	for range n {
		ch := lx.cursor.Peek(0)
		if valid && isOct(ch) {
			v = v*8 + uint64(ch-'0')
			if v > math.MaxUint32 {
				overflow = true
				v &= math.MaxUint32
			}
		} else {
			valid = false
		}
		lx.cursor.Advance(1)
	}
	tok := lx.intWithSuffix(v)
	if !valid {
		lx.fail(ErrInvalidOctal, "Invalid digit in octal constant")
	}
	if overflow {
		lx.fail(ErrOctalOverflow, "Overflow in octal constant")
	}
	return tok
}

// scanDecimal reads digits, an optional fraction and an optional exponent.
// An exponent marker without digits is left unconsumed.
func (lx *Lexer) scanDecimal() token.Token {
	var (
		text     []byte // literal without splices, for float conversion
		intPart  uint64
		overflow bool
		isInt    = true
	)
	// la walks ahead of the token start; Peek(n) with a growing n would
	// rescan from the start on every call.
	la := lx.cursor
	digits := func() {
		for ch := la.Peek(0); isDec(ch); ch = la.Peek(0) {
			text = append(text, ch)
			la.Advance(1)
		}
	}

	for ch := la.Peek(0); isDec(ch); ch = la.Peek(0) {
		intPart = intPart*10 + uint64(ch-'0')
		if intPart > math.MaxUint32 {
			overflow = true
			intPart &= math.MaxUint32
		}
		text = append(text, ch)
		la.Advance(1)
	}
	if la.Peek(0) == '.' {
		isInt = false
		text = append(text, '.')
		la.Advance(1)
		digits()
	}
	if ch := la.Peek(0); ch == 'e' || ch == 'E' {
		j := 1
		sign := la.Peek(1)
		if sign == '+' || sign == '-' {
			j = 2
		}
		if isDec(la.Peek(j)) {
			isInt = false
			text = append(text, 'e')
			if j == 2 {
				text = append(text, sign)
			}
			la.Advance(j)
			digits()
		}
	}
	lx.cursor = la

	if isInt {
		tok := lx.intWithSuffix(intPart)
		if overflow {
			lx.fail(ErrIntOverflow, "Overflow in integer constant")
		}
		return tok
	}

	// ErrRange still yields the nearest value (±Inf or 0)
	value, _ := strconv.ParseFloat(string(text), 64)
	kind := token.FloatConstant
	switch ch := lx.cursor.Peek(0); {
	case ch == 'f' || ch == 'F':
		lx.cursor.Advance(1)
	case ch == 'l' && lx.cursor.Peek(1) == 'f', ch == 'L' && lx.cursor.Peek(1) == 'F':
		lx.cursor.Advance(2)
		kind = token.DoubleConstant
	}
	if overflow {
		lx.fail(ErrFloatOverflow, "Overflow in floating point constant")
	}
	return token.Token{Kind: kind, Float: value}
}

func (lx *Lexer) intWithSuffix(v uint64) token.Token {
	u := uint32(v) // #nosec G115 -- v is already reduced to 32 bits
	if c := lx.cursor.Peek(0); c == 'u' || c == 'U' {
		lx.cursor.Advance(1)
		return token.Token{Kind: token.UintConstant, Uint: u}
	}
	return token.Token{Kind: token.IntConstant, Int: int32(u)} // #nosec G115 -- two's complement wrap is intended
}
