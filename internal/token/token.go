package token

import (
	"math"
	"strconv"
	"strings"

	"shaderlex/internal/source"
)

// Token is one lexical unit. Only the payload field matching Kind is
// meaningful: Str for Identifier and String, Float for FloatConstant and
// DoubleConstant, Int for IntConstant, Uint for UintConstant, Bool for
// BoolConstant. The zero Token is EOF.
type Token struct {
	Kind  Kind        `json:"kind" msgpack:"k"`
	Span  source.Span `json:"span" msgpack:"sp"`
	Str   string      `json:"str,omitempty" msgpack:"s,omitempty"`
	Float float64     `json:"float,omitempty" msgpack:"f,omitempty"`
	Int   int32       `json:"int,omitempty" msgpack:"i,omitempty"`
	Uint  uint32      `json:"uint,omitempty" msgpack:"u,omitempty"`
	Bool  bool        `json:"bool,omitempty" msgpack:"b,omitempty"`
}

// Clone returns an independent copy of t.
func (t Token) Clone() Token { return t }

// Clear resets t to an EOF token with no payload.
func (t *Token) Clear() { *t = Token{} }

// IsSkipped reports whether parsers ignore the token.
func (t Token) IsSkipped() bool { return t.Kind.IsSkipped() }

// IsLiteral reports whether the token is a numeric, boolean, or string literal.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool { return t.Kind.IsPunctOrOp() }

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Identifier }

// Is reports whether the token has one of the given kinds.
func (t Token) Is(kinds ...Kind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}

// String renders the token as source text. Whitespace collapses to a single
// space, comments and errors render as nothing, and literals are
// re-serialised, so the result is equivalent to but not always identical
// with the consumed input.
func (t Token) String() string {
	var sb strings.Builder
	t.Print(&sb)
	return sb.String()
}

// Print appends the source rendering of t to sb.
func (t Token) Print(sb *strings.Builder) {
	switch t.Kind {
	case EOF, Error, Comment, LineComment:
	case Newline, Whitespace:
		sb.WriteByte(' ')
	case Identifier:
		sb.WriteString(t.Str)
	case String:
		sb.WriteByte('"')
		sb.WriteString(t.Str)
		sb.WriteByte('"')
	case FloatConstant:
		sb.WriteString(formatFloat(t.Float))
		sb.WriteByte('f')
	case DoubleConstant:
		sb.WriteString(formatFloat(t.Float))
	case IntConstant:
		sb.WriteString(strconv.FormatInt(int64(t.Int), 10))
	case UintConstant:
		sb.WriteString(strconv.FormatUint(uint64(t.Uint), 10))
		sb.WriteByte('u')
	case BoolConstant:
		sb.WriteString(strconv.FormatBool(t.Bool))
	default:
		sb.WriteString(t.Kind.Text())
	}
}

// formatFloat prints the shortest representation that always contains a
// decimal point, so the text reads back as a floating point literal.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf.0"
	case math.IsInf(f, -1):
		return "-inf.0"
	case math.IsNaN(f):
		return "nan.0"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.IndexByte(s, '.') >= 0 {
		return s
	}
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		return s[:i] + ".0" + s[i:]
	}
	return s + ".0"
}
