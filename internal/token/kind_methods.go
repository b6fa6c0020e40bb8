package token

import "strconv"

// String returns the grammar name of the kind, e.g. LEFT_ASSIGN or VEC3.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Text returns the fixed source spelling of keyword and operator kinds and
// "" for every kind whose text depends on the token value.
func (k Kind) Text() string {
	if int(k) < len(kindText) {
		return kindText[k]
	}
	return ""
}

// IsKeyword reports whether k is one of the reserved words.
func (k Kind) IsKeyword() bool { return firstKeyword <= k && k <= lastKeyword }

// IsPunctOrOp reports whether k is an operator or punctuation kind.
func (k Kind) IsPunctOrOp() bool { return firstOp <= k && k <= lastOp }

// IsLiteral reports whether k carries a string, numeric or boolean value.
func (k Kind) IsLiteral() bool {
	switch k {
	case String, FloatConstant, DoubleConstant, IntConstant, UintConstant, BoolConstant:
		return true
	default:
		return false
	}
}

// IsSkipped reports whether tokens of kind k are ignored by parsers:
// errors, whitespace and comments.
func (k Kind) IsSkipped() bool {
	switch k {
	case Error, Newline, Whitespace, Comment, LineComment:
		return true
	default:
		return false
	}
}

// IsTrivia reports whether k only carries formatting.
func (k Kind) IsTrivia() bool {
	switch k {
	case Newline, Whitespace, Comment, LineComment:
		return true
	default:
		return false
	}
}

// Kinds returns every defined kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, int(kindCount))
	for k := EOF; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}
