package token

var keywords = buildKeywordTable()

func buildKeywordTable() map[string]Kind {
	m := make(map[string]Kind, int(lastKeyword-firstKeyword)+1)
	for k := firstKeyword; k <= lastKeyword; k++ {
		m[kindText[k]] = k
	}
	return m
}

// LookupKeyword returns the keyword kind spelled by ident.
// Keywords are case sensitive.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// FromIdentifier classifies identifier-shaped text: true and false become
// BoolConstant, keywords their fixed kind, everything else an Identifier.
func FromIdentifier(text string) Token {
	switch text {
	case "true":
		return Token{Kind: BoolConstant, Bool: true}
	case "false":
		return Token{Kind: BoolConstant}
	}
	if k, ok := LookupKeyword(text); ok {
		return Token{Kind: k}
	}
	return Token{Kind: Identifier, Str: text}
}

// IsValidIdentifier reports whether s is a syntactically valid identifier.
// Keywords are valid identifiers here; use LookupKeyword to exclude them.
func IsValidIdentifier(s string) bool {
	if s == "" || !IsIdentStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !IsIdentChar(s[i]) {
			return false
		}
	}
	return true
}

// IsIdentStart reports whether b may begin an identifier.
func IsIdentStart(b byte) bool {
	return b == '_' || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// IsIdentChar reports whether b may continue an identifier.
func IsIdentChar(b byte) bool {
	return IsIdentStart(b) || ('0' <= b && b <= '9')
}
