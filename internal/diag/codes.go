package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                Code = 1000
	LexUnknownChar         Code = 1001
	LexUnterminatedString  Code = 1002
	LexUnterminatedComment Code = 1003
	LexIntOverflow         Code = 1004
	LexOctalOverflow       Code = 1005
	LexInvalidOctalDigit   Code = 1006
	LexFloatOverflow       Code = 1007

	// Token stream
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynExpectToken       Code = 2002
	SynUnclosedDelimiter Code = 2003

	// I/O
	IOInfo          Code = 4000
	IOLoadFileError Code = 4001
	IOCacheError    Code = 4002
)

var (
	codeDescription = map[Code]string{
		UnknownCode:            "Unknown error",
		LexInfo:                "Lexical information",
		LexUnknownChar:         "Unknown character",
		LexUnterminatedString:  "Unterminated string literal",
		LexUnterminatedComment: "Unterminated block comment",
		LexIntOverflow:         "Integer constant overflow",
		LexOctalOverflow:       "Octal constant overflow",
		LexInvalidOctalDigit:   "Invalid digit in octal constant",
		LexFloatOverflow:       "Floating point constant overflow",
		SynInfo:                "Token stream information",
		SynUnexpectedToken:     "Unexpected token",
		SynExpectToken:         "Expected token",
		SynUnclosedDelimiter:   "Unclosed delimiter",
		IOInfo:                 "I/O information",
		IOLoadFileError:        "Failed to load source",
		IOCacheError:           "Token cache unavailable",
	}
)

// ID returns the stable identifier of the code, e.g. LEX1001.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
