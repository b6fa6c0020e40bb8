package lexer

import (
	"errors"

	"shaderlex/internal/diag"
	"shaderlex/internal/source"
)

var (
	ErrLoad                = errors.New("cannot load source")
	ErrUnterminatedComment = errors.New("unterminated comment")
	ErrUnterminatedString  = errors.New("unterminated string literal")
	ErrIntOverflow         = errors.New("integer constant overflow")
	ErrOctalOverflow       = errors.New("octal constant overflow")
	ErrInvalidOctal        = errors.New("invalid digit in octal constant")
	ErrFloatOverflow       = errors.New("floating point constant overflow")
	ErrUnknownChar         = errors.New("unknown character")
)

var errCodes = map[error]diag.Code{
	ErrLoad:                diag.IOLoadFileError,
	ErrUnterminatedComment: diag.LexUnterminatedComment,
	ErrUnterminatedString:  diag.LexUnterminatedString,
	ErrIntOverflow:         diag.LexIntOverflow,
	ErrOctalOverflow:       diag.LexOctalOverflow,
	ErrInvalidOctal:        diag.LexInvalidOctalDigit,
	ErrFloatOverflow:       diag.LexFloatOverflow,
	ErrUnknownChar:         diag.LexUnknownChar,
}

// Error is a lexical error. Location is where the offending token starts and
// Span covers the bytes consumed for it. Err is one of the Err* sentinels,
// possibly wrapping an underlying cause.
type Error struct {
	Code     diag.Code
	Location source.Location
	Span     source.Span
	Msg      string
	Err      error
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Err }

func newError(kind error, msg string) *Error {
	return &Error{Code: errCodes[kind], Msg: msg, Err: kind}
}
