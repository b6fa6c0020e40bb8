package lexer

import (
	"errors"

	"shaderlex/internal/diag"
	"shaderlex/internal/source"
	"shaderlex/internal/token"
)

// ErrorFunc receives every lexical error together with the location where
// the offending token starts and the token produced despite the error.
// err is always a *Error.
type ErrorFunc func(lx *Lexer, loc source.Location, tok token.Token, err error)

type Options struct {
	// OnError may be nil; errors are then logged as warnings and lexing continues.
	OnError ErrorFunc
	// OnRelease runs once when the last reference is dropped.
	OnRelease func()
}

// ReportTo returns an ErrorFunc that turns lexical errors into diagnostics.
func ReportTo(r diag.Reporter) ErrorFunc {
	return func(_ *Lexer, _ source.Location, _ token.Token, err error) {
		if r == nil {
			return
		}
		var lerr *Error
		if !errors.As(err, &lerr) {
			r.Report(diag.UnknownCode, diag.SevError, source.Span{}, err.Error(), nil)
			return
		}
		diag.ReportError(r, lerr.Code, lerr.Span, lerr.Msg).Emit()
	}
}
