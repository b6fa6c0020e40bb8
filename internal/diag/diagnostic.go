package diag

import (
	"shaderlex/internal/source"
)

type Note struct {
	Span source.Span `json:"span" msgpack:"span"`
	Msg  string      `json:"msg" msgpack:"msg"`
}

type Diagnostic struct {
	Severity Severity    `json:"severity" msgpack:"sev"`
	Code     Code        `json:"code" msgpack:"code"`
	Message  string      `json:"message" msgpack:"msg"`
	Primary  source.Span `json:"primary" msgpack:"primary"`
	Notes    []Note      `json:"notes,omitempty" msgpack:"notes,omitempty"`
}

func New(sev Severity, code Code, primary source.Span, msg string) *Diagnostic {
	return &Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func NewError(code Code, primary source.Span, msg string) *Diagnostic {
	return New(SevError, code, primary, msg)
}

func (d *Diagnostic) WithNote(sp source.Span, msg string) *Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}
