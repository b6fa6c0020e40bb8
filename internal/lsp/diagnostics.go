package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"shaderlex/internal/diag"
	"shaderlex/internal/lexer"
	"shaderlex/internal/source"
	"shaderlex/internal/token"
)

const diagnosticSource = "shaderlex"

// analysis is the tokenizer output for one document version.
type analysis struct {
	fs     *source.FileSet
	file   *source.File
	tokens []token.Token
	bag    *diag.Bag
}

func analyze(uri, text string, maxDiagnostics int) *analysis {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(documentName(uri), []byte(text)))
	bag := diag.NewBag(maxDiagnostics)
	tokens := lexer.Tokenize(file, lexer.Options{OnError: lexer.ReportTo(diag.BagReporter{Bag: bag})})
	bag.Sort()
	return &analysis{fs: fs, file: file, tokens: tokens, bag: bag}
}

func severity(s diag.Severity) *protocol.DiagnosticSeverity {
	var v protocol.DiagnosticSeverity
	switch s {
	case diag.SevError:
		v = protocol.DiagnosticSeverityError
	case diag.SevWarning:
		v = protocol.DiagnosticSeverityWarning
	default:
		v = protocol.DiagnosticSeverityInformation
	}
	return &v
}

func (a *analysis) diagnostics(uri string) []protocol.Diagnostic {
	out := make([]protocol.Diagnostic, 0, a.bag.Len())
	src := diagnosticSource
	for _, d := range a.bag.Items() {
		pd := protocol.Diagnostic{
			Range:    rangeForSpan(a.file, d.Primary),
			Severity: severity(d.Severity),
			Code:     &protocol.IntegerOrString{Value: d.Code.ID()},
			Source:   &src,
			Message:  d.Message,
		}
		for _, n := range d.Notes {
			pd.RelatedInformation = append(pd.RelatedInformation, protocol.DiagnosticRelatedInformation{
				Location: protocol.Location{URI: uri, Range: rangeForSpan(a.file, n.Span)},
				Message:  n.Msg,
			})
		}
		out = append(out, pd)
	}
	return out
}
