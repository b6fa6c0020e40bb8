package lsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"shaderlex/internal/source"
	"shaderlex/internal/token"
)

// Semantic token types, in legend order.
const (
	semKeyword protocol.UInteger = iota
	semType
	semVariable
	semNumber
	semString
	semComment
	semOperator
	semMacro
)

var semanticLegend = protocol.SemanticTokensLegend{
	TokenTypes:     []string{"keyword", "type", "variable", "number", "string", "comment", "operator", "macro"},
	TokenModifiers: []string{},
}

var typePrefixes = []string{
	"vec", "ivec", "uvec", "bvec", "dvec", "mat", "dmat",
	"sampler", "isampler", "usampler", "image", "iimage", "uimage",
}

func isTypeKeyword(k token.Kind) bool {
	switch k {
	case token.KwVoid, token.KwFloat, token.KwDouble, token.KwInt, token.KwUint, token.KwBool, token.KwAtomicUint:
		return true
	}
	text := k.Text()
	for _, p := range typePrefixes {
		if strings.HasPrefix(text, p) {
			return true
		}
	}
	return false
}

func semanticType(k token.Kind) (protocol.UInteger, bool) {
	switch {
	case k == token.Identifier:
		return semVariable, true
	case k == token.BoolConstant:
		return semKeyword, true
	case k.IsLiteral() && k != token.String:
		return semNumber, true
	case k == token.String:
		return semString, true
	case k == token.Comment || k == token.LineComment:
		return semComment, true
	case k == token.Hash:
		return semMacro, true
	case k.IsKeyword() && isTypeKeyword(k):
		return semType, true
	case k.IsKeyword():
		return semKeyword, true
	case k.IsPunctOrOp():
		return semOperator, true
	}
	return 0, false
}

type semanticEncoder struct {
	file     *source.File
	data     []protocol.UInteger
	prevLine protocol.UInteger
	prevChar protocol.UInteger
}

func (e *semanticEncoder) push(line, char, length, typ protocol.UInteger) {
	deltaChar := char
	if line == e.prevLine {
		deltaChar = char - e.prevChar
	}
	e.data = append(e.data, line-e.prevLine, deltaChar, length, typ, 0)
	e.prevLine, e.prevChar = line, char
}

// add emits span as one entry per line it covers.
func (e *semanticEncoder) add(span source.Span, typ protocol.UInteger) {
	content := e.file.Content
	start := span.Start
	for start < span.End {
		end := span.End
		pos := positionForOffsetInFile(e.file, start)
		if int(pos.Line) < len(e.file.LineIdx) {
			end = min(end, e.file.LineIdx[pos.Line])
		}
		seg := content[start:end]
		if n := len(seg); n > 0 && seg[n-1] == '\r' {
			seg = seg[:n-1]
		}
		if len(seg) > 0 {
			e.push(pos.Line, pos.Character, utf16Len(seg), typ)
		}
		start = end + 1
	}
}

// semanticTokens encodes tokens in the relative LSP layout. A preprocessor
// directive name right after '#' is reported as a macro.
func semanticTokens(file *source.File, tokens []token.Token) []protocol.UInteger {
	enc := &semanticEncoder{file: file, data: []protocol.UInteger{}}
	afterHash := false
	for _, tok := range tokens {
		typ, ok := semanticType(tok.Kind)
		if !ok {
			if tok.Kind == token.Newline {
				afterHash = false
			}
			continue
		}
		if afterHash && (tok.Kind == token.Identifier || tok.IsKeyword()) {
			typ = semMacro
		}
		afterHash = tok.Kind == token.Hash
		enc.add(tok.Span, typ)
	}
	return enc.data
}
