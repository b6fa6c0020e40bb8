package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"shaderlex/internal/source"
	"shaderlex/internal/token"
)

// TokenOutput is one token in JSON output.
type TokenOutput struct {
	Kind  string      `json:"kind"`
	Text  string      `json:"text,omitempty"`
	Value string      `json:"value,omitempty"`
	Span  source.Span `json:"span"`
	Line  uint32      `json:"line"`
	Col   uint32      `json:"col"`
}

// rawText returns the bytes tok was read from.
func rawText(tok token.Token, fs *source.FileSet) []byte {
	f := fs.Get(tok.Span.File)
	if f == nil {
		return nil
	}
	return tok.Span.Slice(f.Content)
}

// value renders the payload of identifiers and literals.
func value(tok token.Token) string {
	if tok.IsIdent() || tok.IsLiteral() {
		return tok.String()
	}
	return ""
}

// FormatTokensPretty writes one line per token: index, kind, source text
// and position.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		if _, err := fmt.Fprintf(w, "%3d: %-24s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if text := rawText(tok, fs); len(text) > 0 {
			fmt.Fprintf(w, " %q", text)
		}
		if v := value(tok); v != "" && v != string(rawText(tok, fs)) {
			fmt.Fprintf(w, " = %s", v)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d\n", startPos.Line, startPos.Col, endPos.Line, endPos.Col)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// BuildTokensOutput converts tokens to their JSON form, stopping after EOF.
func BuildTokensOutput(tokens []token.Token, fs *source.FileSet) []TokenOutput {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		pos, _ := fs.Resolve(tok.Span)
		output = append(output, TokenOutput{
			Kind:  tok.Kind.String(),
			Text:  string(rawText(tok, fs)),
			Value: value(tok),
			Span:  tok.Span,
			Line:  pos.Line,
			Col:   pos.Col,
		})
		if tok.Kind == token.EOF {
			break
		}
	}
	return output
}

// FormatTokensJSON writes tokens as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildTokensOutput(tokens, fs))
}

// FormatTokensMsgpack writes the tokens themselves as one msgpack array.
func FormatTokensMsgpack(w io.Writer, tokens []token.Token) error {
	enc := msgpack.NewEncoder(w)
	enc.UseCompactInts(true)
	return enc.Encode(tokens)
}

// FormatTokensSource writes the bytes every token was read from. For a
// complete, trivia-inclusive stream this reproduces the file exactly.
func FormatTokensSource(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for _, tok := range tokens {
		if _, err := w.Write(rawText(tok, fs)); err != nil {
			return err
		}
	}
	return nil
}
