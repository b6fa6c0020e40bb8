package lsp

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"shaderlex/internal/source"
	"shaderlex/internal/token"
)

func pos(line, char protocol.UInteger) protocol.Position {
	return protocol.Position{Line: line, Character: char}
}

func TestApplyChanges(t *testing.T) {
	text := "float a;\nvec3 🙂b;\n"
	changes := []any{
		protocol.TextDocumentContentChangeEvent{
			Range: &protocol.Range{Start: pos(0, 6), End: pos(0, 7)},
			Text:  "alpha",
		},
		// after the emoji, which takes two UTF-16 units
		protocol.TextDocumentContentChangeEvent{
			Range: &protocol.Range{Start: pos(1, 7), End: pos(1, 8)},
			Text:  "c",
		},
	}
	got := applyChanges(text, changes)
	if want := "float alpha;\nvec3 🙂c;\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	whole := applyChanges(got, []any{protocol.TextDocumentContentChangeEventWhole{Text: "int x;"}})
	if whole != "int x;" {
		t.Errorf("whole replacement gave %q", whole)
	}
}

func TestOffsetForPositionClamps(t *testing.T) {
	text := "ab\r\ncd"
	if got := offsetForPosition(text, pos(0, 10)); got != 2 {
		t.Errorf("past end of line: %d", got)
	}
	if got := offsetForPosition(text, pos(5, 0)); got != len(text) {
		t.Errorf("past last line: %d", got)
	}
	if got := offsetForPosition(text, pos(1, 1)); got != 5 {
		t.Errorf("second line: %d", got)
	}
}

func TestPositionForOffsetUTF16(t *testing.T) {
	fs := source.NewFileSet()
	content := "x\né🙂 y"
	file := fs.Get(fs.AddVirtual("u.glsl", []byte(content)))

	off := uint32(strings.Index(content, "y"))
	if got := positionForOffsetInFile(file, off); got != pos(1, 4) {
		t.Errorf("got %+v, want 1:4", got)
	}
	if got := positionForOffsetInFile(file, 1000); got != pos(1, 5) {
		t.Errorf("clamped: got %+v", got)
	}
}

func TestURIRoundTrip(t *testing.T) {
	uri := pathToURI("/tmp/my shaders/a.frag")
	if uri != "file:///tmp/my%20shaders/a.frag" {
		t.Fatalf("unexpected uri %q", uri)
	}
	if got := uriToPath(uri); got != "/tmp/my shaders/a.frag" {
		t.Errorf("got %q", got)
	}
	if got := uriToPath("file:///C:/src/a.frag"); got != filepath.FromSlash("C:/src/a.frag") {
		t.Errorf("drive letter: got %q", got)
	}
	if got := documentName("untitled:Untitled-1"); got != "untitled:Untitled-1" {
		t.Errorf("non-file uri label %q", got)
	}
}

func decodeSemantic(data []protocol.UInteger) [][3]protocol.UInteger {
	var out [][3]protocol.UInteger
	var line, char protocol.UInteger
	for i := 0; i+4 < len(data); i += 5 {
		if data[i] != 0 {
			char = 0
		}
		line += data[i]
		char += data[i+1]
		out = append(out, [3]protocol.UInteger{line, char, data[i+3]})
	}
	return out
}

func TestSemanticTokens(t *testing.T) {
	src := "#version 450\nuniform vec4 c; /* a\nb */ x = 1.0;"
	a := analyze("file:///s.frag", src, 0)
	got := decodeSemantic(semanticTokens(a.file, a.tokens))

	want := [][3]protocol.UInteger{
		{0, 0, semMacro},     // #
		{0, 1, semMacro},     // version
		{0, 9, semNumber},    // 450
		{1, 0, semKeyword},   // uniform
		{1, 8, semType},      // vec4
		{1, 13, semVariable}, // c
		{1, 14, semOperator}, // ;
		{1, 16, semComment},  // /* a
		{2, 0, semComment},   // b */
		{2, 5, semVariable},  // x
		{2, 7, semOperator},  // =
		{2, 9, semNumber},    // 1.0
		{2, 12, semOperator}, // ;
	}
	if len(got) != len(want) {
		t.Fatalf("got %d entries %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSemanticType(t *testing.T) {
	cases := map[token.Kind]protocol.UInteger{
		token.KwFloat:      semType,
		token.KwSampler2D:  semType,
		token.KwMat4x3:     semType,
		token.KwIf:         semKeyword,
		token.KwHighp:      semKeyword,
		token.BoolConstant: semKeyword,
		token.String:       semString,
		token.LineComment:  semComment,
	}
	for k, want := range cases {
		if got, ok := semanticType(k); !ok || got != want {
			t.Errorf("%s: got %d (%v), want %d", k, got, ok, want)
		}
	}
	if _, ok := semanticType(token.Whitespace); ok {
		t.Error("whitespace must not be highlighted")
	}
}

func TestServerPublishesDiagnostics(t *testing.T) {
	s := NewServer(Options{})
	var published []*protocol.PublishDiagnosticsParams
	ctx := &glsp.Context{Notify: func(method string, params any) {
		if method == protocol.ServerTextDocumentPublishDiagnostics {
			published = append(published, params.(*protocol.PublishDiagnosticsParams))
		}
	}}
	uri := "file:///w/a.glsl"

	err := s.didOpen(ctx, &protocol.DidOpenTextDocumentParams{TextDocument: protocol.TextDocumentItem{
		URI: uri, LanguageID: "glsl", Version: 1, Text: "int a = 09;\n",
	}})
	if err != nil {
		t.Fatal(err)
	}
	if len(published) != 1 || len(published[0].Diagnostics) != 1 {
		t.Fatalf("expected one diagnostic after open, got %+v", published)
	}
	d := published[0].Diagnostics[0]
	if d.Range.Start != pos(0, 8) || d.Range.End != pos(0, 10) {
		t.Errorf("unexpected range %+v", d.Range)
	}
	if d.Code == nil || d.Code.Value != "LEX1006" || *d.Severity != protocol.DiagnosticSeverityError {
		t.Errorf("unexpected code or severity: %+v", d)
	}

	err = s.didChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEvent{
			Range: &protocol.Range{Start: pos(0, 9), End: pos(0, 10)},
			Text:  "7",
		}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if last := published[len(published)-1]; len(last.Diagnostics) != 0 || last.Version == nil || *last.Version != 2 {
		t.Errorf("fixed document still has diagnostics: %+v", last)
	}

	res, err := s.semanticTokensFull(ctx, &protocol.SemanticTokensParams{TextDocument: protocol.TextDocumentIdentifier{URI: uri}})
	if err != nil || len(res.Data) == 0 {
		t.Fatalf("semantic tokens: %v", err)
	}

	if err := s.didClose(ctx, &protocol.DidCloseTextDocumentParams{TextDocument: protocol.TextDocumentIdentifier{URI: uri}}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.semanticTokensFull(ctx, &protocol.SemanticTokensParams{TextDocument: protocol.TextDocumentIdentifier{URI: uri}}); err == nil {
		t.Error("closed document must be forgotten")
	}
}
