package lexer_test

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"shaderlex/internal/lexer"
	"shaderlex/internal/source"
	"shaderlex/internal/token"
)

// testReporter records every error callback invocation.
type testReporter struct {
	errs []*lexer.Error
	locs []source.Location
	toks []token.Token
}

func (r *testReporter) onError(_ *lexer.Lexer, loc source.Location, tok token.Token, err error) {
	var lerr *lexer.Error
	if !errors.As(err, &lerr) {
		panic(fmt.Sprintf("unexpected error type %T", err))
	}
	r.errs = append(r.errs, lerr)
	r.locs = append(r.locs, loc)
	r.toks = append(r.toks, tok)
}

func (r *testReporter) ErrorMessages() []string {
	out := make([]string, 0, len(r.errs))
	for _, e := range r.errs {
		out = append(out, fmt.Sprintf("[%s] %s", e.Code.ID(), e.Msg))
	}
	return out
}

// makeTestLexer creates a lexer over an in-memory file.
func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.glsl", []byte(input))
	reporter := &testReporter{}
	lx := lexer.New(fs.Get(fileID), lexer.Options{OnError: reporter.onError})
	return lx, reporter
}

// collectAllTokens reads tokens through the first EOF.
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
		if len(tokens) > 100000 {
			panic("lexer does not make progress")
		}
	}
	return tokens
}

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, t.Kind)
	}
	return out
}

// expectTokens checks the kinds of every token before EOF.
func expectTokens(t *testing.T, input string, expected ...token.Kind) []token.Token {
	t.Helper()
	lx, rep := makeTestLexer(input)
	tokens := collectAllTokens(lx)
	got := kinds(tokens[:len(tokens)-1])
	if len(got) != len(expected) {
		t.Fatalf("%q: expected %d tokens %v, got %d %v", input, len(expected), expected, len(got), got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("%q: token %d: expected %v, got %v", input, i, expected[i], got[i])
		}
	}
	if len(rep.errs) != 0 {
		t.Fatalf("%q: unexpected errors %v", input, rep.ErrorMessages())
	}
	return tokens
}

// expectSingleToken lexes input into exactly one token and no errors.
func expectSingleToken(t *testing.T, input string, kind token.Kind) token.Token {
	t.Helper()
	return expectTokens(t, input, kind)[0]
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		in   string
		kind token.Kind
		i    int32
		u    uint32
		f    float64
	}{
		{"42", token.IntConstant, 42, 0, 0},
		{"42u", token.UintConstant, 0, 42, 0},
		{"42U", token.UintConstant, 0, 42, 0},
		{"0", token.IntConstant, 0, 0, 0},
		{"0x1F", token.IntConstant, 31, 0, 0},
		{"0XffU", token.UintConstant, 0, 255, 0},
		{"0xFFFFFFFF", token.IntConstant, -1, 0, 0},
		{"017", token.IntConstant, 15, 0, 0},
		{"017u", token.UintConstant, 0, 15, 0},
		{"3.14", token.FloatConstant, 0, 0, 3.14},
		{"3.14f", token.FloatConstant, 0, 0, 3.14},
		{"3.14F", token.FloatConstant, 0, 0, 3.14},
		{"3.14lf", token.DoubleConstant, 0, 0, 3.14},
		{"3.14LF", token.DoubleConstant, 0, 0, 3.14},
		{"1.", token.FloatConstant, 0, 0, 1},
		{"1e3", token.FloatConstant, 0, 0, 1000},
		{"1E+3", token.FloatConstant, 0, 0, 1000},
		{"25e-1", token.FloatConstant, 0, 0, 2.5},
		{"0.5", token.FloatConstant, 0, 0, 0.5},
		{"09.5", token.FloatConstant, 0, 0, 9.5},
		{"0e1", token.FloatConstant, 0, 0, 0},
		{"4294967295", token.IntConstant, -1, 0, 0},
		{"4294967295u", token.UintConstant, 0, math.MaxUint32, 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			tok := expectSingleToken(t, tt.in, tt.kind)
			switch tt.kind {
			case token.IntConstant:
				if tok.Int != tt.i {
					t.Errorf("Int = %d, want %d", tok.Int, tt.i)
				}
			case token.UintConstant:
				if tok.Uint != tt.u {
					t.Errorf("Uint = %d, want %d", tok.Uint, tt.u)
				}
			default:
				if math.Abs(tok.Float-tt.f) > 1e-12 {
					t.Errorf("Float = %v, want %v", tok.Float, tt.f)
				}
			}
		})
	}
}

func TestNumberBoundaries(t *testing.T) {
	// "0x" without digits is the integer zero followed by an identifier
	toks := expectTokens(t, "0x", token.IntConstant, token.Identifier)
	if toks[0].Int != 0 || toks[1].Str != "x" {
		t.Fatalf("unexpected tokens %+v", toks)
	}
	// exponent marker without digits is not part of the literal
	toks = expectTokens(t, "1e", token.IntConstant, token.Identifier)
	if toks[1].Str != "e" {
		t.Fatalf("unexpected tokens %+v", toks)
	}
	expectTokens(t, "2.5e+", token.FloatConstant, token.Identifier, token.Plus)
	// suffix l without f is not a double suffix
	expectTokens(t, "1.0l", token.FloatConstant, token.Identifier)
	expectTokens(t, "1.0Lf", token.FloatConstant, token.Identifier)
}

func TestNumberErrors(t *testing.T) {
	tests := []struct {
		in    string
		kind  token.Kind
		err   error
		value int64
	}{
		{"4294967296", token.IntConstant, lexer.ErrIntOverflow, 0},
		{"4294967297u", token.UintConstant, lexer.ErrIntOverflow, 1},
		{"0x100000000", token.IntConstant, lexer.ErrIntOverflow, 0},
		{"040000000000", token.IntConstant, lexer.ErrOctalOverflow, 0},
		{"09", token.IntConstant, lexer.ErrInvalidOctal, 0},
		{"0779", token.IntConstant, lexer.ErrInvalidOctal, 63},
		{"99999999999.5", token.FloatConstant, lexer.ErrFloatOverflow, -1},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			lx, rep := makeTestLexer(tt.in)
			tokens := collectAllTokens(lx)
			if len(tokens) != 2 {
				t.Fatalf("expected one token before EOF, got %v", kinds(tokens))
			}
			tok := tokens[0]
			if tok.Kind != tt.kind {
				t.Fatalf("kind = %v, want %v", tok.Kind, tt.kind)
			}
			if len(rep.errs) != 1 || !errors.Is(rep.errs[0], tt.err) {
				t.Fatalf("errors = %v, want %v", rep.ErrorMessages(), tt.err)
			}
			switch tt.kind {
			case token.IntConstant:
				if int64(tok.Int) != tt.value {
					t.Errorf("Int = %d, want %d", tok.Int, tt.value)
				}
			case token.UintConstant:
				if int64(tok.Uint) != tt.value {
					t.Errorf("Uint = %d, want %d", tok.Uint, tt.value)
				}
			}
			if rep.toks[0].Kind != tt.kind {
				t.Errorf("callback got token %v", rep.toks[0].Kind)
			}
		})
	}
}

func TestKeywordsAndBools(t *testing.T) {
	tok := expectSingleToken(t, "true", token.BoolConstant)
	if !tok.Bool {
		t.Error("true must carry Bool=true")
	}
	tok = expectSingleToken(t, "false", token.BoolConstant)
	if tok.Bool {
		t.Error("false must carry Bool=false")
	}
	expectSingleToken(t, "float", token.KwFloat)
	expectSingleToken(t, "sampler2DShadow", token.KwSampler2DShadow)
	expectSingleToken(t, "highp", token.KwHighp)
	tok = expectSingleToken(t, "floaty", token.Identifier)
	if tok.Str != "floaty" {
		t.Errorf("Str = %q", tok.Str)
	}
	tok = expectSingleToken(t, "_gl9", token.Identifier)
	if tok.Str != "_gl9" {
		t.Errorf("Str = %q", tok.Str)
	}
}

func TestOperatorMaximalMunch(t *testing.T) {
	tests := []struct {
		in   string
		want []token.Kind
	}{
		{"<<=", []token.Kind{token.LeftAssign}},
		{"<<", []token.Kind{token.LeftOp}},
		{"<", []token.Kind{token.LeftAngle}},
		{"<=", []token.Kind{token.LeOp}},
		{">>=", []token.Kind{token.RightAssign}},
		{">>", []token.Kind{token.RightOp}},
		{">=", []token.Kind{token.GeOp}},
		{">", []token.Kind{token.RightAngle}},
		{"++", []token.Kind{token.IncOp}},
		{"+=", []token.Kind{token.AddAssign}},
		{"+++", []token.Kind{token.IncOp, token.Plus}},
		{"--", []token.Kind{token.DecOp}},
		{"-=", []token.Kind{token.SubAssign}},
		{"==", []token.Kind{token.EqOp}},
		{"===", []token.Kind{token.EqOp, token.Equal}},
		{"!=", []token.Kind{token.NeOp}},
		{"!", []token.Kind{token.Bang}},
		{"&&", []token.Kind{token.AndOp}},
		{"&=", []token.Kind{token.AndAssign}},
		{"||", []token.Kind{token.OrOp}},
		{"|=", []token.Kind{token.OrAssign}},
		{"^^", []token.Kind{token.XorOp}},
		{"^=", []token.Kind{token.XorAssign}},
		{"*=", []token.Kind{token.MulAssign}},
		{"/=", []token.Kind{token.DivAssign}},
		{"%=", []token.Kind{token.ModAssign}},
		{"/", []token.Kind{token.Slash}},
		{"()[]{}.,:;~?#", []token.Kind{
			token.LeftParen, token.RightParen, token.LeftBracket, token.RightBracket,
			token.LeftBrace, token.RightBrace, token.Dot, token.Comma, token.Colon,
			token.Semicolon, token.Tilde, token.Question, token.Hash,
		}},
		{"<\\\n<=", []token.Kind{token.LeftAssign}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			expectTokens(t, tt.in, tt.want...)
		})
	}
}

func TestTriviaTokens(t *testing.T) {
	expectTokens(t, "a b", token.Identifier, token.Whitespace, token.Identifier)
	expectTokens(t, "a \t\f\nb", token.Identifier, token.Newline, token.Identifier)
	expectTokens(t, "a// c\nb", token.Identifier, token.LineComment, token.Newline, token.Identifier)
	expectTokens(t, "a/* x\n y */b", token.Identifier, token.Comment, token.Identifier)
	expectTokens(t, "// only", token.LineComment)
}

func TestStrings(t *testing.T) {
	tok := expectSingleToken(t, `"abc"`, token.String)
	if tok.Str != "abc" {
		t.Errorf("Str = %q", tok.Str)
	}
	tok = expectSingleToken(t, `"a\nb"`, token.String)
	if tok.Str != `a\nb` {
		t.Errorf("escapes must stay raw, got %q", tok.Str)
	}
}

func TestLocationAfterNewline(t *testing.T) {
	lx, _ := makeTestLexer("a\nb")
	if tok := lx.Next(); tok.Kind != token.Identifier {
		t.Fatalf("expected identifier, got %v", tok.Kind)
	}
	if tok := lx.Next(); tok.Kind != token.Newline {
		t.Fatalf("expected newline, got %v", tok.Kind)
	}
	loc := lx.Location()
	if loc.Lines != 1 || loc.LineChars != 0 || loc.LineBytes != 0 || loc.Bytes != 2 {
		t.Fatalf("unexpected location %+v", loc)
	}
	if tok := lx.Next(); tok.Kind != token.Identifier || tok.Str != "b" {
		t.Fatalf("expected b, got %v", tok)
	}
}

func TestLineCounting(t *testing.T) {
	tests := []struct {
		in    string
		lines int
	}{
		{"\n", 1},
		{"\r", 1},
		{"\r\n", 1},
		{"\n\r", 1},
		{"\n\n", 2},
		{"\r\n\r\n", 2},
		{"\r\r", 2},
		{"\n\r\n", 2},
	}
	for _, tt := range tests {
		lx, _ := makeTestLexer(tt.in + "x")
		collectAllTokens(lx)
		loc := lx.Location()
		if loc.Lines != tt.lines {
			t.Errorf("%q: Lines = %d, want %d", tt.in, loc.Lines, tt.lines)
		}
		if loc.LineChars != 1 || loc.Bytes != len(tt.in)+1 {
			t.Errorf("%q: unexpected location %+v", tt.in, loc)
		}
	}
}

func TestCharsCountCodePoints(t *testing.T) {
	// "é" is two bytes but one character
	lx, rep := makeTestLexer("/* é */x")
	collectAllTokens(lx)
	loc := lx.Location()
	if loc.Bytes != 9 || loc.Chars != 8 || loc.LineChars != 8 {
		t.Fatalf("unexpected location %+v", loc)
	}
	if len(rep.errs) != 0 {
		t.Fatalf("unexpected errors %v", rep.ErrorMessages())
	}
}

func TestUnterminatedComment(t *testing.T) {
	lx, rep := makeTestLexer("/* never closes")
	tok := lx.Next()
	if tok.Kind != token.Comment || tok.Span.Start != 0 || tok.Span.End != 15 {
		t.Fatalf("unexpected token %+v", tok)
	}
	if len(rep.errs) != 1 || !errors.Is(rep.errs[0], lexer.ErrUnterminatedComment) {
		t.Fatalf("errors = %v", rep.ErrorMessages())
	}
	if rep.errs[0].Msg != "Unterminated comment at end of document." {
		t.Errorf("message = %q", rep.errs[0].Msg)
	}
	if next := lx.Next(); next.Kind != token.EOF {
		t.Fatalf("expected EOF, got %v", next.Kind)
	}
	if len(rep.errs) != 1 {
		t.Fatalf("EOF must not report again: %v", rep.ErrorMessages())
	}
}

func TestUnterminatedString(t *testing.T) {
	lx, rep := makeTestLexer(`"abc`)
	tok := lx.Next()
	if tok.Kind != token.String || tok.Str != "abc" {
		t.Fatalf("unexpected token %+v", tok)
	}
	if len(rep.errs) != 1 || !errors.Is(rep.errs[0], lexer.ErrUnterminatedString) {
		t.Fatalf("errors = %v", rep.ErrorMessages())
	}
	if rep.toks[0].Str != "abc" {
		t.Errorf("callback token = %+v", rep.toks[0])
	}
	if next := lx.Next(); next.Kind != token.EOF {
		t.Fatalf("expected EOF, got %v", next.Kind)
	}
	if len(rep.errs) != 1 {
		t.Fatalf("EOF must not report again: %v", rep.ErrorMessages())
	}
}

func TestSplicedIdentifier(t *testing.T) {
	tok := expectSingleToken(t, "ab\\\nc", token.Identifier)
	if tok.Str != "abc" {
		t.Fatalf("Str = %q, want abc", tok.Str)
	}
	if tok.Span.Start != 0 || tok.Span.End != 5 {
		t.Fatalf("span %v must cover the splice", tok.Span)
	}
	tok = expectSingleToken(t, "ab\\\r\nc", token.Identifier)
	if tok.Str != "abc" {
		t.Fatalf("Str = %q, want abc", tok.Str)
	}
	tok = expectSingleToken(t, "1\\\n.5", token.FloatConstant)
	if tok.Float != 1.5 {
		t.Fatalf("Float = %v", tok.Float)
	}
}

func TestSpliceAdvancesLines(t *testing.T) {
	lx, _ := makeTestLexer("a\\\nb c")
	lx.Next()
	loc := lx.Location()
	if loc.Lines != 1 || loc.LineChars != 1 {
		t.Fatalf("unexpected location %+v", loc)
	}
}

func TestTrailingSpliceBelongsToEOF(t *testing.T) {
	lx, _ := makeTestLexer("a\\\n")
	tokens := collectAllTokens(lx)
	if len(tokens) != 2 {
		t.Fatalf("got %v", kinds(tokens))
	}
	if eof := tokens[1]; eof.Span.Start != 1 || eof.Span.End != 3 {
		t.Fatalf("EOF span = %v", eof.Span)
	}
}

func TestUnknownByte(t *testing.T) {
	lx, rep := makeTestLexer("\x01a")
	tok := lx.Next()
	if tok.Kind != token.Error || tok.Span.Len() != 1 {
		t.Fatalf("unexpected token %+v", tok)
	}
	if len(rep.errs) != 1 || !errors.Is(rep.errs[0], lexer.ErrUnknownChar) {
		t.Fatalf("errors = %v", rep.ErrorMessages())
	}
	if rep.errs[0].Msg != "Unknown character 0x1" {
		t.Errorf("message = %q", rep.errs[0].Msg)
	}
	if lx.Location().Bytes != 1 {
		t.Fatalf("expected to advance one byte, at %+v", lx.Location())
	}
	if next := lx.Next(); next.Kind != token.Identifier {
		t.Fatalf("expected identifier after error, got %v", next.Kind)
	}
}

func TestErrorLocationIsTokenStart(t *testing.T) {
	lx, rep := makeTestLexer("x = 1;\n  @")
	collectAllTokens(lx)
	if len(rep.errs) != 1 {
		t.Fatalf("errors = %v", rep.ErrorMessages())
	}
	loc := rep.locs[0]
	if loc.Lines != 1 || loc.LineChars != 2 {
		t.Fatalf("error location = %+v", loc)
	}
	if e := rep.errs[0]; e.Location != loc || e.Span.Start != 9 || e.Span.End != 10 {
		t.Fatalf("error = %+v", e)
	}
}

func TestEOFIsIdempotent(t *testing.T) {
	lx, _ := makeTestLexer("a")
	collectAllTokens(lx)
	for range 3 {
		if tok := lx.Next(); tok.Kind != token.EOF || !tok.Span.Empty() {
			t.Fatalf("expected empty EOF, got %+v", tok)
		}
	}
}

func TestRoundTripBySpans(t *testing.T) {
	inputs := []string{
		"void main() {\n\tgl_FragColor = vec4(1.0, 0.5lf, 0x1Fu, 017);\n}\n",
		"a\\\nb /* c */ // d\r\ne\n\r\"str\" 09 0x 1e+ @ $",
		"\\\n\\\n",
		"/* open",
		"\"open",
		"",
	}
	for _, in := range inputs {
		lx, _ := makeTestLexer(in)
		var sb strings.Builder
		for _, tok := range collectAllTokens(lx) {
			sb.Write(lx.Raw(tok))
		}
		if sb.String() != in {
			t.Errorf("round trip mismatch:\n in: %q\nout: %q", in, sb.String())
		}
	}
}

func TestLoadFailure(t *testing.T) {
	rep := &testReporter{}
	lx := lexer.New(source.PathSource{Path: "/definitely/missing.frag"}, lexer.Options{OnError: rep.onError})
	if len(rep.errs) != 1 || !errors.Is(rep.errs[0], lexer.ErrLoad) {
		t.Fatalf("errors = %v", rep.ErrorMessages())
	}
	if rep.toks[0].Kind != token.EOF {
		t.Errorf("placeholder token = %v", rep.toks[0].Kind)
	}
	if tok := lx.Next(); tok.Kind != token.EOF {
		t.Fatalf("expected EOF, got %v", tok.Kind)
	}
}

func TestRefUnref(t *testing.T) {
	released := 0
	fs := source.NewFileSet()
	lx := lexer.New(fs.Get(fs.AddVirtual("r.glsl", []byte("a b"))), lexer.Options{
		OnRelease: func() { released++ },
	})
	lx.Ref()
	lx.Unref()
	if released != 0 || lx.Source() == nil {
		t.Fatal("released too early")
	}
	lx.Unref()
	if released != 1 {
		t.Fatalf("OnRelease ran %d times", released)
	}
	if lx.Source() != nil || lx.Bytes() != nil {
		t.Fatal("buffer and source must be dropped")
	}
	if tok := lx.Next(); tok.Kind != token.EOF {
		t.Fatalf("expected EOF after release, got %v", tok.Kind)
	}
}

func TestTokenize(t *testing.T) {
	toks := lexer.Tokenize(source.BytesSource{Label: "mem", Data: []byte("int x;")}, lexer.Options{})
	want := []token.Kind{token.KwInt, token.Whitespace, token.Identifier, token.Semicolon, token.EOF}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFloatOverflowToInfinity(t *testing.T) {
	tok := expectSingleToken(t, "1e999", token.FloatConstant)
	if !math.IsInf(tok.Float, 1) {
		t.Fatalf("value = %v, want +Inf", tok.Float)
	}
	if got := tok.String(); got != "inf.0f" {
		t.Fatalf("String() = %q, want %q", got, "inf.0f")
	}
}

func TestNumberSplicedExponent(t *testing.T) {
	tok := expectSingleToken(t, "12\\\n3.5\\\ne\\\n+2", token.FloatConstant)
	if tok.Float != 12350 {
		t.Fatalf("value = %v, want 12350", tok.Float)
	}
}

// lexDuration returns the time taken to tokenize input and checks that it
// came out as a single token of the given kind.
func lexDuration(t *testing.T, input string, kind token.Kind) time.Duration {
	t.Helper()
	lx, _ := makeTestLexer(input)
	start := time.Now()
	toks := collectAllTokens(lx)
	elapsed := time.Since(start)
	if len(toks) != 2 || toks[0].Kind != kind {
		t.Fatalf("got %v, want [%v EOF]", kinds(toks), kind)
	}
	if int(toks[0].Span.End) != len(input) {
		t.Fatalf("span %v does not cover %d bytes", toks[0].Span, len(input))
	}
	return elapsed
}

func TestLongLiteralsScanInLinearTime(t *testing.T) {
	const n = 100000
	ident := lexDuration(t, strings.Repeat("a", n), token.Identifier)
	tests := []struct {
		name  string
		input string
		kind  token.Kind
	}{
		{"decimal", strings.Repeat("1", n), token.IntConstant},
		{"octal", "0" + strings.Repeat("7", n), token.IntConstant},
		{"float", "1." + strings.Repeat("5", n), token.FloatConstant},
		{"exponent", "1e" + strings.Repeat("0", n), token.FloatConstant},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lexDuration(t, tt.input, tt.kind)
			// quadratic scanning takes seconds here; linear stays in the
			// identifier's range
			if limit := 50*ident + 100*time.Millisecond; got > limit {
				t.Fatalf("%d-byte literal took %v, identifier took %v", len(tt.input), got, ident)
			}
		})
	}
}
