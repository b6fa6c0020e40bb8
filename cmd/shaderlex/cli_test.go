package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fsnotify/fsnotify"

	"shaderlex/internal/diag"
	"shaderlex/internal/driver"
	"shaderlex/internal/source"
	"shaderlex/internal/token"
)

func TestReadFormat(t *testing.T) {
	if got, err := readFormat(" JSON ", tokenFormats); err != nil || got != "json" {
		t.Fatalf("readFormat(JSON) = %q, %v", got, err)
	}
	if _, err := readFormat("sarif", tokenFormats); err == nil {
		t.Fatalf("sarif is not a token format")
	}
	if got, err := readFormat("sarif", checkFormats); err != nil || got != "sarif" {
		t.Fatalf("readFormat(sarif) = %q, %v", got, err)
	}
}

func TestReadUIMode(t *testing.T) {
	cases := map[string]uiMode{"": uiModeAuto, "AUTO": uiModeAuto, "on": uiModeOn, " off ": uiModeOff}
	for in, want := range cases {
		got, err := readUIMode(in)
		if err != nil || got != want {
			t.Fatalf("readUIMode(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := readUIMode("sometimes"); err == nil {
		t.Fatalf("expected error")
	}
	if shouldUseTUI(uiModeAuto, true) {
		t.Fatalf("quiet must disable the auto UI")
	}
	if !shouldUseTUI(uiModeOn, true) {
		t.Fatalf("--ui on wins over --quiet")
	}
}

func TestLogVerbosity(t *testing.T) {
	cases := map[string]int{"none": -4, "error": -2, "warning": -1, "notice": 0, "info": 1, "DEBUG": 2}
	for in, want := range cases {
		got, err := logVerbosity(in)
		if err != nil || got != want {
			t.Fatalf("logVerbosity(%q) = %d, %v; want %d", in, got, err, want)
		}
	}
	if _, err := logVerbosity("loud"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestCountTokens(t *testing.T) {
	toks := []token.Token{{Kind: token.Identifier}, {Kind: token.Semicolon}, {Kind: token.EOF}}
	if got := countTokens(toks); got != 2 {
		t.Fatalf("countTokens = %d, want 2", got)
	}
	if got := countTokens(nil); got != 0 {
		t.Fatalf("countTokens(nil) = %d", got)
	}
}

func TestCheckRunSummary(t *testing.T) {
	clean := diag.NewBag(0)
	broken := diag.NewBag(0)
	broken.Add(diag.NewError(diag.LexUnknownChar, source.Span{}, "bad"))
	broken.Add(diag.New(diag.SevWarning, diag.LexUnknownChar, source.Span{}, "meh"))

	run := &checkRun{bags: []*diag.Bag{clean}}
	if got := run.summary(); got != "1 file checked, no problems" {
		t.Fatalf("summary = %q", got)
	}
	if run.hasErrors() {
		t.Fatalf("clean run reports errors")
	}
	run.bags = append(run.bags, broken)
	if got := run.summary(); got != "2 files checked, 1 errors, 1 warnings" {
		t.Fatalf("summary = %q", got)
	}
	if !run.hasErrors() {
		t.Fatalf("expected errors")
	}
	if run.merged().Len() != 2 {
		t.Fatalf("merged bag lost diagnostics")
	}
}

func TestTokenizeFileSourceRoundTrip(t *testing.T) {
	src := "#version 450\nvoid main() { /* x */ gl_Position = vec4(0.0); }\n"
	path := writeFile(t, t.TempDir(), "a.vert", src)
	cmd := newTestCommand(t)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	failed, err := tokenizeFileCmd(cmd, path, "source", driver.Options{}, false)
	if err != nil {
		t.Fatalf("tokenizeFileCmd: %v", err)
	}
	if failed || errOut.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %s", errOut.String())
	}
	if out.String() != src {
		t.Fatalf("source output = %q, want %q", out.String(), src)
	}
}

func TestTokenizeFileReportsErrors(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.frag", "int x = @;\n")
	cmd := newTestCommand(t)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	failed, err := tokenizeFileCmd(cmd, path, "pretty", driver.Options{}, false)
	if err != nil {
		t.Fatalf("tokenizeFileCmd: %v", err)
	}
	if !failed {
		t.Fatalf("expected failure")
	}
	if !strings.Contains(errOut.String(), "ERROR") || !strings.Contains(errOut.String(), "bad.frag:1:9") {
		t.Fatalf("stderr = %q", errOut.String())
	}
	if !strings.Contains(out.String(), `";"`) {
		t.Fatalf("tokens missing from stdout: %q", out.String())
	}
}

func TestTokenizeDirJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.frag", "void main() {}\n")
	writeFile(t, dir, "sub/b.comp", "layout(local_size_x = 8) in;\n")
	writeFile(t, dir, "readme.md", "# not a shader\n")

	cmd := newTestCommand(t, "--quiet")
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	failed, err := tokenizeDirCmd(cmd, dir, "json", driver.Options{SkipTrivia: true}, uiModeOff, false)
	if err != nil {
		t.Fatalf("tokenizeDirCmd: %v", err)
	}
	if failed {
		t.Fatalf("unexpected failure: %s", errOut.String())
	}
	var payload []fileTokensJSON
	if err := json.Unmarshal(out.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v\n%s", err, out.String())
	}
	if len(payload) != 2 {
		t.Fatalf("got %d files, want 2", len(payload))
	}
	for _, f := range payload {
		if len(f.Tokens) == 0 || f.Tokens[len(f.Tokens)-1].Kind != token.EOF.String() {
			t.Fatalf("%s: token stream must end with EOF", f.Path)
		}
	}
	if errOut.Len() != 0 {
		t.Fatalf("quiet run wrote to stderr: %q", errOut.String())
	}
}

func TestTokenizeDirRejectsSingleFileFormats(t *testing.T) {
	cmd := newTestCommand(t)
	for _, format := range []string{"msgpack", "source"} {
		if _, err := tokenizeDirCmd(cmd, t.TempDir(), format, driver.Options{}, uiModeOff, false); err == nil {
			t.Fatalf("%s: expected error for a directory", format)
		}
	}
}

func TestShaderWatcherRelevant(t *testing.T) {
	dir := t.TempDir()
	w, err := newShaderWatcher(dir, driver.Options{}, true)
	if err != nil {
		t.Fatalf("newShaderWatcher: %v", err)
	}
	defer w.Close()

	shader := filepath.Join(dir, "a.frag")
	if !w.relevant(fsnotify.Event{Name: shader, Op: fsnotify.Write}) {
		t.Fatalf("write to a shader must be relevant")
	}
	if w.relevant(fsnotify.Event{Name: filepath.Join(dir, "notes.txt"), Op: fsnotify.Write}) {
		t.Fatalf("non-shader files are not relevant")
	}
	if w.relevant(fsnotify.Event{Name: shader, Op: fsnotify.Chmod}) {
		t.Fatalf("chmod is not relevant")
	}

	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if w.relevant(fsnotify.Event{Name: sub, Op: fsnotify.Create}) {
		t.Fatalf("directory creation is not itself relevant")
	}
	if _, ok := w.dirs[sub]; !ok {
		t.Fatalf("new directory %s not watched", sub)
	}
}

func TestShaderWatcherSingleFile(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "a.glsl", "")
	w, err := newShaderWatcher(file, driver.Options{}, false)
	if err != nil {
		t.Fatalf("newShaderWatcher: %v", err)
	}
	defer w.Close()

	if !w.relevant(fsnotify.Event{Name: file, Op: fsnotify.Create}) {
		t.Fatalf("recreating the watched file must be relevant")
	}
	if w.relevant(fsnotify.Event{Name: filepath.Join(dir, "b.glsl"), Op: fsnotify.Write}) {
		t.Fatalf("sibling files are not relevant")
	}
}
