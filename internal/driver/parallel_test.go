package driver_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"shaderlex/internal/diag"
	"shaderlex/internal/driver"
)

type recordingSink struct {
	mu     sync.Mutex
	events []driver.Event
}

func (s *recordingSink) OnEvent(ev driver.Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	s.mu.Unlock()
}

func (s *recordingSink) last(file string) (driver.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.events) - 1; i >= 0; i-- {
		if s.events[i].File == file {
			return s.events[i], true
		}
	}
	return driver.Event{}, false
}

func shaderTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "a.frag", "out vec4 c;\nvoid main() { c = vec4(1.0); }\n")
	writeFile(t, dir, "b.vert", "in vec3 p;\n")
	writeFile(t, dir, "sub/c.glsl", "uint u = 1u;\n")
	writeFile(t, dir, "bad.comp", "int x = @;\n")
	writeFile(t, dir, "notes.txt", "not a shader")
	return dir
}

func TestTokenizeDir(t *testing.T) {
	dir := shaderTree(t)
	sink := &recordingSink{}

	fs, results, err := driver.TokenizeDir(context.Background(), dir, driver.Options{Jobs: 2, Progress: sink})
	if err != nil {
		t.Fatal(err)
	}
	wantOrder := []string{"a.frag", "b.vert", "bad.comp", filepath.Join("sub", "c.glsl")}
	if len(results) != len(wantOrder) {
		t.Fatalf("expected %d results, got %d", len(wantOrder), len(results))
	}
	for i, res := range results {
		if rel, _ := filepath.Rel(dir, res.Path); rel != wantOrder[i] {
			t.Errorf("result %d is %s, want %s", i, rel, wantOrder[i])
		}
		if fs.Get(res.FileID) == nil {
			t.Errorf("%s: file not in the file set", res.Path)
		}
		if n := len(res.Tokens); n == 0 || res.Tokens[n-1].Kind.String() != "EOF" {
			t.Errorf("%s: token stream does not end with EOF", res.Path)
		}

		ev, ok := sink.last(res.Path)
		if !ok {
			t.Errorf("%s: no progress events", res.Path)
			continue
		}
		wantStatus := driver.StatusDone
		if filepath.Base(res.Path) == "bad.comp" {
			wantStatus = driver.StatusError
		}
		if ev.Status != wantStatus || ev.Stage != driver.StageLex {
			t.Errorf("%s: last event %s/%s, want lex/%s", res.Path, ev.Stage, ev.Status, wantStatus)
		}
	}
	if !results[2].Bag.HasErrors() || results[0].Bag.HasErrors() {
		t.Error("diagnostics ended up in the wrong bag")
	}
}

func TestTokenizeDirEmpty(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "readme.md", "# nothing")
	fs, results, err := driver.TokenizeDir(context.Background(), dir, driver.Options{})
	if err != nil || len(results) != 0 || fs == nil {
		t.Fatalf("fs=%v results=%d err=%v", fs, len(results), err)
	}
}

func TestTokenizeDirLoadFailure(t *testing.T) {
	dir := t.TempDir()
	if err := os.Symlink(filepath.Join(dir, "missing"), filepath.Join(dir, "dangling.glsl")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	fs, results, err := driver.TokenizeDir(context.Background(), dir, driver.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	res := results[0]
	if res.Tokens != nil {
		t.Error("a file that failed to load has no tokens")
	}
	items := res.Bag.Items()
	if len(items) != 1 || items[0].Code != diag.IOLoadFileError {
		t.Fatalf("expected one IO diagnostic, got %d", len(items))
	}
	if f := fs.Get(items[0].Primary.File); f == nil || filepath.Base(f.Path) != "dangling.glsl" {
		t.Error("diagnostic does not point at the failed path")
	}
}

func TestTokenizeDirCancelled(t *testing.T) {
	dir := shaderTree(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := driver.TokenizeDir(ctx, dir, driver.Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestTokenizeDirMissingRoot(t *testing.T) {
	if _, _, err := driver.TokenizeDir(context.Background(), filepath.Join(t.TempDir(), "nope"), driver.Options{}); err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}
