package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.glsl", []byte("void main() {}"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}
	id2 := fs.Add("test.glsl", []byte("void main() { discard; }"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	latestID, ok := fs.GetLatest("test.glsl")
	if !ok || latestID != id2 {
		t.Errorf("Expected latest ID %d, got %d (ok=%v)", id2, latestID, ok)
	}
	if got := string(fs.Get(id1).Content); got != "void main() {}" {
		t.Errorf("old version lost: %q", got)
	}
	if fs.Get(42) != nil {
		t.Error("Get of unknown id must return nil")
	}
	if fs.Len() != 2 {
		t.Errorf("Len = %d, want 2", fs.Len())
	}
}

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.frag", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("Expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("Expected LineIdx[%d] = %d, got %d", i, val, file.LineIdx[i])
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag to be set")
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("r.vert", []byte("ab\ncd\n\nef"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{2, LineCol{1, 3}},
		{3, LineCol{2, 1}},
		{4, LineCol{2, 2}},
		{6, LineCol{3, 1}},
		{7, LineCol{4, 1}},
		{9, LineCol{4, 3}},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("offset %d: got %+v, want %+v", tt.off, start, tt.want)
		}
	}
}

func TestGetLineStripsCR(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("crlf.glsl", []byte("one\r\ntwo\r\nthree")))
	if f.Flags&FileHadCRLF == 0 {
		t.Error("FileHadCRLF not set")
	}
	for i, want := range []string{"one", "two", "three", ""} {
		if got := f.GetLine(uint32(i + 1)); got != want {
			t.Errorf("line %d: got %q, want %q", i+1, got, want)
		}
	}
	if string(f.Content) != "one\r\ntwo\r\nthree" {
		t.Error("content must not be normalised")
	}
}

func TestLoadStripsBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bom.frag")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFint x;"), 0o600); err != nil {
		t.Fatal(err)
	}
	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "int x;" {
		t.Errorf("content = %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 {
		t.Error("FileHadBOM not set")
	}
	if _, err := fs.Load(filepath.Join(dir, "missing.frag")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFileImplementsCodeSource(t *testing.T) {
	fs := NewFileSet()
	var src CodeSource = fs.Get(fs.AddVirtual("mem.glsl", []byte("x")))
	data, err := src.Load()
	if err != nil || string(data) != "x" || src.Name() != "mem.glsl" {
		t.Errorf("unexpected source %q %q %v", src.Name(), data, err)
	}
}
