package driver

import (
	"path/filepath"
	"slices"
	"strings"

	"shaderlex/internal/observ"
)

// DefaultExtensions lists the file extensions TokenizeDir picks up when
// Options.Extensions is empty.
var DefaultExtensions = []string{".glsl", ".vert", ".frag", ".geom", ".comp", ".tesc", ".tese"}

// Options configures Tokenize and TokenizeDir.
type Options struct {
	MaxDiagnostics int      // per file, 0 = unlimited
	Jobs           int      // worker count, 0 = GOMAXPROCS
	Extensions     []string // with leading dot
	SkipTrivia     bool     // drop whitespace, comments and error tokens
	Cache          *DiskCache
	Memory         *MemCache
	Progress       ProgressSink
	Timer          *observ.Timer // phases load, memory, cache, lex
}

func (o Options) extensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions
	}
	return o.Extensions
}

// Matches reports whether path has one of the configured extensions.
func (o Options) Matches(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.ContainsFunc(o.extensions(), func(e string) bool {
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		return strings.EqualFold(e, ext)
	})
}
