package source

import (
	"fmt"
	"os"
)

// CodeSource yields the bytes to tokenize plus a name for diagnostics.
type CodeSource interface {
	Name() string
	Load() ([]byte, error)
}

// PathSource reads a file lazily, on the first Load call.
type PathSource struct {
	Path string
}

// Name returns the path.
func (p PathSource) Name() string { return p.Path }

// Load reads and decodes the file.
func (p PathSource) Load() ([]byte, error) {
	// #nosec G304 -- path is provided by the caller
	raw, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", p.Path, err)
	}
	content, _, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", p.Path, err)
	}
	return content, nil
}

// BytesSource is an in-memory CodeSource.
type BytesSource struct {
	Label string
	Data  []byte
}

func (b BytesSource) Name() string { return b.Label }

func (b BytesSource) Load() ([]byte, error) { return b.Data, nil }
