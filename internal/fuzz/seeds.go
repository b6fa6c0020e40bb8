package fuzztests

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB
)

var shaderExts = map[string]bool{
	".glsl": true, ".vert": true, ".frag": true, ".geom": true,
	".comp": true, ".tesc": true, ".tese": true,
}

func addCorpusSeeds(f *testing.F) {
	addBuiltinSeeds(f)
	addTestdataSeeds(f)
	addReadmeSeeds(f)
}

func addBuiltinSeeds(f *testing.F) {
	for _, s := range []string{
		"",
		"void main() { gl_FragColor = vec4(1.0); }\n",
		"uint x = 0xFFFFFFFFu; int y = 0777; float z = 1.5e-3f; double w = 2.0lf;",
		"a <<= b >>= c ^^ d",
		"/* unterminated",
		"\"open string",
		"in\\\nt x;\r\n",
		"0x 1e+ 09 4294967296 @$`",
		"\\\n",
	} {
		f.Add([]byte(s))
	}
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		if !shaderExts[filepath.Ext(path)] {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func addReadmeSeeds(f *testing.F) {
	// #nosec G304 -- path is a fixed repository location
	data, err := os.ReadFile(filepath.Join("..", "..", "README.md"))
	if err != nil {
		return
	}
	var block [][]byte
	inBlock := false
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		trimmed := strings.TrimSpace(string(line))
		if strings.HasPrefix(trimmed, "```glsl") {
			inBlock = true
			block = block[:0]
			continue
		}
		if strings.HasPrefix(trimmed, "```") {
			if inBlock {
				if snippet := clampSeed(bytes.Join(block, []byte{'\n'})); len(snippet) > 0 {
					f.Add(snippet)
				}
			}
			inBlock = false
			continue
		}
		if inBlock {
			block = append(block, line)
		}
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
