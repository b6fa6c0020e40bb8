package source

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Decode strips a UTF-8 byte order mark and transcodes UTF-16 input (detected
// by its BOM) to UTF-8. Anything else is returned unchanged.
func Decode(content []byte) ([]byte, FileFlags, error) {
	var flags FileFlags
	switch {
	case bytes.HasPrefix(content, bomUTF8):
		return content[len(bomUTF8):], FileHadBOM, nil
	case bytes.HasPrefix(content, bomUTF16LE), bytes.HasPrefix(content, bomUTF16BE):
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		out, _, err := transform.Bytes(dec, content)
		if err != nil {
			return nil, 0, fmt.Errorf("utf-16: %w", err)
		}
		flags |= FileHadBOM | FileDecodedUTF16
		content = out
	}
	return content, flags, nil
}

// hasCR reports whether content holds any carriage return.
func hasCR(content []byte) bool {
	return bytes.IndexByte(content, '\r') >= 0
}
