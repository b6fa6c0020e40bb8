package lsp

import (
	"sort"
	"unicode/utf8"

	"fortio.org/safecast"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"shaderlex/internal/source"
)

const maxUint32 = ^uint32(0)

func safeUint32(n int) uint32 {
	if n < 0 {
		return 0
	}
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		return maxUint32
	}
	return v
}

// utf16Len counts the UTF-16 code units of b.
func utf16Len(b []byte) uint32 {
	var units uint32
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r > 0xFFFF {
			units += 2
		} else {
			units++
		}
		b = b[size:]
	}
	return units
}

// lineStart returns the offset of the first byte of the 0-based line.
func lineStart(file *source.File, line int) uint32 {
	if line == 0 {
		return 0
	}
	return file.LineIdx[line-1] + 1
}

func positionForOffsetInFile(file *source.File, offset uint32) protocol.Position {
	if file == nil {
		return protocol.Position{}
	}
	offset = min(offset, safeUint32(len(file.Content)))
	lineIdx := file.LineIdx
	line := sort.Search(len(lineIdx), func(i int) bool { return lineIdx[i] >= offset })
	start := lineStart(file, line)
	return protocol.Position{
		Line:      safeUint32(line),
		Character: utf16Len(file.Content[start:offset]),
	}
}

func rangeForSpan(file *source.File, span source.Span) protocol.Range {
	if file == nil {
		return protocol.Range{}
	}
	return protocol.Range{
		Start: positionForOffsetInFile(file, span.Start),
		End:   positionForOffsetInFile(file, span.End),
	}
}
