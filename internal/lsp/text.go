package lsp

import (
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// applyChanges applies didChange events in order. Ranged edits use UTF-16
// positions; an event without a range replaces the whole text.
func applyChanges(text string, changes []any) string {
	for _, change := range changes {
		switch change := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text = change.Text
		case protocol.TextDocumentContentChangeEvent:
			if change.Range == nil {
				text = change.Text
				continue
			}
			start := offsetForPosition(text, change.Range.Start)
			end := max(offsetForPosition(text, change.Range.End), start)
			text = text[:start] + change.Text + text[end:]
		}
	}
	return text
}

// offsetForPosition maps a UTF-16 position to a byte offset in text,
// clamping to the end of the line or of the text.
func offsetForPosition(text string, pos protocol.Position) int {
	line := protocol.UInteger(0)
	i := 0
	for i < len(text) && line < pos.Line {
		if text[i] == '\n' {
			line++
		}
		i++
	}
	if line < pos.Line {
		return len(text)
	}
	units := protocol.UInteger(0)
	for i < len(text) && units < pos.Character {
		if text[i] == '\n' || (text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n') {
			break
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		need := protocol.UInteger(1)
		if r > 0xFFFF {
			need = 2
		}
		if units+need > pos.Character {
			break
		}
		units += need
		i += size
	}
	return i
}
