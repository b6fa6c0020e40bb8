package testkit

import (
	"bytes"
	"fmt"

	"fortio.org/safecast"

	"shaderlex/internal/source"
	"shaderlex/internal/token"
)

// CheckTokenInvariants checks a complete, trivia-inclusive token stream of sf:
// 1) every span points at sf and lies within its content
// 2) spans are contiguous, starting at 0, and only EOF may be empty
// 3) the stream ends with exactly one EOF at the end of the content
func CheckTokenInvariants(tokens []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	if len(tokens) == 0 {
		return fmt.Errorf("empty token stream")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevEnd uint32
	for i, tok := range tokens {
		sp := tok.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token %d (%s): span file mismatch: got=%d want=%d", i, tok.Kind, sp.File, sf.ID)
		}
		if sp.End < sp.Start || sp.End > lenContent {
			return fmt.Errorf("token %d (%s): span %v outside content of %d bytes", i, tok.Kind, sp, lenContent)
		}
		if sp.Start != prevEnd {
			return fmt.Errorf("token %d (%s): starts at %d, previous ended at %d", i, tok.Kind, sp.Start, prevEnd)
		}
		isLast := i == len(tokens)-1
		if tok.Kind == token.EOF && !isLast {
			return fmt.Errorf("token %d: EOF before the end of the stream", i)
		}
		if tok.Kind != token.EOF && sp.Empty() {
			return fmt.Errorf("token %d (%s): empty span at %d", i, tok.Kind, sp.Start)
		}
		prevEnd = sp.End
	}
	last := tokens[len(tokens)-1]
	if last.Kind != token.EOF {
		return fmt.Errorf("stream ends with %s, want EOF", last.Kind)
	}
	if last.Span.End != lenContent {
		return fmt.Errorf("EOF ends at %d, content has %d bytes", last.Span.End, lenContent)
	}
	return nil
}

// CheckRoundTrip verifies that the raw text of tokens reproduces sf.
func CheckRoundTrip(tokens []token.Token, sf *source.File) error {
	var rebuilt bytes.Buffer
	for _, tok := range tokens {
		rebuilt.Write(tok.Span.Slice(sf.Content))
	}
	if !bytes.Equal(rebuilt.Bytes(), sf.Content) {
		return fmt.Errorf("token text does not reproduce %s (%d of %d bytes)", sf.Path, rebuilt.Len(), len(sf.Content))
	}
	return nil
}
