// Package token defines the lexical token kinds of the shading language and
// the Token value produced by the lexer.
// Invariants:
//   - Keyword and operator kinds carry no payload; Kind.Text recovers their spelling.
//   - true and false are BoolConstant tokens, never identifiers.
//   - Token.Span covers exactly the bytes the lexer consumed, splices included.
package token
