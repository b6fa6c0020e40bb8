// Package fuzztests holds Go fuzz harnesses for the tokenizer and the token
// stream. They feed arbitrary bytes through a FileSet and check that lexing
// always terminates, never panics and accounts for every input byte.
//
// Seeds come from testdata/*.glsl (and the other shader extensions) and the
// glsl code blocks of README.md.
package fuzztests
