package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"const":                  KwConst,
		"float":                  KwFloat,
		"vec3":                   KwVec3,
		"mat4x3":                 KwMat4x3,
		"dmat2":                  KwDmat2,
		"atomic_uint":            KwAtomicUint,
		"sampler2D":              KwSampler2D,
		"samplerCubeArrayShadow": KwSamplerCubeArrayShadow,
		"uimage2DMSArray":        KwUimage2DMSArray,
		"highp":                  KwHighp,
		"precision":              KwPrecision,
		"while":                  KwWhile,
	}
	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
	if n := len(keywords); n != int(lastKeyword-firstKeyword)+1 {
		t.Fatalf("keyword table has %d entries", n)
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	notKw := []string{
		"Float", "VEC3", "sampler2d", // case matters
		"true", "false", // bool constants, not keywords
		"main", "gl_FragColor", "texture",
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}

func TestFromIdentifier(t *testing.T) {
	if tok := FromIdentifier("true"); tok.Kind != BoolConstant || !tok.Bool {
		t.Errorf("true -> %+v", tok)
	}
	if tok := FromIdentifier("false"); tok.Kind != BoolConstant || tok.Bool {
		t.Errorf("false -> %+v", tok)
	}
	if tok := FromIdentifier("float"); tok.Kind != KwFloat || tok.Str != "" {
		t.Errorf("float -> %+v", tok)
	}
	if tok := FromIdentifier("color"); tok.Kind != Identifier || tok.Str != "color" {
		t.Errorf("color -> %+v", tok)
	}
}

func TestIsValidIdentifier(t *testing.T) {
	cases := map[string]bool{
		"":      false,
		"a":     true,
		"_x1":   true,
		"vec3":  true,
		"1abc":  false,
		"a-b":   false,
		"ä":     false,
		"A_B_9": true,
	}
	for s, want := range cases {
		if got := IsValidIdentifier(s); got != want {
			t.Errorf("IsValidIdentifier(%q) = %v, want %v", s, got, want)
		}
	}
}
