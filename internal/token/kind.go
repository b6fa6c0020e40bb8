package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// EOF marks the end of the source input.
	EOF Kind = iota
	// Error is produced for an unrecognized byte.
	Error
	// Newline is a whitespace run containing at least one line break.
	Newline
	// Whitespace is a run of blanks without line breaks.
	Whitespace
	// Comment is a /* block */ comment.
	Comment
	// LineComment is a // comment up to the end of the line.
	LineComment
	// Identifier is a name that is not a keyword.
	Identifier
	// String is a double-quoted string literal.
	String
	// FloatConstant is a floating point literal without the lf suffix.
	FloatConstant
	// DoubleConstant is a floating point literal with the lf suffix.
	DoubleConstant
	// IntConstant is a signed integer literal.
	IntConstant
	// UintConstant is an integer literal with the u suffix.
	UintConstant
	// BoolConstant is the literal true or false.
	BoolConstant

	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwBool represents the 'bool' keyword.
	KwBool // bool
	// KwFloat represents the 'float' keyword.
	KwFloat // float
	// KwDouble represents the 'double' keyword.
	KwDouble // double
	// KwInt represents the 'int' keyword.
	KwInt // int
	// KwUint represents the 'uint' keyword.
	KwUint // uint
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwDiscard represents the 'discard' keyword.
	KwDiscard // discard
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwSwitch represents the 'switch' keyword.
	KwSwitch // switch
	// KwCase represents the 'case' keyword.
	KwCase // case
	// KwDefault represents the 'default' keyword.
	KwDefault // default
	// KwSubroutine represents the 'subroutine' keyword.
	KwSubroutine // subroutine
	// KwBvec2 represents the 'bvec2' keyword.
	KwBvec2 // bvec2
	// KwBvec3 represents the 'bvec3' keyword.
	KwBvec3 // bvec3
	// KwBvec4 represents the 'bvec4' keyword.
	KwBvec4 // bvec4
	// KwIvec2 represents the 'ivec2' keyword.
	KwIvec2 // ivec2
	// KwIvec3 represents the 'ivec3' keyword.
	KwIvec3 // ivec3
	// KwIvec4 represents the 'ivec4' keyword.
	KwIvec4 // ivec4
	// KwUvec2 represents the 'uvec2' keyword.
	KwUvec2 // uvec2
	// KwUvec3 represents the 'uvec3' keyword.
	KwUvec3 // uvec3
	// KwUvec4 represents the 'uvec4' keyword.
	KwUvec4 // uvec4
	// KwVec2 represents the 'vec2' keyword.
	KwVec2 // vec2
	// KwVec3 represents the 'vec3' keyword.
	KwVec3 // vec3
	// KwVec4 represents the 'vec4' keyword.
	KwVec4 // vec4
	// KwMat2 represents the 'mat2' keyword.
	KwMat2 // mat2
	// KwMat3 represents the 'mat3' keyword.
	KwMat3 // mat3
	// KwMat4 represents the 'mat4' keyword.
	KwMat4 // mat4
	// KwCentroid represents the 'centroid' keyword.
	KwCentroid // centroid
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwOut represents the 'out' keyword.
	KwOut // out
	// KwInout represents the 'inout' keyword.
	KwInout // inout
	// KwUniform represents the 'uniform' keyword.
	KwUniform // uniform
	// KwPatch represents the 'patch' keyword.
	KwPatch // patch
	// KwSample represents the 'sample' keyword.
	KwSample // sample
	// KwBuffer represents the 'buffer' keyword.
	KwBuffer // buffer
	// KwShared represents the 'shared' keyword.
	KwShared // shared
	// KwCoherent represents the 'coherent' keyword.
	KwCoherent // coherent
	// KwVolatile represents the 'volatile' keyword.
	KwVolatile // volatile
	// KwRestrict represents the 'restrict' keyword.
	KwRestrict // restrict
	// KwReadonly represents the 'readonly' keyword.
	KwReadonly // readonly
	// KwWriteonly represents the 'writeonly' keyword.
	KwWriteonly // writeonly
	// KwDvec2 represents the 'dvec2' keyword.
	KwDvec2 // dvec2
	// KwDvec3 represents the 'dvec3' keyword.
	KwDvec3 // dvec3
	// KwDvec4 represents the 'dvec4' keyword.
	KwDvec4 // dvec4
	// KwDmat2 represents the 'dmat2' keyword.
	KwDmat2 // dmat2
	// KwDmat3 represents the 'dmat3' keyword.
	KwDmat3 // dmat3
	// KwDmat4 represents the 'dmat4' keyword.
	KwDmat4 // dmat4
	// KwNoperspective represents the 'noperspective' keyword.
	KwNoperspective // noperspective
	// KwFlat represents the 'flat' keyword.
	KwFlat // flat
	// KwSmooth represents the 'smooth' keyword.
	KwSmooth // smooth
	// KwLayout represents the 'layout' keyword.
	KwLayout // layout
	// KwMat2x2 represents the 'mat2x2' keyword.
	KwMat2x2 // mat2x2
	// KwMat2x3 represents the 'mat2x3' keyword.
	KwMat2x3 // mat2x3
	// KwMat2x4 represents the 'mat2x4' keyword.
	KwMat2x4 // mat2x4
	// KwMat3x2 represents the 'mat3x2' keyword.
	KwMat3x2 // mat3x2
	// KwMat3x3 represents the 'mat3x3' keyword.
	KwMat3x3 // mat3x3
	// KwMat3x4 represents the 'mat3x4' keyword.
	KwMat3x4 // mat3x4
	// KwMat4x2 represents the 'mat4x2' keyword.
	KwMat4x2 // mat4x2
	// KwMat4x3 represents the 'mat4x3' keyword.
	KwMat4x3 // mat4x3
	// KwMat4x4 represents the 'mat4x4' keyword.
	KwMat4x4 // mat4x4
	// KwDmat2x2 represents the 'dmat2x2' keyword.
	KwDmat2x2 // dmat2x2
	// KwDmat2x3 represents the 'dmat2x3' keyword.
	KwDmat2x3 // dmat2x3
	// KwDmat2x4 represents the 'dmat2x4' keyword.
	KwDmat2x4 // dmat2x4
	// KwDmat3x2 represents the 'dmat3x2' keyword.
	KwDmat3x2 // dmat3x2
	// KwDmat3x3 represents the 'dmat3x3' keyword.
	KwDmat3x3 // dmat3x3
	// KwDmat3x4 represents the 'dmat3x4' keyword.
	KwDmat3x4 // dmat3x4
	// KwDmat4x2 represents the 'dmat4x2' keyword.
	KwDmat4x2 // dmat4x2
	// KwDmat4x3 represents the 'dmat4x3' keyword.
	KwDmat4x3 // dmat4x3
	// KwDmat4x4 represents the 'dmat4x4' keyword.
	KwDmat4x4 // dmat4x4
	// KwAtomicUint represents the 'atomic_uint' keyword.
	KwAtomicUint // atomic_uint
	// KwSampler1D represents the 'sampler1D' keyword.
	KwSampler1D // sampler1D
	// KwSampler2D represents the 'sampler2D' keyword.
	KwSampler2D // sampler2D
	// KwSampler3D represents the 'sampler3D' keyword.
	KwSampler3D // sampler3D
	// KwSamplerCube represents the 'samplerCube' keyword.
	KwSamplerCube // samplerCube
	// KwSampler1DShadow represents the 'sampler1DShadow' keyword.
	KwSampler1DShadow // sampler1DShadow
	// KwSampler2DShadow represents the 'sampler2DShadow' keyword.
	KwSampler2DShadow // sampler2DShadow
	// KwSamplerCubeShadow represents the 'samplerCubeShadow' keyword.
	KwSamplerCubeShadow // samplerCubeShadow
	// KwSampler1DArray represents the 'sampler1DArray' keyword.
	KwSampler1DArray // sampler1DArray
	// KwSampler2DArray represents the 'sampler2DArray' keyword.
	KwSampler2DArray // sampler2DArray
	// KwSampler1DArrayShadow represents the 'sampler1DArrayShadow' keyword.
	KwSampler1DArrayShadow // sampler1DArrayShadow
	// KwSampler2DArrayShadow represents the 'sampler2DArrayShadow' keyword.
	KwSampler2DArrayShadow // sampler2DArrayShadow
	// KwIsampler1D represents the 'isampler1D' keyword.
	KwIsampler1D // isampler1D
	// KwIsampler2D represents the 'isampler2D' keyword.
	KwIsampler2D // isampler2D
	// KwIsampler3D represents the 'isampler3D' keyword.
	KwIsampler3D // isampler3D
	// KwIsamplerCube represents the 'isamplerCube' keyword.
	KwIsamplerCube // isamplerCube
	// KwIsampler1DArray represents the 'isampler1DArray' keyword.
	KwIsampler1DArray // isampler1DArray
	// KwIsampler2DArray represents the 'isampler2DArray' keyword.
	KwIsampler2DArray // isampler2DArray
	// KwUsampler1D represents the 'usampler1D' keyword.
	KwUsampler1D // usampler1D
	// KwUsampler2D represents the 'usampler2D' keyword.
	KwUsampler2D // usampler2D
	// KwUsampler3D represents the 'usampler3D' keyword.
	KwUsampler3D // usampler3D
	// KwUsamplerCube represents the 'usamplerCube' keyword.
	KwUsamplerCube // usamplerCube
	// KwUsampler1DArray represents the 'usampler1DArray' keyword.
	KwUsampler1DArray // usampler1DArray
	// KwUsampler2DArray represents the 'usampler2DArray' keyword.
	KwUsampler2DArray // usampler2DArray
	// KwSampler2DRect represents the 'sampler2DRect' keyword.
	KwSampler2DRect // sampler2DRect
	// KwSampler2DRectShadow represents the 'sampler2DRectShadow' keyword.
	KwSampler2DRectShadow // sampler2DRectShadow
	// KwIsampler2DRect represents the 'isampler2DRect' keyword.
	KwIsampler2DRect // isampler2DRect
	// KwUsampler2DRect represents the 'usampler2DRect' keyword.
	KwUsampler2DRect // usampler2DRect
	// KwSamplerBuffer represents the 'samplerBuffer' keyword.
	KwSamplerBuffer // samplerBuffer
	// KwIsamplerBuffer represents the 'isamplerBuffer' keyword.
	KwIsamplerBuffer // isamplerBuffer
	// KwUsamplerBuffer represents the 'usamplerBuffer' keyword.
	KwUsamplerBuffer // usamplerBuffer
	// KwSamplerCubeArray represents the 'samplerCubeArray' keyword.
	KwSamplerCubeArray // samplerCubeArray
	// KwSamplerCubeArrayShadow represents the 'samplerCubeArrayShadow' keyword.
	KwSamplerCubeArrayShadow // samplerCubeArrayShadow
	// KwIsamplerCubeArray represents the 'isamplerCubeArray' keyword.
	KwIsamplerCubeArray // isamplerCubeArray
	// KwUsamplerCubeArray represents the 'usamplerCubeArray' keyword.
	KwUsamplerCubeArray // usamplerCubeArray
	// KwSampler2DMS represents the 'sampler2DMS' keyword.
	KwSampler2DMS // sampler2DMS
	// KwIsampler2DMS represents the 'isampler2DMS' keyword.
	KwIsampler2DMS // isampler2DMS
	// KwUsampler2DMS represents the 'usampler2DMS' keyword.
	KwUsampler2DMS // usampler2DMS
	// KwSampler2DMSArray represents the 'sampler2DMSArray' keyword.
	KwSampler2DMSArray // sampler2DMSArray
	// KwIsampler2DMSArray represents the 'isampler2DMSArray' keyword.
	KwIsampler2DMSArray // isampler2DMSArray
	// KwUsampler2DMSArray represents the 'usampler2DMSArray' keyword.
	KwUsampler2DMSArray // usampler2DMSArray
	// KwImage1D represents the 'image1D' keyword.
	KwImage1D // image1D
	// KwIimage1D represents the 'iimage1D' keyword.
	KwIimage1D // iimage1D
	// KwUimage1D represents the 'uimage1D' keyword.
	KwUimage1D // uimage1D
	// KwImage2D represents the 'image2D' keyword.
	KwImage2D // image2D
	// KwIimage2D represents the 'iimage2D' keyword.
	KwIimage2D // iimage2D
	// KwUimage2D represents the 'uimage2D' keyword.
	KwUimage2D // uimage2D
	// KwImage3D represents the 'image3D' keyword.
	KwImage3D // image3D
	// KwIimage3D represents the 'iimage3D' keyword.
	KwIimage3D // iimage3D
	// KwUimage3D represents the 'uimage3D' keyword.
	KwUimage3D // uimage3D
	// KwImage2DRect represents the 'image2DRect' keyword.
	KwImage2DRect // image2DRect
	// KwIimage2DRect represents the 'iimage2DRect' keyword.
	KwIimage2DRect // iimage2DRect
	// KwUimage2DRect represents the 'uimage2DRect' keyword.
	KwUimage2DRect // uimage2DRect
	// KwImageCube represents the 'imageCube' keyword.
	KwImageCube // imageCube
	// KwIimageCube represents the 'iimageCube' keyword.
	KwIimageCube // iimageCube
	// KwUimageCube represents the 'uimageCube' keyword.
	KwUimageCube // uimageCube
	// KwImageBuffer represents the 'imageBuffer' keyword.
	KwImageBuffer // imageBuffer
	// KwIimageBuffer represents the 'iimageBuffer' keyword.
	KwIimageBuffer // iimageBuffer
	// KwUimageBuffer represents the 'uimageBuffer' keyword.
	KwUimageBuffer // uimageBuffer
	// KwImage1DArray represents the 'image1DArray' keyword.
	KwImage1DArray // image1DArray
	// KwIimage1DArray represents the 'iimage1DArray' keyword.
	KwIimage1DArray // iimage1DArray
	// KwUimage1DArray represents the 'uimage1DArray' keyword.
	KwUimage1DArray // uimage1DArray
	// KwImage2DArray represents the 'image2DArray' keyword.
	KwImage2DArray // image2DArray
	// KwIimage2DArray represents the 'iimage2DArray' keyword.
	KwIimage2DArray // iimage2DArray
	// KwUimage2DArray represents the 'uimage2DArray' keyword.
	KwUimage2DArray // uimage2DArray
	// KwImageCubeArray represents the 'imageCubeArray' keyword.
	KwImageCubeArray // imageCubeArray
	// KwIimageCubeArray represents the 'iimageCubeArray' keyword.
	KwIimageCubeArray // iimageCubeArray
	// KwUimageCubeArray represents the 'uimageCubeArray' keyword.
	KwUimageCubeArray // uimageCubeArray
	// KwImage2DMS represents the 'image2DMS' keyword.
	KwImage2DMS // image2DMS
	// KwIimage2DMS represents the 'iimage2DMS' keyword.
	KwIimage2DMS // iimage2DMS
	// KwUimage2DMS represents the 'uimage2DMS' keyword.
	KwUimage2DMS // uimage2DMS
	// KwImage2DMSArray represents the 'image2DMSArray' keyword.
	KwImage2DMSArray // image2DMSArray
	// KwIimage2DMSArray represents the 'iimage2DMSArray' keyword.
	KwIimage2DMSArray // iimage2DMSArray
	// KwUimage2DMSArray represents the 'uimage2DMSArray' keyword.
	KwUimage2DMSArray // uimage2DMSArray
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwVoid represents the 'void' keyword.
	KwVoid // void
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwInvariant represents the 'invariant' keyword.
	KwInvariant // invariant
	// KwPrecise represents the 'precise' keyword.
	KwPrecise // precise
	// KwHighp represents the 'highp' keyword.
	KwHighp // highp
	// KwMediump represents the 'mediump' keyword.
	KwMediump // mediump
	// KwLowp represents the 'lowp' keyword.
	KwLowp // lowp
	// KwPrecision represents the 'precision' keyword.
	KwPrecision // precision

	// LeftOp represents the '<<' token.
	LeftOp // <<
	// RightOp represents the '>>' token.
	RightOp // >>
	// IncOp represents the '++' token.
	IncOp // ++
	// DecOp represents the '--' token.
	DecOp // --
	// LeOp represents the '<=' token.
	LeOp // <=
	// GeOp represents the '>=' token.
	GeOp // >=
	// EqOp represents the '==' token.
	EqOp // ==
	// NeOp represents the '!=' token.
	NeOp // !=
	// AndOp represents the '&&' token.
	AndOp // &&
	// OrOp represents the '||' token.
	OrOp // ||
	// XorOp represents the '^^' token.
	XorOp // ^^
	// MulAssign represents the '*=' token.
	MulAssign // *=
	// DivAssign represents the '/=' token.
	DivAssign // /=
	// AddAssign represents the '+=' token.
	AddAssign // +=
	// ModAssign represents the '%=' token.
	ModAssign // %=
	// LeftAssign represents the '<<=' token.
	LeftAssign // <<=
	// RightAssign represents the '>>=' token.
	RightAssign // >>=
	// AndAssign represents the '&=' token.
	AndAssign // &=
	// XorAssign represents the '^=' token.
	XorAssign // ^=
	// OrAssign represents the '|=' token.
	OrAssign // |=
	// SubAssign represents the '-=' token.
	SubAssign // -=
	// LeftParen represents the '(' token.
	LeftParen // (
	// RightParen represents the ')' token.
	RightParen // )
	// LeftBracket represents the '[' token.
	LeftBracket // [
	// RightBracket represents the ']' token.
	RightBracket // ]
	// LeftBrace represents the '{' token.
	LeftBrace // {
	// RightBrace represents the '}' token.
	RightBrace // }
	// Dot represents the '.' token.
	Dot // .
	// Comma represents the ',' token.
	Comma // ,
	// Colon represents the ':' token.
	Colon // :
	// Equal represents the '=' token.
	Equal // =
	// Semicolon represents the ';' token.
	Semicolon // ;
	// Bang represents the '!' token.
	Bang // !
	// Dash represents the '-' token.
	Dash // -
	// Tilde represents the '~' token.
	Tilde // ~
	// Plus represents the '+' token.
	Plus // +
	// Star represents the '*' token.
	Star // *
	// Slash represents the '/' token.
	Slash // /
	// Percent represents the '%' token.
	Percent // %
	// LeftAngle represents the '<' token.
	LeftAngle // <
	// RightAngle represents the '>' token.
	RightAngle // >
	// VerticalBar represents the '|' token.
	VerticalBar // |
	// Caret represents the '^' token.
	Caret // ^
	// Ampersand represents the '&' token.
	Ampersand // &
	// Question represents the '?' token.
	Question // ?
	// Hash represents the '#' token.
	Hash // #

	kindCount
)

const (
	firstKeyword = KwConst
	lastKeyword  = KwPrecision
	firstOp      = LeftOp
	lastOp       = Hash
)
