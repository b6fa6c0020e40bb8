package token

var kindNames = [...]string{
	EOF:                      "EOF",
	Error:                    "ERROR",
	Newline:                  "NEWLINE",
	Whitespace:               "WHITESPACE",
	Comment:                  "COMMENT",
	LineComment:              "SINGLE_LINE_COMMENT",
	Identifier:               "IDENTIFIER",
	String:                   "STRING",
	FloatConstant:            "FLOATCONSTANT",
	DoubleConstant:           "DOUBLECONSTANT",
	IntConstant:              "INTCONSTANT",
	UintConstant:             "UINTCONSTANT",
	BoolConstant:             "BOOLCONSTANT",
	KwConst:                  "CONST",
	KwBool:                   "BOOL",
	KwFloat:                  "FLOAT",
	KwDouble:                 "DOUBLE",
	KwInt:                    "INT",
	KwUint:                   "UINT",
	KwBreak:                  "BREAK",
	KwContinue:               "CONTINUE",
	KwDo:                     "DO",
	KwElse:                   "ELSE",
	KwFor:                    "FOR",
	KwIf:                     "IF",
	KwDiscard:                "DISCARD",
	KwReturn:                 "RETURN",
	KwSwitch:                 "SWITCH",
	KwCase:                   "CASE",
	KwDefault:                "DEFAULT",
	KwSubroutine:             "SUBROUTINE",
	KwBvec2:                  "BVEC2",
	KwBvec3:                  "BVEC3",
	KwBvec4:                  "BVEC4",
	KwIvec2:                  "IVEC2",
	KwIvec3:                  "IVEC3",
	KwIvec4:                  "IVEC4",
	KwUvec2:                  "UVEC2",
	KwUvec3:                  "UVEC3",
	KwUvec4:                  "UVEC4",
	KwVec2:                   "VEC2",
	KwVec3:                   "VEC3",
	KwVec4:                   "VEC4",
	KwMat2:                   "MAT2",
	KwMat3:                   "MAT3",
	KwMat4:                   "MAT4",
	KwCentroid:               "CENTROID",
	KwIn:                     "IN",
	KwOut:                    "OUT",
	KwInout:                  "INOUT",
	KwUniform:                "UNIFORM",
	KwPatch:                  "PATCH",
	KwSample:                 "SAMPLE",
	KwBuffer:                 "BUFFER",
	KwShared:                 "SHARED",
	KwCoherent:               "COHERENT",
	KwVolatile:               "VOLATILE",
	KwRestrict:               "RESTRICT",
	KwReadonly:               "READONLY",
	KwWriteonly:              "WRITEONLY",
	KwDvec2:                  "DVEC2",
	KwDvec3:                  "DVEC3",
	KwDvec4:                  "DVEC4",
	KwDmat2:                  "DMAT2",
	KwDmat3:                  "DMAT3",
	KwDmat4:                  "DMAT4",
	KwNoperspective:          "NOPERSPECTIVE",
	KwFlat:                   "FLAT",
	KwSmooth:                 "SMOOTH",
	KwLayout:                 "LAYOUT",
	KwMat2x2:                 "MAT2X2",
	KwMat2x3:                 "MAT2X3",
	KwMat2x4:                 "MAT2X4",
	KwMat3x2:                 "MAT3X2",
	KwMat3x3:                 "MAT3X3",
	KwMat3x4:                 "MAT3X4",
	KwMat4x2:                 "MAT4X2",
	KwMat4x3:                 "MAT4X3",
	KwMat4x4:                 "MAT4X4",
	KwDmat2x2:                "DMAT2X2",
	KwDmat2x3:                "DMAT2X3",
	KwDmat2x4:                "DMAT2X4",
	KwDmat3x2:                "DMAT3X2",
	KwDmat3x3:                "DMAT3X3",
	KwDmat3x4:                "DMAT3X4",
	KwDmat4x2:                "DMAT4X2",
	KwDmat4x3:                "DMAT4X3",
	KwDmat4x4:                "DMAT4X4",
	KwAtomicUint:             "ATOMIC_UINT",
	KwSampler1D:              "SAMPLER1D",
	KwSampler2D:              "SAMPLER2D",
	KwSampler3D:              "SAMPLER3D",
	KwSamplerCube:            "SAMPLERCUBE",
	KwSampler1DShadow:        "SAMPLER1DSHADOW",
	KwSampler2DShadow:        "SAMPLER2DSHADOW",
	KwSamplerCubeShadow:      "SAMPLERCUBESHADOW",
	KwSampler1DArray:         "SAMPLER1DARRAY",
	KwSampler2DArray:         "SAMPLER2DARRAY",
	KwSampler1DArrayShadow:   "SAMPLER1DARRAYSHADOW",
	KwSampler2DArrayShadow:   "SAMPLER2DARRAYSHADOW",
	KwIsampler1D:             "ISAMPLER1D",
	KwIsampler2D:             "ISAMPLER2D",
	KwIsampler3D:             "ISAMPLER3D",
	KwIsamplerCube:           "ISAMPLERCUBE",
	KwIsampler1DArray:        "ISAMPLER1DARRAY",
	KwIsampler2DArray:        "ISAMPLER2DARRAY",
	KwUsampler1D:             "USAMPLER1D",
	KwUsampler2D:             "USAMPLER2D",
	KwUsampler3D:             "USAMPLER3D",
	KwUsamplerCube:           "USAMPLERCUBE",
	KwUsampler1DArray:        "USAMPLER1DARRAY",
	KwUsampler2DArray:        "USAMPLER2DARRAY",
	KwSampler2DRect:          "SAMPLER2DRECT",
	KwSampler2DRectShadow:    "SAMPLER2DRECTSHADOW",
	KwIsampler2DRect:         "ISAMPLER2DRECT",
	KwUsampler2DRect:         "USAMPLER2DRECT",
	KwSamplerBuffer:          "SAMPLERBUFFER",
	KwIsamplerBuffer:         "ISAMPLERBUFFER",
	KwUsamplerBuffer:         "USAMPLERBUFFER",
	KwSamplerCubeArray:       "SAMPLERCUBEARRAY",
	KwSamplerCubeArrayShadow: "SAMPLERCUBEARRAYSHADOW",
	KwIsamplerCubeArray:      "ISAMPLERCUBEARRAY",
	KwUsamplerCubeArray:      "USAMPLERCUBEARRAY",
	KwSampler2DMS:            "SAMPLER2DMS",
	KwIsampler2DMS:           "ISAMPLER2DMS",
	KwUsampler2DMS:           "USAMPLER2DMS",
	KwSampler2DMSArray:       "SAMPLER2DMSARRAY",
	KwIsampler2DMSArray:      "ISAMPLER2DMSARRAY",
	KwUsampler2DMSArray:      "USAMPLER2DMSARRAY",
	KwImage1D:                "IMAGE1D",
	KwIimage1D:               "IIMAGE1D",
	KwUimage1D:               "UIMAGE1D",
	KwImage2D:                "IMAGE2D",
	KwIimage2D:               "IIMAGE2D",
	KwUimage2D:               "UIMAGE2D",
	KwImage3D:                "IMAGE3D",
	KwIimage3D:               "IIMAGE3D",
	KwUimage3D:               "UIMAGE3D",
	KwImage2DRect:            "IMAGE2DRECT",
	KwIimage2DRect:           "IIMAGE2DRECT",
	KwUimage2DRect:           "UIMAGE2DRECT",
	KwImageCube:              "IMAGECUBE",
	KwIimageCube:             "IIMAGECUBE",
	KwUimageCube:             "UIMAGECUBE",
	KwImageBuffer:            "IMAGEBUFFER",
	KwIimageBuffer:           "IIMAGEBUFFER",
	KwUimageBuffer:           "UIMAGEBUFFER",
	KwImage1DArray:           "IMAGE1DARRAY",
	KwIimage1DArray:          "IIMAGE1DARRAY",
	KwUimage1DArray:          "UIMAGE1DARRAY",
	KwImage2DArray:           "IMAGE2DARRAY",
	KwIimage2DArray:          "IIMAGE2DARRAY",
	KwUimage2DArray:          "UIMAGE2DARRAY",
	KwImageCubeArray:         "IMAGECUBEARRAY",
	KwIimageCubeArray:        "IIMAGECUBEARRAY",
	KwUimageCubeArray:        "UIMAGECUBEARRAY",
	KwImage2DMS:              "IMAGE2DMS",
	KwIimage2DMS:             "IIMAGE2DMS",
	KwUimage2DMS:             "UIMAGE2DMS",
	KwImage2DMSArray:         "IMAGE2DMSARRAY",
	KwIimage2DMSArray:        "IIMAGE2DMSARRAY",
	KwUimage2DMSArray:        "UIMAGE2DMSARRAY",
	KwStruct:                 "STRUCT",
	KwVoid:                   "VOID",
	KwWhile:                  "WHILE",
	KwInvariant:              "INVARIANT",
	KwPrecise:                "PRECISE",
	KwHighp:                  "HIGH_PRECISION",
	KwMediump:                "MEDIUM_PRECISION",
	KwLowp:                   "LOW_PRECISION",
	KwPrecision:              "PRECISION",
	LeftOp:                   "LEFT_OP",
	RightOp:                  "RIGHT_OP",
	IncOp:                    "INC_OP",
	DecOp:                    "DEC_OP",
	LeOp:                     "LE_OP",
	GeOp:                     "GE_OP",
	EqOp:                     "EQ_OP",
	NeOp:                     "NE_OP",
	AndOp:                    "AND_OP",
	OrOp:                     "OR_OP",
	XorOp:                    "XOR_OP",
	MulAssign:                "MUL_ASSIGN",
	DivAssign:                "DIV_ASSIGN",
	AddAssign:                "ADD_ASSIGN",
	ModAssign:                "MOD_ASSIGN",
	LeftAssign:               "LEFT_ASSIGN",
	RightAssign:              "RIGHT_ASSIGN",
	AndAssign:                "AND_ASSIGN",
	XorAssign:                "XOR_ASSIGN",
	OrAssign:                 "OR_ASSIGN",
	SubAssign:                "SUB_ASSIGN",
	LeftParen:                "LEFT_PAREN",
	RightParen:               "RIGHT_PAREN",
	LeftBracket:              "LEFT_BRACKET",
	RightBracket:             "RIGHT_BRACKET",
	LeftBrace:                "LEFT_BRACE",
	RightBrace:               "RIGHT_BRACE",
	Dot:                      "DOT",
	Comma:                    "COMMA",
	Colon:                    "COLON",
	Equal:                    "EQUAL",
	Semicolon:                "SEMICOLON",
	Bang:                     "BANG",
	Dash:                     "DASH",
	Tilde:                    "TILDE",
	Plus:                     "PLUS",
	Star:                     "STAR",
	Slash:                    "SLASH",
	Percent:                  "PERCENT",
	LeftAngle:                "LEFT_ANGLE",
	RightAngle:               "RIGHT_ANGLE",
	VerticalBar:              "VERTICAL_BAR",
	Caret:                    "CARET",
	Ampersand:                "AMPERSAND",
	Question:                 "QUESTION",
	Hash:                     "HASH",
}

// kindText holds the fixed source text of keyword and operator kinds.
var kindText = [...]string{
	KwConst:                  "const",
	KwBool:                   "bool",
	KwFloat:                  "float",
	KwDouble:                 "double",
	KwInt:                    "int",
	KwUint:                   "uint",
	KwBreak:                  "break",
	KwContinue:               "continue",
	KwDo:                     "do",
	KwElse:                   "else",
	KwFor:                    "for",
	KwIf:                     "if",
	KwDiscard:                "discard",
	KwReturn:                 "return",
	KwSwitch:                 "switch",
	KwCase:                   "case",
	KwDefault:                "default",
	KwSubroutine:             "subroutine",
	KwBvec2:                  "bvec2",
	KwBvec3:                  "bvec3",
	KwBvec4:                  "bvec4",
	KwIvec2:                  "ivec2",
	KwIvec3:                  "ivec3",
	KwIvec4:                  "ivec4",
	KwUvec2:                  "uvec2",
	KwUvec3:                  "uvec3",
	KwUvec4:                  "uvec4",
	KwVec2:                   "vec2",
	KwVec3:                   "vec3",
	KwVec4:                   "vec4",
	KwMat2:                   "mat2",
	KwMat3:                   "mat3",
	KwMat4:                   "mat4",
	KwCentroid:               "centroid",
	KwIn:                     "in",
	KwOut:                    "out",
	KwInout:                  "inout",
	KwUniform:                "uniform",
	KwPatch:                  "patch",
	KwSample:                 "sample",
	KwBuffer:                 "buffer",
	KwShared:                 "shared",
	KwCoherent:               "coherent",
	KwVolatile:               "volatile",
	KwRestrict:               "restrict",
	KwReadonly:               "readonly",
	KwWriteonly:              "writeonly",
	KwDvec2:                  "dvec2",
	KwDvec3:                  "dvec3",
	KwDvec4:                  "dvec4",
	KwDmat2:                  "dmat2",
	KwDmat3:                  "dmat3",
	KwDmat4:                  "dmat4",
	KwNoperspective:          "noperspective",
	KwFlat:                   "flat",
	KwSmooth:                 "smooth",
	KwLayout:                 "layout",
	KwMat2x2:                 "mat2x2",
	KwMat2x3:                 "mat2x3",
	KwMat2x4:                 "mat2x4",
	KwMat3x2:                 "mat3x2",
	KwMat3x3:                 "mat3x3",
	KwMat3x4:                 "mat3x4",
	KwMat4x2:                 "mat4x2",
	KwMat4x3:                 "mat4x3",
	KwMat4x4:                 "mat4x4",
	KwDmat2x2:                "dmat2x2",
	KwDmat2x3:                "dmat2x3",
	KwDmat2x4:                "dmat2x4",
	KwDmat3x2:                "dmat3x2",
	KwDmat3x3:                "dmat3x3",
	KwDmat3x4:                "dmat3x4",
	KwDmat4x2:                "dmat4x2",
	KwDmat4x3:                "dmat4x3",
	KwDmat4x4:                "dmat4x4",
	KwAtomicUint:             "atomic_uint",
	KwSampler1D:              "sampler1D",
	KwSampler2D:              "sampler2D",
	KwSampler3D:              "sampler3D",
	KwSamplerCube:            "samplerCube",
	KwSampler1DShadow:        "sampler1DShadow",
	KwSampler2DShadow:        "sampler2DShadow",
	KwSamplerCubeShadow:      "samplerCubeShadow",
	KwSampler1DArray:         "sampler1DArray",
	KwSampler2DArray:         "sampler2DArray",
	KwSampler1DArrayShadow:   "sampler1DArrayShadow",
	KwSampler2DArrayShadow:   "sampler2DArrayShadow",
	KwIsampler1D:             "isampler1D",
	KwIsampler2D:             "isampler2D",
	KwIsampler3D:             "isampler3D",
	KwIsamplerCube:           "isamplerCube",
	KwIsampler1DArray:        "isampler1DArray",
	KwIsampler2DArray:        "isampler2DArray",
	KwUsampler1D:             "usampler1D",
	KwUsampler2D:             "usampler2D",
	KwUsampler3D:             "usampler3D",
	KwUsamplerCube:           "usamplerCube",
	KwUsampler1DArray:        "usampler1DArray",
	KwUsampler2DArray:        "usampler2DArray",
	KwSampler2DRect:          "sampler2DRect",
	KwSampler2DRectShadow:    "sampler2DRectShadow",
	KwIsampler2DRect:         "isampler2DRect",
	KwUsampler2DRect:         "usampler2DRect",
	KwSamplerBuffer:          "samplerBuffer",
	KwIsamplerBuffer:         "isamplerBuffer",
	KwUsamplerBuffer:         "usamplerBuffer",
	KwSamplerCubeArray:       "samplerCubeArray",
	KwSamplerCubeArrayShadow: "samplerCubeArrayShadow",
	KwIsamplerCubeArray:      "isamplerCubeArray",
	KwUsamplerCubeArray:      "usamplerCubeArray",
	KwSampler2DMS:            "sampler2DMS",
	KwIsampler2DMS:           "isampler2DMS",
	KwUsampler2DMS:           "usampler2DMS",
	KwSampler2DMSArray:       "sampler2DMSArray",
	KwIsampler2DMSArray:      "isampler2DMSArray",
	KwUsampler2DMSArray:      "usampler2DMSArray",
	KwImage1D:                "image1D",
	KwIimage1D:               "iimage1D",
	KwUimage1D:               "uimage1D",
	KwImage2D:                "image2D",
	KwIimage2D:               "iimage2D",
	KwUimage2D:               "uimage2D",
	KwImage3D:                "image3D",
	KwIimage3D:               "iimage3D",
	KwUimage3D:               "uimage3D",
	KwImage2DRect:            "image2DRect",
	KwIimage2DRect:           "iimage2DRect",
	KwUimage2DRect:           "uimage2DRect",
	KwImageCube:              "imageCube",
	KwIimageCube:             "iimageCube",
	KwUimageCube:             "uimageCube",
	KwImageBuffer:            "imageBuffer",
	KwIimageBuffer:           "iimageBuffer",
	KwUimageBuffer:           "uimageBuffer",
	KwImage1DArray:           "image1DArray",
	KwIimage1DArray:          "iimage1DArray",
	KwUimage1DArray:          "uimage1DArray",
	KwImage2DArray:           "image2DArray",
	KwIimage2DArray:          "iimage2DArray",
	KwUimage2DArray:          "uimage2DArray",
	KwImageCubeArray:         "imageCubeArray",
	KwIimageCubeArray:        "iimageCubeArray",
	KwUimageCubeArray:        "uimageCubeArray",
	KwImage2DMS:              "image2DMS",
	KwIimage2DMS:             "iimage2DMS",
	KwUimage2DMS:             "uimage2DMS",
	KwImage2DMSArray:         "image2DMSArray",
	KwIimage2DMSArray:        "iimage2DMSArray",
	KwUimage2DMSArray:        "uimage2DMSArray",
	KwStruct:                 "struct",
	KwVoid:                   "void",
	KwWhile:                  "while",
	KwInvariant:              "invariant",
	KwPrecise:                "precise",
	KwHighp:                  "highp",
	KwMediump:                "mediump",
	KwLowp:                   "lowp",
	KwPrecision:              "precision",
	LeftOp:                   "<<",
	RightOp:                  ">>",
	IncOp:                    "++",
	DecOp:                    "--",
	LeOp:                     "<=",
	GeOp:                     ">=",
	EqOp:                     "==",
	NeOp:                     "!=",
	AndOp:                    "&&",
	OrOp:                     "||",
	XorOp:                    "^^",
	MulAssign:                "*=",
	DivAssign:                "/=",
	AddAssign:                "+=",
	ModAssign:                "%=",
	LeftAssign:               "<<=",
	RightAssign:              ">>=",
	AndAssign:                "&=",
	XorAssign:                "^=",
	OrAssign:                 "|=",
	SubAssign:                "-=",
	LeftParen:                "(",
	RightParen:               ")",
	LeftBracket:              "[",
	RightBracket:             "]",
	LeftBrace:                "{",
	RightBrace:               "}",
	Dot:                      ".",
	Comma:                    ",",
	Colon:                    ":",
	Equal:                    "=",
	Semicolon:                ";",
	Bang:                     "!",
	Dash:                     "-",
	Tilde:                    "~",
	Plus:                     "+",
	Star:                     "*",
	Slash:                    "/",
	Percent:                  "%",
	LeftAngle:                "<",
	RightAngle:               ">",
	VerticalBar:              "|",
	Caret:                    "^",
	Ampersand:                "&",
	Question:                 "?",
	Hash:                     "#",
}
