package parser

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

type Span struct {
	Start Position
	End   Position
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenInvalid
	TokenWhitespace
	TokenComment
	TokenLineComment

	// Literals
	TokenIdent
	TokenNumInt
	TokenNumLong
	TokenNumFloat
	TokenNumDouble
	TokenCharLiteral
	TokenStringLiteral
	TokenTrue
	TokenFalse
	TokenNull

	// Keywords (superset across both grammars; kinds specific to one
	// grammar are simply never produced by the other lexer)
	TokenAbstract
	TokenAssert
	TokenBoolean
	TokenBreak
	TokenByte
	TokenCase
	TokenCatch
	TokenChar
	TokenClass
	TokenContinue
	TokenDefault
	TokenDo
	TokenDouble
	TokenElse
	TokenEnum
	TokenExtends
	TokenFinal
	TokenFinally
	TokenFloat
	TokenFor
	TokenGoto
	TokenIf
	TokenImplements
	TokenImport
	TokenInstanceof
	TokenInt
	TokenInterface
	TokenLong
	TokenNative
	TokenNew
	TokenNonSealed
	TokenPackage
	TokenPermits
	TokenPrivate
	TokenProtected
	TokenPublic
	TokenRecord
	TokenReturn
	TokenSealed
	TokenShort
	TokenStatic
	TokenStrictfp
	TokenSuper
	TokenSwitch
	TokenSynchronized
	TokenThis
	TokenThrow
	TokenThrows
	TokenTransient
	TokenTry
	TokenVoid
	TokenVolatile
	TokenWhen
	TokenWhile
	TokenYield

	// Kotlin-grammar keywords
	TokenBy
	TokenCompanion
	TokenConst
	TokenConstructor
	TokenData
	TokenFun
	TokenInit
	TokenInner
	TokenInternal
	TokenObject
	TokenOpen
	TokenTypealias
	TokenVal
	TokenVar

	// Operators and punctuation
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenLBracket
	TokenRBracket
	TokenSemicolon
	TokenComma
	TokenDot
	TokenEllipsis
	TokenAt
	TokenColonColon

	TokenAssign
	TokenEQ
	TokenNE
	TokenLT
	TokenLE
	TokenGT
	TokenGE
	TokenAnd
	TokenOr
	TokenNot
	TokenBitAnd
	TokenBitOr
	TokenBitXor
	TokenBitNot
	TokenShl
	TokenShr
	TokenUShr
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenPercent
	TokenIncrement
	TokenDecrement
	TokenQuestion
	TokenColon
	TokenArrow
	TokenPlusAssign
	TokenMinusAssign
	TokenStarAssign
	TokenSlashAssign
	TokenPercentAssign
	TokenAndAssign
	TokenOrAssign
	TokenXorAssign
	TokenShlAssign
	TokenShrAssign
	TokenUShrAssign

	// Kotlin-grammar operators
	TokenElvis
	TokenSafeDot
	TokenRange
	TokenNotNull

	tokenKindCount
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:           "EOF",
	TokenInvalid:       "Invalid",
	TokenWhitespace:    "Whitespace",
	TokenComment:       "Comment",
	TokenLineComment:   "LineComment",
	TokenIdent:         "Identifier",
	TokenNumInt:        "IntLiteral",
	TokenNumLong:       "LongLiteral",
	TokenNumFloat:      "FloatLiteral",
	TokenNumDouble:     "DoubleLiteral",
	TokenCharLiteral:   "CharLiteral",
	TokenStringLiteral: "StringLiteral",
	TokenTrue:          "true",
	TokenFalse:         "false",
	TokenNull:          "null",
	TokenAbstract:      "abstract",
	TokenAssert:        "assert",
	TokenBoolean:       "boolean",
	TokenBreak:         "break",
	TokenByte:          "byte",
	TokenCase:          "case",
	TokenCatch:         "catch",
	TokenChar:          "char",
	TokenClass:         "class",
	TokenContinue:      "continue",
	TokenDefault:       "default",
	TokenDo:            "do",
	TokenDouble:        "double",
	TokenElse:          "else",
	TokenEnum:          "enum",
	TokenExtends:       "extends",
	TokenFinal:         "final",
	TokenFinally:       "finally",
	TokenFloat:         "float",
	TokenFor:           "for",
	TokenGoto:          "goto",
	TokenIf:            "if",
	TokenImplements:    "implements",
	TokenImport:        "import",
	TokenInstanceof:    "instanceof",
	TokenInt:           "int",
	TokenInterface:     "interface",
	TokenLong:          "long",
	TokenNative:        "native",
	TokenNew:           "new",
	TokenNonSealed:     "non-sealed",
	TokenPackage:       "package",
	TokenPermits:       "permits",
	TokenPrivate:       "private",
	TokenProtected:     "protected",
	TokenPublic:        "public",
	TokenRecord:        "record",
	TokenReturn:        "return",
	TokenSealed:        "sealed",
	TokenShort:         "short",
	TokenStatic:        "static",
	TokenStrictfp:      "strictfp",
	TokenSuper:         "super",
	TokenSwitch:        "switch",
	TokenSynchronized:  "synchronized",
	TokenThis:          "this",
	TokenThrow:         "throw",
	TokenThrows:        "throws",
	TokenTransient:     "transient",
	TokenTry:           "try",
	TokenVoid:          "void",
	TokenVolatile:      "volatile",
	TokenWhen:          "when",
	TokenWhile:         "while",
	TokenYield:         "yield",
	TokenBy:            "by",
	TokenCompanion:     "companion",
	TokenConst:         "const",
	TokenConstructor:   "constructor",
	TokenData:          "data",
	TokenFun:           "fun",
	TokenInit:          "init",
	TokenInner:         "inner",
	TokenInternal:      "internal",
	TokenObject:        "object",
	TokenOpen:          "open",
	TokenTypealias:     "typealias",
	TokenVal:           "val",
	TokenVar:           "var",
	TokenLParen:        "(",
	TokenRParen:        ")",
	TokenLBrace:        "{",
	TokenRBrace:        "}",
	TokenLBracket:      "[",
	TokenRBracket:      "]",
	TokenSemicolon:     ";",
	TokenComma:         ",",
	TokenDot:           ".",
	TokenEllipsis:      "...",
	TokenAt:            "@",
	TokenColonColon:    "::",
	TokenAssign:        "=",
	TokenEQ:            "==",
	TokenNE:            "!=",
	TokenLT:            "<",
	TokenLE:            "<=",
	TokenGT:            ">",
	TokenGE:            ">=",
	TokenAnd:           "&&",
	TokenOr:            "||",
	TokenNot:           "!",
	TokenBitAnd:        "&",
	TokenBitOr:         "|",
	TokenBitXor:        "^",
	TokenBitNot:        "~",
	TokenShl:           "<<",
	TokenShr:           ">>",
	TokenUShr:          ">>>",
	TokenPlus:          "+",
	TokenMinus:         "-",
	TokenStar:          "*",
	TokenSlash:         "/",
	TokenPercent:       "%",
	TokenIncrement:     "++",
	TokenDecrement:     "--",
	TokenQuestion:      "?",
	TokenColon:         ":",
	TokenArrow:         "->",
	TokenPlusAssign:    "+=",
	TokenMinusAssign:   "-=",
	TokenStarAssign:    "*=",
	TokenSlashAssign:   "/=",
	TokenPercentAssign: "%=",
	TokenAndAssign:     "&=",
	TokenOrAssign:      "|=",
	TokenXorAssign:     "^=",
	TokenShlAssign:     "<<=",
	TokenShrAssign:     ">>=",
	TokenUShrAssign:    ">>>=",
	TokenElvis:         "?:",
	TokenSafeDot:       "?.",
	TokenRange:         "..",
	TokenNotNull:       "!!",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Token is an immutable lexer output value. HiddenBefore carries the
// comment trivia immediately preceding the token, oldest first.
type Token struct {
	Kind         TokenKind
	Span         Span
	Literal      string
	HiddenBefore []Token
}

func (t Token) Line() int      { return t.Span.Start.Line }
func (t Token) Column() int    { return t.Span.Start.Column }
func (t Token) EndLine() int   { return t.Span.End.Line }
func (t Token) EndColumn() int { return t.Span.End.Column }

// sameToken reports whether two tokens denote the same lexed token.
// Trivia is ignored so that pushback verification is not defeated by
// callers that strip or copy hidden tokens.
func sameToken(a, b Token) bool {
	return a.Kind == b.Kind && a.Span == b.Span && a.Literal == b.Literal
}
