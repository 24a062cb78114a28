package parser

// Grammar selects which of the two supported languages a lexer and
// parser instance recognizes. The set is closed; selection happens once
// at construction.
type Grammar int

const (
	Java Grammar = iota
	Kotlin
)

func (g Grammar) String() string {
	if g == Kotlin {
		return "kotlin"
	}
	return "java"
}

// Keywords maps an identifier spelling to its reserved-word kind. The
// tables are built once and never mutated.
type Keywords map[string]TokenKind

func (k Keywords) Lookup(ident string) TokenKind {
	if kind, ok := k[ident]; ok {
		return kind
	}
	return TokenIdent
}

func KeywordsFor(g Grammar) Keywords {
	if g == Kotlin {
		return kotlinKeywords
	}
	return javaKeywords
}

var javaKeywords = Keywords{
	"abstract":     TokenAbstract,
	"assert":       TokenAssert,
	"boolean":      TokenBoolean,
	"break":        TokenBreak,
	"byte":         TokenByte,
	"case":         TokenCase,
	"catch":        TokenCatch,
	"char":         TokenChar,
	"class":        TokenClass,
	"continue":     TokenContinue,
	"default":      TokenDefault,
	"do":           TokenDo,
	"double":       TokenDouble,
	"else":         TokenElse,
	"enum":         TokenEnum,
	"extends":      TokenExtends,
	"false":        TokenFalse,
	"final":        TokenFinal,
	"finally":      TokenFinally,
	"float":        TokenFloat,
	"for":          TokenFor,
	"goto":         TokenGoto,
	"if":           TokenIf,
	"implements":   TokenImplements,
	"import":       TokenImport,
	"instanceof":   TokenInstanceof,
	"int":          TokenInt,
	"interface":    TokenInterface,
	"long":         TokenLong,
	"native":       TokenNative,
	"new":          TokenNew,
	"non-sealed":   TokenNonSealed,
	"null":         TokenNull,
	"package":      TokenPackage,
	"permits":      TokenPermits,
	"private":      TokenPrivate,
	"protected":    TokenProtected,
	"public":       TokenPublic,
	"record":       TokenRecord,
	"return":       TokenReturn,
	"sealed":       TokenSealed,
	"short":        TokenShort,
	"static":       TokenStatic,
	"strictfp":     TokenStrictfp,
	"super":        TokenSuper,
	"switch":       TokenSwitch,
	"synchronized": TokenSynchronized,
	"this":         TokenThis,
	"throw":        TokenThrow,
	"throws":       TokenThrows,
	"transient":    TokenTransient,
	"true":         TokenTrue,
	"try":          TokenTry,
	"void":         TokenVoid,
	"volatile":     TokenVolatile,
	"when":         TokenWhen,
	"while":        TokenWhile,
	"yield":        TokenYield,
}

var kotlinKeywords = Keywords{
	"package":     TokenPackage,
	"import":      TokenImport,
	"class":       TokenClass,
	"interface":   TokenInterface,
	"fun":         TokenFun,
	"val":         TokenVal,
	"var":         TokenVar,
	"const":       TokenConst,
	"constructor": TokenConstructor,
	"by":          TokenBy,
	"companion":   TokenCompanion,
	"init":        TokenInit,
	"object":      TokenObject,
	"typealias":   TokenTypealias,
	"data":        TokenData,
	"sealed":      TokenSealed,
	"inner":       TokenInner,
	"enum":        TokenEnum,
	"open":        TokenOpen,

	"if":       TokenIf,
	"else":     TokenElse,
	"while":    TokenWhile,
	"do":       TokenDo,
	"for":      TokenFor,
	"when":     TokenWhen,
	"break":    TokenBreak,
	"continue": TokenContinue,
	"return":   TokenReturn,
	"throw":    TokenThrow,
	"try":      TokenTry,
	"catch":    TokenCatch,
	"finally":  TokenFinally,

	"true":  TokenTrue,
	"false": TokenFalse,
	"null":  TokenNull,
	"this":  TokenThis,
	"super": TokenSuper,

	"public":    TokenPublic,
	"private":   TokenPrivate,
	"protected": TokenProtected,
	"internal":  TokenInternal,
	"final":     TokenFinal,
	"abstract":  TokenAbstract,

	// Builtin value types lex as the primitive kinds so the parsers can
	// share the primitive-type predicates across both grammars.
	"Int":     TokenInt,
	"Long":    TokenLong,
	"Short":   TokenShort,
	"Byte":    TokenByte,
	"Double":  TokenDouble,
	"Float":   TokenFloat,
	"Boolean": TokenBoolean,
	"Char":    TokenChar,
}
