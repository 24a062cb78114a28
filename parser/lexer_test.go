package parser

import (
	"testing"
)

func lexAll(t *testing.T, src string, grammar Grammar) []Token {
	t.Helper()
	lexer := NewLexer([]byte(src), grammar)
	var toks []Token
	for {
		tok := lexer.NextToken()
		if tok.Kind == TokenEOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func lexSignificant(t *testing.T, src string, grammar Grammar) []Token {
	t.Helper()
	var toks []Token
	for _, tok := range lexAll(t, src, grammar) {
		switch tok.Kind {
		case TokenWhitespace, TokenComment, TokenLineComment:
			continue
		}
		toks = append(toks, tok)
	}
	return toks
}

func TestLexerJavaKeywords(t *testing.T) {
	tests := []struct {
		input string
		kind  TokenKind
	}{
		{"class", TokenClass},
		{"interface", TokenInterface},
		{"enum", TokenEnum},
		{"record", TokenRecord},
		{"sealed", TokenSealed},
		{"non-sealed", TokenNonSealed},
		{"permits", TokenPermits},
		{"instanceof", TokenInstanceof},
		{"synchronized", TokenSynchronized},
		{"yield", TokenYield},
		{"when", TokenWhen},
		{"true", TokenTrue},
		{"false", TokenFalse},
		{"null", TokenNull},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lexer := NewLexer([]byte(tt.input), Java)
			tok := lexer.NextToken()
			if tok.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tok.Kind, tt.kind)
			}
			if tok.Literal != tt.input {
				t.Errorf("Literal = %q, want %q", tok.Literal, tt.input)
			}
		})
	}
}

func TestLexerKotlinKeywords(t *testing.T) {
	tests := []struct {
		input string
		kind  TokenKind
	}{
		{"fun", TokenFun},
		{"val", TokenVal},
		{"var", TokenVar},
		{"object", TokenObject},
		{"companion", TokenCompanion},
		{"init", TokenInit},
		{"open", TokenOpen},
		{"data", TokenData},
		{"internal", TokenInternal},
		{"typealias", TokenTypealias},
		{"when", TokenWhen},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lexer := NewLexer([]byte(tt.input), Kotlin)
			tok := lexer.NextToken()
			if tok.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tok.Kind, tt.kind)
			}
		})
	}
}

// Keywords of one grammar lex as identifiers under the other.
func TestLexerGrammarSpecificKeywords(t *testing.T) {
	tests := []struct {
		input   string
		grammar Grammar
		kind    TokenKind
	}{
		{"fun", Java, TokenIdent},
		{"val", Java, TokenIdent},
		{"companion", Java, TokenIdent},
		{"instanceof", Kotlin, TokenIdent},
		{"synchronized", Kotlin, TokenIdent},
		{"implements", Kotlin, TokenIdent},
		// Contextual in Java source, identifier in this token model.
		{"var", Java, TokenIdent},
	}

	for _, tt := range tests {
		t.Run(tt.input+"/"+tt.grammar.String(), func(t *testing.T) {
			lexer := NewLexer([]byte(tt.input), tt.grammar)
			tok := lexer.NextToken()
			if tok.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tok.Kind, tt.kind)
			}
		})
	}
}

func TestLexerOperators(t *testing.T) {
	tests := []struct {
		input   string
		grammar Grammar
		kinds   []TokenKind
	}{
		{">>", Java, []TokenKind{TokenShr}},
		{">>>", Java, []TokenKind{TokenUShr}},
		{">>=", Java, []TokenKind{TokenShrAssign}},
		{">>>=", Java, []TokenKind{TokenUShrAssign}},
		{"->", Java, []TokenKind{TokenArrow}},
		{"::", Java, []TokenKind{TokenColonColon}},
		{"...", Java, []TokenKind{TokenEllipsis}},
		{"a>=b", Java, []TokenKind{TokenIdent, TokenGE, TokenIdent}},
		{"a> >b", Java, []TokenKind{TokenIdent, TokenGT, TokenGT, TokenIdent}},
		{"?:", Kotlin, []TokenKind{TokenElvis}},
		{"?.", Kotlin, []TokenKind{TokenSafeDot}},
		{"..", Kotlin, []TokenKind{TokenRange}},
		{"!!", Kotlin, []TokenKind{TokenNotNull}},
		{"x!!.y", Kotlin, []TokenKind{TokenIdent, TokenNotNull, TokenDot, TokenIdent}},
		{"a ?: b", Kotlin, []TokenKind{TokenIdent, TokenElvis, TokenIdent}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks := lexSignificant(t, tt.input, tt.grammar)
			if len(toks) != len(tt.kinds) {
				t.Fatalf("got %d tokens, want %d", len(toks), len(tt.kinds))
			}
			for i, kind := range tt.kinds {
				if toks[i].Kind != kind {
					t.Errorf("token %d: Kind = %v, want %v", i, toks[i].Kind, kind)
				}
			}
		})
	}
}

func TestLexerNumbers(t *testing.T) {
	tests := []struct {
		input string
		kind  TokenKind
	}{
		{"0", TokenNumInt},
		{"42", TokenNumInt},
		{"1_000_000", TokenNumInt},
		{"42L", TokenNumLong},
		{"0x1F", TokenNumInt},
		{"0xCAFEL", TokenNumLong},
		{"0b1010", TokenNumInt},
		{"1.5", TokenNumDouble},
		{"1.5d", TokenNumDouble},
		{"1.5f", TokenNumFloat},
		{"3f", TokenNumFloat},
		{"1e10", TokenNumDouble},
		{"1.5e-3", TokenNumDouble},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lexer := NewLexer([]byte(tt.input), Java)
			tok := lexer.NextToken()
			if tok.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tok.Kind, tt.kind)
			}
			if tok.Literal != tt.input {
				t.Errorf("Literal = %q, want %q", tok.Literal, tt.input)
			}
		})
	}
}

func TestLexerStringsAndChars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  TokenKind
	}{
		{"simple string", `"hello"`, TokenStringLiteral},
		{"escaped quote", `"a\"b"`, TokenStringLiteral},
		{"escaped backslash", `"a\\"`, TokenStringLiteral},
		{"char", `'x'`, TokenCharLiteral},
		{"escaped char", `'\n'`, TokenCharLiteral},
		{"quote char", `'\''`, TokenCharLiteral},
		{"unterminated string", `"abc`, TokenInvalid},
		{"newline in string", "\"abc\ndef\"", TokenInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lexer := NewLexer([]byte(tt.input), Java)
			tok := lexer.NextToken()
			if tok.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tok.Kind, tt.kind)
			}
		})
	}
}

func TestLexerTextBlock(t *testing.T) {
	src := "\"\"\"\nline one\nline \"two\"\n\"\"\""

	lexer := NewLexer([]byte(src), Java)
	tok := lexer.NextToken()
	if tok.Kind != TokenStringLiteral {
		t.Fatalf("Kind = %v, want %v", tok.Kind, TokenStringLiteral)
	}
	if tok.Line() != 1 || tok.EndLine() != 4 {
		t.Errorf("span lines %d-%d, want 1-4", tok.Line(), tok.EndLine())
	}

	// With text blocks disabled the first two quotes form an empty
	// string literal.
	lexer = NewLexer([]byte(src), Java, WithPlainStrings())
	tok = lexer.NextToken()
	if tok.Kind != TokenStringLiteral {
		t.Fatalf("plain mode: Kind = %v, want %v", tok.Kind, TokenStringLiteral)
	}
	if tok.Literal != `""` {
		t.Errorf("plain mode: Literal = %q, want %q", tok.Literal, `""`)
	}
}

func TestLexerComments(t *testing.T) {
	toks := lexAll(t, "a // line\nb /* block */ c", Java)

	var kinds []TokenKind
	for _, tok := range toks {
		if tok.Kind != TokenWhitespace {
			kinds = append(kinds, tok.Kind)
		}
	}
	want := []TokenKind{TokenIdent, TokenLineComment, TokenIdent, TokenComment, TokenIdent}
	if len(kinds) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(kinds), len(want))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d: Kind = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestLexerPositions(t *testing.T) {
	src := "class Foo {\n  int x;\n}"
	toks := lexSignificant(t, src, Java)

	tests := []struct {
		idx            int
		line, col      int
		endLine, endCol int
	}{
		{0, 1, 1, 1, 6},  // class
		{1, 1, 7, 1, 10}, // Foo
		{2, 1, 11, 1, 12}, // {
		{3, 2, 3, 2, 6},  // int
		{4, 2, 7, 2, 8},  // x
		{5, 2, 8, 2, 9},  // ;
		{6, 3, 1, 3, 2},  // }
	}

	for _, tt := range tests {
		tok := toks[tt.idx]
		if tok.Line() != tt.line || tok.Column() != tt.col {
			t.Errorf("token %d %q: start %d:%d, want %d:%d",
				tt.idx, tok.Literal, tok.Line(), tok.Column(), tt.line, tt.col)
		}
		if tok.EndLine() != tt.endLine || tok.EndColumn() != tt.endCol {
			t.Errorf("token %d %q: end %d:%d, want %d:%d",
				tt.idx, tok.Literal, tok.EndLine(), tok.EndColumn(), tt.endLine, tt.endCol)
		}
	}
}

func TestLexerStartOffset(t *testing.T) {
	whole := "xxxxx int y;"
	lexer := NewLexer([]byte(whole), Java, WithLexerStart(3, 7, 6))

	tok := lexer.NextToken()
	if tok.Kind != TokenInt {
		t.Fatalf("Kind = %v, want %v", tok.Kind, TokenInt)
	}
	if tok.Line() != 3 || tok.Column() != 7 {
		t.Errorf("start = %d:%d, want 3:7", tok.Line(), tok.Column())
	}
}

func TestLexerUnicodeIdentifiers(t *testing.T) {
	toks := lexSignificant(t, "würfel = 1", Java)
	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3", len(toks))
	}
	if toks[0].Kind != TokenIdent || toks[0].Literal != "würfel" {
		t.Errorf("token 0 = %v %q, want Ident \"würfel\"", toks[0].Kind, toks[0].Literal)
	}
}
