package parser

import (
	"testing"
)

func newStream(src string, opts ...StreamOption) *TokenStream {
	return NewTokenStream(NewLexer([]byte(src), Java), opts...)
}

func TestStreamNext(t *testing.T) {
	s := newStream("a b c")

	want := []string{"a", "b", "c"}
	for i, lit := range want {
		tok := s.Next()
		if tok.Kind != TokenIdent || tok.Literal != lit {
			t.Errorf("token %d = %v %q, want Ident %q", i, tok.Kind, tok.Literal, lit)
		}
	}
	if tok := s.Next(); tok.Kind != TokenEOF {
		t.Errorf("after input: Kind = %v, want EOF", tok.Kind)
	}
	// EOF repeats.
	if tok := s.Next(); tok.Kind != TokenEOF {
		t.Errorf("second EOF read: Kind = %v, want EOF", tok.Kind)
	}
}

func TestStreamLA(t *testing.T) {
	s := newStream("a b c d")

	if tok := s.LA(3); tok.Literal != "c" {
		t.Errorf("LA(3) = %q, want %q", tok.Literal, "c")
	}
	if tok := s.LA(1); tok.Literal != "a" {
		t.Errorf("LA(1) = %q, want %q", tok.Literal, "a")
	}
	// Lookahead must not consume.
	if tok := s.Next(); tok.Literal != "a" {
		t.Errorf("Next after LA = %q, want %q", tok.Literal, "a")
	}
	if tok := s.LA(1); tok.Literal != "b" {
		t.Errorf("LA(1) after Next = %q, want %q", tok.Literal, "b")
	}
	if tok := s.LA(10); tok.Kind != TokenEOF {
		t.Errorf("LA(10) = %v, want EOF", tok.Kind)
	}
}

func TestStreamPushBack(t *testing.T) {
	s := newStream("a b c")

	a := s.Next()
	b := s.Next()
	s.PushBack(b)
	s.PushBack(a)

	if tok := s.Next(); tok.Literal != "a" {
		t.Errorf("first re-read = %q, want %q", tok.Literal, "a")
	}
	if tok := s.Next(); tok.Literal != "b" {
		t.Errorf("second re-read = %q, want %q", tok.Literal, "b")
	}
	if tok := s.Next(); tok.Literal != "c" {
		t.Errorf("third read = %q, want %q", tok.Literal, "c")
	}
}

func TestStreamPushBackOutOfOrder(t *testing.T) {
	s := newStream("a b")

	a := s.Next()
	s.Next()

	defer func() {
		if recover() == nil {
			t.Error("pushback out of stack order did not panic")
		}
	}()
	s.PushBack(a)
}

func TestStreamPushBackNeverIssued(t *testing.T) {
	s := newStream("a")

	defer func() {
		if recover() == nil {
			t.Error("pushback with no consumed tokens did not panic")
		}
	}()
	s.PushBack(Token{Kind: TokenIdent, Literal: "a"})
}

func TestStreamCommentAttachment(t *testing.T) {
	s := newStream("/* doc */ class // trailing\nFoo")

	tok := s.Next()
	if tok.Kind != TokenClass {
		t.Fatalf("Kind = %v, want %v", tok.Kind, TokenClass)
	}
	if len(tok.HiddenBefore) != 1 || tok.HiddenBefore[0].Kind != TokenComment {
		t.Fatalf("HiddenBefore = %v, want one block comment", tok.HiddenBefore)
	}
	if tok.HiddenBefore[0].Literal != "/* doc */" {
		t.Errorf("comment literal = %q, want %q", tok.HiddenBefore[0].Literal, "/* doc */")
	}

	tok = s.Next()
	if tok.Kind != TokenIdent || tok.Literal != "Foo" {
		t.Fatalf("token = %v %q, want Ident Foo", tok.Kind, tok.Literal)
	}
	if len(tok.HiddenBefore) != 1 || tok.HiddenBefore[0].Kind != TokenLineComment {
		t.Errorf("HiddenBefore = %v, want one line comment", tok.HiddenBefore)
	}
}

func TestStreamCommentHook(t *testing.T) {
	var comments []string
	s := newStream("/* a */ x /* b */ y",
		WithCommentHook(func(tok Token) { comments = append(comments, tok.Literal) }))

	for s.Next().Kind != TokenEOF {
	}

	want := []string{"/* a */", "/* b */"}
	if len(comments) != len(want) {
		t.Fatalf("got %d comments, want %d", len(comments), len(want))
	}
	for i := range want {
		if comments[i] != want[i] {
			t.Errorf("comment %d = %q, want %q", i, comments[i], want[i])
		}
	}
}

func TestStreamDiscardComments(t *testing.T) {
	s := newStream("/* doc */ class", DiscardComments())

	tok := s.Next()
	if tok.Kind != TokenClass {
		t.Fatalf("Kind = %v, want %v", tok.Kind, TokenClass)
	}
	if len(tok.HiddenBefore) != 0 {
		t.Errorf("HiddenBefore = %v, want none", tok.HiddenBefore)
	}
}

// Pushback must preserve hidden trivia so a re-read token is
// indistinguishable from the first read.
func TestStreamPushBackKeepsTrivia(t *testing.T) {
	s := newStream("/* doc */ class")

	tok := s.Next()
	s.PushBack(tok)
	tok = s.Next()
	if len(tok.HiddenBefore) != 1 {
		t.Errorf("HiddenBefore lost across pushback: %v", tok.HiddenBefore)
	}
}
