package parser

import "fmt"

// TokenStream feeds the parser from a Lexer, buffering lookahead and
// honoring last-in-first-out pushback. Whitespace never reaches the
// parser; comments are attached to the following token as hidden
// trivia and optionally surfaced through the comment hook.
type TokenStream struct {
	lexer *Lexer

	// pending holds tokens that have been lexed (or pushed back) but
	// not yet issued. pending[0] is the next token.
	pending []Token

	// issued is the history of tokens handed to the parser, used to
	// verify that pushback follows stack discipline.
	issued []Token

	keepComments bool
	onComment    func(Token)
}

type StreamOption func(*TokenStream)

// WithCommentHook registers a callback invoked once per comment token,
// in source order, as the token following it is lexed.
func WithCommentHook(fn func(Token)) StreamOption {
	return func(s *TokenStream) {
		s.onComment = fn
	}
}

// DiscardComments drops comment trivia entirely instead of attaching
// it to the following token.
func DiscardComments() StreamOption {
	return func(s *TokenStream) {
		s.keepComments = false
	}
}

func NewTokenStream(lexer *Lexer, opts ...StreamOption) *TokenStream {
	s := &TokenStream{
		lexer:        lexer,
		keepComments: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// lexOne pulls the next non-whitespace token from the lexer, folding
// any comments into its hidden trivia.
func (s *TokenStream) lexOne() Token {
	var hidden []Token
	for {
		tok := s.lexer.NextToken()
		switch tok.Kind {
		case TokenWhitespace:
			continue
		case TokenComment, TokenLineComment:
			if s.onComment != nil {
				s.onComment(tok)
			}
			if s.keepComments {
				hidden = append(hidden, tok)
			}
			continue
		}
		tok.HiddenBefore = hidden
		return tok
	}
}

// Next returns the next token. At end of input it returns EOF tokens
// indefinitely.
func (s *TokenStream) Next() Token {
	var tok Token
	if len(s.pending) > 0 {
		tok = s.pending[0]
		s.pending = s.pending[1:]
	} else {
		tok = s.lexOne()
	}
	s.issued = append(s.issued, tok)
	return tok
}

// LA returns the nth token of lookahead without consuming it. LA(1) is
// the token Next would return.
func (s *TokenStream) LA(n int) Token {
	if n < 1 {
		panic(fmt.Sprintf("parser: LA(%d) out of range", n))
	}
	for len(s.pending) < n {
		s.pending = append(s.pending, s.lexOne())
	}
	return s.pending[n-1]
}

// PushBack returns tok to the front of the stream. Tokens must be
// pushed back in reverse order of consumption; returning a token that
// was never issued, or out of order, is a programmer error.
func (s *TokenStream) PushBack(tok Token) {
	if len(s.issued) == 0 {
		panic("parser: pushback with no consumed tokens")
	}
	last := s.issued[len(s.issued)-1]
	if !sameToken(last, tok) {
		panic(fmt.Sprintf("parser: pushback out of order: got %s %q at %d:%d, expected %s %q",
			tok.Kind, tok.Literal, tok.Line(), tok.Column(), last.Kind, last.Literal))
	}
	s.issued = s.issued[:len(s.issued)-1]
	s.pending = append([]Token{last}, s.pending...)
}
