// Package parser provides an error-tolerant, callback-driven parsing
// core for two curly-brace grammars. It produces no syntax tree:
// consumers implement Callbacks and receive ordered begin/end/got
// events as the source is walked, which is enough to maintain an
// external structure model incrementally.
package parser

import (
	"fmt"
	"io"
)

// Behavior is the grammar-variant contract. Both implementations drive
// the same TokenStream and Callbacks; entry points other than ParseCU
// parse a single construct and leave the stream positioned after it.
type Behavior interface {
	// ParseCU parses a whole compilation unit, consuming every token
	// up to and including EOF, and fires FinishedCU exactly once.
	ParseCU()

	// ParseCUPart parses one top-of-file construct given the current
	// compilation unit state and returns the new state.
	ParseCUPart(state int) int

	ParseTypeDef()

	// ParseStatement returns the last token of the statement, usually
	// its ';' or '}' terminator, or nil if an error was encountered.
	ParseStatement() *Token

	ParseExpression()

	// ParseTypeSpec reports whether a valid type specification was
	// consumed. On failure the consumed tokens are pushed back.
	ParseTypeSpec(processArray bool) bool

	ParseClassBody()
	ParseMethodParamsBody()

	// ParseVariableDeclarations returns the terminating ';', or nil if
	// an error was encountered.
	ParseVariableDeclarations() *Token

	ParseImportStatement()

	// ParseTypeBody parses a brace-delimited type body of the given
	// kind; tok is the opening brace. It returns the token after the
	// body, not yet consumed by the caller.
	ParseTypeBody(tdType int, tok Token) Token
}

// SourceParser binds a token stream, a grammar behavior and a consumer
// together. A SourceParser parses one input; it is not reusable and
// not safe for concurrent use.
type SourceParser struct {
	stream   *TokenStream
	cb       Callbacks
	grammar  Grammar
	behavior Behavior

	// lastConsumed is the most recent token handed out by next(),
	// unchanged by pushback. Error positions are derived from it.
	lastConsumed Token
}

type Option func(*config)

type config struct {
	file        string
	startLine   int
	startColumn int
	startOffset int
	comments    bool
	textBlocks  bool
}

// WithFile records the file name carried in token positions.
func WithFile(name string) Option {
	return func(c *config) {
		c.file = name
	}
}

// WithStart positions the parse inside a larger file so that spans
// come out in whole-file coordinates. Line and column are 1-based.
func WithStart(line, column, offset int) Option {
	return func(c *config) {
		c.startLine = line
		c.startColumn = column
		c.startOffset = offset
	}
}

// WithoutComments drops comment trivia: no GotComment notifications,
// no HiddenBefore attachment.
func WithoutComments() Option {
	return func(c *config) {
		c.comments = false
	}
}

// WithoutTextBlocks makes triple quotes lex as ordinary string
// delimiters.
func WithoutTextBlocks() Option {
	return func(c *config) {
		c.textBlocks = false
	}
}

// New reads all of r and returns a parser for the given grammar,
// reporting to cb.
func New(r io.Reader, grammar Grammar, cb Callbacks, opts ...Option) (*SourceParser, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}
	return NewFromBytes(src, grammar, cb, opts...), nil
}

// NewFromString is a convenience wrapper around NewFromBytes.
func NewFromString(src string, grammar Grammar, cb Callbacks, opts ...Option) *SourceParser {
	return NewFromBytes([]byte(src), grammar, cb, opts...)
}

func NewFromBytes(src []byte, grammar Grammar, cb Callbacks, opts ...Option) *SourceParser {
	cfg := config{
		startLine:   1,
		startColumn: 1,
		comments:    true,
		textBlocks:  true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	lexOpts := []LexerOption{
		WithLexerFile(cfg.file),
		WithLexerStart(cfg.startLine, cfg.startColumn, cfg.startOffset),
	}
	if !cfg.textBlocks {
		lexOpts = append(lexOpts, WithPlainStrings())
	}
	lexer := NewLexer(src, grammar, lexOpts...)

	var streamOpts []StreamOption
	if cfg.comments {
		streamOpts = append(streamOpts, WithCommentHook(cb.GotComment))
	} else {
		streamOpts = append(streamOpts, DiscardComments())
	}
	stream := NewTokenStream(lexer, streamOpts...)

	p := &SourceParser{
		stream:  stream,
		cb:      cb,
		grammar: grammar,
	}
	switch grammar {
	case Kotlin:
		p.behavior = &kotlinParser{p: p}
	default:
		p.behavior = &javaParser{p: p}
	}
	return p
}

// Grammar returns the grammar variant this parser was built for.
func (p *SourceParser) Grammar() Grammar {
	return p.grammar
}

func (p *SourceParser) ParseCU()                    { p.behavior.ParseCU() }
func (p *SourceParser) ParseCUPart(state int) int   { return p.behavior.ParseCUPart(state) }
func (p *SourceParser) ParseTypeDef()               { p.behavior.ParseTypeDef() }
func (p *SourceParser) ParseStatement() *Token      { return p.behavior.ParseStatement() }
func (p *SourceParser) ParseExpression()            { p.behavior.ParseExpression() }
func (p *SourceParser) ParseClassBody()             { p.behavior.ParseClassBody() }
func (p *SourceParser) ParseMethodParamsBody()      { p.behavior.ParseMethodParamsBody() }
func (p *SourceParser) ParseImportStatement()       { p.behavior.ParseImportStatement() }
func (p *SourceParser) ParseTypeSpec(processArray bool) bool {
	return p.behavior.ParseTypeSpec(processArray)
}
func (p *SourceParser) ParseVariableDeclarations() *Token {
	return p.behavior.ParseVariableDeclarations()
}
func (p *SourceParser) ParseTypeBody(tdType int, tok Token) Token {
	return p.behavior.ParseTypeBody(tdType, tok)
}

// next consumes and returns the next token.
func (p *SourceParser) next() Token {
	tok := p.stream.Next()
	p.lastConsumed = tok
	return tok
}

func (p *SourceParser) la(n int) Token {
	return p.stream.LA(n)
}

// pushBack returns tok to the stream. lastConsumed is deliberately not
// rewound; error positions after a pushback refer to the furthest
// point reached.
func (p *SourceParser) pushBack(tok Token) {
	p.stream.PushBack(tok)
}

// pushBackAll returns a speculative token run to the stream, newest
// first.
func (p *SourceParser) pushBackAll(toks []Token) {
	for i := len(toks) - 1; i >= 0; i-- {
		p.stream.PushBack(toks[i])
	}
}

// errorAt reports a diagnostic covering tok.
func (p *SourceParser) errorAt(msg string, tok Token) {
	p.cb.Error(msg, tok.Line(), tok.Column(), tok.EndLine(), tok.EndColumn())
}

// errorBefore reports a zero-width diagnostic at the start of tok.
func (p *SourceParser) errorBefore(msg string, tok Token) {
	p.cb.Error(msg, tok.Line(), tok.Column(), tok.Line(), tok.Column())
}

// errorBehind reports a zero-width diagnostic just past the end of tok.
func (p *SourceParser) errorBehind(msg string, tok Token) {
	p.cb.Error(msg, tok.EndLine(), tok.EndColumn(), tok.EndLine(), tok.EndColumn())
}
