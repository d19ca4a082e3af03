/*
Package parser - parser.go

Parser is a recursive-descent parser with precedence climbing over the
expression grammar. It keeps the complete token stream in memory for the
two bounded-lookahead ambiguities in the grammar: lambda-vs-parenthesised-
expression is decided by scanning ahead to the matching `)` without
moving the position, and the three-way shape of `for` saves a position
index and rewinds to it.
*/
package parser

import (
	"fmt"

	"github.com/voltlang/volt/lexer"
)

// Error is a parse error: a grammar violation, carrying its source
// position and a human-readable cause.
type Error struct {
	Line, Column int
	Msg          string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d:%d] Parse error: %s", e.Line, e.Column, e.Msg)
}

// Parser walks a fixed token buffer produced by the lexer.
type Parser struct {
	tokens []lexer.Token
	pos    int
	errors []error
}

// New lexes source completely and returns a Parser positioned at the
// first token. A lex error is reported as the parser's sole error.
func New(source string) *Parser {
	toks, err := lexer.New(source).Tokenize()
	if err != nil {
		return &Parser{tokens: []lexer.Token{{Type: lexer.EOF}}, errors: []error{err}}
	}
	return &Parser{tokens: toks, pos: 0}
}

func (p *Parser) HasErrors() bool    { return len(p.errors) > 0 }
func (p *Parser) Errors() []error    { return p.errors }
func (p *Parser) errorf(tok lexer.Token, format string, args ...interface{}) {
	p.errors = append(p.errors, &Error{tok.Line, tok.Column, fmt.Sprintf(format, args...)})
}

func (p *Parser) cur() lexer.Token { return p.tokens[p.pos] }
func (p *Parser) peekAt(offset int) lexer.Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}
func (p *Parser) atEOF() bool { return p.cur().Type == lexer.EOF }

func (p *Parser) advance() lexer.Token {
	tok := p.cur()
	if tok.Type != lexer.EOF {
		p.pos++
	}
	return tok
}

// skipNewlines consumes any run of NEWLINE tokens; newlines are freely
// skippable between statements and inside bracketed contexts.
func (p *Parser) skipNewlines() {
	for p.cur().Type == lexer.NEWLINE {
		p.advance()
	}
}

func (p *Parser) check(tt lexer.TokenType) bool { return p.cur().Type == tt }

func (p *Parser) match(tt lexer.TokenType) bool {
	if p.check(tt) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(tt lexer.TokenType, context string) (lexer.Token, bool) {
	if p.check(tt) {
		return p.advance(), true
	}
	p.errorf(p.cur(), "expected %s %s, got %s %q", tt, context, p.cur().Type, p.cur().Literal)
	return p.cur(), false
}

// mark/reset implement the single bounded backtrack the grammar needs.
func (p *Parser) mark() int       { return p.pos }
func (p *Parser) reset(mark int)  { p.pos = mark }

func tokPos(tok lexer.Token) Position { return Position{tok.Line, tok.Column} }

// Parse parses the whole token stream into a Program. Errors are
// accumulated in p.errors; callers should check HasErrors before trusting
// the returned tree.
func (p *Parser) Parse() *Program {
	startTok := p.cur()
	prog := &Program{base: base{tokPos(startTok)}}
	p.skipNewlines()
	for !p.atEOF() {
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		p.skipNewlines()
	}
	return prog
}

// parseBlock parses a `{` statement* `}` block, used by every control
// form. Newlines inside are skipped freely.
func (p *Parser) parseBlock() []Node {
	p.expect(lexer.LBRACE, "to start block")
	p.skipNewlines()
	var stmts []Node
	for !p.check(lexer.RBRACE) && !p.atEOF() {
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		p.skipNewlines()
	}
	p.expect(lexer.RBRACE, "to close block")
	return stmts
}

// parseStatement dispatches on the first token of the statement.
func (p *Parser) parseStatement() Node {
	switch p.cur().Type {
	case lexer.SET:
		return p.parseSetStatement()
	case lexer.SHOW:
		return p.parseShowStatement()
	case lexer.ASK:
		return p.parseAskStatement()
	case lexer.IF:
		return p.parseIfStatement()
	case lexer.WHILE:
		return p.parseWhileStatement()
	case lexer.FOR:
		return p.parseForStatement()
	case lexer.FUNC:
		return p.parseFuncDeclaration()
	case lexer.RETURN:
		return p.parseReturnStatement()
	case lexer.BREAK:
		tok := p.advance()
		return &BreakStatement{at(tok.Line, tok.Column)}
	case lexer.CONTINUE:
		tok := p.advance()
		return &ContinueStatement{at(tok.Line, tok.Column)}
	case lexer.PUSH:
		return p.parsePushStatement()
	case lexer.POP:
		return p.parsePopStatement()
	case lexer.CLASS:
		return p.parseClassDeclaration()
	case lexer.MATCH:
		return p.parseMatchStatement()
	case lexer.TRY:
		return p.parseTryStatement()
	case lexer.THROW:
		return p.parseThrowStatement()
	case lexer.USE:
		return p.parseUseStatement()
	case lexer.NEWLINE:
		p.advance()
		return nil
	default:
		tok := p.cur()
		expr := p.parseExpression()
		return &ExprStatement{at(tok.Line, tok.Column), expr}
	}
}
