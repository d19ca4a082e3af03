package parser

import "github.com/voltlang/volt/lexer"

// parseSetStatement handles `set <target> = <expr>` in all its target
// forms: bare identifier, dotted/indexed chain, list destructuring
// `[a, b, c]`, dict destructuring `{a, b}`.
func (p *Parser) parseSetStatement() Node {
	tok := p.advance() // 'set'

	if p.check(lexer.LBRACKET) {
		return p.parseDestructureList(tok)
	}
	if p.check(lexer.LBRACE) {
		return p.parseDestructureDict(tok)
	}

	target := p.parseAssignTarget()
	p.expect(lexer.ASSIGN, "after assignment target")
	value := p.parseExpression()
	return &Assignment{at(tok.Line, tok.Column), target, value}
}

// parseAssignTarget parses an identifier or `this`, followed by any
// number of `.name` / `[expr]` accesses.
func (p *Parser) parseAssignTarget() AssignTarget {
	tok := p.cur()
	var node Node
	if p.check(lexer.THIS) {
		p.advance()
		node = &ThisExpr{at(tok.Line, tok.Column)}
	} else {
		nameTok, _ := p.expect(lexer.IDENT, "as assignment target")
		node = &Identifier{at(nameTok.Line, nameTok.Column), nameTok.Literal}
	}
	for {
		if p.check(lexer.DOT) {
			p.advance()
			prop := p.expectPropertyName()
			node = &MemberAccess{at(tok.Line, tok.Column), node, prop}
			continue
		}
		if p.check(lexer.LBRACKET) {
			p.advance()
			idx := p.parseExpression()
			p.expect(lexer.RBRACKET, "to close index")
			node = &IndexAccess{at(tok.Line, tok.Column), node, idx}
			continue
		}
		break
	}
	return node
}

func (p *Parser) parseDestructureList(tok lexer.Token) Node {
	p.advance() // '['
	var names []string
	for !p.check(lexer.RBRACKET) {
		n, _ := p.expect(lexer.IDENT, "in list destructuring")
		names = append(names, n.Literal)
		if !p.match(lexer.COMMA) {
			break
		}
	}
	p.expect(lexer.RBRACKET, "to close destructuring pattern")
	p.expect(lexer.ASSIGN, "after destructuring pattern")
	value := p.parseExpression()
	return &DestructureList{at(tok.Line, tok.Column), names, value}
}

func (p *Parser) parseDestructureDict(tok lexer.Token) Node {
	p.advance() // '{'
	var names []string
	for !p.check(lexer.RBRACE) {
		n, _ := p.expect(lexer.IDENT, "in dict destructuring")
		names = append(names, n.Literal)
		if !p.match(lexer.COMMA) {
			break
		}
	}
	p.expect(lexer.RBRACE, "to close destructuring pattern")
	p.expect(lexer.ASSIGN, "after destructuring pattern")
	value := p.parseExpression()
	return &DestructureDict{at(tok.Line, tok.Column), names, value}
}

func (p *Parser) parseShowStatement() Node {
	tok := p.advance()
	return &ShowStatement{at(tok.Line, tok.Column), p.parseExpression()}
}

// parseAskStatement handles `ask <promptExpr> -> variable`.
func (p *Parser) parseAskStatement() Node {
	tok := p.advance()
	prompt := p.parseExpression()
	p.expect(lexer.ARROW, "after ask prompt")
	nameTok, _ := p.expect(lexer.IDENT, "as ask target")
	return &AskStatement{at(tok.Line, tok.Column), prompt, nameTok.Literal}
}

func (p *Parser) parseIfStatement() Node {
	tok := p.advance()
	cond := p.parseExpression()
	body := p.parseBlock()
	stmt := &IfStatement{base: at(tok.Line, tok.Column), Condition: cond, Body: body}
	p.skipNewlines()
	for p.check(lexer.ELSE) {
		p.advance()
		p.skipNewlines()
		if p.check(lexer.IF) {
			p.advance()
			elifCond := p.parseExpression()
			elifBody := p.parseBlock()
			stmt.Elifs = append(stmt.Elifs, ElifClause{elifCond, elifBody})
			p.skipNewlines()
			continue
		}
		stmt.Else = p.parseBlock()
		break
	}
	return stmt
}

func (p *Parser) parseWhileStatement() Node {
	tok := p.advance()
	cond := p.parseExpression()
	body := p.parseBlock()
	return &WhileStatement{at(tok.Line, tok.Column), cond, body}
}

// parseForStatement disambiguates the three `for` shapes. When the token
// after `for` is an identifier, it peeks further: `in ... to ...` is a
// range-for, `in ...` (optionally preceded by `, ident2`) is an
// iterate-for, and anything else means the identifier was actually the
// start of a repeat-N-times expression, so the parser rewinds and
// reparses that way.
func (p *Parser) parseForStatement() Node {
	tok := p.advance()

	if p.check(lexer.IDENT) {
		save := p.mark()
		firstName := p.advance().Literal

		if p.check(lexer.IN) {
			p.advance()
			iterable := p.parseExpression()
			if p.check(lexer.TO) {
				p.advance()
				end := p.parseExpression()
				body := p.parseBlock()
				return &LoopRangeStatement{at(tok.Line, tok.Column), firstName, iterable, end, body}
			}
			body := p.parseBlock()
			return &ForInStatement{at(tok.Line, tok.Column), firstName, "", iterable, body}
		}

		if p.check(lexer.COMMA) {
			p.advance()
			if p.check(lexer.IDENT) {
				secondName := p.advance().Literal
				if p.check(lexer.IN) {
					p.advance()
					iterable := p.parseExpression()
					body := p.parseBlock()
					return &ForInStatement{at(tok.Line, tok.Column), firstName, secondName, iterable, body}
				}
			}
		}

		// Not a range/iterate form after all: rewind and parse the
		// whole thing as the repeat-N-times count expression.
		p.reset(save)
	}

	count := p.parseExpression()
	body := p.parseBlock()
	return &LoopTimesStatement{at(tok.Line, tok.Column), count, body}
}

func (p *Parser) parseParamList() []Param {
	var params []Param
	p.expect(lexer.LPAREN, "to open parameter list")
	for !p.check(lexer.RPAREN) {
		nameTok, _ := p.expect(lexer.IDENT, "as parameter name")
		param := Param{Name: nameTok.Literal}
		if p.match(lexer.ASSIGN) {
			param.Default = p.parseExpression()
		}
		params = append(params, param)
		if !p.match(lexer.COMMA) {
			break
		}
	}
	p.expect(lexer.RPAREN, "to close parameter list")
	return params
}

func (p *Parser) parseFuncDeclaration() Node {
	tok := p.advance()
	nameTok, _ := p.expect(lexer.IDENT, "as function name")
	params := p.parseParamList()
	body := p.parseBlock()
	return &FuncDeclaration{at(tok.Line, tok.Column), nameTok.Literal, params, body}
}

func (p *Parser) parseReturnStatement() Node {
	tok := p.advance()
	if p.check(lexer.NEWLINE) || p.check(lexer.RBRACE) || p.atEOF() {
		return &ReturnStatement{at(tok.Line, tok.Column), nil}
	}
	return &ReturnStatement{at(tok.Line, tok.Column), p.parseExpression()}
}

func (p *Parser) parsePushStatement() Node {
	tok := p.advance()
	listExpr := p.parsePostfix(p.parsePrimary())
	value := p.parseExpression()
	return &PushStatement{at(tok.Line, tok.Column), listExpr, value}
}

func (p *Parser) parsePopStatement() Node {
	tok := p.advance()
	listExpr := p.parseExpression()
	return &PopStatement{at(tok.Line, tok.Column), listExpr}
}

// expectPropertyName accepts a keyword as a property name after `.` so
// that `list.push`, `obj.class`, etc. work even though the lexer reserved
// those words.
func (p *Parser) expectPropertyName() string {
	tok := p.cur()
	if tok.Type == lexer.IDENT || isKeywordToken(tok.Type) {
		p.advance()
		return tok.Literal
	}
	p.errorf(tok, "expected property name after '.', got %s", tok.Type)
	return ""
}

func isKeywordToken(tt lexer.TokenType) bool {
	switch tt {
	case lexer.SET, lexer.SHOW, lexer.ASK, lexer.IF, lexer.ELSE, lexer.WHILE, lexer.FOR,
		lexer.IN, lexer.TO, lexer.FUNC, lexer.RETURN, lexer.BREAK, lexer.CONTINUE,
		lexer.AND, lexer.OR, lexer.NOT, lexer.TRUE, lexer.FALSE, lexer.NULL,
		lexer.PUSH, lexer.POP, lexer.CLASS, lexer.NEW, lexer.THIS, lexer.SUPER,
		lexer.EXTENDS, lexer.MATCH, lexer.CASE, lexer.DEFAULT, lexer.TRY, lexer.CATCH,
		lexer.FINALLY, lexer.THROW, lexer.USE:
		return true
	}
	return false
}

func (p *Parser) parseClassDeclaration() Node {
	tok := p.advance()
	nameTok, _ := p.expect(lexer.IDENT, "as class name")
	parent := ""
	if p.match(lexer.EXTENDS) {
		parentTok, _ := p.expect(lexer.IDENT, "as parent class name")
		parent = parentTok.Literal
	}
	p.expect(lexer.LBRACE, "to open class body")
	p.skipNewlines()
	var methods []MethodDecl
	for !p.check(lexer.RBRACE) && !p.atEOF() {
		p.expect(lexer.FUNC, "declaring a class method")
		mNameTok, _ := p.expect(lexer.IDENT, "as method name")
		params := p.parseParamList()
		body := p.parseBlock()
		methods = append(methods, MethodDecl{mNameTok.Literal, params, body})
		p.skipNewlines()
	}
	p.expect(lexer.RBRACE, "to close class body")
	return &ClassDeclaration{at(tok.Line, tok.Column), nameTok.Literal, parent, methods}
}

func (p *Parser) parseMatchStatement() Node {
	tok := p.advance()
	value := p.parseExpression()
	p.expect(lexer.LBRACE, "to open match body")
	p.skipNewlines()
	stmt := &MatchStatement{base: at(tok.Line, tok.Column), Value: value}
	for !p.check(lexer.RBRACE) && !p.atEOF() {
		if p.match(lexer.CASE) {
			caseVal := p.parseExpression()
			caseBody := p.parseBlock()
			stmt.Cases = append(stmt.Cases, MatchCase{caseVal, caseBody})
		} else if p.match(lexer.DEFAULT) {
			stmt.Default = p.parseBlock()
		} else {
			p.errorf(p.cur(), "expected 'case' or 'default' in match body, got %s", p.cur().Type)
			p.advance()
		}
		p.skipNewlines()
	}
	p.expect(lexer.RBRACE, "to close match body")
	return stmt
}

func (p *Parser) parseTryStatement() Node {
	tok := p.advance()
	tryBody := p.parseBlock()
	stmt := &TryCatchStatement{base: at(tok.Line, tok.Column), TryBody: tryBody}
	p.skipNewlines()
	if p.check(lexer.CATCH) {
		p.advance()
		varTok, _ := p.expect(lexer.IDENT, "as caught-value name")
		stmt.CatchVar = varTok.Literal
		stmt.HasCatch = true
		stmt.CatchBody = p.parseBlock()
		p.skipNewlines()
	}
	if p.check(lexer.FINALLY) {
		p.advance()
		stmt.HasFinally = true
		stmt.FinallyBody = p.parseBlock()
	}
	return stmt
}

func (p *Parser) parseThrowStatement() Node {
	tok := p.advance()
	return &ThrowStatement{at(tok.Line, tok.Column), p.parseExpression()}
}

func (p *Parser) parseUseStatement() Node {
	tok := p.advance()
	nameTok, _ := p.expect(lexer.STRING, "as module name")
	return &UseStatement{at(tok.Line, tok.Column), nameTok.StrValue}
}
