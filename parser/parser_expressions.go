package parser

import "github.com/voltlang/volt/lexer"

// parseExpression is the entry point into the precedence-climbing
// expression grammar, starting at the lowest-precedence operator (`or`).
func (p *Parser) parseExpression() Node {
	return p.parseOr()
}

func (p *Parser) parseOr() Node {
	left := p.parseAnd()
	for p.check(lexer.OR) {
		tok := p.advance()
		right := p.parseAnd()
		left = &BinaryOp{at(tok.Line, tok.Column), lexer.OR, left, right}
	}
	return left
}

func (p *Parser) parseAnd() Node {
	left := p.parseNot()
	for p.check(lexer.AND) {
		tok := p.advance()
		right := p.parseNot()
		left = &BinaryOp{at(tok.Line, tok.Column), lexer.AND, left, right}
	}
	return left
}

// parseNot is right-associative: `not not x` negates twice.
func (p *Parser) parseNot() Node {
	if p.check(lexer.NOT) || p.check(lexer.BANG) {
		tok := p.advance()
		operand := p.parseNot()
		return &UnaryOp{at(tok.Line, tok.Column), lexer.NOT, operand}
	}
	return p.parseComparison()
}

// parseComparison builds a left-to-right chain of comparison operators;
// the grammar treats them as non-associative but the resulting tree shape
// is the same left-leaning chain as any other left-associative operator.
func (p *Parser) parseComparison() Node {
	left := p.parseAdditive()
	for {
		switch p.cur().Type {
		case lexer.EQ, lexer.NEQ, lexer.LT, lexer.GT, lexer.LTE, lexer.GTE:
			tok := p.advance()
			right := p.parseAdditive()
			left = &BinaryOp{at(tok.Line, tok.Column), tok.Type, left, right}
		default:
			return left
		}
	}
}

func (p *Parser) parseAdditive() Node {
	left := p.parseMultiplicative()
	for p.check(lexer.PLUS) || p.check(lexer.MINUS) {
		tok := p.advance()
		right := p.parseMultiplicative()
		left = &BinaryOp{at(tok.Line, tok.Column), tok.Type, left, right}
	}
	return left
}

func (p *Parser) parseMultiplicative() Node {
	left := p.parseUnary()
	for p.check(lexer.STAR) || p.check(lexer.SLASH) || p.check(lexer.PERCENT) {
		tok := p.advance()
		right := p.parseUnary()
		left = &BinaryOp{at(tok.Line, tok.Column), tok.Type, left, right}
	}
	return left
}

func (p *Parser) parseUnary() Node {
	if p.check(lexer.MINUS) {
		tok := p.advance()
		operand := p.parseUnary()
		return &UnaryOp{at(tok.Line, tok.Column), lexer.MINUS, operand}
	}
	return p.parsePostfix(p.parsePrimary())
}

// parsePostfix handles the postfix chain of `.name`, `[index]`, and
// `(args)` applications following a primary expression.
func (p *Parser) parsePostfix(node Node) Node {
	for {
		tok := p.cur()
		switch tok.Type {
		case lexer.DOT:
			p.advance()
			prop := p.expectPropertyName()
			node = &MemberAccess{at(tok.Line, tok.Column), node, prop}
		case lexer.LBRACKET:
			p.advance()
			idx := p.parseExpression()
			p.expect(lexer.RBRACKET, "to close index expression")
			node = &IndexAccess{at(tok.Line, tok.Column), node, idx}
		case lexer.LPAREN:
			args := p.parseArgList()
			node = &CallExpr{at(tok.Line, tok.Column), node, args}
		default:
			return node
		}
	}
}

func (p *Parser) parseArgList() []Node {
	p.expect(lexer.LPAREN, "to open argument list")
	var args []Node
	for !p.check(lexer.RPAREN) && !p.atEOF() {
		args = append(args, p.parseExpression())
		if !p.match(lexer.COMMA) {
			break
		}
	}
	p.expect(lexer.RPAREN, "to close argument list")
	return args
}

// parenIsLambdaHead decides, via a single scan to the matching `)`,
// whether the parenthesised group starting at the current token is a
// lambda parameter list. This is the one-token look-past-rparen strategy
// the language favors over a full speculative parse-and-rewind: it scans
// forward counting bracket depth and checks whether the token right after
// the matching `)` is `=>`, without constructing any nodes.
func (p *Parser) parenIsLambdaHead() bool {
	depth := 0
	for i := p.pos; i < len(p.tokens); i++ {
		switch p.tokens[i].Type {
		case lexer.LPAREN:
			depth++
		case lexer.RPAREN:
			depth--
			if depth == 0 {
				return i+1 < len(p.tokens) && p.tokens[i+1].Type == lexer.FATARR
			}
		case lexer.EOF:
			return false
		}
	}
	return false
}

func (p *Parser) parseLambda() Node {
	tok := p.cur()
	params := p.parseParamList()
	p.expect(lexer.FATARR, "after lambda parameter list")
	body := p.parseExpression()
	return &LambdaExpr{at(tok.Line, tok.Column), params, body}
}

func (p *Parser) parsePrimary() Node {
	tok := p.cur()
	switch tok.Type {
	case lexer.INTEGER:
		p.advance()
		return &NumberLiteral{at(tok.Line, tok.Column), false, tok.IntValue, 0}
	case lexer.FLOAT:
		p.advance()
		return &NumberLiteral{at(tok.Line, tok.Column), true, 0, tok.FloatValue}
	case lexer.STRING:
		p.advance()
		return &StringLiteral{at(tok.Line, tok.Column), tok.StrValue}
	case lexer.FSTRING:
		p.advance()
		return p.expandInterpolation(tok)
	case lexer.TRUE:
		p.advance()
		return &BooleanLiteral{at(tok.Line, tok.Column), true}
	case lexer.FALSE:
		p.advance()
		return &BooleanLiteral{at(tok.Line, tok.Column), false}
	case lexer.NULL:
		p.advance()
		return &NullLiteral{at(tok.Line, tok.Column)}
	case lexer.THIS:
		p.advance()
		return &ThisExpr{at(tok.Line, tok.Column)}
	case lexer.IDENT:
		p.advance()
		return &Identifier{at(tok.Line, tok.Column), tok.Literal}
	case lexer.SUPER:
		p.advance()
		p.expect(lexer.DOT, "after 'super'")
		method := p.expectPropertyName()
		args := p.parseArgList()
		return &SuperMethodCall{at(tok.Line, tok.Column), method, args}
	case lexer.NEW:
		p.advance()
		nameTok, _ := p.expect(lexer.IDENT, "as class name after 'new'")
		args := p.parseArgList()
		return &NewExpr{at(tok.Line, tok.Column), nameTok.Literal, args}
	case lexer.LBRACKET:
		return p.parseListLiteral()
	case lexer.LBRACE:
		return p.parseDictLiteral()
	case lexer.LPAREN:
		if p.parenIsLambdaHead() {
			return p.parseLambda()
		}
		p.advance()
		expr := p.parseExpression()
		p.expect(lexer.RPAREN, "to close parenthesised expression")
		return expr
	default:
		p.errorf(tok, "unexpected token %s %q in expression", tok.Type, tok.Literal)
		p.advance()
		return &NullLiteral{at(tok.Line, tok.Column)}
	}
}

func (p *Parser) parseListLiteral() Node {
	tok := p.advance() // '['
	var elems []Node
	for !p.check(lexer.RBRACKET) && !p.atEOF() {
		elems = append(elems, p.parseExpression())
		if !p.match(lexer.COMMA) {
			break
		}
	}
	p.expect(lexer.RBRACKET, "to close list literal")
	return &ListLiteral{at(tok.Line, tok.Column), elems}
}

func (p *Parser) parseDictLiteral() Node {
	tok := p.advance() // '{'
	var entries []DictEntry
	for !p.check(lexer.RBRACE) && !p.atEOF() {
		var key Node
		if p.check(lexer.STRING) {
			keyTok := p.advance()
			key = &StringLiteral{at(keyTok.Line, keyTok.Column), keyTok.StrValue}
		} else if p.check(lexer.IDENT) || isKeywordToken(p.cur().Type) {
			keyTok := p.advance()
			key = &StringLiteral{at(keyTok.Line, keyTok.Column), keyTok.Literal}
		} else {
			key = p.parseExpression()
		}
		p.expect(lexer.COLON, "after dict key")
		value := p.parseExpression()
		entries = append(entries, DictEntry{key, value})
		if !p.match(lexer.COMMA) {
			break
		}
	}
	p.expect(lexer.RBRACE, "to close dict literal")
	return &DictLiteral{at(tok.Line, tok.Column), entries}
}

// expandInterpolation re-lexes and re-parses each expression fragment of
// an f-string token into its own sub-expression; literal fragments become
// plain string literals.
func (p *Parser) expandInterpolation(tok lexer.Token) Node {
	node := &InterpolatedString{base: at(tok.Line, tok.Column)}
	for _, frag := range tok.Fragments {
		if !frag.IsExpr {
			node.Parts = append(node.Parts, &StringLiteral{at(tok.Line, tok.Column), frag.Text})
			continue
		}
		sub := New(frag.Text)
		expr := sub.parseExpression()
		if sub.HasErrors() {
			p.errors = append(p.errors, sub.Errors()...)
		}
		node.Parts = append(node.Parts, expr)
	}
	return node
}
