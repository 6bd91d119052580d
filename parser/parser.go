// Package parser implements the recursive-descent expression parser
// described in spec.md §4.2.
//
// The teacher repository (deepnoodle-ai-risor) parses its much larger
// grammar with a Pratt parser (see parser/precedence.go); this grammar
// has exactly six precedence levels and four node shapes, small enough
// that a literal recursive-descent-per-nonterminal shape — the one
// original_source/app/main.py's Parser class already used — is the
// right fit. What's kept from the teacher is the token-cursor idiom:
// match/check/previous/consume helpers walking a flat token slice, and
// per-stage multi-error collection via errz.Collector.
package parser

import (
	"github.com/cloudcmds/candle/ast"
	"github.com/cloudcmds/candle/errz"
	"github.com/cloudcmds/candle/token"
)

// Parser consumes a token sequence and produces a single expression AST.
// A Parser is used once: construct it with New and call Parse.
type Parser struct {
	tokens  []token.Token
	current int
	errs    *errz.Collector
}

// New returns a Parser ready to parse tokens. tokens must not include a
// trailing EOF marker (scanner.Scan never produces one); Parser treats
// running off the end of the slice as "at end".
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens, errs: errz.NewCollector(errz.Parse)}
}

// Parse returns the root expression, or nil if the token stream contained
// no usable expression. Call Errors afterward to retrieve any parse
// errors.
func (p *Parser) Parse() ast.Expr {
	return p.expression()
}

// Errors returns the parse errors collected during Parse, in the order
// they occurred.
func (p *Parser) Errors() []*errz.Error {
	return p.errs.Errs()
}

// HasErrors reports whether any parse error was recorded.
func (p *Parser) HasErrors() bool {
	return p.errs.HasErrors()
}

// expression → equality
func (p *Parser) expression() ast.Expr {
	return p.equality()
}

// equality → comparison ( ( "!=" | "==" ) comparison )*
func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		operator := p.previous()
		right := p.comparison()
		expr = p.binary(expr, operator, right)
	}
	return expr
}

// comparison → term ( ( ">" | ">=" | "<" | "<=" ) term )*
func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		operator := p.previous()
		right := p.term()
		expr = p.binary(expr, operator, right)
	}
	return expr
}

// term → factor ( ( "-" | "+" ) factor )*
func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.MINUS, token.PLUS) {
		operator := p.previous()
		right := p.factor()
		expr = p.binary(expr, operator, right)
	}
	return expr
}

// factor → unary ( ( "/" | "*" ) unary )*
func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.SLASH, token.STAR) {
		operator := p.previous()
		right := p.unary()
		expr = p.binary(expr, operator, right)
	}
	return expr
}

// unary → ( "!" | "-" ) unary | primary
func (p *Parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		operator := p.previous()
		right := p.unary()
		if right == nil {
			return nil
		}
		return &ast.Unary{Operator: operator, Right: right}
	}
	return p.primary()
}

// primary → "false" | "true" | "nil" | NUMBER | STRING | "(" expression ")"
func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return &ast.Literal{Value: false}
	case p.match(token.TRUE):
		return &ast.Literal{Value: true}
	case p.match(token.NIL):
		return &ast.Literal{Value: nil}
	case p.match(token.NUMBER, token.STRING):
		return &ast.Literal{Value: p.previous().Literal}
	case p.match(token.LEFT_PAREN):
		inner := p.expression()
		if inner == nil {
			return nil
		}
		if !p.consume(token.RIGHT_PAREN, "Expect ')' after expression.") {
			return nil
		}
		return &ast.Grouping{Inner: inner}
	default:
		p.errorAt(p.currentLine(), "Expect expression.")
		return nil
	}
}

// binary builds a Binary node, but propagates absence: if either operand
// failed to parse, the caller's in-progress construction is abandoned by
// returning nil instead of a node with a missing child, per spec.md
// §4.2's "callers that receive an absent subtree abandon their current
// binary construction and propagate absence upward".
func (p *Parser) binary(left ast.Expr, operator token.Token, right ast.Expr) ast.Expr {
	if left == nil || right == nil {
		return nil
	}
	return &ast.Binary{Left: left, Operator: operator, Right: right}
}

// match advances and returns true if the current token's kind is one of
// kinds.
func (p *Parser) match(kinds ...token.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

// check reports whether the current token has the given kind without
// consuming it.
func (p *Parser) check(kind token.Kind) bool {
	if p.atEnd() {
		return false
	}
	return p.tokens[p.current].Kind == kind
}

// consume advances past the current token if it has the given kind,
// returning true. Otherwise it records a parse error and returns false
// without advancing, per spec.md §4.2: "A missing right paren records a
// parse error with the message and does not advance."
func (p *Parser) consume(kind token.Kind, message string) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	p.errorAt(p.currentLine(), message)
	return false
}

// advance consumes and returns the current token. It never advances past
// the end of the token sequence.
func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

// previous returns the most recently consumed token.
func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) atEnd() bool {
	return p.current >= len(p.tokens)
}

// currentLine returns the line to attribute an error raised at the
// current cursor position to: the current token's line if one remains,
// otherwise the last token's line (running off the end of input).
func (p *Parser) currentLine() int {
	if !p.atEnd() {
		return p.tokens[p.current].Line
	}
	if len(p.tokens) > 0 {
		return p.tokens[len(p.tokens)-1].Line
	}
	return 1
}

func (p *Parser) errorAt(line int, message string) {
	p.errs.Add(line, message)
}
