package parser

import (
	"fmt"
	"strconv"

	"github.com/sandrolain/goabacus/pkg/types"
)

// Parser builds a binary expression tree from a token stream.
// It uses Pratt's "Top Down Operator Precedence" algorithm; with a
// single precedence level the loop degenerates into a left-associative
// chain, which is exactly the semantics the grammar wants.
type Parser struct {
	lexer   *Lexer
	arena   *types.NodeArena
	current Token
	depth   int
	opts    CompileOptions
}

// NewParser creates a new parser for the given input string.
func NewParser(input string, opts ...CompileOption) *Parser {
	options := CompileOptions{
		MaxDepth: 100,
	}
	for _, opt := range opts {
		opt(&options)
	}

	p := &Parser{
		lexer: NewLexer(input),
		arena: types.NewNodeArena(),
		opts:  options,
	}

	// Read the first token
	p.advance()

	return p
}

// Parse parses the entire expression and returns the compiled Expression.
func (p *Parser) Parse() (*types.Expression, error) {
	// Surface lexer errors (invalid character) before anything else
	if p.current.Type == TokenError {
		return nil, p.lexer.Error()
	}

	if p.current.Type == TokenEOF {
		return nil, p.error(types.ErrMissingOperand, "Empty expression")
	}

	root, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}

	switch p.current.Type {
	case TokenEOF:
		// fully consumed
	case TokenError:
		return nil, p.lexer.Error()
	case TokenParenClose:
		return nil, p.error(types.ErrUnmatchedParen, "Unmatched ')'")
	default:
		return nil, p.error(types.ErrSyntaxError, fmt.Sprintf("Unexpected token %q after expression", p.current.Value))
	}

	return types.NewExpression(root, p.lexer.input, p.arena), nil
}

// Operator precedence table (binding power).
// The grammar has exactly one level: additive.
var precedence = map[TokenType]int{
	TokenPlus:  50, // +
	TokenMinus: 50, // -
}

// getPrecedence returns the precedence of a token type.
func (p *Parser) getPrecedence(tt TokenType) int {
	if prec, ok := precedence[tt]; ok {
		return prec
	}
	return 0
}

// advance moves to the next token.
func (p *Parser) advance() {
	p.current = p.lexer.Next()
}

// expect checks that the current token matches the expected type and advances.
func (p *Parser) expect(tt TokenType) error {
	// A lexer error outranks any mismatch: the invalid character is the
	// real problem, wherever in the grammar it shows up.
	if p.current.Type == TokenError {
		return p.lexer.Error()
	}
	if p.current.Type != tt {
		code := types.ErrExpectedToken
		if tt == TokenParenClose {
			code = types.ErrUnmatchedParen
		}
		return p.error(code, fmt.Sprintf("Expected %s but got %s", tt.String(), p.current.Type.String()))
	}
	p.advance()
	return nil
}

// error creates a parser error at the current token.
func (p *Parser) error(code types.ErrorCode, message string) error {
	return &types.Error{
		Code:     code,
		Message:  message,
		Position: p.current.Position,
		Token:    p.current.Value,
	}
}

// parseExpression parses an expression with operator precedence.
// rbp is the right binding power (minimum precedence).
func (p *Parser) parseExpression(rbp int) (types.Expr, error) {
	// Parse prefix expression (nud - null denotation)
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	// Parse infix expressions while precedence allows (led - left denotation)
	for rbp < p.getPrecedence(p.current.Type) {
		left, err = p.parseInfix(left)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

// parsePrefix parses a prefix expression (nud - null denotation):
// an integer literal or a parenthesized group.
func (p *Parser) parsePrefix() (types.Expr, error) {
	token := p.current

	switch token.Type {
	case TokenInteger:
		return p.parseInteger()
	case TokenParenOpen:
		return p.parseGrouping()
	case TokenParenClose:
		return nil, p.error(types.ErrUnmatchedParen, "Unmatched ')'")
	case TokenPlus, TokenMinus:
		return nil, p.error(types.ErrMissingOperand, fmt.Sprintf("Operator %q is missing its left operand", token.Value))
	case TokenEOF:
		return nil, p.error(types.ErrMissingOperand, "Unexpected end of expression")
	case TokenError:
		return nil, p.lexer.Error()
	default:
		return nil, p.error(types.ErrSyntaxError, fmt.Sprintf("Unexpected token %q", token.Value))
	}
}

// parseInfix parses an infix operator application (led - left denotation).
// The current token is the operator; left is the already-parsed operand.
func (p *Parser) parseInfix(left types.Expr) (types.Expr, error) {
	token := p.current

	var op types.Operator
	switch token.Type {
	case TokenPlus:
		op = types.Addition
	case TokenMinus:
		op = types.Subtraction
	default:
		return nil, p.error(types.ErrSyntaxError, fmt.Sprintf("Unexpected token %q", token.Value))
	}
	p.advance()

	right, err := p.parseExpression(precedence[token.Type])
	if err != nil {
		return nil, err
	}

	return p.arena.NewBinary(op, left, right, left.Pos()), nil
}

// parseInteger parses an integer literal token into a leaf node.
func (p *Parser) parseInteger() (types.Expr, error) {
	token := p.current

	value, err := strconv.ParseInt(token.Value, 10, 64)
	if err != nil {
		return nil, p.error(types.ErrNumberOutOfRange, fmt.Sprintf("Integer literal %q out of range", token.Value))
	}

	p.advance()
	return p.arena.NewLiteral(value, token.Position), nil
}

// parseGrouping parses a parenthesized sub-expression. The matching ')'
// is consumed structurally by recursion, never found by scanning ahead,
// so nesting like "(13+(2+2))-((6+6)+1)" pairs parentheses correctly at
// any depth.
func (p *Parser) parseGrouping() (types.Expr, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.opts.MaxDepth > 0 && p.depth > p.opts.MaxDepth {
		return nil, p.error(types.ErrDepthExceeded, fmt.Sprintf("Parenthesis nesting exceeds maximum depth %d", p.opts.MaxDepth))
	}

	open := p.current
	p.advance() // consume '('

	if p.current.Type == TokenParenClose {
		return nil, p.error(types.ErrMissingOperand, "Empty parentheses")
	}

	expr, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}

	if p.current.Type == TokenEOF {
		return nil, &types.Error{
			Code:     types.ErrUnmatchedParen,
			Message:  "Unclosed '('",
			Position: open.Position,
			Token:    open.Value,
		}
	}
	if err := p.expect(TokenParenClose); err != nil {
		return nil, err
	}

	return expr, nil
}
