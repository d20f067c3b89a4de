package expr

import (
	"github.com/hausp/bigcalc/internal/bigint"
)

// Node is a parsed expression tree node. Offset reports the byte position of
// the node's defining token for error attribution.
type Node interface {
	Offset() int
}

// LiteralNode is a decimal integer literal.
type LiteralNode struct {
	Value  bigint.Int
	offset int
}

// Offset returns the byte offset of the literal.
func (n *LiteralNode) Offset() int { return n.offset }

// UnaryNode is a unary + or - applied to an operand.
type UnaryNode struct {
	Op      TokenKind
	Operand Node
	offset  int
}

// Offset returns the byte offset of the operator.
func (n *UnaryNode) Offset() int { return n.offset }

// BinaryNode is a binary operator applied to two operands.
type BinaryNode struct {
	Op          TokenKind
	Left, Right Node
	offset      int
}

// Offset returns the byte offset of the operator.
func (n *BinaryNode) Offset() int { return n.offset }

// Parse tokenizes and parses the input into an expression tree. Errors are
// of type *SyntaxError.
func Parse(input string) (Node, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	node, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Kind != TokenEOF {
		return nil, syntaxErrorf(tok.Offset, "unexpected %s", tok.Kind)
	}
	return node, nil
}

// parser is a recursive-descent parser over a token stream. Precedence,
// loosest first: comparison, shift, additive, multiplicative, unary.
type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) peek() Token { return p.tokens[p.pos] }

func (p *parser) next() Token {
	tok := p.tokens[p.pos]
	if tok.Kind != TokenEOF {
		p.pos++
	}
	return tok
}

// parseComparison parses at most one comparison: the operators yield 0 or
// 1, so chaining them (1 < 2 < 3) almost never means what it reads as and
// is rejected rather than silently grouped left.
func (p *parser) parseComparison() (Node, error) {
	left, err := p.parseShift()
	if err != nil {
		return nil, err
	}
	tok := p.peek()
	if !isComparisonToken(tok.Kind) {
		return left, nil
	}
	p.next()
	right, err := p.parseShift()
	if err != nil {
		return nil, err
	}
	if chained := p.peek(); isComparisonToken(chained.Kind) {
		return nil, syntaxErrorf(chained.Offset, "comparisons cannot be chained; parenthesize one side")
	}
	return &BinaryNode{Op: tok.Kind, Left: left, Right: right, offset: tok.Offset}, nil
}

func isComparisonToken(k TokenKind) bool {
	switch k {
	case TokenEq, TokenNe, TokenLt, TokenLe, TokenGt, TokenGe:
		return true
	}
	return false
}

func (p *parser) parseShift() (Node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		switch tok := p.peek(); tok.Kind {
		case TokenShl, TokenShr:
			p.next()
			right, err := p.parseAdditive()
			if err != nil {
				return nil, err
			}
			left = &BinaryNode{Op: tok.Kind, Left: left, Right: right, offset: tok.Offset}
		default:
			return left, nil
		}
	}
}

func (p *parser) parseAdditive() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		switch tok := p.peek(); tok.Kind {
		case TokenPlus, TokenMinus:
			p.next()
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = &BinaryNode{Op: tok.Kind, Left: left, Right: right, offset: tok.Offset}
		default:
			return left, nil
		}
	}
}

func (p *parser) parseTerm() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek().Kind == TokenStar {
		tok := p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &BinaryNode{Op: tok.Kind, Left: left, Right: right, offset: tok.Offset}
	}
	return left, nil
}

func (p *parser) parseUnary() (Node, error) {
	switch tok := p.peek(); tok.Kind {
	case TokenPlus, TokenMinus:
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryNode{Op: tok.Kind, Operand: operand, offset: tok.Offset}, nil
	default:
		return p.parsePrimary()
	}
}

func (p *parser) parsePrimary() (Node, error) {
	switch tok := p.next(); tok.Kind {
	case TokenNumber:
		value, err := bigint.Parse(tok.Text)
		if err != nil {
			return nil, syntaxErrorf(tok.Offset, "invalid number %q", tok.Text)
		}
		return &LiteralNode{Value: value, offset: tok.Offset}, nil
	case TokenLParen:
		node, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.Kind != TokenRParen {
			return nil, syntaxErrorf(closing.Offset, "expected ')', found %s", closing.Kind)
		}
		return node, nil
	case TokenEOF:
		return nil, syntaxErrorf(tok.Offset, "unexpected end of input")
	default:
		return nil, syntaxErrorf(tok.Offset, "unexpected %s", tok.Kind)
	}
}
