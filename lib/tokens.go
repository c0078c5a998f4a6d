package lib

import "fmt"

type TokenType int

const (
	TokenTypeNumber TokenType = iota
	TokenTypeOperator
	TokenTypeOpenParen
	TokenTypeCloseParen
)

// Token is one lexical unit of an arithmetic expression. Number is only
// meaningful for TokenTypeNumber and Operator (one of '+' '-' '*' '/') only
// for TokenTypeOperator.
type Token struct {
	Type     TokenType
	Number   float64
	Operator rune
}

func (t Token) String() string {
	switch t.Type {
	case TokenTypeNumber:
		return fmt.Sprintf("Number(%v)", t.Number)
	case TokenTypeOperator:
		return fmt.Sprintf("Operator(%c)", t.Operator)
	case TokenTypeOpenParen:
		return "OpenParen"
	case TokenTypeCloseParen:
		return "CloseParen"
	}
	return fmt.Sprintf("Unknown(%d)", int(t.Type))
}

func numberToken(value float64) Token {
	return Token{Type: TokenTypeNumber, Number: value}
}

func operatorToken(op rune) Token {
	return Token{Type: TokenTypeOperator, Operator: op}
}
