package lib

import (
	"strconv"
)

// Scanner walks an expression string one token at a time. The string is fixed
// at construction; only the cursor moves, and only when a token is consumed.
// A Scanner is not safe for concurrent use.
type Scanner struct {
	expr   string
	cursor int
}

func NewScanner(expr string) (*Scanner, error) {
	if expr == "" {
		return nil, ErrInvalidArgument
	}
	return &Scanner{expr: expr, cursor: 0}, nil
}

// HasMore reports whether any non-whitespace input remains. It never moves
// the cursor; the whitespace skip is committed by NextToken.
func (s *Scanner) HasMore() bool {
	return s.skipSpaces() < len(s.expr)
}

// Offset is the byte offset of the next unconsumed character.
func (s *Scanner) Offset() int {
	return s.cursor
}

// NextToken consumes and returns the next token along with the byte offset at
// which it starts. It returns ErrNoMoreTokens at end of input.
func (s *Scanner) NextToken() (Token, int, error) {
	if !s.HasMore() {
		return Token{}, 0, ErrNoMoreTokens
	}
	s.cursor = s.skipSpaces()

	start := s.cursor
	switch ch := s.expr[start]; ch {
	case '(':
		s.cursor++
		return Token{Type: TokenTypeOpenParen}, start, nil
	case ')':
		s.cursor++
		return Token{Type: TokenTypeCloseParen}, start, nil
	case '+', '-', '*', '/':
		s.cursor++
		return operatorToken(rune(ch)), start, nil
	default:
		return s.scanNumber()
	}
}

// scanNumber consumes the maximal run of digits and dots and lets ParseFloat
// decide whether it is a number. Runs like "1.2.3" (or an empty run when the
// cursor sits on a character no other token claims) fail here.
func (s *Scanner) scanNumber() (Token, int, error) {
	start := s.cursor
	end := start
	for end < len(s.expr) && (isDigit(s.expr[end]) || s.expr[end] == '.') {
		end++
	}

	value, err := strconv.ParseFloat(s.expr[start:end], 64)
	if err != nil {
		return Token{}, 0, &InvalidTokenError{Offset: start, Char: s.expr[start]}
	}

	s.cursor = end
	return numberToken(value), start, nil
}

func (s *Scanner) skipSpaces() int {
	i := s.cursor
	for i < len(s.expr) && isSpace(s.expr[i]) {
		i++
	}
	return i
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\v' || ch == '\f'
}
