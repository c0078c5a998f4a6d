package lib

// Validate scans expr and checks it against the arithmetic expression grammar,
// returning the full token sequence on success. It is the usual entry point;
// ValidateTokens is the underlying loop for callers that already hold a
// TokenReader.
func Validate(expr string) ([]Token, error) {
	scanner, err := NewScanner(expr)
	if err != nil {
		return nil, err
	}
	return ValidateTokens(scanner)
}

// ValidateTokens pulls reader dry, checking each token against the one before
// it. It fails on the first violation and forwards reader errors unchanged.
// On success every paren is matched, no operator leads or trails, and numbers
// and operators alternate correctly.
func ValidateTokens(reader TokenReader) ([]Token, error) {
	expression := []Token{}
	braces := []int{}

	for {
		tok, offset, err := reader.NextToken()
		if err == ErrNoMoreTokens {
			break
		}
		if err != nil {
			return nil, err
		}

		switch tok.Type {
		case TokenTypeOpenParen:
			braces = append(braces, offset)
			if last, ok := lastToken(expression); ok {
				if last.Type != TokenTypeOperator && last.Type != TokenTypeOpenParen {
					return nil, &InvalidExpressionError{Offset: offset}
				}
			}
		case TokenTypeCloseParen:
			if len(braces) == 0 {
				return nil, &InvalidExpressionError{Offset: offset}
			}
			braces = braces[:len(braces)-1]

			last, ok := lastToken(expression)
			if !ok {
				return nil, &InvalidExpressionError{Offset: offset}
			}
			if last.Type != TokenTypeNumber && last.Type != TokenTypeCloseParen {
				return nil, &InvalidExpressionError{Offset: offset}
			}
		case TokenTypeNumber:
			if last, ok := lastToken(expression); ok {
				if last.Type != TokenTypeOperator && last.Type != TokenTypeOpenParen {
					return nil, &InvalidExpressionError{Offset: offset}
				}
			}
		case TokenTypeOperator:
			last, ok := lastToken(expression)
			if !ok {
				return nil, &InvalidExpressionError{Offset: offset}
			}
			if last.Type != TokenTypeNumber && last.Type != TokenTypeCloseParen {
				return nil, &InvalidExpressionError{Offset: offset}
			}
		}

		expression = append(expression, tok)
	}

	// A trailing operator or dangling open paren means the expression was cut
	// short; report it at the cursor rather than blaming an earlier token.
	if last, ok := lastToken(expression); ok {
		if last.Type == TokenTypeOperator || last.Type == TokenTypeOpenParen {
			return nil, &InvalidExpressionError{Offset: reader.Offset()}
		}
	}

	if len(braces) > 0 {
		return nil, &InvalidBraceSequenceError{Offset: braces[len(braces)-1]}
	}

	return expression, nil
}

func lastToken(tokens []Token) (Token, bool) {
	if len(tokens) == 0 {
		return Token{}, false
	}
	return tokens[len(tokens)-1], true
}
