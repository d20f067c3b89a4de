package expr

import "fmt"

// SyntaxError describes a malformed expression. Offset is the byte position
// of the first offending character.
type SyntaxError struct {
	Offset  int
	Message string
}

// Error returns the formatted syntax error message.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Message)
}

func syntaxErrorf(offset int, format string, args ...any) error {
	return &SyntaxError{Offset: offset, Message: fmt.Sprintf(format, args...)}
}

// Tokenize scans the input into a token stream terminated by a TokenEOF.
// It returns a SyntaxError for any character outside the language.
func Tokenize(input string) ([]Token, error) {
	var tokens []Token
	i := 0
	for i < len(input) {
		c := input[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c >= '0' && c <= '9':
			start := i
			for i < len(input) && input[i] >= '0' && input[i] <= '9' {
				i++
			}
			tokens = append(tokens, Token{Kind: TokenNumber, Text: input[start:i], Offset: start})
		case c == '+':
			tokens = append(tokens, Token{Kind: TokenPlus, Text: "+", Offset: i})
			i++
		case c == '-':
			tokens = append(tokens, Token{Kind: TokenMinus, Text: "-", Offset: i})
			i++
		case c == '*':
			tokens = append(tokens, Token{Kind: TokenStar, Text: "*", Offset: i})
			i++
		case c == '(':
			tokens = append(tokens, Token{Kind: TokenLParen, Text: "(", Offset: i})
			i++
		case c == ')':
			tokens = append(tokens, Token{Kind: TokenRParen, Text: ")", Offset: i})
			i++
		case c == '<':
			switch {
			case hasAt(input, i+1, '<'):
				tokens = append(tokens, Token{Kind: TokenShl, Text: "<<", Offset: i})
				i += 2
			case hasAt(input, i+1, '='):
				tokens = append(tokens, Token{Kind: TokenLe, Text: "<=", Offset: i})
				i += 2
			default:
				tokens = append(tokens, Token{Kind: TokenLt, Text: "<", Offset: i})
				i++
			}
		case c == '>':
			switch {
			case hasAt(input, i+1, '>'):
				tokens = append(tokens, Token{Kind: TokenShr, Text: ">>", Offset: i})
				i += 2
			case hasAt(input, i+1, '='):
				tokens = append(tokens, Token{Kind: TokenGe, Text: ">=", Offset: i})
				i += 2
			default:
				tokens = append(tokens, Token{Kind: TokenGt, Text: ">", Offset: i})
				i++
			}
		case c == '=':
			if hasAt(input, i+1, '=') {
				tokens = append(tokens, Token{Kind: TokenEq, Text: "==", Offset: i})
				i += 2
			} else {
				return nil, syntaxErrorf(i, "unexpected character '='; did you mean '=='?")
			}
		case c == '!':
			if hasAt(input, i+1, '=') {
				tokens = append(tokens, Token{Kind: TokenNe, Text: "!=", Offset: i})
				i += 2
			} else {
				return nil, syntaxErrorf(i, "unexpected character '!'; did you mean '!='?")
			}
		default:
			return nil, syntaxErrorf(i, "unexpected character %q", c)
		}
	}
	tokens = append(tokens, Token{Kind: TokenEOF, Offset: len(input)})
	return tokens, nil
}

func hasAt(s string, i int, c byte) bool {
	return i < len(s) && s[i] == c
}
