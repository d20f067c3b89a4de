package expr

import "fmt"

// TokenKind identifies the lexical class of a token.
type TokenKind int

// Token kinds produced by the tokenizer.
const (
	TokenEOF TokenKind = iota
	TokenNumber
	TokenPlus
	TokenMinus
	TokenStar
	TokenShl
	TokenShr
	TokenEq
	TokenNe
	TokenLt
	TokenLe
	TokenGt
	TokenGe
	TokenLParen
	TokenRParen
)

var tokenNames = map[TokenKind]string{
	TokenEOF:    "end of input",
	TokenNumber: "number",
	TokenPlus:   "'+'",
	TokenMinus:  "'-'",
	TokenStar:   "'*'",
	TokenShl:    "'<<'",
	TokenShr:    "'>>'",
	TokenEq:     "'=='",
	TokenNe:     "'!='",
	TokenLt:     "'<'",
	TokenLe:     "'<='",
	TokenGt:     "'>'",
	TokenGe:     "'>='",
	TokenLParen: "'('",
	TokenRParen: "')'",
}

// String returns a human-readable name for the token kind, as used in
// syntax error messages.
func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is a single lexical token with its byte offset in the input.
type Token struct {
	// Kind is the lexical class of the token.
	Kind TokenKind
	// Text is the raw input text of the token.
	Text string
	// Offset is the byte offset of the token's first character.
	Offset int
}
