package tokens

import "fmt"

// Token is one lexeme classified by the lexer.
// Tokens are built once by the lexer and never modified.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal Value
	Line    int
}

// New creates a token
func New(typ TokenType, lexeme string, literal Value, line int) Token {
	return Token{
		Type:    typ,
		Lexeme:  lexeme,
		Literal: literal,
		Line:    line,
	}
}

func (t Token) String() string {
	if t.Literal == nil {
		return fmt.Sprintf("%s %s", t.Type, t.Lexeme)
	}
	return fmt.Sprintf("%s %s %s", t.Type, t.Lexeme, t.Literal)
}
