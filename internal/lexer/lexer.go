package lexer

import (
	"strconv"
	"unicode/utf8"

	"lox/internal/diag"
	"lox/internal/tokens"

	"github.com/sirupsen/logrus"
)

// Lexer turns one source buffer into tokens. A Lexer is single use.
type Lexer struct {
	source  string
	start   int
	current int
	line    int

	tokens []tokens.Token

	reporter diag.Reporter
	log      *logrus.Entry
}

// Option configures a Lexer
type Option func(*Lexer)

// WithLogger sets the entry used for debug logging
func WithLogger(log *logrus.Entry) Option {
	return func(l *Lexer) {
		l.log = log
	}
}

// NewLexer creates a lexer for source that reports errors to reporter
func NewLexer(source string, reporter diag.Reporter, opts ...Option) *Lexer {
	l := &Lexer{
		source:   source,
		line:     1,
		reporter: reporter,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.log == nil {
		l.log = logrus.NewEntry(logrus.StandardLogger())
	}
	return l
}

// Scan scans source and returns its tokens
func Scan(source string, reporter diag.Reporter, opts ...Option) []tokens.Token {
	return NewLexer(source, reporter, opts...).Scan()
}

// Scan consumes the whole source. The result always ends with one EOF token.
func (l *Lexer) Scan() []tokens.Token {
	for !l.isAtEnd() {
		l.start = l.current
		l.scanToken()
	}
	l.tokens = append(l.tokens, tokens.New(tokens.EOF, "", nil, l.line))

	l.log.WithFields(logrus.Fields{
		"tokens": len(l.tokens),
		"lines":  l.line,
	}).Debug("scan finished")

	return l.tokens
}

func (l *Lexer) scanToken() {
	c := l.advance()
	switch c {
	case '(':
		l.emit(tokens.LEFT_PAREN, nil)
	case ')':
		l.emit(tokens.RIGHT_PAREN, nil)
	case '{':
		l.emit(tokens.LEFT_BRACE, nil)
	case '}':
		l.emit(tokens.RIGHT_BRACE, nil)
	case ',':
		l.emit(tokens.COMMA, nil)
	case '.':
		l.emit(tokens.DOT, nil)
	case '-':
		l.emit(tokens.MINUS, nil)
	case '+':
		l.emit(tokens.PLUS, nil)
	case ';':
		l.emit(tokens.SEMICOLON, nil)
	case '*':
		l.emit(tokens.STAR, nil)
	case '!':
		l.emitOneOrTwo('=', tokens.BANG_EQUAL, tokens.BANG)
	case '=':
		l.emitOneOrTwo('=', tokens.EQUAL_EQUAL, tokens.EQUAL)
	case '<':
		l.emitOneOrTwo('=', tokens.LESS_EQUAL, tokens.LESS)
	case '>':
		l.emitOneOrTwo('=', tokens.GREATER_EQUAL, tokens.GREATER)
	case '/':
		if l.match('/') {
			// Comment runs until end of line, the newline itself is left
			// for the main loop so the line count stays right.
			for l.peek() != '\n' && !l.isAtEnd() {
				l.advance()
			}
		} else {
			l.emit(tokens.SLASH, nil)
		}

	// Ignore whitespace
	case ' ':
	case '\r':
	case '\t':

	case '\n':
		l.line++

	case '"':
		l.string()

	default:
		if isDigit(c) {
			l.number()
		} else if isAlpha(c) {
			l.identifier()
		} else {
			l.unexpected(c)
		}
	}
}

func (l *Lexer) unexpected(c byte) {
	if c >= utf8.RuneSelf {
		// Skip the whole rune so a multibyte character is reported once.
		_, size := utf8.DecodeRuneInString(l.source[l.start:])
		l.current = l.start + size
	}
	l.error(diag.ErrUnexpectedCharacter)
}

func (l *Lexer) string() {
	for l.peek() != '"' && !l.isAtEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}

	if l.isAtEnd() {
		l.error(diag.ErrUnterminatedString)
		return
	}

	// Consume ending "
	l.advance()

	literal := l.source[l.start+1 : l.current-1]
	l.emit(tokens.STRING, tokens.String(literal))
}

func (l *Lexer) number() {
	for isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	// Only digits and one inner dot were consumed, parsing cannot fail.
	literal, _ := strconv.ParseFloat(l.source[l.start:l.current], 64)

	l.emit(tokens.NUMBER, tokens.Number(literal))
}

func (l *Lexer) identifier() {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}

	identifier := l.source[l.start:l.current]

	l.emit(tokens.LookupIdent(identifier), nil)
}

func (l *Lexer) error(err error) {
	l.log.WithFields(logrus.Fields{
		"line":   l.line,
		"lexeme": l.source[l.start:l.current],
	}).WithError(err).Debug("lexical error")

	if l.reporter != nil {
		l.reporter.Report(l.line, err)
	}
}

func (l *Lexer) advance() byte {
	current := l.source[l.current]
	l.current++
	return current
}

func (l *Lexer) match(c byte) bool {
	if l.isAtEnd() || l.source[l.current] != c {
		return false
	}
	l.current++
	return true
}

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *Lexer) peekNext() byte {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

func (l *Lexer) emitOneOrTwo(next byte, two, one tokens.TokenType) {
	if l.match(next) {
		l.emit(two, nil)
	} else {
		l.emit(one, nil)
	}
}

func (l *Lexer) emit(token tokens.TokenType, literal tokens.Value) {
	l.tokens = append(l.tokens, tokens.New(
		token,
		l.source[l.start:l.current],
		literal,
		l.line,
	))
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
