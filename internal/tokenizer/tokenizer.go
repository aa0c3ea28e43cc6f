package tokenizer

import (
	"strings"

	"github.com/shapestone/shape-paradox/pkg/ast"
)

// Tokenizer converts Paradox script text into a flat token sequence.
//
// Scanning rules, in dispatch priority:
//
//  1. '#' begins a line comment, consumed to end of line
//  2. '"' begins a quoted string; \" is an escaped quote
//  3. '=' is the assignment operator
//  4. '{' is first tested via bounded lookahead for an RGB color literal;
//     if the lookahead fails the cursor is restored and '{' is re-scanned
//     as a plain left brace
//  5. '}', '>', '<', '>=', '<=', '!=' scan literally; a bare '!' is dropped
//  6. a leading digit (or '-' digit) starts a number-or-date scan
//  7. a letter or '_' starts an identifier-or-date scan; yes/no become
//     boolean tokens
//  8. any other character is skipped silently
//
// The only speculative state is the cursor itself; every lookahead saves
// and restores position, line, and column atomically via checkpoint.
type Tokenizer struct {
	data   []byte
	pos    int
	length int
	line   int
	column int
}

// checkpoint captures the scanner cursor so speculative scans (RGB
// detection, date suffix detection) can roll back exactly.
type checkpoint struct {
	pos    int
	line   int
	column int
}

// New creates a tokenizer for the given input.
func New(input string) *Tokenizer {
	return &Tokenizer{
		data:   []byte(input),
		pos:    0,
		length: len(input),
		line:   1,
		column: 1,
	}
}

// Tokenize scans the whole input and returns the token sequence, terminated
// by a single EOF token. Whitespace is filtered; comments are emitted as
// tokens so the parser can skip them explicitly.
func Tokenize(input string) []Token {
	return New(input).Tokenize()
}

// Tokenize scans the remaining input and returns the token sequence.
func (t *Tokenizer) Tokenize() []Token {
	var tokens []Token
	for {
		tok, ok := t.next()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}
	tokens = append(tokens, Token{
		Kind:   TokenEOF,
		Line:   t.line,
		Column: t.column,
		Offset: t.pos,
	})
	return tokens
}

// next scans one token, skipping whitespace and unrecognized characters.
// It returns false at end of input.
func (t *Tokenizer) next() (Token, bool) {
	for t.pos < t.length {
		b := t.data[t.pos]

		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			t.advance()
			continue
		}

		start := t.mark()

		switch {
		case b == '#':
			return t.scanComment(start), true

		case b == '"':
			return t.scanString(start), true

		case b == '=':
			t.advance()
			return t.emit(TokenEquals, "=", start), true

		case b == '{':
			if tok, ok := t.scanColor(start); ok {
				return tok, true
			}
			t.advance()
			return t.emit(TokenLBrace, "{", start), true

		case b == '}':
			t.advance()
			return t.emit(TokenRBrace, "}", start), true

		case b == '>':
			t.advance()
			if t.pos < t.length && t.data[t.pos] == '=' {
				t.advance()
				return t.emit(TokenGreaterEq, ">=", start), true
			}
			return t.emit(TokenGreater, ">", start), true

		case b == '<':
			t.advance()
			if t.pos < t.length && t.data[t.pos] == '=' {
				t.advance()
				return t.emit(TokenLessEq, "<=", start), true
			}
			return t.emit(TokenLess, "<", start), true

		case b == '!':
			t.advance()
			if t.pos < t.length && t.data[t.pos] == '=' {
				t.advance()
				return t.emit(TokenNotEq, "!=", start), true
			}
			// A bare '!' is not a valid token; drop it.
			continue

		case isDigit(b) || (b == '-' && t.pos+1 < t.length && isDigit(t.data[t.pos+1])):
			return t.scanNumberOrDate(start), true

		case isIdentStart(b):
			return t.scanIdentOrDate(start), true

		default:
			// Unrecognized character: skipped, no token, no error.
			t.advance()
		}
	}
	return Token{}, false
}

// scanComment consumes '#' to end of line, not including the newline.
func (t *Tokenizer) scanComment(start checkpoint) Token {
	for t.pos < t.length && t.data[t.pos] != '\n' {
		t.advance()
	}
	return t.emit(TokenComment, t.slice(start), start)
}

// scanString consumes a double-quoted string with \" as the only escape.
// The string runs to the next unescaped quote or end of input; the literal
// retains the surrounding quotes (the parser unwraps them).
func (t *Tokenizer) scanString(start checkpoint) Token {
	t.advance() // opening quote
	for t.pos < t.length {
		b := t.data[t.pos]
		if b == '\\' && t.pos+1 < t.length && t.data[t.pos+1] == '"' {
			t.advance()
			t.advance()
			continue
		}
		t.advance()
		if b == '"' {
			break
		}
	}
	return t.emit(TokenString, t.slice(start), start)
}

// scanColor attempts to scan '{ r g b }' as an RGB color literal: exactly
// three whitespace-separated integers each in [0,255] followed by '}', with
// no digit immediately after the closing brace (so a numeric list block
// like { 10 20 30 40 } is not misclassified). On failure the cursor is
// restored exactly and ok is false.
func (t *Tokenizer) scanColor(start checkpoint) (Token, bool) {
	t.advance() // '{'

	for i := 0; i < 3; i++ {
		if !t.skipSpace() {
			t.restore(start)
			return Token{}, false
		}
		if i > 0 && !t.atSpaceBoundary() {
			t.restore(start)
			return Token{}, false
		}
		if !t.scanColorComponent() {
			t.restore(start)
			return Token{}, false
		}
	}

	t.skipSpace()
	if t.pos >= t.length || t.data[t.pos] != '}' {
		t.restore(start)
		return Token{}, false
	}
	t.advance() // '}'

	// A digit immediately after the brace means this was a slice of a
	// larger numeric block, not a color.
	if t.pos < t.length && isDigit(t.data[t.pos]) {
		t.restore(start)
		return Token{}, false
	}

	return t.emit(TokenColor, t.slice(start), start), true
}

// scanColorComponent consumes one integer in [0,255]. A trailing '.' or a
// fourth digit disqualifies the component.
func (t *Tokenizer) scanColorComponent() bool {
	startPos := t.pos
	value := 0
	for t.pos < t.length && isDigit(t.data[t.pos]) {
		value = value*10 + int(t.data[t.pos]-'0')
		if value > 255 {
			return false
		}
		t.advance()
	}
	if t.pos == startPos {
		return false
	}
	if t.pos < t.length && t.data[t.pos] == '.' {
		return false
	}
	return true
}

// skipSpace consumes whitespace and reports whether any input remains.
func (t *Tokenizer) skipSpace() bool {
	for t.pos < t.length {
		b := t.data[t.pos]
		if b != ' ' && b != '\t' && b != '\n' && b != '\r' {
			return true
		}
		t.advance()
	}
	return false
}

// atSpaceBoundary reports whether the previous byte was whitespace, i.e.
// the components were actually separated.
func (t *Tokenizer) atSpaceBoundary() bool {
	if t.pos == 0 {
		return false
	}
	switch t.data[t.pos-1] {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// scanNumberOrDate consumes digits and '.' greedily, then classifies the
// literal: year.month.day with valid ranges is a date, anything else is a
// number (integer vs. float is decided by the parser).
func (t *Tokenizer) scanNumberOrDate(start checkpoint) Token {
	if t.data[t.pos] == '-' {
		t.advance()
	}
	for t.pos < t.length && (isDigit(t.data[t.pos]) || t.data[t.pos] == '.') {
		t.advance()
	}

	literal := t.slice(start)
	if ast.IsValidDate(literal) {
		return t.emit(TokenDate, literal, start)
	}
	return t.emit(TokenNumber, literal, start)
}

// scanIdentOrDate consumes an identifier (letters, digits, '_', ':'). If
// the identifier is immediately followed by '.', the scanner speculatively
// extends it with the date pattern and backtracks to the plain identifier
// when the combined text does not validate as a date. Case-insensitive
// yes/no become dedicated boolean tokens.
func (t *Tokenizer) scanIdentOrDate(start checkpoint) Token {
	for t.pos < t.length && isIdentPart(t.data[t.pos]) {
		t.advance()
	}

	if t.pos < t.length && t.data[t.pos] == '.' {
		mark := t.mark()
		for t.pos < t.length && (isDigit(t.data[t.pos]) || t.data[t.pos] == '.') {
			t.advance()
		}
		extended := t.slice(start)
		if ast.IsValidDate(extended) {
			return t.emit(TokenDate, extended, start)
		}
		t.restore(mark)
	}

	literal := t.slice(start)
	if strings.EqualFold(literal, "yes") {
		return t.emit(TokenYes, literal, start)
	}
	if strings.EqualFold(literal, "no") {
		return t.emit(TokenNo, literal, start)
	}
	return t.emit(TokenIdent, literal, start)
}

// Cursor helpers

// advance consumes one byte, incrementing line and resetting column at '\n'.
func (t *Tokenizer) advance() {
	if t.data[t.pos] == '\n' {
		t.line++
		t.column = 1
	} else {
		t.column++
	}
	t.pos++
}

func (t *Tokenizer) mark() checkpoint {
	return checkpoint{pos: t.pos, line: t.line, column: t.column}
}

func (t *Tokenizer) restore(c checkpoint) {
	t.pos = c.pos
	t.line = c.line
	t.column = c.column
}

func (t *Tokenizer) slice(start checkpoint) string {
	return string(t.data[start.pos:t.pos])
}

func (t *Tokenizer) emit(kind, literal string, start checkpoint) Token {
	return Token{
		Kind:    kind,
		Literal: literal,
		Line:    start.line,
		Column:  start.column,
		Offset:  start.pos,
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isIdentStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || isDigit(b) || b == ':'
}
