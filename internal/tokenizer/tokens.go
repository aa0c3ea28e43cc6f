// Package tokenizer provides lexical analysis for Paradox script.
package tokenizer

// Token type constants for Paradox script.
// These correspond to the terminals in the statement grammar
// (key '=' value | key '=' '{' body '}').
const (
	// Structural tokens
	TokenEquals = "Equals" // =
	TokenLBrace = "LBrace" // {
	TokenRBrace = "RBrace" // }

	// Comparison operators (trigger/condition statements)
	TokenGreater   = "Greater"   // >
	TokenLess      = "Less"      // <
	TokenGreaterEq = "GreaterEq" // >=
	TokenLessEq    = "LessEq"    // <=
	TokenNotEq     = "NotEq"     // !=

	// Value tokens
	TokenIdent  = "Ident"  // bare identifier (letters, digits, _, :)
	TokenString = "String" // "..." with \" escape
	TokenNumber = "Number" // 123, -45.67
	TokenDate   = "Date"   // 1444.11.11
	TokenYes    = "Yes"    // yes (case-insensitive)
	TokenNo     = "No"     // no (case-insensitive)
	TokenColor  = "Color"  // { r g b } RGB literal

	// Special tokens
	TokenComment = "Comment" // # ... (retained so the parser can skip explicitly)
	TokenEOF     = "EOF"     // End of file
)

// Token is one lexical unit with its source position. Tokens are immutable
// once produced; the token sequence is the sole interface between the
// tokenizer and the parser.
type Token struct {
	Kind    string
	Literal string
	Line    int // 1-based
	Column  int // 1-based
	Offset  int // absolute byte offset
}

// IsValue reports whether the token can appear on the right-hand side of an
// assignment.
func (t Token) IsValue() bool {
	switch t.Kind {
	case TokenIdent, TokenString, TokenNumber, TokenDate, TokenYes, TokenNo, TokenColor:
		return true
	}
	return false
}

// IsKey reports whether the token can start a statement.
func (t Token) IsKey() bool {
	return t.Kind == TokenIdent || t.Kind == TokenDate
}

// IsOperator reports whether the token separates a key from its value.
func (t Token) IsOperator() bool {
	switch t.Kind {
	case TokenEquals, TokenGreater, TokenLess, TokenGreaterEq, TokenLessEq, TokenNotEq:
		return true
	}
	return false
}
