// Package parser implements recursive descent parsing of Paradox script
// into the generic tree. Each production in the grammar corresponds to a
// parse function:
//
//	file      = statement* EOF ;
//	statement = ( DATE | IDENT ) operator ( "{" body "}" | value ) ;
//	body      = statement* | value* ;
//	value     = STRING | NUMBER | DATE | YES | NO | IDENT | COLOR ;
//
// The parser never fails outright on malformed content: structural errors
// are accumulated with their source position and the offending statement is
// skipped, so one bad line never corrupts parsing of the statements around
// it. Callers always receive a usable (possibly partial) tree.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shapestone/shape-paradox/internal/tokenizer"
	"github.com/shapestone/shape-paradox/pkg/ast"
)

// Issue is one accumulated parse diagnostic with its source position.
type Issue struct {
	Message string
	Line    int
	Column  int
}

func (i Issue) String() string {
	return fmt.Sprintf("%d:%d: %s", i.Line, i.Column, i.Message)
}

// Parser consumes a token sequence and builds the tree. State is one token
// index plus the accumulated diagnostics; a Parser is single-use.
type Parser struct {
	tokens     []tokenizer.Token
	pos        int
	errors     []Issue
	warnings   []Issue
	statements int
	intern     func(string) string
}

// New creates a parser over the given token sequence. intern, when non-nil,
// is applied to statement keys before node construction.
func New(tokens []tokenizer.Token, intern func(string) string) *Parser {
	if intern == nil {
		intern = func(s string) string { return s }
	}
	return &Parser{tokens: tokens, intern: intern}
}

// Parse builds the tree. The result is always an object keyed "root", even
// for empty or comment-only input; root-level duplicate keys overwrite
// (last-write-wins).
func (p *Parser) Parse() *ast.ObjectNode {
	root := ast.NewObjectNode("root")
	for {
		p.skipComments()
		if p.atEOF() {
			break
		}
		before := p.pos
		node, ok := p.parseStatement()
		if ok {
			root.AddChild(node)
		} else if p.pos == before {
			// Recovery stopped without consuming (e.g. a stray '}' at the
			// top level); force progress.
			p.advance()
		}
	}
	return root
}

// Errors returns the structural errors accumulated during Parse.
func (p *Parser) Errors() []Issue { return p.errors }

// Warnings returns the warnings accumulated during Parse.
func (p *Parser) Warnings() []Issue { return p.warnings }

// Statements returns the number of statements successfully parsed.
func (p *Parser) Statements() int { return p.statements }

// parseStatement parses one key-operator-value statement. On malformed
// input it logs an error, recovers to the next plausible statement start,
// and reports ok=false.
func (p *Parser) parseStatement() (ast.Node, bool) {
	key := p.current()
	if !key.IsKey() {
		p.errorf(key, "expected statement key, got %s %q", key.Kind, key.Literal)
		if key.IsOperator() {
			// An orphaned operator: swallow it and its value, so the value
			// is not mistaken for the next statement's key and re-reported.
			p.advance()
			if p.current().IsValue() && !p.peekNonComment(1).IsOperator() {
				p.advance()
			} else if !p.current().IsKey() {
				p.recoverStatement()
			}
			return nil, false
		}
		p.recoverStatement()
		return nil, false
	}
	p.advance()

	op := p.current()
	if !op.IsOperator() {
		p.errorf(op, "expected '=' after key %q", key.Literal)
		p.recoverStatement()
		return nil, false
	}
	if op.Kind != tokenizer.TokenEquals {
		p.warnf(op, "comparison operator %q after key %q treated as assignment", op.Literal, key.Literal)
	}
	p.advance()

	var node ast.Node
	var ok bool
	if p.current().Kind == tokenizer.TokenLBrace {
		node, ok = p.parseBlock(key)
	} else {
		node, ok = p.parseValue(key)
	}
	if ok {
		p.statements++
	}
	return node, ok
}

// parseBlock parses '{' body '}' for the given key token. A date key
// yields a DateNode; an identifier key yields an ObjectNode, or a ListNode
// when the body is a bare value sequence rather than statements.
func (p *Parser) parseBlock(key tokenizer.Token) (ast.Node, bool) {
	open := p.current()
	p.advance() // '{'

	if key.Kind == tokenizer.TokenDate {
		date, err := ast.ParseDate(key.Literal)
		if err != nil {
			// Tokenizer pre-validation makes this unreachable for date
			// tokens; guard anyway.
			p.errorf(key, "malformed date key %q: %v", key.Literal, err)
			p.recoverStatement()
			return nil, false
		}
		node := ast.NewDateNode(p.intern(key.Literal), date)
		p.parseBody(node, open)
		return node, true
	}

	if p.bodyIsValueList() {
		node := ast.NewListNode(p.intern(key.Literal))
		p.parseListBody(node, open)
		return node, true
	}

	node := ast.NewObjectNode(p.intern(key.Literal))
	p.parseBody(node, open)
	return node, true
}

// bodyIsValueList decides how to parse a freshly opened block: a body whose
// first entry is a key followed by an operator is statements, anything else
// that starts with a value is a bare list.
func (p *Parser) bodyIsValueList() bool {
	first := p.peekNonComment(0)
	if !first.IsValue() && first.Kind != tokenizer.TokenLBrace {
		return false
	}
	if first.IsKey() {
		second := p.peekNonComment(1)
		if second.IsOperator() {
			return false
		}
	}
	return true
}

// parseBody parses statements into a container until the matching '}'.
// Children are inserted with accumulating semantics, so repeated keys
// collapse into a list.
func (p *Parser) parseBody(node ast.Container, open tokenizer.Token) {
	for {
		p.skipComments()
		if p.atEOF() {
			p.errorf(open, "unexpected end of file in block opened here")
			return
		}
		if p.current().Kind == tokenizer.TokenRBrace {
			p.advance()
			return
		}
		if child, ok := p.parseStatement(); ok {
			node.AddChildAccumulating(child)
		}
	}
}

// parseListBody parses bare values (and nested blocks) into a list until
// the matching '}'.
func (p *Parser) parseListBody(node *ast.ListNode, open tokenizer.Token) {
	for {
		p.skipComments()
		if p.atEOF() {
			p.errorf(open, "unexpected end of file in list opened here")
			return
		}
		tok := p.current()
		switch {
		case tok.Kind == tokenizer.TokenRBrace:
			p.advance()
			return
		case tok.Kind == tokenizer.TokenLBrace:
			if item, ok := p.parseBlock(tokenizer.Token{Kind: tokenizer.TokenIdent}); ok {
				node.Append(item)
			}
		case tok.IsValue():
			node.Append(ast.NewScalarNode("", p.scalarValue(tok)))
			p.advance()
		default:
			p.errorf(tok, "unexpected %s %q in list", tok.Kind, tok.Literal)
			p.advance()
		}
	}
}

// parseValue parses a scalar right-hand side for the given key token.
func (p *Parser) parseValue(key tokenizer.Token) (ast.Node, bool) {
	tok := p.current()
	if !tok.IsValue() {
		p.errorf(tok, "expected value after key %q, got %s %q", key.Literal, tok.Kind, tok.Literal)
		p.recoverStatement()
		return nil, false
	}
	p.advance()
	return ast.NewScalarNode(p.intern(key.Literal), p.scalarValue(tok)), true
}

// scalarValue coerces a value token to its parse-time representation:
// strings are unquoted, numbers try integer then float then raw text,
// yes/no and case-insensitive yes/true/no/false identifiers become
// booleans, date tokens become Date values, and color tokens become their
// canonical "r g b" text.
func (p *Parser) scalarValue(tok tokenizer.Token) any {
	switch tok.Kind {
	case tokenizer.TokenString:
		return unquote(tok.Literal)

	case tokenizer.TokenNumber:
		if i, err := strconv.ParseInt(tok.Literal, 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(tok.Literal, 64); err == nil {
			return f
		}
		return tok.Literal

	case tokenizer.TokenDate:
		date, err := ast.ParseDate(tok.Literal)
		if err != nil {
			p.errorf(tok, "malformed date %q: %v", tok.Literal, err)
			return tok.Literal
		}
		return date

	case tokenizer.TokenYes:
		return true

	case tokenizer.TokenNo:
		return false

	case tokenizer.TokenColor:
		return colorText(tok.Literal)

	default: // TokenIdent
		switch strings.ToLower(tok.Literal) {
		case "yes", "true":
			return true
		case "no", "false":
			return false
		}
		return tok.Literal
	}
}

// recoverStatement abandons the current statement: it skips forward,
// treating brace groups as single balanced units, until the next plausible
// statement start (an identifier or date token at depth zero), the closing
// brace of the enclosing block, or end of file.
func (p *Parser) recoverStatement() {
	depth := 0
	for !p.atEOF() {
		tok := p.current()
		switch tok.Kind {
		case tokenizer.TokenLBrace:
			depth++
		case tokenizer.TokenRBrace:
			if depth == 0 {
				// Enclosing block's close; leave it for the caller.
				return
			}
			depth--
		default:
			if depth == 0 && tok.IsKey() {
				return
			}
		}
		p.advance()
	}
}

// Helper methods

// current returns the token at the cursor; at end of input it returns the
// trailing EOF token.
func (p *Parser) current() tokenizer.Token {
	if p.pos >= len(p.tokens) {
		return tokenizer.Token{Kind: tokenizer.TokenEOF}
	}
	return p.tokens[p.pos]
}

// peekNonComment returns the n-th non-comment token at or after the cursor
// without advancing.
func (p *Parser) peekNonComment(n int) tokenizer.Token {
	seen := 0
	for i := p.pos; i < len(p.tokens); i++ {
		if p.tokens[i].Kind == tokenizer.TokenComment {
			continue
		}
		if seen == n {
			return p.tokens[i]
		}
		seen++
	}
	return tokenizer.Token{Kind: tokenizer.TokenEOF}
}

func (p *Parser) advance() {
	if p.pos < len(p.tokens) {
		p.pos++
	}
}

func (p *Parser) atEOF() bool {
	return p.current().Kind == tokenizer.TokenEOF
}

func (p *Parser) skipComments() {
	for p.current().Kind == tokenizer.TokenComment {
		p.advance()
	}
}

func (p *Parser) errorf(tok tokenizer.Token, format string, args ...any) {
	p.errors = append(p.errors, Issue{
		Message: fmt.Sprintf(format, args...),
		Line:    tok.Line,
		Column:  tok.Column,
	})
}

func (p *Parser) warnf(tok tokenizer.Token, format string, args ...any) {
	p.warnings = append(p.warnings, Issue{
		Message: fmt.Sprintf(format, args...),
		Line:    tok.Line,
		Column:  tok.Column,
	})
}

// unquote strips the surrounding double quotes from a string literal and
// resolves the \" escape. An unterminated string (EOF before the closing
// quote) keeps whatever content was scanned.
func unquote(s string) string {
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return strings.ReplaceAll(s, `\"`, `"`)
}

// colorText canonicalizes an RGB literal "{ 10 20 30 }" to "10 20 30".
func colorText(s string) string {
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")
	return strings.Join(strings.Fields(s), " ")
}
