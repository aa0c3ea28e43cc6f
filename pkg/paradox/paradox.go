// Package paradox provides parsing of Paradox script into a generic tree.
//
// Paradox script is the nested key = value configuration format used by
// grand-strategy game files: object blocks in braces, date-keyed historical
// blocks, # comments, and RGB color literals.
//
//	owner = FRA
//	color = { 157 51 167 }
//	1444.11.11 = {
//	    controller = ENG
//	    discovered_by = western
//	    discovered_by = eastern   # becomes a list
//	}
//
// The result is an ast.Node tree queried through ast.GetChild, ast.Value,
// ast.GetChildren, and ast.HasChild; consumers never see tokens.
//
// # Error handling
//
// Parsing never fails on malformed content. Structural errors are
// accumulated per call and exposed through Errors and Warnings, and the
// caller always receives a usable (possibly partial) tree. Only file-level
// problems (a missing path, undecodable bytes) surface as errors from
// ParseFile, as the sentinel kinds ErrNotFound and ErrEncoding.
//
// # Thread Safety
//
// A Parser carries per-invocation state (error lists, stats) and is not
// safe for concurrent use. Independent Parser instances share nothing and
// may run concurrently; batch parsing of many files is an embarrassingly
// parallel fan-out with one Parser per goroutine.
//
//	// Safe: concurrent parsing with separate parsers
//	go func() { paradox.New().Parse(input1) }()
//	go func() { paradox.New().Parse(input2) }()
package paradox

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/shapestone/shape-paradox/internal/parser"
	"github.com/shapestone/shape-paradox/internal/tokenizer"
	"github.com/shapestone/shape-paradox/pkg/ast"
)

var (
	// ErrNotFound reports that the path given to ParseFile does not exist.
	ErrNotFound = errors.New("paradox: file not found")

	// ErrEncoding reports input bytes that decode under none of the
	// supported encodings.
	ErrEncoding = errors.New("paradox: undecodable input")
)

// Stats carries per-invocation parse counters. It is reset at the start of
// every Parse/ParseFile call and carries no cross-call state.
type Stats struct {
	Tokens     int
	Statements int
	Errors     int
	Warnings   int
	Elapsed    time.Duration
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the structured logger used for file and include
// diagnostics. The default discards all output.
func WithLogger(log *slog.Logger) Option {
	return func(p *Parser) { p.log = log }
}

// WithMaxIncludeDepth overrides the @include recursion bound
// (DefaultMaxIncludeDepth).
func WithMaxIncludeDepth(n int) Option {
	return func(p *Parser) { p.maxIncludeDepth = n }
}

// WithInterner sets the string-interning cache applied to statement keys.
// Keys repeat heavily across game files, so a shared cache cuts retained
// memory when many files are parsed; interning is orthogonal to parsing
// correctness and defaults to off.
func WithInterner(cache InternCache) Option {
	return func(p *Parser) { p.interner = cache }
}

// Parser is the parse entry point. It wraps the tokenizer and the tree
// parser with encoding detection, @include expansion, and per-call
// error/warning accumulation.
type Parser struct {
	log             *slog.Logger
	maxIncludeDepth int
	interner        InternCache

	errors   []string
	warnings []string
	stats    Stats
}

// New creates a Parser with the given options.
func New(opts ...Option) *Parser {
	p := &Parser{
		log:             slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxIncludeDepth: DefaultMaxIncludeDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// builder turns a token sequence into a tree. The generic tree parser is
// the default strategy; a schema-restricted validator walk can plug in here
// and reuse tokenization and error accumulation without duplicating them.
type builder interface {
	Build(tokens []tokenizer.Token) (ast.Node, []parser.Issue, []parser.Issue, int)
}

// treeBuilder is the default strategy: the full recursive-descent parse.
type treeBuilder struct {
	intern func(string) string
}

func (b treeBuilder) Build(tokens []tokenizer.Token) (ast.Node, []parser.Issue, []parser.Issue, int) {
	pr := parser.New(tokens, b.intern)
	root := pr.Parse()
	return root, pr.Errors(), pr.Warnings(), pr.Statements()
}

// Parse parses script text into a tree. It never returns nil: on
// unrecoverable input the result is an empty root object and the error log
// is populated. Errors, warnings, and stats are reset at the start of the
// call.
func (p *Parser) Parse(input string) ast.Node {
	p.reset()
	return p.run(input, p.builder())
}

// ParseFile reads, decodes, and parses a script file. On top of Parse it
// performs encoding detection (UTF-8/UTF-16 byte-order marks, UTF-8
// round-trip, Windows-1252 fallback) and @include expansion. The returned
// error is non-nil only for file-level failures (ErrNotFound, ErrEncoding);
// even then the returned tree is a usable empty root.
func (p *Parser) ParseFile(path string) (ast.Node, error) {
	p.reset()
	start := time.Now()
	defer func() { p.stats.Elapsed = time.Since(start) }()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ast.NewObjectNode("root"), fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return ast.NewObjectNode("root"), fmt.Errorf("reading %s: %w", path, err)
	}

	text, err := decodeBytes(data)
	if err != nil {
		return ast.NewObjectNode("root"), fmt.Errorf("%s: %w", path, err)
	}

	text = p.expandIncludes(text, path)

	node := p.run(text, p.builder())

	p.log.Debug("parsed file",
		"path", path,
		"statements", p.stats.Statements,
		"errors", p.stats.Errors,
		"elapsed", p.stats.Elapsed)
	return node, nil
}

// Errors returns the error messages accumulated by the last parse call.
func (p *Parser) Errors() []string { return p.errors }

// Warnings returns the warning messages accumulated by the last parse call.
func (p *Parser) Warnings() []string { return p.warnings }

// Stats returns the counters for the last parse call.
func (p *Parser) Stats() Stats { return p.stats }

// Validate checks whether input is structurally valid script. It parses
// with a throwaway Parser and discards the tree, returning the first
// structural error or nil.
func Validate(input string) error {
	p := New()
	p.Parse(input)
	if len(p.errors) > 0 {
		return fmt.Errorf("invalid script: %s", p.errors[0])
	}
	return nil
}

// run is the shared parse template: tokenize once, then delegate tree
// construction to the strategy. It appends to the current invocation's
// logs rather than resetting, so entry points can stage work (include
// expansion) before the parse proper.
func (p *Parser) run(input string, b builder) ast.Node {
	start := time.Now()
	tokens := tokenizer.Tokenize(input)

	node, errs, warns, statements := b.Build(tokens)
	for _, issue := range errs {
		p.errors = append(p.errors, issue.String())
	}
	for _, issue := range warns {
		p.warnings = append(p.warnings, issue.String())
	}

	p.stats.Tokens = len(tokens)
	p.stats.Statements = statements
	p.stats.Errors = len(p.errors)
	p.stats.Warnings = len(p.warnings)
	p.stats.Elapsed = time.Since(start)
	return node
}

func (p *Parser) builder() builder {
	return treeBuilder{intern: p.internFunc()}
}

func (p *Parser) internFunc() func(string) string {
	if p.interner == nil {
		return nil
	}
	return p.interner.Intern
}

// reset clears the per-invocation error/warning lists and counters. Every
// public parse entry point calls this first; no state crosses invocations.
func (p *Parser) reset() {
	p.errors = nil
	p.warnings = nil
	p.stats = Stats{}
}
