package paradox

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMaxIncludeDepth bounds @include nesting; override with
// WithMaxIncludeDepth.
const DefaultMaxIncludeDepth = 10

// expandIncludes splices @include directives into the text before
// tokenization. A directive is a line whose first non-whitespace text is
// @include (case-insensitive) followed by a quoted or bare path, resolved
// relative to the including file's directory. Any failure (missing file,
// undecodable bytes, depth exceeded, cycle) is recorded as a parse error
// and the directive expands to nothing, so the rest of the file still
// parses.
//
// path is the file the text was read from; it seeds the in-progress stack
// so an include chain leading back to the root file is caught as a cycle
// before re-splicing the root's content.
func (p *Parser) expandIncludes(text, path string) string {
	if !strings.Contains(strings.ToLower(text), "@include") {
		return text
	}
	active := make(map[string]bool)
	if abs, err := filepath.Abs(path); err == nil {
		active[abs] = true
	}
	return p.expand(text, filepath.Dir(path), 0, active)
}

// expand processes one file's text. active is the stack of in-progress
// absolute paths used for cycle detection; entries are removed on return so
// diamond-shaped include graphs stay legal.
func (p *Parser) expand(text, dir string, depth int, active map[string]bool) string {
	lines := strings.Split(text, "\n")
	var sb strings.Builder

	for i, line := range lines {
		path, ok := includePath(line)
		if !ok {
			sb.WriteString(line)
			if i < len(lines)-1 {
				sb.WriteByte('\n')
			}
			continue
		}

		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}

		if depth >= p.maxIncludeDepth {
			p.includeError("include depth %d exceeded at %s", p.maxIncludeDepth, abs)
			continue
		}
		if active[abs] {
			p.includeError("include cycle detected at %s", abs)
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			p.includeError("include %s: %v", abs, err)
			continue
		}
		content, err := decodeBytes(data)
		if err != nil {
			p.includeError("include %s: %v", abs, err)
			continue
		}

		p.log.Debug("expanding include", "path", abs, "depth", depth)
		active[abs] = true
		sb.WriteString(p.expand(content, filepath.Dir(path), depth+1, active))
		delete(active, abs)
		if i < len(lines)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (p *Parser) includeError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	p.errors = append(p.errors, msg)
	p.log.Warn("include failed", "error", msg)
}

// includePath recognizes an @include directive line and extracts its path.
// The keyword is case-insensitive and must be followed by whitespace or a
// quote; the path is either double-quoted or runs to the next whitespace.
func includePath(line string) (string, bool) {
	const keyword = "@include"
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < len(keyword) || !strings.EqualFold(trimmed[:len(keyword)], keyword) {
		return "", false
	}
	rest := trimmed[len(keyword):]
	if rest == "" {
		return "", false
	}
	if rest[0] != ' ' && rest[0] != '\t' && rest[0] != '"' {
		return "", false
	}
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return "", false
	}

	if rest[0] == '"' {
		end := strings.IndexByte(rest[1:], '"')
		if end < 0 {
			return "", false
		}
		return rest[1 : 1+end], true
	}
	if i := strings.IndexAny(rest, " \t"); i >= 0 {
		rest = rest[:i]
	}
	return rest, true
}
