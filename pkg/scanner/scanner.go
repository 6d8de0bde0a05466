// Package scanner extracts exported names from TypeScript declaration
// documents (.d.ts).
//
// It is a constrained pattern scan rather than a parser. Comments are
// removed first, then the document is flattened to one line, then every `export {` / `export type {` clause is
// moved onto its own line and matched with a fixed pattern. Flattening first
// is what lets clauses spanning several source lines be recovered. Anything
// that is not a brace-delimited export clause is ignored.
package scanner

import (
	"regexp"
	"strings"
)

var (
	// clauseStart finds the opening of an export clause in flattened text.
	clauseStart = regexp.MustCompile(`export\s+(?:type\s*)?\{`)

	// clause matches a whole export clause at the start of a line. The body
	// ends at the first closing brace.
	clause = regexp.MustCompile(`^export(\s+type)?\s*\{([^}]*)\}`)

	// alias matches `local as exported`
	alias = regexp.MustCompile(`^([\w$]+)\s+as\s+([\w$]+)$`)

	// inlineType matches an entry carrying its own `type` modifier, as in
	// `export { type Foo }`
	inlineType = regexp.MustCompile(`^type\s+(.+)$`)
)

// Result holds the names a document exports, in encounter order.
// Duplicates are kept.
type Result struct {
	Values []string
	Types  []string
}

// IsEmpty reports whether nothing was exported
func (r Result) IsEmpty() bool {
	return len(r.Values) == 0 && len(r.Types) == 0
}

// Scan returns the exported value and type names declared in text.
func Scan(text string) Result {
	var result Result
	for _, line := range clauseLines(text) {
		m := clause.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		typeClause := m[1] != ""
		for _, entry := range splitEntries(m[2]) {
			name, isType := resolveEntry(entry)
			if typeClause || isType {
				result.Types = append(result.Types, name)
			} else {
				result.Values = append(result.Values, name)
			}
		}
	}
	return result
}

// clauseLines flattens text and splits it so every export clause starts a
// line. Blank lines are dropped.
func clauseLines(text string) []string {
	flat := strings.ReplaceAll(stripComments(text), "\n", " ")
	flat = clauseStart.ReplaceAllStringFunc(flat, func(s string) string {
		return "\n" + s
	})

	var lines []string
	for _, line := range strings.Split(flat, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// stripComments drops line comments and replaces block comments with a
// space. String literals are copied untouched and newlines are kept.
func stripComments(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	var quote byte
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case quote != 0:
			b.WriteByte(c)
			if c == '\\' && i+1 < len(text) {
				i++
				b.WriteByte(text[i])
			} else if c == quote || (c == '\n' && quote != '`') {
				quote = 0
			}
		case c == '"' || c == '\'' || c == '`':
			quote = c
			b.WriteByte(c)
		case strings.HasPrefix(text[i:], "//"):
			end := strings.IndexByte(text[i:], '\n')
			if end < 0 {
				return b.String()
			}
			i += end - 1
		case strings.HasPrefix(text[i:], "/*"):
			end := strings.Index(text[i+2:], "*/")
			if end < 0 {
				return b.String()
			}
			b.WriteByte(' ')
			i += end + 3
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func splitEntries(body string) []string {
	var entries []string
	for _, part := range strings.Split(body, ",") {
		if part = strings.TrimSpace(part); part != "" {
			entries = append(entries, part)
		}
	}
	return entries
}

// resolveEntry returns the exported name of a clause entry and whether the
// entry carried an inline type modifier.
func resolveEntry(entry string) (string, bool) {
	isType := false
	if m := inlineType.FindStringSubmatch(entry); m != nil && !alias.MatchString(entry) {
		isType = true
		entry = strings.TrimSpace(m[1])
	}
	if m := alias.FindStringSubmatch(entry); m != nil {
		return m[2], isType
	}
	return entry, isType
}
