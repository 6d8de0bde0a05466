// Package render turns an aggregated Output into the text of the generated
// TypeScript module.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/arthur-debert/gen-remix/pkg/types"
)

// Generator names the tool in the banner comment
const Generator = "gen-remix"

// TimestampFormat is the banner timestamp layout, always rendered in UTC
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// Render returns the generated module text for out, stamped with now.
func Render(out *types.Output, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "// This file was generated by %s at %s\n", Generator, now.UTC().Format(TimestampFormat))
	for _, pkg := range out.Packages {
		fmt.Fprintf(&b, "\n// %s@%s", pkg.Name, pkg.Version)
	}

	if out.HasOverrides() {
		b.WriteString("\n\n// import overrides")
		for _, st := range out.Imports {
			b.WriteString("\n")
			b.WriteString(Statement(st))
		}
	}

	b.WriteString("\n\n// export packages")
	for _, st := range out.Exports {
		b.WriteString("\n")
		b.WriteString(Statement(st))
	}

	if out.HasOverrides() {
		b.WriteString("\n\n// export overrides\n")
		b.WriteString(Statement(*out.OverrideExport))
	}

	return b.String()
}

// Statement renders one statement: one specifier per line, two-space
// indent, trailing commas.
func Statement(st types.Statement) string {
	lines := make([]string, len(st.Specifiers))
	for i, spec := range st.Specifiers {
		lines[i] = "  " + specifier(spec) + ","
	}

	var b strings.Builder
	b.WriteString(st.Kind.String())
	b.WriteString(" {\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n}")
	if st.Source != "" {
		fmt.Fprintf(&b, " from %q", st.Source)
	}
	b.WriteString(";")
	return b.String()
}

func specifier(s types.Specifier) string {
	if s.Alias == "" || s.Alias == s.Name {
		return s.Name
	}
	return s.Name + " as " + s.Alias
}
