package types

// StatementKind distinguishes the statements of a generated file.
type StatementKind int

const (
	// StatementImport is `import { ... } from "pkg";`
	StatementImport StatementKind = iota
	// StatementExport is `export { ... } from "pkg";` or, without a
	// source, `export { ... };`
	StatementExport
	// StatementExportType is `export type { ... } from "pkg";`
	StatementExportType
)

// String returns the keyword sequence opening the statement
func (k StatementKind) String() string {
	switch k {
	case StatementImport:
		return "import"
	case StatementExport:
		return "export"
	case StatementExportType:
		return "export type"
	default:
		return "unknown"
	}
}

// Specifier is one entry inside a statement's braces. An empty Alias means
// the name is listed bare; otherwise it renders as `Name as Alias`.
type Specifier struct {
	Name  string
	Alias string
}

// PublicName is the name a specifier exposes
func (s Specifier) PublicName() string {
	if s.Alias != "" {
		return s.Alias
	}
	return s.Name
}

// Statement is one import or export statement.
type Statement struct {
	Kind       StatementKind
	Source     string // empty for the combined override export
	Specifiers []Specifier
}

// Names returns the bare names of the statement's specifiers
func (s Statement) Names() []string {
	names := make([]string, len(s.Specifiers))
	for i, spec := range s.Specifiers {
		names[i] = spec.Name
	}
	return names
}

// PackageHeader identifies one aggregated package in the banner.
type PackageHeader struct {
	Name    string
	Version string
}

// Collision records a name dropped from a package because an earlier
// package already exported it.
type Collision struct {
	Name    string
	Kept    string
	Dropped string
}

// Output is the aggregated result, ready to render.
type Output struct {
	Packages       []PackageHeader
	Imports        []Statement
	Exports        []Statement
	OverrideExport *Statement
	Collisions     []Collision
}

// HasOverrides reports whether the override sections are present
func (o *Output) HasOverrides() bool {
	return o.OverrideExport != nil
}

// PublicNames lists every exported public name in emission order
func (o *Output) PublicNames() []string {
	var names []string
	for _, st := range o.Exports {
		for _, spec := range st.Specifiers {
			names = append(names, spec.PublicName())
		}
	}
	if o.OverrideExport != nil {
		for _, spec := range o.OverrideExport.Specifiers {
			names = append(names, spec.PublicName())
		}
	}
	return names
}
