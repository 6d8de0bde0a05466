package types

// PackageExportSet holds the exports recovered from one package's
// declaration document.
type PackageExportSet struct {
	// Name is the npm package name, e.g. "@remix-run/react"
	Name string

	// Version comes from the package metadata and is informational only
	Version string

	// Values are exported value names in document order. Duplicates are
	// possible and are removed during aggregation.
	Values []string

	// Types are exported type names in document order
	Types []string

	// Overrides holds names excluded from this package's own statements
	// because the override mechanism surfaces them instead.
	Overrides NameSet
}

// NameSet is a set of export names.
type NameSet map[string]struct{}

// NewNameSet creates a set holding names
func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports membership. A nil set is empty.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Add inserts name into the set
func (s NameSet) Add(name string) {
	s[name] = struct{}{}
}
