package types

// OverrideSpec maps target package -> original package -> original export
// name -> new export name. It is kept as ordered association lists so that
// emission order follows the configuration document, not map iteration.
type OverrideSpec []TargetOverride

// TargetOverride lists the symbols a target package supplies in place of
// other packages' exports.
type TargetOverride struct {
	Target    string
	Originals []OriginalOverride
}

// OriginalOverride lists the exports of Package that are replaced.
type OriginalOverride struct {
	Package string
	Renames []Rename
}

// Rename says the export Original should be sourced from the target
// package's export New.
type Rename struct {
	Original string
	New      string
}

// IsIdentity reports whether no renaming is needed
func (r Rename) IsIdentity() bool {
	return r.Original == r.New
}

// IsEmpty reports whether the spec holds no target packages
func (s OverrideSpec) IsEmpty() bool {
	return len(s) == 0
}
