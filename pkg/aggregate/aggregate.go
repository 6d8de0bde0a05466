package aggregate

import (
	"github.com/arthur-debert/gen-remix/pkg/errors"
	"github.com/arthur-debert/gen-remix/pkg/types"
)

// Aggregate merges the export sets of packages, in the order given, into
// one collision-free Output. overrides may be nil.
func Aggregate(packages []types.PackageExportSet, overrides types.OverrideSpec) (*types.Output, error) {
	known := types.NewNameSet()
	out := &types.Output{}
	for _, pkg := range packages {
		if known.Has(pkg.Name) {
			return nil, errors.Newf(errors.ErrConfigValid, "package %q is listed more than once", pkg.Name).
				WithDetail("package", pkg.Name)
		}
		known.Add(pkg.Name)
		out.Packages = append(out.Packages, types.PackageHeader{Name: pkg.Name, Version: pkg.Version})
	}

	// name -> package that exports it
	owners := make(map[string]string)

	var plan *overridePlan
	if !overrides.IsEmpty() {
		var err error
		plan, err = planOverrides(overrides, known)
		if err != nil {
			return nil, err
		}
		out.Imports = plan.imports
		for name, target := range plan.owners {
			owners[name] = target
		}
	}

	for _, pkg := range packages {
		suppressed := pkg.Overrides
		if plan != nil {
			suppressed = merge(suppressed, plan.suppressed[pkg.Name])
		}

		values, dropped := filterNames(pkg.Name, pkg.Values, suppressed, owners)
		out.Collisions = append(out.Collisions, dropped...)
		out.Exports = append(out.Exports, types.Statement{
			Kind:       types.StatementExport,
			Source:     pkg.Name,
			Specifiers: bare(values),
		})

		if len(pkg.Types) == 0 {
			continue
		}
		typeNames, dropped := filterNames(pkg.Name, pkg.Types, suppressed, owners)
		out.Collisions = append(out.Collisions, dropped...)
		out.Exports = append(out.Exports, types.Statement{
			Kind:       types.StatementExportType,
			Source:     pkg.Name,
			Specifiers: bare(typeNames),
		})
	}

	if plan != nil {
		out.OverrideExport = plan.exportStatement()
	}

	return out, nil
}

// filterNames keeps the names of pkg that are neither suppressed nor already
// owned, claiming each kept name for pkg. Names lost to another package are
// reported as collisions.
func filterNames(pkg string, names []string, suppressed types.NameSet, owners map[string]string) ([]string, []types.Collision) {
	var kept []string
	var collisions []types.Collision
	for _, name := range names {
		if suppressed.Has(name) {
			continue
		}
		if owner, taken := owners[name]; taken {
			if owner != pkg {
				collisions = append(collisions, types.Collision{Name: name, Kept: owner, Dropped: pkg})
			}
			continue
		}
		owners[name] = pkg
		kept = append(kept, name)
	}
	return kept, collisions
}

func merge(a, b types.NameSet) types.NameSet {
	if len(b) == 0 {
		return a
	}
	merged := make(types.NameSet, len(a)+len(b))
	for n := range a {
		merged.Add(n)
	}
	for n := range b {
		merged.Add(n)
	}
	return merged
}

func bare(names []string) []types.Specifier {
	specs := make([]types.Specifier, len(names))
	for i, n := range names {
		specs[i] = types.Specifier{Name: n}
	}
	return specs
}
