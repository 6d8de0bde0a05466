package aggregate

import (
	"github.com/arthur-debert/gen-remix/pkg/errors"
	"github.com/arthur-debert/gen-remix/pkg/types"
)

// overridePlan is the outcome of the override pre-pass.
type overridePlan struct {
	// imports holds one import statement per distinct target package, in
	// order of first appearance
	imports []types.Statement

	// pairs drives the trailing override export, in spec order
	pairs []types.Rename

	// owners maps each overridden public name to its target package
	owners map[string]string

	// suppressed maps a package name to the names its own statements omit
	suppressed map[string]types.NameSet
}

type claim struct {
	target  string
	newName string
}

// planOverrides validates spec against the scanned packages and builds the
// override plan. known holds the names of all scanned packages.
func planOverrides(spec types.OverrideSpec, known types.NameSet) (*overridePlan, error) {
	plan := &overridePlan{
		owners:     make(map[string]string),
		suppressed: make(map[string]types.NameSet),
	}

	// public name -> claim that first took it
	claims := make(map[string]claim)
	// imported identifier -> target package providing it
	bindings := make(map[string]string)
	// target package -> index of its statement in plan.imports
	importAt := make(map[string]int)

	for _, target := range spec {
		if !known.Has(target.Target) {
			return nil, errors.Newf(errors.ErrUnknownPackage,
				"override target %q is not an exported package", target.Target).
				WithDetail("package", target.Target)
		}

		at, ok := importAt[target.Target]
		if !ok {
			at = len(plan.imports)
			importAt[target.Target] = at
			plan.imports = append(plan.imports, types.Statement{
				Kind:   types.StatementImport,
				Source: target.Target,
			})
		}

		for _, original := range target.Originals {
			if !known.Has(original.Package) {
				return nil, errors.Newf(errors.ErrUnknownPackage,
					"override of %q from %q references a package that is not exported",
					original.Package, target.Target).
					WithDetail("package", original.Package).
					WithDetail("target", target.Target)
			}

			for _, r := range original.Renames {
				if prev, ok := claims[r.Original]; ok {
					if prev.target != target.Target || prev.newName != r.New {
						return nil, errors.Newf(errors.ErrOverrideConflict,
							"%q is overridden by both %s and %s",
							r.Original, describeClaim(prev), describeClaim(claim{target.Target, r.New})).
							WithDetail("name", r.Original)
					}
				}
				if owner, ok := bindings[r.New]; ok && owner != target.Target {
					return nil, errors.Newf(errors.ErrOverrideConflict,
						"%q would be imported from both %q and %q", r.New, owner, target.Target).
						WithDetail("name", r.New)
				}

				suppress(plan.suppressed, original.Package, r.Original)
				if r.IsIdentity() {
					suppress(plan.suppressed, target.Target, r.New)
				}

				if _, bound := bindings[r.New]; !bound {
					bindings[r.New] = target.Target
					plan.imports[at].Specifiers = append(plan.imports[at].Specifiers, types.Specifier{Name: r.New})
				}

				if _, dup := claims[r.Original]; dup {
					continue
				}
				claims[r.Original] = claim{target: target.Target, newName: r.New}
				plan.owners[r.Original] = target.Target
				plan.pairs = append(plan.pairs, r)
			}
		}
	}

	return plan, nil
}

func suppress(sets map[string]types.NameSet, pkg, name string) {
	set, ok := sets[pkg]
	if !ok {
		set = types.NewNameSet()
		sets[pkg] = set
	}
	set.Add(name)
}

func describeClaim(c claim) string {
	return c.target + "." + c.newName
}

// exportStatement builds the trailing override export from the plan's pairs.
func (p *overridePlan) exportStatement() *types.Statement {
	st := &types.Statement{Kind: types.StatementExport}
	for _, r := range p.pairs {
		if r.IsIdentity() {
			st.Specifiers = append(st.Specifiers, types.Specifier{Name: r.Original})
			continue
		}
		st.Specifiers = append(st.Specifiers, types.Specifier{Name: r.New, Alias: r.Original})
	}
	return st
}
