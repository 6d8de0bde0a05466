// Package aggregate merges the export lists of several packages into one
// collision-free set of re-export statements.
//
// Aggregation runs in three phases whose order decides which package wins a
// name:
//
//  1. Override pre-pass: the override specification is validated and turned
//     into one import statement per target package, per-package suppression
//     sets and the ordered list of (original, new) pairs. Targets repeated in
//     the specification share their statement, so no identifier is imported
//     twice. Every overridden public name is
//     reserved before any package statement is built.
//  2. Package statements: packages are visited in the order given. Values
//     and types share one namespace; the first package to export a name
//     keeps it and later packages silently drop it (recorded as a
//     Collision).
//  3. Override export: one trailing statement re-exports every overridden
//     name, renamed from the target package's identifier where needed.
//
// The package is pure: it performs no I/O and never mutates its inputs.
package aggregate
