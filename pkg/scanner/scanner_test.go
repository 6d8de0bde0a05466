package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantValues []string
		wantTypes  []string
	}{
		{
			name: "no export clauses",
			text: "declare function foo(): void;\nexport declare const bar: number;\n",
		},
		{
			name:       "value clause with alias",
			text:       "export { a, b as c };",
			wantValues: []string{"a", "c"},
		},
		{
			name:      "type clause with alias",
			text:      "export type { X, Y as Z };",
			wantTypes: []string{"X", "Z"},
		},
		{
			name:       "clause spanning several lines",
			text:       "export {\n  useLoaderData,\n  useActionData as useAction,\n} from \"./hooks\";\n",
			wantValues: []string{"useLoaderData", "useAction"},
		},
		{
			name: "multiple clauses in one document",
			text: `import type { Foo } from "./foo";
export { json, redirect } from "./responses";
export type { LoaderArgs, ActionArgs as Args } from "./routeModules";
export { createCookie };
`,
			wantValues: []string{"json", "redirect", "createCookie"},
			wantTypes:  []string{"LoaderArgs", "Args"},
		},
		{
			name:       "duplicates are kept",
			text:       "export { a };\nexport { a, b };",
			wantValues: []string{"a", "a", "b"},
		},
		{
			name:       "empty entries are dropped",
			text:       "export { a, , b, };",
			wantValues: []string{"a", "b"},
		},
		{
			name:      "type keyword without space before brace",
			text:      "export type{ Session };",
			wantTypes: []string{"Session"},
		},
		{
			name:       "inline type modifier",
			text:       "export { type Cookie, createCookie, type Opts as CookieOptions };",
			wantValues: []string{"createCookie"},
			wantTypes:  []string{"Cookie", "CookieOptions"},
		},
		{
			name:       "export named type is a value",
			text:       "export { type as kind };",
			wantValues: []string{"kind"},
		},
		{
			name:       "body stops at first closing brace",
			text:       "export { a }; declare const x: { y: 1 };",
			wantValues: []string{"a"},
		},
		{
			name:       "dollar identifiers",
			text:       "export { $foo as $bar, _baz };",
			wantValues: []string{"$bar", "_baz"},
		},
		{
			name:       "empty clause",
			text:       "export {};",
			wantValues: nil,
		},
		{
			name:       "line comments inside a clause",
			text:       "export {\n  a, // note\n  b, // don't export c\n};",
			wantValues: []string{"a", "b"},
		},
		{
			name:       "doc comments inside a clause",
			text:       "export {\n  /** Parses a cookie. */ parse,\n  /* legacy */ serialize as stringify\n};",
			wantValues: []string{"parse", "stringify"},
		},
		{
			name:       "commented out clause",
			text:       "// export { hidden };\n/* export type { Gone }; */\nexport { shown };",
			wantValues: []string{"shown"},
		},
		{
			name:       "comment markers inside strings are kept",
			text:       "declare const url: \"https://example.com/*\";\nexport { a } from \"./a\";\nexport { b };",
			wantValues: []string{"a", "b"},
		},
		{
			name:       "carriage returns survive flattening",
			text:       "export {\r\n  a,\r\n  b\r\n};",
			wantValues: []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scan(tt.text)
			assert.Equal(t, tt.wantValues, got.Values)
			assert.Equal(t, tt.wantTypes, got.Types)
		})
	}
}

func TestScan_Idempotent(t *testing.T) {
	text := "export { a, b as c };\nexport type { X };\nexport { d };"

	first := Scan(text)
	second := Scan(text)

	assert.Equal(t, first, second)
	assert.False(t, first.IsEmpty())
}

func TestScan_EmptyDocument(t *testing.T) {
	assert.True(t, Scan("").IsEmpty())
	assert.True(t, Scan("\n\n   \n").IsEmpty())
}
