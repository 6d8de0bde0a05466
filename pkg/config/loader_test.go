package config

import (
	"testing"

	"github.com/arthur-debert/gen-remix/pkg/errors"
	"github.com/arthur-debert/gen-remix/pkg/testutil"
	"github.com/arthur-debert/gen-remix/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ConfigFile(t *testing.T) {
	project := testutil.NewTestProject(t)
	path := project.AddConfig(t, `{
  "exports": ["@remix-run/node", "@remix-run/react", "remix-utils"],
  "overrides": {
    "remix-utils": {
      "@remix-run/node": { "json": "typedjson", "redirect": "redirect" }
    }
  }
}`)

	cfg, err := Load(project.FS, LoadOptions{Path: path})
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Path)
	assert.False(t, cfg.IsEmpty())
	assert.Equal(t, []string{"@remix-run/node", "@remix-run/react", "remix-utils"}, cfg.Exports)
	assert.Equal(t, "./app/remix.ts", cfg.Output)
	assert.Equal(t, "node_modules", cfg.NodeModules)
	assert.Equal(t, types.OverrideSpec{
		{Target: "remix-utils", Originals: []types.OriginalOverride{
			{Package: "@remix-run/node", Renames: []types.Rename{
				{Original: "json", New: "typedjson"},
				{Original: "redirect", New: "redirect"},
			}},
		}},
	}, cfg.Overrides)
}

func TestLoad_Precedence(t *testing.T) {
	project := testutil.NewTestProject(t)
	path := project.AddConfig(t, `{"exports": ["a"], "output": "./src/remix.ts", "nodeModules": "vendor/node_modules"}`)

	t.Run("config file over defaults", func(t *testing.T) {
		cfg, err := Load(project.FS, LoadOptions{Path: path})
		require.NoError(t, err)
		assert.Equal(t, "./src/remix.ts", cfg.Output)
		assert.Equal(t, "vendor/node_modules", cfg.NodeModules)
	})

	t.Run("environment over config file", func(t *testing.T) {
		t.Setenv("GEN_REMIX_OUTPUT", "./env/remix.ts")
		t.Setenv("GEN_REMIX_UNRELATED", "ignored")

		cfg, err := Load(project.FS, LoadOptions{Path: path})
		require.NoError(t, err)
		assert.Equal(t, "./env/remix.ts", cfg.Output)
		assert.Equal(t, "vendor/node_modules", cfg.NodeModules)
	})

	t.Run("flags over environment", func(t *testing.T) {
		t.Setenv("GEN_REMIX_OUTPUT", "./env/remix.ts")

		cfg, err := Load(project.FS, LoadOptions{
			Path:  path,
			Flags: map[string]interface{}{KeyOutput: "./flag/remix.ts"},
		})
		require.NoError(t, err)
		assert.Equal(t, "./flag/remix.ts", cfg.Output)
	})
}

func TestLoad_PackageListWithoutConfig(t *testing.T) {
	project := testutil.NewTestProject(t)

	cfg, err := Load(project.FS, LoadOptions{
		Path:     project.Path("gen-remix.config.json"),
		Packages: []string{"pkgA", "pkgB", "pkgA"},
	})
	require.NoError(t, err)

	assert.Empty(t, cfg.Path)
	assert.Equal(t, []string{"pkgA", "pkgB"}, cfg.Exports)
	assert.True(t, cfg.Overrides.IsEmpty())
	assert.False(t, cfg.IsEmpty())
}

func TestLoad_NothingToDo(t *testing.T) {
	project := testutil.NewTestProject(t)

	cfg, err := Load(project.FS, LoadOptions{Path: project.Path("missing.json")})
	require.NoError(t, err)
	assert.True(t, cfg.IsEmpty())
}

func TestLoad_ConfigFileWinsOverPackageList(t *testing.T) {
	project := testutil.NewTestProject(t)
	path := project.AddConfig(t, `{"exports": ["fromConfig"]}`)

	cfg, err := Load(project.FS, LoadOptions{Path: path, Packages: []string{"fromFlags"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"fromConfig"}, cfg.Exports)
}

func TestLoad_YAML(t *testing.T) {
	project := testutil.NewTestProject(t)
	path := project.AddFile(t, "gen-remix.config.yaml", `
exports:
  - pkgA
  - pkgB
overrides:
  pkgB:
    pkgA:
      z: z2
      a: a
`)

	cfg, err := Load(project.FS, LoadOptions{Path: path})
	require.NoError(t, err)
	assert.Equal(t, []string{"pkgA", "pkgB"}, cfg.Exports)
	assert.Equal(t, []types.Rename{{Original: "z", New: "z2"}, {Original: "a", New: "a"}},
		cfg.Overrides[0].Originals[0].Renames)
}

func TestLoad_JSONEscapes(t *testing.T) {
	project := testutil.NewTestProject(t)
	path := project.AddConfig(t, `{
  "exports": ["@remix-run\/node", "remix-utils"],
  "overrides": {
    "remix-utils": { "@remix-run\/node": { "json": "typed\u004Ason" } }
  },
  "output": ".\/app\/remix.ts"
}`)

	cfg, err := Load(project.FS, LoadOptions{Path: path})
	require.NoError(t, err)
	assert.Equal(t, []string{"@remix-run/node", "remix-utils"}, cfg.Exports)
	assert.Equal(t, "./app/remix.ts", cfg.Output)
	assert.Equal(t, types.OverrideSpec{
		{Target: "remix-utils", Originals: []types.OriginalOverride{
			{Package: "@remix-run/node", Renames: []types.Rename{{Original: "json", New: "typedJson"}}},
		}},
	}, cfg.Overrides)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.ErrorCode
	}{
		{"malformed json", `{"exports": [`, errors.ErrConfigParse},
		{"missing exports", `{"overrides": {}}`, errors.ErrConfigValid},
		{"exports not a list", `{"exports": "pkgA"}`, errors.ErrConfigValid},
		{"non-string export", `{"exports": ["pkgA", 3]}`, errors.ErrConfigValid},
		{"override target not an object", `{"exports": ["a"], "overrides": {"a": ["b"]}}`, errors.ErrConfigValid},
		{"override name not a string", `{"exports": ["a"], "overrides": {"a": {"b": {"x": 1}}}}`, errors.ErrConfigValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			project := testutil.NewTestProject(t)
			path := project.AddConfig(t, tt.content)

			cfg, err := Load(project.FS, LoadOptions{Path: path})
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Equal(t, tt.code, errors.GetErrorCode(err), "got %v", err)
		})
	}
}
