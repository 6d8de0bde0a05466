package testutil

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/gen-remix/pkg/types"
	"github.com/stretchr/testify/require"
)

// TestProject is a project directory on an in-memory filesystem.
type TestProject struct {
	FS   types.FS
	Root string // Project root directory
}

// TestPackage describes an installed npm package.
type TestPackage struct {
	Name    string
	Version string
	Typings string // value of the "typings" field, if any
	Types   string // value of the "types" field, if any
	Main    string // value of the "main" field, if any
	DTS     string // declaration document content
}

// NewTestProject creates an empty project rooted at /project
func NewTestProject(t *testing.T) *TestProject {
	t.Helper()

	fs := NewTestFS()
	root := "/project"
	require.NoError(t, fs.MkdirAll(root, 0755))

	return &TestProject{FS: fs, Root: root}
}

// Path joins elem onto the project root
func (tp *TestProject) Path(elem ...string) string {
	return filepath.Join(append([]string{tp.Root}, elem...)...)
}

// AddFile writes a file relative to the project root
func (tp *TestProject) AddFile(t *testing.T, rel, content string) string {
	t.Helper()

	path := tp.Path(rel)
	require.NoError(t, tp.FS.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, tp.FS.WriteFile(path, []byte(content), 0644))
	return path
}

// AddConfig writes gen-remix.config.json at the project root
func (tp *TestProject) AddConfig(t *testing.T, content string) string {
	t.Helper()
	return tp.AddFile(t, "gen-remix.config.json", content)
}

// AddPackage installs pkg under node_modules. The declaration document is
// written where the package metadata says it lives: typings, then types,
// then index.d.ts next to main, then index.d.ts at the package root.
func (tp *TestProject) AddPackage(t *testing.T, pkg TestPackage) {
	t.Helper()

	meta := map[string]string{"name": pkg.Name}
	if pkg.Version != "" {
		meta["version"] = pkg.Version
	}
	if pkg.Typings != "" {
		meta["typings"] = pkg.Typings
	}
	if pkg.Types != "" {
		meta["types"] = pkg.Types
	}
	if pkg.Main != "" {
		meta["main"] = pkg.Main
	}
	if pkg.Typings == "" && pkg.Types == "" && pkg.Main == "" {
		meta["main"] = "index.js"
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	require.NoError(t, err)

	pkgDir := filepath.Join("node_modules", pkg.Name)
	tp.AddFile(t, filepath.Join(pkgDir, "package.json"), string(data))

	var dts string
	switch {
	case pkg.Typings != "":
		dts = pkg.Typings
	case pkg.Types != "":
		dts = pkg.Types
	default:
		dts = filepath.Join(filepath.Dir(meta["main"]), "index.d.ts")
	}
	tp.AddFile(t, filepath.Join(pkgDir, dts), pkg.DTS)
}

// ReadFile reads a file relative to the project root
func (tp *TestProject) ReadFile(t *testing.T, rel string) string {
	t.Helper()

	data, err := tp.FS.ReadFile(tp.Path(rel))
	require.NoError(t, err)
	return string(data)
}
