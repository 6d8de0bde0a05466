// Package packages reads installed npm package metadata and the declaration
// documents it points to.
package packages

import (
	"encoding/json"
	"os"
	"path"
	"path/filepath"

	"github.com/arthur-debert/gen-remix/pkg/errors"
	"github.com/arthur-debert/gen-remix/pkg/logging"
	"github.com/arthur-debert/gen-remix/pkg/types"
)

// DefaultNodeModules is where packages are looked up unless configured
const DefaultNodeModules = "node_modules"

// Metadata is the subset of package.json gen-remix reads.
type Metadata struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Typings string `json:"typings"`
	Types   string `json:"types"`
	Main    string `json:"main"`
}

// TypingsPath returns the declaration document path relative to the
// package directory: typings, else types, else index.d.ts next to main.
func (m Metadata) TypingsPath() (string, bool) {
	switch {
	case m.Typings != "":
		return m.Typings, true
	case m.Types != "":
		return m.Types, true
	case m.Main != "":
		return path.Join(path.Dir(filepath.ToSlash(m.Main)), "index.d.ts"), true
	default:
		return "", false
	}
}

// Package is an installed package with its declaration document loaded.
type Package struct {
	Name         string
	Version      string
	TypingsPath  string
	Declarations string
}

// Resolver loads packages from a node_modules directory.
type Resolver struct {
	fs          types.FS
	nodeModules string
}

// NewResolver creates a resolver over nodeModules. An empty nodeModules
// means DefaultNodeModules.
func NewResolver(fs types.FS, nodeModules string) *Resolver {
	if nodeModules == "" {
		nodeModules = DefaultNodeModules
	}
	return &Resolver{fs: fs, nodeModules: nodeModules}
}

// Dir returns the install directory of the named package
func (r *Resolver) Dir(name string) string {
	return filepath.Join(r.nodeModules, filepath.FromSlash(name))
}

// ReadMetadata reads and decodes the package's package.json. A missing
// package directory is PACKAGE_NOT_FOUND; an installed package without
// readable metadata is PACKAGE_INVALID.
func (r *Resolver) ReadMetadata(name string) (*Metadata, error) {
	dir := r.Dir(name)
	if info, err := r.fs.Stat(dir); err != nil || !info.IsDir() {
		if err == nil || os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrPackageNotFound, "package %q is not installed", name).
				WithDetail("package", name).
				WithDetail("path", dir)
		}
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot access package %q", name).
			WithDetail("package", name).
			WithDetail("path", dir)
	}

	metaPath := filepath.Join(dir, "package.json")
	data, err := r.fs.ReadFile(metaPath)
	if err != nil {
		code := errors.ErrFileRead
		if os.IsNotExist(err) {
			code = errors.ErrPackageInvalid
		}
		return nil, errors.Wrapf(err, code, "cannot read metadata of package %q", name).
			WithDetail("package", name).
			WithDetail("path", metaPath)
	}

	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, errors.Wrapf(err, errors.ErrPackageInvalid, "invalid metadata for package %q", name).
			WithDetail("package", name).
			WithDetail("path", metaPath)
	}
	return &meta, nil
}

// Load reads the package's metadata and its declaration document.
func (r *Resolver) Load(name string) (*Package, error) {
	logger := logging.GetLogger("packages")

	meta, err := r.ReadMetadata(name)
	if err != nil {
		return nil, err
	}

	if meta.Name != "" && meta.Name != name {
		logger.Warn().
			Str("package", name).
			Str("metadataName", meta.Name).
			Msg("Installed package declares a different name")
	}

	typings, ok := meta.TypingsPath()
	if !ok {
		return nil, errors.Newf(errors.ErrTypingsNotFound,
			"package %q declares neither typings, types nor main", name).
			WithDetail("package", name)
	}

	dir := r.Dir(name)
	dtsPath := filepath.Join(dir, filepath.FromSlash(typings))
	data, err := r.fs.ReadFile(dtsPath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTypingsNotFound,
			"cannot read declarations of package %q", name).
			WithDetail("package", name).
			WithDetail("path", dtsPath)
	}

	logger.Debug().
		Str("package", name).
		Str("version", meta.Version).
		Str("typings", dtsPath).
		Msg("Loaded package declarations")

	return &Package{
		Name:         name,
		Version:      meta.Version,
		TypingsPath:  dtsPath,
		Declarations: string(data),
	}, nil
}
