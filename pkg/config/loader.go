package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/gen-remix/pkg/errors"
	"github.com/arthur-debert/gen-remix/pkg/logging"
	"github.com/arthur-debert/gen-remix/pkg/types"
	"github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	// DefaultPath is the configuration file read when none is given
	DefaultPath = "gen-remix.config.json"

	// EnvPrefix prefixes the environment variables gen-remix reads
	EnvPrefix = "GEN_REMIX_"

	KeyExports     = "exports"
	KeyOverrides   = "overrides"
	KeyOutput      = "output"
	KeyNodeModules = "nodeModules"
)

// envKeys maps environment variables, without prefix, to config keys
var envKeys = map[string]string{
	"OUTPUT":       KeyOutput,
	"NODE_MODULES": KeyNodeModules,
}

// Config is the resolved configuration of one run.
type Config struct {
	// Path is the configuration file that was read, empty when the run is
	// driven by a package list alone
	Path string

	// Exports lists the packages to aggregate, in order
	Exports []string

	// Overrides is empty when the document has none
	Overrides types.OverrideSpec

	Output      string
	NodeModules string
}

// IsEmpty reports whether there is nothing to generate
func (c *Config) IsEmpty() bool {
	return c.Path == "" && len(c.Exports) == 0
}

// LoadOptions carries the command-line side of configuration.
type LoadOptions struct {
	// Path of the configuration document; DefaultPath when empty
	Path string

	// Packages is used in place of a configuration document that does not
	// exist
	Packages []string

	// Flags holds explicitly set flag values keyed by config key. They
	// take precedence over every other source.
	Flags map[string]interface{}
}

// Load resolves configuration from defaults, the configuration document,
// the environment and flags, in increasing precedence.
func Load(fs types.FS, opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")

	path := opts.Path
	if path == "" {
		path = DefaultPath
	}

	k := koanf.New(".")

	// 1. Load embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, json.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load defaults")
	}

	// 2. Load the configuration document if it exists
	cfg := &Config{}
	data, err := fs.ReadFile(path)
	switch {
	case err == nil:
		cfg.Path = path
		if err := k.Load(&rawBytesProvider{bytes: data}, parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded configuration file")
	case os.IsNotExist(err):
		logger.Debug().Str("path", path).Msg("No configuration file")
	default:
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read %s", path).
			WithDetail("path", path)
	}

	// 3. Load environment overrides
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Load explicitly set flags
	if len(opts.Flags) > 0 {
		if err := k.Load(confmap.Provider(opts.Flags, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load flags")
		}
	}

	cfg.Output = k.String(KeyOutput)
	cfg.NodeModules = k.String(KeyNodeModules)

	if cfg.Path == "" {
		cfg.Exports = dedupe(opts.Packages)
		return cfg, nil
	}

	if len(opts.Packages) > 0 {
		logger.Info().
			Strs("packages", opts.Packages).
			Str("path", path).
			Msg("Configuration file present, ignoring package list")
	}

	exports, err := exportList(k, path)
	if err != nil {
		return nil, err
	}
	cfg.Exports = dedupe(exports)

	cfg.Overrides, err = ParseOverrides(path, data)
	if err != nil {
		if e, ok := err.(*errors.GenError); ok && errors.IsErrorCode(err, errors.ErrConfigValid) {
			return nil, e.WithDetail("path", path)
		}
		return nil, err
	}

	return cfg, nil
}

// parserFor picks the koanf parser by file extension; JSON unless the file
// is YAML.
func parserFor(path string) koanf.Parser {
	if isYAML(path) {
		return kyaml.Parser()
	}
	return json.Parser()
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func envKey(s string) string {
	return envKeys[strings.TrimPrefix(s, EnvPrefix)]
}

func exportList(k *koanf.Koanf, path string) ([]string, error) {
	raw, ok := k.Get(KeyExports).([]interface{})
	if !ok {
		return nil, errors.Newf(errors.ErrConfigValid, "%s: %q must be a list of package names", path, KeyExports).
			WithDetail("path", path)
	}

	exports := make([]string, 0, len(raw))
	for i, v := range raw {
		name, ok := v.(string)
		if !ok || strings.TrimSpace(name) == "" {
			return nil, errors.Newf(errors.ErrConfigValid, "%s: %s[%d] is not a package name", path, KeyExports, i).
				WithDetail("path", path)
		}
		exports = append(exports, name)
	}
	return exports, nil
}

// dedupe drops repeated package names, keeping the first position
func dedupe(names []string) []string {
	logger := logging.GetLogger("config")

	seen := types.NewNameSet()
	out := make([]string, 0, len(names))
	for _, n := range names {
		if seen.Has(n) {
			logger.Warn().Str("package", n).Msg("Package listed more than once, keeping first occurrence")
			continue
		}
		seen.Add(n)
		out = append(out, n)
	}
	return out
}
