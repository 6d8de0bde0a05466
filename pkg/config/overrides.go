package config

import (
	"github.com/arthur-debert/gen-remix/pkg/errors"
	"github.com/arthur-debert/gen-remix/pkg/types"
	"gopkg.in/yaml.v3"
)

// ParseOverrides decodes the "overrides" section of the configuration
// document at path, keeping the key order of every level. YAML documents are
// read with yaml.v3; anything else is read as JSON. A missing or null section
// yields an empty spec.
//
// Repeated keys are kept as written. Aggregation merges repeated targets and
// rejects conflicting entries.
func ParseOverrides(path string, data []byte) (types.OverrideSpec, error) {
	root, err := parseDocument(path, data)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "cannot parse configuration document").
			WithDetail("path", path)
	}
	if root == nil {
		return nil, nil
	}

	root = resolve(root)
	if root.Kind != yaml.MappingNode {
		return nil, errors.New(errors.ErrConfigValid, "configuration document must be an object")
	}

	section := lookup(root, KeyOverrides)
	if section == nil || isNull(section) {
		return nil, nil
	}

	var spec types.OverrideSpec
	err = eachPair(section, KeyOverrides, func(target string, targetNode *yaml.Node) error {
		to := types.TargetOverride{Target: target}
		err := eachPair(targetNode, KeyOverrides+"."+target, func(original string, originalNode *yaml.Node) error {
			oo := types.OriginalOverride{Package: original}
			where := KeyOverrides + "." + target + "." + original
			err := eachPair(originalNode, where, func(name string, newNode *yaml.Node) error {
				if newNode.Kind != yaml.ScalarNode || newNode.ShortTag() != "!!str" || newNode.Value == "" {
					return errors.Newf(errors.ErrConfigValid, "%s.%s must be an export name", where, name).
						WithDetail("line", newNode.Line)
				}
				oo.Renames = append(oo.Renames, types.Rename{Original: name, New: newNode.Value})
				return nil
			})
			if err != nil {
				return err
			}
			to.Originals = append(to.Originals, oo)
			return nil
		})
		if err != nil {
			return err
		}
		spec = append(spec, to)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return spec, nil
}

// parseDocument returns the root node of the document, or nil when the
// document is empty.
func parseDocument(path string, data []byte) (*yaml.Node, error) {
	if !isYAML(path) {
		return jsonDocument(data)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil
	}
	return doc.Content[0], nil
}

// eachPair calls fn for every key of the mapping node in document order
func eachPair(node *yaml.Node, where string, fn func(key string, value *yaml.Node) error) error {
	node = resolve(node)
	if node.Kind != yaml.MappingNode {
		return errors.Newf(errors.ErrConfigValid, "%s must be an object", where).
			WithDetail("line", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := resolve(node.Content[i])
		if key.Kind != yaml.ScalarNode || key.Value == "" {
			return errors.Newf(errors.ErrConfigValid, "%s has an invalid key", where).
				WithDetail("line", key.Line)
		}
		if err := fn(key.Value, resolve(node.Content[i+1])); err != nil {
			return err
		}
	}
	return nil
}

func lookup(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if resolve(mapping.Content[i]).Value == key {
			return resolve(mapping.Content[i+1])
		}
	}
	return nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}
