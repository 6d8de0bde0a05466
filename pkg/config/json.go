package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// jsonDocument decodes a JSON document token by token into a yaml.v3 node
// tree, so JSON and YAML configuration share one ordered walk. It returns nil
// for an empty document.
func jsonDocument(data []byte) (*yaml.Node, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	root, err := jsonValue(dec, data)
	if err == io.EOF {
		return nil, io.ErrUnexpectedEOF
	}
	return root, err
}

func jsonValue(dec *json.Decoder, data []byte) (*yaml.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	line := lineAt(data, dec.InputOffset())

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Line: line}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key := &yaml.Node{
					Kind:  yaml.ScalarNode,
					Tag:   "!!str",
					Value: fmt.Sprint(keyTok),
					Line:  lineAt(data, dec.InputOffset()),
				}
				value, err := jsonValue(dec, data)
				if err != nil {
					return nil, err
				}
				node.Content = append(node.Content, key, value)
			}
			return node, closeDelim(dec)
		case '[':
			node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Line: line}
			for dec.More() {
				item, err := jsonValue(dec, data)
				if err != nil {
					return nil, err
				}
				node.Content = append(node.Content, item)
			}
			return node, closeDelim(dec)
		}
		return nil, fmt.Errorf("unexpected %q at line %d", v, line)
	case string:
		return scalar("!!str", v, line), nil
	case json.Number:
		if _, err := v.Int64(); err == nil {
			return scalar("!!int", v.String(), line), nil
		}
		return scalar("!!float", v.String(), line), nil
	case bool:
		return scalar("!!bool", strconv.FormatBool(v), line), nil
	case nil:
		return scalar("!!null", "null", line), nil
	}
	return nil, fmt.Errorf("unexpected token %v at line %d", tok, line)
}

// closeDelim consumes the closing brace or bracket of a container
func closeDelim(dec *json.Decoder) error {
	_, err := dec.Token()
	return err
}

func scalar(tag, value string, line int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value, Line: line}
}

// lineAt returns the 1-based line holding offset
func lineAt(data []byte, offset int64) int {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	return bytes.Count(data[:offset], []byte("\n")) + 1
}
