package main

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	v "github.com/Gobd/fieldvalidation"
)

// decodeValues reads a JSON or YAML mapping of field values. Numeric
// scalars keep the text as written, as json.Number, so 0012345678 is not
// turned into 12345678 or read as octal.
func decodeValues(data []byte) (v.Values, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	values := v.Values{}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return values, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of field values", root.Line)
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, node := root.Content[i], root.Content[i+1]
		val, err := nodeValue(node)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", key.Value, err)
		}
		values[key.Value] = val
	}
	return values, nil
}

func nodeValue(node *yaml.Node) (any, error) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind == yaml.ScalarNode {
		switch node.ShortTag() {
		case "!!int", "!!float":
			return json.Number(node.Value), nil
		case "!!str":
			return node.Value, nil
		}
	}
	var val any
	if err := node.Decode(&val); err != nil {
		return nil, err
	}
	return val, nil
}
