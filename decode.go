package enumjen

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// loadSource reads the file at path once its name has been checked for one of
// the given type markers.
func loadSource(path string, markers ...string) ([]byte, error) {
	ok := false
	for _, m := range markers {
		if strings.Contains(path, m) {
			ok = true
			break
		}
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a %s file", ErrInvalidFileType, path, strings.Join(markers, " or "))
	}

	b, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("%s: error reading file: %w", path, err)
	}
	return b, nil
}

// decodeJSON decodes a JSON document, returning objects as [Object] so that
// key order survives. Arrays become []any and numbers json.Number. A key
// repeated within one object keeps its first position and its last value.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeJSONValue(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after top-level value", ErrParse)
	}
	return v, nil
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		obj := Object{}
		seen := make(map[string]int)
		for dec.More() {
			kt, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := kt.(string)
			if !ok {
				return nil, fmt.Errorf("object key must be a string, got %v", kt)
			}
			val, err := decodeJSONValue(dec)
			if err != nil {
				return nil, err
			}
			if i, dup := seen[key]; dup {
				obj[i].Value = val
				continue
			}
			seen[key] = len(obj)
			obj = append(obj, Field{Key: key, Value: val})
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil
	case '[':
		arr := []any{}
		for dec.More() {
			val, err := decodeJSONValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	}
	return nil, fmt.Errorf("unexpected delimiter %v", delim)
}

// decodeYAML decodes the first document in data. Mappings become [Object],
// sequences []any, and scalars keep their literal text as a string. Null
// scalars decode to nil. Duplicate mapping keys are an [ErrParse].
func decodeYAML(data []byte) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if doc.Kind == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrParse)
	}
	return yamlValue(&doc)
}

func yamlValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, fmt.Errorf("%w: empty document", ErrParse)
		}
		return yamlValue(n.Content[0])
	case yaml.AliasNode:
		return yamlValue(n.Alias)
	case yaml.MappingNode:
		obj := make(Object, 0, len(n.Content)/2)
		seen := make(map[string]int, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: line %d: mapping keys must be scalars", ErrParse, k.Line)
			}
			if line, dup := seen[k.Value]; dup {
				return nil, fmt.Errorf("%w: line %d: mapping key %q already defined at line %d", ErrParse, k.Line, k.Value, line)
			}
			seen[k.Value] = k.Line
			val, err := yamlValue(v)
			if err != nil {
				return nil, err
			}
			obj = append(obj, Field{Key: k.Value, Value: val})
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			val, err := yamlValue(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		return arr, nil
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
		return n.Value, nil
	}
	return nil, fmt.Errorf("%w: unsupported YAML node kind %v", ErrParse, n.Kind)
}
