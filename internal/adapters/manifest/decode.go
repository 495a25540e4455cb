package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/trebuchet-org/evm-deployment-info/internal/domain"
	"gopkg.in/yaml.v3"
)

// declaredNetwork is one network of the manifest in file order
type declaredNetwork struct {
	name    string
	entries []declaredEntry
}

// declaredEntry is an address as written, before env expansion and validation
type declaredEntry struct {
	contract string
	address  string
}

var errShape = errors.New("expected an address, a list of addresses or a map of contract to address")

func shapeError(network string) error {
	return &domain.ConfigParseError{Network: network, Err: errShape}
}

// decodeYAML walks the node tree so networks keep their file order
func decodeYAML(data []byte) ([]declaredNetwork, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a mapping of network to addresses at line %d", root.Line)
	}

	out := make([]declaredNetwork, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		n := declaredNetwork{name: key.Value}

		switch val.Kind {
		case yaml.ScalarNode:
			if val.Tag != "!!null" {
				n.entries = append(n.entries, declaredEntry{address: val.Value})
			}
		case yaml.SequenceNode:
			for _, item := range val.Content {
				if item.Kind != yaml.ScalarNode {
					return nil, shapeError(n.name)
				}
				n.entries = append(n.entries, declaredEntry{address: item.Value})
			}
		case yaml.MappingNode:
			for j := 0; j+1 < len(val.Content); j += 2 {
				contract, addr := val.Content[j], val.Content[j+1]
				if addr.Kind != yaml.ScalarNode {
					return nil, shapeError(n.name)
				}
				n.entries = append(n.entries, declaredEntry{contract: contract.Value, address: addr.Value})
			}
		default:
			return nil, shapeError(n.name)
		}

		out = append(out, n)
	}
	return out, nil
}

// decodeTOML decodes into a generic map and recovers key order from the metadata
func decodeTOML(data []byte) ([]declaredNetwork, error) {
	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, err
	}

	out := make([]declaredNetwork, 0, len(raw))
	for _, key := range md.Keys() {
		if len(key) != 1 {
			continue
		}
		n := declaredNetwork{name: key[0]}

		switch v := raw[n.name].(type) {
		case string:
			n.entries = append(n.entries, declaredEntry{address: v})
		case []any:
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return nil, shapeError(n.name)
				}
				n.entries = append(n.entries, declaredEntry{address: s})
			}
		case map[string]any:
			for _, sub := range md.Keys() {
				if len(sub) != 2 || sub[0] != n.name {
					continue
				}
				s, ok := v[sub[1]].(string)
				if !ok {
					return nil, shapeError(n.name)
				}
				n.entries = append(n.entries, declaredEntry{contract: sub[1], address: s})
			}
		default:
			return nil, shapeError(n.name)
		}

		out = append(out, n)
	}
	return out, nil
}

// decodeJSON streams tokens since a decoded map would lose the key order
func decodeJSON(data []byte) ([]declaredNetwork, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if tok != json.Delim('{') {
		return nil, fmt.Errorf("expected an object of network to addresses")
	}

	var out []declaredNetwork
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		n := declaredNetwork{name: tok.(string)}
		if n.entries, err = decodeJSONValue(dec, n.name); err != nil {
			return nil, err
		}
		out = append(out, n)
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeJSONValue(dec *json.Decoder, network string) ([]declaredEntry, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch v := tok.(type) {
	case nil:
		return nil, nil
	case string:
		return []declaredEntry{{address: v}}, nil
	case json.Delim:
		var entries []declaredEntry
		switch v {
		case '[':
			for dec.More() {
				item, err := dec.Token()
				if err != nil {
					return nil, err
				}
				s, ok := item.(string)
				if !ok {
					return nil, shapeError(network)
				}
				entries = append(entries, declaredEntry{address: s})
			}
		case '{':
			for dec.More() {
				key, err := dec.Token()
				if err != nil {
					return nil, err
				}
				item, err := dec.Token()
				if err != nil {
					return nil, err
				}
				s, ok := item.(string)
				if !ok {
					return nil, shapeError(network)
				}
				entries = append(entries, declaredEntry{contract: key.(string), address: s})
			}
		default:
			return nil, shapeError(network)
		}
		// closing bracket or brace
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return entries, nil
	default:
		return nil, shapeError(network)
	}
}
