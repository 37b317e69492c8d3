package question

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Pair is one entry of an OrderedMapping. A nil Value marks an unmatched
// left choice.
type Pair struct {
	Key   string
	Value *string
}

// Match builds a pair mapping a left choice to a right choice.
func Match(key, value string) Pair {
	return Pair{Key: key, Value: &value}
}

// Unmatched builds a pair whose left choice is deliberately unanswered.
func Unmatched(key string) Pair {
	return Pair{Key: key}
}

// OrderedMapping is a string mapping with explicit insertion order and
// nullable values. The matching variant depends on key order, so ordering is
// part of the value rather than an accident of the container; the JSON and
// YAML codecs both preserve document order.
type OrderedMapping []Pair

// Keys returns the keys in insertion order.
func (m OrderedMapping) Keys() []string {
	keys := make([]string, 0, len(m))
	for _, pair := range m {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Get returns the value stored under a key.
func (m OrderedMapping) Get(key string) (*string, bool) {
	for _, pair := range m {
		if pair.Key == key {
			return pair.Value, true
		}
	}
	return nil, false
}

// Set replaces the value under an existing key or appends a new pair.
func (m *OrderedMapping) Set(key string, value *string) {
	for i, pair := range *m {
		if pair.Key == key {
			(*m)[i].Value = value
			return
		}
	}
	*m = append(*m, Pair{Key: key, Value: value})
}

// Clone returns a deep copy of the mapping.
func (m OrderedMapping) Clone() OrderedMapping {
	if m == nil {
		return nil
	}
	clone := make(OrderedMapping, 0, len(m))
	for _, pair := range m {
		value := pair.Value
		if value != nil {
			copied := *value
			value = &copied
		}
		clone = append(clone, Pair{Key: pair.Key, Value: value})
	}
	return clone
}

// Equal reports whether two mappings hold the same pairs in the same order.
func (m OrderedMapping) Equal(other OrderedMapping) bool {
	if len(m) != len(other) {
		return false
	}
	for i, pair := range m {
		if pair.Key != other[i].Key {
			return false
		}
		left, right := pair.Value, other[i].Value
		if (left == nil) != (right == nil) {
			return false
		}
		if left != nil && *left != *right {
			return false
		}
	}
	return true
}

// MarshalJSON writes the mapping as a JSON object in insertion order.
func (m OrderedMapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, pair := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(pair.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(pair.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object preserving its key order. A repeated key
// keeps its first position and takes the last value.
func (m *OrderedMapping) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	open, err := decoder.Token()
	if err != nil {
		return fmt.Errorf("parse ordered mapping: %w", err)
	}
	if delim, ok := open.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("parse ordered mapping: expected a JSON object, got %v", open)
	}
	pairs := OrderedMapping{}
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return fmt.Errorf("parse ordered mapping: %w", err)
		}
		key, ok := keyToken.(string)
		if !ok {
			return fmt.Errorf("parse ordered mapping: non-string key %v", keyToken)
		}
		var value *string
		if err := decoder.Decode(&value); err != nil {
			return fmt.Errorf("parse ordered mapping value for %q: %w", key, err)
		}
		pairs.Set(key, value)
	}
	if _, err := decoder.Token(); err != nil {
		return fmt.Errorf("parse ordered mapping: %w", err)
	}
	*m = pairs
	return nil
}

// MarshalYAML writes the mapping as a YAML map in insertion order.
func (m OrderedMapping) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, pair := range m {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: pair.Key}
		valueNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
		if pair.Value != nil {
			valueNode = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: *pair.Value}
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}

// UnmarshalYAML reads a YAML map preserving its key order.
func (m *OrderedMapping) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("parse ordered mapping: expected a YAML mapping at line %d", node.Line)
	}
	pairs := OrderedMapping{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		var key string
		if err := keyNode.Decode(&key); err != nil {
			return fmt.Errorf("parse ordered mapping key: %w", err)
		}
		var value *string
		if valueNode.Tag != "!!null" {
			var text string
			if err := valueNode.Decode(&text); err != nil {
				return fmt.Errorf("parse ordered mapping value for %q: %w", key, err)
			}
			value = &text
		}
		pairs.Set(key, value)
	}
	*m = pairs
	return nil
}
