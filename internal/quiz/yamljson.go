package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlNodeToJSON re-encodes a YAML node as JSON, preserving mapping key
// order. Decoding YAML into Go maps would drop the order that the core's
// ordered mappings depend on, so the node tree is walked directly.
func yamlNodeToJSON(node *yaml.Node) (json.RawMessage, error) {
	var buf bytes.Buffer
	if err := encodeYAMLNode(&buf, node); err != nil {
		return nil, err
	}
	return json.RawMessage(buf.Bytes()), nil
}

func encodeYAMLNode(buf *bytes.Buffer, node *yaml.Node) error {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) != 1 {
			return fmt.Errorf("unexpected yaml document at line %d", node.Line)
		}
		return encodeYAMLNode(buf, node.Content[0])
	case yaml.AliasNode:
		return encodeYAMLNode(buf, node.Alias)
	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(node.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			var key string
			if err := node.Content[i].Decode(&key); err != nil {
				return fmt.Errorf("yaml mapping key at line %d: %w", node.Content[i].Line, err)
			}
			encodedKey, err := json.Marshal(key)
			if err != nil {
				return err
			}
			buf.Write(encodedKey)
			buf.WriteByte(':')
			if err := encodeYAMLNode(buf, node.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, item := range node.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeYAMLNode(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case yaml.ScalarNode:
		return encodeYAMLScalar(buf, node)
	default:
		return fmt.Errorf("unsupported yaml node kind %d at line %d", node.Kind, node.Line)
	}
}

func encodeYAMLScalar(buf *bytes.Buffer, node *yaml.Node) error {
	switch node.Tag {
	case "!!null":
		buf.WriteString("null")
		return nil
	case "!!bool":
		var value bool
		if err := node.Decode(&value); err != nil {
			return fmt.Errorf("yaml bool at line %d: %w", node.Line, err)
		}
		if value {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
		return nil
	case "!!int":
		var value int64
		if err := node.Decode(&value); err != nil {
			return fmt.Errorf("yaml int at line %d: %w", node.Line, err)
		}
		fmt.Fprintf(buf, "%d", value)
		return nil
	case "!!float":
		var value float64
		if err := node.Decode(&value); err != nil {
			return fmt.Errorf("yaml float at line %d: %w", node.Line, err)
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return err
		}
		buf.Write(encoded)
		return nil
	default:
		var value string
		if err := node.Decode(&value); err != nil {
			return fmt.Errorf("yaml scalar at line %d: %w", node.Line, err)
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return err
		}
		buf.Write(encoded)
		return nil
	}
}
