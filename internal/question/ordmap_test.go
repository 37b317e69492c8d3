package question

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

// TestOrderedMappingJSONPreservesOrder verifies the JSON codec keeps
// document key order both directions.
func TestOrderedMappingJSONPreservesOrder(t *testing.T) {
	mapping := OrderedMapping{Match("zebra", "1"), Unmatched("apple"), Match("mango", "2")}
	data, err := json.Marshal(mapping)
	if err != nil {
		t.Fatalf("marshal mapping: %v", err)
	}
	expected := `{"zebra":"1","apple":null,"mango":"2"}`
	if string(data) != expected {
		t.Fatalf("expected %s, got %s", expected, data)
	}

	var decoded OrderedMapping
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal mapping: %v", err)
	}
	if !mapping.Equal(decoded) {
		t.Fatalf("round trip changed mapping: %v", decoded)
	}
}

// TestOrderedMappingJSONRejectsNonObjects verifies shape errors.
func TestOrderedMappingJSONRejectsNonObjects(t *testing.T) {
	var decoded OrderedMapping
	if err := json.Unmarshal([]byte(`["a","b"]`), &decoded); err == nil {
		t.Fatalf("expected an error for a JSON array")
	}
}

// TestOrderedMappingDuplicateKeysKeepFirstPosition verifies a repeated key
// keeps its first slot and takes the last value.
func TestOrderedMappingDuplicateKeysKeepFirstPosition(t *testing.T) {
	var decoded OrderedMapping
	if err := json.Unmarshal([]byte(`{"a":"1","b":"2","a":"3"}`), &decoded); err != nil {
		t.Fatalf("unmarshal mapping: %v", err)
	}
	if len(decoded) != 2 || decoded[0].Key != "a" || decoded[1].Key != "b" {
		t.Fatalf("unexpected keys: %v", decoded.Keys())
	}
	if value, _ := decoded.Get("a"); value == nil || *value != "3" {
		t.Fatalf("expected last value to win, got %v", value)
	}
}

// TestOrderedMappingYAMLRoundTrip verifies the YAML codec keeps order and
// null values.
func TestOrderedMappingYAMLRoundTrip(t *testing.T) {
	mapping := OrderedMapping{Match("beta", "x"), Unmatched("alpha")}
	data, err := yaml.Marshal(mapping)
	if err != nil {
		t.Fatalf("marshal mapping: %v", err)
	}
	var decoded OrderedMapping
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal mapping: %v", err)
	}
	if !mapping.Equal(decoded) {
		t.Fatalf("round trip changed mapping:\n%s\n%v", data, decoded)
	}
	if decoded[0].Key != "beta" {
		t.Fatalf("expected beta first, got %v", decoded.Keys())
	}
}

// TestOrderedMappingCloneIsDeep verifies clones do not share values.
func TestOrderedMappingCloneIsDeep(t *testing.T) {
	mapping := OrderedMapping{Match("a", "x")}
	clone := mapping.Clone()
	clone.Set("a", nil)
	if value, _ := mapping.Get("a"); value == nil || *value != "x" {
		t.Fatalf("clone mutation leaked into the original")
	}
}
