package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"quizil/internal/question"
)

// Load reads, parses, and validates a quiz document. JSON is used for a
// .json extension, YAML otherwise.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quiz: %w", err)
	}
	file, err := Parse(data, path)
	if err != nil {
		return nil, err
	}
	if err := ValidateFile(file); err != nil {
		return nil, err
	}
	return file, nil
}

// Parse decodes quiz bytes without touching the filesystem.
func Parse(data []byte, path string) (*File, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		return parseJSON(data)
	}
	return parseYAML(data)
}

// jsonDocument is the strict JSON shape of a quiz file.
type jsonDocument struct {
	Version   int               `json:"version"`
	Title     string            `json:"title,omitempty"`
	Questions []json.RawMessage `json:"questions"`
}

func parseJSON(data []byte) (*File, error) {
	var doc jsonDocument
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse json: %w", err)
	}
	file := &File{Version: doc.Version, Title: doc.Title}
	for i, raw := range doc.Questions {
		q, err := question.New(raw)
		if err != nil {
			return nil, fmt.Errorf("questions[%d]: %w", i, err)
		}
		file.Questions = append(file.Questions, q)
	}
	return file, nil
}

// yamlDocument is the strict YAML shape of a quiz file. Questions stay as
// raw nodes so ordered mappings survive the trip into the core factory.
type yamlDocument struct {
	Version   int         `yaml:"version"`
	Title     string      `yaml:"title"`
	Questions []yaml.Node `yaml:"questions"`
}

func parseYAML(data []byte) (*File, error) {
	var doc yamlDocument
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	file := &File{Version: doc.Version, Title: doc.Title}
	for i, node := range doc.Questions {
		raw, err := yamlNodeToJSON(&node)
		if err != nil {
			return nil, fmt.Errorf("questions[%d]: %w", i, err)
		}
		q, err := question.New(raw)
		if err != nil {
			return nil, fmt.Errorf("questions[%d]: %w", i, err)
		}
		file.Questions = append(file.Questions, q)
	}
	return file, nil
}
