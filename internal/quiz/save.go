package quiz

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// saveDocument is the on-disk quiz shape. Questions serialize through the
// core JSONData contract.
type saveDocument struct {
	Version   int              `json:"version" yaml:"version"`
	Title     string           `json:"title,omitempty" yaml:"title,omitempty"`
	Questions []map[string]any `json:"questions" yaml:"questions"`
}

// Save validates and writes a quiz document. JSON is used for a .json
// extension, YAML otherwise.
func Save(path string, file *File) error {
	if err := ValidateFile(file); err != nil {
		return err
	}
	doc := saveDocument{Version: file.Version, Title: file.Title}
	for _, q := range file.Questions {
		doc.Questions = append(doc.Questions, q.JSONData())
	}

	data, err := encodeDocument(doc, path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write quiz: %w", err)
	}
	return nil
}

func encodeDocument(doc saveDocument, path string) ([]byte, error) {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return append(data, '\n'), nil
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return data, nil
}
