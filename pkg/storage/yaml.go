// Package storage serializes converted documents, keeps pending results for download
// and writes them to disk.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/blackcoderx/oasify/pkg/openapi"
	"gopkg.in/yaml.v3"
)

// Format is an output serialization.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat maps a flag value to a Format. Empty means YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q (use yaml or json)", s)
	}
}

// Extension returns the file suffix for the format, including the dot.
func (f Format) Extension() string {
	if f == FormatJSON {
		return ".json"
	}
	return ".yaml"
}

// ContentType returns the media type used when serving the format.
func (f Format) ContentType() string {
	if f == FormatJSON {
		return "application/json"
	}
	return "application/x-yaml"
}

// MarshalYAML renders doc as YAML.
func MarshalYAML(doc *openapi.Document) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	return data, nil
}

// MarshalJSON renders doc as indented JSON.
func MarshalJSON(doc *openapi.Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	return append(data, '\n'), nil
}

// Marshal renders doc in the given format.
func Marshal(doc *openapi.Document, format Format) ([]byte, error) {
	if format == FormatJSON {
		return MarshalJSON(doc)
	}
	return MarshalYAML(doc)
}

// SaveDocument writes doc to filePath, creating parent directories and adding the
// format's extension when the path has none.
func SaveDocument(doc *openapi.Document, filePath string, format Format) (string, error) {
	data, err := Marshal(doc, format)
	if err != nil {
		return "", err
	}
	return WriteOutput(data, filePath, format)
}

// WriteOutput writes already serialized data and returns the final path.
func WriteOutput(data []byte, filePath string, format Format) (string, error) {
	if filepath.Ext(filePath) == "" {
		filePath += format.Extension()
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return filePath, nil
}

// LoadDocument reads a YAML (or JSON, which is valid YAML) document from disk.
func LoadDocument(filePath string) (*openapi.Document, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var doc openapi.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	return &doc, nil
}
