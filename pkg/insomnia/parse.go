package insomnia

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// DefaultMaxSize caps how many bytes Decode will read when no limit is given.
const DefaultMaxSize int64 = 10 << 20

// documentSchema is the minimal shape the converter relies on.
const documentSchema = `{
  "type": "object",
  "required": ["resources"],
  "properties": {
    "name": {"type": ["string", "null"]},
    "resources": {
      "type": "array",
      "items": {"type": "object"}
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(documentSchema)

// Parse validates and decodes an exported document.
func Parse(data []byte) (*Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, &InvalidSourceDocumentError{Reason: "empty document"}
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, &InvalidSourceDocumentError{Reason: "not well-formed JSON", Err: err}
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, &InvalidSourceDocumentError{Reason: strings.Join(msgs, "; ")}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &InvalidSourceDocumentError{Reason: "failed to decode resources", Err: err}
	}
	if doc.Resources == nil {
		doc.Resources = []Resource{}
	}

	return &doc, nil
}

// Decode reads at most limit bytes from r and parses them. A limit <= 0 means DefaultMaxSize.
func Decode(r io.Reader, limit int64) (*Document, error) {
	if limit <= 0 {
		limit = DefaultMaxSize
	}

	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read source document: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, &InvalidSourceDocumentError{
			Reason: fmt.Sprintf("exceeds maximum size of %d bytes", limit),
			Err:    ErrTooLarge,
		}
	}

	return Parse(data)
}

// LoadFile opens path and decodes it with the given size limit.
func LoadFile(path string, limit int64) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source document: %w", err)
	}
	defer f.Close()

	return Decode(f, limit)
}
