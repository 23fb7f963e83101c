package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blackcoderx/oasify/pkg/openapi"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"
)

// sampleDocument builds a small document by hand so storage tests do not depend
// on the converter.
func sampleDocument() *openapi.Document {
	doc := openapi.New("Pets")
	doc.AddTag("Pets")
	doc.Paths["/pets"] = openapi.PathItem{
		"get": {
			Tags:       []string{"Pets"},
			Summary:    "List pets",
			Parameters: []openapi.Parameter{{Name: "limit", In: "query", Schema: openapi.Schema{Type: "string"}}},
			Responses:  openapi.SuccessResponses(),
		},
		"post": {
			Tags:        []string{"Pets"},
			Summary:     "Create pet",
			Description: "Adds a pet",
			Parameters:  []openapi.Parameter{},
			Responses:   openapi.SuccessResponses(),
			RequestBody: openapi.JSONRequestBody(map[string]interface{}{
				"name": "rex",
				"tags": []interface{}{"a", "b"},
				"age":  float64(3),
			}),
		},
	}
	return doc
}

func TestMarshalYAML_LoadsAsOpenAPI(t *testing.T) {
	data, err := MarshalYAML(sampleDocument())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loader := openapi3.NewLoader()
	loaded, err := loader.LoadFromData(data)
	if err != nil {
		t.Fatalf("emitted YAML does not load as OpenAPI: %v\n%s", err, data)
	}

	if loaded.OpenAPI != "3.0.0" || loaded.Info.Title != "Pets" || loaded.Info.Version != "1.0.0" {
		t.Errorf("header = %q/%q/%q", loaded.OpenAPI, loaded.Info.Title, loaded.Info.Version)
	}
	if len(loaded.Tags) != 1 || loaded.Tags[0].Name != "Pets" {
		t.Errorf("Tags = %v, want [Pets]", loaded.Tags)
	}

	item := loaded.Paths.Value("/pets")
	if item == nil {
		t.Fatal("missing /pets path")
	}
	if item.Get == nil || item.Get.RequestBody != nil {
		t.Errorf("GET operation = %+v, want present without body", item.Get)
	}
	if item.Post == nil || item.Post.RequestBody == nil {
		t.Fatal("POST operation is missing its request body")
	}

	media := item.Post.RequestBody.Value.Content.Get("application/json")
	if media == nil || media.Schema == nil || media.Schema.Value == nil {
		t.Fatal("POST request body has no application/json schema")
	}
	example, ok := media.Schema.Value.Example.(map[string]interface{})
	if !ok {
		t.Fatalf("example = %T, want object", media.Schema.Value.Example)
	}
	if example["name"] != "rex" {
		t.Errorf("example.name = %v, want rex", example["name"])
	}
}

func TestMarshalYAML_ExplicitNullBody(t *testing.T) {
	data, err := MarshalYAML(sampleDocument())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := string(data)
	for _, want := range []string{"requestBody: null", "schemas: {}", "responses: {}", "openapi: 3.0.0"} {
		if !strings.Contains(text, want) {
			t.Errorf("YAML missing %q:\n%s", want, text)
		}
	}
}

func numbersDocument() *openapi.Document {
	doc := openapi.New("Events")
	doc.Paths["/events"] = openapi.PathItem{
		"post": {
			Tags:       []string{},
			Parameters: []openapi.Parameter{},
			Responses:  openapi.SuccessResponses(),
			RequestBody: openapi.JSONRequestBody(map[string]interface{}{
				"ts":    openapi.Number("1700000000"),
				"id":    openapi.Number("9007199254740993"),
				"big":   openapi.Number("12345678901234567890"),
				"ratio": openapi.Number("0.25"),
			}),
		},
		"put": {
			Tags:        []string{},
			Parameters:  []openapi.Parameter{},
			Responses:   openapi.SuccessResponses(),
			RequestBody: openapi.JSONRequestBody(nil),
		},
	}
	return doc
}

func TestMarshal_NumbersKeepDigits(t *testing.T) {
	tests := []struct {
		format Format
		want   []string
	}{
		{format: FormatYAML, want: []string{"ts: 1700000000\n", "id: 9007199254740993\n", "big: 12345678901234567890\n", "ratio: 0.25\n"}},
		{format: FormatJSON, want: []string{`"ts": 1700000000`, `"id": 9007199254740993`, `"big": 12345678901234567890`, `"ratio": 0.25`}},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			data, err := Marshal(numbersDocument(), tt.format)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			text := string(data)
			for _, want := range tt.want {
				if !strings.Contains(text, want) {
					t.Errorf("output missing %q:\n%s", want, text)
				}
			}
			if strings.Contains(text, "e+") {
				t.Errorf("output has exponent notation:\n%s", text)
			}
		})
	}

	loaded, err := LoadDocument(writeTemp(t, numbersDocument()))
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	example := loaded.Paths["/events"]["post"].RequestBody.Content[openapi.MediaJSON].Schema.Example.(map[string]interface{})
	if id, ok := example["id"].(int); !ok || int64(id) != 9007199254740993 {
		t.Errorf("id = %v (%T), want exact integer", example["id"], example["id"])
	}
}

func TestMarshal_NullExampleIsKept(t *testing.T) {
	yamlData, err := MarshalYAML(numbersDocument())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(yamlData), "example: null") {
		t.Errorf("YAML missing explicit null example:\n%s", yamlData)
	}

	jsonData, err := MarshalJSON(numbersDocument())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(jsonData), `"example": null`) {
		t.Errorf("JSON missing explicit null example:\n%s", jsonData)
	}

	// Response schemas carry no example key at all.
	if strings.Count(string(yamlData), "example:") != 2 {
		t.Errorf("want exactly the two request body examples:\n%s", yamlData)
	}
}

func writeTemp(t *testing.T, doc *openapi.Document) string {
	t.Helper()
	path, err := SaveDocument(doc, filepath.Join(t.TempDir(), "api"), FormatYAML)
	if err != nil {
		t.Fatalf("failed to save: %v", err)
	}
	return path
}

func TestSaveAndLoadDocument_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		path     string
		format   Format
		wantPath string
	}{
		{name: "yaml adds extension", path: filepath.Join(dir, "out", "openapi"), format: FormatYAML, wantPath: filepath.Join(dir, "out", "openapi.yaml")},
		{name: "json adds extension", path: filepath.Join(dir, "api"), format: FormatJSON, wantPath: filepath.Join(dir, "api.json")},
		{name: "explicit extension kept", path: filepath.Join(dir, "api.yml"), format: FormatYAML, wantPath: filepath.Join(dir, "api.yml")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := sampleDocument()
			written, err := SaveDocument(doc, tt.path, tt.format)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if written != tt.wantPath {
				t.Errorf("written = %q, want %q", written, tt.wantPath)
			}

			loaded, err := LoadDocument(written)
			if err != nil {
				t.Fatalf("failed to load: %v", err)
			}

			// YAML decodes whole numbers as int; normalise before comparing.
			loadedExample := loaded.Paths["/pets"]["post"].RequestBody.Content[openapi.MediaJSON].Schema.Example.(map[string]interface{})
			if age, ok := loadedExample["age"].(int); ok {
				loadedExample["age"] = float64(age)
			}

			if diff := cmp.Diff(doc, loaded); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadDocument_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("paths: [unterminated"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if _, err := LoadDocument(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
	if _, err := LoadDocument(bad); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("error = %v, want parse failure", err)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatYAML},
		{in: "YAML", want: FormatYAML},
		{in: "yml", want: FormatYAML},
		{in: "json", want: FormatJSON},
		{in: "toml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q, got %q", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	if FormatYAML.ContentType() != "application/x-yaml" {
		t.Errorf("YAML content type = %q", FormatYAML.ContentType())
	}
}
