// Package openapi holds the OpenAPI 3.0 document shape produced by the converter.
// Only the subset of the specification the converter emits is modelled.
package openapi

import "sort"

// Fixed document constants.
const (
	Version      = "3.0.0"
	InfoVersion  = "1.0.0"
	DefaultTitle = "API Documentation"
	MediaJSON    = "application/json"
)

// Document is the root of an OpenAPI document.
type Document struct {
	OpenAPI    string     `yaml:"openapi" json:"openapi"`
	Info       Info       `yaml:"info" json:"info"`
	Paths      Paths      `yaml:"paths" json:"paths"`
	Components Components `yaml:"components" json:"components"`
	Tags       []Tag      `yaml:"tags" json:"tags"`
}

// Info is the document metadata block.
type Info struct {
	Title   string `yaml:"title" json:"title"`
	Version string `yaml:"version" json:"version"`
}

// Paths maps a path template to its operations keyed by lower-case method.
type Paths map[string]PathItem

// PathItem maps a lower-case HTTP method to its operation.
type PathItem map[string]*Operation

// Components is always emitted with empty schemas and responses.
type Components struct {
	Schemas   map[string]Schema   `yaml:"schemas" json:"schemas"`
	Responses map[string]Response `yaml:"responses" json:"responses"`
}

// Tag groups operations; one per Insomnia folder.
type Tag struct {
	Name string `yaml:"name" json:"name"`
}

// Operation is a single method under a path.
type Operation struct {
	Tags        []string            `yaml:"tags" json:"tags"`
	Summary     string              `yaml:"summary" json:"summary"`
	Description string              `yaml:"description" json:"description"`
	Parameters  []Parameter         `yaml:"parameters" json:"parameters"`
	Responses   map[string]Response `yaml:"responses" json:"responses"`
	// RequestBody is nil for methods that carry no body and is serialized as null.
	RequestBody *RequestBody `yaml:"requestBody" json:"requestBody"`
}

// Parameter is a query or path parameter.
type Parameter struct {
	Name     string `yaml:"name" json:"name"`
	In       string `yaml:"in" json:"in"`
	Required bool   `yaml:"required" json:"required"`
	Schema   Schema `yaml:"schema" json:"schema"`
}

// Schema is the minimal schema object the converter writes.
type Schema struct {
	Type string `yaml:"type,omitempty" json:"type,omitempty"`
}

// MediaType is one entry of a response content map.
type MediaType struct {
	Schema Schema `yaml:"schema" json:"schema"`
}

// BodySchema is a request body schema. Example is always written, so a body
// that parses to JSON null comes out as "example: null".
type BodySchema struct {
	Type    string      `yaml:"type" json:"type"`
	Example interface{} `yaml:"example" json:"example"`
}

// BodyMediaType is one entry of a request body content map.
type BodyMediaType struct {
	Schema BodySchema `yaml:"schema" json:"schema"`
}

// RequestBody describes the payload of post/put/patch operations.
type RequestBody struct {
	Content map[string]BodyMediaType `yaml:"content" json:"content"`
}

// Response describes one status code.
type Response struct {
	Description string               `yaml:"description" json:"description"`
	Content     map[string]MediaType `yaml:"content,omitempty" json:"content,omitempty"`
}

// New returns an empty document skeleton. An empty title falls back to DefaultTitle.
func New(title string) *Document {
	if title == "" {
		title = DefaultTitle
	}
	return &Document{
		OpenAPI: Version,
		Info: Info{
			Title:   title,
			Version: InfoVersion,
		},
		Paths: Paths{},
		Components: Components{
			Schemas:   map[string]Schema{},
			Responses: map[string]Response{},
		},
		Tags: []Tag{},
	}
}

// SuccessResponses returns the fixed single "200" response every operation carries.
func SuccessResponses() map[string]Response {
	return map[string]Response{
		"200": {
			Description: "Successful operation",
			Content: map[string]MediaType{
				MediaJSON: {Schema: Schema{Type: "object"}},
			},
		},
	}
}

// JSONRequestBody wraps an example payload into an application/json request body.
func JSONRequestBody(example interface{}) *RequestBody {
	return &RequestBody{
		Content: map[string]BodyMediaType{
			MediaJSON: {Schema: BodySchema{Type: "object", Example: example}},
		},
	}
}

// HasTag reports whether a tag with name is already recorded.
func (d *Document) HasTag(name string) bool {
	for _, tag := range d.Tags {
		if tag.Name == name {
			return true
		}
	}
	return false
}

// AddTag appends name unless it is already present, keeping first-seen order.
func (d *Document) AddTag(name string) {
	if d.HasTag(name) {
		return
	}
	d.Tags = append(d.Tags, Tag{Name: name})
}

// OperationRef identifies an operation by its path and method.
type OperationRef struct {
	Path      string
	Method    string
	Operation *Operation
}

// Operations returns every operation sorted by path then method.
func (d *Document) Operations() []OperationRef {
	var out []OperationRef
	for path, item := range d.Paths {
		for method, op := range item {
			out = append(out, OperationRef{Path: path, Method: method, Operation: op})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Method < out[j].Method
	})
	return out
}
