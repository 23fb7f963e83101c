// Package converter turns an Insomnia export into an OpenAPI 3.0 document.
//
// Convert is a pure function: it performs no I/O, holds no state between calls and
// never mutates its input, so it is safe to call concurrently with distinct inputs.
package converter

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/blackcoderx/oasify/pkg/insomnia"
	"github.com/blackcoderx/oasify/pkg/openapi"
)

// DefaultPlaceholder is the base-URL token stripped from request URLs.
const DefaultPlaceholder = "{{base_url}}"

// emptyBody is used when a body-bearing request has no body text.
const emptyBody = "{}"

// Options tunes a conversion.
type Options struct {
	Placeholders []string // Tokens removed verbatim from every URL
	DefaultTitle string   // Title used when the export has no name
}

// Option mutates Options.
type Option func(*Options)

// WithPlaceholders replaces the base-URL tokens removed from URLs.
func WithPlaceholders(tokens ...string) Option {
	return func(o *Options) {
		o.Placeholders = tokens
	}
}

// WithTitle sets the title used when the export has no name.
func WithTitle(title string) Option {
	return func(o *Options) {
		o.DefaultTitle = title
	}
}

func defaultOptions() Options {
	return Options{
		Placeholders: []string{DefaultPlaceholder},
		DefaultTitle: openapi.DefaultTitle,
	}
}

// Convert builds the OpenAPI document for src. It fails as a whole with a
// *MalformedRequestBodyError when any post/put/patch request carries body text
// that is not valid JSON.
func Convert(src *insomnia.Document, opts ...Option) (*openapi.Document, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	doc := openapi.New(o.DefaultTitle)
	if src.Name != nil {
		// An explicitly empty name is kept as-is rather than defaulted.
		doc.Info.Title = *src.Name
	}

	folders := folderIndex(src.Resources)

	for _, req := range src.Requests() {
		method := strings.ToLower(req.Method)
		path := normalizePath(req.URL, o.Placeholders)

		if _, ok := doc.Paths[path]; !ok {
			doc.Paths[path] = openapi.PathItem{}
		}

		folderName, hasFolder := resolveFolder(folders, req.ParentID)
		if hasFolder {
			doc.AddTag(folderName)
		}

		body, err := buildRequestBody(req, method)
		if err != nil {
			return nil, err
		}

		tags := []string{}
		if hasFolder {
			tags = []string{folderName}
		}

		doc.Paths[path][method] = &openapi.Operation{
			Tags:        tags,
			Summary:     req.Name,
			Description: req.Description,
			Parameters:  buildParameters(req),
			Responses:   openapi.SuccessResponses(),
			RequestBody: body,
		}
	}

	return doc, nil
}

// normalizePath strips base-URL tokens and rewrites the literal ":id" segment to
// "{id}". Other colon-style segments are left untouched.
func normalizePath(url string, placeholders []string) string {
	for _, token := range placeholders {
		if token == "" {
			continue
		}
		url = strings.ReplaceAll(url, token, "")
	}
	return strings.ReplaceAll(url, ":id", "{id}")
}

// folderIndex maps folder id to name. The first folder with a given id wins.
func folderIndex(resources []insomnia.Resource) map[string]string {
	index := make(map[string]string)
	for _, res := range resources {
		if !res.IsFolder() {
			continue
		}
		if _, seen := index[res.ID]; !seen {
			index[res.ID] = res.Name
		}
	}
	return index
}

// resolveFolder returns the parent folder name. A missing or unknown parent and an
// unnamed folder all resolve to "no folder".
func resolveFolder(index map[string]string, parentID *string) (string, bool) {
	if parentID == nil {
		return "", false
	}
	name, ok := index[*parentID]
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// buildParameters merges declared parameters and path parameters in that order.
// Any declared kind other than "query" is emitted as a path parameter.
func buildParameters(req insomnia.Resource) []openapi.Parameter {
	params := make([]openapi.Parameter, 0, len(req.Parameters)+len(req.PathParameters))

	for _, p := range req.Parameters {
		in := "path"
		if p.Type == "query" {
			in = "query"
		}
		required := false
		if p.Required != nil {
			required = *p.Required
		}
		params = append(params, openapi.Parameter{
			Name:     p.Name,
			In:       in,
			Required: required,
			Schema:   openapi.Schema{Type: "string"},
		})
	}

	for _, p := range req.PathParameters {
		params = append(params, openapi.Parameter{
			Name:     p.Name,
			In:       "path",
			Required: true,
			Schema:   openapi.Schema{Type: "string"},
		})
	}

	return params
}

// carriesBody reports whether method gets a request body.
func carriesBody(method string) bool {
	switch method {
	case "post", "put", "patch":
		return true
	}
	return false
}

// buildRequestBody parses the raw body text into the request body example.
func buildRequestBody(req insomnia.Resource, method string) (*openapi.RequestBody, error) {
	if !carriesBody(method) {
		return nil, nil
	}

	text := emptyBody
	if req.Body != nil && req.Body.Text != nil {
		text = *req.Body.Text
	}

	example, err := decodeExample(text)
	if err != nil {
		return nil, &MalformedRequestBodyError{
			RequestID:   req.ID,
			RequestName: req.Name,
			Err:         err,
		}
	}

	return openapi.JSONRequestBody(example), nil
}

// decodeExample parses exactly one JSON value from text. Numbers come back as
// openapi.Number so they keep every digit.
func decodeExample(text string) (interface{}, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("unexpected end of JSON input")
		}
		return nil, err
	}
	var extra interface{}
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, errors.New("invalid character after top-level value")
	}
	return exactNumbers(v), nil
}

// exactNumbers replaces json.Number leaves with openapi.Number in place.
func exactNumbers(v interface{}) interface{} {
	switch v := v.(type) {
	case map[string]interface{}:
		for k, item := range v {
			v[k] = exactNumbers(item)
		}
		return v
	case []interface{}:
		for i, item := range v {
			v[i] = exactNumbers(item)
		}
		return v
	case json.Number:
		return openapi.Number(v)
	default:
		return v
	}
}
