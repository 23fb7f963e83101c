// Package insomnia models the Insomnia export format consumed by the converter.
package insomnia

import "encoding/json"

// Resource type discriminators the converter understands.
const (
	TypeRequestGroup = "request_group"
	TypeRequest      = "request"
)

// Document is an exported Insomnia collection.
type Document struct {
	Name      *string    `json:"name,omitempty"` // Optional collection name
	Resources []Resource `json:"resources"`      // Flat list of folders, requests, environments...
}

// Resource is one entry of the export. Folders and requests share the struct;
// fields that do not apply to a given type are left empty.
type Resource struct {
	ID             string          `json:"_id"`
	Type           string          `json:"_type"`
	ParentID       *string         `json:"parentId,omitempty"` // nil means top-level
	Name           string          `json:"name,omitempty"`
	Method         string          `json:"method,omitempty"`
	URL            string          `json:"url,omitempty"`
	Description    string          `json:"description,omitempty"`
	Parameters     []Parameter     `json:"parameters,omitempty"`
	PathParameters []PathParameter `json:"pathParameters,omitempty"`
	Body           *Body           `json:"body,omitempty"`
}

// Parameter is a declared request parameter.
type Parameter struct {
	Name     string `json:"name"`
	Type     string `json:"type,omitempty"` // "query" or anything else
	Value    string `json:"value,omitempty"`
	Required *bool  `json:"required,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
}

// PathParameter is a named path segment variable.
type PathParameter struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// Body holds the raw request body.
type Body struct {
	MimeType string  `json:"mimeType,omitempty"`
	Text     *string `json:"text,omitempty"` // Raw JSON-encoded text, nil when absent
}

// UnmarshalJSON accepts both the underscored Insomnia keys (_id, _type) and the
// plain id/type spellings produced by some exporters.
func (r *Resource) UnmarshalJSON(data []byte) error {
	type alias Resource
	aux := struct {
		*alias
		PlainID   string `json:"id"`
		PlainType string `json:"type"`
	}{alias: (*alias)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if r.ID == "" {
		r.ID = aux.PlainID
	}
	if r.Type == "" {
		r.Type = aux.PlainType
	}
	return nil
}

// IsFolder reports whether the resource is a request_group.
func (r Resource) IsFolder() bool {
	return r.Type == TypeRequestGroup
}

// IsRequest reports whether the resource is a request.
func (r Resource) IsRequest() bool {
	return r.Type == TypeRequest
}

// Folders returns the request_group resources in source order.
func (d *Document) Folders() []Resource {
	var out []Resource
	for _, res := range d.Resources {
		if res.IsFolder() {
			out = append(out, res)
		}
	}
	return out
}

// Requests returns the request resources in source order.
func (d *Document) Requests() []Resource {
	var out []Resource
	for _, res := range d.Resources {
		if res.IsRequest() {
			out = append(out, res)
		}
	}
	return out
}
