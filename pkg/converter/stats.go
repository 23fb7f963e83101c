package converter

import "github.com/blackcoderx/oasify/pkg/openapi"

// Stats summarises a converted document.
type Stats struct {
	Title      string
	Paths      int
	Operations int
	Tags       int
	WithBody   int // Operations carrying a request body
	Untagged   int // Operations without a folder
}

// Summarize counts what a conversion produced.
func Summarize(doc *openapi.Document) Stats {
	s := Stats{
		Title: doc.Info.Title,
		Paths: len(doc.Paths),
		Tags:  len(doc.Tags),
	}
	for _, item := range doc.Paths {
		for _, op := range item {
			s.Operations++
			if op.RequestBody != nil {
				s.WithBody++
			}
			if len(op.Tags) == 0 {
				s.Untagged++
			}
		}
	}
	return s
}
