package converter

import (
	"regexp"
	"sort"
	"strings"

	"github.com/blackcoderx/oasify/pkg/openapi"
)

// templatePattern matches Insomnia template tags such as {{base_url}} or {{ _.host }}.
var templatePattern = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// UnresolvedPlaceholders lists the distinct template tags still present in the
// document's paths after conversion, sorted. A non-empty result usually means the
// export uses a base-URL variable the converter was not told to strip.
func UnresolvedPlaceholders(doc *openapi.Document) []string {
	seen := make(map[string]struct{})
	for path := range doc.Paths {
		for _, match := range templatePattern.FindAllString(path, -1) {
			seen[match] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for tag := range seen {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// VariableName returns the trimmed variable name inside a template tag.
func VariableName(tag string) string {
	name := strings.TrimPrefix(strings.TrimSuffix(tag, "}}"), "{{")
	return strings.TrimSpace(name)
}
