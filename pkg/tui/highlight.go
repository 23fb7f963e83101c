package tui

import (
	"encoding/json"
	"fmt"
	"strings"
)

// exampleBlock wraps a request body example in a fenced json block so glamour
// highlights it. Examples are re-encoded with indentation so minified bodies
// stay readable.
func exampleBlock(example interface{}) string {
	var sb strings.Builder
	sb.WriteString("```json\n")

	if example == nil {
		sb.WriteString("null")
	} else if pretty, err := json.MarshalIndent(example, "", "  "); err == nil {
		sb.Write(pretty)
	} else {
		fmt.Fprintf(&sb, "%v", example)
	}

	sb.WriteString("\n```\n")
	return sb.String()
}
