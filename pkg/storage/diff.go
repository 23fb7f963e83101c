package storage

import (
	"fmt"

	"github.com/aymanbagabas/go-udiff"
)

// Diff returns a unified diff (3 lines of context) between the previous and new
// content of name. Identical inputs produce an empty string.
func Diff(name, original, modified string) string {
	if original == modified {
		return ""
	}

	edits := udiff.Strings(original, modified)
	unified, err := udiff.ToUnified("a/"+name, "b/"+name, original, edits, 3)
	if err != nil {
		return fmt.Sprintf("--- a/%s\n+++ b/%s\n(diff generation failed)\n", name, name)
	}
	return unified
}
