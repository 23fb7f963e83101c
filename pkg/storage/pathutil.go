package storage

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ResolveOutputPath resolves target against workDir. An absolute target is taken
// as given; a relative one must not climb out of workDir through ".." segments.
func ResolveOutputPath(target, workDir string) (string, error) {
	if target == "" {
		return "", fmt.Errorf("output path is required")
	}
	if filepath.IsAbs(target) {
		return filepath.Clean(target), nil
	}
	target = filepath.Join(workDir, target)

	absPath, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("invalid output path: %w", err)
	}
	absWorkDir, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve work directory: %w", err)
	}

	// Trailing separator so /project-evil does not match /project.
	prefix := absWorkDir
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	if absPath != absWorkDir && !strings.HasPrefix(absPath, prefix) {
		return "", fmt.Errorf("access denied: %s is outside %s", absPath, absWorkDir)
	}

	return absPath, nil
}
