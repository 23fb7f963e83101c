package core

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FolderName is the per-project configuration directory.
const FolderName = ".oasify"

// ConfigFileName is the config file inside FolderName.
const ConfigFileName = "config.json"

// ConfigPath returns the config file location under baseDir.
func ConfigPath(baseDir string) string {
	return filepath.Join(baseDir, FolderName, ConfigFileName)
}

// InitializeFolder creates baseDir/.oasify with a default config.json. It reports
// whether anything was created; an existing config is never overwritten unless force is set.
func InitializeFolder(baseDir string, force bool) (bool, error) {
	dir := filepath.Join(baseDir, FolderName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, fmt.Errorf("failed to create %s folder: %w", FolderName, err)
	}

	path := ConfigPath(baseDir)
	if _, err := os.Stat(path); err == nil && !force {
		return false, nil
	} else if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to stat config file: %w", err)
	}

	if err := writeDefaultConfig(path); err != nil {
		return false, err
	}

	// Keep local overrides out of version control.
	ignore := filepath.Join(dir, ".gitignore")
	if _, err := os.Stat(ignore); os.IsNotExist(err) {
		if err := os.WriteFile(ignore, []byte("*.local.json\n"), 0644); err != nil {
			return false, fmt.Errorf("failed to write .gitignore: %w", err)
		}
	}

	return true, nil
}

// fileConfig mirrors Config with durations as strings so the file stays readable.
type fileConfig struct {
	Server struct {
		Addr           string  `json:"addr"`
		MaxUploadBytes int64   `json:"max_upload_bytes"`
		RatePerSecond  float64 `json:"rate_per_second"`
		RateBurst      int     `json:"rate_burst"`
		ResultTTL      string  `json:"result_ttl"`
		ShutdownGrace  string  `json:"shutdown_grace"`
	} `json:"server"`
	Convert ConvertConfig `json:"convert"`
	Log     LogConfig     `json:"log"`
}

// writeDefaultConfig writes DefaultConfig as indented JSON.
func writeDefaultConfig(path string) error {
	d := DefaultConfig()

	var fc fileConfig
	fc.Server.Addr = d.Server.Addr
	fc.Server.MaxUploadBytes = d.Server.MaxUploadBytes
	fc.Server.RatePerSecond = d.Server.RatePerSecond
	fc.Server.RateBurst = d.Server.RateBurst
	fc.Server.ResultTTL = d.Server.ResultTTL.String()
	fc.Server.ShutdownGrace = d.Server.ShutdownGrace.String()
	fc.Convert = d.Convert
	fc.Log = d.Log

	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
