package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"
)

// newViper returns an isolated viper with defaults and env binding applied.
func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	BindEnv(v)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newViper())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestInitializeFolder_WritesLoadableConfig(t *testing.T) {
	dir := t.TempDir()

	created, err := InitializeFolder(dir, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatal("InitializeFolder reported nothing created on first run")
	}

	v := newViper()
	v.SetConfigFile(ConfigPath(dir))
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("failed to read generated config: %v", err)
	}

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("generated config does not round-trip (-want +got):\n%s", diff)
	}

	created, err = InitializeFolder(dir, false)
	if err != nil {
		t.Fatalf("unexpected error on second run: %v", err)
	}
	if created {
		t.Error("second run overwrote an existing config")
	}
}

func TestInitializeFolder_Force(t *testing.T) {
	dir := t.TempDir()
	if _, err := InitializeFolder(dir, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := os.WriteFile(ConfigPath(dir), []byte(`{"server": {"addr": ":1"}}`), 0644); err != nil {
		t.Fatalf("failed to overwrite config: %v", err)
	}

	created, err := InitializeFolder(dir, true)
	if err != nil || !created {
		t.Fatalf("InitializeFolder(force) = %v, %v", created, err)
	}
	data, err := os.ReadFile(ConfigPath(dir))
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	if !strings.Contains(string(data), DefaultConfig().Server.Addr) {
		t.Errorf("forced init did not restore defaults:\n%s", data)
	}
	if _, err := os.Stat(filepath.Join(dir, FolderName, ".gitignore")); err != nil {
		t.Errorf("missing .gitignore: %v", err)
	}
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{
  "server": {"addr": ":8080", "result_ttl": "2m"},
  "convert": {"placeholders": ["{{ _.base_url }}", "{{base_url}}"]},
  "log": {"format": "json"}
}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv("OASIFY_SERVER_RATE_BURST", "42")

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("failed to read config: %v", err)
	}

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Server.ResultTTL != 2*time.Minute {
		t.Errorf("ResultTTL = %v, want 2m", cfg.Server.ResultTTL)
	}
	if cfg.Server.RateBurst != 42 {
		t.Errorf("RateBurst = %d, want env override 42", cfg.Server.RateBurst)
	}
	if cfg.Server.MaxUploadBytes != DefaultConfig().Server.MaxUploadBytes {
		t.Errorf("MaxUploadBytes = %d, want default", cfg.Server.MaxUploadBytes)
	}
	if diff := cmp.Diff([]string{"{{ _.base_url }}", "{{base_url}}"}, cfg.Convert.Placeholders); diff != "" {
		t.Errorf("Placeholders mismatch (-want +got):\n%s", diff)
	}
	if len(cfg.ConverterOptions()) != 2 {
		t.Errorf("ConverterOptions() = %d options, want 2", len(cfg.ConverterOptions()))
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{name: "empty addr", mutate: func(c *Config) { c.Server.Addr = "" }, errMsg: "server.addr"},
		{name: "zero upload limit", mutate: func(c *Config) { c.Server.MaxUploadBytes = 0 }, errMsg: "max_upload_bytes"},
		{name: "zero rate", mutate: func(c *Config) { c.Server.RatePerSecond = 0 }, errMsg: "rate_per_second"},
		{name: "zero burst", mutate: func(c *Config) { c.Server.RateBurst = 0 }, errMsg: "rate_burst"},
		{name: "bad log format", mutate: func(c *Config) { c.Log.Format = "xml" }, errMsg: "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error = %q, want containing %q", err.Error(), tt.errMsg)
			}
		})
	}
}
