package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/zhubert/wowint/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Host != DefaultHost || cfg.Port != DefaultPort || cfg.Index != DefaultIndex {
		t.Errorf("target = %s:%d/%d, want defaults", cfg.Host, cfg.Port, cfg.Index)
	}
	if cfg.Hold() != time.Second || cfg.Gap() != time.Second {
		t.Errorf("Hold/Gap = %v/%v, want 1s/1s", cfg.Hold(), cfg.Gap())
	}
	if cfg.Targets == nil {
		t.Error("Targets should be initialized")
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `{
  "host": "192.168.1.114",
  "port": 7001,
  "index": 2,
  "hold_ms": 150,
  "targets": {
    "couch": {"host": "10.0.0.5", "port": 7002, "index": 1}
  },
  "notifications_enabled": true
}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Host != "192.168.1.114" || cfg.Port != 7001 || cfg.Index != 2 {
		t.Errorf("target = %s:%d/%d", cfg.Host, cfg.Port, cfg.Index)
	}
	if cfg.Hold() != 150*time.Millisecond {
		t.Errorf("Hold() = %v, want 150ms", cfg.Hold())
	}
	if cfg.GapMillis != DefaultGapMillis {
		t.Errorf("GapMillis = %d, want default %d", cfg.GapMillis, DefaultGapMillis)
	}
	if !cfg.NotificationsEnabled {
		t.Error("NotificationsEnabled should be true")
	}

	couch, err := cfg.Target("couch")
	if err != nil {
		t.Fatalf("Target(couch): %v", err)
	}
	if couch != (Target{Host: "10.0.0.5", Port: 7002, Index: 1}) {
		t.Errorf("Target(couch) = %+v", couch)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `{"host": "192.168.1.114", "port": 7001}`)
	t.Setenv("WOWINT_HOST", "10.1.1.1")
	t.Setenv("WOWINT_INDEX", "3")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Host != "10.1.1.1" {
		t.Errorf("Host = %q, want env override", cfg.Host)
	}
	if cfg.Index != 3 {
		t.Errorf("Index = %d, want 3", cfg.Index)
	}
	if cfg.Port != 7001 {
		t.Errorf("Port = %d, want file value 7001", cfg.Port)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{"host": `)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, errors.KindConfig) {
		t.Errorf("kind = %v, want configuration error", errors.GetKind(err))
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeConfig(t, `{"port": 0}`)

	_, err := Load(path)
	if !errors.Is(err, errors.KindInvalid) {
		t.Errorf("Load with port 0 = %v, want invalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"empty host", func(c *Config) { c.Host = "" }, true},
		{"zero port", func(c *Config) { c.Port = 0 }, true},
		{"negative hold", func(c *Config) { c.HoldMillis = -1 }, true},
		{"negative gap", func(c *Config) { c.GapMillis = -1 }, true},
		{"target without host", func(c *Config) { c.SetTarget("p2", Target{Port: 7000}) }, true},
		{"target without port", func(c *Config) { c.SetTarget("p2", Target{Host: "::1"}) }, true},
		{"good target", func(c *Config) { c.SetTarget("p2", Target{Host: "::1", Port: 7000, Index: 2}) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.SetPath(path)
	cfg.Host = "::1"
	cfg.Port = 7100
	cfg.Index = 5
	cfg.SetTarget("p2", Target{Host: "10.0.0.2", Port: 7000, Index: 2})

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Host != "::1" || loaded.Port != 7100 || loaded.Index != 5 {
		t.Errorf("loaded target = %s:%d/%d", loaded.Host, loaded.Port, loaded.Index)
	}
	if names := loaded.TargetNames(); len(names) != 1 || names[0] != "p2" {
		t.Errorf("TargetNames() = %v", names)
	}
}

func TestSave_RejectsInvalid(t *testing.T) {
	cfg := Default()
	cfg.SetPath(filepath.Join(t.TempDir(), "config.json"))
	cfg.Port = 0

	if err := cfg.Save(); err == nil {
		t.Error("Save should validate first")
	}
	if _, err := os.Stat(cfg.Path()); !os.IsNotExist(err) {
		t.Error("invalid config should not be written")
	}
}

func TestTarget(t *testing.T) {
	cfg := Default()
	cfg.SetTarget("b", Target{Host: "h", Port: 1})
	cfg.SetTarget("a", Target{Host: "h", Port: 2})

	def, err := cfg.Target("")
	if err != nil || def.Host != DefaultHost || def.Port != DefaultPort {
		t.Errorf("Target(\"\") = %+v, %v", def, err)
	}

	if _, err := cfg.Target("missing"); !errors.Is(err, errors.KindNotFound) {
		t.Errorf("Target(missing) = %v, want not found", err)
	}

	if names := cfg.TargetNames(); len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("TargetNames() = %v, want sorted [a b]", names)
	}

	if !cfg.RemoveTarget("a") || cfg.RemoveTarget("a") {
		t.Error("RemoveTarget should report existence")
	}
}
