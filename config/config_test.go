package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.NATS.URL != "nats://localhost:4222" {
		t.Errorf("expected default NATS URL nats://localhost:4222, got %s", cfg.NATS.URL)
	}
	if cfg.NATS.MaxReconnects != -1 {
		t.Errorf("expected unlimited reconnects, got %d", cfg.NATS.MaxReconnects)
	}
	if cfg.Engine.RequestSubject != "logic.infer" {
		t.Errorf("expected request subject logic.infer, got %s", cfg.Engine.RequestSubject)
	}
	if cfg.Engine.StreamName != "LOGIC" {
		t.Errorf("expected stream LOGIC, got %s", cfg.Engine.StreamName)
	}
	if !cfg.Engine.PublishConclusionsEnabled() {
		t.Error("expected conclusion publishing enabled by default")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing NATS URL",
			modify:  func(c *Config) { c.NATS.URL = "" },
			wantErr: true,
		},
		{
			name:    "missing request subject",
			modify:  func(c *Config) { c.Engine.RequestSubject = "" },
			wantErr: true,
		},
		{
			name:    "missing stream name",
			modify:  func(c *Config) { c.Engine.StreamName = "" },
			wantErr: true,
		},
		{
			name:    "missing pair subject",
			modify:  func(c *Config) { c.Engine.PairSubject = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "termlogic.yaml")

	content := `nats:
  url: nats://broker:4222
  reconnect_wait: 5s
engine:
  stream_name: FACTS
  publish_conclusions: false
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.NATS.URL != "nats://broker:4222" {
		t.Errorf("NATS URL = %s, want nats://broker:4222", cfg.NATS.URL)
	}
	if cfg.NATS.ReconnectWait != 5*time.Second {
		t.Errorf("ReconnectWait = %v, want 5s", cfg.NATS.ReconnectWait)
	}
	if cfg.Engine.StreamName != "FACTS" {
		t.Errorf("StreamName = %s, want FACTS", cfg.Engine.StreamName)
	}
	if cfg.Engine.PublishConclusionsEnabled() {
		t.Error("publish_conclusions should be disabled")
	}
	// Unset fields keep their defaults.
	if cfg.Engine.RequestSubject != "logic.infer" {
		t.Errorf("RequestSubject = %s, want default logic.infer", cfg.Engine.RequestSubject)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.NATS.URL = "nats://elsewhere:4222"
	if err := cfg.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if loaded.NATS.URL != "nats://elsewhere:4222" {
		t.Errorf("NATS URL = %s, want nats://elsewhere:4222", loaded.NATS.URL)
	}
}

func TestMerge(t *testing.T) {
	disabled := false
	base := DefaultConfig()
	overlay := &Config{
		NATS: NATSConfig{URL: "nats://override:4222"},
		Engine: EngineConfig{
			StreamName:         "FACTS",
			PublishConclusions: &disabled,
		},
	}

	base.Merge(overlay)

	if base.NATS.URL != "nats://override:4222" {
		t.Errorf("NATS URL = %s, want override", base.NATS.URL)
	}
	if base.Engine.StreamName != "FACTS" {
		t.Errorf("StreamName = %s, want FACTS", base.Engine.StreamName)
	}
	if base.Engine.PublishConclusionsEnabled() {
		t.Error("publish_conclusions should be disabled after merge")
	}
	// Unset overlay fields leave the base untouched.
	if base.Engine.RequestSubject != "logic.infer" {
		t.Errorf("RequestSubject = %s, want logic.infer", base.Engine.RequestSubject)
	}

	base.Merge(nil) // no-op
}

func TestMergeKeepsExplicitPublishSetting(t *testing.T) {
	disabled := false
	base := DefaultConfig()
	base.Engine.PublishConclusions = &disabled

	// Overlay that never mentions publish_conclusions.
	overlay := &Config{Engine: EngineConfig{StreamName: "FACTS"}}
	base.Merge(overlay)

	if base.Engine.PublishConclusionsEnabled() {
		t.Error("merge re-enabled publishing that was explicitly disabled")
	}
	if base.Engine.StreamName != "FACTS" {
		t.Errorf("StreamName = %s, want FACTS", base.Engine.StreamName)
	}
}
