package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want text", cfg.LogFormat)
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want >= 1", cfg.Workers)
	}
	if cfg.ProfileDir != "" {
		t.Errorf("ProfileDir = %q, want empty", cfg.ProfileDir)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "provkit.yaml")
	content := "profile_dir: /tmp/profiles\nlog_level: debug\nworkers: 2\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ProfileDir != "/tmp/profiles" {
		t.Errorf("ProfileDir = %q", cfg.ProfileDir)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.Workers != 2 {
		t.Errorf("Workers = %d", cfg.Workers)
	}
	// Unset keys keep their defaults.
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want text", cfg.LogFormat)
	}
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load of a named missing file should fail")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PROVKIT_PROFILE_DIR", "/env/profiles")
	t.Setenv("PROVKIT_LOG_LEVEL", "error")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ProfileDir != "/env/profiles" {
		t.Errorf("ProfileDir = %q, want /env/profiles", cfg.ProfileDir)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want error", cfg.LogLevel)
	}
}

func TestValidateClampsWorkers(t *testing.T) {
	tests := []struct {
		workers int
		want    int
	}{
		{0, 1},
		{-5, 1},
		{65, 64},
		{8, 8},
	}
	for _, tt := range tests {
		cfg := Default()
		cfg.Workers = tt.workers
		cfg.Validate()
		if cfg.Workers != tt.want {
			t.Errorf("Validate with workers=%d: got %d, want %d", tt.workers, cfg.Workers, tt.want)
		}
	}
}

func TestValidateRejectsBadLevels(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "loud"
	cfg.LogFormat = "xml"
	errs := cfg.Validate()
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(errs), errs)
	}
}

func TestResolveProfileDir(t *testing.T) {
	cfg := Default()

	got, err := cfg.ResolveProfileDir("/flag/dir")
	if err != nil || got != "/flag/dir" {
		t.Errorf("flag should win: got %q, %v", got, err)
	}

	cfg.ProfileDir = "/config/dir"
	got, err = cfg.ResolveProfileDir("")
	if err != nil || got != "/config/dir" {
		t.Errorf("config should win over default: got %q, %v", got, err)
	}

	cfg.ProfileDir = ""
	got, err = cfg.ResolveProfileDir("")
	if err != nil {
		t.Fatalf("ResolveProfileDir: %v", err)
	}
	want := filepath.Join("Library", "MobileDevice", "Provisioning Profiles")
	if !strings.HasSuffix(got, want) {
		t.Errorf("default dir = %q, want suffix %q", got, want)
	}
}
