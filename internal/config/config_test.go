package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.DefaultProfile = "work"
	cfg.SignInDelay = Duration{250 * time.Millisecond}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.DefaultProfile != "work" {
		t.Errorf("DefaultProfile = %q, want %q", loaded.DefaultProfile, "work")
	}
	if loaded.SignInDelay.Duration != 250*time.Millisecond {
		t.Errorf("SignInDelay = %s, want 250ms", loaded.SignInDelay)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("locale = \"de_DE\"\nsign_up_delay = \"3s\"\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Locale != "de_DE" || cfg.SignUpDelay.Duration != 3*time.Second {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.DefaultProfile != "main" || cfg.SignInDelay.Duration != 1500*time.Millisecond || !cfg.SeedOnStart || cfg.PreviewWidth != 48 {
		t.Errorf("defaults not kept: %+v", cfg)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"friends tab":   "friends_tab = \"pending\"\n",
		"preview width": "preview_width = 0\n",
		"bad duration":  "sign_in_delay = \"soon\"\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(body), 0600); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load() should fail")
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load("/nonexistent/config.toml"); err == nil {
		t.Error("Load() expected error for missing file")
	}
	cfg, err := LoadOrDefault("/nonexistent/config.toml")
	if err != nil {
		t.Fatal(err)
	}
	if *cfg != *Default() {
		t.Errorf("LoadOrDefault = %+v, want defaults", cfg)
	}
}

func TestSavePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	if err := Save(path, Default()); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file permission = %o, want 0600", perm)
	}
}

func TestApplyEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("HUDDLE_PROFILE=fromfile\nHUDDLE_LOCALE=fr_FR\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvProfile, "fromenv")
	t.Setenv(EnvLocale, "")

	cfg := Default()
	if err := cfg.ApplyEnv(envFile); err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultProfile != "fromenv" {
		t.Errorf("profile = %q, want process env to win", cfg.DefaultProfile)
	}
	if cfg.Locale != "fr_FR" {
		t.Errorf("locale = %q, want value from .env", cfg.Locale)
	}
}

func TestApplyEnvMissingFile(t *testing.T) {
	t.Setenv(EnvProfile, "")
	t.Setenv(EnvLocale, "")
	cfg := Default()
	if err := cfg.ApplyEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultProfile != "main" {
		t.Errorf("profile = %q", cfg.DefaultProfile)
	}
}
