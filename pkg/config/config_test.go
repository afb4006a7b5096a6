package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Suggest.MaxSuggestions <= 0 {
		t.Errorf("DefaultConfig().Suggest.MaxSuggestions = %d, want > 0", cfg.Suggest.MaxSuggestions)
	}
	if cfg.Dict.Language == "" {
		t.Error("DefaultConfig().Dict.Language should not be empty")
	}
}

func TestSaveAndLoadConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := DefaultConfig()
	cfg.Dict.AffPath = "/dict/en_US.aff"
	cfg.Dict.DicPath = "/dict/en_US.dic"
	cfg.Suggest.MaxSuggestions = 7

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Dict.AffPath != cfg.Dict.AffPath {
		t.Errorf("AffPath = %q, want %q", loaded.Dict.AffPath, cfg.Dict.AffPath)
	}
	if loaded.Suggest.MaxSuggestions != 7 {
		t.Errorf("MaxSuggestions = %d, want 7", loaded.Suggest.MaxSuggestions)
	}
}

func TestInitConfigCreatesDefaultFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if cfg.Suggest.MaxSuggestions != DefaultConfig().Suggest.MaxSuggestions {
		t.Error("InitConfig should return default values when no file exists")
	}

	again, err := InitConfig(path)
	if err != nil {
		t.Fatalf("second InitConfig: %v", err)
	}
	if again.Suggest.MaxSuggestions != cfg.Suggest.MaxSuggestions {
		t.Error("InitConfig should load back the just-created file unchanged")
	}
}

func TestUpdate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	cfg := DefaultConfig()
	aff := "/custom.aff"
	limit := 3
	if err := cfg.Update(path, &aff, nil, &limit); err != nil {
		t.Fatalf("Update: %v", err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Dict.AffPath != aff {
		t.Errorf("AffPath = %q, want %q", loaded.Dict.AffPath, aff)
	}
	if loaded.Suggest.MaxSuggestions != limit {
		t.Errorf("MaxSuggestions = %d, want %d", loaded.Suggest.MaxSuggestions, limit)
	}
}
