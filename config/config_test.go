package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "port: \"9000\"\ndb_path: file.db\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("PORT", "")
	t.Setenv("DB_PATH", "env.db")

	cfg := Load(path)
	if cfg.Port != "9000" {
		t.Fatalf("file value not applied, port=%q", cfg.Port)
	}
	if cfg.DBPath != "env.db" {
		t.Fatalf("env override not applied, db_path=%q", cfg.DBPath)
	}
	if cfg.RecipeAPIBase == "" {
		t.Fatal("defaults must survive when file omits a key")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	cfg := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if cfg.Port != "8080" || cfg.DBPath != "recipe_planner.db" {
		t.Fatalf("defaults wrong: %+v", cfg)
	}
}
