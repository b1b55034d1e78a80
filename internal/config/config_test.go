package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("KANBORD_HOME_DIR", t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != DefaultServerPort {
		t.Fatalf("expected default server port %d, got %d", DefaultServerPort, cfg.Server.Port)
	}
	if cfg.Postgres.DBName != "kanbord" {
		t.Fatalf("unexpected default dbname: %q", cfg.Postgres.DBName)
	}
	if cfg.Postgres.App.User != "kanbord_app" {
		t.Fatalf("unexpected default app user: %q", cfg.Postgres.App.User)
	}
	if cfg.Vault.Backend != "keychain" {
		t.Fatalf("unexpected default vault backend: %q", cfg.Vault.Backend)
	}
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("KANBORD_HOME_DIR", home)
	body := []byte("postgres:\n  host: db.internal\n  app:\n    user: boards\nserver:\n  port: 9001\n")
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), body, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9001 {
		t.Fatalf("expected port 9001, got %d", cfg.Server.Port)
	}
	if cfg.Postgres.Host != "db.internal" {
		t.Fatalf("expected merged host, got %q", cfg.Postgres.Host)
	}
	if cfg.Postgres.App.User != "boards" {
		t.Fatalf("expected merged app user, got %q", cfg.Postgres.App.User)
	}
	// Untouched values keep defaults
	if cfg.Postgres.Port != DefaultPostgresPort {
		t.Fatalf("expected default postgres port, got %d", cfg.Postgres.Port)
	}
	if cfg.Postgres.SSLMode != "disable" {
		t.Fatalf("expected default sslmode, got %q", cfg.Postgres.SSLMode)
	}
}

func TestLoadBadYAML(t *testing.T) {
	home := t.TempDir()
	t.Setenv("KANBORD_HOME_DIR", home)
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte("server: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Fatal("expected parse error for malformed config")
	}
}
