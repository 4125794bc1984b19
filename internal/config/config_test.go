package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		prev, had := os.LookupEnv(k)
		os.Unsetenv(k)
		t.Cleanup(func() {
			if had {
				os.Setenv(k, prev)
			} else {
				os.Unsetenv(k)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, "VECTRA_CONFIG", "VECTRA_INDEXER", "VECTRA_TIMEOUT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Indexer != DefaultIndexer {
		t.Errorf("Indexer = %q, want %q", cfg.Indexer, DefaultIndexer)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %s, want %s", cfg.Timeout, DefaultTimeout)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	unsetEnv(t, "VECTRA_CONFIG", "VECTRA_INDEXER", "VECTRA_TIMEOUT")
	os.Setenv("VECTRA_INDEXER", "/opt/bin/myindexer")
	os.Setenv("VECTRA_TIMEOUT", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Indexer != "/opt/bin/myindexer" {
		t.Errorf("Indexer = %q", cfg.Indexer)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %s, want 5s", cfg.Timeout)
	}
}

func TestLoadInvalidTimeout(t *testing.T) {
	unsetEnv(t, "VECTRA_CONFIG", "VECTRA_INDEXER", "VECTRA_TIMEOUT")

	for _, bad := range []string{"abc", "-1", "0"} {
		os.Setenv("VECTRA_TIMEOUT", bad)
		if _, err := Load(); err == nil {
			t.Errorf("VECTRA_TIMEOUT=%q: expected error", bad)
		}
	}
}

func TestLoadConfigFile(t *testing.T) {
	unsetEnv(t, "VECTRA_CONFIG", "VECTRA_INDEXER", "VECTRA_TIMEOUT")

	path := filepath.Join(t.TempDir(), "vectra.yaml")
	if err := os.WriteFile(path, []byte("indexer: fileidx\ntimeout_seconds: 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	os.Setenv("VECTRA_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Indexer != "fileidx" {
		t.Errorf("Indexer = %q, want fileidx", cfg.Indexer)
	}
	if cfg.Timeout != 12*time.Second {
		t.Errorf("Timeout = %s, want 12s", cfg.Timeout)
	}
}

func TestEnvWinsOverFile(t *testing.T) {
	unsetEnv(t, "VECTRA_CONFIG", "VECTRA_INDEXER", "VECTRA_TIMEOUT")

	path := filepath.Join(t.TempDir(), "vectra.yaml")
	if err := os.WriteFile(path, []byte("indexer: fileidx\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	os.Setenv("VECTRA_CONFIG", path)
	os.Setenv("VECTRA_INDEXER", "envidx")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Indexer != "envidx" {
		t.Errorf("Indexer = %q, want envidx", cfg.Indexer)
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	unsetEnv(t, "VECTRA_CONFIG", "VECTRA_INDEXER", "VECTRA_TIMEOUT")
	os.Setenv("VECTRA_CONFIG", filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	if _, err := Load(); err == nil {
		t.Error("expected error for missing config file")
	}
}
