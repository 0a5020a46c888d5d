package config

import (
	"os"
	"testing"

	appenv "github.com/garrettladley/habitreset/internal/env"
	"github.com/garrettladley/habitreset/internal/storage"
	"github.com/garrettladley/habitreset/internal/xslog"
)

func TestRead_Defaults(t *testing.T) {
	for _, k := range []string{"HABITRESET_ENV", "HABITRESET_STORAGE", "LOG_LEVEL"} {
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}

	cfg, err := Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if cfg.Env != appenv.Development {
		t.Errorf("Env = %q, want %q", cfg.Env, appenv.Development)
	}
	if cfg.Storage != storage.KindFile {
		t.Errorf("Storage = %q, want %q", cfg.Storage, storage.KindFile)
	}
	if cfg.Log.Level != xslog.LevelInfo {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, xslog.LevelInfo)
	}
}

func TestRead_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown backend", env: map[string]string{"HABITRESET_STORAGE": "cookies"}},
		{name: "unknown environment", env: map[string]string{"HABITRESET_ENV": "staging"}},
		{name: "unknown log level", env: map[string]string{"LOG_LEVEL": "chatty"}},
		{name: "redis without url", env: map[string]string{"HABITRESET_STORAGE": "redis", "REDIS_URL": ""}},
		{name: "postgres without url", env: map[string]string{"HABITRESET_STORAGE": "postgres", "DATABASE_URL": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Read(); err == nil {
				t.Error("Read() expected error")
			}
		})
	}
}

func TestWithStorage(t *testing.T) {
	t.Parallel()

	cfg := Config{Env: appenv.Production, Storage: storage.KindFile, Log: Log{Level: xslog.LevelInfo}}

	got, err := cfg.WithStorage("memory")
	if err != nil {
		t.Fatalf("WithStorage() error = %v", err)
	}
	if got.Storage != storage.KindMemory {
		t.Errorf("Storage = %q, want %q", got.Storage, storage.KindMemory)
	}
	if cfg.Storage != storage.KindFile {
		t.Error("WithStorage mutated the receiver")
	}

	if _, err := cfg.WithStorage("redis"); err == nil {
		t.Error("WithStorage(redis) without REDIS_URL expected error")
	}
}

func TestRead_CanonicalizesCase(t *testing.T) {
	t.Setenv("HABITRESET_ENV", "PRODUCTION")
	t.Setenv("HABITRESET_STORAGE", "MEMORY")
	t.Setenv("LOG_LEVEL", "Debug")

	cfg, err := Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if cfg.Env != appenv.Production || !cfg.Env.IsProduction() {
		t.Errorf("Env = %q, want %q", cfg.Env, appenv.Production)
	}
	if cfg.Storage != storage.KindMemory {
		t.Errorf("Storage = %q, want %q", cfg.Storage, storage.KindMemory)
	}
	if cfg.Log.Level != xslog.LevelDebug {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, xslog.LevelDebug)
	}
}

func TestWithStorage_CanonicalizesCase(t *testing.T) {
	t.Parallel()

	cfg := Config{Env: appenv.Development, Storage: storage.KindFile, Log: Log{Level: xslog.LevelInfo}}

	got, err := cfg.WithStorage("SQLite")
	if err != nil {
		t.Fatalf("WithStorage() error = %v", err)
	}
	if got.Storage != storage.KindSQLite {
		t.Errorf("Storage = %q, want %q", got.Storage, storage.KindSQLite)
	}
}
