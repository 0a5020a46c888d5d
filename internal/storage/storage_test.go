package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"
)

func TestBackends(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		open func(t *testing.T) Backend
	}{
		{
			name: "memory",
			open: func(t *testing.T) Backend { return NewMemoryBackend() },
		},
		{
			name: "file",
			open: func(t *testing.T) Backend {
				b, err := NewFileBackend(filepath.Join(t.TempDir(), "state"))
				if err != nil {
					t.Fatalf("NewFileBackend() error = %v", err)
				}
				return b
			},
		},
		{
			name: "sqlite",
			open: func(t *testing.T) Backend {
				b, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "test.db"))
				if err != nil {
					t.Fatalf("OpenSQLite() error = %v", err)
				}
				return b
			},
		},
		{
			name: "redis",
			open: func(t *testing.T) Backend {
				mr := miniredis.RunT(t)
				return NewRedisBackend(RedisConfig{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := tt.open(t)
			t.Cleanup(func() { _ = b.Close() })

			testBackend(t, b)
		})
	}
}

func testBackend(t *testing.T, b Backend) {
	t.Helper()
	ctx := context.Background()

	if err := b.Ping(ctx); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}

	if _, err := b.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}

	if err := b.Set(ctx, "k", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := b.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if diff := cmp.Diff(`{"a":1}`, string(got)); diff != "" {
		t.Errorf("Get() mismatch (-want +got):\n%s", diff)
	}

	if err := b.Set(ctx, "k", []byte(`{"a":2}`)); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}
	got, err = b.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() after overwrite error = %v", err)
	}
	if string(got) != `{"a":2}` {
		t.Errorf("Get() after overwrite = %q, want %q", got, `{"a":2}`)
	}

	if err := b.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := b.Get(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after Delete error = %v, want ErrNotFound", err)
	}
	if err := b.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete() of missing key error = %v", err)
	}
}

func TestMemoryBackend_CopiesValues(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := NewMemoryBackend()

	value := []byte("abc")
	if err := m.Set(ctx, "k", value); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	value[0] = 'x'

	got, _ := m.Get(ctx, "k")
	got[1] = 'y'

	again, _ := m.Get(ctx, "k")
	if string(again) != "abc" {
		t.Errorf("stored value mutated through caller slices: %q", again)
	}
}

func TestFileBackend_RejectsPathKeys(t *testing.T) {
	t.Parallel()

	b, err := NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileBackend() error = %v", err)
	}

	for _, key := range []string{"", "..", "a/b", `a\b`} {
		if err := b.Set(context.Background(), key, []byte("x")); err == nil {
			t.Errorf("Set(%q) expected error", key)
		}
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{input: "file", want: KindFile},
		{input: "SQLite", want: KindSQLite},
		{input: "redis", want: KindRedis},
		{input: "postgres", want: KindPostgres},
		{input: "memory", want: KindMemory},
		{input: "localstorage", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseKind(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
