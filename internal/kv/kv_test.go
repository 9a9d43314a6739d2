package kv

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	dir := t.TempDir()
	s, err := NewSQLite(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testBackend(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := s.Set(ctx, "k", []byte(`[1]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `[1]` {
		t.Errorf("expected [1], got %q", got)
	}

	// Overwrite replaces the whole value
	if err := s.Set(ctx, "k", []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, _ = s.Get(ctx, "k")
	if string(got) != `[]` {
		t.Errorf("expected [], got %q", got)
	}
}

func TestMemory(t *testing.T) {
	testBackend(t, NewMemory())
}

func TestMemoryReturnsCopy(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	m.Set(ctx, "k", []byte("abc"))

	got, _ := m.Get(ctx, "k")
	got[0] = 'x'

	again, _ := m.Get(ctx, "k")
	if string(again) != "abc" {
		t.Errorf("stored value was mutated: %q", again)
	}
}

func TestSQLite(t *testing.T) {
	testBackend(t, newTestSQLite(t))
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kb.db")

	s, err := NewSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	s.Set(ctx, "k", []byte("v"))
	s.Close()

	s, err = NewSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	got, err := s.Get(ctx, "k")
	if err != nil || string(got) != "v" {
		t.Errorf("expected v after reopen, got %q (%v)", got, err)
	}
}

func TestDBPathCreation(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "sub", "dir", "test.db")
	s, err := NewSQLite(dbPath)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	s.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("expected db file to be created")
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, Config{Type: BackendMemory})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*Memory); !ok {
		t.Errorf("expected *Memory, got %T", s)
	}

	s, err = Open(ctx, Config{Type: BackendSQLite, Path: filepath.Join(t.TempDir(), "x.db")})
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	if _, err := Open(ctx, Config{Type: "etcd"}); err == nil {
		t.Error("expected error for unknown backend")
	}
	if _, err := Open(ctx, Config{Type: BackendRedis}); err == nil {
		t.Error("expected error for redis without url")
	}
	if _, err := Open(ctx, Config{Type: BackendS3}); err == nil {
		t.Error("expected error for s3 without bucket")
	}
}

func TestS3ObjectKey(t *testing.T) {
	s, err := NewS3(S3Config{Bucket: "kb", Prefix: "styles/", Endpoint: "http://localhost:9000/"})
	if err != nil {
		t.Fatal(err)
	}
	if got := s.objectKey("style_knowledge_base_data"); got != "styles/style_knowledge_base_data.json" {
		t.Errorf("unexpected object key %q", got)
	}
}
