package store

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/rcliao/style-kb/internal/kv"
	"github.com/rcliao/style-kb/internal/model"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newTestStore(t *testing.T, opts ...Option) (*Store, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	opts = append([]Option{WithClock(clock.Now)}, opts...)
	s := New(kv.NewMemory(), opts...)
	t.Cleanup(func() { s.Close() })
	return s, clock
}

func emptyStore(t *testing.T) (*Store, *fakeClock) {
	t.Helper()
	return newTestStore(t, WithSeed(nil))
}

func sampleFields() model.StyleFields {
	return model.StyleFields{
		NameCn:        "日式侘寂",
		NameEn:        "Wabi-Sabi",
		CategoryType:  model.Interior,
		CategoryStyle: "自然系",
		Definition:    "接受不完美与无常之美。",
		Tags:          []string{"自然", "质朴"},
		Images:        []string{"https://example.com/a.jpg"},
		Notes:         "注意留白。",
	}
}

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	s, _ := emptyStore(t)

	in := sampleFields()
	rec, err := s.Create(ctx, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.ID == "" {
		t.Error("expected non-empty ID")
	}
	if rec.CreatedAt == 0 || rec.CreatedAt != rec.UpdatedAt {
		t.Errorf("expected createdAt == updatedAt != 0, got %d/%d", rec.CreatedAt, rec.UpdatedAt)
	}

	got, err := s.GetByID(ctx, rec.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !reflect.DeepEqual(got.StyleFields, in) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got.StyleFields, in)
	}
	if got.ID != rec.ID || got.CreatedAt != rec.CreatedAt || got.UpdatedAt != rec.UpdatedAt {
		t.Errorf("metadata mismatch: %+v vs %+v", got, rec)
	}
}

func TestCreatePrepends(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	before, _ := s.GetAll(ctx)
	rec, _ := s.Create(ctx, sampleFields())

	all, err := s.GetAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != len(before)+1 {
		t.Fatalf("expected %d records, got %d", len(before)+1, len(all))
	}
	if all[0].ID != rec.ID {
		t.Errorf("expected new record first, got %s", all[0].ID)
	}
}

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()
	s, _ := emptyStore(t)

	f := sampleFields()
	f.CategoryType = ""
	rec, err := s.Create(ctx, f)
	if err != nil {
		t.Fatal(err)
	}
	if rec.CategoryType != model.General {
		t.Errorf("expected default General, got %q", rec.CategoryType)
	}

	f.CategoryType = "Garden"
	if _, err := s.Create(ctx, f); !errors.Is(err, model.ErrInvalidCategory) {
		t.Errorf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestCreateNilListsStoredEmpty(t *testing.T) {
	ctx := context.Background()
	s, _ := emptyStore(t)

	rec, _ := s.Create(ctx, model.StyleFields{NameCn: "空"})
	got, _ := s.GetByID(ctx, rec.ID)
	if got.Tags == nil || got.Images == nil {
		t.Errorf("expected empty lists, got tags=%#v images=%#v", got.Tags, got.Images)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.GetByID(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdatePreservesIdentity(t *testing.T) {
	ctx := context.Background()
	s, clock := emptyStore(t)

	rec, _ := s.Create(ctx, sampleFields())
	clock.Advance(5 * time.Millisecond)

	var p model.StylePatch
	p.SetText("nameEn", "Wabi Sabi")
	upd, err := s.Update(ctx, rec.ID, p)
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if upd.ID != rec.ID {
		t.Errorf("id changed: %s -> %s", rec.ID, upd.ID)
	}
	if upd.CreatedAt != rec.CreatedAt {
		t.Errorf("createdAt changed: %d -> %d", rec.CreatedAt, upd.CreatedAt)
	}
	if upd.UpdatedAt != rec.UpdatedAt+5 {
		t.Errorf("expected updatedAt %d, got %d", rec.UpdatedAt+5, upd.UpdatedAt)
	}

	want := sampleFields()
	want.NameEn = "Wabi Sabi"
	got, _ := s.GetByID(ctx, rec.ID)
	if !reflect.DeepEqual(got.StyleFields, want) {
		t.Errorf("only nameEn should change:\n got %+v\nwant %+v", got.StyleFields, want)
	}
}

func TestUpdateNeverMovesBackwards(t *testing.T) {
	ctx := context.Background()
	s, clock := emptyStore(t)

	rec, _ := s.Create(ctx, sampleFields())
	clock.Advance(-time.Hour)

	var p model.StylePatch
	p.SetText("notes", "x")
	upd, err := s.Update(ctx, rec.ID, p)
	if err != nil {
		t.Fatal(err)
	}
	if upd.UpdatedAt < rec.UpdatedAt {
		t.Errorf("updatedAt decreased: %d -> %d", rec.UpdatedAt, upd.UpdatedAt)
	}
}

func TestUpdateKeepsPosition(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	all, _ := s.GetAll(ctx)
	target := all[2]

	var p model.StylePatch
	p.SetText("notes", "改")
	if _, err := s.Update(ctx, target.ID, p); err != nil {
		t.Fatal(err)
	}

	after, _ := s.GetAll(ctx)
	if after[2].ID != target.ID || after[2].Notes != "改" {
		t.Errorf("expected in-place update at index 2, got %+v", after[2])
	}
}

func TestUpdateNotFound(t *testing.T) {
	s, _ := newTestStore(t)
	var p model.StylePatch
	p.SetText("notes", "x")
	_, err := s.Update(context.Background(), "missing", p)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	all, _ := s.GetAll(ctx)
	if err := s.Delete(ctx, all[0].ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	after, _ := s.GetAll(ctx)
	if len(after) != len(all)-1 {
		t.Fatalf("expected %d records, got %d", len(all)-1, len(after))
	}
	if _, err := s.GetByID(ctx, all[0].ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestDeleteMissingIsNoop(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	before, _ := s.GetAll(ctx)
	if err := s.Delete(ctx, "does-not-exist"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	after, _ := s.GetAll(ctx)
	if !reflect.DeepEqual(before, after) {
		t.Error("collection changed after deleting a missing id")
	}
}

func TestSeedingIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	first, err := s.GetAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != len(SampleStyles()) {
		t.Fatalf("expected %d seeded records, got %d", len(SampleStyles()), len(first))
	}

	second, _ := s.GetAll(ctx)
	if !reflect.DeepEqual(first, second) {
		t.Error("second GetAll returned a different collection")
	}

	seen := map[string]bool{}
	for _, r := range first {
		if seen[r.ID] {
			t.Errorf("duplicate id %s", r.ID)
		}
		seen[r.ID] = true
	}
}

func TestSeedNotRepeatedAfterDeletingAll(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	all, _ := s.GetAll(ctx)
	for _, r := range all {
		s.Delete(ctx, r.ID)
	}
	after, _ := s.GetAll(ctx)
	if len(after) != 0 {
		t.Errorf("expected empty collection, got %d records", len(after))
	}
}

func TestCorruptBlob(t *testing.T) {
	ctx := context.Background()
	backend := kv.NewMemory()
	backend.Set(ctx, DefaultKey, []byte(`{not json`))

	s := New(backend)
	if _, err := s.GetAll(ctx); !errors.Is(err, ErrCorrupt) {
		t.Errorf("expected ErrCorrupt, got %v", err)
	}
	if _, err := s.Create(ctx, sampleFields()); !errors.Is(err, ErrCorrupt) {
		t.Errorf("expected ErrCorrupt on write, got %v", err)
	}
	// The blob is left untouched.
	raw, _ := backend.Get(ctx, DefaultKey)
	if string(raw) != `{not json` {
		t.Errorf("corrupt blob was overwritten: %q", raw)
	}
}

func TestNullBlobIsCorrupt(t *testing.T) {
	ctx := context.Background()
	backend := kv.NewMemory()
	backend.Set(ctx, DefaultKey, []byte("null"))

	s := New(backend)
	if _, err := s.GetAll(ctx); !errors.Is(err, ErrCorrupt) {
		t.Errorf("expected ErrCorrupt, got %v", err)
	}
	if err := s.Delete(ctx, "any"); !errors.Is(err, ErrCorrupt) {
		t.Errorf("expected ErrCorrupt on delete, got %v", err)
	}
	raw, _ := backend.Get(ctx, DefaultKey)
	if string(raw) != "null" {
		t.Errorf("null blob was overwritten: %q", raw)
	}
}

func TestEmptyCollectionStoredAsArray(t *testing.T) {
	ctx := context.Background()
	backend := kv.NewMemory()
	s := New(backend)

	all, _ := s.GetAll(ctx)
	for _, r := range all {
		s.Delete(ctx, r.ID)
	}
	raw, err := backend.Get(ctx, DefaultKey)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "[]" {
		t.Errorf("expected [], got %q", raw)
	}
}

func TestWithKey(t *testing.T) {
	ctx := context.Background()
	backend := kv.NewMemory()
	s := New(backend, WithKey("other"), WithSeed(nil))
	s.Create(ctx, sampleFields())

	if _, err := backend.Get(ctx, DefaultKey); !errors.Is(err, kv.ErrNotFound) {
		t.Errorf("expected default key untouched, got %v", err)
	}
	if _, err := backend.Get(ctx, "other"); err != nil {
		t.Errorf("expected collection under custom key: %v", err)
	}
}

func TestSQLiteBackedStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kb.db")

	backend, err := kv.NewSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	s := New(backend)
	rec, err := s.Create(ctx, sampleFields())
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	backend, err = kv.NewSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	s = New(backend)
	defer s.Close()

	all, err := s.GetAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != len(SampleStyles())+1 {
		t.Errorf("expected seed + 1 records, got %d", len(all))
	}
	if all[0].ID != rec.ID {
		t.Errorf("expected created record first after reopen")
	}
}

func TestConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	s, _ := emptyStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Create(ctx, sampleFields()); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	all, _ := s.GetAll(ctx)
	if len(all) != 20 {
		t.Errorf("expected 20 records, got %d", len(all))
	}
}
