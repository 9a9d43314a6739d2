// Package store is the persistence adapter for style records. The whole
// collection is one JSON array under a single key of a kv.Store: every
// operation reads the collection, changes it in memory and writes all of
// it back.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/rcliao/style-kb/internal/kv"
	"github.com/rcliao/style-kb/internal/model"
)

// DefaultKey is the kv key holding the collection.
const DefaultKey = "style_knowledge_base_data"

var (
	// ErrNotFound is returned when no record has the requested id.
	ErrNotFound = errors.New("style not found")

	// ErrCorrupt is returned when the stored collection cannot be decoded.
	ErrCorrupt = errors.New("stored collection is corrupt")
)

// Store reads and writes the style collection. Read-modify-write cycles are
// serialized within the process; separate processes sharing a backend
// still race and the last writer wins.
type Store struct {
	kv      kv.Store
	key     string
	now     func() time.Time
	newID   func() string
	seed    []model.StyleFields
	log     zerolog.Logger
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the kv key holding the collection.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides record id generation.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithSeed replaces the sample records written on first read. An empty
// slice seeds an empty collection.
func WithSeed(seed []model.StyleFields) Option {
	return func(s *Store) { s.seed = seed }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// New creates a Store on top of a kv backend.
func New(backend kv.Store, opts ...Option) *Store {
	s := &Store{
		kv:      backend,
		key:     DefaultKey,
		now:     time.Now,
		seed:    SampleStyles(),
		log:     zerolog.Nop(),
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
	for _, o := range opts {
		o(s)
	}
	if s.newID == nil {
		s.newID = s.ulid
	}
	return s
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.kv.Close()
}

// ulid must be called with s.mu held; the monotonic entropy source is not
// safe for concurrent use.
func (s *Store) ulid() string {
	return ulid.MustNew(ulid.Timestamp(s.now()), s.entropy).String()
}

func (s *Store) millis() int64 {
	return s.now().UnixMilli()
}

// load returns the stored collection, seeding it when the key is missing.
// Callers hold s.mu.
func (s *Store) load(ctx context.Context) ([]model.StyleRecord, error) {
	data, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, kv.ErrNotFound) {
		return s.seedCollection(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("read collection: %w", err)
	}

	var records []model.StyleRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	// save always writes an array, so a null blob was not written here.
	if records == nil {
		return nil, fmt.Errorf("%w: collection is null", ErrCorrupt)
	}
	return records, nil
}

func (s *Store) seedCollection(ctx context.Context) ([]model.StyleRecord, error) {
	now := s.millis()
	records := make([]model.StyleRecord, 0, len(s.seed))
	for _, f := range s.seed {
		f.Tags = append([]string(nil), f.Tags...)
		f.Images = append([]string(nil), f.Images...)
		records = append(records, model.StyleRecord{
			ID:          s.newID(),
			StyleFields: f,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	if err := s.save(ctx, records); err != nil {
		return nil, err
	}
	s.log.Info().Int("count", len(records)).Str("key", s.key).Msg("seeded sample styles")
	return records, nil
}

func (s *Store) save(ctx context.Context, records []model.StyleRecord) error {
	if records == nil {
		records = []model.StyleRecord{}
	}
	for i := range records {
		records[i].Normalize()
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("write collection: %w", err)
	}
	return nil
}

// GetAll returns the whole collection in stored order (newest first).
func (s *Store) GetAll(ctx context.Context) ([]model.StyleRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// GetByID returns the record with the given id or ErrNotFound.
func (s *Store) GetByID(ctx context.Context, id string) (*model.StyleRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Create stores a new record ahead of all existing ones. An empty category
// defaults to General.
func (s *Store) Create(ctx context.Context, f model.StyleFields) (*model.StyleRecord, error) {
	if f.CategoryType == "" {
		f.CategoryType = model.General
	}
	if !f.CategoryType.Valid() {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidCategory, f.CategoryType)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	now := s.millis()
	rec := model.StyleRecord{
		ID:          s.newID(),
		StyleFields: f,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	rec.Normalize()

	records = append([]model.StyleRecord{rec}, records...)
	if err := s.save(ctx, records); err != nil {
		return nil, err
	}

	s.log.Debug().Str("id", rec.ID).Str("name", rec.NameCn).Msg("style created")
	return &rec, nil
}

// Update merges p over the record with the given id and refreshes
// UpdatedAt. The id and CreatedAt never change.
func (s *Store) Update(ctx context.Context, id string, p model.StylePatch) (*model.StyleRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range records {
		if records[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	rec := records[idx]
	p.Apply(&rec.StyleFields)
	// The wall clock may step backwards; timestamps must not.
	rec.UpdatedAt = max(s.millis(), rec.UpdatedAt, rec.CreatedAt)
	records[idx] = rec

	if err := s.save(ctx, records); err != nil {
		return nil, err
	}

	s.log.Debug().Str("id", id).Msg("style updated")
	return &records[idx], nil
}

// Delete removes the record with the given id. Deleting an unknown id is
// not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, r := range records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if err := s.save(ctx, kept); err != nil {
		return err
	}

	s.log.Debug().Str("id", id).Bool("found", len(kept) < len(records)).Msg("style deleted")
	return nil
}
